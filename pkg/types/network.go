package types

// VPC represents an AWS VPC
type VPC struct {
	Meta
	CIDR      string
	State     string
	IsDefault bool
}

func (VPC) ResourceKind() Kind { return KindVPC }

// Subnet represents an AWS VPC Subnet
type Subnet struct {
	Meta
	VPCID               string
	CIDR                string
	AZ                  string
	State               string
	MapPublicIPOnLaunch bool
}

func (Subnet) ResourceKind() Kind { return KindSubnet }

// Route is a single entry in a route table.
type Route struct {
	Destination string
	GatewayID   string
	State       string
}

// RouteTable represents an AWS route table
type RouteTable struct {
	Meta
	VPCID              string
	Routes             []Route
	SubnetAssociations []string
}

func (RouteTable) ResourceKind() Kind { return KindRouteTable }

// InternetGateway represents an AWS internet gateway. VPCID is empty when
// the gateway is detached.
type InternetGateway struct {
	Meta
	VPCID string
	State string
}

func (InternetGateway) ResourceKind() Kind { return KindInternetGateway }

// NatGateway represents an AWS NAT gateway
type NatGateway struct {
	Meta
	VPCID    string
	SubnetID string
	State    string
}

func (NatGateway) ResourceKind() Kind { return KindNatGateway }
