package types

// Instance represents an EC2 instance
type Instance struct {
	Meta
	InstanceType   string
	State          string
	VPCID          string
	SubnetID       string
	PrivateIP      string
	PublicIP       string
	SecurityGroups []string
}

func (Instance) ResourceKind() Kind { return KindInstance }
