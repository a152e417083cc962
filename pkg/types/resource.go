package types

// Kind identifies the resource family of a record.
type Kind string

const (
	KindVPC             Kind = "vpc"
	KindSubnet          Kind = "subnet"
	KindRouteTable      Kind = "route_table"
	KindInternetGateway Kind = "internet_gateway"
	KindNatGateway      Kind = "nat_gateway"
	KindInstance        Kind = "ec2_instance"
	KindLambdaFunction  Kind = "lambda_function"
	KindHostedZone      Kind = "route53_hosted_zone"
	KindAPIGateway      Kind = "api_gateway"
)

// Resource is the accessor set shared by every discovered record.
type Resource interface {
	ResourceID() string
	ResourceKind() Kind
	ResourceRegion() string
	ResourceTags() map[string]string
	DisplayName() string
}

// Meta holds the fields common to all resource records.
type Meta struct {
	ID     string
	Region string
	Name   string
	Tags   map[string]string
}

// NewMeta builds a Meta. When name is empty it is resolved from the "Name"
// tag, once; the result is never recomputed.
func NewMeta(id, region, name string, tags map[string]string) Meta {
	if tags == nil {
		tags = map[string]string{}
	}
	if name == "" {
		name = tags["Name"]
	}
	return Meta{ID: id, Region: region, Name: name, Tags: tags}
}

func (m Meta) ResourceID() string              { return m.ID }
func (m Meta) ResourceRegion() string          { return m.Region }
func (m Meta) ResourceTags() map[string]string { return m.Tags }
func (m Meta) DisplayName() string             { return m.Name }

// NameOrID returns the display name, falling back to the resource id.
func (m Meta) NameOrID() string {
	if m.Name != "" {
		return m.Name
	}
	return m.ID
}
