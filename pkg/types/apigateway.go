package types

// APIGateway represents a REST (v1) or HTTP (v2) API Gateway
type APIGateway struct {
	Meta
	APIName      string
	APIType      string // "REST" or "HTTP"
	ProtocolType string
	EndpointType string
	VPCLinks     []string
}

func (APIGateway) ResourceKind() Kind { return KindAPIGateway }
