package types

// HostedZone represents a Route53 hosted zone. VPCAssociations lists every
// VPC id the zone is attached to; a private zone may span several VPCs.
type HostedZone struct {
	Meta
	ZoneName        string
	PrivateZone     bool
	RecordCount     int64
	VPCAssociations []string
}

func (HostedZone) ResourceKind() Kind { return KindHostedZone }
