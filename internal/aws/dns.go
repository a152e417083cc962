package aws

import (
	"context"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/route53"
	r53types "github.com/aws/aws-sdk-go-v2/service/route53/types"
	"go.uber.org/zap"

	"github.com/byunjuneseok/cloud-map/internal/logging"
	pkgtypes "github.com/byunjuneseok/cloud-map/pkg/types"
)

// DiscoverHostedZones returns Route53 hosted zones with their VPC
// associations, optionally filtered to zones associated with vpcID.
func (c *Client) DiscoverHostedZones(ctx context.Context, vpcID string) ([]pkgtypes.HostedZone, error) {
	output, err := c.Route53.ListHostedZones(ctx, &route53.ListHostedZonesInput{})
	if err != nil {
		return nil, err
	}

	var zones []pkgtypes.HostedZone
	for _, z := range output.HostedZones {
		zoneID := strings.TrimPrefix(deref(z.Id), "/hostedzone/")

		// The zone list does not carry VPC associations; each zone needs
		// its own lookup. A failing lookup skips the zone with a warning.
		detail, err := c.Route53.GetHostedZone(ctx, &route53.GetHostedZoneInput{Id: &zoneID})
		if err != nil {
			logging.L().Warn("failed to get hosted zone details",
				zap.String("zone", zoneID),
				zap.Error(err))
			continue
		}

		var associations []string
		for _, vpc := range detail.VPCs {
			associations = append(associations, deref(vpc.VPCId))
		}

		if vpcID != "" && !contains(associations, vpcID) {
			continue
		}

		zones = append(zones, pkgtypes.HostedZone{
			Meta:            pkgtypes.NewMeta(zoneID, c.region, "", c.zoneTags(ctx, zoneID)),
			ZoneName:        deref(z.Name),
			PrivateZone:     z.Config != nil && z.Config.PrivateZone,
			RecordCount:     derefInt64(z.ResourceRecordSetCount),
			VPCAssociations: associations,
		})
	}

	return zones, nil
}

// zoneTags is best-effort; a failure yields empty tags and a warning.
func (c *Client) zoneTags(ctx context.Context, zoneID string) map[string]string {
	output, err := c.Route53.ListTagsForResource(ctx, &route53.ListTagsForResourceInput{
		ResourceType: r53types.TagResourceTypeHostedzone,
		ResourceId:   &zoneID,
	})
	if err != nil {
		logging.L().Warn("failed to list tags for hosted zone",
			zap.String("zone", zoneID),
			zap.Error(err))
		return map[string]string{}
	}

	tags := make(map[string]string, len(output.ResourceTagSet.Tags))
	for _, tag := range output.ResourceTagSet.Tags {
		tags[deref(tag.Key)] = deref(tag.Value)
	}
	return tags
}

func contains(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}
