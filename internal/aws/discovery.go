package aws

import (
	"context"

	"github.com/byunjuneseok/cloud-map/pkg/provider"
	"github.com/byunjuneseok/cloud-map/pkg/topology"
	pkgtypes "github.com/byunjuneseok/cloud-map/pkg/types"
)

// DiscoverAccount runs a full discovery sweep and assembles the account
// topology. A vpcID filter that matches nothing yields an empty topology,
// not an error. Any family failure aborts the sweep with a DiscoveryError
// naming the family.
func DiscoverAccount(ctx context.Context, client *Client, vpcID string) (topology.AccountTopology, error) {
	var res topology.Resources

	vpcs, err := client.DiscoverVPCs(ctx)
	if err != nil {
		return topology.AccountTopology{}, discoveryErr(pkgtypes.KindVPC, err)
	}
	if vpcID != "" {
		var filtered []pkgtypes.VPC
		for _, vpc := range vpcs {
			if vpc.ID == vpcID {
				filtered = append(filtered, vpc)
			}
		}
		vpcs = filtered
	}
	res.VPCs = vpcs

	for _, vpc := range res.VPCs {
		subnets, err := client.DiscoverSubnets(ctx, vpc.ID)
		if err != nil {
			return topology.AccountTopology{}, discoveryErr(pkgtypes.KindSubnet, err)
		}
		res.Subnets = append(res.Subnets, subnets...)

		tables, err := client.DiscoverRouteTables(ctx, vpc.ID)
		if err != nil {
			return topology.AccountTopology{}, discoveryErr(pkgtypes.KindRouteTable, err)
		}
		res.RouteTables = append(res.RouteTables, tables...)

		igws, err := client.DiscoverInternetGateways(ctx, vpc.ID)
		if err != nil {
			return topology.AccountTopology{}, discoveryErr(pkgtypes.KindInternetGateway, err)
		}
		res.InternetGateways = append(res.InternetGateways, igws...)

		nats, err := client.DiscoverNatGateways(ctx, vpc.ID)
		if err != nil {
			return topology.AccountTopology{}, discoveryErr(pkgtypes.KindNatGateway, err)
		}
		res.NatGateways = append(res.NatGateways, nats...)
	}

	instances, err := client.DiscoverInstances(ctx, "")
	if err != nil {
		return topology.AccountTopology{}, discoveryErr(pkgtypes.KindInstance, err)
	}
	if vpcID != "" {
		var filtered []pkgtypes.Instance
		for _, inst := range instances {
			if inst.VPCID == vpcID {
				filtered = append(filtered, inst)
			}
		}
		instances = filtered
	}
	res.Instances = instances

	functions, err := client.DiscoverFunctions(ctx, vpcID)
	if err != nil {
		return topology.AccountTopology{}, discoveryErr(pkgtypes.KindLambdaFunction, err)
	}
	res.LambdaFunctions = functions

	zones, err := client.DiscoverHostedZones(ctx, vpcID)
	if err != nil {
		return topology.AccountTopology{}, discoveryErr(pkgtypes.KindHostedZone, err)
	}
	res.HostedZones = zones

	apis, err := client.DiscoverAPIGateways(ctx, vpcID)
	if err != nil {
		return topology.AccountTopology{}, discoveryErr(pkgtypes.KindAPIGateway, err)
	}
	res.APIGateways = apis

	topologies := topology.Organize(res)
	return topology.AssembleAccount(client.Region(), topologies), nil
}

func discoveryErr(kind pkgtypes.Kind, err error) error {
	return &provider.DiscoveryError{Kind: kind, Cause: err}
}
