package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"

	pkgtypes "github.com/byunjuneseok/cloud-map/pkg/types"
)

// DiscoverVPCs returns all VPCs in the region
func (c *Client) DiscoverVPCs(ctx context.Context) ([]pkgtypes.VPC, error) {
	output, err := c.EC2.DescribeVpcs(ctx, &ec2.DescribeVpcsInput{})
	if err != nil {
		return nil, err
	}

	var vpcs []pkgtypes.VPC
	for _, v := range output.Vpcs {
		vpcs = append(vpcs, c.toVPC(v))
	}

	return vpcs, nil
}

// DiscoverSubnets returns subnets, optionally filtered by VPC
func (c *Client) DiscoverSubnets(ctx context.Context, vpcID string) ([]pkgtypes.Subnet, error) {
	input := &ec2.DescribeSubnetsInput{}
	if vpcID != "" {
		input.Filters = vpcFilter("vpc-id", vpcID)
	}

	output, err := c.EC2.DescribeSubnets(ctx, input)
	if err != nil {
		return nil, err
	}

	var subnets []pkgtypes.Subnet
	for _, s := range output.Subnets {
		subnets = append(subnets, c.toSubnet(s))
	}

	return subnets, nil
}

// DiscoverRouteTables returns route tables, optionally filtered by VPC
func (c *Client) DiscoverRouteTables(ctx context.Context, vpcID string) ([]pkgtypes.RouteTable, error) {
	input := &ec2.DescribeRouteTablesInput{}
	if vpcID != "" {
		input.Filters = vpcFilter("vpc-id", vpcID)
	}

	output, err := c.EC2.DescribeRouteTables(ctx, input)
	if err != nil {
		return nil, err
	}

	var tables []pkgtypes.RouteTable
	for _, rt := range output.RouteTables {
		tables = append(tables, c.toRouteTable(rt))
	}

	return tables, nil
}

// DiscoverInternetGateways returns internet gateways, optionally filtered
// by attached VPC
func (c *Client) DiscoverInternetGateways(ctx context.Context, vpcID string) ([]pkgtypes.InternetGateway, error) {
	input := &ec2.DescribeInternetGatewaysInput{}
	if vpcID != "" {
		input.Filters = vpcFilter("attachment.vpc-id", vpcID)
	}

	output, err := c.EC2.DescribeInternetGateways(ctx, input)
	if err != nil {
		return nil, err
	}

	var gateways []pkgtypes.InternetGateway
	for _, igw := range output.InternetGateways {
		gateways = append(gateways, c.toInternetGateway(igw))
	}

	return gateways, nil
}

// DiscoverNatGateways returns NAT gateways, optionally filtered by VPC
func (c *Client) DiscoverNatGateways(ctx context.Context, vpcID string) ([]pkgtypes.NatGateway, error) {
	input := &ec2.DescribeNatGatewaysInput{}
	if vpcID != "" {
		input.Filter = vpcFilter("vpc-id", vpcID)
	}

	output, err := c.EC2.DescribeNatGateways(ctx, input)
	if err != nil {
		return nil, err
	}

	var gateways []pkgtypes.NatGateway
	for _, nat := range output.NatGateways {
		gateways = append(gateways, c.toNatGateway(nat))
	}

	return gateways, nil
}

func vpcFilter(name, value string) []ec2types.Filter {
	return []ec2types.Filter{
		{
			Name:   aws.String(name),
			Values: []string{value},
		},
	}
}

func tagMap(tags []ec2types.Tag) map[string]string {
	out := make(map[string]string, len(tags))
	for _, tag := range tags {
		out[deref(tag.Key)] = deref(tag.Value)
	}
	return out
}

func (c *Client) toVPC(v ec2types.Vpc) pkgtypes.VPC {
	return pkgtypes.VPC{
		Meta:      pkgtypes.NewMeta(deref(v.VpcId), c.region, "", tagMap(v.Tags)),
		CIDR:      deref(v.CidrBlock),
		State:     string(v.State),
		IsDefault: derefBool(v.IsDefault),
	}
}

func (c *Client) toSubnet(s ec2types.Subnet) pkgtypes.Subnet {
	return pkgtypes.Subnet{
		Meta:                pkgtypes.NewMeta(deref(s.SubnetId), c.region, "", tagMap(s.Tags)),
		VPCID:               deref(s.VpcId),
		CIDR:                deref(s.CidrBlock),
		AZ:                  deref(s.AvailabilityZone),
		State:               string(s.State),
		MapPublicIPOnLaunch: derefBool(s.MapPublicIpOnLaunch),
	}
}

func (c *Client) toRouteTable(rt ec2types.RouteTable) pkgtypes.RouteTable {
	var routes []pkgtypes.Route
	for _, r := range rt.Routes {
		routes = append(routes, pkgtypes.Route{
			Destination: deref(r.DestinationCidrBlock),
			GatewayID:   deref(r.GatewayId),
			State:       string(r.State),
		})
	}

	var associations []string
	for _, assoc := range rt.Associations {
		if assoc.SubnetId != nil {
			associations = append(associations, *assoc.SubnetId)
		}
	}

	return pkgtypes.RouteTable{
		Meta:               pkgtypes.NewMeta(deref(rt.RouteTableId), c.region, "", tagMap(rt.Tags)),
		VPCID:              deref(rt.VpcId),
		Routes:             routes,
		SubnetAssociations: associations,
	}
}

func (c *Client) toInternetGateway(igw ec2types.InternetGateway) pkgtypes.InternetGateway {
	// Attachment carries both the owning VPC and the gateway state; a
	// gateway with no attachments is detached.
	vpcID := ""
	state := "detached"
	if len(igw.Attachments) > 0 {
		vpcID = deref(igw.Attachments[0].VpcId)
		state = string(igw.Attachments[0].State)
	}

	return pkgtypes.InternetGateway{
		Meta:  pkgtypes.NewMeta(deref(igw.InternetGatewayId), c.region, "", tagMap(igw.Tags)),
		VPCID: vpcID,
		State: state,
	}
}

func (c *Client) toNatGateway(nat ec2types.NatGateway) pkgtypes.NatGateway {
	return pkgtypes.NatGateway{
		Meta:     pkgtypes.NewMeta(deref(nat.NatGatewayId), c.region, "", tagMap(nat.Tags)),
		VPCID:    deref(nat.VpcId),
		SubnetID: deref(nat.SubnetId),
		State:    string(nat.State),
	}
}
