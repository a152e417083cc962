package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"

	pkgtypes "github.com/byunjuneseok/cloud-map/pkg/types"
)

// DiscoverInstances returns EC2 instances, optionally filtered by subnet
func (c *Client) DiscoverInstances(ctx context.Context, subnetID string) ([]pkgtypes.Instance, error) {
	input := &ec2.DescribeInstancesInput{}
	if subnetID != "" {
		input.Filters = vpcFilter("subnet-id", subnetID)
	}

	output, err := c.EC2.DescribeInstances(ctx, input)
	if err != nil {
		return nil, err
	}

	var instances []pkgtypes.Instance
	for _, reservation := range output.Reservations {
		for _, inst := range reservation.Instances {
			instances = append(instances, c.toInstance(inst))
		}
	}

	return instances, nil
}

func (c *Client) toInstance(i ec2types.Instance) pkgtypes.Instance {
	var securityGroups []string
	for _, sg := range i.SecurityGroups {
		securityGroups = append(securityGroups, deref(sg.GroupId))
	}

	state := ""
	if i.State != nil {
		state = string(i.State.Name)
	}

	return pkgtypes.Instance{
		Meta:           pkgtypes.NewMeta(deref(i.InstanceId), c.region, "", tagMap(i.Tags)),
		InstanceType:   string(i.InstanceType),
		State:          state,
		VPCID:          deref(i.VpcId),
		SubnetID:       deref(i.SubnetId),
		PrivateIP:      deref(i.PrivateIpAddress),
		PublicIP:       deref(i.PublicIpAddress),
		SecurityGroups: securityGroups,
	}
}
