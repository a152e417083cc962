package aws

import (
	"testing"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/stretchr/testify/assert"
)

func Test_TagMap(t *testing.T) {
	assert := assert.New(t)

	tags := tagMap([]ec2types.Tag{
		{Key: awssdk.String("Name"), Value: awssdk.String("prod-vpc")},
		{Key: awssdk.String("env"), Value: awssdk.String("prod")},
	})

	assert.Equal(map[string]string{"Name": "prod-vpc", "env": "prod"}, tags)
	assert.Empty(tagMap(nil))
}

func Test_ToVPC(t *testing.T) {
	assert := assert.New(t)

	c := &Client{region: "us-east-1"}
	v := c.toVPC(ec2types.Vpc{
		VpcId:     awssdk.String("vpc-1"),
		CidrBlock: awssdk.String("10.0.0.0/16"),
		State:     ec2types.VpcStateAvailable,
		IsDefault: awssdk.Bool(true),
		Tags: []ec2types.Tag{
			{Key: awssdk.String("Name"), Value: awssdk.String("prod")},
		},
	})

	assert.Equal("vpc-1", v.ID)
	assert.Equal("us-east-1", v.Region)
	assert.Equal("prod", v.Name)
	assert.Equal("10.0.0.0/16", v.CIDR)
	assert.Equal("available", v.State)
	assert.True(v.IsDefault)
}

func Test_ToInternetGateway_Detached(t *testing.T) {
	assert := assert.New(t)

	c := &Client{region: "us-east-1"}

	detached := c.toInternetGateway(ec2types.InternetGateway{
		InternetGatewayId: awssdk.String("igw-1"),
	})
	assert.Equal("detached", detached.State)
	assert.Empty(detached.VPCID)

	attached := c.toInternetGateway(ec2types.InternetGateway{
		InternetGatewayId: awssdk.String("igw-2"),
		Attachments: []ec2types.InternetGatewayAttachment{
			{VpcId: awssdk.String("vpc-1"), State: ec2types.AttachmentStatusAttached},
		},
	})
	assert.Equal("vpc-1", attached.VPCID)
	assert.Equal("attached", attached.State)
}

func Test_ToRouteTable(t *testing.T) {
	assert := assert.New(t)

	c := &Client{region: "us-east-1"}
	rt := c.toRouteTable(ec2types.RouteTable{
		RouteTableId: awssdk.String("rtb-1"),
		VpcId:        awssdk.String("vpc-1"),
		Routes: []ec2types.Route{
			{
				DestinationCidrBlock: awssdk.String("0.0.0.0/0"),
				GatewayId:            awssdk.String("igw-1"),
				State:                ec2types.RouteStateActive,
			},
			{DestinationCidrBlock: awssdk.String("10.0.0.0/16")},
		},
		Associations: []ec2types.RouteTableAssociation{
			{SubnetId: awssdk.String("subnet-1")},
			{}, // main-table association, no subnet
		},
	})

	assert.Equal("rtb-1", rt.ID)
	assert.Equal("vpc-1", rt.VPCID)
	assert.Len(rt.Routes, 2)
	assert.Equal("0.0.0.0/0", rt.Routes[0].Destination)
	assert.Equal("igw-1", rt.Routes[0].GatewayID)
	assert.Equal("active", rt.Routes[0].State)
	assert.Equal([]string{"subnet-1"}, rt.SubnetAssociations)
}
