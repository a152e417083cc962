package topology

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/byunjuneseok/cloud-map/pkg/types"
)

func vpc(id string) types.VPC {
	return types.VPC{
		Meta:  types.NewMeta(id, "us-east-1", "", nil),
		CIDR:  "10.0.0.0/16",
		State: "available",
	}
}

func subnet(id, vpcID, az string, public bool) types.Subnet {
	return types.Subnet{
		Meta:                types.NewMeta(id, "us-east-1", "", nil),
		VPCID:               vpcID,
		CIDR:                "10.0.1.0/24",
		AZ:                  az,
		State:               "available",
		MapPublicIPOnLaunch: public,
	}
}

func instance(id, vpcID, subnetID string) types.Instance {
	return types.Instance{
		Meta:         types.NewMeta(id, "us-east-1", "", nil),
		InstanceType: "t3.micro",
		State:        "running",
		VPCID:        vpcID,
		SubnetID:     subnetID,
		PrivateIP:    "10.0.1.5",
	}
}

func natGateway(id, vpcID, subnetID string) types.NatGateway {
	return types.NatGateway{
		Meta:     types.NewMeta(id, "us-east-1", "", nil),
		VPCID:    vpcID,
		SubnetID: subnetID,
		State:    "available",
	}
}

func Test_Organize_JoinCorrectness(t *testing.T) {
	assert := assert.New(t)

	res := Resources{
		VPCs: []types.VPC{vpc("vpc-1"), vpc("vpc-2")},
		Subnets: []types.Subnet{
			subnet("subnet-1", "vpc-1", "us-east-1a", true),
			subnet("subnet-2", "vpc-2", "us-east-1a", false),
			subnet("subnet-orphan", "vpc-gone", "us-east-1a", false),
		},
		InternetGateways: []types.InternetGateway{
			{Meta: types.NewMeta("igw-1", "us-east-1", "", nil), VPCID: "vpc-1", State: "available"},
		},
		Instances: []types.Instance{
			instance("i-1", "vpc-1", "subnet-1"),
			instance("i-2", "vpc-2", "subnet-2"),
		},
	}

	topologies := Organize(res)

	assert.Len(topologies, 2)
	assert.Equal("vpc-1", topologies[0].VPC.ID)
	assert.Equal("vpc-2", topologies[1].VPC.ID)

	// Each child lands in exactly the topology of its VPC.
	assert.Len(topologies[0].Subnets, 1)
	assert.Equal("subnet-1", topologies[0].Subnets[0].ID)
	assert.Len(topologies[1].Subnets, 1)
	assert.Equal("subnet-2", topologies[1].Subnets[0].ID)

	assert.Len(topologies[0].InternetGateways, 1)
	assert.Empty(topologies[1].InternetGateways)

	assert.Len(topologies[0].Instances, 1)
	assert.Equal("i-1", topologies[0].Instances[0].ID)
	assert.Len(topologies[1].Instances, 1)

	// The orphan subnet appears nowhere.
	for _, topo := range topologies {
		for _, s := range topo.Subnets {
			assert.NotEqual("subnet-orphan", s.ID)
		}
	}
}

func Test_Organize_DeduplicatesByID(t *testing.T) {
	assert := assert.New(t)

	res := Resources{
		VPCs: []types.VPC{vpc("vpc-1"), vpc("vpc-1")},
		Subnets: []types.Subnet{
			subnet("subnet-1", "vpc-1", "us-east-1a", true),
			subnet("subnet-1", "vpc-1", "us-east-1b", true),
		},
	}

	topologies := Organize(res)

	assert.Len(topologies, 1)
	assert.Len(topologies[0].Subnets, 1)
	// First occurrence wins.
	assert.Equal("us-east-1a", topologies[0].Subnets[0].AZ)
}

func Test_Organize_NatGatewayPlacement(t *testing.T) {
	tests := []struct {
		name         string
		nat          types.NatGateway
		wantPlaced   int
		wantUnplaced int
	}{
		{
			name:       "nat joins via subnet membership",
			nat:        natGateway("nat-1", "vpc-1", "subnet-1"),
			wantPlaced: 1,
		},
		{
			name:         "nat with unknown subnet is unplaced",
			nat:          natGateway("nat-1", "vpc-1", "subnet-gone"),
			wantUnplaced: 1,
		},
		{
			name: "nat with foreign vpc and foreign subnet joins nowhere",
			nat:  natGateway("nat-1", "vpc-gone", "subnet-gone"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert := assert.New(t)

			res := Resources{
				VPCs:        []types.VPC{vpc("vpc-1")},
				Subnets:     []types.Subnet{subnet("subnet-1", "vpc-1", "us-east-1a", true)},
				NatGateways: []types.NatGateway{tt.nat},
			}

			topologies := Organize(res)

			assert.Len(topologies[0].NatGateways, tt.wantPlaced)
			assert.Len(topologies[0].UnplacedNatGateways, tt.wantUnplaced)
		})
	}
}

func Test_Organize_LambdaSubnetIntersection(t *testing.T) {
	assert := assert.New(t)

	fn := types.LambdaFunction{
		Meta:         types.NewMeta("fn-api", "us-east-1", "fn-api", nil),
		FunctionName: "fn-api",
		SubnetIDs:    []string{"subnet-gone", "subnet-1"},
	}
	detached := types.LambdaFunction{
		Meta:         types.NewMeta("fn-other", "us-east-1", "fn-other", nil),
		FunctionName: "fn-other",
		SubnetIDs:    []string{"subnet-gone"},
	}

	res := Resources{
		VPCs:            []types.VPC{vpc("vpc-1")},
		Subnets:         []types.Subnet{subnet("subnet-1", "vpc-1", "us-east-1a", false)},
		LambdaFunctions: []types.LambdaFunction{fn, detached},
	}

	topologies := Organize(res)

	assert.Len(topologies[0].LambdaFunctions, 1)
	assert.Equal("fn-api", topologies[0].LambdaFunctions[0].FunctionName)
}

func Test_Organize_ZonesAndAPIsManyToMany(t *testing.T) {
	assert := assert.New(t)

	zone := types.HostedZone{
		Meta:            types.NewMeta("Z123", "us-east-1", "", nil),
		ZoneName:        "internal.example.com.",
		PrivateZone:     true,
		VPCAssociations: []string{"vpc-1", "vpc-2"},
	}
	api := types.APIGateway{
		Meta:     types.NewMeta("api-1", "us-east-1", "orders", nil),
		APIName:  "orders",
		APIType:  "HTTP",
		VPCLinks: []string{"vpc-2"},
	}

	res := Resources{
		VPCs:        []types.VPC{vpc("vpc-1"), vpc("vpc-2")},
		HostedZones: []types.HostedZone{zone},
		APIGateways: []types.APIGateway{api},
	}

	topologies := Organize(res)

	// The zone is attached to both topologies, the API only to vpc-2.
	assert.Len(topologies[0].HostedZones, 1)
	assert.Len(topologies[1].HostedZones, 1)
	assert.Empty(topologies[0].APIGateways)
	assert.Len(topologies[1].APIGateways, 1)
}

func Test_Organize_Deterministic(t *testing.T) {
	assert := assert.New(t)

	res := Resources{
		VPCs: []types.VPC{vpc("vpc-1"), vpc("vpc-2")},
		Subnets: []types.Subnet{
			subnet("subnet-1", "vpc-1", "us-east-1a", true),
			subnet("subnet-2", "vpc-1", "us-east-1b", false),
			subnet("subnet-3", "vpc-2", "us-east-1a", false),
		},
		Instances: []types.Instance{
			instance("i-1", "vpc-1", "subnet-1"),
			instance("i-2", "vpc-1", "subnet-2"),
		},
		NatGateways: []types.NatGateway{natGateway("nat-1", "vpc-1", "subnet-1")},
	}

	assert.Equal(Organize(res), Organize(res))
}

func Test_AssembleAccount(t *testing.T) {
	assert := assert.New(t)

	topologies := Organize(Resources{VPCs: []types.VPC{vpc("vpc-1")}})
	account := AssembleAccount("us-east-1", topologies)

	assert.Equal("us-east-1", account.Region)
	assert.Len(account.VPCs, 1)
}
