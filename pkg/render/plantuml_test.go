package render

import (
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/byunjuneseok/cloud-map/pkg/topology"
	"github.com/byunjuneseok/cloud-map/pkg/types"
)

func Test_GroupByAZ_FirstSeenOrder(t *testing.T) {
	assert := assert.New(t)

	// Zones interleave in the input; grouping must keep first-seen order.
	subnets := []types.Subnet{
		{Meta: types.NewMeta("subnet-1", "us-east-1", "", nil), AZ: "us-east-1b", MapPublicIPOnLaunch: true},
		{Meta: types.NewMeta("subnet-2", "us-east-1", "", nil), AZ: "us-east-1a"},
		{Meta: types.NewMeta("subnet-3", "us-east-1", "", nil), AZ: "us-east-1b"},
		{Meta: types.NewMeta("subnet-4", "us-east-1", "", nil), AZ: "us-east-1a", MapPublicIPOnLaunch: true},
	}

	groups := groupByAZ(subnets)

	assert.Len(groups, 2)
	assert.Equal("us-east-1b", groups[0].az)
	assert.Equal("us-east-1a", groups[1].az)
	assert.Len(groups[0].public, 1)
	assert.Len(groups[0].private, 1)
	assert.Equal("subnet-1", groups[0].public[0].ID)
	assert.Equal("subnet-4", groups[1].public[0].ID)
}

func Test_InstanceLines_RowsOfThree(t *testing.T) {
	assert := assert.New(t)

	instances := make([]types.Instance, 4)
	for i := range instances {
		instances[i] = types.Instance{
			Meta:         types.NewMeta(fmt.Sprintf("i-%d", i), "us-east-1", "", nil),
			InstanceType: "t3.micro",
		}
	}

	lines := instanceLines(instances)

	var edges []string
	for _, line := range lines {
		if strings.Contains(line, "-[hidden]r-") {
			edges = append(edges, strings.TrimSpace(line))
		}
	}

	// Row one holds three instances (two neighbor edges), row two holds the
	// fourth alone (no edge).
	assert.Len(edges, 2)
	assert.Equal("i_0 -[hidden]r- i_1", edges[0])
	assert.Equal("i_1 -[hidden]r- i_2", edges[1])

	// Unnamed instances fall back to the generic label.
	assert.Contains(lines[0], "\"Instance\\nt3.micro\"")
}

func diagramAccount() *topology.AccountTopology {
	topologies := topology.Organize(topology.Resources{
		VPCs: []types.VPC{
			{Meta: types.NewMeta("vpc-1", "us-east-1", "", nil), CIDR: "10.0.0.0/16", State: "available"},
		},
		Subnets: []types.Subnet{
			{
				Meta:                types.NewMeta("subnet-pub", "us-east-1", "", nil),
				VPCID:               "vpc-1",
				CIDR:                "10.0.1.0/24",
				AZ:                  "us-east-1a",
				MapPublicIPOnLaunch: true,
			},
			{
				Meta:  types.NewMeta("subnet-priv", "us-east-1", "", nil),
				VPCID: "vpc-1",
				CIDR:  "10.0.2.0/24",
				AZ:    "us-east-1a",
			},
		},
		InternetGateways: []types.InternetGateway{
			{Meta: types.NewMeta("igw-1", "us-east-1", "", nil), VPCID: "vpc-1", State: "available"},
		},
		NatGateways: []types.NatGateway{
			{Meta: types.NewMeta("nat-1", "us-east-1", "", nil), VPCID: "vpc-1", SubnetID: "subnet-pub", State: "available"},
			{Meta: types.NewMeta("nat-2", "us-east-1", "", nil), VPCID: "vpc-1", SubnetID: "subnet-pub", State: "available"},
			{Meta: types.NewMeta("nat-lost", "us-east-1", "", nil), VPCID: "vpc-1", SubnetID: "subnet-gone", State: "available"},
		},
		Instances: []types.Instance{
			{
				Meta:         types.NewMeta("i-priv", "us-east-1", "", nil),
				InstanceType: "t3.micro",
				State:        "running",
				VPCID:        "vpc-1",
				SubnetID:     "subnet-priv",
			},
		},
	})
	account := topology.AssembleAccount("us-east-1", topologies)
	return &account
}

func Test_Generate_StructureAndFlowEdges(t *testing.T) {
	assert := assert.New(t)

	out := NewPlantUML().Generate(diagramAccount())

	assert.True(strings.HasPrefix(out, "@startuml\n"))
	assert.True(strings.HasSuffix(out, "@enduml\n"))
	assert.Contains(out, "title AWS Infrastructure - us-east-1")
	assert.Contains(out, "AWSCloudGroup(cloud_vpc_1) {")
	assert.Contains(out, "  VPCGroup(vpc_1, \"vpc-1\") {")
	assert.Contains(out, "AvailabilityZoneGroup(us_east_1a, \"\\tus-east-1a\\t\") {")
	assert.Contains(out, "PublicSubnetGroup(subnet_pub, \"Public subnet\\n10.0.1.0/24\") {")
	assert.Contains(out, "PrivateSubnetGroup(subnet_priv, \"Private subnet\\n10.0.2.0/24\") {")
	assert.Contains(out, "VPCInternetGateway(igw_1, \"Internet Gateway\", \"\")")
	assert.Contains(out, "VPCNATGateway(nat_1, \"NAT Gateway\", \"\") #Transparent")

	// Every NAT drains to the first internet gateway.
	assert.Contains(out, "nat_1 .u.> igw_1")
	assert.Contains(out, "nat_2 .u.> igw_1")
	// Private instances drain to the first NAT.
	assert.Contains(out, "i_priv .u.> nat_1")
	// Extra NATs get layout-only edges.
	assert.Contains(out, "nat_2 .[hidden]u.> igw_1")
	assert.NotContains(out, "nat_1 .[hidden]u.> igw_1")

	// The NAT with an unresolvable subnet stays out unless asked for.
	assert.NotContains(out, "nat_lost")
}

func Test_Generate_UnplacedNATGateways(t *testing.T) {
	assert := assert.New(t)

	account := diagramAccount()
	out := NewPlantUML(WithUnplacedNATGateways(true)).Generate(account)

	assert.Contains(out, "VPCNATGateway(nat_lost, \"NAT Gateway\", \"\") #Transparent")
	assert.Contains(out, "nat_lost .u.> igw_1")

	// Private-instance egress still anchors to a NAT with a subnet, not
	// the unplaced one.
	assert.Contains(out, "i_priv .u.> nat_1")
	assert.NotContains(out, "i_priv .u.> nat_lost")
}

func Test_Generate_Idempotent(t *testing.T) {
	assert := assert.New(t)

	account := diagramAccount()
	renderer := NewPlantUML()
	assert.Equal(renderer.Generate(account), renderer.Generate(account))
}

func Test_Generate_ZonesAndAPIs(t *testing.T) {
	assert := assert.New(t)

	topologies := topology.Organize(topology.Resources{
		VPCs: []types.VPC{
			{Meta: types.NewMeta("vpc-1", "us-east-1", "", nil), CIDR: "10.0.0.0/16"},
		},
		HostedZones: []types.HostedZone{
			{
				Meta:            types.NewMeta("Z123", "us-east-1", "", nil),
				ZoneName:        "internal.example.com.",
				PrivateZone:     true,
				VPCAssociations: []string{"vpc-1"},
			},
		},
		APIGateways: []types.APIGateway{
			{
				Meta:     types.NewMeta("api-1", "us-east-1", "orders", nil),
				APIName:  "orders",
				APIType:  "HTTP",
				VPCLinks: []string{"vpc-1"},
			},
		},
	})
	account := topology.AssembleAccount("us-east-1", topologies)

	out := NewPlantUML().Generate(&account)

	assert.Contains(out, "Route53(Z123, \"internal.example.com.\\nPrivate Zone\", \"\")")
	assert.Contains(out, "APIGateway(api_1, \"orders\\nHTTP\", \"\")")
}

func Test_RouteNoteRows_Truncation(t *testing.T) {
	assert := assert.New(t)

	// Seven tables with five routes each: only the first five tables make
	// the note, three routes per table.
	var tables []types.RouteTable
	for i := 0; i < 7; i++ {
		rt := types.RouteTable{
			Meta:  types.NewMeta(fmt.Sprintf("rtb-%d", i), "us-east-1", "", nil),
			VPCID: "vpc-1",
		}
		for j := 0; j < 5; j++ {
			rt.Routes = append(rt.Routes, types.Route{
				Destination: fmt.Sprintf("10.%d.%d.0/24-very-long-cidr", i, j),
				GatewayID:   "igw-1",
				State:       "active",
			})
		}
		tables = append(tables, rt)
	}

	topologies := topology.Organize(topology.Resources{
		VPCs: []types.VPC{
			{Meta: types.NewMeta("vpc-1", "us-east-1", "", nil), CIDR: "10.0.0.0/16"},
		},
		RouteTables: tables,
	})
	account := topology.AssembleAccount("us-east-1", topologies)

	rows := routeNoteRows(&account)

	assert.Len(rows, 15)
	for _, row := range rows {
		cells := strings.Split(strings.Trim(row, "| "), " | ")
		assert.Len(cells, 4)
		assert.LessOrEqual(len(cells[1]), 18)
	}
	assert.NotContains(strings.Join(rows, "\n"), "rtb-5")
}

func Test_RouteNoteRows_SkipsEmptyTablesAndDefaults(t *testing.T) {
	assert := assert.New(t)

	topologies := topology.Organize(topology.Resources{
		VPCs: []types.VPC{
			{Meta: types.NewMeta("vpc-1", "us-east-1", "", nil), CIDR: "10.0.0.0/16"},
		},
		RouteTables: []types.RouteTable{
			{Meta: types.NewMeta("rtb-empty", "us-east-1", "", nil), VPCID: "vpc-1"},
			{
				Meta:   types.NewMeta("rtb-main", "us-east-1", "", nil),
				VPCID:  "vpc-1",
				Routes: []types.Route{{Destination: "10.0.0.0/16"}},
			},
		},
	})
	account := topology.AssembleAccount("us-east-1", topologies)

	rows := routeNoteRows(&account)

	assert.Len(rows, 1)
	// Empty target and state fall back to "local"/"active".
	assert.Equal("| rtb-main | 10.0.0.0/16 | local | active |", rows[0])
}

func Test_Truncate_MultibyteNames(t *testing.T) {
	assert := assert.New(t)

	topologies := topology.Organize(topology.Resources{
		VPCs: []types.VPC{
			{Meta: types.NewMeta("vpc-1", "us-east-1", "", nil), CIDR: "10.0.0.0/16"},
		},
		RouteTables: []types.RouteTable{
			{
				Meta: types.NewMeta("rtb-1", "us-east-1", "", map[string]string{
					"Name": "ルートテーブル本番環境共有経路一覧表その一",
				}),
				VPCID:  "vpc-1",
				Routes: []types.Route{{Destination: "0.0.0.0/0", GatewayID: "igw-1", State: "active"}},
			},
		},
	})
	account := topology.AssembleAccount("us-east-1", topologies)

	rows := routeNoteRows(&account)

	assert.Len(rows, 1)
	assert.True(utf8.ValidString(rows[0]))
	assert.Contains(rows[0], string([]rune("ルートテーブル本番環境共有経路一覧表その一")[:20]))

	assert.Equal("短い", truncate("短い", 18))
	assert.Equal("abcde", truncate("abcdefg", 5))
}

func Test_RouteNote_SuppressedWhenNoRoutes(t *testing.T) {
	assert := assert.New(t)

	out := NewPlantUML().Generate(diagramAccount())
	assert.NotContains(out, "note bottom")
	assert.NotContains(out, "Routing Tables")
}

func Test_SanitizeID(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"vpc-0123abcd", "vpc_0123abcd"},
		{"internal.example.com.", "internal_example_com_"},
		{"Z06PLAIN", "Z06PLAIN"},
		{"us-east-1a", "us_east_1a"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitizeID(tt.in))
		})
	}
}
