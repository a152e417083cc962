package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/byunjuneseok/cloud-map/pkg/topology"
	"github.com/byunjuneseok/cloud-map/pkg/types"
)

const awsPumlDist = "https://raw.githubusercontent.com/awslabs/aws-icons-for-plantuml/v20.0/dist"

// Route note truncation limits. Long accounts produce unreadable notes, so
// the table is a summary: first routeTableLimit tables account-wide, first
// routesPerTableLimit routes each.
const (
	routeTableLimit     = 5
	routesPerTableLimit = 3

	routeTableNameWidth = 20
	routeDestWidth      = 18
	routeTargetWidth    = 18
	routeStatusWidth    = 10
)

const instancesPerRow = 3

// PlantUML renders an account topology as a PlantUML document using the
// AWS icon groups.
type PlantUML struct {
	includeUnplacedNAT bool
}

// PlantUMLOption customizes a PlantUML renderer.
type PlantUMLOption func(*PlantUML)

// WithUnplacedNATGateways controls whether NAT gateways with no resolvable
// subnet are drawn directly inside the VPC group. Off by default.
func WithUnplacedNATGateways(include bool) PlantUMLOption {
	return func(g *PlantUML) {
		g.includeUnplacedNAT = include
	}
}

// NewPlantUML returns a PlantUML renderer.
func NewPlantUML(opts ...PlantUMLOption) *PlantUML {
	g := &PlantUML{}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Write renders the document to w.
func (g *PlantUML) Write(account *topology.AccountTopology, w io.Writer) error {
	_, err := io.WriteString(w, g.Generate(account))
	return err
}

// Generate renders the document as a string.
func (g *PlantUML) Generate(account *topology.AccountTopology) string {
	lines := []string{
		"@startuml",
		"!define AWSPuml " + awsPumlDist,
		"!include AWSPuml/AWSCommon.puml",
		"!include AWSPuml/AWSSimplified.puml",
		"!include AWSPuml/Compute/EC2.puml",
		"!include AWSPuml/Compute/EC2Instance.puml",
		"!include AWSPuml/Compute/Lambda.puml",
		"!include AWSPuml/NetworkingContentDelivery/VPCNATGateway.puml",
		"!include AWSPuml/NetworkingContentDelivery/VPCInternetGateway.puml",
		"!include AWSPuml/NetworkingContentDelivery/APIGateway.puml",
		"!include AWSPuml/NetworkingContentDelivery/Route53.puml",
		"!include AWSPuml/Groups/AWSCloud.puml",
		"!include AWSPuml/Groups/VPC.puml",
		"!include AWSPuml/Groups/PublicSubnet.puml",
		"!include AWSPuml/Groups/PrivateSubnet.puml",
		"!include AWSPuml/Groups/AvailabilityZone.puml",
		"",
		"hide stereotype",
		"skinparam linetype ortho",
		"",
		fmt.Sprintf("title AWS Infrastructure - %s", account.Region),
		"",
	}

	for i := range account.VPCs {
		lines = append(lines, g.vpcLines(&account.VPCs[i])...)
	}

	if noteRows := routeNoteRows(account); len(noteRows) > 0 {
		lines = append(lines, "")
		lines = append(lines, "note bottom")
		lines = append(lines, "<size:12><b>Routing Tables</b></size>")
		lines = append(lines, "<#lightblue,#black>|= Route Table |= Destination |= Target |= Status |")
		lines = append(lines, noteRows...)
		lines = append(lines, "end note")
	}

	lines = append(lines, "@enduml")
	return strings.Join(lines, "\n") + "\n"
}

// azGroup partitions one availability zone's subnets into public and
// private sets, both in input order.
type azGroup struct {
	az      string
	public  []types.Subnet
	private []types.Subnet
}

// groupByAZ buckets subnets by availability zone, zones in first-seen order.
func groupByAZ(subnets []types.Subnet) []azGroup {
	var groups []azGroup
	index := make(map[string]int)

	for _, s := range subnets {
		i, ok := index[s.AZ]
		if !ok {
			i = len(groups)
			index[s.AZ] = i
			groups = append(groups, azGroup{az: s.AZ})
		}
		if s.MapPublicIPOnLaunch {
			groups[i].public = append(groups[i].public, s)
		} else {
			groups[i].private = append(groups[i].private, s)
		}
	}

	return groups
}

func (g *PlantUML) vpcLines(topo *topology.NetworkTopology) []string {
	var lines []string
	vpcName := topo.VPC.NameOrID()
	vpcID := sanitizeID(topo.VPC.ID)

	lines = append(lines, fmt.Sprintf("AWSCloudGroup(cloud_%s) {", vpcID))
	lines = append(lines, fmt.Sprintf("  VPCGroup(%s, \"%s\") {", vpcID, vpcName))

	var igwIDs []string
	for _, igw := range topo.InternetGateways {
		igwID := sanitizeID(igw.ID)
		igwIDs = append(igwIDs, igwID)
		lines = append(lines, fmt.Sprintf("    VPCInternetGateway(%s, \"Internet Gateway\", \"\")", igwID))
	}

	// Unplaced NAT ids are merged after the subnet-placed ones so the
	// private-instance egress edges anchor to a NAT that has a subnet.
	var natIDs, unplacedNATIDs []string
	if g.includeUnplacedNAT {
		for _, nat := range topo.UnplacedNatGateways {
			natID := sanitizeID(nat.ID)
			unplacedNATIDs = append(unplacedNATIDs, natID)
			lines = append(lines, fmt.Sprintf("    VPCNATGateway(%s, \"%s\", \"\") #Transparent", natID, natLabel(nat)))
		}
	}

	azGroups := groupByAZ(topo.Subnets)

	for _, group := range azGroups {
		azID := sanitizeID(group.az)
		lines = append(lines, "")
		lines = append(lines, fmt.Sprintf("    AvailabilityZoneGroup(%s, \"\\t%s\\t\") {", azID, group.az))

		for _, subnet := range group.public {
			subnetID := sanitizeID(subnet.ID)
			lines = append(lines, fmt.Sprintf("      PublicSubnetGroup(%s, \"Public subnet\\n%s\") {", subnetID, subnet.CIDR))

			for _, nat := range topo.NatGatewaysBySubnet(subnet.ID) {
				natID := sanitizeID(nat.ID)
				natIDs = append(natIDs, natID)
				lines = append(lines, fmt.Sprintf("        VPCNATGateway(%s, \"%s\", \"\") #Transparent", natID, natLabel(nat)))
			}

			lines = append(lines, instanceLines(topo.InstancesBySubnet(subnet.ID))...)
			lines = append(lines, "      }")
		}

		for _, subnet := range group.private {
			subnetID := sanitizeID(subnet.ID)
			lines = append(lines, fmt.Sprintf("      PrivateSubnetGroup(%s, \"Private subnet\\n%s\") {", subnetID, subnet.CIDR))
			lines = append(lines, instanceLines(topo.InstancesBySubnet(subnet.ID))...)
			lines = append(lines, "      }")
		}

		lines = append(lines, "    }")
	}

	natIDs = append(natIDs, unplacedNATIDs...)

	lines = append(lines, "  }")
	lines = append(lines, "}")

	for _, zone := range topo.HostedZones {
		zoneType := "Public"
		if zone.PrivateZone {
			zoneType = "Private"
		}
		lines = append(lines, fmt.Sprintf("Route53(%s, \"%s\\n%s Zone\", \"\")", sanitizeID(zone.ID), zone.ZoneName, zoneType))
	}

	for _, api := range topo.APIGateways {
		lines = append(lines, fmt.Sprintf("APIGateway(%s, \"%s\\n%s\", \"\")", sanitizeID(api.ID), api.APIName, api.APIType))
	}

	lines = append(lines, "")

	// Egress flow: every NAT drains to the first internet gateway, private
	// instances drain to the first NAT. Extra NAT edges are layout-only.
	if len(natIDs) > 0 && len(igwIDs) > 0 {
		lines = append(lines, "' Network Flow Connections")
		for _, natID := range natIDs {
			lines = append(lines, fmt.Sprintf("%s .u.> %s", natID, igwIDs[0]))
		}
	}

	if len(natIDs) > 0 {
		for _, group := range azGroups {
			for _, subnet := range group.private {
				for _, inst := range topo.InstancesBySubnet(subnet.ID) {
					lines = append(lines, fmt.Sprintf("%s .u.> %s", sanitizeID(inst.ID), natIDs[0]))
				}
			}
		}
	}

	if len(natIDs) > 1 && len(igwIDs) > 0 {
		for _, natID := range natIDs[1:] {
			lines = append(lines, fmt.Sprintf("%s .[hidden]u.> %s", natID, igwIDs[0]))
		}
	}

	lines = append(lines, "")
	return lines
}

// instanceLines emits EC2 nodes batched into rows of instancesPerRow, with
// hidden right-alignment edges between row neighbors. The edges carry no
// topology meaning.
func instanceLines(instances []types.Instance) []string {
	var lines []string

	for i := 0; i < len(instances); i += instancesPerRow {
		row := instances[i:min(i+instancesPerRow, len(instances))]
		rowIDs := make([]string, 0, len(row))

		for _, inst := range row {
			name := inst.Name
			if name == "" {
				name = "Instance"
			}
			instID := sanitizeID(inst.ID)
			rowIDs = append(rowIDs, instID)
			lines = append(lines, fmt.Sprintf("        EC2Instance(%s, \"%s\\n%s\", \"\") #Transparent", instID, name, inst.InstanceType))
		}

		for j := 0; j+1 < len(rowIDs); j++ {
			lines = append(lines, fmt.Sprintf("        %s -[hidden]r- %s", rowIDs[j], rowIDs[j+1]))
		}
	}

	return lines
}

// routeNoteRows builds the summary table rows: first routeTableLimit tables
// across the account, first routesPerTableLimit routes each. Tables with no
// routes are skipped; an empty result suppresses the whole note.
func routeNoteRows(account *topology.AccountTopology) []string {
	var rows []string
	tables := 0

	for i := range account.VPCs {
		for _, rt := range account.VPCs[i].RouteTables {
			if len(rt.Routes) == 0 {
				continue
			}
			if tables == routeTableLimit {
				return rows
			}
			tables++

			rtName := truncate(rt.NameOrID(), routeTableNameWidth)
			for _, route := range rt.Routes[:min(routesPerTableLimit, len(rt.Routes))] {
				dest := truncate(orDefault(route.Destination, "N/A"), routeDestWidth)
				target := truncate(orDefault(route.GatewayID, "local"), routeTargetWidth)
				status := truncate(orDefault(route.State, "active"), routeStatusWidth)
				rows = append(rows, fmt.Sprintf("| %s | %s | %s | %s |", rtName, dest, target, status))
			}
		}
	}

	return rows
}

func natLabel(nat types.NatGateway) string {
	if nat.Name != "" {
		return nat.Name
	}
	return "NAT Gateway"
}

// sanitizeID turns a resource id into a PlantUML-safe identifier by
// replacing every non-alphanumeric rune with '_'. Ids differing only in
// separators collide ("vpc-1.a" vs "vpc-1_a"); resource ids are unique
// within kind and region, so no disambiguation is attempted.
func sanitizeID(id string) string {
	return strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			return r
		}
		return '_'
	}, id)
}

// truncate limits s to max characters. Slicing runes, not bytes, keeps a
// multibyte Name tag from being cut mid-rune.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
