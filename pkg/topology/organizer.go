package topology

import "github.com/byunjuneseok/cloud-map/pkg/types"

// Resources is the flat input to Organize: one list per resource family,
// each in discovery order.
type Resources struct {
	VPCs             []types.VPC
	Subnets          []types.Subnet
	RouteTables      []types.RouteTable
	InternetGateways []types.InternetGateway
	NatGateways      []types.NatGateway
	Instances        []types.Instance
	LambdaFunctions  []types.LambdaFunction
	HostedZones      []types.HostedZone
	APIGateways      []types.APIGateway
}

// Organize joins the flat lists into one NetworkTopology per VPC, in VPC
// input order. Children referencing a VPC absent from the input are dropped;
// duplicate ids within a child list keep the first occurrence. Zones and API
// gateways join by VPC-association membership, so one may land in several
// topologies.
func Organize(res Resources) []NetworkTopology {
	topologies := make([]NetworkTopology, 0, len(res.VPCs))
	seenVPCs := make(map[string]bool, len(res.VPCs))

	for _, vpc := range res.VPCs {
		vpcID := vpc.ID
		if seenVPCs[vpcID] {
			continue
		}
		seenVPCs[vpcID] = true

		subnets := collect(res.Subnets, func(s types.Subnet) bool {
			return s.VPCID == vpcID
		})

		subnetIDs := make(map[string]bool, len(subnets))
		for _, s := range subnets {
			subnetIDs[s.ID] = true
		}

		topo := NetworkTopology{
			VPC:     vpc,
			Subnets: subnets,
			RouteTables: collect(res.RouteTables, func(rt types.RouteTable) bool {
				return rt.VPCID == vpcID
			}),
			InternetGateways: collect(res.InternetGateways, func(igw types.InternetGateway) bool {
				return igw.VPCID == vpcID
			}),
			NatGateways: collect(res.NatGateways, func(nat types.NatGateway) bool {
				return subnetIDs[nat.SubnetID]
			}),
			UnplacedNatGateways: collect(res.NatGateways, func(nat types.NatGateway) bool {
				return nat.VPCID == vpcID && !subnetIDs[nat.SubnetID]
			}),
			Instances: collect(res.Instances, func(inst types.Instance) bool {
				return inst.VPCID == vpcID
			}),
			LambdaFunctions: collect(res.LambdaFunctions, func(fn types.LambdaFunction) bool {
				for _, id := range fn.SubnetIDs {
					if subnetIDs[id] {
						return true
					}
				}
				return false
			}),
			HostedZones: collect(res.HostedZones, func(z types.HostedZone) bool {
				for _, id := range z.VPCAssociations {
					if id == vpcID {
						return true
					}
				}
				return false
			}),
			APIGateways: collect(res.APIGateways, func(api types.APIGateway) bool {
				for _, id := range api.VPCLinks {
					if id == vpcID {
						return true
					}
				}
				return false
			}),
		}

		topologies = append(topologies, topo)
	}

	return topologies
}

// AssembleAccount wraps the per-VPC topologies into an account-level view.
func AssembleAccount(region string, topologies []NetworkTopology) AccountTopology {
	return AccountTopology{
		Region: region,
		VPCs:   topologies,
	}
}

// collect filters in order, dropping records whose id was already kept.
func collect[T types.Resource](in []T, match func(T) bool) []T {
	var out []T
	seen := make(map[string]bool, len(in))
	for _, r := range in {
		if !match(r) || seen[r.ResourceID()] {
			continue
		}
		seen[r.ResourceID()] = true
		out = append(out, r)
	}
	return out
}
