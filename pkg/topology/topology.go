// Package topology assembles flat, independently discovered resource lists
// into a per-VPC hierarchy. It is pure and deterministic: no I/O, no
// mutation after assembly, identical inputs yield identical output.
package topology

import "github.com/byunjuneseok/cloud-map/pkg/types"

// NetworkTopology is one VPC plus every resource that structurally belongs
// to it. Values are read-only views built by Organize.
type NetworkTopology struct {
	VPC              types.VPC
	Subnets          []types.Subnet
	RouteTables      []types.RouteTable
	InternetGateways []types.InternetGateway
	NatGateways      []types.NatGateway
	Instances        []types.Instance
	LambdaFunctions  []types.LambdaFunction
	HostedZones      []types.HostedZone
	APIGateways      []types.APIGateway

	// UnplacedNatGateways are NAT gateways whose vpc-id matches this VPC
	// but whose subnet-id did not resolve to a known subnet.
	UnplacedNatGateways []types.NatGateway
}

// SubnetByID returns the subnet with the given id, or nil.
func (t *NetworkTopology) SubnetByID(subnetID string) *types.Subnet {
	for i := range t.Subnets {
		if t.Subnets[i].ID == subnetID {
			return &t.Subnets[i]
		}
	}
	return nil
}

// InstancesBySubnet returns the EC2 instances in a specific subnet.
func (t *NetworkTopology) InstancesBySubnet(subnetID string) []types.Instance {
	var out []types.Instance
	for _, inst := range t.Instances {
		if inst.SubnetID == subnetID {
			out = append(out, inst)
		}
	}
	return out
}

// FunctionsBySubnet returns the Lambda functions attached to a specific subnet.
func (t *NetworkTopology) FunctionsBySubnet(subnetID string) []types.LambdaFunction {
	var out []types.LambdaFunction
	for _, fn := range t.LambdaFunctions {
		for _, id := range fn.SubnetIDs {
			if id == subnetID {
				out = append(out, fn)
				break
			}
		}
	}
	return out
}

// NatGatewaysBySubnet returns the NAT gateways located in a specific subnet.
func (t *NetworkTopology) NatGatewaysBySubnet(subnetID string) []types.NatGateway {
	var out []types.NatGateway
	for _, nat := range t.NatGateways {
		if nat.SubnetID == subnetID {
			out = append(out, nat)
		}
	}
	return out
}

// PublicSubnets returns subnets that map public IPs on launch.
func (t *NetworkTopology) PublicSubnets() []types.Subnet {
	var out []types.Subnet
	for _, s := range t.Subnets {
		if s.MapPublicIPOnLaunch {
			out = append(out, s)
		}
	}
	return out
}

// PrivateSubnets returns subnets that don't map public IPs on launch.
func (t *NetworkTopology) PrivateSubnets() []types.Subnet {
	var out []types.Subnet
	for _, s := range t.Subnets {
		if !s.MapPublicIPOnLaunch {
			out = append(out, s)
		}
	}
	return out
}

// AccountTopology is a region plus its VPC topologies in discovery order.
type AccountTopology struct {
	Region string
	VPCs   []NetworkTopology
}

// VPCTopology returns the topology for a VPC id, or nil.
func (a *AccountTopology) VPCTopology(vpcID string) *NetworkTopology {
	for i := range a.VPCs {
		if a.VPCs[i].VPC.ID == vpcID {
			return &a.VPCs[i]
		}
	}
	return nil
}

// AllInstances returns every EC2 instance across all VPCs, in VPC order.
func (a *AccountTopology) AllInstances() []types.Instance {
	var out []types.Instance
	for _, t := range a.VPCs {
		out = append(out, t.Instances...)
	}
	return out
}

// AllSubnets returns every subnet across all VPCs, in VPC order.
func (a *AccountTopology) AllSubnets() []types.Subnet {
	var out []types.Subnet
	for _, t := range a.VPCs {
		out = append(out, t.Subnets...)
	}
	return out
}

// AllRouteTables returns every route table across all VPCs, in VPC order.
func (a *AccountTopology) AllRouteTables() []types.RouteTable {
	var out []types.RouteTable
	for _, t := range a.VPCs {
		out = append(out, t.RouteTables...)
	}
	return out
}
