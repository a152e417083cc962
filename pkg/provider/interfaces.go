package provider

import (
	"context"
	"errors"
	"fmt"

	"github.com/byunjuneseok/cloud-map/pkg/types"
)

// Common errors
var (
	ErrNotFound         = errors.New("resource not found")
	ErrNotConfigured    = errors.New("provider not configured")
	ErrAuthFailed       = errors.New("authentication failed")
	ErrPermissionDenied = errors.New("permission denied")
)

// DiscoveryError wraps a failure from one resource-family discoverer so the
// orchestrating caller can tell which family broke.
type DiscoveryError struct {
	Kind  types.Kind
	Cause error
}

func (e *DiscoveryError) Error() string {
	return fmt.Sprintf("discovery failed: %s, cause: %v", e.Kind, e.Cause)
}

func (e *DiscoveryError) Unwrap() error { return e.Cause }

// NetworkDiscoverer lists the network primitives of a region. The per-VPC
// methods accept an empty vpcID to list across the whole region.
type NetworkDiscoverer interface {
	// DiscoverVPCs returns all VPCs in the region
	DiscoverVPCs(ctx context.Context) ([]types.VPC, error)

	// DiscoverSubnets returns subnets, optionally filtered by VPC
	DiscoverSubnets(ctx context.Context, vpcID string) ([]types.Subnet, error)

	// DiscoverRouteTables returns route tables, optionally filtered by VPC
	DiscoverRouteTables(ctx context.Context, vpcID string) ([]types.RouteTable, error)

	// DiscoverInternetGateways returns internet gateways, optionally
	// filtered by attached VPC
	DiscoverInternetGateways(ctx context.Context, vpcID string) ([]types.InternetGateway, error)

	// DiscoverNatGateways returns NAT gateways, optionally filtered by VPC
	DiscoverNatGateways(ctx context.Context, vpcID string) ([]types.NatGateway, error)
}

// ComputeDiscoverer lists compute resources.
type ComputeDiscoverer interface {
	// DiscoverInstances returns EC2 instances, optionally filtered by subnet
	DiscoverInstances(ctx context.Context, subnetID string) ([]types.Instance, error)
}

// ServerlessDiscoverer lists VPC-attached serverless functions.
type ServerlessDiscoverer interface {
	// DiscoverFunctions returns Lambda functions, optionally filtered by VPC
	DiscoverFunctions(ctx context.Context, vpcID string) ([]types.LambdaFunction, error)
}

// NetworkUtilitiesDiscoverer lists DNS zones and API endpoints.
type NetworkUtilitiesDiscoverer interface {
	// DiscoverHostedZones returns Route53 hosted zones, optionally filtered
	// by VPC association
	DiscoverHostedZones(ctx context.Context, vpcID string) ([]types.HostedZone, error)

	// DiscoverAPIGateways returns REST and HTTP API gateways
	DiscoverAPIGateways(ctx context.Context, vpcID string) ([]types.APIGateway, error)
}
