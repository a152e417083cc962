package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/byunjuneseok/cloud-map/internal/aws"
	"github.com/byunjuneseok/cloud-map/internal/ui"
)

var vpcCmd = &cobra.Command{
	Use:   "vpc",
	Short: "Inspect VPCs",
	Long:  `List and describe VPCs and their subnets without rendering a full topology.`,
}

var vpcLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List all VPCs",
	Long: `List all VPCs with their CIDR, state, name, and default flag.

Examples:
  cloud-map vpc ls              # List all VPCs
  cloud-map vpc ls -p prod      # List VPCs using production profile`,
	RunE: runVPCList,
}

var vpcDescribeCmd = &cobra.Command{
	Use:   "describe [vpc-id]",
	Short: "Show detailed VPC information",
	Long: `Show detailed information about a VPC including its subnets.
If no VPC ID is provided, an interactive selector will be shown.

Examples:
  cloud-map vpc describe                  # Interactive VPC selector
  cloud-map vpc describe vpc-12345678     # Describe specific VPC`,
	RunE: runVPCDescribe,
}

var vpcSubnetsCmd = &cobra.Command{
	Use:   "subnets [vpc-id]",
	Short: "List subnets in a VPC",
	Long: `List all subnets in a VPC with their CIDR, AZ, and classification.
If no VPC ID is provided, an interactive selector will be shown.

Examples:
  cloud-map vpc subnets                   # Interactive VPC selector
  cloud-map vpc subnets vpc-12345678      # List subnets in specific VPC`,
	RunE: runVPCSubnets,
}

func init() {
	rootCmd.AddCommand(vpcCmd)

	vpcCmd.AddCommand(vpcLsCmd)
	vpcCmd.AddCommand(vpcDescribeCmd)
	vpcCmd.AddCommand(vpcSubnetsCmd)
}

func newClient(ctx context.Context) (*aws.Client, error) {
	client, err := aws.NewClient(
		ctx,
		aws.WithProfile(GetProfile()),
		aws.WithRegion(GetRegion()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS client: %w", err)
	}
	return client, nil
}

func runVPCList(cmd *cobra.Command, args []string) error {
	client, err := newClient(cmd.Context())
	if err != nil {
		return err
	}

	vpcs, err := client.DiscoverVPCs(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list VPCs: %w", err)
	}

	if len(vpcs) == 0 {
		fmt.Println("No VPCs found")
		return nil
	}

	ui.PrintVPCTable(vpcs)
	return nil
}

// resolveVPCID returns the first positional argument, or runs the
// interactive selector when none was given.
func resolveVPCID(cmd *cobra.Command, args []string, client *aws.Client) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}

	vpcs, err := client.DiscoverVPCs(cmd.Context())
	if err != nil {
		return "", fmt.Errorf("failed to list VPCs: %w", err)
	}

	selected, err := ui.SelectVPC(vpcs)
	if err != nil {
		return "", err
	}
	return selected.ID, nil
}

func runVPCDescribe(cmd *cobra.Command, args []string) error {
	client, err := newClient(cmd.Context())
	if err != nil {
		return err
	}

	vpcID, err := resolveVPCID(cmd, args, client)
	if err != nil {
		return err
	}

	vpcs, err := client.DiscoverVPCs(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to describe VPC: %w", err)
	}

	for _, vpc := range vpcs {
		if vpc.ID != vpcID {
			continue
		}

		fmt.Println()
		fmt.Printf("VPC: %s\n", vpc.ID)
		fmt.Printf("  Name:     %s\n", vpc.Name)
		fmt.Printf("  CIDR:     %s\n", vpc.CIDR)
		fmt.Printf("  State:    %s\n", vpc.State)
		fmt.Printf("  Default:  %v\n", vpc.IsDefault)
		fmt.Println()

		subnets, err := client.DiscoverSubnets(cmd.Context(), vpcID)
		if err != nil {
			return fmt.Errorf("failed to list subnets: %w", err)
		}

		if len(subnets) > 0 {
			fmt.Println("Subnets:")
			ui.PrintSubnetTable(subnets)
		} else {
			fmt.Println("No subnets found in this VPC")
		}

		return nil
	}

	return fmt.Errorf("VPC %s not found", vpcID)
}

func runVPCSubnets(cmd *cobra.Command, args []string) error {
	client, err := newClient(cmd.Context())
	if err != nil {
		return err
	}

	vpcID, err := resolveVPCID(cmd, args, client)
	if err != nil {
		return err
	}

	subnets, err := client.DiscoverSubnets(cmd.Context(), vpcID)
	if err != nil {
		return fmt.Errorf("failed to list subnets: %w", err)
	}

	if len(subnets) == 0 {
		fmt.Println("No subnets found in this VPC")
		return nil
	}

	ui.PrintSubnetTable(subnets)
	return nil
}
