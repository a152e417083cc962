package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/byunjuneseok/cloud-map/internal/aws"
	"github.com/byunjuneseok/cloud-map/pkg/render"
	"github.com/byunjuneseok/cloud-map/pkg/topology"
)

var (
	mapVPCID  string
	mapOutput string
	mapLevel  string
)

var mapCmd = &cobra.Command{
	Use:   "map",
	Short: "Discover the account and render a text report",
	Long: `Discover the network, compute, and serverless resources of the region,
assemble them into a topology, and render a text report.

The --level flag selects the report depth:
  full      banner, account summary, and per-subnet breakdown (default)
  account   region totals plus one summary per VPC
  vpc       one summary per VPC
  subnet    per-subnet breakdown per VPC

Examples:
  cloud-map map                          # Full report to stdout
  cloud-map map --vpc vpc-12345678       # Limit to one VPC
  cloud-map map --level account          # Account summary only
  cloud-map map -o report.txt            # Write to a file`,
	RunE: runMap,
}

func init() {
	rootCmd.AddCommand(mapCmd)

	mapCmd.Flags().StringVar(&mapVPCID, "vpc", "", "Limit discovery to one VPC id")
	mapCmd.Flags().StringVarP(&mapOutput, "output", "o", "", "Write the report to a file instead of stdout")
	mapCmd.Flags().StringVar(&mapLevel, "level", "full", "Report depth: full, account, vpc, or subnet")
}

func runMap(cmd *cobra.Command, args []string) error {
	account, err := discoverAccount(cmd.Context(), mapVPCID)
	if err != nil {
		return err
	}

	return withOutputSink(mapOutput, func(w io.Writer) error {
		return renderReport(account, w)
	})
}

func renderReport(account *topology.AccountTopology, w io.Writer) error {
	text := render.NewText()

	switch mapLevel {
	case "full":
		return text.FullReport(account, w)
	case "account":
		return text.AccountReport(account, w)
	case "vpc":
		for i := range account.VPCs {
			if err := text.VPCReport(&account.VPCs[i], w); err != nil {
				return err
			}
		}
		return nil
	case "subnet":
		for i := range account.VPCs {
			if err := text.SubnetReport(&account.VPCs[i], w); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown report level %q", mapLevel)
	}
}

// discoverAccount builds the AWS client and runs the full discovery sweep
// honoring the persistent profile/region flags.
func discoverAccount(ctx context.Context, vpcID string) (*topology.AccountTopology, error) {
	client, err := aws.NewClient(
		ctx,
		aws.WithProfile(GetProfile()),
		aws.WithRegion(GetRegion()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS client: %w", err)
	}

	account, err := aws.DiscoverAccount(ctx, client, vpcID)
	if err != nil {
		return nil, err
	}

	return &account, nil
}

// withOutputSink runs fn against stdout, or against a freshly created file
// when path is non-empty.
func withOutputSink(path string, fn func(io.Writer) error) error {
	if path == "" {
		return fn(os.Stdout)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	if err := fn(f); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
