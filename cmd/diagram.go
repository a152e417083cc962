package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/byunjuneseok/cloud-map/pkg/render"
)

var (
	diagramVPCID       string
	diagramOutput      string
	diagramUnplacedNAT bool
)

var diagramCmd = &cobra.Command{
	Use:   "diagram",
	Short: "Discover the account and render a PlantUML diagram",
	Long: `Discover the network, compute, and serverless resources of the region
and render them as a PlantUML document using the AWS icon groups.

Examples:
  cloud-map diagram                      # PlantUML to stdout
  cloud-map diagram -o infra.puml        # Write to a file
  cloud-map diagram --vpc vpc-12345678   # Limit to one VPC
  cloud-map diagram --show-unplaced-nat  # Draw NAT gateways with no subnet`,
	RunE: runDiagram,
}

func init() {
	rootCmd.AddCommand(diagramCmd)

	diagramCmd.Flags().StringVar(&diagramVPCID, "vpc", "", "Limit discovery to one VPC id")
	diagramCmd.Flags().StringVarP(&diagramOutput, "output", "o", "", "Write the diagram to a file instead of stdout")
	diagramCmd.Flags().BoolVar(&diagramUnplacedNAT, "show-unplaced-nat", false, "Draw NAT gateways whose subnet could not be resolved")
}

func runDiagram(cmd *cobra.Command, args []string) error {
	account, err := discoverAccount(cmd.Context(), diagramVPCID)
	if err != nil {
		return err
	}

	generator := render.NewPlantUML(render.WithUnplacedNATGateways(diagramUnplacedNAT))

	return withOutputSink(diagramOutput, func(w io.Writer) error {
		return generator.Write(account, w)
	})
}
