package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/byunjuneseok/cloud-map/internal/config"
	"github.com/byunjuneseok/cloud-map/internal/logging"
)

var (
	// Global flags
	profile string
	region  string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "cloud-map",
	Short: "Map AWS network infrastructure into text reports and diagrams",
	Long: `cloud-map discovers the network, compute, and serverless resources of an
AWS account, assembles them into a per-VPC topology, and renders the result
as text reports or PlantUML diagrams.

Mapping Commands:
  cloud-map map                      # Full text report of the region
  cloud-map map --vpc vpc-12345678   # Limit the report to one VPC
  cloud-map diagram -o infra.puml    # PlantUML diagram of the region

Inspection Commands:
  cloud-map vpc ls                   # List all VPCs
  cloud-map vpc describe             # Interactive VPC details
  cloud-map vpc subnets vpc-1234     # List subnets in a VPC
  cloud-map status                   # Show identity and auth status

Configuration Commands:
  cloud-map use prod                 # Save a default profile (and region)`,
}

// Execute runs the root command.
func Execute() {
	defer logging.Sync()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global persistent flags (available to all subcommands)
	rootCmd.PersistentFlags().StringVarP(&profile, "profile", "p", "", "AWS profile to use")
	rootCmd.PersistentFlags().StringVarP(&region, "region", "r", "", "AWS region to use")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	// Bind flags to viper
	_ = viper.BindPFlag("profile", rootCmd.PersistentFlags().Lookup("profile"))
	_ = viper.BindPFlag("region", rootCmd.PersistentFlags().Lookup("region"))
}

func initConfig() {
	logging.Initialize(verbose)

	// Read from environment variables
	viper.SetEnvPrefix("CLOUD_MAP")
	viper.AutomaticEnv()

	// Priority for profile: --profile flag > saved config > AWS_PROFILE env
	if profile == "" {
		if saved := config.GetSavedProfile(); saved != "" {
			profile = saved
		} else {
			profile = os.Getenv("AWS_PROFILE")
		}
	}

	// Priority for region: --region flag > saved config > AWS env vars
	if region == "" {
		if saved := config.GetSavedRegion(); saved != "" {
			region = saved
		} else {
			region = os.Getenv("AWS_REGION")
			if region == "" {
				region = os.Getenv("AWS_DEFAULT_REGION")
			}
		}
	}
}

// GetProfile returns the AWS profile
func GetProfile() string {
	return profile
}

// GetRegion returns the AWS region
func GetRegion() string {
	return region
}
