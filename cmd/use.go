package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/byunjuneseok/cloud-map/internal/config"
)

var useRegion string

var useCmd = &cobra.Command{
	Use:   "use <profile>",
	Short: "Save a default profile and region",
	Long: `Save the AWS profile (and optionally region) to ~/.cloud-map/config.yaml
so subsequent commands use them without --profile/--region flags.

The saved values sit between the flags and the AWS_* environment
variables in precedence: flag > saved config > environment.

Examples:
  cloud-map use prod                         # Save default profile
  cloud-map use prod --region ap-southeast-1 # Save profile and region`,
	Args: cobra.ExactArgs(1),
	RunE: runUse,
}

func init() {
	rootCmd.AddCommand(useCmd)

	useCmd.Flags().StringVar(&useRegion, "region", "", "Region to save alongside the profile")
}

func runUse(cmd *cobra.Command, args []string) error {
	profileName := args[0]

	if err := config.SetProfile(profileName); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}

	if useRegion != "" {
		if err := config.SetRegion(useRegion); err != nil {
			return fmt.Errorf("failed to save region: %w", err)
		}
	}

	fmt.Printf("Saved defaults to %s\n", config.GetConfigPath())
	fmt.Printf("  Profile: %s\n", profileName)
	if useRegion != "" {
		fmt.Printf("  Region:  %s\n", useRegion)
	}

	return nil
}
