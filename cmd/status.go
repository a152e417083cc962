package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/byunjuneseok/cloud-map/internal/ui"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the active profile and authentication status",
	Long: `Display the resolved profile and region and verify that the
credentials can call AWS.

Examples:
  cloud-map status`,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	fmt.Println("Current Status")
	fmt.Println(ui.MutedStyle.Render("─────────────────────────────────"))
	fmt.Println()

	if GetProfile() != "" {
		fmt.Printf("Profile:  %s\n", GetProfile())
	} else {
		fmt.Println("Profile:  " + ui.MutedStyle.Render("(default)"))
	}
	if GetRegion() != "" {
		fmt.Printf("Region:   %s\n", GetRegion())
	}
	fmt.Println()

	client, err := newClient(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Print("Auth:     ")
	identity, err := client.GetCallerIdentity(cmd.Context())
	if err != nil {
		fmt.Println(ui.StoppedStyle.Render("✗ Not authenticated"))
		fmt.Printf("          %s\n", ui.MutedStyle.Render(err.Error()))
		fmt.Println()
		fmt.Println("To authenticate:")
		fmt.Printf("  aws sso login --profile %s\n", GetProfile())
		return nil
	}

	fmt.Println(ui.RunningStyle.Render("✓ Authenticated"))
	fmt.Printf("Account:  %s\n", identity.Account)
	fmt.Printf("User:     %s\n", identity.UserID)
	if identity.Arn != "" {
		fmt.Printf("ARN:      %s\n", ui.MutedStyle.Render(identity.Arn))
	}

	return nil
}
