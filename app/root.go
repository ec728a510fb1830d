// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "puppyvill",
	Short: "PuppyVill is the web back-office for the PuppyVill dog daycare",
	Long: `PuppyVill serves the daycare's marketing content and back-office
through a JSON REST API: announcements, programs, schedule, gallery,
prices, grooming, cafe menu, admissions, FAQ, reviews and site settings.`,
	Args: cobra.OnlyValidArgs,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
