// Command landingctl holds the operational tasks of the landing site:
// exporting contact messages, uploading image assets, and replaying the
// widget state machines against a synthetic viewport.
package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "landingctl",
	Short:         "Operations for the DONNA landing site",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(exportContactsCmd())
	rootCmd.AddCommand(syncAssetsCmd())
	rootCmd.AddCommand(simulateCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Printf("[CRITICAL] %v", err)
		os.Exit(1)
	}
}
