// Package cli wires the service together behind its commands.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/nimbus-labs/driveingest/internal/logger"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "driveingest",
	Short: "Ingests Google Drive changes into a vector store",
	Long: `driveingest watches a Google Drive account through push notifications,
resolves each notification against the Changes API, extracts document text
and stores embeddings in a vector store.

Bootstrap the change cursor once with "driveingest bootstrap", then run
"driveingest serve" and point a Drive watch channel at the webhook.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "driveingest.toml", "path to the configuration file")
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("%v", err)
		return err
	}
	return nil
}
