// Package cli implements the govchat command-line interface.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/Isha3007/Gov-chatbot/internal/config"
	"github.com/Isha3007/Gov-chatbot/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// cfg is loaded before any command runs.
var cfg *config.Config

var (
	flagConfig  string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "govchat",
	Short: "Question answering over government documents",
	Long: `govchat ingests PDF documents and government websites into a local
vector store and answers questions from the stored content.

Run 'govchat ingest' to build or update the store, then
'govchat query "your question"' to ask questions against it.`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(flagVerbose)

		loaded, err := config.Load(flagConfig)
		if err != nil {
			return err
		}
		cfg = loaded
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "govchat.toml", "path to the config file")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
