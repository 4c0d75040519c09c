package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Isha3007/Gov-chatbot/internal/adapters/driven/ai"
	"github.com/Isha3007/Gov-chatbot/internal/adapters/driven/storage/sqlite"
	"github.com/Isha3007/Gov-chatbot/internal/core/ports/driven"
	"github.com/Isha3007/Gov-chatbot/internal/core/services"
	"github.com/Isha3007/Gov-chatbot/internal/loaders/pdf"
	"github.com/Isha3007/Gov-chatbot/internal/loaders/web"
	"github.com/Isha3007/Gov-chatbot/internal/logger"
	"github.com/Isha3007/Gov-chatbot/internal/splitter"
)

var (
	flagReset        bool
	flagWebsitesFile string
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Ingest PDF documents and websites into the store",
	Long: `Loads PDFs from the data directory and scrapes the configured
websites, splits them into chunks and stores the chunks not already
present. Re-running is cheap: unchanged content is skipped.`,
	RunE: runIngest,
}

func init() {
	ingestCmd.Flags().BoolVar(&flagReset, "reset", false, "wipe the store before ingesting")
	ingestCmd.Flags().StringVar(&flagWebsitesFile, "websites-file", "", "override the websites list file")
	rootCmd.AddCommand(ingestCmd)
}

// resetStore removes the persistent store directory so the next open
// starts from an empty database. A missing directory is not an error.
func resetStore(dir string) error {
	return os.RemoveAll(dir)
}

func runIngest(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	if flagReset {
		cmd.Println("Clearing the store")
		if err := resetStore(cfg.StoreDir); err != nil {
			return fmt.Errorf("clear store: %w", err)
		}
	}

	strategy, err := cfg.DedupStrategy()
	if err != nil {
		return err
	}

	store, err := sqlite.NewStore(cfg.StoreDir)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	embedder, err := ai.CreateAndValidateEmbeddingService(cfg.EmbeddingSettings())
	if err != nil {
		return err
	}
	defer embedder.Close()
	logger.Debug("Embedding with %s", embedder.ModelName())

	websitesFile := cfg.WebsitesFile
	if flagWebsitesFile != "" {
		websitesFile = flagWebsitesFile
	}

	loaders := []driven.DocumentLoader{
		pdf.New(cfg.DataDir),
		web.New(websitesFile,
			web.WithTimeout(cfg.FetchTimeout()),
			web.WithFetchDelay(cfg.FetchDelay()),
		),
	}

	split := splitter.New(
		splitter.WithChunkSize(cfg.ChunkSize),
		splitter.WithOverlap(cfg.ChunkOverlap),
	)

	svc := services.NewIngestService(loaders, split, embedder, store, strategy)

	report, err := svc.Ingest(ctx)
	if err != nil {
		return fmt.Errorf("ingest failed: %w", err)
	}

	cmd.Printf("Loaded %d documents into %d chunks\n", report.Documents, report.Chunks)
	if report.Inserted > 0 {
		cmd.Printf("Added %d new chunks (%d already stored)\n", report.Inserted, report.Existing)
	} else {
		cmd.Println("No new chunks to add")
	}

	return nil
}
