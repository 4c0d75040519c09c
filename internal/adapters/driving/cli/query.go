package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Isha3007/Gov-chatbot/internal/adapters/driven/ai"
	"github.com/Isha3007/Gov-chatbot/internal/adapters/driven/storage/sqlite"
	"github.com/Isha3007/Gov-chatbot/internal/core/services"
)

var (
	flagTopK int
	flagJSON bool
)

var queryCmd = &cobra.Command{
	Use:   "query \"question\"",
	Short: "Ask a question against the ingested documents",
	Args:  cobra.ExactArgs(1),
	RunE:  runQuery,
}

func init() {
	queryCmd.Flags().IntVarP(&flagTopK, "top-k", "k", 0, "number of chunks to retrieve (default from config)")
	queryCmd.Flags().BoolVar(&flagJSON, "json", false, "print the answer as JSON")
	rootCmd.AddCommand(queryCmd)
}

// queryOutput is the JSON shape printed with --json.
type queryOutput struct {
	Answer  string   `json:"answer"`
	Sources []string `json:"sources"`
}

func runQuery(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	question := args[0]

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

	llm, err := ai.CreateAndValidateLLMService(cfg.LLMSettings())
	if err != nil {
		return err
	}
	defer llm.Close()

	k := cfg.TopK
	if flagTopK > 0 {
		k = flagTopK
	}

	svc := services.NewQueryService(embedder, store, llm)

	answer, err := svc.Answer(ctx, question, k)
	if err != nil {
		return fmt.Errorf("query failed: %w", err)
	}

	if flagJSON {
		out, err := json.MarshalIndent(queryOutput{Answer: answer.Text, Sources: answer.Sources}, "", "  ")
		if err != nil {
			return err
		}
		cmd.Println(string(out))
		return nil
	}

	cmd.Println(answer.Text)
	if len(answer.Sources) > 0 {
		cmd.Println()
		cmd.Println("Sources:")
		for _, src := range answer.Sources {
			cmd.Printf("  - %s\n", src)
		}
	}

	return nil
}
