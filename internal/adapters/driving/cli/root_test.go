package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "govchat", rootCmd.Use)
	assert.True(t, rootCmd.SilenceUsage)
}

func TestRootCmd_RegistersSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	assert.True(t, names["ingest"])
	assert.True(t, names["query"])
	assert.True(t, names["version"])
}

func TestIngestCmd_Flags(t *testing.T) {
	require.NotNil(t, ingestCmd.Flags().Lookup("reset"))
	require.NotNil(t, ingestCmd.Flags().Lookup("websites-file"))
}

func TestQueryCmd_RequiresQuestion(t *testing.T) {
	err := queryCmd.Args(queryCmd, []string{})
	assert.Error(t, err)

	err = queryCmd.Args(queryCmd, []string{"what is the budget?"})
	assert.NoError(t, err)

	err = queryCmd.Args(queryCmd, []string{"too", "many"})
	assert.Error(t, err)
}

func TestQueryCmd_Flags(t *testing.T) {
	require.NotNil(t, queryCmd.Flags().Lookup("top-k"))
	require.NotNil(t, queryCmd.Flags().Lookup("json"))
}
