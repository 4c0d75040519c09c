package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Isha3007/Gov-chatbot/internal/core/domain"
)

func TestCreateEmbeddingService(t *testing.T) {
	tests := []struct {
		name        string
		settings    *domain.EmbeddingSettings
		wantErr     bool
		errContains string
	}{
		{
			name:        "nil settings returns error",
			settings:    nil,
			wantErr:     true,
			errContains: "not configured",
		},
		{
			name:        "unconfigured settings returns error",
			settings:    &domain.EmbeddingSettings{},
			wantErr:     true,
			errContains: "not configured",
		},
		{
			name: "ollama provider creates service",
			settings: &domain.EmbeddingSettings{
				Provider: domain.AIProviderOllama,
				BaseURL:  "http://localhost:11434",
				Model:    "nomic-embed-text",
			},
		},
		{
			name: "openai provider creates service",
			settings: &domain.EmbeddingSettings{
				Provider: domain.AIProviderOpenAI,
				APIKey:   "test-key",
				Model:    "text-embedding-3-small",
			},
		},
		{
			name: "openai without api key returns error",
			settings: &domain.EmbeddingSettings{
				Provider: domain.AIProviderOpenAI,
				Model:    "text-embedding-3-small",
			},
			wantErr:     true,
			errContains: "API key",
		},
		{
			name: "unknown provider returns error",
			settings: &domain.EmbeddingSettings{
				Provider: "cohere",
			},
			wantErr:     true,
			errContains: "cohere",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := CreateEmbeddingService(tt.settings)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, svc)
			svc.Close()
		})
	}
}

func TestCreateEmbeddingService_UnknownWrapsSentinel(t *testing.T) {
	_, err := CreateEmbeddingService(&domain.EmbeddingSettings{Provider: "cohere"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnsupportedProvider)
}

func TestCreateLLMService(t *testing.T) {
	tests := []struct {
		name        string
		settings    *domain.LLMSettings
		wantErr     bool
		errContains string
	}{
		{
			name:        "nil settings returns error",
			settings:    nil,
			wantErr:     true,
			errContains: "not configured",
		},
		{
			name: "ollama provider creates service",
			settings: &domain.LLMSettings{
				Provider: domain.AIProviderOllama,
				Model:    "llama3.2",
			},
		},
		{
			name: "openai provider creates service",
			settings: &domain.LLMSettings{
				Provider: domain.AIProviderOpenAI,
				APIKey:   "test-key",
				Model:    "gpt-4o-mini",
			},
		},
		{
			name: "unknown provider returns error",
			settings: &domain.LLMSettings{
				Provider: "gemini",
			},
			wantErr:     true,
			errContains: "gemini",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := CreateLLMService(tt.settings)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, svc)
			svc.Close()
		})
	}
}

func TestCreateLLMService_UnknownWrapsSentinel(t *testing.T) {
	_, err := CreateLLMService(&domain.LLMSettings{Provider: "gemini"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnsupportedProvider)
}
