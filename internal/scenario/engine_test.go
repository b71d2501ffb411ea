package scenario

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/accesslens/accesslens/internal/apperr"
	"github.com/accesslens/accesslens/internal/config"
	"github.com/accesslens/accesslens/internal/logger"
)

func testEngine(systemPath, scenarioPath string) *Engine {
	cfg := &config.Config{
		Model: config.ModelConfig{
			Name:            "gemini-2.5-flash-lite",
			Temperature:     0.7,
			MaxOutputTokens: 2048,
		},
		Paths: config.PathsConfig{
			SystemPrompt:   systemPath,
			ScenarioPrompt: scenarioPath,
		},
	}
	return NewEngine(cfg, logger.NewNop())
}

func TestGenerate_MissingCredential(t *testing.T) {
	t.Setenv(config.APIKeyEnv, "")
	systemPath, scenarioPath := writePromptFiles(t, "system doc", testTemplate)
	engine := testEngine(systemPath, scenarioPath)

	_, err := engine.Generate(context.Background(), testPersona(), "Food & Nutrition")

	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindConfigMissing))
	assert.Contains(t, err.Error(), config.APIKeyEnv)
}

func TestGenerate_MissingTemplateBeforeNetwork(t *testing.T) {
	// A syntactically valid but fake key: the template check must fail
	// before any client is constructed or any request is attempted.
	t.Setenv(config.APIKeyEnv, "test-key")
	missing := filepath.Join(t.TempDir(), "absent.txt")
	engine := testEngine(missing, missing)

	_, err := engine.Generate(context.Background(), testPersona(), "Food & Nutrition")

	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindResourceMissing))
	assert.Contains(t, err.Error(), missing)
}

func TestGenerate_MalformedTemplateBeforeNetwork(t *testing.T) {
	t.Setenv(config.APIKeyEnv, "test-key")
	systemPath, scenarioPath := writePromptFiles(t, "system doc", "no placeholders here")
	engine := testEngine(systemPath, scenarioPath)

	_, err := engine.Generate(context.Background(), testPersona(), "Food & Nutrition")

	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindResourceMissing))
}
