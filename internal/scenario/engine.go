// Package scenario composes prompt documents and runs one synchronous model
// request per generation action. No conversation state is retained and no
// persona data is logged.
package scenario

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/accesslens/accesslens/internal/apperr"
	"github.com/accesslens/accesslens/internal/config"
	"github.com/accesslens/accesslens/internal/logger"
	"github.com/accesslens/accesslens/internal/persona"
)

// Engine issues scenario-generation requests against the hosted model.
// It holds no client state between calls: the credential is re-read from the
// environment and the prompt files from disk on every generation, so a key
// exported after startup takes effect without a restart.
type Engine struct {
	model config.ModelConfig
	paths config.PathsConfig
	log   logger.Logger
}

func NewEngine(cfg *config.Config, log logger.Logger) *Engine {
	return &Engine{
		model: cfg.Model,
		paths: cfg.Paths,
		log:   log.With(map[string]interface{}{"component": "scenario-engine"}),
	}
}

// Generate runs one blocking two-message (system + user) completion request
// and returns the first candidate's text unmodified. Failure order: missing
// credential, then missing/invalid prompt files, then the remote request —
// the network is never touched for the first two.
func (e *Engine) Generate(ctx context.Context, per persona.Persona, schemeCategory string) (string, error) {
	apiKey := os.Getenv(config.APIKeyEnv)
	if apiKey == "" {
		return "", apperr.ConfigMissing(
			fmt.Sprintf("%s environment variable is not set", config.APIKeyEnv),
			fmt.Sprintf("export %s before requesting scenario generation", config.APIKeyEnv),
		)
	}

	prompts, err := LoadPrompts(e.paths.SystemPrompt, e.paths.ScenarioPrompt)
	if err != nil {
		return "", err
	}

	userMessage, err := prompts.Compose(per, schemeCategory)
	if err != nil {
		return "", apperr.Upstream(err)
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return "", apperr.Upstream(fmt.Errorf("create model client: %w", err))
	}
	defer client.Close()

	model := client.GenerativeModel(e.model.Name)
	model.SetTemperature(float32(e.model.Temperature))
	model.SetMaxOutputTokens(e.model.MaxOutputTokens)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(prompts.System)},
	}

	e.log.Info("requesting scenario generation", map[string]interface{}{
		"model":       e.model.Name,
		"temperature": e.model.Temperature,
	})

	resp, err := model.GenerateContent(ctx, genai.Text(userMessage))
	if err != nil {
		return "", apperr.Upstream(fmt.Errorf("generate content: %w", err))
	}

	text := candidateText(resp)
	if text == "" {
		return "", apperr.Upstream(fmt.Errorf("no content generated"))
	}
	return text, nil
}

// candidateText extracts the text parts of the first candidate. The output
// is opaque narrative; it is never parsed or validated against a schema.
func candidateText(resp *genai.GenerateContentResponse) string {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			b.WriteString(string(t))
		}
	}
	return b.String()
}
