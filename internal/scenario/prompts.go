package scenario

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/accesslens/accesslens/internal/apperr"
	"github.com/accesslens/accesslens/internal/persona"
)

// Placeholder tokens the scenario template must contain exactly once each.
// Substitution is literal find-and-replace, not a templating language.
const (
	PlaceholderPersona = "[Insert Persona JSON here]"
	PlaceholderScheme  = "[Insert Scheme Category here]"
)

// Prompts holds the two externally authored documents: the system-level
// instruction and the scenario-request template.
type Prompts struct {
	System           string
	ScenarioTemplate string
}

// LoadPrompts reads both prompt documents from disk and validates that each
// placeholder appears exactly once in the scenario template, failing fast
// otherwise. Prompt files are never inlined in code.
func LoadPrompts(systemPath, scenarioPath string) (*Prompts, error) {
	system, err := os.ReadFile(systemPath)
	if err != nil {
		return nil, apperr.ResourceMissing(systemPath, err)
	}
	template, err := os.ReadFile(scenarioPath)
	if err != nil {
		return nil, apperr.ResourceMissing(scenarioPath, err)
	}

	for _, token := range []string{PlaceholderPersona, PlaceholderScheme} {
		if n := strings.Count(string(template), token); n != 1 {
			return nil, apperr.ResourceInvalid(scenarioPath,
				fmt.Sprintf("placeholder %q must appear exactly once, found %d", token, n))
		}
	}

	return &Prompts{
		System:           string(system),
		ScenarioTemplate: string(template),
	}, nil
}

// Compose serializes the effective persona to indented JSON and substitutes
// it, along with the scheme category, into the scenario template.
func (p *Prompts) Compose(per persona.Persona, schemeCategory string) (string, error) {
	personaJSON, err := json.MarshalIndent(per, "", "  ")
	if err != nil {
		return "", fmt.Errorf("serialize persona: %w", err)
	}

	msg := strings.Replace(p.ScenarioTemplate, PlaceholderPersona, string(personaJSON), 1)
	msg = strings.Replace(msg, PlaceholderScheme, schemeCategory, 1)
	return msg, nil
}
