package scenario

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/accesslens/accesslens/internal/apperr"
	"github.com/accesslens/accesslens/internal/persona"
)

const testTemplate = `Persona:
[Insert Persona JSON here]

Scheme category: [Insert Scheme Category here]
`

func writePromptFiles(t *testing.T, system, template string) (string, string) {
	t.Helper()
	dir := t.TempDir()
	systemPath := filepath.Join(dir, "system_prompt.txt")
	scenarioPath := filepath.Join(dir, "scenario_prompt.txt")
	require.NoError(t, os.WriteFile(systemPath, []byte(system), 0o644))
	require.NoError(t, os.WriteFile(scenarioPath, []byte(template), 0o644))
	return systemPath, scenarioPath
}

func testPersona() persona.Persona {
	return persona.Persona{
		Label:                "Test Profile",
		Description:          "abstract access profile used in tests",
		InformationAwareness: "low_awareness",
		Documentation:        "partial_documents",
		DigitalAccess:        "no_digital_access",
		Biometric:            "frequent_failures",
		Mobility:             "severe_constraint",
		LocalSupport:         "passive_support",
		Grievance:            "no_agency",
		Language:             "moderate_barrier",
	}
}

func TestLoadPrompts_Success(t *testing.T) {
	systemPath, scenarioPath := writePromptFiles(t, "system doc", testTemplate)

	prompts, err := LoadPrompts(systemPath, scenarioPath)
	require.NoError(t, err)
	assert.Equal(t, "system doc", prompts.System)
	assert.Contains(t, prompts.ScenarioTemplate, PlaceholderPersona)
}

func TestLoadPrompts_MissingSystemFile(t *testing.T) {
	_, scenarioPath := writePromptFiles(t, "system doc", testTemplate)
	missing := filepath.Join(t.TempDir(), "absent.txt")

	_, err := LoadPrompts(missing, scenarioPath)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindResourceMissing))
	assert.Contains(t, err.Error(), missing)
}

func TestLoadPrompts_MissingScenarioFile(t *testing.T) {
	systemPath, _ := writePromptFiles(t, "system doc", testTemplate)
	missing := filepath.Join(t.TempDir(), "absent.txt")

	_, err := LoadPrompts(systemPath, missing)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindResourceMissing))
	assert.Contains(t, err.Error(), missing)
}

func TestLoadPrompts_PlaceholderCount(t *testing.T) {
	tests := []struct {
		name     string
		template string
	}{
		{"persona placeholder absent", "Scheme category: [Insert Scheme Category here]"},
		{"scheme placeholder absent", "Persona: [Insert Persona JSON here]"},
		{"duplicate persona placeholder", testTemplate + "\n[Insert Persona JSON here]"},
		{"duplicate scheme placeholder", testTemplate + "\n[Insert Scheme Category here]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			systemPath, scenarioPath := writePromptFiles(t, "system doc", tt.template)
			_, err := LoadPrompts(systemPath, scenarioPath)
			require.Error(t, err)
			assert.True(t, apperr.IsKind(err, apperr.KindResourceMissing))
			assert.Contains(t, err.Error(), "exactly once")
		})
	}
}

func TestCompose_SubstitutesBothPlaceholders(t *testing.T) {
	systemPath, scenarioPath := writePromptFiles(t, "system doc", testTemplate)
	prompts, err := LoadPrompts(systemPath, scenarioPath)
	require.NoError(t, err)

	msg, err := prompts.Compose(testPersona(), "Food & Nutrition")
	require.NoError(t, err)

	assert.NotContains(t, msg, PlaceholderPersona)
	assert.NotContains(t, msg, PlaceholderScheme)
	assert.Contains(t, msg, "Food & Nutrition")
	assert.Contains(t, msg, `"label": "Test Profile"`)
	assert.Contains(t, msg, `"digital_access_quality": "no_digital_access"`)
}

func TestValidCategory(t *testing.T) {
	for _, c := range SchemeCategories {
		assert.True(t, ValidCategory(c), c)
	}
	assert.False(t, ValidCategory("Housing"))
	assert.False(t, ValidCategory(""))
}
