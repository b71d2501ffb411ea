package api

import (
	"time"

	"github.com/accesslens/accesslens/internal/persona"
)

// GenerateRequest is the body of POST /api/generate.
type GenerateRequest struct {
	PersonaLabel   string        `json:"personaLabel" binding:"required"`
	SchemeCategory string        `json:"schemeCategory" binding:"required"`
	WhatIf         WhatIfRequest `json:"whatIf"`
}

// WhatIfRequest selects at most one hypothetical improvement.
type WhatIfRequest struct {
	Enabled bool   `json:"enabled"`
	Option  string `json:"option"`
}

// GenerateResponse carries one simulation result. Narrative is the raw model
// output; nothing is parsed out of it.
type GenerateResponse struct {
	ScenarioID       string       `json:"scenarioId"`
	PersonaLabel     string       `json:"personaLabel"`
	SchemeCategory   string       `json:"schemeCategory"`
	WhatIfApplied    *AppliedView `json:"whatIfApplied,omitempty"`
	EffectivePersona PersonaView  `json:"effectivePersona"`
	Narrative        string       `json:"narrative"`
	GeneratedAt      string       `json:"generatedAt"`
}

// AppliedView flags the single dimension a What-If override actually
// changed. Absent when the override was disabled or a no-op.
type AppliedView struct {
	Field        string `json:"field"`
	FieldLabel   string `json:"fieldLabel"`
	Value        string `json:"value"`
	ValueDisplay string `json:"valueDisplay"`
}

// PersonaView is the presentation form of a persona record.
type PersonaView struct {
	Label       string          `json:"label"`
	Description string          `json:"description"`
	Conditions  []ConditionView `json:"conditions"`
}

// ConditionView renders one barrier dimension.
type ConditionView struct {
	Field        string `json:"field"`
	FieldLabel   string `json:"fieldLabel"`
	Value        string `json:"value"`
	ValueDisplay string `json:"valueDisplay"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func personaView(p persona.Persona) PersonaView {
	view := PersonaView{
		Label:       p.Label,
		Description: p.Description,
		Conditions:  make([]ConditionView, 0, len(persona.Fields())),
	}
	for _, field := range persona.Fields() {
		value, _ := p.Value(field)
		view.Conditions = append(view.Conditions, ConditionView{
			Field:        field,
			FieldLabel:   persona.FieldLabels[field],
			Value:        value,
			ValueDisplay: persona.FormatEnumValue(value),
		})
	}
	return view
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}
