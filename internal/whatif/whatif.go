// Package whatif applies a single hypothetical improvement to a persona
// copy. The stored persona is never mutated; the effective persona differs
// from its base in at most one dimension.
package whatif

import (
	"fmt"

	"github.com/accesslens/accesslens/internal/persona"
)

// Option is a single controlled improvement: one dimension raised to a more
// favourable value from its closed set.
type Option struct {
	Field string
	Value string
}

// Applied reports the one change that actually took effect.
type Applied struct {
	Field string
	Value string
}

// optionKeys fixes the presentation order of the option table.
var optionKeys = []string{
	"Improved biometric reliability",
	"Better digital access",
	"Stronger local institutional support",
	"Reduced mobility constraints",
	"Greater information awareness",
}

var options = map[string]Option{
	"Improved biometric reliability":       {persona.FieldBiometric, "seamless_authentication"},
	"Better digital access":                {persona.FieldDigitalAccess, "robust_digital_access"},
	"Stronger local institutional support": {persona.FieldLocalSupport, "proactive_support"},
	"Reduced mobility constraints":         {persona.FieldMobility, "minimal_constraint"},
	"Greater information awareness":        {persona.FieldInformationAwareness, "high_awareness"},
}

func init() {
	// The table is static; an out-of-set value here is a programming error,
	// and catching it at init keeps effective personas inside the schema.
	for key, opt := range options {
		if !persona.AllowedValue(opt.Field, opt.Value) {
			panic(fmt.Sprintf("whatif option %q: value %q not allowed for %s", key, opt.Value, opt.Field))
		}
	}
}

// Keys returns the option descriptions in presentation order.
func Keys() []string {
	out := make([]string, len(optionKeys))
	copy(out, optionKeys)
	return out
}

// Lookup resolves an option description.
func Lookup(key string) (Option, bool) {
	opt, ok := options[key]
	return opt, ok
}

// Apply builds the effective persona for a generation request. The returned
// persona is always an independent copy of base. When enabled and the option
// names a value that differs from the base value, exactly that field is
// overwritten and the change is reported; a no-op override returns nil.
func Apply(base persona.Persona, enabled bool, optionKey string) (persona.Persona, *Applied) {
	effective := base
	if !enabled {
		return effective, nil
	}

	opt, ok := options[optionKey]
	if !ok {
		return effective, nil
	}

	current, ok := effective.Value(opt.Field)
	if !ok || current == opt.Value {
		return effective, nil
	}

	effective.SetValue(opt.Field, opt.Value)
	return effective, &Applied{Field: opt.Field, Value: opt.Value}
}
