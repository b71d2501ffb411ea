// Package persona defines the access-profile record type and its load-time
// validated store. A persona is an abstract, non-individual description of
// systemic access-barrier conditions along fixed dimensions; it never
// represents a real person.
package persona

import "strings"

// Barrier dimension names as they appear in persona records.
const (
	FieldInformationAwareness = "information_awareness_level"
	FieldDocumentation        = "documentation_completeness"
	FieldDigitalAccess        = "digital_access_quality"
	FieldBiometric            = "biometric_authentication_status"
	FieldMobility             = "mobility_and_distance_constraint"
	FieldLocalSupport         = "local_institutional_support"
	FieldGrievance            = "grievance_navigation_agency"
	FieldLanguage             = "language_and_communication_barrier"
)

// Persona is a flat record of access conditions. Identity is the label,
// unique within a loaded set. The struct has no reference-typed fields, so
// a value copy is a fully independent copy.
type Persona struct {
	Label       string `json:"label" validate:"required"`
	Description string `json:"description" validate:"required"`

	InformationAwareness string `json:"information_awareness_level" validate:"required,dimension=information_awareness_level"`
	Documentation        string `json:"documentation_completeness" validate:"required,dimension=documentation_completeness"`
	DigitalAccess        string `json:"digital_access_quality" validate:"required,dimension=digital_access_quality"`
	Biometric            string `json:"biometric_authentication_status" validate:"required,dimension=biometric_authentication_status"`
	Mobility             string `json:"mobility_and_distance_constraint" validate:"required,dimension=mobility_and_distance_constraint"`
	LocalSupport         string `json:"local_institutional_support" validate:"required,dimension=local_institutional_support"`
	Grievance            string `json:"grievance_navigation_agency" validate:"required,dimension=grievance_navigation_agency"`
	Language             string `json:"language_and_communication_barrier" validate:"required,dimension=language_and_communication_barrier"`
}

// Fields lists the barrier dimensions in display order.
func Fields() []string {
	return []string{
		FieldInformationAwareness,
		FieldDocumentation,
		FieldDigitalAccess,
		FieldBiometric,
		FieldMobility,
		FieldLocalSupport,
		FieldGrievance,
		FieldLanguage,
	}
}

// FieldLabels maps dimension names to human-readable labels.
var FieldLabels = map[string]string{
	FieldInformationAwareness: "Information Awareness",
	FieldDocumentation:        "Documentation Status",
	FieldDigitalAccess:        "Digital Access Quality",
	FieldBiometric:            "Biometric Authentication",
	FieldMobility:             "Mobility & Distance",
	FieldLocalSupport:         "Local Institutional Support",
	FieldGrievance:            "Grievance Navigation",
	FieldLanguage:             "Language Barrier",
}

// allowedValues is the closed value set per dimension. Each ladder runs from
// most constrained to least constrained.
var allowedValues = map[string][]string{
	FieldInformationAwareness: {"low_awareness", "partial_awareness", "high_awareness"},
	FieldDocumentation:        {"missing_documents", "partial_documents", "complete_documents"},
	FieldDigitalAccess:        {"no_digital_access", "unstable_digital_access", "robust_digital_access"},
	FieldBiometric:            {"frequent_failures", "intermittent_failures", "seamless_authentication"},
	FieldMobility:             {"severe_constraint", "moderate_constraint", "minimal_constraint"},
	FieldLocalSupport:         {"absent_support", "passive_support", "proactive_support"},
	FieldGrievance:            {"no_agency", "assisted_agency", "independent_agency"},
	FieldLanguage:             {"severe_barrier", "moderate_barrier", "no_barrier"},
}

// AllowedValue reports whether value belongs to the closed set of the given
// dimension. Unknown dimensions never match.
func AllowedValue(field, value string) bool {
	for _, v := range allowedValues[field] {
		if v == value {
			return true
		}
	}
	return false
}

// Value returns the persona's value for a dimension name.
func (p *Persona) Value(field string) (string, bool) {
	switch field {
	case FieldInformationAwareness:
		return p.InformationAwareness, true
	case FieldDocumentation:
		return p.Documentation, true
	case FieldDigitalAccess:
		return p.DigitalAccess, true
	case FieldBiometric:
		return p.Biometric, true
	case FieldMobility:
		return p.Mobility, true
	case FieldLocalSupport:
		return p.LocalSupport, true
	case FieldGrievance:
		return p.Grievance, true
	case FieldLanguage:
		return p.Language, true
	}
	return "", false
}

// SetValue overwrites the persona's value for a dimension name. It reports
// false for unknown dimensions and leaves the persona untouched in that case.
func (p *Persona) SetValue(field, value string) bool {
	switch field {
	case FieldInformationAwareness:
		p.InformationAwareness = value
	case FieldDocumentation:
		p.Documentation = value
	case FieldDigitalAccess:
		p.DigitalAccess = value
	case FieldBiometric:
		p.Biometric = value
	case FieldMobility:
		p.Mobility = value
	case FieldLocalSupport:
		p.LocalSupport = value
	case FieldGrievance:
		p.Grievance = value
	case FieldLanguage:
		p.Language = value
	default:
		return false
	}
	return true
}

// FormatEnumValue converts a snake_case enum value to a readable
// title-case string, e.g. "robust_digital_access" -> "Robust Digital Access".
func FormatEnumValue(value string) string {
	words := strings.Split(value, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
