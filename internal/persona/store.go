package persona

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/accesslens/accesslens/internal/apperr"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// dimension=<field> constrains a value to that dimension's closed set.
	_ = v.RegisterValidation("dimension", func(fl validator.FieldLevel) bool {
		return AllowedValue(fl.Param(), fl.Field().String())
	})
	return v
}

// Store is an immutable, ordered collection of persona records. It is built
// once at startup and injected into whatever needs persona lookup; there is
// no package-level cache and no invalidation path.
type Store struct {
	personas []Persona
	byLabel  map[string]int
}

// Load reads a JSON array of persona records from path and validates every
// record against the closed dimension value sets. Malformed personas are
// rejected here rather than at template-substitution time.
func Load(path string) (*Store, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, apperr.ResourceMissing(path, err)
	}

	var personas []Persona
	if err := json.Unmarshal(raw, &personas); err != nil {
		return nil, apperr.ResourceInvalid(path, fmt.Sprintf("not a valid persona array: %v", err))
	}
	if len(personas) == 0 {
		return nil, apperr.ResourceInvalid(path, "persona array is empty")
	}

	byLabel := make(map[string]int, len(personas))
	for i, p := range personas {
		if err := validate.Struct(p); err != nil {
			return nil, apperr.ResourceInvalid(path, fmt.Sprintf("persona %d (%q): %v", i, p.Label, err))
		}
		if _, dup := byLabel[p.Label]; dup {
			return nil, apperr.ResourceInvalid(path, fmt.Sprintf("duplicate persona label %q", p.Label))
		}
		byLabel[p.Label] = i
	}

	return &Store{personas: personas, byLabel: byLabel}, nil
}

// List returns the personas in file order. The slice is a copy; callers may
// not reach the stored records through it.
func (s *Store) List() []Persona {
	out := make([]Persona, len(s.personas))
	copy(out, s.personas)
	return out
}

// Get returns a copy of the persona with the given label.
func (s *Store) Get(label string) (Persona, bool) {
	i, ok := s.byLabel[label]
	if !ok {
		return Persona{}, false
	}
	return s.personas[i], true
}

// Len reports the number of loaded personas.
func (s *Store) Len() int { return len(s.personas) }
