package queue

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// Config is the per-queue policy fixed at session creation.
type Config struct {
	MaxSlots              int  `json:"max_slots" validate:"min=1,max=500"`
	MinMaxRuleEnabled     bool `json:"min_max_rule_enabled"`
	PriorityMinLabEnabled bool `json:"priority_min_lab_enabled"`
	MaxAttempts           int  `json:"max_attempts" validate:"min=1,max=100"`
	// PriorityCohortLimit caps how many students may share the lowest lab for the priority rule to apply.
	PriorityCohortLimit int  `json:"priority_cohort_limit" validate:"min=0,max=1000"`
	StrictTransitions   bool `json:"strict_transitions"`
}

// DefaultConfig mirrors what new sessions got before configuration was introduced.
func DefaultConfig() Config {
	return Config{
		MaxSlots:              35,
		MinMaxRuleEnabled:     true,
		PriorityMinLabEnabled: true,
		MaxAttempts:           2,
		PriorityCohortLimit:   11,
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report JSON names so callers see the field they sent.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate rejects out-of-range values.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return invalidArgument("config."+fe.Field(), "must satisfy %s=%s, got %v", fe.Tag(), fe.Param(), fe.Value())
	}
	return errors.Wrap(err, "validate config")
}
