// Package validation collects per-field input violations.
package validation

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// Violations maps a field name to a violation code. A non-empty Violations is
// returned as an error by the services and rendered as 422 details by handlers.
type Violations map[string]string

func (v Violations) Empty() bool { return len(v) == 0 }

func (v Violations) Error() string {
	fields := make([]string, 0, len(v))
	for f := range v {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = fmt.Sprintf("%s: %s", f, v[f])
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// Err returns v as an error, or nil when there is nothing to report.
func (v Violations) Err() error {
	if v.Empty() {
		return nil
	}
	return v
}

// Basic validators
func Required(field, value string, v Violations) {
	if strings.TrimSpace(value) == "" {
		v[field] = "required"
	}
}

func MaxLen(field, value string, max int, v Violations) {
	if utf8.RuneCountInString(value) > max {
		v[field] = "too_long"
	}
}

func PositiveFloat(field string, val float64, v Violations) {
	if val <= 0 {
		v[field] = "must_be_positive"
	}
}

func NonNegativeFloat(field string, val float64, v Violations) {
	if val < 0 {
		v[field] = "must_not_be_negative"
	}
}

func PositiveInt(field string, val int, v Violations) {
	if val <= 0 {
		v[field] = "must_be_positive"
	}
}

// MaxInt flags values above maxVal with "too_large".
func MaxInt(field string, val, maxVal int, v Violations) {
	if val > maxVal {
		v[field] = "too_large"
	}
}

func MaxFloat(field string, val, maxVal float64, v Violations) {
	if val > maxVal {
		v[field] = "too_large"
	}
}

func PositiveDecimal(field string, val decimal.Decimal, v Violations) {
	if !val.IsPositive() {
		v[field] = "must_be_positive"
	}
}

func RangeFloat(field string, val, minVal, maxVal float64, v Violations) {
	if val < minVal || val > maxVal {
		v[field] = "out_of_range"
	}
}
