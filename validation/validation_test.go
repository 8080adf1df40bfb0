package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestValidators(t *testing.T) {
	v := Violations{}
	Required("name", "  ", v)
	MaxLen("title", strings.Repeat("é", 256), 255, v)
	PositiveFloat("rate", 0, v)
	NonNegativeFloat("hours", -0.5, v)
	PositiveInt("qty", -1, v)
	PositiveDecimal("price", decimal.RequireFromString("0.00"), v)
	RangeFloat("pct", 2, 0, 1, v)
	MaxInt("count", 11, 10, v)
	MaxFloat("size", 10.5, 10, v)

	want := map[string]string{
		"name":  "required",
		"title": "too_long",
		"rate":  "must_be_positive",
		"hours": "must_not_be_negative",
		"qty":   "must_be_positive",
		"price": "must_be_positive",
		"pct":   "out_of_range",
		"count": "too_large",
		"size":  "too_large",
	}
	for field, code := range want {
		if v[field] != code {
			t.Errorf("%s = %q, want %q", field, v[field], code)
		}
	}
}

func TestValidators_Pass(t *testing.T) {
	v := Violations{}
	Required("name", "ok", v)
	MaxLen("title", strings.Repeat("a", 255), 255, v)
	NonNegativeFloat("hours", 0, v)
	MaxInt("count", 10, 10, v)
	MaxFloat("size", 10, 10, v)
	PositiveDecimal("price", decimal.RequireFromString("0.01"), v)
	if !v.Empty() || v.Err() != nil {
		t.Errorf("unexpected violations: %v", v)
	}
}

func TestViolations_AsError(t *testing.T) {
	var err error = Violations{"b": "required", "a": "too_long"}
	if err.Error() != "validation failed: a: too_long, b: required" {
		t.Errorf("Error() = %q", err.Error())
	}
	var v Violations
	if !errors.As(err, &v) || v["b"] != "required" {
		t.Errorf("errors.As failed: %v", v)
	}
}
