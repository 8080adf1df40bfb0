package quoting

import (
	"errors"
	"testing"

	"github.com/diewo77/go-quotes/validation"
	"github.com/shopspring/decimal"
)

func TestApplyTaskOverrides(t *testing.T) {
	q := sampleQuote()

	rows, err := ApplyTaskOverrides(q, map[uint]TaskUpdate{
		3: {},
		4: {Included: ptrBool(false)},
		2: {CustomHours: ptrFloat(0)},
	})
	if err != nil {
		t.Fatalf("ApplyTaskOverrides() error = %v", err)
	}
	if len(rows) != 3 || rows[0].TaskID != 2 || rows[2].TaskID != 4 {
		t.Fatalf("rows = %+v, want task ids 2,3,4", rows)
	}

	if qt, _ := q.TaskByID(3); !qt.Included || qt.CustomHours != nil {
		t.Errorf("task 3 = %+v, want included without override", qt)
	}
	if qt, _ := q.TaskByID(4); qt.Included || qt.CustomHours != nil {
		t.Errorf("task 4 = %+v, want excluded with override cleared", qt)
	}
	if qt, _ := q.TaskByID(1); !qt.Included || qt.CustomHours != nil {
		t.Errorf("untouched task 1 changed: %+v", qt)
	}

	// 40 + 2 + 0 + 10 + 3 custom = 55
	if q.TotalHours != 55 || !q.TotalCost.Equal(decimal.NewFromInt(2750)) {
		t.Errorf("totals = %d / %s, want 55 / 2750", q.TotalHours, q.TotalCost)
	}
}

func TestApplyTaskOverrides_Empty(t *testing.T) {
	q := sampleQuote()
	rows, err := ApplyTaskOverrides(q, nil)
	if err != nil || len(rows) != 0 {
		t.Fatalf("ApplyTaskOverrides(nil) = %v, %v", rows, err)
	}
	if q.TotalHours != 50 {
		t.Errorf("TotalHours = %d, want 50", q.TotalHours)
	}
}

func TestApplyTaskOverrides_RejectsWithoutMutating(t *testing.T) {
	tests := []struct {
		name    string
		updates map[uint]TaskUpdate
		check   func(error) bool
	}{
		{
			name:    "unknown task",
			updates: map[uint]TaskUpdate{4: {Included: ptrBool(false)}, 9: {}},
			check:   func(err error) bool { return errors.Is(err, ErrNotFound) },
		},
		{
			name:    "hours over cap",
			updates: map[uint]TaskUpdate{4: {Included: ptrBool(false)}, 2: {CustomHours: ptrFloat(1e300)}},
			check: func(err error) bool {
				var v validation.Violations
				return errors.As(err, &v) && v["tasks.2.custom_hours"] == "too_large"
			},
		},
		{
			name:    "negative hours",
			updates: map[uint]TaskUpdate{4: {Included: ptrBool(false)}, 1: {CustomHours: ptrFloat(-1)}},
			check: func(err error) bool {
				var v validation.Violations
				return errors.As(err, &v) && v["tasks.1.custom_hours"] != ""
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := sampleQuote()
			_, err := ApplyTaskOverrides(q, tt.updates)
			if !tt.check(err) {
				t.Fatalf("error = %v", err)
			}
			if qt, _ := q.TaskByID(4); !qt.Included || qt.CustomHours == nil {
				t.Errorf("task 4 mutated: %+v", qt)
			}
			if q.TotalHours != 0 {
				t.Errorf("totals applied on failure: %d", q.TotalHours)
			}
		})
	}
}

func TestApplyTaskOverrides_ExcludedIgnoresCustomHours(t *testing.T) {
	q := sampleQuote()
	before := Recalculate(q).Hours

	if _, err := ApplyTaskOverrides(q, map[uint]TaskUpdate{4: {Included: ptrBool(false), CustomHours: ptrFloat(1.25)}}); err != nil {
		t.Fatal(err)
	}
	// 49.75 - 1.25 = 48.5, rounds to 49
	if q.TotalHours != 49 || before != 50 {
		t.Errorf("TotalHours = %d (before %d), want 49 (before 50)", q.TotalHours, before)
	}
}

func TestApplyTaskOverrides_MissingFieldsReset(t *testing.T) {
	q := sampleQuote()
	if _, err := ApplyTaskOverrides(q, map[uint]TaskUpdate{3: {}, 4: {}}); err != nil {
		t.Fatal(err)
	}
	if !q.Tasks[2].Included {
		t.Error("missing included should mean included")
	}
	if q.Tasks[3].CustomHours != nil {
		t.Error("missing custom_hours should clear the override")
	}
}
