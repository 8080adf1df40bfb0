package models

import (
	"testing"
)

func ptr(f float64) *float64 { return &f }

func TestQuote_GetUserID(t *testing.T) {
	q := &Quote{UserID: 42}
	if got := q.GetUserID(); got != 42 {
		t.Errorf("GetUserID() = %d, want 42", got)
	}
}

func TestQuote_CustomFeatureHours(t *testing.T) {
	tests := []struct {
		name   string
		custom []CustomFeature
		want   int
	}{
		{"none", nil, 0},
		{"one", []CustomFeature{{Name: "X", Hours: 5}}, 5},
		{"several", []CustomFeature{{Name: "A", Hours: 3}, {Name: "B", Hours: 12}}, 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := &Quote{CustomFeatures: tt.custom}
			if got := q.CustomFeatureHours(); got != tt.want {
				t.Errorf("CustomFeatureHours() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestQuote_TaskByID(t *testing.T) {
	q := &Quote{Tasks: []QuoteTask{{TaskID: 3}, {TaskID: 7}}}

	qt, ok := q.TaskByID(7)
	if !ok || qt.TaskID != 7 {
		t.Fatalf("TaskByID(7) = %v, %v", qt, ok)
	}
	qt.Included = true
	if !q.Tasks[1].Included {
		t.Error("TaskByID should return a pointer into the quote's tasks")
	}
	if _, ok := q.TaskByID(9); ok {
		t.Error("TaskByID(9) should not be found")
	}
}

func TestQuoteTask_Hours(t *testing.T) {
	task := Task{EstimatedHours: 4}
	tests := []struct {
		name   string
		custom *float64
		want   float64
	}{
		{"catalog estimate", nil, 4},
		{"override", ptr(2.5), 2.5},
		{"zero override", ptr(0), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			qt := &QuoteTask{Task: task, CustomHours: tt.custom}
			if got := qt.Hours(); got != tt.want {
				t.Errorf("Hours() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTask_Links(t *testing.T) {
	common := Task{}
	linked := Task{Features: []Feature{{ID: 2}, {ID: 5}}}

	if !common.IsCommon() || linked.IsCommon() {
		t.Error("IsCommon mismatch")
	}
	if !linked.LinkedTo(5) || linked.LinkedTo(3) {
		t.Error("LinkedTo mismatch")
	}
}
