package pdf

import (
	"bytes"
	"testing"

	"github.com/diewo77/go-quotes/internal/models"
	"github.com/diewo77/go-quotes/internal/quoting"
	"github.com/diewo77/go-quotes/internal/services"
	"github.com/shopspring/decimal"
)

func sampleDocument() *services.QuoteDocument {
	q := &models.Quote{
		ID:                 3,
		ProjectName:        "Acme Store",
		ProjectDescription: "An online shop for handmade goods.",
		WebsiteType:        models.WebsiteType{Name: "E-commerce Website", Description: "Online store"},
		SolutionOverview:   quoting.SolutionOverview("E-commerce Website", "sell online"),
		BusinessValuePoints: []string{
			"Increase revenue through a professional online store that operates 24/7",
		},
		HourlyRate:     decimal.NewFromInt(50),
		TotalHours:     12,
		TotalCost:      decimal.NewFromInt(600),
		CustomFeatures: []models.CustomFeature{{Name: "Gift cards", Hours: 4}},
	}
	return &services.QuoteDocument{
		Quote: q,
		Tasks: []quoting.TaskLine{
			{ID: 1, Name: "Deployment", Hours: 1, Included: true},
			{ID: 2, Name: "Testing", Hours: 2.5, Included: false},
		},
		Deliverables: []quoting.Deliverable{{Name: "E-commerce Website", Description: "Online store"}},
		Date:         "March 05, 2026",
		TotalAmount:  q.TotalCost,
	}
}

func TestRenderer_Render(t *testing.T) {
	out, err := NewRenderer("Web Studio").Render(sampleDocument())
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Errorf("output does not look like a PDF: %q", out[:min(len(out), 8)])
	}
}

func TestFormatHours(t *testing.T) {
	for in, want := range map[float64]string{1: "1", 2.5: "2.5", 0.25: "0.25"} {
		if got := formatHours(in); got != want {
			t.Errorf("formatHours(%v) = %q, want %q", in, got, want)
		}
	}
}
