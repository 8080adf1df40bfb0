// Package quoting holds the pure quote calculation rules: estimation,
// task resolution, overrides and the display projections derived from a quote.
// Nothing in here touches the database.
package quoting

import (
	"fmt"

	"github.com/diewo77/go-quotes/internal/models"
	"github.com/diewo77/go-quotes/validation"
	"github.com/shopspring/decimal"
)

// Upper bounds on hour inputs. They keep every total well inside int range.
const (
	MaxCustomFeatureHours = 10000
	MaxTaskHours          = 10000
)

// Totals are the derived hour and cost figures of a quote.
type Totals struct {
	Hours int             `json:"total_hours"`
	Cost  decimal.Decimal `json:"total_cost"`
}

// Estimate computes creation-time totals from the website type base hours,
// the selected catalog features and the custom feature lines.
// Selected ids are treated as a set and must all be present in features.
func Estimate(wt models.WebsiteType, features []models.Feature, selectedIDs []uint, custom []models.CustomFeature, rate decimal.Decimal) (Totals, error) {
	v := validation.Violations{}
	validation.PositiveDecimal("hourly_rate", rate, v)

	byID := make(map[uint]models.Feature, len(features))
	for _, f := range features {
		byID[f.ID] = f
	}

	hours := wt.BaseHours
	seen := make(map[uint]bool, len(selectedIDs))
	for _, id := range selectedIDs {
		if seen[id] {
			continue
		}
		seen[id] = true
		f, ok := byID[id]
		if !ok {
			v["selected_features"] = "not_found"
			continue
		}
		hours += f.EstimatedHours
	}

	for i, cf := range custom {
		validation.Required(fmt.Sprintf("custom_features.%d.name", i), cf.Name, v)
		field := fmt.Sprintf("custom_features.%d.hours", i)
		validation.PositiveInt(field, cf.Hours, v)
		validation.MaxInt(field, cf.Hours, MaxCustomFeatureHours, v)
		hours += cf.Hours
	}

	if !v.Empty() {
		return Totals{}, v
	}
	return Totals{Hours: hours, Cost: Cost(hours, rate)}, nil
}

// Recalculate derives totals from the quote's current task snapshot, honoring
// each row's included flag and custom hours, plus the stored custom features.
// WebsiteType and Tasks.Task must be loaded.
func Recalculate(q *models.Quote) Totals {
	sum := decimal.NewFromInt(int64(q.WebsiteType.BaseHours))
	for i := range q.Tasks {
		qt := &q.Tasks[i]
		if !qt.Included {
			continue
		}
		sum = sum.Add(decimal.NewFromFloat(qt.Hours()))
	}
	sum = sum.Add(decimal.NewFromInt(int64(q.CustomFeatureHours())))

	hours := int(sum.Round(0).IntPart())
	return Totals{Hours: hours, Cost: Cost(hours, q.HourlyRate)}
}

// Cost is hours × rate rounded to cents.
func Cost(hours int, rate decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(int64(hours)).Mul(rate).Round(2)
}

// Apply stores the totals on the quote.
func (t Totals) Apply(q *models.Quote) {
	q.TotalHours = t.Hours
	q.TotalCost = t.Cost
}
