package quoting

import (
	"fmt"
	"sort"

	"github.com/diewo77/go-quotes/internal/models"
	"github.com/diewo77/go-quotes/validation"
)

// TaskUpdate is the requested state of one attached task.
// A nil Included means included; a nil CustomHours clears the override.
type TaskUpdate struct {
	Included    *bool    `json:"included,omitempty"`
	CustomHours *float64 `json:"custom_hours,omitempty"`
}

// ApplyTaskOverrides updates the quote's task rows named in updates, leaves the
// rest untouched, then recalculates the quote totals.
// Nothing is modified when an update fails validation or names a task that is
// not attached to the quote. It returns the rows that were written.
func ApplyTaskOverrides(q *models.Quote, updates map[uint]TaskUpdate) ([]*models.QuoteTask, error) {
	ids := make([]uint, 0, len(updates))
	for id := range updates {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	v := validation.Violations{}
	rows := make([]*models.QuoteTask, 0, len(ids))
	for _, id := range ids {
		qt, ok := q.TaskByID(id)
		if !ok {
			return nil, &NotFoundError{Resource: "quote task", ID: id}
		}
		if ch := updates[id].CustomHours; ch != nil {
			field := fmt.Sprintf("tasks.%d.custom_hours", id)
			validation.NonNegativeFloat(field, *ch, v)
			validation.MaxFloat(field, *ch, MaxTaskHours, v)
		}
		rows = append(rows, qt)
	}
	if !v.Empty() {
		return nil, v
	}

	for i, id := range ids {
		u := updates[id]
		rows[i].Included = u.Included == nil || *u.Included
		if u.CustomHours != nil {
			h := *u.CustomHours
			rows[i].CustomHours = &h
		} else {
			rows[i].CustomHours = nil
		}
	}

	Recalculate(q).Apply(q)
	return rows, nil
}
