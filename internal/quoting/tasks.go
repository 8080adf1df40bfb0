package quoting

import (
	"sort"

	"github.com/diewo77/go-quotes/internal/models"
)

// ResolveTasks builds the task snapshot for a new quote: every task linked to a
// selected feature plus the catalog's common required tasks, each attached once,
// included and without a custom hours override.
// Features must have Tasks preloaded. Rows are ordered by task id.
func ResolveTasks(selected []models.Feature, common []models.Task) []models.QuoteTask {
	byID := make(map[uint]models.Task)
	for _, f := range selected {
		for _, t := range f.Tasks {
			byID[t.ID] = t
		}
	}
	for _, t := range common {
		if !t.IsRequired || len(t.Features) > 0 {
			continue
		}
		byID[t.ID] = t
	}

	rows := make([]models.QuoteTask, 0, len(byID))
	for id, t := range byID {
		rows = append(rows, models.QuoteTask{TaskID: id, Task: t, Included: true})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].TaskID < rows[j].TaskID })
	return rows
}
