package quoting

import (
	"sort"

	"github.com/diewo77/go-quotes/internal/models"
)

// TaskLine is one task row of a breakdown group.
type TaskLine struct {
	ID            uint    `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Hours         float64 `json:"hours"`
	Included      bool    `json:"included"`
	IsDeliverable bool    `json:"is_deliverable"`
}

// TaskGroup is the set of quote tasks shown under one feature heading.
// FeatureID is zero for the common tasks bucket.
type TaskGroup struct {
	FeatureID uint       `json:"feature_id,omitempty"`
	Feature   string     `json:"feature"`
	Tasks     []TaskLine `json:"tasks"`
}

// Deliverable is a client-facing output listed on the quote.
type Deliverable struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// TasksByFeature groups the quote's tasks under "Common Tasks" and then under
// each selected feature in id order. A task linked to several selected
// features shows up in each of their groups. Empty groups are left out.
// Tasks.Task.Features and SelectedFeatures must be loaded.
func TasksByFeature(q *models.Quote) []TaskGroup {
	rows := sortedTasks(q)

	var groups []TaskGroup
	if common := collect(rows, func(t *models.Task) bool { return t.IsCommon() }); len(common) > 0 {
		groups = append(groups, TaskGroup{Feature: CommonTasksGroup, Tasks: common})
	}

	features := append([]models.Feature(nil), q.SelectedFeatures...)
	sort.SliceStable(features, func(i, j int) bool { return features[i].ID < features[j].ID })
	for _, f := range features {
		id := f.ID
		lines := collect(rows, func(t *models.Task) bool { return t.LinkedTo(id) })
		if len(lines) == 0 {
			continue
		}
		groups = append(groups, TaskGroup{FeatureID: f.ID, Feature: f.Name, Tasks: lines})
	}
	return groups
}

// Deliverables lists the included deliverable tasks, then the website itself,
// then the bonus entry some website types carry.
// WebsiteType and Tasks.Task must be loaded.
func Deliverables(q *models.Quote) []Deliverable {
	var out []Deliverable
	for _, qt := range sortedTasks(q) {
		if qt.Included && qt.Task.IsDeliverable {
			out = append(out, Deliverable{Name: qt.Task.Name, Description: qt.Task.Description})
		}
	}
	out = append(out, Deliverable{Name: q.WebsiteType.Name, Description: q.WebsiteType.Description})
	if bonus, ok := bonusDeliverables[q.WebsiteType.Name]; ok {
		out = append(out, bonus)
	}
	return out
}

// FlattenTasks concatenates the TasksByFeature groups into one list.
func FlattenTasks(q *models.Quote) []TaskLine {
	var lines []TaskLine
	for _, g := range TasksByFeature(q) {
		lines = append(lines, g.Tasks...)
	}
	return lines
}

func sortedTasks(q *models.Quote) []*models.QuoteTask {
	rows := make([]*models.QuoteTask, len(q.Tasks))
	for i := range q.Tasks {
		rows[i] = &q.Tasks[i]
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].TaskID < rows[j].TaskID })
	return rows
}

func collect(rows []*models.QuoteTask, keep func(*models.Task) bool) []TaskLine {
	var lines []TaskLine
	for _, qt := range rows {
		if !keep(&qt.Task) {
			continue
		}
		lines = append(lines, TaskLine{
			ID:            qt.TaskID,
			Name:          qt.Task.Name,
			Description:   qt.Task.Description,
			Hours:         qt.Hours(),
			Included:      qt.Included,
			IsDeliverable: qt.Task.IsDeliverable,
		})
	}
	return lines
}
