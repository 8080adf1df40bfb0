package quoting

import (
	"sort"
	"strings"

	"github.com/diewo77/go-quotes/internal/models"
)

// MaxSuggestions caps the suggested feature list.
const MaxSuggestions = 5

const (
	nameMatchScore     = 5
	wordMatchScore     = 1
	industryMatchScore = 3
	minWordLen         = 4
)

// Suggestion is a scored catalog feature.
type Suggestion struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// SuggestFeatures scores every feature against a free-text project description
// and an optional industry, drops zero scores and returns the best five.
// Ties keep the order of features.
func SuggestFeatures(features []models.Feature, description, industry string) []Suggestion {
	desc := strings.ToLower(description)
	boosted := industryFeatures[strings.ToLower(industry)]

	var out []Suggestion
	for _, f := range features {
		score := 0
		if name := strings.ToLower(f.Name); name != "" && strings.Contains(desc, name) {
			score += nameMatchScore
		}
		for _, word := range strings.Split(strings.ToLower(f.Description), " ") {
			if len(word) >= minWordLen && strings.Contains(desc, word) {
				score += wordMatchScore
			}
		}
		for _, name := range boosted {
			if name == f.Name {
				score += industryMatchScore
				break
			}
		}
		if score > 0 {
			out = append(out, Suggestion{ID: f.ID, Name: f.Name, Score: score})
		}
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	if len(out) > MaxSuggestions {
		out = out[:MaxSuggestions]
	}
	return out
}
