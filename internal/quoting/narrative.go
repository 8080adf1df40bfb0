package quoting

import (
	"strings"

	"github.com/diewo77/go-quotes/internal/models"
)

// MaxValuePoints caps the generated business value list.
const MaxValuePoints = 5

// SolutionOverview builds the default overview paragraph for a quote.
func SolutionOverview(websiteTypeName, businessGoals string) string {
	var b strings.Builder
	b.WriteString("We propose a custom ")
	b.WriteString(websiteTypeName)
	b.WriteString(" solution")
	if businessGoals != "" {
		b.WriteString(" designed to help you ")
		b.WriteString(businessGoals)
	}
	b.WriteString(". Based on your project requirements, we'll build a professional, user-friendly platform")
	b.WriteString(overviewClauses[websiteTypeName])
	b.WriteString(".")
	return b.String()
}

// BusinessValuePoints builds the default value bullets: one for the website
// type, one for the industry when known, then one per selected feature.
// Duplicates are dropped and the list is capped at MaxValuePoints.
func BusinessValuePoints(websiteTypeName, industry string, selected []models.Feature) []string {
	points := make([]string, 0, len(selected)+2)

	if p, ok := typeValuePoints[websiteTypeName]; ok {
		points = append(points, p)
	} else {
		points = append(points, defaultTypeValuePoint)
	}

	if industry != "" {
		if p, ok := industryValuePoints[strings.ToLower(industry)]; ok {
			points = append(points, p)
		}
	}

	for _, f := range selected {
		switch {
		case f.BusinessValue != "":
			points = append(points, f.BusinessValue)
		case featureValuePoints[f.Name] != "":
			points = append(points, featureValuePoints[f.Name])
		}
	}

	out := make([]string, 0, MaxValuePoints)
	seen := make(map[string]bool, len(points))
	for _, p := range points {
		if seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
		if len(out) == MaxValuePoints {
			break
		}
	}
	return out
}
