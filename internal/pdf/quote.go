// Package pdf renders quote documents as A4 PDFs.
package pdf

import (
	"fmt"
	"strconv"

	"github.com/diewo77/go-quotes/internal/services"
	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// ContentType of rendered documents.
const ContentType = "application/pdf"

const (
	lineHeight   = 5.0
	charsPerLine = 95
)

var (
	titleStyle   = props.Text{Size: 18, Style: fontstyle.Bold, Align: align.Left}
	headingStyle = props.Text{Size: 12, Style: fontstyle.Bold, Top: 2}
	bodyStyle    = props.Text{Size: 9}
	mutedStyle   = props.Text{Size: 8, Style: fontstyle.Italic}
	rightStyle   = props.Text{Size: 9, Align: align.Right}
	headerCell   = props.Text{Size: 9, Style: fontstyle.Bold}
	headerRight  = props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}
	totalStyle   = props.Text{Size: 12, Style: fontstyle.Bold, Align: align.Right}
)

// Renderer prints quote documents under a company name.
type Renderer struct {
	company string
}

func NewRenderer(company string) *Renderer {
	return &Renderer{company: company}
}

// Render builds the PDF bytes for doc.
func (r *Renderer) Render(doc *services.QuoteDocument) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).
		WithRightMargin(15).
		WithTopMargin(15).
		Build()
	m := maroto.New(cfg)
	q := doc.Quote

	m.AddRow(12,
		text.NewCol(8, r.company, titleStyle),
		text.NewCol(4, doc.Date, props.Text{Size: 9, Align: align.Right, Top: 4}),
	)
	m.AddRows(
		text.NewRow(8, fmt.Sprintf("Quote #%d: %s", q.ID, q.ProjectName), headingStyle),
		text.NewRow(6, "Website type: "+q.WebsiteType.Name, bodyStyle),
		line.NewRow(4),
	)

	if q.ProjectDescription != "" {
		m.AddRows(text.NewRow(8, "Project", headingStyle))
		m.AddRows(paragraph(q.ProjectDescription))
	}
	m.AddRows(text.NewRow(8, "Solution Overview", headingStyle))
	m.AddRows(paragraph(q.SolutionOverview))

	if len(q.BusinessValuePoints) > 0 {
		m.AddRows(text.NewRow(8, "Business Value", headingStyle))
		for _, p := range q.BusinessValuePoints {
			m.AddRows(paragraph("- " + p))
		}
	}

	if len(doc.Deliverables) > 0 {
		m.AddRows(text.NewRow(8, "Deliverables", headingStyle))
		for _, d := range doc.Deliverables {
			m.AddRow(lineHeight+1, text.NewCol(12, d.Name, headerCell))
			if d.Description != "" {
				m.AddRows(paragraph(d.Description))
			}
		}
	}

	m.AddRows(text.NewRow(8, "Task Breakdown", headingStyle))
	m.AddRow(lineHeight+1,
		text.NewCol(6, "Task", headerCell),
		text.NewCol(4, "Status", headerCell),
		text.NewCol(2, "Hours", headerRight),
	)
	for _, t := range doc.Tasks {
		status := "Included"
		if !t.Included {
			status = "Excluded"
		}
		m.AddRow(lineHeight,
			text.NewCol(6, t.Name, bodyStyle),
			text.NewCol(4, status, mutedStyle),
			text.NewCol(2, formatHours(t.Hours), rightStyle),
		)
	}
	for _, cf := range q.CustomFeatures {
		m.AddRow(lineHeight,
			text.NewCol(6, cf.Name, bodyStyle),
			text.NewCol(4, "Custom feature", mutedStyle),
			text.NewCol(2, strconv.Itoa(cf.Hours), rightStyle),
		)
	}

	m.AddRows(line.NewRow(4))
	m.AddRow(7,
		text.NewCol(8, "Total hours", headerCell),
		text.NewCol(4, strconv.Itoa(q.TotalHours), headerRight),
	)
	m.AddRow(7,
		text.NewCol(8, "Hourly rate", bodyStyle),
		text.NewCol(4, q.HourlyRate.StringFixed(2), rightStyle),
	)
	m.AddRow(10,
		text.NewCol(8, "Total", props.Text{Size: 12, Style: fontstyle.Bold}),
		text.NewCol(4, doc.TotalAmount.StringFixed(2), totalStyle),
	)

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate pdf: %w", err)
	}
	return out.GetBytes(), nil
}

// paragraph sizes a wrapped text row from its length.
func paragraph(s string) core.Row {
	lines := len(s)/charsPerLine + 1
	return text.NewRow(float64(lines)*lineHeight, s, bodyStyle)
}

func formatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64)
}
