package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/diewo77/go-quotes/internal/models"
	"github.com/diewo77/go-quotes/internal/policy"
	"github.com/diewo77/go-quotes/internal/quoting"
	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
)

const maxFileSlugLen = 80

// DocumentDateLayout formats the issue date printed on quote documents.
const DocumentDateLayout = "January 02, 2006"

// QuoteDocument is everything a renderer needs to print a quote.
type QuoteDocument struct {
	Quote        *models.Quote
	Tasks        []quoting.TaskLine
	Deliverables []quoting.Deliverable
	Date         string
	TotalAmount  decimal.Decimal
}

// FileName returns the download name for the given extension, e.g. "pdf".
// The project name is reduced to a lowercase ASCII slug.
func (d *QuoteDocument) FileName(ext string) string {
	name := slug.Make(d.Quote.ProjectName)
	if len(name) > maxFileSlugLen {
		name = strings.TrimRight(name[:maxFileSlugLen], "-")
	}
	if name == "" {
		return fmt.Sprintf("quote-%d.%s", d.Quote.ID, ext)
	}
	return fmt.Sprintf("quote-%d-%s.%s", d.Quote.ID, name, ext)
}

// Document assembles the printable view of an owned quote.
func (s *QuoteService) Document(ctx context.Context, id, ownerID uint, now time.Time) (*QuoteDocument, error) {
	q, err := s.authorizedQuote(ctx, s.db, id, ownerID, policy.ActionExport)
	if err != nil {
		return nil, err
	}
	return &QuoteDocument{
		Quote:        q,
		Tasks:        quoting.FlattenTasks(q),
		Deliverables: quoting.Deliverables(q),
		Date:         now.Format(DocumentDateLayout),
		TotalAmount:  q.TotalCost,
	}, nil
}
