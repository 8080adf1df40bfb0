// Package services implements the quote use cases on top of the store,
// the quoting rules and the authorization gate.
package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/diewo77/go-quotes/internal/catalog"
	"github.com/diewo77/go-quotes/internal/models"
	"github.com/diewo77/go-quotes/internal/policy"
	"github.com/diewo77/go-quotes/internal/quoting"
	"github.com/diewo77/go-quotes/validation"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const maxNameLen = 255

// CustomFeatureInput is a requested custom line. Hours arrive as a JSON number
// and must be a whole number between one and quoting.MaxCustomFeatureHours.
type CustomFeatureInput struct {
	Name  string  `json:"name"`
	Hours float64 `json:"hours"`
}

// CreateQuoteInput carries everything needed to create a quote.
// A nil HourlyRate uses the service default. Empty SolutionOverview and
// BusinessValuePoints are generated.
type CreateQuoteInput struct {
	OwnerID             uint                 `json:"-"`
	WebsiteTypeID       uint                 `json:"website_type_id"`
	ProjectName         string               `json:"project_name"`
	ProjectDescription  string               `json:"project_description"`
	Industry            string               `json:"industry"`
	BusinessGoals       string               `json:"business_goals"`
	SolutionOverview    string               `json:"solution_overview"`
	BusinessValuePoints []string             `json:"business_value_points"`
	HourlyRate          *decimal.Decimal     `json:"hourly_rate"`
	SelectedFeatures    []uint               `json:"selected_features"`
	CustomFeatures      []CustomFeatureInput `json:"custom_features"`
}

type QuoteService struct {
	db          *gorm.DB
	catalog     *catalog.Store
	gate        *policy.Gate
	defaultRate decimal.Decimal
}

func NewQuoteService(db *gorm.DB, gate *policy.Gate, defaultRate decimal.Decimal) *QuoteService {
	return &QuoteService{db: db, catalog: catalog.NewStore(db), gate: gate, defaultRate: defaultRate}
}

// CreateQuote validates the input, estimates the totals and writes the quote
// with its feature and task attachments in one transaction.
func (s *QuoteService) CreateQuote(ctx context.Context, in CreateQuoteInput) (*models.Quote, error) {
	if err := s.gate.Authorize(ctx, in.OwnerID, policy.ActionCreate, policy.ResourceQuote, nil); err != nil {
		return nil, err
	}

	v := validation.Violations{}
	validation.Required("project_name", in.ProjectName, v)
	validation.MaxLen("project_name", in.ProjectName, maxNameLen, v)

	rate := s.defaultRate
	if in.HourlyRate != nil {
		rate = *in.HourlyRate
	}
	rate = rate.Round(2)
	validation.PositiveDecimal("hourly_rate", rate, v)

	custom := customFeatures(in.CustomFeatures, v)

	var wt *models.WebsiteType
	if in.WebsiteTypeID == 0 {
		v["website_type_id"] = "required"
	} else {
		var err error
		wt, err = s.catalog.WebsiteType(ctx, in.WebsiteTypeID)
		if errors.Is(err, quoting.ErrNotFound) {
			v["website_type_id"] = "not_found"
		} else if err != nil {
			return nil, err
		}
	}

	ids := uniqueIDs(in.SelectedFeatures)
	features, err := s.catalog.FeaturesByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(features) != len(ids) {
		v["selected_features"] = "not_found"
	}
	if !v.Empty() {
		return nil, v
	}

	totals, err := quoting.Estimate(*wt, features, ids, custom, rate)
	if err != nil {
		return nil, err
	}
	common, err := s.catalog.CommonRequiredTasks(ctx)
	if err != nil {
		return nil, err
	}

	q := &models.Quote{
		UserID:              in.OwnerID,
		WebsiteTypeID:       wt.ID,
		ProjectName:         strings.TrimSpace(in.ProjectName),
		ProjectDescription:  in.ProjectDescription,
		Industry:            in.Industry,
		BusinessGoals:       in.BusinessGoals,
		SolutionOverview:    in.SolutionOverview,
		BusinessValuePoints: in.BusinessValuePoints,
		HourlyRate:          rate,
		CustomFeatures:      custom,
		SelectedFeatures:    features,
	}
	if strings.TrimSpace(q.SolutionOverview) == "" {
		q.SolutionOverview = quoting.SolutionOverview(wt.Name, in.BusinessGoals)
	}
	if len(q.BusinessValuePoints) == 0 {
		q.BusinessValuePoints = quoting.BusinessValuePoints(wt.Name, in.Industry, features)
	}
	totals.Apply(q)
	rows := quoting.ResolveTasks(features, common)

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Only the quote_features join rows are written for the selected features.
		if err := tx.Omit("User", "WebsiteType", "Tasks", "SelectedFeatures.*").Create(q).Error; err != nil {
			return fmt.Errorf("create quote: %w", err)
		}
		if len(rows) == 0 {
			return nil
		}
		for i := range rows {
			rows[i].QuoteID = q.ID
		}
		if err := tx.Omit("Task").Create(&rows).Error; err != nil {
			return fmt.Errorf("attach quote tasks: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Info().
		Uint("quote_id", q.ID).
		Uint("owner_id", q.UserID).
		Int("tasks", len(rows)).
		Int("total_hours", q.TotalHours).
		Str("total_cost", q.TotalCost.StringFixed(2)).
		Msg("quote created")
	return loadQuote(ctx, s.db, q.ID)
}

// GetQuote loads a quote with everything the projections need.
func (s *QuoteService) GetQuote(ctx context.Context, id, ownerID uint) (*models.Quote, error) {
	return s.authorizedQuote(ctx, s.db, id, ownerID, policy.ActionView)
}

// ListQuotes returns the owner's quotes, newest first.
func (s *QuoteService) ListQuotes(ctx context.Context, ownerID uint) ([]models.Quote, error) {
	if err := s.gate.Authorize(ctx, ownerID, policy.ActionList, policy.ResourceQuote, nil); err != nil {
		return nil, err
	}
	var quotes []models.Quote
	err := s.db.WithContext(ctx).
		Preload("WebsiteType").
		Where("user_id = ?", ownerID).
		Order("created_at DESC, id DESC").
		Find(&quotes).Error
	if err != nil {
		return nil, fmt.Errorf("list quotes: %w", err)
	}
	return quotes, nil
}

// UpdateQuoteTasks applies task overrides and persists the recalculated
// totals in the same transaction.
func (s *QuoteService) UpdateQuoteTasks(ctx context.Context, id, ownerID uint, updates map[uint]quoting.TaskUpdate) (*models.Quote, error) {
	var out *models.Quote
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		q, err := s.authorizedQuote(ctx, tx, id, ownerID, policy.ActionUpdate)
		if err != nil {
			return err
		}
		rows, err := quoting.ApplyTaskOverrides(q, updates)
		if err != nil {
			return err
		}
		for _, r := range rows {
			var hours any
			if r.CustomHours != nil {
				hours = *r.CustomHours
			}
			err := tx.Model(&models.QuoteTask{ID: r.ID}).
				Updates(map[string]any{"included": r.Included, "custom_hours": hours}).Error
			if err != nil {
				return fmt.Errorf("update quote task %d: %w", r.TaskID, err)
			}
		}
		err = tx.Model(&models.Quote{ID: q.ID}).
			Updates(map[string]any{"total_hours": q.TotalHours, "total_cost": q.TotalCost}).Error
		if err != nil {
			return fmt.Errorf("update quote totals: %w", err)
		}
		out = q
		return nil
	})
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Info().
		Uint("quote_id", out.ID).
		Uint("owner_id", ownerID).
		Int("updates", len(updates)).
		Int("total_hours", out.TotalHours).
		Str("total_cost", out.TotalCost.StringFixed(2)).
		Msg("quote tasks updated")
	return out, nil
}

// DeleteQuote removes a quote and its attachment rows.
func (s *QuoteService) DeleteQuote(ctx context.Context, id, ownerID uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var q models.Quote
		if err := tx.First(&q, id).Error; err != nil {
			return notFound(err, id)
		}
		if err := s.gate.Authorize(ctx, ownerID, policy.ActionDelete, policy.ResourceQuote, &q); err != nil {
			return err
		}
		if err := tx.Where("quote_id = ?", q.ID).Delete(&models.QuoteTask{}).Error; err != nil {
			return fmt.Errorf("delete quote tasks: %w", err)
		}
		if err := tx.Model(&q).Association("SelectedFeatures").Clear(); err != nil {
			return fmt.Errorf("delete quote features: %w", err)
		}
		if err := tx.Delete(&q).Error; err != nil {
			return fmt.Errorf("delete quote: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	zerolog.Ctx(ctx).Info().Uint("quote_id", id).Uint("owner_id", ownerID).Msg("quote deleted")
	return nil
}

// SuggestedFeatures ranks the catalog features against a project description.
func (s *QuoteService) SuggestedFeatures(ctx context.Context, description, industry string) ([]quoting.Suggestion, error) {
	v := validation.Violations{}
	validation.Required("project_description", description, v)
	if err := v.Err(); err != nil {
		return nil, err
	}
	features, err := s.catalog.AllFeatures(ctx)
	if err != nil {
		return nil, err
	}
	return quoting.SuggestFeatures(features, description, industry), nil
}

// WebsiteTypesWithFeatures returns the catalog projection used by the quote form.
func (s *QuoteService) WebsiteTypesWithFeatures(ctx context.Context) ([]models.WebsiteType, error) {
	return s.catalog.WebsiteTypesWithFeatures(ctx)
}

func (s *QuoteService) TasksBreakdown(q *models.Quote) []quoting.TaskGroup {
	return quoting.TasksByFeature(q)
}

func (s *QuoteService) Deliverables(q *models.Quote) []quoting.Deliverable {
	return quoting.Deliverables(q)
}

// Industries is the industry picklist.
func (s *QuoteService) Industries() []string {
	return append([]string(nil), quoting.Industries...)
}

func (s *QuoteService) authorizedQuote(ctx context.Context, db *gorm.DB, id, ownerID uint, action policy.Action) (*models.Quote, error) {
	if ownerID == 0 {
		return nil, policy.ErrUnauthenticated
	}
	q, err := loadQuote(ctx, db, id)
	if err != nil {
		return nil, err
	}
	if err := s.gate.Authorize(ctx, ownerID, action, policy.ResourceQuote, q); err != nil {
		return nil, err
	}
	return q, nil
}

func loadQuote(ctx context.Context, db *gorm.DB, id uint) (*models.Quote, error) {
	byID := func(db *gorm.DB) *gorm.DB { return db.Order("id") }
	var q models.Quote
	err := db.WithContext(ctx).
		Preload("WebsiteType").
		Preload("SelectedFeatures", byID).
		Preload("Tasks", func(db *gorm.DB) *gorm.DB { return db.Order("task_id") }).
		Preload("Tasks.Task").
		Preload("Tasks.Task.Features", byID).
		First(&q, id).Error
	if err != nil {
		return nil, notFound(err, id)
	}
	return &q, nil
}

func notFound(err error, id uint) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &quoting.NotFoundError{Resource: "quote", ID: id}
	}
	return fmt.Errorf("load quote %d: %w", id, err)
}

func customFeatures(in []CustomFeatureInput, v validation.Violations) []models.CustomFeature {
	out := make([]models.CustomFeature, 0, len(in))
	for i, cf := range in {
		nameField := fmt.Sprintf("custom_features.%d.name", i)
		hoursField := fmt.Sprintf("custom_features.%d.hours", i)
		validation.Required(nameField, cf.Name, v)
		validation.MaxLen(nameField, cf.Name, maxNameLen, v)
		hours := 0
		switch {
		case cf.Hours != math.Trunc(cf.Hours):
			v[hoursField] = "must_be_integer"
		case cf.Hours < 1:
			v[hoursField] = "must_be_positive"
		case cf.Hours > quoting.MaxCustomFeatureHours:
			v[hoursField] = "too_large"
		default:
			hours = int(cf.Hours)
		}
		out = append(out, models.CustomFeature{Name: strings.TrimSpace(cf.Name), Hours: hours})
	}
	return out
}

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]bool, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
