package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// CustomFeature is an ad-hoc, quote-specific line item not backed by a catalog Feature.
type CustomFeature struct {
	Name  string `json:"name"`
	Hours int    `json:"hours"`
}

// Quote is a proposal built from a website type, selected features and a task snapshot.
// Implements the Ownable interface for ownership-based authorization.
type Quote struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// UserID is the owner of this quote; only the owner may read or mutate it.
	UserID uint `gorm:"index;not null" json:"user_id"`
	User   User `gorm:"foreignKey:UserID" json:"-"`

	// Website type is fixed at creation.
	WebsiteTypeID uint        `gorm:"index;not null" json:"website_type_id"`
	WebsiteType   WebsiteType `gorm:"foreignKey:WebsiteTypeID" json:"website_type"`

	ProjectName        string `gorm:"size:255;not null" json:"project_name"`
	ProjectDescription string `gorm:"type:text" json:"project_description,omitempty"`
	Industry           string `gorm:"size:255" json:"industry,omitempty"`
	BusinessGoals      string `gorm:"type:text" json:"business_goals,omitempty"`

	SolutionOverview    string                     `gorm:"type:text" json:"solution_overview"`
	BusinessValuePoints datatypes.JSONSlice[string] `json:"business_value_points"`

	HourlyRate decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"hourly_rate"`
	TotalHours int             `gorm:"not null;default:0" json:"total_hours"`
	TotalCost  decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"total_cost"`

	CustomFeatures datatypes.JSONSlice[CustomFeature] `json:"custom_features,omitempty"`

	SelectedFeatures []Feature   `gorm:"many2many:quote_features;constraint:OnDelete:CASCADE" json:"selected_features,omitempty"`
	Tasks            []QuoteTask `gorm:"foreignKey:QuoteID;constraint:OnDelete:CASCADE" json:"tasks,omitempty"`
}

// GetUserID implements the Ownable interface for authorization.
func (q *Quote) GetUserID() uint {
	return q.UserID
}

// CustomFeatureHours sums the hours of the quote's custom feature lines.
func (q *Quote) CustomFeatureHours() int {
	total := 0
	for _, cf := range q.CustomFeatures {
		total += cf.Hours
	}
	return total
}

// TaskByID returns the quote's attachment row for a catalog task.
func (q *Quote) TaskByID(taskID uint) (*QuoteTask, bool) {
	for i := range q.Tasks {
		if q.Tasks[i].TaskID == taskID {
			return &q.Tasks[i], true
		}
	}
	return nil, false
}

// QuoteTask attaches a catalog Task to a Quote and carries the quote-scoped override state.
// It never mutates the shared catalog row.
type QuoteTask struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	QuoteID uint `gorm:"not null;uniqueIndex:idx_quote_task" json:"quote_id"`
	TaskID  uint `gorm:"not null;uniqueIndex:idx_quote_task" json:"task_id"`
	Task    Task `gorm:"foreignKey:TaskID" json:"task"`

	Included bool `gorm:"not null;default:true" json:"included"`
	// CustomHours overrides Task.EstimatedHours when set.
	CustomHours *float64 `json:"custom_hours"`
}

// Hours returns the effective hours for this attachment.
func (qt *QuoteTask) Hours() float64 {
	if qt.CustomHours != nil {
		return *qt.CustomHours
	}
	return qt.Task.EstimatedHours
}
