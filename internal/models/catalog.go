package models

import "time"

// WebsiteType is a top-level project category carrying the baseline hour estimate.
// Catalog rows are reference data and are never mutated by the quoting flow.
type WebsiteType struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	BaseHours   int       `gorm:"not null;default:0" json:"base_hours"`

	// Features offered for this website type (feature_website_type join table).
	Features []Feature `gorm:"many2many:feature_website_type;" json:"features,omitempty"`
}

// Feature is an optional capability that can be added to a quote.
type Feature struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
	Name           string    `gorm:"size:255;not null" json:"name"`
	Description    string    `gorm:"type:text" json:"description,omitempty"`
	EstimatedHours int       `gorm:"not null;default:0" json:"estimated_hours"`
	// BusinessValue is client-facing copy; empty means none was authored.
	BusinessValue string `gorm:"type:text" json:"business_value,omitempty"`
	IsCustom      bool   `gorm:"default:false" json:"is_custom"`

	Tasks        []Task        `gorm:"many2many:feature_task;" json:"tasks,omitempty"`
	WebsiteTypes []WebsiteType `gorm:"many2many:feature_website_type;" json:"website_types,omitempty"`
}

// Task is a unit of work, optionally linked to one or more features.
type Task struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
	Name           string    `gorm:"size:255;not null" json:"name"`
	Description    string    `gorm:"type:text" json:"description,omitempty"`
	EstimatedHours float64   `gorm:"not null;default:0" json:"estimated_hours"`
	// IsRequired marks a task that applies to every quote when it has no feature link.
	IsRequired    bool `gorm:"default:false" json:"is_required"`
	IsDeliverable bool `gorm:"default:false" json:"is_deliverable"`

	Features []Feature `gorm:"many2many:feature_task;" json:"features,omitempty"`
}

// LinkedTo reports whether the task is linked to the given feature.
// Features must be preloaded.
func (t *Task) LinkedTo(featureID uint) bool {
	for _, f := range t.Features {
		if f.ID == featureID {
			return true
		}
	}
	return false
}

// IsCommon reports whether the task has no feature link at all.
func (t *Task) IsCommon() bool {
	return len(t.Features) == 0
}
