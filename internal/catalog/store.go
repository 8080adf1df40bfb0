// Package catalog reads the website type, feature and task reference data.
package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/diewo77/go-quotes/internal/models"
	"github.com/diewo77/go-quotes/internal/quoting"
	"gorm.io/gorm"
)

// Store reads catalog rows. It never writes.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func byID(db *gorm.DB) *gorm.DB { return db.Order("id") }

// WebsiteType loads one website type.
func (s *Store) WebsiteType(ctx context.Context, id uint) (*models.WebsiteType, error) {
	var wt models.WebsiteType
	if err := s.db.WithContext(ctx).First(&wt, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &quoting.NotFoundError{Resource: "website type", ID: id}
		}
		return nil, fmt.Errorf("load website type %d: %w", id, err)
	}
	return &wt, nil
}

// FeaturesByIDs loads the features with the given ids and their tasks, in id order.
// Unknown ids are silently absent from the result.
func (s *Store) FeaturesByIDs(ctx context.Context, ids []uint) ([]models.Feature, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var features []models.Feature
	err := s.db.WithContext(ctx).
		Preload("Tasks", byID).
		Where("id IN ?", ids).
		Order("id").
		Find(&features).Error
	if err != nil {
		return nil, fmt.Errorf("load features: %w", err)
	}
	return features, nil
}

// AllFeatures lists every feature in id order.
func (s *Store) AllFeatures(ctx context.Context) ([]models.Feature, error) {
	var features []models.Feature
	if err := s.db.WithContext(ctx).Order("id").Find(&features).Error; err != nil {
		return nil, fmt.Errorf("list features: %w", err)
	}
	return features, nil
}

// CommonRequiredTasks lists the required tasks that are not linked to any feature.
func (s *Store) CommonRequiredTasks(ctx context.Context) ([]models.Task, error) {
	var tasks []models.Task
	err := s.db.WithContext(ctx).
		Where("is_required = ?", true).
		Where("NOT EXISTS (SELECT 1 FROM feature_task WHERE feature_task.task_id = tasks.id)").
		Order("id").
		Find(&tasks).Error
	if err != nil {
		return nil, fmt.Errorf("list common tasks: %w", err)
	}
	return tasks, nil
}

// WebsiteTypesWithFeatures lists every website type with its offered features.
func (s *Store) WebsiteTypesWithFeatures(ctx context.Context) ([]models.WebsiteType, error) {
	var types []models.WebsiteType
	err := s.db.WithContext(ctx).
		Preload("Features", func(db *gorm.DB) *gorm.DB { return db.Order("features.id") }).
		Order("id").
		Find(&types).Error
	if err != nil {
		return nil, fmt.Errorf("list website types: %w", err)
	}
	return types, nil
}
