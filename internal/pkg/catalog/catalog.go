// Package catalog manages the plan offering. The business currently sells
// exactly one active plan; ReplaceActive keeps that invariant inside one
// transaction instead of a side-effecting bulk update.
package catalog

import (
	"errors"

	"github.com/AKM-dv/servicemate/app/models"
	"github.com/AKM-dv/servicemate/internal/pkg/money"
	"gorm.io/gorm"
)

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// ListActive returns active plans in sort order, seeding the default plan
// first if the catalog is empty.
func (s *Service) ListActive() ([]models.Plan, error) {
	var plans []models.Plan
	err := s.db.Where("is_active = ?", true).Order("sort_order ASC").Find(&plans).Error
	if err != nil {
		return nil, err
	}
	if len(plans) == 0 {
		if err := s.EnsureSeeded(); err != nil {
			return nil, err
		}
		err = s.db.Where("is_active = ?", true).Order("sort_order ASC").Find(&plans).Error
	}
	return plans, err
}

// ReplaceActive updates the single sellable plan and deactivates every other
// row as one transaction, so "exactly one active plan" is never observable
// half-applied.
func (s *Service) ReplaceActive(name string, price money.Money, features models.FeatureList) (*models.Plan, error) {
	if name == "" {
		name = models.DefaultPlanName
	}
	if len(features) == 0 {
		features = models.DefaultPlanFeatures
	}

	var plan models.Plan
	err := s.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Order("sort_order ASC, id ASC").First(&plan).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			plan = models.Plan{}
		} else if err != nil {
			return err
		}

		plan.Name = name
		plan.Price = price
		plan.Features = features
		plan.IsActive = true
		plan.SortOrder = 1
		if err := tx.Save(&plan).Error; err != nil {
			return err
		}

		return tx.Model(&models.Plan{}).
			Where("id <> ?", plan.ID).
			Update("is_active", false).Error
	})
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// EnsureSeeded creates the default plan when the catalog is empty.
func (s *Service) EnsureSeeded() error {
	var count int64
	if err := s.db.Model(&models.Plan{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	plan := models.Plan{
		Name:      models.DefaultPlanName,
		Price:     models.DefaultPlanPrice(),
		Features:  models.DefaultPlanFeatures,
		IsActive:  true,
		SortOrder: 1,
	}
	return s.db.Create(&plan).Error
}
