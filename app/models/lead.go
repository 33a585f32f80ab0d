package models

import (
	"time"
)

// Lead statuses cover the sales lifecycle from first contact to conversion.
const (
	LeadStatusNew        = "New"
	LeadStatusInProgress = "In Progress"
	LeadStatusConverted  = "Converted"
	LeadStatusLost       = "Lost"
	LeadStatusCustom     = "Custom"
)

var LeadStatuses = map[string]struct{}{
	LeadStatusNew:        {},
	LeadStatusInProgress: {},
	LeadStatusConverted:  {},
	LeadStatusLost:       {},
	LeadStatusCustom:     {},
}

// Lead is a prospective or existing client. Phone is the one required
// contact field and doubles as the display name fallback on invoices.
// Leads are never hard-deleted in normal operation; dependent invoices and
// payments cascade only if a lead row itself is removed.
type Lead struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	Name            *string    `gorm:"type:varchar(120);default:null" json:"name"`
	Email           *string    `gorm:"type:varchar(191);default:null" json:"email"`
	Phone           string     `gorm:"type:varchar(20);not null;uniqueIndex:ux_leads_phone" json:"phone"`
	Address         *string    `gorm:"type:varchar(255);default:null" json:"address"`
	BrandName       *string    `gorm:"type:varchar(191);default:null" json:"brand_name"`
	Status          string     `gorm:"type:varchar(20);not null;default:'New'" json:"status"`
	PreferredPlanID *uint      `gorm:"default:null" json:"preferred_plan_id"`
	ConvertedOn     *time.Time `gorm:"type:date;default:null" json:"converted_on"`
	CreatedAt       time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	PreferredPlan *Plan `gorm:"foreignKey:PreferredPlanID" json:"-"`
}

func IsValidLeadStatus(status string) bool {
	_, ok := LeadStatuses[status]
	return ok
}
