package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/AKM-dv/servicemate/internal/pkg/money"
)

// FeatureList stores plan feature labels as a JSON array column.
type FeatureList []string

func (f FeatureList) Value() (driver.Value, error) {
	if f == nil {
		f = FeatureList{}
	}
	return json.Marshal(f)
}

func (f *FeatureList) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, f)
	case string:
		return json.Unmarshal([]byte(v), f)
	case nil:
		*f = FeatureList{}
		return nil
	default:
		return errors.New("unsupported feature list column type")
	}
}

// Plan is a named recurring offering. Exactly one plan is active at a time;
// catalog.ReplaceActive enforces the invariant transactionally.
type Plan struct {
	ID        uint        `gorm:"primaryKey" json:"id"`
	Name      string      `gorm:"type:varchar(120);not null" json:"name"`
	Price     money.Money `gorm:"type:decimal(10,2);not null" json:"price"`
	Features  FeatureList `gorm:"type:json;not null" json:"features"`
	IsActive  bool        `gorm:"not null;default:true" json:"is_active"`
	SortOrder int         `gorm:"not null;default:0" json:"sort_order"`
	CreatedAt time.Time   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time   `gorm:"autoUpdateTime" json:"updated_at"`
}

// DefaultPlanName and friends seed the catalog on first boot.
const DefaultPlanName = "Basic"

var DefaultPlanFeatures = FeatureList{
	"Website",
	"Android App",
	"iOS App",
	"Elementary SEO",
	"Lead Management",
}

func DefaultPlanPrice() money.Money {
	return money.MustFromString("1999.00")
}
