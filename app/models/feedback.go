package models

import "time"

const (
	FeedbackCategoryBug         = "Bug"
	FeedbackCategorySuggestion  = "Suggestion"
	FeedbackCategoryImprovement = "Improvement"
	FeedbackCategoryOther       = "Other"

	FeedbackStatusOpen     = "Open"
	FeedbackStatusInReview = "In Review"
	FeedbackStatusResolved = "Resolved"
)

var FeedbackCategories = map[string]struct{}{
	FeedbackCategoryBug:         {},
	FeedbackCategorySuggestion:  {},
	FeedbackCategoryImprovement: {},
	FeedbackCategoryOther:       {},
}

var FeedbackStatuses = map[string]struct{}{
	FeedbackStatusOpen:     {},
	FeedbackStatusInReview: {},
	FeedbackStatusResolved: {},
}

// AdminFeedback is an internal improvement ticket raised by the operator.
type AdminFeedback struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"type:varchar(191);not null" json:"title"`
	Body      string    `gorm:"type:text;not null" json:"body"`
	Category  string    `gorm:"type:varchar(20);not null;default:'Suggestion'" json:"category"`
	Status    string    `gorm:"type:varchar(20);not null;default:'Open'" json:"status"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (AdminFeedback) TableName() string {
	return "admin_feedback"
}

func IsValidFeedbackCategory(category string) bool {
	_, ok := FeedbackCategories[category]
	return ok
}

func IsValidFeedbackStatus(status string) bool {
	_, ok := FeedbackStatuses[status]
	return ok
}
