package models

import "time"

const (
	FollowupStatusNew         = "New"
	FollowupStatusContacted   = "Contacted"
	FollowupStatusMeeting     = "Meeting Scheduled"
	FollowupStatusNegotiation = "Negotiation"
	FollowupStatusClosedWon   = "Closed Won"
	FollowupStatusClosedLost  = "Closed Lost"
	FollowupStatusCustom      = "Custom"
)

var FollowupStatuses = map[string]struct{}{
	FollowupStatusNew:         {},
	FollowupStatusContacted:   {},
	FollowupStatusMeeting:     {},
	FollowupStatusNegotiation: {},
	FollowupStatusClosedWon:   {},
	FollowupStatusClosedLost:  {},
	FollowupStatusCustom:      {},
}

// LeadFollowup is one contact/activity entry in a lead's history.
type LeadFollowup struct {
	ID                 uint       `gorm:"primaryKey" json:"id"`
	LeadID             uint       `gorm:"not null;index" json:"lead_id"`
	Status             string     `gorm:"type:varchar(30);not null;default:'New'" json:"status"`
	FollowUpDate       *time.Time `gorm:"type:date;default:null" json:"follow_up_date"`
	Objective          *string    `gorm:"type:varchar(255);default:null" json:"objective"`
	NextFollowUp       *time.Time `gorm:"type:date;default:null" json:"next_follow_up"`
	FutureFollowUpNote *string    `gorm:"type:text" json:"future_follow_up_note"`
	Note               *string    `gorm:"type:text" json:"note"`
	CreatedAt          time.Time  `gorm:"autoCreateTime" json:"created_at"`

	Lead *Lead `gorm:"foreignKey:LeadID;constraint:OnDelete:CASCADE" json:"-"`
}

func IsValidFollowupStatus(status string) bool {
	_, ok := FollowupStatuses[status]
	return ok
}

// IsTerminalFollowupStatus reports whether the status closes the lead and
// clears any planned next follow-up.
func IsTerminalFollowupStatus(status string) bool {
	return status == FollowupStatusClosedWon || status == FollowupStatusClosedLost
}
