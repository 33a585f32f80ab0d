package controllers

import (
	"github.com/AKM-dv/servicemate/app/models"
	"github.com/AKM-dv/servicemate/internal/pkg/database"
	"github.com/AKM-dv/servicemate/internal/pkg/timeutil"
	"github.com/gofiber/fiber/v2"
)

type statusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type planConversion struct {
	PlanName string `json:"plan_name"`
	Count    int64  `json:"count"`
}

type monthlyRevenue struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
}

// HandleAnalyticsSummary aggregates the dashboard numbers: lead pipeline by
// status, conversions by preferred plan, monthly collected revenue for the
// trailing year and currently overdue follow-ups.
func HandleAnalyticsSummary(c *fiber.Ctx) error {
	db := database.GetDB()

	var leadCounts []statusCount
	err := db.Model(&models.Lead{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&leadCounts).Error
	if err != nil {
		return serviceError(c, err)
	}

	var conversions []planConversion
	err = db.Model(&models.Lead{}).
		Select("plans.name AS plan_name, COUNT(*) AS count").
		Joins("JOIN plans ON plans.id = leads.preferred_plan_id").
		Where("leads.status = ?", models.LeadStatusConverted).
		Group("plans.name").
		Scan(&conversions).Error
	if err != nil {
		return serviceError(c, err)
	}

	since := timeutil.Now().AddDate(-1, 0, 0)
	var revenue []monthlyRevenue
	err = db.Model(&models.LeadPayment{}).
		Select("DATE_FORMAT(billing_month, '%Y-%m') AS month, COALESCE(SUM(amount), 0) AS revenue").
		Where("billing_month >= ?", since.Format("2006-01-02")).
		Group("month").
		Order("month ASC").
		Scan(&revenue).Error
	if err != nil {
		return serviceError(c, err)
	}

	today := timeutil.Now().Format("2006-01-02")
	var overdue int64
	err = db.Model(&models.LeadFollowup{}).
		Where("next_follow_up IS NOT NULL AND next_follow_up < ?", today).
		Where("status NOT IN ?", []string{
			models.FollowupStatusClosedWon,
			models.FollowupStatusClosedLost,
		}).
		Count(&overdue).Error
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{
		"lead_counts":        leadCounts,
		"plan_conversions":   conversions,
		"monthly_revenue":    revenue,
		"overdue_follow_ups": overdue,
	})
}
