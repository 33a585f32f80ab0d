package router

import (
	"github.com/AKM-dv/servicemate/app/controllers"
	"github.com/AKM-dv/servicemate/internal/pkg/env"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

type ApiRouter struct {
}

func (h ApiRouter) InstallRouter(app *fiber.App) {
	api := app.Group("/api", limiter.New(limiter.Config{Max: 120}))
	api.Use(cors.New(cors.Config{
		AllowOrigins: env.GetEnv("FRONTEND_URL", "*"),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api.Post("/auth/login", controllers.HandleLogin)

	api.Get("/plans", controllers.HandleListPlans)
	api.Put("/plans", controllers.HandleUpdatePlans)

	api.Get("/leads", controllers.HandleListLeads)
	api.Post("/leads", controllers.HandleCreateLead)
	api.Get("/leads/:id", controllers.HandleGetLead)
	api.Put("/leads/:id", controllers.HandleUpdateLead)
	api.Post("/leads/:id/followups", controllers.HandleAddFollowup)
	api.Post("/leads/:id/payments", controllers.HandleRecordPayment)

	api.Get("/invoices", controllers.HandleListInvoices)
	api.Post("/invoices", controllers.HandleCreateInvoice)
	api.Post("/invoices/:number/render", controllers.HandleRenderInvoice)

	api.Get("/analytics/summary", controllers.HandleAnalyticsSummary)

	api.Get("/feedback", controllers.HandleListFeedback)
	api.Post("/feedback", controllers.HandleCreateFeedback)
	api.Put("/feedback/:id", controllers.HandleUpdateFeedback)
}

func NewApiRouter() *ApiRouter {
	return &ApiRouter{}
}
