package main

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/AKM-dv/servicemate/internal/pkg/bootstrap"
	"github.com/AKM-dv/servicemate/internal/pkg/database"
	"github.com/AKM-dv/servicemate/internal/pkg/env"
	"github.com/AKM-dv/servicemate/internal/pkg/router"
	"github.com/AKM-dv/servicemate/internal/pkg/timeutil"
)

func main() {
	app := NewApplication()
	err := app.Listen(fmt.Sprintf("%s:%s", env.GetEnv("APP_HOST", "localhost"), env.GetEnv("APP_PORT", "4000")))
	log.Fatal(err)
}

func NewApplication() *fiber.App {
	env.SetupEnvFile()
	timeutil.Setup()
	database.SetupDatabase()

	if err := bootstrap.Seed(database.GetDB()); err != nil {
		log.Fatalf("seed failed: %v", err)
	}

	app := fiber.New(fiber.Config{
		AppName:   "servicemate",
		BodyLimit: 10 * 1024 * 1024,
	})

	app.Use(recover.New(), logger.New())

	router.InstallRouter(app)

	return app
}
