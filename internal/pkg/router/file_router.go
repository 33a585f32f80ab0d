package router

import (
	"github.com/AKM-dv/servicemate/app/controllers"
	"github.com/AKM-dv/servicemate/internal/pkg/documents"

	"github.com/gofiber/fiber/v2"
)

type FileRouter struct {
}

// InstallRouter serves rendered invoice documents from local storage under
// the public prefix the invoice rows reference.
func (h FileRouter) InstallRouter(app *fiber.App) {
	app.Get(documents.PublicPrefix+"/:name", controllers.HandleGetInvoiceFile)
}

func NewFileRouter() *FileRouter {
	return &FileRouter{}
}
