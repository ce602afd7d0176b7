// Package webapi is the thin HTTP layer over the transfer engine. It owns no
// business rules: handlers translate JSON payloads into service calls and map
// error kinds to status codes.
package webapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	accountsvc "github.com/jvmonteiro/minipay/pkg/service/account"
	transfersvc "github.com/jvmonteiro/minipay/pkg/service/transfer"
)

// NewApp builds the Fiber application with all routes registered.
func NewApp(accounts *accountsvc.Service, transfers *transfersvc.Service) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			status := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			}
			return ErrorResponseJSON(c, status, "Internal Server Error", err.Error())
		},
	})

	app.Use(recover.New())

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("minipay is up")
	})

	AccountRoutes(app, accounts)
	TransferRoutes(app, transfers)

	return app
}
