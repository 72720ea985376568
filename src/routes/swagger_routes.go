package routes

import (
	_ "Mergington-Activities/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
)

// เปิดใช้งาน Swagger ที่ URL /swagger
func swaggerRoutes(app *fiber.App) {
	app.Get("/swagger/*", swagger.HandlerDefault)
}
