package routes

import (
	"Mergington-Activities/src/controllers"

	"github.com/gofiber/fiber/v2"
)

// Controllers คือ handler ทั้งหมดที่ router ต้องใช้
type Controllers struct {
	Activities *controllers.ActivityController
	Board      *controllers.BoardController
}

func InitRoutes(app *fiber.App, ctrl Controllers) {
	activityRoutes(app, ctrl.Activities)
	boardRoutes(app, ctrl.Board)
	swaggerRoutes(app)

	// Route เช็คว่า API ทำงานอยู่
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("✅ API is running...")
	})
}
