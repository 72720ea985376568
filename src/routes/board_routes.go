package routes

import (
	"Mergington-Activities/src/controllers"

	"github.com/gofiber/fiber/v2"
)

func boardRoutes(app *fiber.App, ctrl *controllers.BoardController) {
	if ctrl == nil {
		return
	}
	app.Get("/", ctrl.Index)
	app.Post("/signup", ctrl.Signup)
	app.Post("/participants/remove", ctrl.RemoveParticipant)
	app.Get("/static/styles.css", ctrl.Styles)
}
