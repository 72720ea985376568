package routes

import (
	"Mergington-Activities/src/controllers"

	"github.com/gofiber/fiber/v2"
)

// activityRoutes กำหนดเส้นทางสำหรับ Activities API
func activityRoutes(app *fiber.App, ctrl *controllers.ActivityController) {
	if ctrl == nil {
		return
	}
	activityRoutes := app.Group("/activities")
	activityRoutes.Get("/", ctrl.GetActivities)                          // ดึงกิจกรรมทั้งหมด
	activityRoutes.Post("/:name/signup", ctrl.SignupForActivity)         // สมัครกิจกรรม
	activityRoutes.Delete("/:name/participants", ctrl.RemoveParticipant) // ถอนชื่อผู้เข้าร่วม
}
