package controllers

import (
	"errors"
	"net/url"
	"strings"

	"Mergington-Activities/src/models"
	"Mergington-Activities/src/services/activities"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

type ActivityController struct {
	service *activities.Service
}

func NewActivityController(service *activities.Service) *ActivityController {
	return &ActivityController{service: service}
}

// GetActivities godoc
// @Summary      Get all activities
// @Description  Activities keyed by name, in their stored order
// @Tags         activities
// @Produce      json
// @Success      200  {object}  map[string]models.Activity
// @Failure      500  {object}  models.ErrorResponse
// @Router       /activities [get]
func (ac *ActivityController) GetActivities(c *fiber.Ctx) error {
	data, err := ac.service.ListJSON(c.UserContext())
	if err != nil {
		return handleError(c, err)
	}
	// ส่ง JSON ที่เรียงลำดับไว้แล้วตรงๆ ไม่ผ่าน c.JSON
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
	return c.Status(fiber.StatusOK).Send(data)
}

// SignupForActivity godoc
// @Summary      Sign up for an activity
// @Tags         activities
// @Produce      json
// @Param        name   path   string  true  "Activity name"
// @Param        email  query  string  true  "Student email"
// @Success      200  {object}  models.MessageResponse
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Failure      422  {object}  models.ErrorResponse
// @Router       /activities/{name}/signup [post]
func (ac *ActivityController) SignupForActivity(c *fiber.Ctx) error {
	name, err := activityName(c)
	if err != nil {
		return handleError(c, err)
	}

	message, err := ac.service.Signup(c.UserContext(), name, queryEmail(c))
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(models.MessageResponse{Message: message})
}

// RemoveParticipant godoc
// @Summary      Remove a participant from an activity
// @Tags         activities
// @Produce      json
// @Param        name   path   string  true  "Activity name"
// @Param        email  query  string  true  "Student email"
// @Success      200  {object}  models.MessageResponse
// @Failure      404  {object}  models.ErrorResponse
// @Failure      422  {object}  models.ErrorResponse
// @Router       /activities/{name}/participants [delete]
func (ac *ActivityController) RemoveParticipant(c *fiber.Ctx) error {
	name, err := activityName(c)
	if err != nil {
		return handleError(c, err)
	}

	message, err := ac.service.Remove(c.UserContext(), name, queryEmail(c))
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(models.MessageResponse{Message: message})
}

var errBadActivityName = errors.New("Invalid activity name")

// fiber ไม่ decode path param ให้ ต้อง unescape เอง (เช่น Chess%20Club)
// ค่าจาก fiber ใช้ได้แค่ใน handler จึงต้อง copy ก่อนเก็บลง store
func activityName(c *fiber.Ctx) (string, error) {
	name, err := url.PathUnescape(c.Params("name"))
	if err != nil {
		return "", errBadActivityName
	}
	return strings.Clone(name), nil
}

func queryEmail(c *fiber.Ctx) string {
	return strings.Clone(c.Query("email"))
}

func handleError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, activities.ErrActivityNotFound), errors.Is(err, activities.ErrNotSignedUp):
		status = fiber.StatusNotFound
	case errors.Is(err, activities.ErrAlreadySignedUp), errors.Is(err, activities.ErrActivityFull),
		errors.Is(err, errBadActivityName):
		status = fiber.StatusBadRequest
	case errors.Is(err, activities.ErrValidation):
		status = fiber.StatusUnprocessableEntity
	}

	detail := err.Error()
	if status == fiber.StatusInternalServerError {
		log.Errorw("❌ activities request failed", "path", c.Path(), "error", err)
		detail = "Internal server error"
	}
	return c.Status(status).JSON(models.ErrorResponse{Detail: detail})
}
