package controllers

import (
	"context"
	"errors"

	"Mergington-Activities/src/board"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// BoardController serves the activity board page. Every request gets its own
// document and board; the page is always rebuilt from the activities API.
type BoardController struct {
	gateway board.Gateway
}

func NewBoardController(gateway board.Gateway) *BoardController {
	return &BoardController{gateway: gateway}
}

type boardAction func(ctx context.Context, b *board.ActivityBoard, doc *board.Document) error

// Index แสดงหน้ารายการกิจกรรม
func (bc *BoardController) Index(c *fiber.Ctx) error {
	return bc.render(c, false, nil)
}

// Signup handles the signup form post.
func (bc *BoardController) Signup(c *fiber.Ctx) error {
	email, activity := c.FormValue("email"), c.FormValue("activity")
	return bc.render(c, false, func(ctx context.Context, b *board.ActivityBoard, doc *board.Document) error {
		err := b.SubmitSignup(ctx, email, activity)
		if err != nil {
			// สมัครไม่สำเร็จ เก็บค่าที่กรอกไว้ในฟอร์ม
			doc.FillForm(email, activity)
		}
		return err
	})
}

// RemoveParticipant asks for confirmation first; the dialog posts back with confirm=yes.
func (bc *BoardController) RemoveParticipant(c *fiber.Ctx) error {
	activity, email := c.FormValue("activity"), c.FormValue("email")
	confirmed := c.FormValue("confirm") == "yes"
	return bc.render(c, confirmed, func(ctx context.Context, b *board.ActivityBoard, _ *board.Document) error {
		return b.RemoveParticipant(ctx, activity, email)
	})
}

func (bc *BoardController) Styles(c *fiber.Ctx) error {
	c.Type("css")
	return c.Send(board.Stylesheet)
}

func (bc *BoardController) render(c *fiber.Ctx, confirmed bool, action boardAction) error {
	doc, err := board.NewDocument()
	if err != nil {
		return err
	}
	ctx := c.UserContext()
	b := board.New(bc.gateway, doc, doc.Confirmer(confirmed))

	if err := b.LoadAndRender(ctx); err != nil {
		log.Warnw("⚠️ board load failed", "error", err)
	}
	if action != nil {
		if err := action(ctx, b, doc); err != nil && !errors.Is(err, board.ErrValidation) {
			log.Warnw("⚠️ board action failed", "path", c.Path(), "error", err)
		}
	}

	c.Type("html", "utf-8")
	return doc.Render(c)
}
