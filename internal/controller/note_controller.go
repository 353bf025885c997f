package controller

import (
	"notes-be/internal/config"
	"notes-be/internal/dto"
	"notes-be/internal/pkg/serverutils"
	"notes-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type INoteController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type noteController struct {
	noteService service.INoteService
	authGuard   fiber.Handler
	policy      config.AuthPolicy
}

func NewNoteController(noteService service.INoteService, authGuard fiber.Handler, policy config.AuthPolicy) INoteController {
	return &noteController{
		noteService: noteService,
		authGuard:   authGuard,
		policy:      policy,
	}
}

func (c *noteController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/notes")
	h.Post("", c.guard(c.policy.Create, c.Create)...)
	h.Get("", c.List)
	h.Get(":id", c.Show)
	h.Put(":id", c.guard(c.policy.Update, c.Update)...)
	h.Delete(":id", c.guard(c.policy.Delete, c.Delete)...)
}

// guard prepends the token middleware when the policy requires it, making
// the per-operation auth contract explicit configuration.
func (c *noteController) guard(required bool, handler fiber.Handler) []fiber.Handler {
	if required {
		return []fiber.Handler{c.authGuard, handler}
	}
	return []fiber.Handler{handler}
}

func (c *noteController) Create(ctx *fiber.Ctx) error {
	userIdStr, _ := ctx.Locals("user_id").(string)
	userId, err := uuid.Parse(userIdStr)
	if err != nil {
		// A principal that is not a usable identifier counts as a bad token.
		return serverutils.ErrUnauthorized
	}

	var req dto.CreateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	// Validation strictly after authentication; the guard already ran.
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.noteService.Create(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(res)
}

func (c *noteController) List(ctx *fiber.Ctx) error {
	res, err := c.noteService.List(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *noteController) Show(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "malformed note id")
	}

	res, err := c.noteService.Show(ctx.Context(), id)
	if err != nil {
		return err
	}
	if res == nil {
		return ctx.Status(fiber.StatusNotFound).Send(nil)
	}
	return ctx.JSON(res)
}

func (c *noteController) Update(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "malformed note id")
	}

	var req dto.UpdateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	res, err := c.noteService.Update(ctx.Context(), id, &req)
	if err != nil {
		return err
	}
	// res is nil for an absent id; serialized as a JSON null body with 200.
	return ctx.JSON(res)
}

func (c *noteController) Delete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "malformed note id")
	}

	if err := c.noteService.Delete(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.Status(fiber.StatusNoContent).Send(nil)
}
