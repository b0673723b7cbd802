package controller

import (
	"ai-interview-be/internal/dto"
	"ai-interview-be/internal/pkg/serverutils"
	"ai-interview-be/internal/service"
	"ai-interview-be/pkg/coderunner"

	"github.com/gofiber/fiber/v2"
)

type ICodeController interface {
	RegisterRoutes(r fiber.Router)
	Run(ctx *fiber.Ctx) error
	Languages(ctx *fiber.Ctx) error
}

type codeController struct {
	service service.ICodeService
}

func NewCodeController(service service.ICodeService) ICodeController {
	return &codeController{service: service}
}

func (c *codeController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/code")
	h.Post("/run", c.Run)
	h.Get("/languages", c.Languages)
}

func (c *codeController) Run(ctx *fiber.Ctx) error {
	var req dto.RunCodeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Run(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success run code", res))
}

func (c *codeController) Languages(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Success get languages", coderunner.SupportedLanguages()))
}
