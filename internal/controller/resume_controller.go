package controller

import (
	"io"

	"ai-interview-be/internal/dto"
	"ai-interview-be/internal/pkg/serverutils"
	"ai-interview-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IResumeController interface {
	RegisterRoutes(r fiber.Router)
	Upload(ctx *fiber.Ctx) error
	Analyze(ctx *fiber.Ctx) error
}

type resumeController struct {
	service service.IResumeService
}

func NewResumeController(service service.IResumeService) IResumeController {
	return &resumeController{service: service}
}

func (c *resumeController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/resume")
	h.Post("/upload", c.Upload)
	h.Post("/analyze", c.Analyze)
}

func (c *resumeController) Upload(ctx *fiber.Ctx) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return serverutils.NewBadRequestError("File is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return err
	}

	res, err := c.service.Upload(ctx.Context(), fileHeader.Filename, data)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success parse resume", res))
}

func (c *resumeController) Analyze(ctx *fiber.Ctx) error {
	var req dto.AnalyzeResumeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	res, err := c.service.Analyze(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success analyze resume", res))
}
