package controller

import (
	"ai-interview-be/internal/dto"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type IHealthController interface {
	RegisterRoutes(r fiber.Router)
	Health(ctx *fiber.Ctx) error
}

type healthController struct {
	db               *gorm.DB
	geminiConfigured bool
	eventBus         bool
}

func NewHealthController(db *gorm.DB, geminiConfigured, eventBus bool) IHealthController {
	return &healthController{
		db:               db,
		geminiConfigured: geminiConfigured,
		eventBus:         eventBus,
	}
}

func (c *healthController) RegisterRoutes(r fiber.Router) {
	r.Get("/health", c.Health)
}

// Health always answers 200; a failing database shows up in the body.
func (c *healthController) Health(ctx *fiber.Ctx) error {
	res := dto.HealthResponse{
		Status:           "ok",
		GeminiConfigured: c.geminiConfigured,
		Database:         "ok",
		EventBus:         c.eventBus,
	}

	if c.db == nil {
		res.Database = "unavailable"
	} else if sqlDB, err := c.db.DB(); err != nil || sqlDB.PingContext(ctx.Context()) != nil {
		res.Database = "unavailable"
	}

	return ctx.JSON(res)
}
