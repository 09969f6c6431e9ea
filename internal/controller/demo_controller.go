package controller

import (
	"brandlaunch-be/internal/dto"
	"brandlaunch-be/internal/pkg/serverutils"
	"brandlaunch-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IDemoController interface {
	RegisterRoutes(r fiber.Router)
	CreateSession(ctx *fiber.Ctx) error
	GetSession(ctx *fiber.Ctx) error
	SendMessage(ctx *fiber.Ctx) error
	Claim(ctx *fiber.Ctx) error
}

type demoController struct {
	service service.IDemoService
}

func NewDemoController(service service.IDemoService) IDemoController {
	return &demoController{service: service}
}

func (c *demoController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/demo/v1")
	// Session creation and chat are anonymous; only claiming needs an account.
	h.Post("/session", c.CreateSession)
	h.Get("/session/:token", c.GetSession)
	h.Post("/session/:token/message", c.SendMessage)
	h.Post("/claim", serverutils.JwtMiddleware, c.Claim)
}

func (c *demoController) CreateSession(ctx *fiber.Ctx) error {
	res, err := c.service.CreateSession(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create demo session", res))
}

func (c *demoController) GetSession(ctx *fiber.Ctx) error {
	token := ctx.Params("token")

	res, err := c.service.GetSession(ctx.Context(), token)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get demo session", res))
}

func (c *demoController) SendMessage(ctx *fiber.Ctx) error {
	token := ctx.Params("token")

	var req dto.DemoMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.SendMessage(ctx.Context(), token, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success send demo message", res))
}

func (c *demoController) Claim(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.ClaimDemoSessionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Claim(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success claim demo session", res))
}
