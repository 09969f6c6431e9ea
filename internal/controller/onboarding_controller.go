package controller

import (
	"brandlaunch-be/internal/dto"
	"brandlaunch-be/internal/pkg/serverutils"
	"brandlaunch-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IOnboardingController interface {
	RegisterRoutes(r fiber.Router)
	Start(ctx *fiber.Ctx) error
	Current(ctx *fiber.Ctx) error
	Answer(ctx *fiber.Ctx) error
	Brand(ctx *fiber.Ctx) error
	Analyze(ctx *fiber.Ctx) error
	NextStep(ctx *fiber.Ctx) error
	Resume(ctx *fiber.Ctx) error
	DraftChoice(ctx *fiber.Ctx) error
	Advance(ctx *fiber.Ctx) error
	Brief(ctx *fiber.Ctx) error
	Publish(ctx *fiber.Ctx) error
	Stage(ctx *fiber.Ctx) error
	StageAdvance(ctx *fiber.Ctx) error
	Back(ctx *fiber.Ctx) error
}

type onboardingController struct {
	service service.IConsultationService
}

func NewOnboardingController(service service.IConsultationService) IOnboardingController {
	return &onboardingController{service: service}
}

func (c *onboardingController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/onboarding/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("/start", c.Start)
	h.Get("/current", c.Current)
	h.Post("/answer", c.Answer)
	h.Post("/brand", c.Brand)
	h.Post("/analyze", c.Analyze)
	h.Get("/next-step", c.NextStep)
	h.Get("/resume", c.Resume)
	h.Post("/draft/choice", c.DraftChoice)
	h.Post("/advance", c.Advance)
	h.Post("/brief", c.Brief)
	h.Post("/publish", c.Publish)
	h.Get("/stage", c.Stage)
	h.Post("/stage/advance", c.StageAdvance)
	h.Post("/back", c.Back)
}

func userIdFromLocals(ctx *fiber.Ctx) uuid.UUID {
	userIdStr, _ := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	return userId
}

func (c *onboardingController) Start(ctx *fiber.Ctx) error {
	userId := userIdFromLocals(ctx)

	var req dto.StartAttemptRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	res, err := c.service.StartAttempt(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success start onboarding", res))
}

func (c *onboardingController) Current(ctx *fiber.Ctx) error {
	userId := userIdFromLocals(ctx)

	res, err := c.service.GetCurrent(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get current consultation", res))
}

func (c *onboardingController) Answer(ctx *fiber.Ctx) error {
	userId := userIdFromLocals(ctx)

	var req dto.SubmitAnswerRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.SubmitAnswer(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success submit answer", res))
}

func (c *onboardingController) Brand(ctx *fiber.Ctx) error {
	userId := userIdFromLocals(ctx)

	var req dto.CaptureBrandRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.CaptureBrand(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success capture brand", res))
}

func (c *onboardingController) Analyze(ctx *fiber.Ctx) error {
	userId := userIdFromLocals(ctx)

	var req dto.AnalyzeWebsiteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.AnalyzeWebsite(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success queue website analysis", res))
}

func (c *onboardingController) NextStep(ctx *fiber.Ctx) error {
	userId := userIdFromLocals(ctx)

	res, err := c.service.NextStep(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get next step", res))
}

func (c *onboardingController) Resume(ctx *fiber.Ctx) error {
	userId := userIdFromLocals(ctx)

	res, err := c.service.Resume(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get resume state", res))
}

func (c *onboardingController) DraftChoice(ctx *fiber.Ctx) error {
	userId := userIdFromLocals(ctx)

	var req dto.DraftChoiceRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.DraftChoice(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success apply draft choice", res))
}

func (c *onboardingController) Advance(ctx *fiber.Ctx) error {
	userId := userIdFromLocals(ctx)
	email, _ := ctx.Locals("email").(string)

	var req dto.AdvanceFlowRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.AdvanceFlowState(ctx.Context(), userId, email, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success advance flow state", res))
}

func (c *onboardingController) Brief(ctx *fiber.Ctx) error {
	userId := userIdFromLocals(ctx)

	var req dto.StoreBriefRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.StoreBrief(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success store brief", res))
}

func (c *onboardingController) Publish(ctx *fiber.Ctx) error {
	userId := userIdFromLocals(ctx)

	var req dto.MarkPublishedRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.MarkPublished(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success mark published", res))
}

func (c *onboardingController) Stage(ctx *fiber.Ctx) error {
	userId := userIdFromLocals(ctx)

	res, err := c.service.GetStage(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get stage", res))
}

func (c *onboardingController) StageAdvance(ctx *fiber.Ctx) error {
	userId := userIdFromLocals(ctx)

	var req dto.StageAdvanceRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.AdvanceStage(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success advance stage", res))
}

func (c *onboardingController) Back(ctx *fiber.Ctx) error {
	userId := userIdFromLocals(ctx)

	res, err := c.service.Back(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success step back", res))
}
