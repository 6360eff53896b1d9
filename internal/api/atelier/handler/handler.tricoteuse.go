package atelierhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	atelierdto "atelier_commerce/internal/api/atelier/dto"
	models "atelier_commerce/internal/api/atelier/models"
	ateliersvc "atelier_commerce/internal/api/atelier/service"
	basehdl "atelier_commerce/internal/api/base/handler"
	"atelier_commerce/internal/common"
)

// TricoteuseHandler xử lý các request trên collection tricoteuses
type TricoteuseHandler struct {
	*basehdl.BaseHandler[models.Tricoteuse, atelierdto.TricoteuseCreateInput, atelierdto.TricoteuseUpdateInput]
	tricoteuseService *ateliersvc.TricoteuseService
}

// NewTricoteuseHandler tạo instance mới của TricoteuseHandler
func NewTricoteuseHandler() (*TricoteuseHandler, error) {
	tricoteuseService, err := ateliersvc.NewTricoteuseService()
	if err != nil {
		return nil, fmt.Errorf("failed to create tricoteuse service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.Tricoteuse, atelierdto.TricoteuseCreateInput, atelierdto.TricoteuseUpdateInput](tricoteuseService)
	return &TricoteuseHandler{
		BaseHandler:       baseHandler,
		tricoteuseService: tricoteuseService,
	}, nil
}

// HandleCreate tạo tricoteuse mới (mật khẩu được băm ở service):
// POST /tricoteuses/insert-one
func (h *TricoteuseHandler) HandleCreate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input atelierdto.TricoteuseCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		tricoteuse, err := h.tricoteuseService.CreateTricoteuse(c.Context(), &input)
		h.HandleResponse(c, tricoteuse, err)
		return nil
	})
}

// HandleUpdate cập nhật hồ sơ tricoteuse (mật khẩu mới được băm lại):
// PUT /tricoteuses/update-by-id/:id
func (h *TricoteuseHandler) HandleUpdate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := primitive.ObjectIDFromHex(h.GetIDFromContext(c))
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				"ID không đúng định dạng ObjectID",
				common.StatusBadRequest,
				err,
			))
			return nil
		}

		var input atelierdto.TricoteuseUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		tricoteuse, err := h.tricoteuseService.UpdateTricoteuse(c.Context(), id, &input)
		h.HandleResponse(c, tricoteuse, err)
		return nil
	})
}

// HandleMe trả về hồ sơ của tricoteuse đang đăng nhập (từ JWT):
// GET /tricoteuses/me — yêu cầu AuthMiddleware
func (h *TricoteuseHandler) HandleMe(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		idStr, ok := c.Locals("tricoteuseID").(string)
		if !ok || idStr == "" {
			h.HandleResponse(c, nil, common.ErrTokenMissing)
			return nil
		}

		id, err := primitive.ObjectIDFromHex(idStr)
		if err != nil {
			h.HandleResponse(c, nil, common.ErrTokenInvalid)
			return nil
		}

		tricoteuse, err := h.tricoteuseService.FindOneById(c.Context(), id)
		h.HandleResponse(c, tricoteuse, err)
		return nil
	})
}

// HandleLogin xác thực email + mật khẩu, trả về hồ sơ kèm JWT token:
// POST /tricoteuses/login
func (h *TricoteuseHandler) HandleLogin(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input atelierdto.TricoteuseLoginInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		tricoteuse, token, err := h.tricoteuseService.Login(c.Context(), &input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		h.HandleResponse(c, fiber.Map{"tricoteuse": tricoteuse, "token": token}, nil)
		return nil
	})
}

// HandleForgotPassword gửi email đặt lại mật khẩu:
// POST /tricoteuses/forgot-password
func (h *TricoteuseHandler) HandleForgotPassword(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input atelierdto.ForgotPasswordInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		if err := h.tricoteuseService.ForgotPassword(c.Context(), input.Email); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		// Luôn trả về cùng một message, kể cả khi email không tồn tại
		h.HandleResponse(c, fiber.Map{"message": "nếu email tồn tại, link đặt lại đã được gửi"}, nil)
		return nil
	})
}

// HandleResetPassword đặt mật khẩu mới bằng token từ email:
// POST /tricoteuses/reset-password
func (h *TricoteuseHandler) HandleResetPassword(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input atelierdto.ResetPasswordInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		err := h.tricoteuseService.ResetPassword(c.Context(), &input)
		h.HandleResponse(c, nil, err)
		return nil
	})
}
