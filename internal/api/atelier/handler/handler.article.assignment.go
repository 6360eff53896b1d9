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

// ArticleAssignmentHandler xử lý các request trên collection article_assignments
type ArticleAssignmentHandler struct {
	*basehdl.BaseHandler[models.ArticleAssignment, atelierdto.AssignmentCreateInput, atelierdto.AssignmentUpdateInput]
	assignmentService *ateliersvc.ArticleAssignmentService
}

// NewArticleAssignmentHandler tạo instance mới của ArticleAssignmentHandler
func NewArticleAssignmentHandler() (*ArticleAssignmentHandler, error) {
	assignmentService, err := ateliersvc.NewArticleAssignmentService()
	if err != nil {
		return nil, fmt.Errorf("failed to create article assignment service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.ArticleAssignment, atelierdto.AssignmentCreateInput, atelierdto.AssignmentUpdateInput](assignmentService)
	return &ArticleAssignmentHandler{
		BaseHandler:       baseHandler,
		assignmentService: assignmentService,
	}, nil
}

// HandleCreateAssignment phân công một article cho tricoteuse:
// POST /assignments — trạng thái sản xuất được cập nhật theo
func (h *ArticleAssignmentHandler) HandleCreateAssignment(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input atelierdto.AssignmentCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		assignment, err := h.assignmentService.CreateAssignment(c.Context(), &input)
		h.HandleResponse(c, assignment, err)
		return nil
	})
}

// HandleUpdateAssignment cập nhật phân công của một article:
// PUT /assignments/:articleId
func (h *ArticleAssignmentHandler) HandleUpdateAssignment(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		articleId := c.Params("articleId")
		if articleId == "" {
			h.HandleResponse(c, nil, common.ErrInvalidInput)
			return nil
		}

		var input atelierdto.AssignmentUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		assignment, err := h.assignmentService.UpdateAssignment(c.Context(), articleId, &input)
		h.HandleResponse(c, assignment, err)
		return nil
	})
}

// HandleDeleteAssignment xóa một phân công theo _id và đặt lại trạng thái
// sản xuất về "a_faire": DELETE /assignments/:id
func (h *ArticleAssignmentHandler) HandleDeleteAssignment(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := primitive.ObjectIDFromHex(c.Params("id"))
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				"ID không đúng định dạng ObjectID",
				common.StatusBadRequest,
				err,
			))
			return nil
		}

		err = h.assignmentService.DeleteAssignmentById(c.Context(), id)
		h.HandleResponse(c, nil, err)
		return nil
	})
}

// HandleDeleteAssignmentByArticle xóa phân công của một article:
// DELETE /assignments/by-article/:articleId
func (h *ArticleAssignmentHandler) HandleDeleteAssignmentByArticle(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		articleId := c.Params("articleId")
		if articleId == "" {
			h.HandleResponse(c, nil, common.ErrInvalidInput)
			return nil
		}

		err := h.assignmentService.DeleteAssignmentByArticleId(c.Context(), articleId)
		h.HandleResponse(c, nil, err)
		return nil
	})
}

// HandleSyncStatus đồng bộ lại trạng thái của toàn bộ assignment sang
// production_status: POST /assignments/sync-status
func (h *ArticleAssignmentHandler) HandleSyncStatus(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		result, err := h.assignmentService.SyncAssignmentsStatus(c.Context())
		h.HandleResponse(c, result, err)
		return nil
	})
}
