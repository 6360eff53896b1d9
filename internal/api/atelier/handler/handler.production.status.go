package atelierhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	atelierdto "atelier_commerce/internal/api/atelier/dto"
	models "atelier_commerce/internal/api/atelier/models"
	ateliersvc "atelier_commerce/internal/api/atelier/service"
	basehdl "atelier_commerce/internal/api/base/handler"
)

// ProductionStatusHandler xử lý các request trên collection production_status
type ProductionStatusHandler struct {
	*basehdl.BaseHandler[models.ProductionStatus, atelierdto.ProductionStatusCreateInput, atelierdto.ProductionStatusUpdateInput]
	statusService *ateliersvc.ProductionStatusService
}

// NewProductionStatusHandler tạo instance mới của ProductionStatusHandler
func NewProductionStatusHandler() (*ProductionStatusHandler, error) {
	statusService, err := ateliersvc.NewProductionStatusService()
	if err != nil {
		return nil, fmt.Errorf("failed to create production status service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.ProductionStatus, atelierdto.ProductionStatusCreateInput, atelierdto.ProductionStatusUpdateInput](statusService)
	return &ProductionStatusHandler{
		BaseHandler:   baseHandler,
		statusService: statusService,
	}, nil
}

// HandleBulkUpdate cập nhật trạng thái của nhiều article trong một lệnh:
// POST /production-status/bulk-update với body {"updates": [{orderId, lineItemId, status}]}
func (h *ProductionStatusHandler) HandleBulkUpdate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input atelierdto.BulkStatusUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		modified, err := h.statusService.BulkUpdateStatus(c.Context(), input.Updates)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		h.HandleResponse(c, fiber.Map{"modifiedCount": modified}, nil)
		return nil
	})
}

// HandleGetStats trả về thống kê sản xuất tổng hợp: GET /stats/production
func (h *ProductionStatusHandler) HandleGetStats(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		stats, err := h.statusService.GetProductionStats(c.Context())
		h.HandleResponse(c, stats, err)
		return nil
	})
}
