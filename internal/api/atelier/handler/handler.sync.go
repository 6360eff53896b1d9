package atelierhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	atelierdto "atelier_commerce/internal/api/atelier/dto"
	ateliersvc "atelier_commerce/internal/api/atelier/service"
	basehdl "atelier_commerce/internal/api/base/handler"
)

// SyncHandler xử lý các request đồng bộ đơn hàng từ WooCommerce
type SyncHandler struct {
	*basehdl.BaseHandler[interface{}, interface{}, interface{}]
	syncService *ateliersvc.OrderSyncService
}

// NewSyncHandler tạo instance mới của SyncHandler
func NewSyncHandler() (*SyncHandler, error) {
	syncService, err := ateliersvc.NewOrderSyncService()
	if err != nil {
		return nil, fmt.Errorf("failed to create order sync service: %v", err)
	}
	return &SyncHandler{
		BaseHandler: &basehdl.BaseHandler[interface{}, interface{}, interface{}]{},
		syncService: syncService,
	}, nil
}

// HandleSyncOrders chạy một lượt đồng bộ thủ công: POST /sync/orders
func (h *SyncHandler) HandleSyncOrders(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		summary, err := h.syncService.SyncOrders(c.Context())
		h.HandleResponse(c, summary, err)
		return nil
	})
}

// HandleImportOrder import một đơn hàng theo id, bỏ qua high-water mark:
// POST /import/order với body {"orderId": 123}
func (h *SyncHandler) HandleImportOrder(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input atelierdto.ImportOrderInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		result, err := h.syncService.ImportOrder(c.Context(), input.OrderId)
		h.HandleResponse(c, result, err)
		return nil
	})
}
