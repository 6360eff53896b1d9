// Package atelierhdl chứa các handler HTTP của domain atelier: đơn hàng,
// trạng thái sản xuất, phân công và tricoteuse.
package atelierhdl

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v3"

	atelierdto "atelier_commerce/internal/api/atelier/dto"
	models "atelier_commerce/internal/api/atelier/models"
	ateliersvc "atelier_commerce/internal/api/atelier/service"
	basehdl "atelier_commerce/internal/api/base/handler"
	"atelier_commerce/internal/common"
)

// OrderItemHandler xử lý các request trên collection order_items
type OrderItemHandler struct {
	*basehdl.BaseHandler[models.OrderItem, atelierdto.OrderItemCreateInput, atelierdto.OrderItemUpdateInput]
	orderItemService *ateliersvc.OrderItemService
}

// NewOrderItemHandler tạo instance mới của OrderItemHandler
func NewOrderItemHandler() (*OrderItemHandler, error) {
	orderItemService, err := ateliersvc.NewOrderItemService()
	if err != nil {
		return nil, fmt.Errorf("failed to create order item service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.OrderItem, atelierdto.OrderItemCreateInput, atelierdto.OrderItemUpdateInput](orderItemService)
	return &OrderItemHandler{
		BaseHandler:      baseHandler,
		orderItemService: orderItemService,
	}, nil
}

// HandleListOrders trả về danh sách dòng đơn hàng phân trang với các bộ lọc
// của dashboard: ?status=, ?productionType=, ?search=, ?sortField=, ?sortOrder=
func (h *OrderItemHandler) HandleListOrders(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		page, limit := h.ParsePagination(c)

		filter := ateliersvc.OrderListFilter{
			Status:         c.Query("status"),
			ProductionType: c.Query("productionType"),
			Search:         c.Query("search"),
			SortField:      c.Query("sortField"),
		}
		if raw := c.Query("sortOrder"); raw != "" {
			if v, err := strconv.Atoi(raw); err == nil {
				filter.SortOrder = v
			}
		}

		if filter.ProductionType != "" && !models.IsValidProductionType(filter.ProductionType) {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				fmt.Sprintf("productionType '%s' không hợp lệ", filter.ProductionType),
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		result, err := h.orderItemService.FindOrdersWithFilter(c.Context(), filter, page, limit)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleDeleteOrderCascade xóa một đơn hàng cùng toàn bộ trạng thái sản xuất
// và phân công liên quan: DELETE /orders/:orderId
func (h *OrderItemHandler) HandleDeleteOrderCascade(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		orderId, err := strconv.ParseInt(c.Params("orderId"), 10, 64)
		if err != nil || orderId <= 0 {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				"orderId không hợp lệ",
				common.StatusBadRequest,
				err,
			))
			return nil
		}

		deleted, err := h.orderItemService.DeleteOrderCascade(c.Context(), orderId)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		h.HandleResponse(c, fiber.Map{"orderId": orderId, "deletedItems": deleted}, nil)
		return nil
	})
}
