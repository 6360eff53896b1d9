// Package router đăng ký các route thuộc domain atelier: đơn hàng,
// trạng thái sản xuất, phân công, tricoteuse, đồng bộ và thống kê.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	atelierhdl "atelier_commerce/internal/api/atelier/handler"
	basehdl "atelier_commerce/internal/api/base/handler"
	"atelier_commerce/internal/api/middleware"
	apirouter "atelier_commerce/internal/api/router"
)

// Register đăng ký tất cả route atelier (orders, production-status,
// assignments, tricoteuses, sync, stats, system) lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	if err := registerSystemRoutes(v1); err != nil {
		return err
	}
	if err := registerOrderRoutes(v1, r); err != nil {
		return err
	}
	if err := registerProductionStatusRoutes(v1, r); err != nil {
		return err
	}
	if err := registerAssignmentRoutes(v1, r); err != nil {
		return err
	}
	if err := registerTricoteuseRoutes(v1, r); err != nil {
		return err
	}
	if err := registerSyncRoutes(v1); err != nil {
		return err
	}
	return nil
}

func registerSystemRoutes(router fiber.Router) error {
	systemHandler, err := basehdl.NewSystemHandler()
	if err != nil {
		return fmt.Errorf("failed to create system handler: %w", err)
	}
	router.Get("/health", systemHandler.HandleHealth)
	return nil
}

func registerOrderRoutes(router fiber.Router, r *apirouter.Router) error {
	orderHandler, err := atelierhdl.NewOrderItemHandler()
	if err != nil {
		return fmt.Errorf("failed to create order item handler: %w", err)
	}

	// Danh sách dashboard với bộ lọc status / productionType / search
	router.Get("/orders", orderHandler.HandleListOrders)
	apirouter.RegisterRouteWithMiddleware(router, "/orders", "DELETE", "/:orderId", nil, orderHandler.HandleDeleteOrderCascade)

	r.RegisterCRUDRoutes(router, "/order-items", orderHandler, apirouter.ReadWriteConfig, nil)
	return nil
}

func registerProductionStatusRoutes(router fiber.Router, r *apirouter.Router) error {
	statusHandler, err := atelierhdl.NewProductionStatusHandler()
	if err != nil {
		return fmt.Errorf("failed to create production status handler: %w", err)
	}

	apirouter.RegisterRouteWithMiddleware(router, "/production-status", "POST", "/bulk-update", nil, statusHandler.HandleBulkUpdate)
	router.Get("/stats/production", statusHandler.HandleGetStats)

	r.RegisterCRUDRoutes(router, "/production-status", statusHandler, apirouter.ReadWriteConfig, nil)
	return nil
}

func registerAssignmentRoutes(router fiber.Router, r *apirouter.Router) error {
	assignmentHandler, err := atelierhdl.NewArticleAssignmentHandler()
	if err != nil {
		return fmt.Errorf("failed to create article assignment handler: %w", err)
	}

	// Các mutation có propagation sang production_status dùng handler riêng,
	// không dùng CRUD chung
	apirouter.RegisterRouteWithMiddleware(router, "/assignments", "POST", "/", nil, assignmentHandler.HandleCreateAssignment)
	apirouter.RegisterRouteWithMiddleware(router, "/assignments", "POST", "/sync-status", nil, assignmentHandler.HandleSyncStatus)
	apirouter.RegisterRouteWithMiddleware(router, "/assignments", "PUT", "/by-article/:articleId", nil, assignmentHandler.HandleUpdateAssignment)
	apirouter.RegisterRouteWithMiddleware(router, "/assignments", "DELETE", "/by-article/:articleId", nil, assignmentHandler.HandleDeleteAssignmentByArticle)
	apirouter.RegisterRouteWithMiddleware(router, "/assignments", "DELETE", "/:id", nil, assignmentHandler.HandleDeleteAssignment)

	r.RegisterCRUDRoutes(router, "/assignments", assignmentHandler, apirouter.ReadOnlyConfig, nil)
	return nil
}

func registerTricoteuseRoutes(router fiber.Router, r *apirouter.Router) error {
	tricoteuseHandler, err := atelierhdl.NewTricoteuseHandler()
	if err != nil {
		return fmt.Errorf("failed to create tricoteuse handler: %w", err)
	}

	// Auth routes (public)
	router.Post("/tricoteuses/login", tricoteuseHandler.HandleLogin)
	router.Post("/tricoteuses/forgot-password", tricoteuseHandler.HandleForgotPassword)
	router.Post("/tricoteuses/reset-password", tricoteuseHandler.HandleResetPassword)

	// Profile của tricoteuse đang đăng nhập
	authMiddleware := middleware.AuthMiddleware()
	apirouter.RegisterRouteWithMiddleware(router, "/tricoteuses", "GET", "/me", []fiber.Handler{authMiddleware}, tricoteuseHandler.HandleMe)

	// Create/update dùng handler riêng để băm mật khẩu
	apirouter.RegisterRouteWithMiddleware(router, "/tricoteuses", "POST", "/insert-one", nil, tricoteuseHandler.HandleCreate)
	apirouter.RegisterRouteWithMiddleware(router, "/tricoteuses", "PUT", "/update-by-id/:id", nil, tricoteuseHandler.HandleUpdate)
	apirouter.RegisterRouteWithMiddleware(router, "/tricoteuses", "DELETE", "/delete-by-id/:id", nil, tricoteuseHandler.DeleteById)

	r.RegisterCRUDRoutes(router, "/tricoteuses", tricoteuseHandler, apirouter.ReadOnlyConfig, nil)
	return nil
}

func registerSyncRoutes(router fiber.Router) error {
	syncHandler, err := atelierhdl.NewSyncHandler()
	if err != nil {
		return fmt.Errorf("failed to create sync handler: %w", err)
	}

	router.Post("/sync/orders", syncHandler.HandleSyncOrders)
	router.Post("/import/order", syncHandler.HandleImportOrder)
	return nil
}
