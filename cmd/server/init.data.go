package main

import (
	"context"
	"time"

	"atelier_commerce/internal/global"
	"atelier_commerce/internal/logger"
)

// InitDefaultData kiểm tra cấu hình và dữ liệu khởi động.
// Không seed dữ liệu: đơn hàng đến từ WooCommerce, tricoteuse được tạo qua API.
func InitDefaultData() {
	log := logger.GetAppLogger()
	log.Info("🔄 [INIT] Starting InitDefaultData...")

	cfg := global.MongoDB_ServerConfig

	// 1. Kiểm tra cấu hình WooCommerce (bắt buộc cho đồng bộ đơn hàng)
	if cfg.WooBaseURL == "" || cfg.WooConsumerKey == "" || cfg.WooConsumerSecret == "" {
		log.Warn("⚠️ [INIT] Thiếu cấu hình WooCommerce, đồng bộ đơn hàng sẽ không hoạt động")
	} else {
		log.Info("✅ [INIT] WooCommerce configuration present")
	}

	// 2. Kiểm tra cấu hình SMTP (chỉ cần cho mail đặt lại mật khẩu)
	if cfg.SMTPHost == "" || cfg.SMTPFrom == "" {
		log.Warn("⚠️ [INIT] Thiếu cấu hình SMTP, tính năng quên mật khẩu sẽ không gửi được mail")
	}

	// 3. Log trạng thái dữ liệu hiện có để tiện theo dõi khi khởi động
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	db := global.MongoDB_Session.Database(cfg.MongoDB_DBName)
	orderCount, err := db.Collection(global.MongoDB_ColNames.OrderItems).EstimatedDocumentCount(ctx)
	if err != nil {
		log.WithError(err).Warn("⚠️ [INIT] Không đếm được order_items")
	}
	tricoteuseCount, err := db.Collection(global.MongoDB_ColNames.Tricoteuses).EstimatedDocumentCount(ctx)
	if err != nil {
		log.WithError(err).Warn("⚠️ [INIT] Không đếm được tricoteuses")
	}

	log.WithFields(map[string]interface{}{
		"orderItems":  orderCount,
		"tricoteuses": tricoteuseCount,
	}).Info("✅ [INIT] InitDefaultData completed successfully")
}
