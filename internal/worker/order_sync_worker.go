package worker

import (
	"context"
	"time"

	ateliersvc "atelier_commerce/internal/api/atelier/service"
	"atelier_commerce/internal/logger"
)

// OrderSyncWorker chạy engine đồng bộ đơn hàng định kỳ.
// Mỗi interval (mặc định 24 giờ) kéo các đơn mới từ WooCommerce;
// đồng bộ thủ công vẫn có thể kích hoạt qua POST /sync/orders.
type OrderSyncWorker struct {
	syncService *ateliersvc.OrderSyncService
	interval    time.Duration // Khoảng thời gian giữa các lần chạy
}

// NewOrderSyncWorker tạo mới OrderSyncWorker.
// Tham số:
//   - interval: Khoảng thời gian giữa các lần chạy (mặc định: 24 giờ)
func NewOrderSyncWorker(interval time.Duration) (*OrderSyncWorker, error) {
	syncService, err := ateliersvc.NewOrderSyncService()
	if err != nil {
		return nil, err
	}
	if interval < time.Minute {
		interval = 24 * time.Hour
	}
	return &OrderSyncWorker{
		syncService: syncService,
		interval:    interval,
	}, nil
}

// Start chạy worker trong vòng lặp: một lượt ngay khi khởi động, sau đó
// mỗi interval một lượt. Lỗi của một lượt không dừng worker.
func (w *OrderSyncWorker) Start(ctx context.Context) {
	log := logger.GetAppLogger()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	log.WithFields(map[string]interface{}{
		"interval": w.interval.String(),
	}).Info("🔄 [ORDER_SYNC] Starting Order Sync Worker...")

	w.runOnce(ctx)

	for {
		select {
		case <-ctx.Done():
			log.Info("🔄 [ORDER_SYNC] Order Sync Worker stopped")
			return
		case <-ticker.C:
			w.runOnce(ctx)
		}
	}
}

// runOnce chạy một lượt đồng bộ với recover để panic không giết worker
func (w *OrderSyncWorker) runOnce(ctx context.Context) {
	log := logger.GetAppLogger()

	defer func() {
		if r := recover(); r != nil {
			log.WithFields(map[string]interface{}{
				"panic": r,
			}).Error("🔄 [ORDER_SYNC] Panic khi đồng bộ, sẽ tiếp tục ở lần chạy tiếp theo")
		}
	}()

	summary, err := w.syncService.SyncOrders(ctx)
	if err != nil {
		log.WithError(err).Error("🔄 [ORDER_SYNC] Lượt đồng bộ thất bại")
		return
	}

	log.WithFields(map[string]interface{}{
		"synchronized": summary.Synchronized,
		"lastOrderId":  summary.LastOrderId,
		"errorCount":   summary.ErrorCount,
	}).Info("🔄 [ORDER_SYNC] Lượt đồng bộ hoàn tất")
}
