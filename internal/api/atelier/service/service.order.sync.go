package ateliersvc

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"atelier_commerce/internal/api/atelier/dto"
	"atelier_commerce/internal/api/atelier/models"
	"atelier_commerce/internal/common"
	"atelier_commerce/internal/global"
	"atelier_commerce/internal/logger"
	"atelier_commerce/internal/woo"
)

// OrderFetcher trừu tượng hóa nguồn đơn hàng upstream (WooCommerce REST).
// Interface hẹp để engine đồng bộ test được với fetcher giả.
type OrderFetcher interface {
	ListRecentOrders(ctx context.Context, perPage int) ([]woo.Order, error)
	GetOrder(ctx context.Context, orderId int64) (*woo.Order, error)
}

// OrderItemStore là phần của OrderItemService mà engine đồng bộ cần
type OrderItemStore interface {
	LastOrderId(ctx context.Context) (int64, error)
	IsOrderIdExist(ctx context.Context, orderId int64) (bool, error)
	InsertItems(ctx context.Context, items []models.OrderItem) error
}

// StatusStore là phần của ProductionStatusService mà engine đồng bộ cần
type StatusStore interface {
	EnsureArticleStatus(ctx context.Context, orderId, lineItemId int64, productionType string) error
}

// OrderSyncService là engine đồng bộ đơn hàng: kéo các đơn mới hơn
// high-water mark từ upstream, transform và ghi vào store.
type OrderSyncService struct {
	fetcher    OrderFetcher
	items      OrderItemStore
	statuses   StatusStore
	classifier Classifier
	pageSize   int
}

// NewOrderSyncService tạo engine đồng bộ với stack mặc định: client
// WooCommerce từ config, các service Mongo và classifier từ khóa
func NewOrderSyncService() (*OrderSyncService, error) {
	cfg := global.MongoDB_ServerConfig
	if cfg == nil || cfg.WooBaseURL == "" {
		return nil, fmt.Errorf("thiếu cấu hình WooCommerce: %w", common.ErrInvalidState)
	}

	itemService, err := NewOrderItemService()
	if err != nil {
		return nil, err
	}
	statusService, err := NewProductionStatusService()
	if err != nil {
		return nil, err
	}

	return NewOrderSyncServiceWith(
		woo.NewClient(cfg.WooBaseURL, cfg.WooConsumerKey, cfg.WooConsumerSecret),
		itemService,
		statusService,
		NewKeywordClassifier(),
		cfg.SyncPageSize,
	), nil
}

// NewOrderSyncServiceWith tạo engine với các dependency tự chọn
func NewOrderSyncServiceWith(fetcher OrderFetcher, items OrderItemStore, statuses StatusStore, classifier Classifier, pageSize int) *OrderSyncService {
	if pageSize <= 0 {
		pageSize = 100
	}
	return &OrderSyncService{
		fetcher:    fetcher,
		items:      items,
		statuses:   statuses,
		classifier: classifier,
		pageSize:   pageSize,
	}
}

// SyncOrders chạy một lượt đồng bộ:
//  1. Đọc high-water mark (orderId lớn nhất đã có, 0 khi store rỗng)
//  2. Kéo các đơn gần nhất từ upstream; lỗi fetch dừng cả lượt
//  3. Chỉ xử lý đơn có id > mark; đơn lỗi được ghi log và bỏ qua,
//     các đơn sau vẫn được xử lý
//
// Lỗi duplicate key khi insert được coi là "đơn đã đồng bộ trước đó"
// chứ không phải lỗi — unique index (orderId, lineItemId) là hàng rào
// chống trùng thật sự, vì hai lệnh ghi của một đơn không atomic.
func (s *OrderSyncService) SyncOrders(ctx context.Context) (*dto.SyncSummaryOutput, error) {
	log := logger.GetAppLogger()

	mark, err := s.items.LastOrderId(ctx)
	if err != nil {
		return nil, err
	}

	orders, err := s.fetcher.ListRecentOrders(ctx, s.pageSize)
	if err != nil {
		log.WithError(err).Error("Không kéo được danh sách đơn hàng từ upstream")
		return nil, err
	}

	// Xử lý theo id tăng dần để high-water mark tiến đều kể cả khi
	// một đơn ở giữa bị lỗi
	sort.Slice(orders, func(i, j int) bool { return orders[i].ID < orders[j].ID })

	summary := &dto.SyncSummaryOutput{
		LastOrderId: mark,
		NewOrders:   []int64{},
	}

	for i := range orders {
		order := &orders[i]
		if order.ID <= mark {
			continue
		}

		imported, err := s.importOne(ctx, order)
		if err != nil {
			summary.ErrorCount++
			log.WithFields(logrus.Fields{
				"orderId": order.ID,
			}).WithError(err).Error("Lỗi khi đồng bộ đơn hàng, bỏ qua")
			continue
		}

		if imported {
			summary.Synchronized++
			summary.NewOrders = append(summary.NewOrders, order.ID)
		}
		if order.ID > summary.LastOrderId {
			summary.LastOrderId = order.ID
		}
	}

	summary.Timestamp = time.Now().UnixMilli()
	log.WithFields(logrus.Fields{
		"synchronized": summary.Synchronized,
		"lastOrderId":  summary.LastOrderId,
		"errorCount":   summary.ErrorCount,
	}).Info("Lượt đồng bộ đơn hàng hoàn tất")

	return summary, nil
}

// ImportOrder import một đơn hàng theo id, bỏ qua high-water mark.
// Trả về ErrNotFound khi upstream không có đơn này.
func (s *OrderSyncService) ImportOrder(ctx context.Context, orderId int64) (*dto.ImportOrderOutput, error) {
	order, err := s.fetcher.GetOrder(ctx, orderId)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, common.NewError(
			common.ErrCodeUpstreamStatus,
			fmt.Sprintf("không tìm thấy đơn hàng %d trên upstream", orderId),
			common.StatusNotFound,
			nil,
		)
	}

	exists, err := s.items.IsOrderIdExist(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return &dto.ImportOrderOutput{
			OrderId:  order.ID,
			Imported: false,
			Message:  "đơn hàng đã được import từ trước",
		}, nil
	}

	items := TransformOrder(order, s.classifier)
	if err := s.writeOrder(ctx, order.ID, items); err != nil {
		return nil, err
	}

	return &dto.ImportOrderOutput{
		OrderId:  order.ID,
		Imported: true,
		Items:    len(items),
		Message:  "import thành công",
	}, nil
}

// importOne xử lý một đơn trong lượt đồng bộ. Trả về true khi đơn thực sự
// được import (false khi đơn đã tồn tại).
func (s *OrderSyncService) importOne(ctx context.Context, order *woo.Order) (bool, error) {
	exists, err := s.items.IsOrderIdExist(ctx, order.ID)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	items := TransformOrder(order, s.classifier)
	if err := s.writeOrder(ctx, order.ID, items); err != nil {
		if isDuplicateErr(err) {
			// Một process khác đã ghi đơn này trước ta
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// writeOrder ghi các dòng order_items rồi tạo production_status mặc định
// cho từng dòng. Hai bước không atomic: nếu bước hai lỗi, production_status
// sẽ được EnsureArticleStatus bù lại ở lượt gọi sau.
func (s *OrderSyncService) writeOrder(ctx context.Context, orderId int64, items []models.OrderItem) error {
	if err := s.items.InsertItems(ctx, items); err != nil {
		return err
	}

	for _, item := range items {
		if err := s.statuses.EnsureArticleStatus(ctx, item.OrderId, item.LineItemId, item.ProductionStatus.ProductionType); err != nil {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"orderId":    item.OrderId,
				"lineItemId": item.LineItemId,
			}).WithError(err).Warn("Không tạo được production_status cho article")
		}
	}
	return nil
}

// isDuplicateErr nhận diện lỗi duplicate key đã được convert về lỗi chung
func isDuplicateErr(err error) bool {
	if err == nil {
		return false
	}
	if err == common.ErrDuplicate || err == common.ErrMongoDuplicate {
		return true
	}
	if e, ok := err.(*common.Error); ok {
		return e.StatusCode == common.StatusConflict
	}
	return false
}
