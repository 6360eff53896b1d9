package ateliersvc

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"

	"atelier_commerce/internal/api/atelier/models"
	basemodels "atelier_commerce/internal/api/base/models"
	basesvc "atelier_commerce/internal/api/base/service"
	"atelier_commerce/internal/common"
	"atelier_commerce/internal/global"
)

// OrderItemService xử lý collection order_items (các dòng đơn hàng denormalized)
type OrderItemService struct {
	*basesvc.BaseServiceMongoImpl[models.OrderItem]
}

// NewOrderItemService tạo OrderItemService mới
func NewOrderItemService() (*OrderItemService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.OrderItems)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.OrderItems, common.ErrNotFound)
	}
	return &OrderItemService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.OrderItem](coll),
	}, nil
}

// LastOrderId trả về orderId lớn nhất hiện có trong order_items (high-water mark).
// Trả về 0 khi collection rỗng.
func (s *OrderItemService) LastOrderId(ctx context.Context) (int64, error) {
	opts := mongoopts.FindOne().SetSort(bson.D{{Key: "orderId", Value: -1}})
	item, err := s.FindOne(ctx, bson.M{}, opts)
	if err != nil {
		if err == common.ErrNotFound {
			return 0, nil
		}
		return 0, err
	}
	return item.OrderId, nil
}

// IsOrderIdExist kiểm tra một đơn hàng đã được import chưa
func (s *OrderItemService) IsOrderIdExist(ctx context.Context, orderId int64) (bool, error) {
	return s.DocumentExists(ctx, bson.M{"orderId": orderId})
}

// InsertItems chèn các dòng của một đơn hàng vào order_items
func (s *OrderItemService) InsertItems(ctx context.Context, items []models.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	_, err := s.InsertMany(ctx, items)
	return err
}

// OrderListFilter là tham số lọc của danh sách đơn hàng phân trang
type OrderListFilter struct {
	Status         string // Lọc theo trạng thái fulfillment của đơn
	ProductionType string // Lọc theo loại sản xuất (couture/maille)
	Search         string // Tìm tự do theo số đơn hoặc tên khách
	SortField      string // Field sắp xếp (mặc định orderDate)
	SortOrder      int    // 1 tăng dần, -1 giảm dần (mặc định -1)
}

// FindOrdersWithFilter trả về danh sách dòng đơn hàng phân trang với các
// bộ lọc của dashboard: trạng thái, loại sản xuất, tìm kiếm tự do, sắp xếp.
func (s *OrderItemService) FindOrdersWithFilter(ctx context.Context, f OrderListFilter, page, limit int64) (*basemodels.PaginateResult[models.OrderItem], error) {
	filter := bson.M{}

	if f.Status != "" {
		filter["status"] = f.Status
	}
	if f.ProductionType != "" {
		filter["productionStatus.productionType"] = f.ProductionType
	}
	if f.Search != "" {
		// Escape input để tránh regex injection từ chuỗi tìm kiếm
		pattern := regexp.QuoteMeta(f.Search)
		filter["$or"] = []bson.M{
			{"orderNumber": bson.M{"$regex": pattern, "$options": "i"}},
			{"customerName": bson.M{"$regex": pattern, "$options": "i"}},
		}
	}

	sortField := f.SortField
	if sortField == "" {
		sortField = "orderDate"
	}
	sortOrder := f.SortOrder
	if sortOrder != 1 && sortOrder != -1 {
		sortOrder = -1
	}
	opts := mongoopts.Find().SetSort(bson.D{{Key: sortField, Value: sortOrder}})

	return s.FindWithPagination(ctx, filter, page, limit, opts)
}

// UpdateStatusSnapshot cập nhật bản sao trạng thái nhúng trong order_items.
// Best-effort: dòng đơn hàng chưa tồn tại không phải là lỗi (snapshot có thể
// trễ so với production_status).
func (s *OrderItemService) UpdateStatusSnapshot(ctx context.Context, orderId, lineItemId int64, snapshot models.StatusSnapshot) error {
	filter := bson.M{"orderId": orderId, "lineItemId": lineItemId}
	update := bson.M{"$set": bson.M{
		"productionStatus": snapshot,
		"updatedAt":        time.Now().UnixMilli(),
	}}
	_, err := s.Collection().UpdateOne(ctx, filter, update)
	if err != nil {
		return common.ConvertMongoError(err)
	}
	return nil
}

// DeleteOrderCascade xóa toàn bộ dữ liệu của một đơn hàng: các dòng
// order_items, các document production_status và các assignment liên quan.
// Trả về số dòng order_items đã xóa.
func (s *OrderItemService) DeleteOrderCascade(ctx context.Context, orderId int64) (int64, error) {
	deleted, err := s.DeleteMany(ctx, bson.M{"orderId": orderId})
	if err != nil {
		return 0, err
	}
	if deleted == 0 {
		return 0, common.ErrNotFound
	}

	// Xóa trạng thái sản xuất của đơn
	if statusColl, ok := global.RegistryCollections.Get(global.MongoDB_ColNames.ProductionStatus); ok {
		if _, err := statusColl.DeleteMany(ctx, bson.M{"orderId": orderId}); err != nil {
			return deleted, common.ConvertMongoError(err)
		}
	}

	// Xóa assignment của đơn: articleId có thể là "{orderId}-x", "{orderId}_x"
	// hoặc orderId trần (dạng legacy)
	if assignColl, ok := global.RegistryCollections.Get(global.MongoDB_ColNames.ArticleAssignments); ok {
		pattern := fmt.Sprintf("^%d([-_]|$)", orderId)
		if _, err := assignColl.DeleteMany(ctx, bson.M{"articleId": bson.M{"$regex": pattern}}); err != nil {
			return deleted, common.ConvertMongoError(err)
		}
	}

	return deleted, nil
}
