package ateliersvc

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"

	"atelier_commerce/internal/api/atelier/dto"
	"atelier_commerce/internal/api/atelier/models"
	basesvc "atelier_commerce/internal/api/base/service"
	"atelier_commerce/internal/common"
	"atelier_commerce/internal/global"
	"atelier_commerce/internal/logger"
)

// ProductionStatusService xử lý collection production_status — trạng thái
// sản xuất của từng article, định danh bằng cặp (orderId, lineItemId)
type ProductionStatusService struct {
	*basesvc.BaseServiceMongoImpl[models.ProductionStatus]
	orderItemService *OrderItemService
}

// NewProductionStatusService tạo ProductionStatusService mới
func NewProductionStatusService() (*ProductionStatusService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.ProductionStatus)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.ProductionStatus, common.ErrNotFound)
	}

	orderItemService, err := NewOrderItemService()
	if err != nil {
		return nil, err
	}

	return &ProductionStatusService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.ProductionStatus](coll),
		orderItemService:     orderItemService,
	}, nil
}

// EnsureArticleStatus tạo document trạng thái cho một article nếu chưa có,
// với trạng thái mặc định "a_faire". Không ghi đè trạng thái đã tồn tại —
// engine đồng bộ gọi hàm này cho mọi article nó import.
func (s *ProductionStatusService) EnsureArticleStatus(ctx context.Context, orderId, lineItemId int64, productionType string) error {
	if !models.IsValidProductionType(productionType) {
		productionType = models.TypeCouture
	}

	now := time.Now().UnixMilli()
	filter := bson.M{"orderId": orderId, "lineItemId": lineItemId}
	update := bson.M{
		"$set": bson.M{"updatedAt": now},
		"$setOnInsert": bson.M{
			"orderId":        orderId,
			"lineItemId":     lineItemId,
			"status":         models.StatusAFaire,
			"productionType": productionType,
			"urgent":         false,
			"createdAt":      now,
		},
	}

	opts := mongoopts.Update().SetUpsert(true)
	if _, err := s.Collection().UpdateOne(ctx, filter, update, opts); err != nil {
		return common.ConvertMongoError(err)
	}
	return nil
}

// SetStatus cập nhật trạng thái sản xuất của một article (upsert) và
// đồng bộ bản sao nhúng trong order_items
func (s *ProductionStatusService) SetStatus(ctx context.Context, ref ArticleRef, status string) error {
	return s.applyStatus(ctx, ref, status, bson.M{}, nil)
}

// ApplyAssignment ghi trạng thái và cờ urgent kèm thông tin người được
// phân công. Được gọi khi tạo hoặc cập nhật assignment để giữ hai
// collection nhất quán (assignment là nguồn sự thật của status và urgent).
func (s *ProductionStatusService) ApplyAssignment(ctx context.Context, ref ArticleRef, tricoteuseId primitive.ObjectID, tricoteuseName, status string, urgent bool) error {
	extra := bson.M{"urgent": urgent}
	if !tricoteuseId.IsZero() {
		extra["assignedTo"] = tricoteuseId
	}
	if tricoteuseName != "" {
		extra["assignedName"] = tricoteuseName
	}
	return s.applyStatus(ctx, ref, status, extra, nil)
}

// ClearAssignment đặt lại trạng thái về "a_faire" và gỡ thông tin phân công.
// Được gọi khi xóa assignment.
func (s *ProductionStatusService) ClearAssignment(ctx context.Context, ref ArticleRef) error {
	unset := bson.M{"assignedTo": "", "assignedName": ""}
	return s.applyStatus(ctx, ref, models.StatusAFaire, bson.M{}, unset)
}

// applyStatus là đường ghi chung: upsert theo (orderId, lineItemId),
// validate trạng thái, rồi đồng bộ snapshot nhúng
func (s *ProductionStatusService) applyStatus(ctx context.Context, ref ArticleRef, status string, extraSet bson.M, unset bson.M) error {
	if !models.IsValidStatus(status) {
		return common.NewError(
			common.ErrCodeValidationInput,
			fmt.Sprintf("trạng thái '%s' không hợp lệ", status),
			common.StatusBadRequest,
			nil,
		)
	}

	now := time.Now().UnixMilli()
	set := bson.M{
		"status":    status,
		"updatedAt": now,
	}
	for k, v := range extraSet {
		set[k] = v
	}

	// Cùng một field không được xuất hiện trong cả $set và $setOnInsert
	setOnInsert := bson.M{
		"orderId":        ref.OrderId,
		"lineItemId":     ref.LineItemId,
		"productionType": models.TypeCouture,
		"urgent":         false,
		"createdAt":      now,
	}
	for k := range set {
		delete(setOnInsert, k)
	}

	update := bson.M{
		"$set":         set,
		"$setOnInsert": setOnInsert,
	}
	if len(unset) > 0 {
		update["$unset"] = unset
	}

	filter := bson.M{"orderId": ref.OrderId, "lineItemId": ref.LineItemId}
	if _, err := s.Collection().UpdateOne(ctx, filter, update, mongoopts.Update().SetUpsert(true)); err != nil {
		return common.ConvertMongoError(err)
	}

	s.mirrorSnapshot(ctx, ref.OrderId, ref.LineItemId)
	return nil
}

// BulkUpdateStatus cập nhật trạng thái của nhiều article trong MỘT lệnh
// BulkWrite (unordered, upsert). Trả về tổng số document đã sửa hoặc tạo mới.
func (s *ProductionStatusService) BulkUpdateStatus(ctx context.Context, updates []dto.BulkStatusUpdateItem) (int64, error) {
	if len(updates) == 0 {
		return 0, nil
	}

	now := time.Now().UnixMilli()
	writes := make([]mongo.WriteModel, 0, len(updates))
	for _, u := range updates {
		if !models.IsValidStatus(u.Status) {
			return 0, common.NewError(
				common.ErrCodeValidationInput,
				fmt.Sprintf("trạng thái '%s' không hợp lệ cho article %d-%d", u.Status, u.OrderId, u.LineItemId),
				common.StatusBadRequest,
				nil,
			)
		}

		writes = append(writes, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"orderId": u.OrderId, "lineItemId": u.LineItemId}).
			SetUpdate(bson.M{
				"$set": bson.M{"status": u.Status, "updatedAt": now},
				"$setOnInsert": bson.M{
					"orderId":        u.OrderId,
					"lineItemId":     u.LineItemId,
					"productionType": models.TypeCouture,
					"urgent":         false,
					"createdAt":      now,
				},
			}).
			SetUpsert(true))
	}

	result, err := s.Collection().BulkWrite(ctx, writes, mongoopts.BulkWrite().SetOrdered(false))
	if err != nil {
		return 0, common.ConvertMongoError(err)
	}

	// Đồng bộ bản sao nhúng — best-effort, lỗi chỉ ghi log
	for _, u := range updates {
		s.mirrorSnapshot(ctx, u.OrderId, u.LineItemId)
	}

	return result.ModifiedCount + result.UpsertedCount, nil
}

// FindByRef trả về document trạng thái của một article
func (s *ProductionStatusService) FindByRef(ctx context.Context, ref ArticleRef) (models.ProductionStatus, error) {
	return s.FindOne(ctx, bson.M{"orderId": ref.OrderId, "lineItemId": ref.LineItemId}, nil)
}

// GetProductionStats tính thống kê tổng hợp cho dashboard: số đơn phân biệt,
// tổng số dòng, phân bố theo trạng thái và theo loại sản xuất.
// Store rỗng trả về struct với các giá trị 0, không lỗi.
func (s *ProductionStatusService) GetProductionStats(ctx context.Context) (*dto.ProductionStatsOutput, error) {
	stats := &dto.ProductionStatsOutput{
		ByStatus:         map[string]int64{},
		ByProductionType: map[string]int64{},
		Timestamp:        time.Now().UnixMilli(),
	}

	orderIds, err := s.orderItemService.Distinct(ctx, "orderId", bson.M{})
	if err != nil {
		return nil, err
	}
	stats.TotalOrders = int64(len(orderIds))

	stats.TotalItems, err = s.orderItemService.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	stats.TotalStatusRecords, err = s.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	stats.ByStatus, err = s.groupCount(ctx, "$status")
	if err != nil {
		return nil, err
	}

	stats.ByProductionType, err = s.groupCount(ctx, "$productionType")
	if err != nil {
		return nil, err
	}

	return stats, nil
}

// groupCount chạy một aggregation $group đếm theo field cho trước
func (s *ProductionStatusService) groupCount(ctx context.Context, field string) (map[string]int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{"_id": field, "count": bson.M{"$sum": 1}}}},
	}

	cursor, err := s.Collection().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		ID    string `bson:"_id"`
		Count int64  `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, common.ConvertMongoError(err)
	}

	result := make(map[string]int64, len(rows))
	for _, row := range rows {
		result[row.ID] = row.Count
	}
	return result, nil
}

// mirrorSnapshot chép trạng thái hiện hành vào bản sao nhúng trong
// order_items. Lỗi ở đây không chặn luồng chính — snapshot chỉ phục vụ
// hiển thị danh sách, production_status vẫn là nguồn sự thật.
func (s *ProductionStatusService) mirrorSnapshot(ctx context.Context, orderId, lineItemId int64) {
	status, err := s.FindOne(ctx, bson.M{"orderId": orderId, "lineItemId": lineItemId}, nil)
	if err != nil {
		logger.GetAppLogger().WithFields(logrus.Fields{
			"orderId":    orderId,
			"lineItemId": lineItemId,
		}).WithError(err).Warn("Không đọc được production_status để đồng bộ snapshot")
		return
	}

	snapshot := models.StatusSnapshot{
		Status:         status.Status,
		ProductionType: status.ProductionType,
		Urgent:         status.Urgent,
		Notes:          status.Notes,
		UpdatedAt:      status.UpdatedAt,
	}
	if err := s.orderItemService.UpdateStatusSnapshot(ctx, orderId, lineItemId, snapshot); err != nil {
		logger.GetAppLogger().WithFields(logrus.Fields{
			"orderId":    orderId,
			"lineItemId": lineItemId,
		}).WithError(err).Warn("Không cập nhật được snapshot trạng thái trong order_items")
	}
}
