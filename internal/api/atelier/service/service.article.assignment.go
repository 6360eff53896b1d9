package ateliersvc

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"atelier_commerce/internal/api/atelier/dto"
	"atelier_commerce/internal/api/atelier/models"
	basesvc "atelier_commerce/internal/api/base/service"
	"atelier_commerce/internal/common"
	"atelier_commerce/internal/global"
	"atelier_commerce/internal/logger"
	"atelier_commerce/internal/utility"
)

// ArticleAssignmentService xử lý collection article_assignments — phân công
// article cho tricoteuse. Mọi thay đổi phân công đều được truyền sang
// production_status để hai collection không lệch nhau.
type ArticleAssignmentService struct {
	*basesvc.BaseServiceMongoImpl[models.ArticleAssignment]
	statusService     *ProductionStatusService
	tricoteuseService *basesvc.BaseServiceMongoImpl[models.Tricoteuse]
}

// NewArticleAssignmentService tạo ArticleAssignmentService mới
func NewArticleAssignmentService() (*ArticleAssignmentService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.ArticleAssignments)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.ArticleAssignments, common.ErrNotFound)
	}

	tricoteuseColl, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Tricoteuses)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Tricoteuses, common.ErrNotFound)
	}

	statusService, err := NewProductionStatusService()
	if err != nil {
		return nil, err
	}

	return &ArticleAssignmentService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.ArticleAssignment](coll),
		statusService:        statusService,
		tricoteuseService:    basesvc.NewBaseServiceMongo[models.Tricoteuse](tricoteuseColl),
	}, nil
}

// CreateAssignment phân công một article cho một tricoteuse (upsert theo
// articleId — mỗi article chỉ có một phân công). Trạng thái mặc định
// "a_faire"; trạng thái của production_status được cập nhật theo.
func (s *ArticleAssignmentService) CreateAssignment(ctx context.Context, input *dto.AssignmentCreateInput) (models.ArticleAssignment, error) {
	var zero models.ArticleAssignment

	if input == nil || input.ArticleId == "" || input.TricoteuseId == "" {
		return zero, common.NewError(
			common.ErrCodeValidationInput,
			"articleId và tricoteuseId là bắt buộc",
			common.StatusBadRequest,
			nil,
		)
	}

	ref, err := ParseArticleRef(input.ArticleId)
	if err != nil {
		return zero, err
	}

	tricoteuseId := utility.String2ObjectID(input.TricoteuseId)
	if tricoteuseId.IsZero() {
		return zero, common.NewError(
			common.ErrCodeValidationInput,
			fmt.Sprintf("tricoteuseId '%s' không hợp lệ", input.TricoteuseId),
			common.StatusBadRequest,
			nil,
		)
	}

	status := input.Status
	if status == "" {
		status = models.StatusAFaire
	}
	if !models.IsValidStatus(status) {
		return zero, common.NewError(
			common.ErrCodeValidationInput,
			fmt.Sprintf("trạng thái '%s' không hợp lệ", status),
			common.StatusBadRequest,
			nil,
		)
	}

	tricoteuseName := input.TricoteuseName
	if tricoteuseName == "" {
		if tricoteuse, err := s.tricoteuseService.FindOneById(ctx, tricoteuseId); err == nil {
			tricoteuseName = tricoteuse.FirstName
		}
	}

	now := time.Now().UnixMilli()
	assignment := models.ArticleAssignment{
		ArticleId:      ref.String(),
		TricoteuseId:   tricoteuseId,
		TricoteuseName: tricoteuseName,
		Status:         status,
		Urgent:         input.Urgent,
		AssignedAt:     now,
	}

	saved, err := s.Upsert(ctx, bson.M{"articleId": ref.String()}, assignment)
	if err != nil {
		return zero, err
	}

	if err := s.statusService.ApplyAssignment(ctx, ref, tricoteuseId, tricoteuseName, status, input.Urgent); err != nil {
		return zero, err
	}

	return saved, nil
}

// UpdateAssignment cập nhật một phân công theo articleId. Trả về
// ErrNotFound khi phân công không tồn tại. Thay đổi trạng thái được
// truyền sang production_status.
func (s *ArticleAssignmentService) UpdateAssignment(ctx context.Context, articleId string, input *dto.AssignmentUpdateInput) (models.ArticleAssignment, error) {
	var zero models.ArticleAssignment

	ref, err := ParseArticleRef(articleId)
	if err != nil {
		return zero, err
	}

	current, err := s.FindOne(ctx, bson.M{"articleId": ref.String()}, nil)
	if err != nil {
		return zero, err
	}

	set := bson.M{}
	if input.TricoteuseId != "" {
		tricoteuseId := utility.String2ObjectID(input.TricoteuseId)
		if tricoteuseId.IsZero() {
			return zero, common.NewError(
				common.ErrCodeValidationInput,
				fmt.Sprintf("tricoteuseId '%s' không hợp lệ", input.TricoteuseId),
				common.StatusBadRequest,
				nil,
			)
		}
		set["tricoteuseId"] = tricoteuseId
		current.TricoteuseId = tricoteuseId
	}
	if input.TricoteuseName != "" {
		set["tricoteuseName"] = input.TricoteuseName
		current.TricoteuseName = input.TricoteuseName
	}
	if input.Status != "" {
		if !models.IsValidStatus(input.Status) {
			return zero, common.NewError(
				common.ErrCodeValidationInput,
				fmt.Sprintf("trạng thái '%s' không hợp lệ", input.Status),
				common.StatusBadRequest,
				nil,
			)
		}
		set["status"] = input.Status
		current.Status = input.Status
	}
	urgentChanged := input.Urgent != nil && *input.Urgent != current.Urgent
	if urgentChanged {
		set["urgent"] = *input.Urgent
		current.Urgent = *input.Urgent
	}

	if len(set) == 0 {
		return current, nil
	}

	updated, err := s.UpdateOne(ctx, bson.M{"articleId": ref.String()}, &basesvc.UpdateData{Set: set}, nil)
	if err != nil {
		return zero, err
	}

	if input.Status != "" || urgentChanged {
		if err := s.statusService.ApplyAssignment(ctx, ref, current.TricoteuseId, current.TricoteuseName, current.Status, current.Urgent); err != nil {
			return zero, err
		}
	}

	return updated, nil
}

// DeleteAssignmentById xóa một phân công theo _id và đặt lại trạng thái
// sản xuất của article về "a_faire"
func (s *ArticleAssignmentService) DeleteAssignmentById(ctx context.Context, id primitive.ObjectID) error {
	assignment, err := s.FindOneById(ctx, id)
	if err != nil {
		return err
	}
	return s.deleteAndReset(ctx, assignment)
}

// DeleteAssignmentByArticleId xóa phân công của một article và đặt lại
// trạng thái sản xuất về "a_faire"
func (s *ArticleAssignmentService) DeleteAssignmentByArticleId(ctx context.Context, articleId string) error {
	ref, err := ParseArticleRef(articleId)
	if err != nil {
		return err
	}
	assignment, err := s.FindOne(ctx, bson.M{"articleId": ref.String()}, nil)
	if err != nil {
		return err
	}
	return s.deleteAndReset(ctx, assignment)
}

func (s *ArticleAssignmentService) deleteAndReset(ctx context.Context, assignment models.ArticleAssignment) error {
	if err := s.DeleteOne(ctx, bson.M{"_id": assignment.ID}); err != nil {
		return err
	}

	ref, err := ParseArticleRef(assignment.ArticleId)
	if err != nil {
		// articleId hỏng trong DB: assignment đã xóa, chỉ ghi log
		logger.GetAppLogger().WithField("articleId", assignment.ArticleId).
			WithError(err).Warn("Không parse được articleId khi đặt lại trạng thái")
		return nil
	}

	return s.statusService.ClearAssignment(ctx, ref)
}

// SyncAssignmentsStatus duyệt toàn bộ phân công và ghi lại trạng thái của
// chúng vào production_status (assignment là nguồn sự thật của chiều này).
// Idempotent: chạy lại trên dữ liệu đã nhất quán không thay đổi gì thêm.
func (s *ArticleAssignmentService) SyncAssignmentsStatus(ctx context.Context) (*dto.SyncAssignmentsOutput, error) {
	assignments, err := s.Find(ctx, bson.M{}, nil)
	if err != nil {
		return nil, err
	}

	result := &dto.SyncAssignmentsOutput{Total: len(assignments)}
	for _, assignment := range assignments {
		ref, err := ParseArticleRef(assignment.ArticleId)
		if err != nil {
			logger.GetAppLogger().WithField("articleId", assignment.ArticleId).
				WithError(err).Warn("Bỏ qua assignment có articleId không hợp lệ")
			continue
		}

		current, err := s.statusService.FindByRef(ctx, ref)
		if err == nil && current.Status == assignment.Status &&
			current.Urgent == assignment.Urgent &&
			current.AssignedTo == assignment.TricoteuseId {
			continue // đã nhất quán
		}
		if err != nil && err != common.ErrNotFound {
			return nil, err
		}

		if err := s.statusService.ApplyAssignment(ctx, ref, assignment.TricoteuseId, assignment.TricoteuseName, assignment.Status, assignment.Urgent); err != nil {
			return nil, err
		}
		result.Synced++
	}

	logger.GetAppLogger().WithFields(logrus.Fields{
		"synced": result.Synced,
		"total":  result.Total,
	}).Info("Đồng bộ trạng thái assignment hoàn tất")

	return result, nil
}
