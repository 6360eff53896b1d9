package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// ArticleAssignment gán một article cho một tricoteuse.
// articleId có dạng "{orderId}-{lineItemId}" (canonical); các bản ghi cũ có thể
// dùng "_" làm dấu phân cách hoặc chỉ chứa orderId — parser trong service
// chấp nhận cả ba dạng.
// Mỗi thay đổi trạng thái trên assignment phải được propagate sang
// ProductionStatus tương ứng.
type ArticleAssignment struct {
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	ArticleId      string             `json:"articleId" bson:"articleId" index:"unique"`            // "{orderId}-{lineItemId}"
	TricoteuseId   primitive.ObjectID `json:"tricoteuseId" bson:"tricoteuseId" index:"single:1"`    // Tricoteuse được gán
	TricoteuseName string             `json:"tricoteuseName,omitempty" bson:"tricoteuseName,omitempty"` // Tên hiển thị (denormalized)
	Status         string             `json:"status" bson:"status" index:"single:1" default:"a_faire"`  // Mirror của ProductionStatus.status
	Urgent         bool               `json:"urgent" bson:"urgent"`
	AssignedAt     int64              `json:"assignedAt" bson:"assignedAt"` // Thời điểm gán (Unix milliseconds)
	CreatedAt      int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt      int64              `json:"updatedAt" bson:"updatedAt"`
}
