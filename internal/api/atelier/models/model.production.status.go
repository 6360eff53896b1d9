// Package models chứa các model MongoDB của hệ thống theo dõi sản xuất.
package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Các giá trị hợp lệ của trạng thái sản xuất
const (
	StatusAFaire  = "a_faire"  // Chưa bắt đầu, đang chờ trong hàng đợi
	StatusEnCours = "en_cours" // Đang sản xuất
	StatusEnPause = "en_pause" // Tạm dừng
	StatusTermine = "termine"  // Hoàn thành
)

// Các giá trị hợp lệ của loại sản xuất
const (
	TypeCouture = "couture" // May
	TypeMaille  = "maille"  // Đan len
)

// ProductionStatus là trạng thái sản xuất chính thức của một article,
// định danh duy nhất bởi cặp (orderId, lineItemId).
// Document được tạo qua upsert khi ghi trạng thái lần đầu và không bao giờ
// bị xóa trực tiếp, chỉ bị ghi đè bởi các upsert sau.
type ProductionStatus struct {
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	OrderId        int64              `json:"orderId" bson:"orderId" index:"single:1;compound:order_line_unique"` // ID đơn hàng WooCommerce
	LineItemId     int64              `json:"lineItemId" bson:"lineItemId" index:"compound:order_line_unique"`    // ID line item trong đơn hàng
	Status         string             `json:"status" bson:"status" index:"single:1" default:"a_faire"`            // a_faire, en_cours, en_pause, termine
	ProductionType string             `json:"productionType" bson:"productionType" index:"single:1"`              // couture hoặc maille
	Urgent         bool               `json:"urgent" bson:"urgent"`                                               // Cờ ưu tiên
	Notes          string             `json:"notes,omitempty" bson:"notes,omitempty"`                             // Ghi chú tự do
	AssignedTo     primitive.ObjectID `json:"assignedTo,omitempty" bson:"assignedTo,omitempty"`                   // Tricoteuse được gán (denormalized)
	AssignedName   string             `json:"assignedName,omitempty" bson:"assignedName,omitempty"`               // Tên tricoteuse được gán
	CreatedAt      int64              `json:"createdAt" bson:"createdAt"`                                         // Unix timestamp milliseconds
	UpdatedAt      int64              `json:"updatedAt" bson:"updatedAt"`                                         // Unix timestamp milliseconds
}

// StatusSnapshot là bản sao trạng thái sản xuất nhúng trong OrderItem.
// Đây là mirror best-effort, có thể trễ so với document ProductionStatus chính thức.
type StatusSnapshot struct {
	Status         string `json:"status,omitempty" bson:"status,omitempty"`
	ProductionType string `json:"productionType,omitempty" bson:"productionType,omitempty"`
	Urgent         bool   `json:"urgent,omitempty" bson:"urgent,omitempty"`
	Notes          string `json:"notes,omitempty" bson:"notes,omitempty"`
	UpdatedAt      int64  `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// IsValidStatus kiểm tra một chuỗi có phải trạng thái sản xuất hợp lệ không
func IsValidStatus(s string) bool {
	switch s {
	case StatusAFaire, StatusEnCours, StatusEnPause, StatusTermine:
		return true
	}
	return false
}

// IsValidProductionType kiểm tra một chuỗi có phải loại sản xuất hợp lệ không
func IsValidProductionType(s string) bool {
	return s == TypeCouture || s == TypeMaille
}
