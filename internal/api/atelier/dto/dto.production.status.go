package dto

// ProductionStatusCreateInput là input upsert trạng thái sản xuất một article
type ProductionStatusCreateInput struct {
	OrderId        int64  `json:"orderId" validate:"required"`                            // ID đơn hàng
	LineItemId     int64  `json:"lineItemId" validate:"required"`                         // ID line item
	Status         string `json:"status" validate:"omitempty,production_status"`          // Mặc định a_faire
	ProductionType string `json:"productionType" validate:"omitempty,production_type"`    // couture hoặc maille
	Urgent         bool   `json:"urgent"`
	Notes          string `json:"notes"`
}

// ProductionStatusUpdateInput là input cập nhật trạng thái sản xuất.
// Chỉ các field non-zero được ghi xuống DB (partial update).
type ProductionStatusUpdateInput struct {
	Status         string `json:"status,omitempty" validate:"omitempty,production_status"`
	ProductionType string `json:"productionType,omitempty" validate:"omitempty,production_type"`
	Urgent         bool   `json:"urgent,omitempty"`
	Notes          string `json:"notes,omitempty"`
}

// BulkStatusUpdateItem là một phần tử trong request bulk-update
type BulkStatusUpdateItem struct {
	OrderId    int64  `json:"orderId" validate:"required"`
	LineItemId int64  `json:"lineItemId" validate:"required"`
	Status     string `json:"status" validate:"required,production_status"`
}

// BulkStatusUpdateInput là input của POST /production-status/bulk-update
type BulkStatusUpdateInput struct {
	Updates []BulkStatusUpdateItem `json:"updates" validate:"required,min=1,dive"`
}
