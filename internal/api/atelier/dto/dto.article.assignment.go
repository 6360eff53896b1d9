package dto

// AssignmentCreateInput là input gán một article cho tricoteuse
type AssignmentCreateInput struct {
	ArticleId      string `json:"articleId" validate:"required"`                  // "{orderId}-{lineItemId}" (hoặc dạng legacy)
	TricoteuseId   string `json:"tricoteuseId" validate:"required,len=24,hexadecimal"` // ObjectID hex của tricoteuse
	TricoteuseName string `json:"tricoteuseName"`
	Status         string `json:"status" validate:"omitempty,production_status"` // Mặc định a_faire
	Urgent         bool   `json:"urgent"`
}

// AssignmentUpdateInput là input cập nhật một assignment.
// Chỉ các field có giá trị được ghi xuống DB (partial update); thay đổi
// status/urgent được propagate sang ProductionStatus tương ứng.
// Urgent là con trỏ để phân biệt "không gửi" với "gửi false".
type AssignmentUpdateInput struct {
	TricoteuseId   string `json:"tricoteuseId,omitempty" validate:"omitempty,len=24,hexadecimal"`
	TricoteuseName string `json:"tricoteuseName,omitempty"`
	Status         string `json:"status,omitempty" validate:"omitempty,production_status"`
	Urgent         *bool  `json:"urgent,omitempty"`
}
