package dto

// ImportOrderInput là input của POST /import/order — import một đơn hàng
// theo ID, bỏ qua high-water mark của engine đồng bộ
type ImportOrderInput struct {
	OrderId int64 `json:"orderId" validate:"required,min=1"`
}

// ImportOrderOutput là kết quả import một đơn hàng đơn lẻ
type ImportOrderOutput struct {
	OrderId  int64  `json:"orderId"`
	Imported bool   `json:"imported"` // false khi đơn đã tồn tại từ trước
	Items    int    `json:"items"`    // Số dòng đã insert
	Message  string `json:"message"`
}
