// Package dto chứa các input struct cho layer handler (parse + validate request body).
package dto

// OrderItemCreateInput là input để tạo thủ công một dòng đơn hàng
// (đường chính để tạo order item là engine đồng bộ, route này dành cho
// đơn tạo tay không đi qua WooCommerce)
type OrderItemCreateInput struct {
	OrderId     int64   `json:"orderId" validate:"required"`    // ID đơn hàng
	OrderNumber string  `json:"orderNumber"`                    // Số đơn hiển thị
	LineItemId  int64   `json:"lineItemId" validate:"required"` // ID line item
	OrderDate   string  `json:"orderDate"`                      // ISO 8601
	Status      string  `json:"status"`                         // Trạng thái fulfillment

	CustomerName    string `json:"customerName"`
	CustomerEmail   string `json:"customerEmail" validate:"omitempty,email"`
	CustomerPhone   string `json:"customerPhone"`
	CustomerAddress string `json:"customerAddress"`
	CustomerNote    string `json:"customerNote"`

	ShippingMethod  string `json:"shippingMethod"`
	ShippingCarrier string `json:"shippingCarrier"`
	Total           string `json:"total"`

	ProductId   int64   `json:"productId"`
	ProductName string  `json:"productName" validate:"required"` // Tên sản phẩm (dùng để phân loại maille/couture)
	Quantity    int     `json:"quantity" validate:"omitempty,min=1"`
	Price       float64 `json:"price"`
	ImageUrl    string  `json:"imageUrl"`
	Permalink   string  `json:"permalink"`
	VariationId int64   `json:"variationId"`
}

// OrderItemUpdateInput là input để cập nhật một dòng đơn hàng.
// Chỉ các field non-zero được ghi xuống DB (partial update).
type OrderItemUpdateInput struct {
	OrderNumber string `json:"orderNumber,omitempty"`
	Status      string `json:"status,omitempty"`

	CustomerName    string `json:"customerName,omitempty"`
	CustomerEmail   string `json:"customerEmail,omitempty" validate:"omitempty,email"`
	CustomerPhone   string `json:"customerPhone,omitempty"`
	CustomerAddress string `json:"customerAddress,omitempty"`
	CustomerNote    string `json:"customerNote,omitempty"`

	ShippingMethod  string `json:"shippingMethod,omitempty"`
	ShippingCarrier string `json:"shippingCarrier,omitempty"`
	Total           string `json:"total,omitempty"`

	ProductName string  `json:"productName,omitempty"`
	Quantity    int     `json:"quantity,omitempty" validate:"omitempty,min=1"`
	Price       float64 `json:"price,omitempty"`
	ImageUrl    string  `json:"imageUrl,omitempty"`
	Permalink   string  `json:"permalink,omitempty"`
}
