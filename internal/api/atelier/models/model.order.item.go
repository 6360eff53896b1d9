package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// MetaPair là một cặp key/value thuộc tính sản phẩm (ví dụ: size, màu).
// Giữ dưới dạng slice để bảo toàn thứ tự hiển thị từ nguồn.
type MetaPair struct {
	Key   string `json:"key" bson:"key"`
	Value string `json:"value" bson:"value"`
}

// OrderItem là một dòng sản phẩm của đơn hàng WooCommerce, denormalized:
// các field cấp đơn hàng (khách, vận chuyển, tổng tiền) lặp lại trên mọi dòng.
// Cặp (orderId, lineItemId) là duy nhất; document được tạo một lần bởi
// engine đồng bộ khi đơn hàng xuất hiện lần đầu.
type OrderItem struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	OrderId     int64              `json:"orderId" bson:"orderId" index:"single:1;compound:order_line_unique"` // ID đơn hàng từ WooCommerce
	OrderNumber string             `json:"orderNumber" bson:"orderNumber" index:"text"`                        // Số đơn hàng hiển thị (có thể khác orderId)
	LineItemId  int64              `json:"lineItemId" bson:"lineItemId" index:"compound:order_line_unique"`    // ID line item trong đơn hàng
	OrderDate   string             `json:"orderDate" bson:"orderDate"`                                         // date_created từ nguồn (ISO 8601)
	Status      string             `json:"status" bson:"status" index:"single:1"`                              // Trạng thái fulfillment từ nguồn (processing, completed, ...)

	// Thông tin khách hàng (chung cho cả đơn)
	CustomerName    string `json:"customerName" bson:"customerName" index:"text"`
	CustomerEmail   string `json:"customerEmail,omitempty" bson:"customerEmail,omitempty"`
	CustomerPhone   string `json:"customerPhone,omitempty" bson:"customerPhone,omitempty"`
	CustomerAddress string `json:"customerAddress,omitempty" bson:"customerAddress,omitempty"`
	CustomerNote    string `json:"customerNote,omitempty" bson:"customerNote,omitempty"`

	// Vận chuyển và tổng tiền (chung cho cả đơn)
	ShippingMethod  string `json:"shippingMethod,omitempty" bson:"shippingMethod,omitempty"`
	ShippingCarrier string `json:"shippingCarrier,omitempty" bson:"shippingCarrier,omitempty"`
	Total           string `json:"total,omitempty" bson:"total,omitempty"`

	// Thông tin sản phẩm của dòng này
	ProductId   int64      `json:"productId" bson:"productId"`
	ProductName string     `json:"productName" bson:"productName" index:"text"`
	Quantity    int        `json:"quantity" bson:"quantity"`
	Price       float64    `json:"price" bson:"price"`
	MetaData    []MetaPair `json:"metaData,omitempty" bson:"metaData,omitempty"`
	ImageUrl    string     `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
	Permalink   string     `json:"permalink,omitempty" bson:"permalink,omitempty"`
	VariationId int64      `json:"variationId,omitempty" bson:"variationId,omitempty"`

	// Bản sao trạng thái sản xuất (mirror, có thể trễ so với production_status)
	ProductionStatus StatusSnapshot `json:"productionStatus,omitempty" bson:"productionStatus,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"` // Unix timestamp milliseconds
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"` // Unix timestamp milliseconds
}
