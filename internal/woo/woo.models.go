// Package woo chứa client và các kiểu dữ liệu của REST API WooCommerce (wc/v3).
package woo

// MetaData là một cặp key/value trong meta_data của WooCommerce.
// Value có thể là string, number hoặc object tùy plugin nên để interface{}.
type MetaData struct {
	ID    int64       `json:"id"`
	Key   string      `json:"key"`
	Value interface{} `json:"value"`
}

// Address là địa chỉ billing/shipping của một đơn hàng
type Address struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Company   string `json:"company"`
	Address1  string `json:"address_1"`
	Address2  string `json:"address_2"`
	City      string `json:"city"`
	State     string `json:"state"`
	Postcode  string `json:"postcode"`
	Country   string `json:"country"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// ShippingLine là một dòng vận chuyển của đơn hàng
type ShippingLine struct {
	ID          int64      `json:"id"`
	MethodID    string     `json:"method_id"`
	MethodTitle string     `json:"method_title"`
	Total       string     `json:"total"`
	MetaData    []MetaData `json:"meta_data"`
}

// LineItemImage là ảnh sản phẩm đính kèm line item
type LineItemImage struct {
	ID  interface{} `json:"id"` // WooCommerce trả về khi là số, khi là string
	Src string      `json:"src"`
}

// LineItem là một sản phẩm trong đơn hàng
type LineItem struct {
	ID          int64         `json:"id"`
	Name        string        `json:"name"`
	ProductID   int64         `json:"product_id"`
	VariationID int64         `json:"variation_id"`
	Quantity    int           `json:"quantity"`
	SKU         string        `json:"sku"`
	Price       float64       `json:"price"`
	Subtotal    string        `json:"subtotal"`
	Total       string        `json:"total"`
	Image       LineItemImage `json:"image"`
	Permalink   string        `json:"permalink"`
	MetaData    []MetaData    `json:"meta_data"`
}

// Order là một đơn hàng WooCommerce (chỉ các field hệ thống sử dụng)
type Order struct {
	ID            int64          `json:"id"`
	Number        string         `json:"number"`
	Status        string         `json:"status"`
	Currency      string         `json:"currency"`
	DateCreated   string         `json:"date_created"`
	DateModified  string         `json:"date_modified"`
	Total         string         `json:"total"`
	ShippingTotal string         `json:"shipping_total"`
	CustomerNote  string         `json:"customer_note"`
	PaymentMethod string         `json:"payment_method"`
	Billing       Address        `json:"billing"`
	Shipping      Address        `json:"shipping"`
	ShippingLines []ShippingLine `json:"shipping_lines"`
	LineItems     []LineItem     `json:"line_items"`
}
