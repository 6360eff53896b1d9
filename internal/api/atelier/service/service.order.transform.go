package ateliersvc

import (
	"fmt"
	"strings"

	"atelier_commerce/internal/api/atelier/models"
	"atelier_commerce/internal/woo"
)

// carrierMetaKeys là các key meta_data của shipping line có thể chứa tên
// đơn vị vận chuyển thật khi method_id là placeholder "flat_rate"
var carrierMetaKeys = []string{"carrier", "transporteur", "shipping_carrier"}

// TransformOrder chuyển một đơn hàng WooCommerce thành các dòng OrderItem
// denormalized (một dòng mỗi line item, field cấp đơn hàng lặp lại).
// Hàm thuần, không I/O, không panic khi thiếu field tùy chọn — giá trị
// vắng mặt trở thành zero value.
func TransformOrder(order *woo.Order, classifier Classifier) []models.OrderItem {
	if order == nil {
		return []models.OrderItem{}
	}

	// Field cấp đơn hàng, trích xuất một lần
	customerName := strings.TrimSpace(order.Billing.FirstName + " " + order.Billing.LastName)
	customerAddress := formatAddress(order.Shipping, order.Billing)
	shippingMethod, shippingCarrier := extractShipping(order.ShippingLines)

	items := make([]models.OrderItem, 0, len(order.LineItems))
	for _, line := range order.LineItems {
		item := models.OrderItem{
			OrderId:     order.ID,
			OrderNumber: order.Number,
			LineItemId:  line.ID,
			OrderDate:   order.DateCreated,
			Status:      order.Status,

			CustomerName:    customerName,
			CustomerEmail:   order.Billing.Email,
			CustomerPhone:   order.Billing.Phone,
			CustomerAddress: customerAddress,
			CustomerNote:    order.CustomerNote,

			ShippingMethod:  shippingMethod,
			ShippingCarrier: shippingCarrier,
			Total:           order.Total,

			ProductId:   line.ProductID,
			ProductName: line.Name,
			Quantity:    line.Quantity,
			Price:       line.Price,
			MetaData:    transformMeta(line.MetaData),
			ImageUrl:    line.Image.Src,
			Permalink:   line.Permalink,
			VariationId: line.VariationID,
		}

		if classifier != nil {
			item.ProductionStatus = models.StatusSnapshot{
				Status:         models.StatusAFaire,
				ProductionType: classifier.Classify(line.Name),
			}
		}

		items = append(items, item)
	}

	return items
}

// extractShipping lấy method và carrier từ dòng vận chuyển đầu tiên.
// Khi method_id là placeholder "flat_rate", tên carrier thật nằm trong
// meta_data của shipping line; nếu không tìm thấy thì giữ nguyên method title.
func extractShipping(lines []woo.ShippingLine) (method string, carrier string) {
	if len(lines) == 0 {
		return "", ""
	}

	first := lines[0]
	method = first.MethodID
	carrier = first.MethodTitle

	if first.MethodID == "flat_rate" {
		if real := carrierFromMeta(first.MetaData); real != "" {
			carrier = real
		}
	}

	return method, carrier
}

// carrierFromMeta tìm tên carrier trong meta_data của shipping line
func carrierFromMeta(meta []woo.MetaData) string {
	for _, m := range meta {
		key := strings.ToLower(m.Key)
		for _, candidate := range carrierMetaKeys {
			if key == candidate {
				if s, ok := m.Value.(string); ok && s != "" {
					return s
				}
			}
		}
	}
	return ""
}

// formatAddress ghép địa chỉ giao hàng thành một dòng; fallback sang billing
// khi shipping trống (đơn không có địa chỉ giao riêng)
func formatAddress(shipping, billing woo.Address) string {
	addr := shipping
	if addr.Address1 == "" && addr.City == "" {
		addr = billing
	}

	parts := []string{}
	for _, p := range []string{addr.Address1, addr.Address2, addr.Postcode, addr.City, addr.Country} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// transformMeta chuyển meta_data của line item thành danh sách MetaPair,
// giữ nguyên thứ tự và bỏ các key nội bộ của WooCommerce (bắt đầu bằng "_")
func transformMeta(meta []woo.MetaData) []models.MetaPair {
	if len(meta) == 0 {
		return nil
	}

	pairs := make([]models.MetaPair, 0, len(meta))
	for _, m := range meta {
		if strings.HasPrefix(m.Key, "_") {
			continue
		}
		pairs = append(pairs, models.MetaPair{
			Key:   m.Key,
			Value: metaValueString(m.Value),
		})
	}
	return pairs
}

// metaValueString chuyển value meta (string/number/object tùy plugin) về chuỗi hiển thị
func metaValueString(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	default:
		return fmt.Sprintf("%v", val)
	}
}
