// Package ateliersvc - Test transformer đơn hàng WooCommerce -> OrderItem.
package ateliersvc

import (
	"testing"

	"atelier_commerce/internal/api/atelier/models"
	"atelier_commerce/internal/woo"
)

func sampleOrder() *woo.Order {
	return &woo.Order{
		ID:           2045,
		Number:       "2045",
		Status:       "processing",
		DateCreated:  "2026-08-20T10:15:00",
		Total:        "89.50",
		CustomerNote: "Livraison avant samedi svp",
		Billing: woo.Address{
			FirstName: "Marie",
			LastName:  "Dupont",
			Address1:  "12 rue des Lilas",
			Postcode:  "75011",
			City:      "Paris",
			Country:   "FR",
			Email:     "marie@example.com",
			Phone:     "0601020304",
		},
		Shipping: woo.Address{
			FirstName: "Marie",
			LastName:  "Dupont",
			Address1:  "5 avenue Mozart",
			Postcode:  "75016",
			City:      "Paris",
			Country:   "FR",
		},
		ShippingLines: []woo.ShippingLine{
			{ID: 1, MethodID: "colissimo", MethodTitle: "Colissimo Domicile"},
		},
		LineItems: []woo.LineItem{
			{
				ID:        11,
				Name:      "Pull tricoté main",
				ProductID: 501,
				Quantity:  1,
				Price:     59.5,
				Image:     woo.LineItemImage{Src: "https://example.com/pull.jpg"},
				Permalink: "https://example.com/produit/pull-tricote",
				MetaData: []woo.MetaData{
					{Key: "taille", Value: "M"},
					{Key: "_internal_cache", Value: "xyz"},
				},
			},
			{
				ID:        12,
				Name:      "Chemise en lin",
				ProductID: 502,
				Quantity:  2,
				Price:     15.0,
			},
		},
	}
}

func TestTransformOrder_MotDongMoiLineItem(t *testing.T) {
	items := TransformOrder(sampleOrder(), NewKeywordClassifier())
	if len(items) != 2 {
		t.Fatalf("TransformOrder trả về %d dòng, muốn 2", len(items))
	}

	first := items[0]
	if first.OrderId != 2045 || first.LineItemId != 11 {
		t.Errorf("dòng đầu (orderId, lineItemId) = (%d, %d), muốn (2045, 11)", first.OrderId, first.LineItemId)
	}
	if first.CustomerName != "Marie Dupont" {
		t.Errorf("CustomerName = %q, muốn \"Marie Dupont\"", first.CustomerName)
	}
	if first.ProductName != "Pull tricoté main" {
		t.Errorf("ProductName = %q", first.ProductName)
	}
	if first.ImageUrl != "https://example.com/pull.jpg" {
		t.Errorf("ImageUrl = %q", first.ImageUrl)
	}
	if first.Permalink != "https://example.com/produit/pull-tricote" {
		t.Errorf("Permalink = %q, muốn link sản phẩm từ line item", first.Permalink)
	}
	if second := items[1]; second.Permalink != "" {
		t.Errorf("Permalink dòng thứ hai = %q, muốn rỗng khi line item không có permalink", second.Permalink)
	}

	// Field cấp đơn hàng phải lặp lại trên mọi dòng
	second := items[1]
	if second.OrderNumber != first.OrderNumber || second.CustomerName != first.CustomerName {
		t.Error("field cấp đơn hàng không được lặp lại trên dòng thứ hai")
	}
}

func TestTransformOrder_PhanLoaiTheoClassifier(t *testing.T) {
	items := TransformOrder(sampleOrder(), NewKeywordClassifier())

	if items[0].ProductionStatus.ProductionType != models.TypeMaille {
		t.Errorf("\"Pull tricoté main\" phân loại %q, muốn maille", items[0].ProductionStatus.ProductionType)
	}
	if items[1].ProductionStatus.ProductionType != models.TypeCouture {
		t.Errorf("\"Chemise en lin\" phân loại %q, muốn couture", items[1].ProductionStatus.ProductionType)
	}
	for i, item := range items {
		if item.ProductionStatus.Status != models.StatusAFaire {
			t.Errorf("dòng %d: trạng thái khởi tạo %q, muốn a_faire", i, item.ProductionStatus.Status)
		}
	}
}

func TestTransformOrder_DiaChiGiaoHang(t *testing.T) {
	items := TransformOrder(sampleOrder(), nil)
	want := "5 avenue Mozart, 75016, Paris, FR"
	if items[0].CustomerAddress != want {
		t.Errorf("CustomerAddress = %q, muốn %q", items[0].CustomerAddress, want)
	}
}

func TestTransformOrder_FallbackDiaChiBilling(t *testing.T) {
	order := sampleOrder()
	order.Shipping = woo.Address{}
	items := TransformOrder(order, nil)
	want := "12 rue des Lilas, 75011, Paris, FR"
	if items[0].CustomerAddress != want {
		t.Errorf("CustomerAddress khi shipping trống = %q, muốn billing %q", items[0].CustomerAddress, want)
	}
}

func TestTransformOrder_FlatRateThayBangCarrierMeta(t *testing.T) {
	order := sampleOrder()
	order.ShippingLines = []woo.ShippingLine{
		{
			ID:          1,
			MethodID:    "flat_rate",
			MethodTitle: "Tarif forfaitaire",
			MetaData: []woo.MetaData{
				{Key: "carrier", Value: "Mondial Relay"},
			},
		},
	}

	items := TransformOrder(order, nil)
	if items[0].ShippingCarrier != "Mondial Relay" {
		t.Errorf("ShippingCarrier = %q, muốn \"Mondial Relay\" (từ meta của flat_rate)", items[0].ShippingCarrier)
	}
	if items[0].ShippingMethod != "flat_rate" {
		t.Errorf("ShippingMethod = %q, muốn giữ nguyên \"flat_rate\"", items[0].ShippingMethod)
	}
}

func TestTransformOrder_BoMetaKeyNoiBo(t *testing.T) {
	items := TransformOrder(sampleOrder(), nil)
	for _, pair := range items[0].MetaData {
		if pair.Key == "_internal_cache" {
			t.Error("meta key bắt đầu bằng \"_\" phải bị loại")
		}
	}
	if len(items[0].MetaData) != 1 || items[0].MetaData[0].Key != "taille" {
		t.Errorf("MetaData = %v, muốn một cặp (taille, M)", items[0].MetaData)
	}
}

func TestTransformOrder_ThieuFieldKhongPanic(t *testing.T) {
	order := &woo.Order{
		ID:        1,
		LineItems: []woo.LineItem{{ID: 1, Name: "Sans détails"}},
	}
	items := TransformOrder(order, NewKeywordClassifier())
	if len(items) != 1 {
		t.Fatalf("muốn 1 dòng, được %d", len(items))
	}
	if items[0].CustomerName != "" || items[0].CustomerAddress != "" {
		t.Error("field vắng mặt phải là zero value")
	}
}

func TestTransformOrder_NilOrder(t *testing.T) {
	items := TransformOrder(nil, nil)
	if items == nil || len(items) != 0 {
		t.Errorf("TransformOrder(nil) phải trả về slice rỗng, được %v", items)
	}
}
