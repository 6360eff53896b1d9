// Package ateliersvc - Test phân loại sản phẩm couture/maille theo từ khóa.
package ateliersvc

import (
	"testing"

	"atelier_commerce/internal/api/atelier/models"
)

func TestClassify_SanPhamDanLen(t *testing.T) {
	c := NewKeywordClassifier()

	cases := []string{
		"Pull tricoté main",
		"Bonnet en laine mérinos",
		"Knitted scarf",
		"Echarpe maille fine",
		"GILET TRICOT",
		"Hand knit sweater",
		"Pull 100% wool",
	}
	for _, name := range cases {
		if got := c.Classify(name); got != models.TypeMaille {
			t.Errorf("Classify(%q) = %q, muốn %q", name, got, models.TypeMaille)
		}
	}
}

func TestClassify_SanPhamMayVa(t *testing.T) {
	c := NewKeywordClassifier()

	cases := []string{
		"Chemise en lin",
		"Robe d'été fleurie",
		"Pantalon coton bio",
		"Tablier de cuisine",
	}
	for _, name := range cases {
		if got := c.Classify(name); got != models.TypeCouture {
			t.Errorf("Classify(%q) = %q, muốn %q", name, got, models.TypeCouture)
		}
	}
}

func TestClassify_TenRong(t *testing.T) {
	c := NewKeywordClassifier()
	if got := c.Classify(""); got != models.TypeCouture {
		t.Errorf("Classify(\"\") = %q, muốn %q (mặc định)", got, models.TypeCouture)
	}
}

func TestClassify_Deterministic(t *testing.T) {
	c := NewKeywordClassifier()
	name := "Pull tricoté main"
	first := c.Classify(name)
	for i := 0; i < 10; i++ {
		if got := c.Classify(name); got != first {
			t.Fatalf("Classify không deterministic: lần đầu %q, lần sau %q", first, got)
		}
	}
}

func TestClassify_KhongPhanBietHoaThuongVaDau(t *testing.T) {
	c := NewKeywordClassifier()
	if got := c.Classify("PULL TRICOTÉ"); got != models.TypeMaille {
		t.Errorf("Classify phải bỏ qua hoa thường và dấu, got %q", got)
	}
	if got := c.Classify("pull tricote"); got != models.TypeMaille {
		t.Errorf("Classify với chữ thường không dấu phải ra maille, got %q", got)
	}
}
