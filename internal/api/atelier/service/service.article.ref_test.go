// Package ateliersvc - Test parse/serialize định danh article.
package ateliersvc

import "testing"

func TestParseArticleRef_CacDangHopLe(t *testing.T) {
	cases := []struct {
		input      string
		orderId    int64
		lineItemId int64
	}{
		{"100-1", 100, 1},
		{"100_1", 100, 1},
		{"100", 100, 1},
		{"2045-13", 2045, 13},
		{"2045_13", 2045, 13},
		{"  100-1  ", 100, 1},
	}

	for _, tc := range cases {
		ref, err := ParseArticleRef(tc.input)
		if err != nil {
			t.Errorf("ParseArticleRef(%q) lỗi: %v", tc.input, err)
			continue
		}
		if ref.OrderId != tc.orderId || ref.LineItemId != tc.lineItemId {
			t.Errorf("ParseArticleRef(%q) = (%d, %d), muốn (%d, %d)",
				tc.input, ref.OrderId, ref.LineItemId, tc.orderId, tc.lineItemId)
		}
	}
}

func TestParseArticleRef_CacDangKhongHopLe(t *testing.T) {
	cases := []string{
		"",
		"   ",
		"abc",
		"abc-1",
		"100-xyz",
		"-1",
		"100-0",
		"0-1",
		"100--1",
	}

	for _, input := range cases {
		if _, err := ParseArticleRef(input); err == nil {
			t.Errorf("ParseArticleRef(%q) phải trả về lỗi", input)
		}
	}
}

func TestArticleRef_String_DangCanonical(t *testing.T) {
	// Cả ba dạng input đều serialize về dạng canonical với dấu gạch ngang
	for _, input := range []string{"100-1", "100_1", "100"} {
		ref, err := ParseArticleRef(input)
		if err != nil {
			t.Fatalf("ParseArticleRef(%q) lỗi: %v", input, err)
		}
		if got := ref.String(); got != "100-1" {
			t.Errorf("ArticleRef từ %q serialize thành %q, muốn \"100-1\"", input, got)
		}
	}
}
