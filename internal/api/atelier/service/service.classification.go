// Package ateliersvc chứa business logic của hệ thống theo dõi sản xuất:
// đồng bộ đơn hàng, phân loại sản phẩm, phân công và trạng thái sản xuất.
package ateliersvc

import (
	"strings"

	"atelier_commerce/internal/api/atelier/models"
	"atelier_commerce/internal/utility"
)

// Classifier phân loại sản phẩm thành loại sản xuất (couture/maille).
// Interface một method để có thể thay danh sách từ khóa hoặc thay hẳn
// chiến lược phân loại mà không đụng tới engine đồng bộ.
type Classifier interface {
	Classify(productName string) string
}

// mailleKeywords là các từ khóa nhận diện sản phẩm đan len.
// So khớp substring, không phân biệt hoa thường và dấu.
var mailleKeywords = []string{
	"tricote", // khớp cả "tricoté", "tricotée" sau khi bỏ dấu
	"tricot",
	"knitted",
	"knit",
	"laine",
	"wool",
	"maille",
}

// KeywordClassifier phân loại theo danh sách từ khóa cố định.
// Thuần và deterministic: cùng input luôn cho cùng output, không có state.
type KeywordClassifier struct{}

// NewKeywordClassifier tạo classifier mặc định của hệ thống
func NewKeywordClassifier() *KeywordClassifier {
	return &KeywordClassifier{}
}

// Classify trả về "maille" nếu tên sản phẩm chứa từ khóa đan len,
// ngược lại "couture". Tên rỗng phân loại là "couture".
func (c *KeywordClassifier) Classify(productName string) string {
	if productName == "" {
		return models.TypeCouture
	}

	normalized := utility.NormalizeText(productName)
	for _, keyword := range mailleKeywords {
		if strings.Contains(normalized, keyword) {
			return models.TypeMaille
		}
	}

	return models.TypeCouture
}
