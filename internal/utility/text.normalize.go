package utility

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// diacriticRemover loại bỏ các dấu kết hợp (combining marks) sau khi
// phân rã NFD, ví dụ "tricoté" -> "tricote".
var diacriticRemover = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// RemoveDiacritics trả về chuỗi đã bỏ dấu.
// Nếu transform thất bại, trả về chuỗi gốc.
func RemoveDiacritics(s string) string {
	result, _, err := transform.String(diacriticRemover, s)
	if err != nil {
		return s
	}
	return result
}

// NormalizeText chuẩn hóa chuỗi để so khớp từ khóa:
// bỏ dấu, chuyển lowercase và trim khoảng trắng hai đầu.
func NormalizeText(s string) string {
	return strings.TrimSpace(strings.ToLower(RemoveDiacritics(s)))
}
