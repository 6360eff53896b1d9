package ateliersvc

import (
	"fmt"
	"strconv"
	"strings"

	"atelier_commerce/internal/common"
)

// ArticleRef định danh một article bằng cặp (orderId, lineItemId).
// Dạng chuỗi canonical là "{orderId}-{lineItemId}"; dữ liệu cũ còn tồn tại
// hai dạng khác: "{orderId}_{lineItemId}" và orderId trần (lineItemId = 1).
// Parser chấp nhận cả ba dạng, serializer chỉ sinh dạng canonical.
type ArticleRef struct {
	OrderId    int64
	LineItemId int64
}

// ParseArticleRef phân tích một articleId thành ArticleRef.
// Hỗ trợ "100-1", "100_1" và "100" (lineItemId mặc định 1).
func ParseArticleRef(articleId string) (ArticleRef, error) {
	articleId = strings.TrimSpace(articleId)
	if articleId == "" {
		return ArticleRef{}, common.NewError(
			common.ErrCodeValidationInput,
			"articleId không được để trống",
			common.StatusBadRequest,
			nil,
		)
	}

	separator := ""
	if strings.Contains(articleId, "-") {
		separator = "-"
	} else if strings.Contains(articleId, "_") {
		separator = "_"
	}

	// Dạng trần: toàn bộ chuỗi là orderId, lineItemId mặc định 1
	if separator == "" {
		orderId, err := strconv.ParseInt(articleId, 10, 64)
		if err != nil || orderId <= 0 {
			return ArticleRef{}, common.NewError(
				common.ErrCodeValidationInput,
				fmt.Sprintf("articleId '%s' không đúng định dạng (cần '{orderId}-{lineItemId}' hoặc orderId)", articleId),
				common.StatusBadRequest,
				err,
			)
		}
		return ArticleRef{OrderId: orderId, LineItemId: 1}, nil
	}

	parts := strings.SplitN(articleId, separator, 2)
	orderId, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil || orderId <= 0 {
		return ArticleRef{}, common.NewError(
			common.ErrCodeValidationInput,
			fmt.Sprintf("orderId trong articleId '%s' không hợp lệ", articleId),
			common.StatusBadRequest,
			err,
		)
	}
	lineItemId, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil || lineItemId <= 0 {
		return ArticleRef{}, common.NewError(
			common.ErrCodeValidationInput,
			fmt.Sprintf("lineItemId trong articleId '%s' không hợp lệ", articleId),
			common.StatusBadRequest,
			err,
		)
	}

	return ArticleRef{OrderId: orderId, LineItemId: lineItemId}, nil
}

// String trả về dạng canonical "{orderId}-{lineItemId}"
func (r ArticleRef) String() string {
	return fmt.Sprintf("%d-%d", r.OrderId, r.LineItemId)
}
