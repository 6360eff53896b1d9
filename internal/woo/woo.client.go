package woo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"atelier_commerce/internal/common"
)

// ordersPath là đường dẫn REST API orders của WooCommerce v3
const ordersPath = "/wp-json/wc/v3/orders"

// Client gọi REST API WooCommerce với Basic Auth (consumer key/secret)
type Client struct {
	baseURL        string
	consumerKey    string
	consumerSecret string
	httpClient     *http.Client
}

// NewClient tạo client WooCommerce từ thông tin kết nối.
// baseURL là gốc của site WordPress (ví dụ: https://shop.example.com).
func NewClient(baseURL, consumerKey, consumerSecret string) *Client {
	return &Client{
		baseURL:        strings.TrimRight(baseURL, "/"),
		consumerKey:    consumerKey,
		consumerSecret: consumerSecret,
		httpClient:     &http.Client{Timeout: 15 * time.Second},
	}
}

// ListRecentOrders lấy các đơn hàng mới nhất, sắp xếp theo id giảm dần.
// perPage giới hạn số đơn trả về trong một lần gọi.
func (c *Client) ListRecentOrders(ctx context.Context, perPage int) ([]Order, error) {
	if perPage <= 0 {
		perPage = 100
	}

	query := url.Values{}
	query.Set("per_page", fmt.Sprintf("%d", perPage))
	query.Set("orderby", "id")
	query.Set("order", "desc")

	endpoint := fmt.Sprintf("%s%s?%s", c.baseURL, ordersPath, query.Encode())

	body, statusCode, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	if statusCode < 200 || statusCode >= 300 {
		return nil, common.NewError(
			common.ErrCodeUpstreamStatus,
			fmt.Sprintf("WooCommerce trả về mã trạng thái %d khi lấy danh sách đơn hàng", statusCode),
			common.StatusBadGateway,
			string(body),
		)
	}

	var orders []Order
	if err := json.Unmarshal(body, &orders); err != nil {
		return nil, common.NewError(
			common.ErrCodeUpstreamFetch,
			fmt.Sprintf("Không parse được danh sách đơn hàng từ WooCommerce: %v", err),
			common.StatusBadGateway,
			err,
		)
	}

	return orders, nil
}

// GetOrder lấy một đơn hàng theo id WooCommerce.
// Trả về (nil, nil) nếu đơn hàng không tồn tại (404).
func (c *Client) GetOrder(ctx context.Context, orderID int64) (*Order, error) {
	endpoint := fmt.Sprintf("%s%s/%d", c.baseURL, ordersPath, orderID)

	body, statusCode, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	if statusCode == http.StatusNotFound {
		return nil, nil
	}
	if statusCode < 200 || statusCode >= 300 {
		return nil, common.NewError(
			common.ErrCodeUpstreamStatus,
			fmt.Sprintf("WooCommerce trả về mã trạng thái %d khi lấy đơn hàng %d", statusCode, orderID),
			common.StatusBadGateway,
			string(body),
		)
	}

	var order Order
	if err := json.Unmarshal(body, &order); err != nil {
		return nil, common.NewError(
			common.ErrCodeUpstreamFetch,
			fmt.Sprintf("Không parse được đơn hàng %d từ WooCommerce: %v", orderID, err),
			common.StatusBadGateway,
			err,
		)
	}

	return &order, nil
}

// get thực hiện một GET request với Basic Auth, trả về body và status code
func (c *Client) get(ctx context.Context, endpoint string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, 0, common.NewError(
			common.ErrCodeUpstreamFetch,
			fmt.Sprintf("Không tạo được request tới WooCommerce: %v", err),
			common.StatusInternalServerError,
			err,
		)
	}

	req.SetBasicAuth(c.consumerKey, c.consumerSecret)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, common.NewError(
			common.ErrCodeUpstreamFetch,
			fmt.Sprintf("Không thể kết nối tới WooCommerce: %v", err),
			common.StatusBadGateway,
			err,
		)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, common.NewError(
			common.ErrCodeUpstreamFetch,
			fmt.Sprintf("Lỗi đọc response từ WooCommerce: %v", err),
			common.StatusBadGateway,
			err,
		)
	}

	return body, resp.StatusCode, nil
}
