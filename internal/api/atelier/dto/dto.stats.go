package dto

// ProductionStatsOutput là kết quả tổng hợp của GET /stats/production
type ProductionStatsOutput struct {
	TotalOrders        int64            `json:"totalOrders"`        // Số đơn hàng phân biệt trong order_items
	TotalItems         int64            `json:"totalItems"`         // Tổng số dòng order_items
	TotalStatusRecords int64            `json:"totalStatusRecords"` // Tổng số document production_status
	ByStatus           map[string]int64 `json:"byStatus"`           // Phân bố theo trạng thái sản xuất
	ByProductionType   map[string]int64 `json:"byProductionType"`   // Phân bố theo loại sản xuất
	Timestamp          int64            `json:"timestamp"`          // Thời điểm tính toán (ms epoch)
}

// SyncSummaryOutput là kết quả của một lần chạy đồng bộ đơn hàng
type SyncSummaryOutput struct {
	Synchronized int     `json:"synchronized"` // Số đơn mới đã import trong lần chạy này
	LastOrderId  int64   `json:"lastOrderId"`  // High-water mark sau khi đồng bộ
	NewOrders    []int64 `json:"newOrders"`    // ID các đơn vừa import
	ErrorCount   int     `json:"errorCount"`   // Số đơn lỗi (đã bỏ qua, không dừng run)
	Timestamp    int64   `json:"timestamp"`    // Thời điểm kết thúc run (ms epoch)
}

// SyncAssignmentsOutput là kết quả của POST /assignments/sync-status
type SyncAssignmentsOutput struct {
	Synced int `json:"synced"` // Số assignment đã đồng bộ lại trạng thái
	Total  int `json:"total"`  // Tổng số assignment đã duyệt
}
