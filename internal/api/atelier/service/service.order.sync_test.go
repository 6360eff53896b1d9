// Package ateliersvc - Test engine đồng bộ đơn hàng với fetcher và store giả.
package ateliersvc

import (
	"context"
	"errors"
	"testing"

	"atelier_commerce/internal/api/atelier/models"
	"atelier_commerce/internal/common"
	"atelier_commerce/internal/woo"
)

// fakeFetcher trả về danh sách đơn cố định hoặc lỗi
type fakeFetcher struct {
	orders  []woo.Order
	listErr error
}

func (f *fakeFetcher) ListRecentOrders(ctx context.Context, perPage int) ([]woo.Order, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.orders, nil
}

func (f *fakeFetcher) GetOrder(ctx context.Context, orderId int64) (*woo.Order, error) {
	for i := range f.orders {
		if f.orders[i].ID == orderId {
			return &f.orders[i], nil
		}
	}
	return nil, nil
}

// fakeStore giữ order_items trong memory, có thể ép lỗi insert theo orderId
type fakeStore struct {
	items        map[int64][]models.OrderItem
	failOrderIds map[int64]error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		items:        map[int64][]models.OrderItem{},
		failOrderIds: map[int64]error{},
	}
}

func (s *fakeStore) LastOrderId(ctx context.Context) (int64, error) {
	var max int64
	for id := range s.items {
		if id > max {
			max = id
		}
	}
	return max, nil
}

func (s *fakeStore) IsOrderIdExist(ctx context.Context, orderId int64) (bool, error) {
	_, ok := s.items[orderId]
	return ok, nil
}

func (s *fakeStore) InsertItems(ctx context.Context, items []models.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	orderId := items[0].OrderId
	if err, ok := s.failOrderIds[orderId]; ok {
		return err
	}
	s.items[orderId] = append(s.items[orderId], items...)
	return nil
}

// fakeStatusStore đếm số lần EnsureArticleStatus được gọi
type fakeStatusStore struct {
	ensured map[string]string // "orderId-lineItemId" -> productionType
}

func newFakeStatusStore() *fakeStatusStore {
	return &fakeStatusStore{ensured: map[string]string{}}
}

func (s *fakeStatusStore) EnsureArticleStatus(ctx context.Context, orderId, lineItemId int64, productionType string) error {
	s.ensured[ArticleRef{OrderId: orderId, LineItemId: lineItemId}.String()] = productionType
	return nil
}

func wooOrder(id int64, productNames ...string) woo.Order {
	order := woo.Order{ID: id, Number: "n", Status: "processing"}
	for i, name := range productNames {
		order.LineItems = append(order.LineItems, woo.LineItem{
			ID:   int64(i + 1),
			Name: name,
		})
	}
	return order
}

func newTestEngine(fetcher OrderFetcher, store *fakeStore, statuses *fakeStatusStore) *OrderSyncService {
	return NewOrderSyncServiceWith(fetcher, store, statuses, NewKeywordClassifier(), 100)
}

func TestSyncOrders_StoreRong_ImportTatCa(t *testing.T) {
	fetcher := &fakeFetcher{orders: []woo.Order{
		wooOrder(101, "Pull tricoté"),
		wooOrder(102, "Chemise en lin", "Robe"),
	}}
	store := newFakeStore()
	statuses := newFakeStatusStore()

	summary, err := newTestEngine(fetcher, store, statuses).SyncOrders(context.Background())
	if err != nil {
		t.Fatalf("SyncOrders lỗi: %v", err)
	}

	if summary.Synchronized != 2 {
		t.Errorf("Synchronized = %d, muốn 2", summary.Synchronized)
	}
	if summary.LastOrderId != 102 {
		t.Errorf("LastOrderId = %d, muốn 102", summary.LastOrderId)
	}
	if summary.ErrorCount != 0 {
		t.Errorf("ErrorCount = %d, muốn 0", summary.ErrorCount)
	}
	if len(store.items[102]) != 2 {
		t.Errorf("đơn 102 có %d dòng trong store, muốn 2", len(store.items[102]))
	}
	if statuses.ensured["101-1"] != models.TypeMaille {
		t.Errorf("production_status của 101-1 loại %q, muốn maille", statuses.ensured["101-1"])
	}
	if statuses.ensured["102-1"] != models.TypeCouture {
		t.Errorf("production_status của 102-1 loại %q, muốn couture", statuses.ensured["102-1"])
	}
}

func TestSyncOrders_HighWaterMark_BoQuaDonCu(t *testing.T) {
	fetcher := &fakeFetcher{orders: []woo.Order{
		wooOrder(99, "Ancien"),
		wooOrder(100, "Ancien aussi"),
		wooOrder(101, "Nouveau"),
	}}
	store := newFakeStore()
	store.items[100] = []models.OrderItem{{OrderId: 100, LineItemId: 1}}

	summary, err := newTestEngine(fetcher, store, newFakeStatusStore()).SyncOrders(context.Background())
	if err != nil {
		t.Fatalf("SyncOrders lỗi: %v", err)
	}

	if summary.Synchronized != 1 {
		t.Errorf("Synchronized = %d, muốn 1 (chỉ đơn 101)", summary.Synchronized)
	}
	if _, ok := store.items[99]; ok {
		t.Error("đơn 99 (id <= mark) không được import")
	}
	if summary.LastOrderId != 101 {
		t.Errorf("LastOrderId = %d, muốn 101", summary.LastOrderId)
	}
}

func TestSyncOrders_Idempotent(t *testing.T) {
	fetcher := &fakeFetcher{orders: []woo.Order{wooOrder(101, "Pull"), wooOrder(102, "Robe")}}
	store := newFakeStore()
	statuses := newFakeStatusStore()
	engine := newTestEngine(fetcher, store, statuses)

	if _, err := engine.SyncOrders(context.Background()); err != nil {
		t.Fatalf("lượt một lỗi: %v", err)
	}
	second, err := engine.SyncOrders(context.Background())
	if err != nil {
		t.Fatalf("lượt hai lỗi: %v", err)
	}

	if second.Synchronized != 0 {
		t.Errorf("lượt hai Synchronized = %d, muốn 0", second.Synchronized)
	}
	if len(store.items[101]) != 1 {
		t.Errorf("đơn 101 bị nhân đôi: %d dòng", len(store.items[101]))
	}
}

func TestSyncOrders_LoiMotDon_CacDonSauVanChay(t *testing.T) {
	fetcher := &fakeFetcher{orders: []woo.Order{
		wooOrder(101, "A"),
		wooOrder(102, "B"),
		wooOrder(103, "C"),
	}}
	store := newFakeStore()
	store.failOrderIds[102] = errors.New("write failed")

	summary, err := newTestEngine(fetcher, store, newFakeStatusStore()).SyncOrders(context.Background())
	if err != nil {
		t.Fatalf("SyncOrders phải không lỗi khi chỉ một đơn hỏng: %v", err)
	}

	if summary.ErrorCount != 1 {
		t.Errorf("ErrorCount = %d, muốn 1", summary.ErrorCount)
	}
	if summary.Synchronized != 2 {
		t.Errorf("Synchronized = %d, muốn 2 (đơn 101 và 103)", summary.Synchronized)
	}
	if _, ok := store.items[103]; !ok {
		t.Error("đơn 103 (sau đơn lỗi) phải vẫn được import")
	}
}

func TestSyncOrders_DuplicateKeyKhongPhaiLoi(t *testing.T) {
	fetcher := &fakeFetcher{orders: []woo.Order{wooOrder(101, "A")}}
	store := newFakeStore()
	store.failOrderIds[101] = common.ErrMongoDuplicate

	summary, err := newTestEngine(fetcher, store, newFakeStatusStore()).SyncOrders(context.Background())
	if err != nil {
		t.Fatalf("SyncOrders lỗi: %v", err)
	}
	if summary.ErrorCount != 0 {
		t.Errorf("duplicate key phải được coi là đã đồng bộ, ErrorCount = %d", summary.ErrorCount)
	}
	if summary.Synchronized != 0 {
		t.Errorf("Synchronized = %d, muốn 0", summary.Synchronized)
	}
}

func TestSyncOrders_LoiFetchDungCaLuot(t *testing.T) {
	fetchErr := common.ErrUpstreamFetch
	fetcher := &fakeFetcher{listErr: fetchErr}

	_, err := newTestEngine(fetcher, newFakeStore(), newFakeStatusStore()).SyncOrders(context.Background())
	if err == nil {
		t.Fatal("lỗi fetch upstream phải dừng cả lượt đồng bộ")
	}
	if !errors.Is(err, fetchErr) {
		t.Errorf("lỗi trả về %v, muốn lỗi fetch gốc", err)
	}
}

func TestImportOrder_DonKhongTonTai(t *testing.T) {
	fetcher := &fakeFetcher{orders: []woo.Order{wooOrder(101, "A")}}

	_, err := newTestEngine(fetcher, newFakeStore(), newFakeStatusStore()).ImportOrder(context.Background(), 999)
	if err == nil {
		t.Fatal("ImportOrder với id không tồn tại phải trả về lỗi")
	}
	var e *common.Error
	if !errors.As(err, &e) || e.StatusCode != common.StatusNotFound {
		t.Errorf("lỗi phải có status 404, được %v", err)
	}
}

func TestImportOrder_DonDaTonTai(t *testing.T) {
	fetcher := &fakeFetcher{orders: []woo.Order{wooOrder(101, "A")}}
	store := newFakeStore()
	store.items[101] = []models.OrderItem{{OrderId: 101, LineItemId: 1}}

	out, err := newTestEngine(fetcher, store, newFakeStatusStore()).ImportOrder(context.Background(), 101)
	if err != nil {
		t.Fatalf("ImportOrder lỗi: %v", err)
	}
	if out.Imported {
		t.Error("đơn đã tồn tại: Imported phải là false")
	}
	if len(store.items[101]) != 1 {
		t.Error("đơn đã tồn tại không được ghi thêm dòng")
	}
}

func TestImportOrder_BoQuaHighWaterMark(t *testing.T) {
	// Đơn 50 cũ hơn mark (store đã có đơn 100) nhưng import trực tiếp vẫn được
	fetcher := &fakeFetcher{orders: []woo.Order{wooOrder(50, "Ancien")}}
	store := newFakeStore()
	store.items[100] = []models.OrderItem{{OrderId: 100, LineItemId: 1}}

	out, err := newTestEngine(fetcher, store, newFakeStatusStore()).ImportOrder(context.Background(), 50)
	if err != nil {
		t.Fatalf("ImportOrder lỗi: %v", err)
	}
	if !out.Imported || out.Items != 1 {
		t.Errorf("ImportOrder = %+v, muốn Imported=true với 1 dòng", out)
	}
}
