package global

import (
	"atelier_commerce/config"
	"atelier_commerce/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDB_CollectionName chứa tên các collection trong MongoDB
type MongoDB_CollectionName struct {
	OrderItems         string // Tên collection cho đơn hàng đồng bộ từ WooCommerce
	ProductionStatus   string // Tên collection cho trạng thái sản xuất từng article
	ArticleAssignments string // Tên collection cho phân công article - tricoteuse
	Tricoteuses        string // Tên collection cho hồ sơ tricoteuse
}

// Các biến toàn cục
var Validate *validator.Validate               // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client              // Phiên kết nối tới MongoDB
var MongoDB_ServerConfig *config.Configuration // Cấu hình của server
var MongoDB_ColNames MongoDB_CollectionName    // Tên các collection

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
var RegistryDatabase = registry.NewRegistry[*mongo.Database]()      // Registry chứa các databases
