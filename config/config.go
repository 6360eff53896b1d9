package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Configuration chứa thông tin tĩnh cần thiết để chạy ứng dụng.
// Nó chứa thông tin cơ sở dữ liệu, WooCommerce API và SMTP.
type Configuration struct {
	Address               string `env:"ADDRESS" envDefault:"3001"`                 // Port server
	JwtSecret             string `env:"JWT_SECRET,required"`                       // Bí mật JWT (reset token)
	MongoDB_ConnectionURI string `env:"MONGODB_CONNECTION_URI,required"`           // URL kết nối cơ sở dữ liệu
	MongoDB_DBName        string `env:"MONGODB_DBNAME,required"`                   // Tên cơ sở dữ liệu
	CORS_Origins          string `env:"CORS_ORIGINS" envDefault:"*"`               // Các origins được phép (phân cách bởi dấu phẩy, * = tất cả)
	CORS_AllowCredentials bool   `env:"CORS_ALLOW_CREDENTIALS" envDefault:"false"` // Cho phép gửi credentials
	RateLimit_Max         int    `env:"RATE_LIMIT_MAX" envDefault:"100"`           // Số request tối đa trong window
	RateLimit_Window      int    `env:"RATE_LIMIT_WINDOW" envDefault:"60"`         // Thời gian window (giây)
	RateLimit_Enabled     bool   `env:"RATE_LIMIT_ENABLED" envDefault:"true"`      // Bật/tắt rate limiting
	// WooCommerce API Configuration
	WooBaseURL        string `env:"WOOCOMMERCE_API_URL,required"`        // URL gốc của site WordPress (ví dụ: https://shop.example.com), client tự thêm /wp-json/wc/v3
	WooConsumerKey    string `env:"WOOCOMMERCE_CONSUMER_KEY,required"`   // Consumer key
	WooConsumerSecret string `env:"WOOCOMMERCE_CONSUMER_SECRET,required"` // Consumer secret
	// Sync Configuration
	SyncIntervalHours int `env:"SYNC_INTERVAL_HOURS" envDefault:"24"` // Chu kỳ đồng bộ đơn hàng (giờ)
	SyncPageSize      int `env:"SYNC_PAGE_SIZE" envDefault:"100"`     // Số đơn hàng tải mỗi lần đồng bộ (tối đa 100)
	// SMTP Configuration (gửi mail đặt lại mật khẩu)
	SMTPHost     string `env:"SMTP_HOST"`                  // SMTP host
	SMTPPort     int    `env:"SMTP_PORT" envDefault:"587"` // SMTP port
	SMTPUser     string `env:"SMTP_USER"`                  // SMTP user
	SMTPPassword string `env:"SMTP_PASSWORD"`              // SMTP password
	SMTPFrom     string `env:"SMTP_FROM"`                  // Địa chỉ gửi
	// Frontend URL (link trong mail đặt lại mật khẩu)
	FrontendURL string `env:"FRONTEND_URL" envDefault:"http://localhost:3000"`
	// TLS/HTTPS Configuration
	EnableTLS   bool   `env:"ENABLE_TLS" envDefault:"false"` // Bật HTTPS
	TLSCertFile string `env:"TLS_CERT_FILE"`                 // Đường dẫn đến file certificate (.crt hoặc .pem)
	TLSKeyFile  string `env:"TLS_KEY_FILE"`                  // Đường dẫn đến file private key (.key)
}

// getEnvPath trả về đường dẫn đến file env dựa trên môi trường
func getEnvPath() string {
	// Mặc định sử dụng môi trường development
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	currentDir, err := os.Getwd()
	if err != nil {
		// Sử dụng fmt.Printf vì logger có thể chưa được init ở đây
		fmt.Printf("Không thể lấy được thư mục hiện tại: %v\n", err)
		return ""
	}

	// Đi lên từ thư mục hiện tại để tìm thư mục config/env
	for {
		envDir := filepath.Join(currentDir, "config", "env")
		if _, err := os.Stat(envDir); err == nil {
			return filepath.Join(envDir, fmt.Sprintf("%s.env", env))
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return ""
		}
		currentDir = parentDir
	}
}

// NewConfig sẽ đọc dữ liệu cấu hình từ file env theo GO_ENV
func NewConfig() *Configuration {
	envPath := getEnvPath()
	if envPath == "" {
		// Sử dụng fmt.Printf vì logger có thể chưa được init ở đây
		fmt.Printf("Không tìm thấy thư mục config/env\n")
		return nil
	}

	err := godotenv.Load(envPath)
	if err != nil {
		fmt.Printf("Không thể load file env tại %s: %v\n", envPath, err)
		return nil
	}

	cfg := Configuration{}
	err = env.Parse(&cfg)
	if err != nil {
		fmt.Printf("Lỗi khi parse config: %+v\n", err)
		return nil
	}

	return &cfg
}
