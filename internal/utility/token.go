package utility

import (
	"time"

	"github.com/dgrijalva/jwt-go"

	"atelier_commerce/internal/common"
)

// TokenClaims là payload được mã hóa trong JWT token
type TokenClaims struct {
	UserID       string `json:"userId"`
	Time         string `json:"time"`
	RandomNumber string `json:"randomNumber"`
	jwt.StandardClaims
}

// CreateToken sinh JWT token HS256 cho một user.
//
// Parameters:
//   - secret: khóa ký (JwtSecret trong config)
//   - userID: ID của user (hex string)
//   - time: thời điểm sinh token (hex string, chống trùng)
//   - randomNumber: số ngẫu nhiên (chống trùng)
//
// Returns:
//   - map[string]string: map chứa key "token"
//   - error: lỗi khi ký token
func CreateToken(secret, userID, time, randomNumber string) (map[string]string, error) {
	claims := TokenClaims{
		UserID:       userID,
		Time:         time,
		RandomNumber: randomNumber,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return nil, common.NewError(common.ErrCodeAuthToken, "Không tạo được token", common.StatusInternalServerError, err)
	}

	return map[string]string{"token": signed}, nil
}

// CreateExpiringToken sinh JWT token HS256 có thời hạn (dùng cho link
// đặt lại mật khẩu)
func CreateExpiringToken(secret, userID string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := TokenClaims{
		UserID: userID,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(ttl).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", common.NewError(common.ErrCodeAuthToken, "Không tạo được token", common.StatusInternalServerError, err)
	}
	return signed, nil
}

// ParseToken giải mã và xác thực một JWT token.
// Token sai chữ ký hoặc hết hạn trả về lỗi tương ứng.
func ParseToken(secret, tokenString string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrTokenInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		if ve, ok := err.(*jwt.ValidationError); ok && ve.Errors&jwt.ValidationErrorExpired != 0 {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrTokenInvalid
	}
	if !token.Valid {
		return nil, common.ErrTokenInvalid
	}
	return claims, nil
}
