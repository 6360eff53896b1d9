package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Tricoteuse là hồ sơ một thợ may/đan của xưởng.
// Email unique sparse: thợ có thể chưa khai báo email.
type Tricoteuse struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	FirstName string             `json:"firstName" bson:"firstName" index:"text"`            // Tên hiển thị
	Email     string             `json:"email,omitempty" bson:"email,omitempty" index:"unique,sparse"` // Email đăng nhập (tùy chọn)
	Color     string             `json:"color,omitempty" bson:"color,omitempty"`             // Màu avatar trên dashboard
	PhotoUrl  string             `json:"photoUrl,omitempty" bson:"photoUrl,omitempty"`       // Ảnh đại diện
	Gender    string             `json:"gender,omitempty" bson:"gender,omitempty"`
	Password  string             `json:"-" bson:"password,omitempty"`                        // Bcrypt hash, không trả về qua API
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}
