package dto

// TricoteuseCreateInput là input tạo hồ sơ tricoteuse
type TricoteuseCreateInput struct {
	FirstName string `json:"firstName" validate:"required"`
	Email     string `json:"email" validate:"omitempty,email"`
	Color     string `json:"color"`
	PhotoUrl  string `json:"photoUrl" validate:"omitempty,url"`
	Gender    string `json:"gender"`
	Password  string `json:"password" validate:"omitempty,strong_password"`
}

// TricoteuseUpdateInput là input cập nhật hồ sơ tricoteuse.
// Chỉ các field non-zero được ghi xuống DB (partial update).
type TricoteuseUpdateInput struct {
	FirstName string `json:"firstName,omitempty"`
	Email     string `json:"email,omitempty" validate:"omitempty,email"`
	Color     string `json:"color,omitempty"`
	PhotoUrl  string `json:"photoUrl,omitempty" validate:"omitempty,url"`
	Gender    string `json:"gender,omitempty"`
	Password  string `json:"password,omitempty" validate:"omitempty,strong_password"`
}

// TricoteuseLoginInput là input đăng nhập self-service
type TricoteuseLoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ForgotPasswordInput yêu cầu gửi mail đặt lại mật khẩu
type ForgotPasswordInput struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordInput đặt lại mật khẩu bằng token từ mail
type ResetPasswordInput struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,strong_password"`
}
