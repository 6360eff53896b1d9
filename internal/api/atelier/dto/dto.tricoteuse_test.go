// Package dto - Test input cập nhật hồ sơ tricoteuse.
package dto

import (
	"testing"

	"atelier_commerce/internal/global"
)

func TestTricoteuseUpdateInput_MatKhauMoiDuocValidate(t *testing.T) {
	global.InitValidator()

	// Mật khẩu mới phải qua được rule strong_password
	strong := TricoteuseUpdateInput{Password: "Nouveau-MotDePasse1"}
	if err := global.Validate.Struct(strong); err != nil {
		t.Errorf("mật khẩu mạnh bị từ chối: %v", err)
	}

	weak := TricoteuseUpdateInput{Password: "abc"}
	if err := global.Validate.Struct(weak); err == nil {
		t.Error("mật khẩu yếu phải bị từ chối bởi strong_password")
	}

	// Không gửi mật khẩu = không đổi mật khẩu, vẫn hợp lệ
	empty := TricoteuseUpdateInput{FirstName: "Marie"}
	if err := global.Validate.Struct(empty); err != nil {
		t.Errorf("update không kèm mật khẩu phải hợp lệ: %v", err)
	}
}
