// Package dto - Test parse input cập nhật assignment.
package dto

import (
	"encoding/json"
	"testing"
)

// Field urgent là con trỏ: body không gửi urgent phải giữ nguyên giá trị
// hiện có, khác với body gửi urgent=false một cách tường minh.
func TestAssignmentUpdateInput_UrgentVangMatKhacVoiFalse(t *testing.T) {
	var omitted AssignmentUpdateInput
	if err := json.Unmarshal([]byte(`{"status":"en_cours"}`), &omitted); err != nil {
		t.Fatalf("unmarshal body không có urgent lỗi: %v", err)
	}
	if omitted.Urgent != nil {
		t.Errorf("body không gửi urgent: Urgent = %v, muốn nil", *omitted.Urgent)
	}

	var explicit AssignmentUpdateInput
	if err := json.Unmarshal([]byte(`{"urgent":false}`), &explicit); err != nil {
		t.Fatalf("unmarshal body có urgent=false lỗi: %v", err)
	}
	if explicit.Urgent == nil || *explicit.Urgent {
		t.Error("body gửi urgent=false phải cho Urgent trỏ tới false")
	}

	var raised AssignmentUpdateInput
	if err := json.Unmarshal([]byte(`{"urgent":true}`), &raised); err != nil {
		t.Fatalf("unmarshal body có urgent=true lỗi: %v", err)
	}
	if raised.Urgent == nil || !*raised.Urgent {
		t.Error("body gửi urgent=true phải cho Urgent trỏ tới true")
	}
}
