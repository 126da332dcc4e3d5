package assistant

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplyKeywordMatching(t *testing.T) {
	tests := []struct {
		name     string
		question string
		contains string
	}{
		{"revenue", "Tổng doanh thu tháng này?", "328 triệu VNĐ"},
		{"template by name", "Template nào tốt?", "Trứng Gà"},
		{"template by effectiveness", "Cái nào hiệu quả nhất?", "92%"},
		{"device issues", "Thiết bị có lỗi bất thường?", "12 thiết bị"},
		{"orders", "Số lượng đơn hàng mới?", "8 đơn hàng mới"},
		{"fallback", "Thời tiết hôm nay thế nào?", "Bạn muốn biết thông tin gì cụ thể?"},
	}

	r := NewResponder(0)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, err := r.Reply(context.Background(), tt.question)
			require.NoError(t, err)
			assert.Equal(t, RoleAssistant, msg.Role)
			assert.Contains(t, msg.Content, tt.contains)
		})
	}
}

func TestReplyMatchingIsCaseInsensitive(t *testing.T) {
	r := NewResponder(0)
	msg, err := r.Reply(context.Background(), "DOANH THU ra sao?")
	require.NoError(t, err)
	assert.Contains(t, msg.Content, "328 triệu VNĐ")
}

func TestReplyHonoursContextCancellation(t *testing.T) {
	r := NewResponder(time.Minute)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := r.Reply(ctx, "Tổng doanh thu?")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestGreetingAndQuickQuestions(t *testing.T) {
	r := NewResponder(0)

	greeting := r.Greeting()
	assert.Equal(t, RoleAssistant, greeting.Role)
	assert.Contains(t, greeting.Content, "AI Assistant")
	assert.NotEmpty(t, greeting.Timestamp)

	questions := r.QuickQuestions()
	require.Len(t, questions, 4)

	// Callers get a copy, not the shared slice.
	questions[0] = "mutated"
	assert.Equal(t, "Tổng doanh thu tháng này?", r.QuickQuestions()[0])
}
