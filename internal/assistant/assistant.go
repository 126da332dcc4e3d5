// Package assistant implements the dashboard's canned AI helper. Replies
// are keyword-matched against a fixed set of Vietnamese answers; a small
// artificial delay mimics a model thinking.
package assistant

import (
	"context"
	"strings"
	"time"
)

// DefaultDelay is how long the responder pretends to think.
const DefaultDelay = time.Second

// Message is one chat bubble.
type Message struct {
	Role      string `json:"role"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

const greeting = "Xin chào! Tôi là AI Assistant. Tôi có thể giúp gì cho bạn?"

// quickQuestions are the suggested prompts shown under the chat input.
var quickQuestions = []string{
	"Tổng doanh thu tháng này?",
	"Template nào hiệu quả nhất?",
	"Thiết bị có lỗi bất thường?",
	"Số lượng đơn hàng mới?",
}

// cannedReplies pairs keyword groups with their answer, checked in order.
var cannedReplies = []struct {
	keywords []string
	reply    string
}{
	{
		keywords: []string{"doanh thu"},
		reply:    "📊 Tổng doanh thu tháng này là 328 triệu VNĐ, tăng 18% so với tháng trước. Dòng máy bán chạy nhất là máy 100 trứng với 85 máy đã xuất kho.",
	},
	{
		keywords: []string{"template", "hiệu quả"},
		reply:    "🎯 Template \"Trứng Gà\" hiệu quả nhất với tỉ lệ thành công 92%, được 156 người dùng sử dụng trong 324 vụ ấp. Template này có nhiệt độ 37.5-38°C và độ ẩm 55-65%.",
	},
	{
		keywords: []string{"lỗi", "thiết bị"},
		reply:    "⚠️ Hiện có 12 thiết bị đang gặp sự cố, trong đó 3 máy có vấn đề về hệ thống gia nhiệt và 2 máy cần kiểm tra motor đảo trứng. Đã có 5 ticket bảo trì đang được xử lý.",
	},
	{
		keywords: []string{"đơn hàng"},
		reply:    "📦 Hiện có 8 đơn hàng mới chờ xử lý, 12 đơn đang trong quá trình giao hàng và 247 đơn đã hoàn thành trong tháng này.",
	},
}

const fallbackReply = "🤖 Tôi có thể cung cấp thông tin về doanh thu, hiệu quả template, tình trạng thiết bị và đơn hàng. Bạn muốn biết thông tin gì cụ thể?"

// Responder answers chat questions from the canned reply table.
type Responder struct {
	delay time.Duration
	now   func() time.Time
}

// NewResponder creates a responder with the given thinking delay. A zero
// delay answers immediately, which the tests rely on.
func NewResponder(delay time.Duration) *Responder {
	return &Responder{
		delay: delay,
		now:   time.Now,
	}
}

// Greeting is the opening assistant message of every conversation.
func (r *Responder) Greeting() Message {
	return Message{
		Role:      RoleAssistant,
		Content:   greeting,
		Timestamp: r.now().Format("15:04"),
	}
}

// QuickQuestions returns the suggested prompts.
func (r *Responder) QuickQuestions() []string {
	out := make([]string, len(quickQuestions))
	copy(out, quickQuestions)
	return out
}

// Reply answers a question after the configured delay. The context cancels
// the wait.
func (r *Responder) Reply(ctx context.Context, question string) (Message, error) {
	if r.delay > 0 {
		timer := time.NewTimer(r.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return Message{}, ctx.Err()
		case <-timer.C:
		}
	}

	return Message{
		Role:      RoleAssistant,
		Content:   replyText(question),
		Timestamp: r.now().Format("15:04"),
	}, nil
}

func replyText(question string) string {
	q := strings.ToLower(question)
	for _, c := range cannedReplies {
		for _, kw := range c.keywords {
			if strings.Contains(q, kw) {
				return c.reply
			}
		}
	}
	return fallbackReply
}
