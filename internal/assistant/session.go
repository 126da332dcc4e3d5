package assistant

import (
	"net/http"
	"time"

	"incubator-admin/internal/logger"

	ws "github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Upgrader accepts chat connections from the dashboard. The panel is served
// from arbitrary origins in development, so origin checks are disabled.
var Upgrader = ws.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// wsMessage is the wire format exchanged over the chat socket. The client
// sends only Content; replies carry the full message.
type wsMessage struct {
	Role      string `json:"role,omitempty"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp,omitempty"`
}

// ServeSession upgrades the connection and runs a chat session: greeting
// first, then one reply per client message until the peer disconnects.
func ServeSession(r *Responder, w http.ResponseWriter, req *http.Request) {
	conn, err := Upgrader.Upgrade(w, req, nil)
	if err != nil {
		logger.Warn("Chat upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	logger.Info("Chat session opened",
		zap.String("remote", req.RemoteAddr),
		zap.String("event", "chat_session_opened"),
	)

	greeting := r.Greeting()
	if err := writeMessage(conn, greeting); err != nil {
		return
	}

	for {
		conn.SetReadDeadline(time.Now().Add(5 * time.Minute))
		var in wsMessage
		if err := conn.ReadJSON(&in); err != nil {
			break
		}
		if in.Content == "" {
			continue
		}

		reply, err := r.Reply(req.Context(), in.Content)
		if err != nil {
			break
		}
		if err := writeMessage(conn, reply); err != nil {
			break
		}
	}

	logger.Info("Chat session closed",
		zap.String("remote", req.RemoteAddr),
		zap.String("event", "chat_session_closed"),
	)
}

func writeMessage(conn *ws.Conn, m Message) error {
	conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
	return conn.WriteJSON(wsMessage{
		Role:      m.Role,
		Content:   m.Content,
		Timestamp: m.Timestamp,
	})
}
