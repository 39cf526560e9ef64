package websocket

import (
	"encoding/json"
	"sync"

	"github.com/ikkim/cosmos-backend/pkg/logger"
)

// Client WebSocket 클라이언트 (알림 수신 세션)
type Client struct {
	Hub    *Hub
	Conn   *Conn
	UserID uint
	Send   chan []byte
}

// Hub 사용자별 WebSocket 연결 관리자
// 알림 푸시 전용이며 전송은 best-effort다 (버퍼가 차면 메시지를 버린다)
type Hub struct {
	// 등록된 클라이언트들 (UserID -> []*Client - 멀티 디바이스 지원)
	clients map[uint][]*Client

	register   chan *Client
	unregister chan *Client

	mu sync.RWMutex
}

// NewHub Hub 생성
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[uint][]*Client),
		register:   make(chan *Client, 256),
		unregister: make(chan *Client, 256),
	}
}

// Run Hub 실행
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.UserID] = append(h.clients[client.UserID], client)
			h.mu.Unlock()
			logger.Info("WebSocket client registered", map[string]interface{}{
				"user_id":        client.UserID,
				"total_sessions": len(h.clients[client.UserID]),
			})

		case client := <-h.unregister:
			h.mu.Lock()
			if clientList, ok := h.clients[client.UserID]; ok {
				newList := make([]*Client, 0, len(clientList))
				for _, c := range clientList {
					if c != client {
						newList = append(newList, c)
					}
				}

				if len(newList) == 0 {
					delete(h.clients, client.UserID)
				} else {
					h.clients[client.UserID] = newList
				}

				close(client.Send)
			}
			h.mu.Unlock()
			logger.Info("WebSocket client unregistered", map[string]interface{}{
				"user_id": client.UserID,
			})
		}
	}
}

// Register 클라이언트 등록
func (h *Hub) Register(client *Client) {
	h.register <- client
}

// Unregister 클라이언트 등록 해제
func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

// IsUserOnline 사용자 온라인 여부 확인
func (h *Hub) IsUserOnline(userID uint) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	_, ok := h.clients[userID]
	return ok
}

// SendNotificationToUser 특정 사용자의 모든 세션에 알림 전송
// 오프라인이거나 버퍼가 차 있으면 조용히 버린다 (알림은 DB에 남아 있음)
func (h *Hub) SendNotificationToUser(userID uint, message interface{}) error {
	data, err := json.Marshal(message)
	if err != nil {
		logger.Error("Failed to marshal notification message", err, nil)
		return err
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	clientList, ok := h.clients[userID]
	if !ok {
		return nil
	}

	for _, client := range clientList {
		select {
		case client.Send <- data:
			// 전송 성공
		default:
			logger.Warn("Client send buffer full, dropping notification", map[string]interface{}{
				"user_id": userID,
			})
		}
	}
	return nil
}
