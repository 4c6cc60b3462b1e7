package slot

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"slot_backend/internal/converter"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Доступ уже ограничен CORS-политикой роутера
	CheckOrigin: func(_ *http.Request) bool { return true },
}

// Stream по WebSocket выталкивает кадры состояния автомата с фиксированным интервалом.
// Соединение живёт, пока клиент не отключится
func (h *Handler) Stream(interval time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println("Stream upgrade error:", err)
			return
		}
		defer conn.Close()

		// Читатель нужен только чтобы заметить закрытие соединения клиентом
		done := make(chan struct{})
		go func() {
			defer close(done)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-done:
				return
			case <-r.Context().Done():
				return
			case <-ticker.C:
				view, err := h.serv.Snapshot(r.Context())
				if err != nil {
					log.Println("Stream snapshot error:", err)
					return
				}

				if err := conn.WriteJSON(converter.ToFrameResponse(*view)); err != nil {
					return
				}
			}
		}
	}
}
