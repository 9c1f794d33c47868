/*package stream serves simulation frames to websocket clients and feeds
their cursor input back into the simulation.*/
package stream

import (
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/phil-mansfield/gosmoke/input"
)

// Hub tracks connected clients. Each client receives every broadcast frame
// as a binary message and may send JSON encoded input.Cursor messages.
type Hub struct {
	upgrader websocket.Upgrader
	onCursor func(input.Cursor)

	clientsMutex sync.RWMutex
	clients      map[*websocket.Conn]*sync.Mutex
	last         []byte
}

// NewHub creates a Hub which passes every cursor message it receives to
// onCursor. onCursor is called from the connection goroutines.
func NewHub(onCursor func(input.Cursor)) *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		onCursor: onCursor,
		clients:  make(map[*websocket.Conn]*sync.Mutex),
	}
}

// Clients returns the number of connected clients.
func (hub *Hub) Clients() int {
	hub.clientsMutex.RLock()
	defer hub.clientsMutex.RUnlock()
	return len(hub.clients)
}

// ServeHTTP upgrades the connection and reads cursor messages until the
// client goes away. The most recent frame is sent on connection.
func (hub *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := hub.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("WebSocket upgrade error:", err)
		return
	}
	defer conn.Close()

	connMutex := &sync.Mutex{}
	hub.clientsMutex.Lock()
	hub.clients[conn] = connMutex
	last := hub.last
	hub.clientsMutex.Unlock()
	defer hub.remove(conn)

	if last != nil {
		connMutex.Lock()
		err = conn.WriteMessage(websocket.BinaryMessage, last)
		connMutex.Unlock()
		if err != nil {
			log.Println("WebSocket write error:", err)
			return
		}
	}

	for {
		var c input.Cursor
		if err := conn.ReadJSON(&c); err != nil {
			if websocket.IsUnexpectedCloseError(
				err, websocket.CloseNormalClosure, websocket.CloseGoingAway,
			) {
				log.Println("WebSocket read error:", err)
			}
			return
		}
		if hub.onCursor != nil {
			hub.onCursor(c)
		}
	}
}

func (hub *Hub) remove(conn *websocket.Conn) {
	hub.clientsMutex.Lock()
	delete(hub.clients, conn)
	hub.clientsMutex.Unlock()
}

// Broadcast sends frame to every client. Clients whose writes fail are
// closed and dropped. The number of clients reached is returned.
func (hub *Hub) Broadcast(frame []byte) int {
	hub.clientsMutex.Lock()
	hub.last = frame
	hub.clientsMutex.Unlock()

	hub.clientsMutex.RLock()
	sent := 0
	clientsToRemove := []*websocket.Conn{}
	for client, mutex := range hub.clients {
		mutex.Lock()
		err := client.WriteMessage(websocket.BinaryMessage, frame)
		mutex.Unlock()
		if err != nil {
			log.Println("WebSocket write error:", err)
			client.Close()
			clientsToRemove = append(clientsToRemove, client)
			continue
		}
		sent++
	}
	hub.clientsMutex.RUnlock()

	if len(clientsToRemove) > 0 {
		hub.clientsMutex.Lock()
		for _, client := range clientsToRemove {
			delete(hub.clients, client)
		}
		hub.clientsMutex.Unlock()
	}
	return sent
}
