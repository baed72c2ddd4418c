package websocket

import (
    "log"
    "sync"

    "github.com/gofiber/contrib/websocket"
    "github.com/google/uuid"
    "github.com/jakendu/tutorbook/models"
)

type Client struct {
    UserID uuid.UUID
    Conn   *websocket.Conn
}

var clients = make(map[uuid.UUID]*websocket.Conn)
var clientsMu sync.RWMutex
var Register = make(chan *Client)
var Unregister = make(chan *Client)
var Notify = make(chan *models.Notification, 16)

// RunHub delivers notifications to connected recipients. Offline recipients
// simply miss the push; the notification row itself is persisted separately.
func RunHub() {
    for {
        select {
        case client := <-Register:
            log.Printf("Client registered: %s", client.UserID)
            clientsMu.Lock()
            clients[client.UserID] = client.Conn
            clientsMu.Unlock()
        case client := <-Unregister:
            log.Printf("Client unregistered: %s", client.UserID)
            clientsMu.Lock()
            if conn, ok := clients[client.UserID]; ok && conn == client.Conn {
                delete(clients, client.UserID)
            }
            clientsMu.Unlock()
        case notification := <-Notify:
            clientsMu.RLock()
            conn, ok := clients[notification.RecipientID]
            clientsMu.RUnlock()
            if !ok {
                continue
            }
            if err := conn.WriteJSON(notification); err != nil {
                log.Printf("Error pushing notification to client %s: %v", notification.RecipientID, err)
                conn.Close()
                clientsMu.Lock()
                delete(clients, notification.RecipientID)
                clientsMu.Unlock()
            }
        }
    }
}

// Push hands a notification to the hub without blocking the caller.
func Push(notification *models.Notification) {
    select {
    case Notify <- notification:
    default:
        log.Printf("Notification hub busy, dropping push for %s", notification.RecipientID)
    }
}
