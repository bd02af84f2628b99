package websocket

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"BoucheriePos/app/models"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/grandcat/zeroconf"
)

// MessageType represents the type of WebSocket message
type MessageType string

const (
	TypeCartUpdate    MessageType = "cart_update"
	TypeSaleCompleted MessageType = "sale_completed"
	TypeHeartbeat     MessageType = "heartbeat"
)

// Message represents a WebSocket message pushed to customer displays
type Message struct {
	Type      MessageType     `json:"type"`
	Timestamp time.Time       `json:"timestamp"`
	Data      json.RawMessage `json:"data"`
}

// CartUpdateData carries the running cart shown on the display
type CartUpdateData struct {
	Items []models.CartItem `json:"items"`
	Total int64             `json:"total"`
}

// SaleCompletedData carries the final figures of a completed sale
type SaleCompletedData struct {
	TicketNumber   string `json:"ticket_number"`
	Total          int64  `json:"total"`
	AmountReceived int64  `json:"amount_received"`
	Change         int64  `json:"change"`
}

// Client represents a connected display
type Client struct {
	ID          string
	Connection  *websocket.Conn
	Send        chan []byte
	ConnectedAt time.Time
}

// Server is the websocket hub customer displays connect to. It only
// pushes terminal state outward; displays send nothing but pings.
type Server struct {
	clients    map[string]*Client
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
	upgrader   websocket.Upgrader
	mu         sync.RWMutex
	port       string
	mdns       *zeroconf.Server
}

// NewServer creates a new display server listening on the given address
// (e.g. ":8080").
func NewServer(port string) *Server {
	return &Server{
		clients:    make(map[string]*Client),
		broadcast:  make(chan []byte, 16),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		port:       port,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				// Displays live on the local network
				return true
			},
		},
	}
}

// Start runs the hub, registers the mDNS service so displays find the
// terminal without configuration, and serves until the listener fails.
func (s *Server) Start() error {
	go s.run()

	if err := s.registerMDNS(); err != nil {
		log.Printf("Warning: mDNS registration failed, displays need manual setup: %v", err)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/health", s.handleHealth)

	log.Printf("Customer display server listening on %s", s.port)
	return http.ListenAndServe(s.port, mux)
}

// Stop shuts down the mDNS advertisement.
func (s *Server) Stop() {
	if s.mdns != nil {
		s.mdns.Shutdown()
	}
}

func (s *Server) registerMDNS() error {
	var port int
	if _, err := fmt.Sscanf(s.port, ":%d", &port); err != nil {
		return fmt.Errorf("cannot derive mDNS port from %q: %w", s.port, err)
	}

	server, err := zeroconf.Register(
		"BoucheriePos",
		"_boucheriepos._tcp",
		"local.",
		port,
		[]string{"version=1", "role=display-feed"},
		nil,
	)
	if err != nil {
		return err
	}
	s.mdns = server
	return nil
}

func (s *Server) run() {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case client := <-s.register:
			s.mu.Lock()
			s.clients[client.ID] = client
			s.mu.Unlock()
			log.Printf("Display connected: %s", client.ID)

		case client := <-s.unregister:
			s.mu.Lock()
			if _, ok := s.clients[client.ID]; ok {
				delete(s.clients, client.ID)
				close(client.Send)
			}
			s.mu.Unlock()
			log.Printf("Display disconnected: %s", client.ID)

		case payload := <-s.broadcast:
			s.mu.RLock()
			for _, client := range s.clients {
				select {
				case client.Send <- payload:
				default:
					// Slow display, drop the frame rather than block the hub
				}
			}
			s.mu.RUnlock()

		case <-ticker.C:
			s.send(TypeHeartbeat, struct{}{})
		}
	}
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Display upgrade failed: %v", err)
		return
	}

	client := &Client{
		ID:          uuid.NewString(),
		Connection:  conn,
		Send:        make(chan []byte, 16),
		ConnectedAt: time.Now(),
	}
	s.register <- client

	go s.writePump(client)
	go s.readPump(client)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	s.mu.RLock()
	count := len(s.clients)
	s.mu.RUnlock()
	fmt.Fprintf(w, `{"status":"ok","displays":%d}`, count)
}

func (s *Server) writePump(client *Client) {
	defer client.Connection.Close()
	for payload := range client.Send {
		if err := client.Connection.WriteMessage(websocket.TextMessage, payload); err != nil {
			return
		}
	}
}

// readPump discards incoming frames; it exists to notice disconnects.
func (s *Server) readPump(client *Client) {
	defer func() {
		s.unregister <- client
		client.Connection.Close()
	}()
	for {
		if _, _, err := client.Connection.ReadMessage(); err != nil {
			return
		}
	}
}

func (s *Server) send(msgType MessageType, data interface{}) {
	raw, err := json.Marshal(data)
	if err != nil {
		log.Printf("Warning: could not serialize %s message: %v", msgType, err)
		return
	}
	payload, err := json.Marshal(Message{
		Type:      msgType,
		Timestamp: time.Now(),
		Data:      raw,
	})
	if err != nil {
		log.Printf("Warning: could not serialize %s envelope: %v", msgType, err)
		return
	}
	s.broadcast <- payload
}

// BroadcastCartUpdate pushes the running cart to all displays.
func (s *Server) BroadcastCartUpdate(items []models.CartItem, total int64) {
	s.send(TypeCartUpdate, CartUpdateData{Items: items, Total: total})
}

// BroadcastSaleCompleted pushes the final figures of a sale so the display
// can show the change due.
func (s *Server) BroadcastSaleCompleted(sale *models.Sale) {
	s.send(TypeSaleCompleted, SaleCompletedData{
		TicketNumber:   sale.TicketNumber(),
		Total:          sale.Total,
		AmountReceived: sale.AmountReceived,
		Change:         sale.Change,
	})
}
