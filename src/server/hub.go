package server

import (
	"encoding/json"
	"net/http"

	"mission-stats/src/models"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// -----------------------------------------------------------------------------
// Hub Pattern Implementation
// -----------------------------------------------------------------------------

// handleWebsockets is the main Hub loop
func (s *APIServer) handleWebsockets() {
	for {
		select {
		case <-s.done:
			for client := range s.clients {
				s.dropClient(client)
			}
			return

		case client := <-s.register:
			s.clients[client] = struct{}{}
			s.connections.Store(int64(len(s.clients)))
			// Send initial state on connect
			s.stateMutex.RLock()
			initial := s.latestState
			s.stateMutex.RUnlock()
			initial.Type = "INITIAL"
			client.send <- filterFor(initial, client.Mission())

		case client := <-s.subscribe:
			if _, ok := s.clients[client]; !ok {
				continue
			}
			s.stateMutex.RLock()
			response := filterFor(s.latestState, client.Mission())
			s.stateMutex.RUnlock()
			response.Type = "INITIAL"
			select {
			case client.send <- response:
			default:
				s.dropClient(client)
			}

		case client := <-s.unregister:
			if _, ok := s.clients[client]; ok {
				s.dropClient(client)
			}

		case message := <-s.broadcast:
			s.UpdateAllDatas(message)

			for client := range s.clients {
				select {
				case client.send <- filterFor(message, client.Mission()):
				default:
					// Slow consumer, disconnect so the hub never blocks
					s.dropClient(client)
				}
			}
		}
	}
}

// -----------------------------------------------------------------------------

func (s *APIServer) dropClient(client *Client) {
	delete(s.clients, client)
	close(client.send)
	s.connections.Store(int64(len(s.clients)))
}

// -----------------------------------------------------------------------------
// Data Exchange Interface Implementation
// -----------------------------------------------------------------------------

// UpdateAllDatas replaces the cached snapshot without notifying clients
func (s *APIServer) UpdateAllDatas(data models.MLatestData) {
	if data.Videos == nil {
		data.Videos = []models.MVideoStat{}
	}

	s.stateMutex.Lock()
	s.latestState = data
	s.stateMutex.Unlock()

	s.snapshots.Append(data)
}

// -----------------------------------------------------------------------------

// Broadcast queues a snapshot for every connected client
func (s *APIServer) Broadcast(message models.MLatestData) {
	if message.Type == "" {
		message.Type = "UPDATE"
	}
	select {
	case s.broadcast <- message:
	case <-s.done:
	}
}

// -----------------------------------------------------------------------------

// LatestState returns a copy of the cached snapshot
func (s *APIServer) LatestState() models.MLatestData {
	s.stateMutex.RLock()
	defer s.stateMutex.RUnlock()
	return s.latestState
}

// -----------------------------------------------------------------------------
// WebSocket Handlers
// -----------------------------------------------------------------------------

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// -----------------------------------------------------------------------------

func (s *APIServer) handleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.Logger.Info("Failed to upgrade websocket: %v", err)
		return
	}

	client := &Client{
		hub:  s,
		conn: conn,
		// Buffered channel to prevent blocking the Hub loop
		send: make(chan interface{}, 256),
	}
	client.SetMission(c.Query("mission"))

	select {
	case s.register <- client:
	case <-s.done:
		conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()
}

// -----------------------------------------------------------------------------
// Client Message Handling
// -----------------------------------------------------------------------------

func (s *APIServer) HandleClientMessage(client *Client, message []byte) {
	var cmd models.MSubscribeCommand
	if err := json.Unmarshal(message, &cmd); err != nil {
		s.Logger.Info("Failed to parse client command: %v, disconnecting client", err)
		client.conn.Close()
		return
	}

	if cmd.Command != "subscribe" {
		return
	}

	if cmd.Mission != "" {
		if _, err := s.Missions.Get(cmd.Mission); err != nil {
			s.Logger.Info("Subscribe to unknown mission %q ignored", cmd.Mission)
			return
		}
	}
	client.SetMission(cmd.Mission)

	// The hub owns client.send, so the fresh snapshot is sent from there
	select {
	case s.subscribe <- client:
	case <-s.done:
	}
}
