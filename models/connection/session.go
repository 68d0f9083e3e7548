package connection

import (
	"encoding/json"
	"log"
	"net"
	"time"

	"github.com/gorilla/websocket"
)

const (
	maxWsRetries  uint8         = 2
	backOffFactor time.Duration = time.Second
)

// Session wraps one websocket connection. It is used by a single
// goroutine, the one driving the session's game.
type Session struct {
	id        string
	conn      *websocket.Conn
	createdAt time.Time
}

func NewSession(id string, conn *websocket.Conn) *Session {
	return &Session{
		id:        id,
		conn:      conn,
		createdAt: time.Now(),
	}
}

func (s *Session) Id() string {
	return s.id
}

func (s *Session) Age() time.Duration {
	return time.Since(s.createdAt)
}

func (s *Session) Close() error {
	return s.conn.Close()
}

func (s *Session) onConnErr(err error) uint8 {
	if netErr, ok := err.(net.Error); ok && netErr.Timeout() {
		log.Println("timeout error:", err)
		return ConnLoopRetry
	}

	if websocket.IsCloseError(err, websocket.CloseTryAgainLater) {
		log.Println("high server load/traffic error:", err)
		return ConnLoopRetry
	}

	if websocket.IsCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
		log.Println("close error:", err)
		return ConnLoopBreak
	}

	log.Println("unexpected error:", err)
	return ConnLoopBreak
}

// WriteJSON writes msg, retrying with a linear back off on transient errors.
func (s *Session) WriteJSON(msg interface{}) error {
	var retries uint8

	for {
		err := s.conn.WriteJSON(msg)
		if err == nil {
			return nil
		}

		if s.onConnErr(err) == ConnLoopRetry && retries < maxWsRetries {
			retries++
			log.Printf("writing json failed to ws [%s]; retrying... (retry no. %d)\n", s.conn.RemoteAddr().String(), retries)
			time.Sleep(time.Duration(retries) * backOffFactor)
			continue
		}
		return NewConnErr(ConnLoopBreak).AddDesc("breaking write loop due to: " + err.Error())
	}
}

// ReadSignal blocks until a frame arrives and returns its code with the
// raw frame. Frames without a "code" field are answered with
// CodeSignalAbsent and skipped.
func (s *Session) ReadSignal() (uint8, []byte, error) {
	var retries uint8

	for {
		// A WebSocket frame can be one of 6 types: text=1, binary=2, ping=9, pong=10, close=8 and continuation=0
		// https://www.rfc-editor.org/rfc/rfc6455.html#section-11.8
		_, payload, err := s.conn.ReadMessage()
		if err != nil {
			if s.onConnErr(err) == ConnLoopRetry && retries < maxWsRetries {
				retries++
				log.Printf("failed to read from ws conn [%s]; retrying... (retry no. %d)\n", s.conn.RemoteAddr().String(), retries)
				time.Sleep(time.Duration(retries) * backOffFactor)
				continue
			}
			return 0, nil, NewConnErr(ConnLoopBreak).AddDesc("breaking read loop due to: " + err.Error())
		}

		var signal struct {
			Code *uint8 `json:"code"`
		}
		if err := json.Unmarshal(payload, &signal); err != nil || signal.Code == nil {
			msg := NewErrorMessage(CodeSignalAbsent, "incoming req payload must contain 'code' field", "")
			if err := s.WriteJSON(msg); err != nil {
				return 0, nil, err
			}
			continue
		}

		return *signal.Code, payload, nil
	}
}
