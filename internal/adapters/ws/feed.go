// Package ws implements the live score feed over WebSocket.
package ws

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/smartkickers/kicker/internal/domain"
	"github.com/smartkickers/kicker/internal/ports"
)

const scorePath = "/score"

// DefaultGreeting is the payload sent once the connection opens.
// The table ignores its content.
const DefaultGreeting = "Hello from client"

// FeedConfig holds configuration for the WebSocket feed.
type FeedConfig struct {
	// BaseURL is the ws:// or wss:// base; "/score" is appended.
	BaseURL          string
	Greeting         string
	HandshakeTimeout time.Duration
	WriteTimeout     time.Duration
	MaxMessageSize   int64
}

// DefaultFeedConfig returns default WebSocket settings.
func DefaultFeedConfig(baseURL string) FeedConfig {
	return FeedConfig{
		BaseURL:          baseURL,
		Greeting:         DefaultGreeting,
		HandshakeTimeout: 5 * time.Second,
		WriteTimeout:     5 * time.Second,
		MaxMessageSize:   1024,
	}
}

// Feed implements ports.ScoreFeed using gorilla/websocket.
type Feed struct {
	config FeedConfig
	dialer *websocket.Dialer
	logger ports.Logger
}

// NewFeed creates a new WebSocket score feed.
func NewFeed(config FeedConfig, logger ports.Logger) *Feed {
	return &Feed{
		config: config,
		dialer: &websocket.Dialer{
			HandshakeTimeout: config.HandshakeTimeout,
		},
		logger: logger,
	}
}

// URL returns the full feed endpoint.
func (f *Feed) URL() string {
	return strings.TrimSuffix(f.config.BaseURL, "/") + scorePath
}

// Connect dials the feed and sends the greeting.
func (f *Feed) Connect(ctx context.Context) (ports.ScoreStream, error) {
	url := f.URL()
	conn, resp, err := f.dialer.DialContext(ctx, url, nil)
	if err != nil {
		if resp != nil {
			return nil, fmt.Errorf("dial %s: %w (status %d)", url, err, resp.StatusCode)
		}
		return nil, fmt.Errorf("dial %s: %w", url, err)
	}

	if f.config.MaxMessageSize > 0 {
		conn.SetReadLimit(f.config.MaxMessageSize)
	}

	if f.config.Greeting != "" {
		if f.config.WriteTimeout > 0 {
			_ = conn.SetWriteDeadline(time.Now().Add(f.config.WriteTimeout))
		}
		if err := conn.WriteMessage(websocket.TextMessage, []byte(f.config.Greeting)); err != nil {
			conn.Close()
			return nil, fmt.Errorf("send greeting: %w", err)
		}
	}

	f.logger.Debug("feed dialed", ports.String("url", url))
	return newStream(ctx, conn), nil
}

// stream implements ports.ScoreStream for one connection.
type stream struct {
	conn      *websocket.Conn
	closeOnce sync.Once
	done      chan struct{}
}

// newStream ties the connection to ctx: canceling ctx closes the socket so a
// blocked read returns.
func newStream(ctx context.Context, conn *websocket.Conn) *stream {
	s := &stream{conn: conn, done: make(chan struct{})}
	go func() {
		select {
		case <-ctx.Done():
			s.Close()
		case <-s.done:
		}
	}()
	return s
}

// wireScore is the message pushed by the table.
type wireScore struct {
	BlueScore  *int `json:"blueScore"`
	WhiteScore *int `json:"whiteScore"`
}

// Next reads the next snapshot.
func (s *stream) Next(ctx context.Context) (domain.ScoreState, error) {
	for {
		msgType, data, err := s.conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return domain.ScoreState{}, ctx.Err()
			}
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return domain.ScoreState{}, domain.ErrFeedClosed
			}
			return domain.ScoreState{}, fmt.Errorf("read score: %w", err)
		}
		if msgType != websocket.TextMessage && msgType != websocket.BinaryMessage {
			continue
		}
		return decodeScore(data)
	}
}

func decodeScore(data []byte) (domain.ScoreState, error) {
	var msg wireScore
	if err := json.Unmarshal(data, &msg); err != nil {
		return domain.ScoreState{}, fmt.Errorf("%w: decode %q: %v", domain.ErrInvalidScore, truncate(data), err)
	}
	if msg.BlueScore == nil || msg.WhiteScore == nil {
		return domain.ScoreState{}, fmt.Errorf("%w: missing score in %q", domain.ErrInvalidScore, truncate(data))
	}
	score := domain.ScoreState{BlueScore: *msg.BlueScore, WhiteScore: *msg.WhiteScore}
	if err := score.Validate(); err != nil {
		return domain.ScoreState{}, err
	}
	return score, nil
}

func truncate(data []byte) string {
	const max = 64
	if len(data) > max {
		return string(data[:max]) + "..."
	}
	return string(data)
}

// Close sends a close frame and releases the connection. Safe to call twice.
func (s *stream) Close() error {
	var err error
	s.closeOnce.Do(func() {
		close(s.done)
		msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
		_ = s.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second))
		err = s.conn.Close()
		if errors.Is(err, websocket.ErrCloseSent) {
			err = nil
		}
	})
	return err
}
