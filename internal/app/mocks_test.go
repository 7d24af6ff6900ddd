package app

import (
	"context"
	"sync"

	"github.com/smartkickers/kicker/internal/domain"
	"github.com/smartkickers/kicker/internal/ports"
)

// mockLogger implements ports.Logger for testing.
type mockLogger struct{}

func (mockLogger) Debug(msg string, fields ...ports.Field) {}
func (mockLogger) Info(msg string, fields ...ports.Field)  {}
func (mockLogger) Warn(msg string, fields ...ports.Field)  {}
func (mockLogger) Error(msg string, fields ...ports.Field) {}

type goalCall struct {
	team   domain.TeamID
	action domain.ScoreAction
}

// mockAPI implements ports.TableAPI and records calls.
type mockAPI struct {
	mu        sync.Mutex
	resetErr  error
	updateErr error
	resets    int
	updates   []goalCall
}

func (m *mockAPI) UpdateGoal(ctx context.Context, team domain.TeamID, action domain.ScoreAction) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.updates = append(m.updates, goalCall{team, action})
	return m.updateErr
}

func (m *mockAPI) ResetGame(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resets++
	return m.resetErr
}

func (m *mockAPI) Resets() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.resets
}

// mockNotifier records operator messages.
type mockNotifier struct {
	mu       sync.Mutex
	messages []string
}

func (m *mockNotifier) Notify(msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, msg)
}

func (m *mockNotifier) Messages() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string{}, m.messages...)
}

type stateChangeEvent struct {
	previous domain.GameState
	current  domain.GameState
	reason   string
}

// mockEmitter tracks synchronizer events for testing.
type mockEmitter struct {
	mu     sync.Mutex
	states []stateChangeEvent
	scores []domain.ScoreState
	feed   []bool
}

func (m *mockEmitter) OnStateChange(previous, current domain.GameState, reason string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.states = append(m.states, stateChangeEvent{previous, current, reason})
}

func (m *mockEmitter) OnScoreChange(score domain.ScoreState, applied Applied) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scores = append(m.scores, score)
}

func (m *mockEmitter) OnFeedStatus(connected bool, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.feed = append(m.feed, connected)
}

func (m *mockEmitter) States() []stateChangeEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]stateChangeEvent{}, m.states...)
}

func (m *mockEmitter) Feed() []bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]bool{}, m.feed...)
}

// feedItem is either a snapshot or an error returned by Next.
type feedItem struct {
	snap domain.ScoreState
	err  error
}

// fakeStream replays a fixed list of items.
type fakeStream struct {
	mu     sync.Mutex
	items  []feedItem
	closed bool
}

func (s *fakeStream) Next(ctx context.Context) (domain.ScoreState, error) {
	s.mu.Lock()
	if len(s.items) == 0 {
		s.mu.Unlock()
		<-ctx.Done()
		return domain.ScoreState{}, ctx.Err()
	}
	item := s.items[0]
	s.items = s.items[1:]
	s.mu.Unlock()
	return item.snap, item.err
}

func (s *fakeStream) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// connectResult is the outcome of one Connect call.
type connectResult struct {
	stream *fakeStream
	err    error
}

// fakeFeed hands out connect results in order and blocks once they run out.
type fakeFeed struct {
	mu       sync.Mutex
	results  []connectResult
	connects int
}

func (f *fakeFeed) Connect(ctx context.Context) (ports.ScoreStream, error) {
	f.mu.Lock()
	f.connects++
	if len(f.results) == 0 {
		f.mu.Unlock()
		<-ctx.Done()
		return nil, ctx.Err()
	}
	r := f.results[0]
	f.results = f.results[1:]
	f.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	return r.stream, nil
}

func (f *fakeFeed) Connects() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.connects
}
