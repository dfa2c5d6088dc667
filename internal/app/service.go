package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jaminalder/tictactoe-time-travel/internal/domain"
	"github.com/jaminalder/tictactoe-time-travel/internal/repository"
	"github.com/jaminalder/tictactoe-time-travel/internal/view"
)

// Errors exposed by the service layer.
var (
	ErrNotFound = errors.New("game not found")
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, session *domain.Session) error
	GetByID(ctx context.Context, id string) (*domain.Session, error)
}

type subscriber struct {
	mu     sync.Mutex
	ch     chan []byte
	closed bool
}

// send delivers b without blocking. It reports false when the buffer is
// full; sends to a closed subscriber are discarded.
func (s *subscriber) send(b []byte) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return true
	}
	select {
	case s.ch <- b:
		return true
	default:
		return false
	}
}

func (s *subscriber) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		s.closed = true
		close(s.ch)
	}
}

// Service runs game actions for every session and pushes re-rendered state
// to subscribers.
type Service struct {
	log    *slog.Logger
	repo   gameRepo
	now    func() time.Time
	mu     sync.Mutex
	subs   map[string]map[*subscriber]struct{}
	render func(domain.Session) []byte
}

// NewService creates a service backed by repo. Broadcasts carry no payload
// until SetRenderer is called.
func NewService(logger *slog.Logger, repo gameRepo) *Service {
	return &Service{
		log:    logger.With("component", "service"),
		repo:   repo,
		now:    time.Now,
		subs:   make(map[string]map[*subscriber]struct{}),
		render: func(domain.Session) []byte { return nil },
	}
}

// SetRenderer replaces the broadcast renderer function.
func (s *Service) SetRenderer(renderer func(domain.Session) []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if renderer == nil {
		s.render = func(domain.Session) []byte { return nil }
		return
	}
	s.render = renderer
}

// CreateGame creates and stores a new session.
func (s *Service) CreateGame(ctx context.Context) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session := domain.NewSession(uuid.NewString(), s.now())
	if err := s.repo.CreateOrUpdate(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to store game: %w", err)
	}
	s.log.Debug("game created", "game_id", session.ID)
	return session, nil
}

// Get returns the session with the given id.
func (s *Service) Get(ctx context.Context, id string) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked(ctx, id)
}

// Play clicks cell on the displayed board. Clicks the board ignores return
// the session unchanged and a nil error.
func (s *Service) Play(ctx context.Context, id string, cell int) (*domain.Session, error) {
	return s.apply(ctx, id, func(g *domain.Game) bool {
		return view.Play(g, cell)
	})
}

// Jump moves the session to an earlier or later move. Moves outside the
// history are ignored.
func (s *Service) Jump(ctx context.Context, id string, move int) (*domain.Session, error) {
	return s.apply(ctx, id, func(g *domain.Game) bool {
		return g.JumpTo(move) == nil
	})
}

// ToggleOrder flips the order of the session's move list.
func (s *Service) ToggleOrder(ctx context.Context, id string) (*domain.Session, error) {
	return s.apply(ctx, id, func(g *domain.Game) bool {
		g.ToggleOrder()
		return true
	})
}

// apply runs action against the stored game, saves it when action reports a
// change and fans the rendered result out to subscribers.
func (s *Service) apply(ctx context.Context, id string, action func(*domain.Game) bool) (*domain.Session, error) {
	s.mu.Lock()
	session, err := s.loadLocked(ctx, id)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	if !action(&session.Game) {
		s.mu.Unlock()
		return session, nil
	}
	session.Updated = s.now()
	if err = s.repo.CreateOrUpdate(ctx, session); err != nil {
		s.mu.Unlock()
		return nil, fmt.Errorf("failed to store game: %w", err)
	}

	// Snapshot state and subscribers
	subs := s.copySubsLocked(id)
	payload := s.render(*session)
	s.mu.Unlock()

	s.broadcast(id, subs, payload)
	return session, nil
}

func (s *Service) loadLocked(ctx context.Context, id string) (*domain.Session, error) {
	session, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrGameNotFound) {
		s.log.Debug("game not found or expired", "game_id", id)
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load game %s: %w", id, err)
	}
	return session, nil
}

// broadcast sends payload to every subscriber without blocking; slow
// subscribers are closed and dropped.
func (s *Service) broadcast(id string, subs map[*subscriber]struct{}, payload []byte) {
	var toDrop []*subscriber
	for sub := range subs {
		if !sub.send(payload) {
			sub.close()
			toDrop = append(toDrop, sub)
		}
	}
	if len(toDrop) == 0 {
		return
	}
	s.mu.Lock()
	for _, sub := range toDrop {
		if set, ok := s.subs[id]; ok {
			delete(set, sub)
		}
	}
	s.mu.Unlock()
	s.log.Debug("dropped slow subscribers", "game_id", id, "count", len(toDrop))
}

// Subscribe registers a subscriber for a game. Returns a channel and an unsubscribe func.
func (s *Service) Subscribe(ctx context.Context, id string) (<-chan []byte, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	set := s.subs[id]
	if set == nil {
		set = make(map[*subscriber]struct{})
		s.subs[id] = set
	}
	sub := &subscriber{ch: make(chan []byte, 1)}
	set[sub] = struct{}{}

	unsubOnce := &sync.Once{}
	unsub := func() {
		unsubOnce.Do(func() {
			s.mu.Lock()
			if set, ok := s.subs[id]; ok {
				delete(set, sub)
				if len(set) == 0 {
					delete(s.subs, id)
				}
			}
			s.mu.Unlock()
			sub.close()
		})
	}
	go func() {
		<-ctx.Done()
		unsub()
	}()
	return sub.ch, unsub
}

func (s *Service) copySubsLocked(id string) map[*subscriber]struct{} {
	out := make(map[*subscriber]struct{})
	if set, ok := s.subs[id]; ok {
		for k := range set {
			out[k] = struct{}{}
		}
	}
	return out
}
