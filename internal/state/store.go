// Package state holds the active theme and its transitions.
//
// The current state lives in an atomic cell, so State never blocks and never
// observes a half-written value. Every transition takes a ticket when it is
// issued; a transition whose ticket is older than the last committed one is
// discarded, so a slow rehydrate cannot overwrite a newer selection.
package state

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/amicly/appearance/internal/domain"
	"github.com/amicly/appearance/internal/log"
	"github.com/amicly/appearance/internal/themes"
)

// Store is the theme state container.
type Store struct {
	gateway domain.PreferenceStore
	logger  domain.Logger
	newID   func() string

	cell   atomic.Pointer[domain.ThemeState]
	issued atomic.Uint64

	commitMu  sync.Mutex
	committed uint64

	// persistMu orders writes so an older selection never lands after a newer one.
	persistMu sync.Mutex
	persisted uint64

	reads singleflight.Group

	subsMu  sync.Mutex
	subs    map[int]chan domain.ThemeState
	nextSub int
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger. Messages are prefixed with "state: ".
func WithLogger(l domain.Logger) Option {
	return func(s *Store) {
		s.logger = log.Named(l, "state")
	}
}

// WithIDGenerator replaces the correlation id generator.
func WithIDGenerator(fn func() string) Option {
	return func(s *Store) {
		s.newID = fn
	}
}

// New returns a Store holding the default theme.
func New(gateway domain.PreferenceStore, opts ...Option) *Store {
	s := &Store{
		gateway: gateway,
		logger:  log.NopLogger{},
		newID:   uuid.NewString,
		subs:    make(map[int]chan domain.ThemeState),
	}
	for _, opt := range opts {
		opt(s)
	}

	initial := themes.State(domain.DefaultTheme)
	s.cell.Store(&initial)

	return s
}

// State returns the current theme state.
func (s *Store) State() domain.ThemeState {
	return *s.cell.Load()
}

// Dispatch runs a.
func (s *Store) Dispatch(ctx context.Context, a Action) Result {
	switch a := a.(type) {
	case Select:
		return s.Select(a.ID)
	case SelectAndPersist:
		return s.SelectAndPersist(ctx, a.ID)
	case Rehydrate:
		return s.Rehydrate(ctx)
	case Reset:
		return s.Reset(ctx)
	default:
		return Result{State: s.State(), Err: fmt.Errorf("state: unsupported action %T", a)}
	}
}

// Select replaces the current theme. An unknown id is rejected and the
// state is left unchanged.
func (s *Store) Select(id domain.ThemeID) Result {
	ticket := s.issued.Add(1)

	if !id.Valid() {
		return Result{State: s.State(), Err: fmt.Errorf("select %q: %w", id, domain.ErrUnknownTheme)}
	}

	st, applied := s.commit(ticket, id)
	return Result{State: st, Applied: applied, Source: sourceIf(applied, SourceSelection)}
}

// SelectAndPersist selects id and writes it to the preference store.
//
// The selection is committed before the write, so callers see the new theme
// even when storage is slow or broken. A failed write is logged and returned
// in Result.Err wrapped in domain.ErrPersist.
func (s *Store) SelectAndPersist(ctx context.Context, id domain.ThemeID) Result {
	ticket := s.issued.Add(1)
	opID := s.newID()

	if !id.Valid() {
		return Result{State: s.State(), OpID: opID, Err: fmt.Errorf("select %q: %w", id, domain.ErrUnknownTheme)}
	}

	st, applied := s.commit(ticket, id)
	res := Result{State: st, Applied: applied, Source: sourceIf(applied, SourceSelection), OpID: opID}

	s.logger.Debug("[%s] persist %s", opID, id)
	if err := s.persist(ctx, ticket, func(ctx context.Context) error {
		return s.gateway.Set(ctx, domain.ThemeStorageKey, string(id))
	}); err != nil {
		s.logger.Warn("[%s] could not persist theme %s: %v", opID, id, err)
		res.Err = fmt.Errorf("%w: %w", domain.ErrPersist, err)
	}

	return res
}

// Reset deletes the stored theme and selects the default.
func (s *Store) Reset(ctx context.Context) Result {
	ticket := s.issued.Add(1)
	opID := s.newID()

	st, applied := s.commit(ticket, domain.DefaultTheme)
	res := Result{State: st, Applied: applied, Source: sourceIf(applied, SourceDefault), OpID: opID}

	s.logger.Debug("[%s] reset stored theme", opID)
	if err := s.persist(ctx, ticket, func(ctx context.Context) error {
		return s.gateway.Delete(ctx, domain.ThemeStorageKey)
	}); err != nil {
		s.logger.Warn("[%s] could not delete stored theme: %v", opID, err)
		res.Err = fmt.Errorf("%w: %w", domain.ErrPersist, err)
	}

	return res
}

// storedTheme is the outcome of one shared storage read.
type storedTheme struct {
	value  string
	found  bool
	ticket uint64
}

// Rehydrate reads the stored theme and selects it.
//
// An absent value selects the default. A read failure or an unknown value
// also selects the default and is reported in Result.Err (domain.ErrLoad or
// domain.ErrInvalidStored). Concurrent calls share one storage read; the
// shared result commits with the oldest participating ticket.
//
// A caller whose ctx ends before the read completes returns domain.ErrLoad
// and leaves the state unchanged. The read itself is not cancelled, so the
// other callers sharing it still get the stored theme.
func (s *Store) Rehydrate(ctx context.Context) Result {
	ticket := s.issued.Add(1)
	opID := s.newID()

	s.logger.Debug("[%s] rehydrate", opID)

	// The shared read outlives any one caller's context; each caller stops
	// waiting on its own cancellation instead.
	readCtx := context.WithoutCancel(ctx)
	ch := s.reads.DoChan(domain.ThemeStorageKey, func() (any, error) {
		value, found, err := s.gateway.Get(readCtx, domain.ThemeStorageKey)
		return storedTheme{value: value, found: found, ticket: ticket}, err
	})

	var shared singleflight.Result
	select {
	case shared = <-ch:
	case <-ctx.Done():
		s.logger.Debug("[%s] rehydrate abandoned: %v", opID, ctx.Err())
		return Result{State: s.State(), Err: fmt.Errorf("%w: %w", domain.ErrLoad, ctx.Err()), OpID: opID}
	}

	err := shared.Err
	read, _ := shared.Val.(storedTheme)
	if shared.Shared && read.ticket != 0 && read.ticket < ticket {
		ticket = read.ticket
	}

	id := domain.DefaultTheme
	source := SourceDefault
	var resErr error

	switch {
	case err != nil:
		s.logger.Warn("[%s] could not load theme, using %s: %v", opID, id, err)
		resErr = fmt.Errorf("%w: %w", domain.ErrLoad, err)
	case !read.found || read.value == "":
		s.logger.Debug("[%s] no stored theme, using %s", opID, id)
	default:
		parsed, perr := themes.Parse(read.value)
		if perr != nil {
			s.logger.Warn("[%s] ignoring stored theme %q, using %s", opID, read.value, id)
			resErr = fmt.Errorf("%w: %q", domain.ErrInvalidStored, read.value)
			break
		}
		id, source = parsed, SourceStorage
	}

	st, applied := s.commit(ticket, id)
	if !applied {
		s.logger.Debug("[%s] rehydrated %s superseded by %s", opID, id, st.ThemeType)
	}

	return Result{State: st, Applied: applied, Source: sourceIf(applied, source), Err: resErr, OpID: opID}
}

// commit installs id if ticket is not older than the last commit.
// It returns the state current after the attempt and whether id was applied.
func (s *Store) commit(ticket uint64, id domain.ThemeID) (domain.ThemeState, bool) {
	s.commitMu.Lock()
	defer s.commitMu.Unlock()

	if ticket < s.committed {
		return s.State(), false
	}

	// Equal tickets come from callers sharing one rehydrate read.
	if ticket == s.committed {
		return s.State(), s.State().ThemeType == id
	}

	next := themes.State(id)
	s.cell.Store(&next)
	s.committed = ticket
	s.publish(next)

	return next, true
}

// persist runs write unless a newer write has already been made.
func (s *Store) persist(ctx context.Context, ticket uint64, write func(context.Context) error) error {
	s.persistMu.Lock()
	defer s.persistMu.Unlock()

	if ticket < s.persisted {
		return nil
	}
	if err := write(ctx); err != nil {
		return err
	}
	s.persisted = ticket
	return nil
}

// Subscribe returns a channel receiving every committed state, and a func
// that cancels the subscription and closes the channel.
// A slow reader skips intermediate states but always receives the latest.
func (s *Store) Subscribe() (<-chan domain.ThemeState, func()) {
	ch := make(chan domain.ThemeState, 1)

	s.subsMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = ch
	s.subsMu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			s.subsMu.Lock()
			defer s.subsMu.Unlock()
			delete(s.subs, id)
			close(ch)
		})
	}

	return ch, cancel
}

// publish is called with commitMu held, so subscribers see commits in order.
func (s *Store) publish(st domain.ThemeState) {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()

	for _, ch := range s.subs {
		select {
		case ch <- st:
		default:
			select {
			case <-ch:
			default:
			}
			ch <- st
		}
	}
}

func sourceIf(applied bool, src Source) Source {
	if applied {
		return src
	}
	return SourceNone
}
