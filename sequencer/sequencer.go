// Copyright (c) 2025 Simon Maree.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package sequencer

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/simonmaree/feedback-kiosk/models"
	"github.com/simonmaree/feedback-kiosk/realtime"
)

var ErrSessionNotFound = errors.New("kiosk session not found")

// SessionTTL is how long an idle kiosk session survives before the
// sweeper removes it.
const SessionTTL = 30 * time.Minute

// LoadFunc fetches the active question subset, ordered oldest-first.
// The kiosk deliberately orders by created_at, not by the admin
// display_order.
type LoadFunc func() ([]models.Question, error)

// session is one kiosk visitor's walk through the active questions.
// States: presenting (index in range) and exhausted (index past the end).
// A session with no questions is exhausted from the start.
type session struct {
	location string
	index    int
	lastSeen time.Time
}

// Registry tracks live kiosk sessions over a shared active-question
// snapshot. Any change to the questions table refreshes the snapshot and
// resets every session to the first question.
type Registry struct {
	load LoadFunc

	mu        sync.Mutex
	questions []models.Question
	sessions  map[string]*session
	sub       *realtime.Subscription
	done      chan struct{}
}

// NewRegistry loads the initial active-question snapshot.
func NewRegistry(load LoadFunc) (*Registry, error) {
	questions, err := load()
	if err != nil {
		return nil, fmt.Errorf("failed to load active questions: %w", err)
	}

	return &Registry{
		load:      load,
		questions: questions,
		sessions:  make(map[string]*session),
	}, nil
}

// Start creates a new kiosk session and returns its token plus the first
// question. question is nil and exhausted is true when no questions are
// active.
func (r *Registry) Start(location string) (token string, question *models.Question, exhausted bool) {
	token = uuid.NewString()

	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[token] = &session{
		location: location,
		lastSeen: time.Now(),
	}

	question, exhausted = r.currentLocked(r.sessions[token])
	return token, question, exhausted
}

// Current returns the question the session is presenting, or exhausted
// when the session walked past the last question. ErrSessionNotFound for
// unknown or expired tokens.
func (r *Registry) Current(token string) (question *models.Question, exhausted bool, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[token]
	if !ok {
		return nil, false, ErrSessionNotFound
	}
	s.lastSeen = time.Now()

	question, exhausted = r.currentLocked(s)
	return question, exhausted, nil
}

// Advance moves the session to the next question. Returns advanced=false
// once there is no next question; the session is then exhausted and
// Current yields no question.
func (r *Registry) Advance(token string) (advanced bool, question *models.Question, exhausted bool, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[token]
	if !ok {
		return false, nil, false, ErrSessionNotFound
	}
	s.lastSeen = time.Now()

	if s.index < len(r.questions)-1 {
		s.index++
		question, exhausted = r.currentLocked(s)
		return true, question, exhausted, nil
	}

	s.index = len(r.questions)
	return false, nil, true, nil
}

// currentLocked resolves the session's current question. Caller holds mu.
func (r *Registry) currentLocked(s *session) (*models.Question, bool) {
	if s.index >= len(r.questions) {
		return nil, true
	}
	q := r.questions[s.index]
	return &q, false
}

// Refresh reloads the active-question snapshot and resets every session
// to the first question. Called when the questions table changes; a
// session mid-flow starts over against the new set.
func (r *Registry) Refresh() error {
	questions, err := r.load()
	if err != nil {
		return fmt.Errorf("failed to refresh active questions: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.questions = questions
	for _, s := range r.sessions {
		s.index = 0
	}

	slog.Info("kiosk sessions reset", "active_questions", len(questions), "sessions", len(r.sessions))
	return nil
}

// Listen subscribes to the hub and refreshes on question changes. It also
// sweeps idle sessions. Stop with Close.
func (r *Registry) Listen(hub *realtime.Hub) {
	sub := hub.Subscribe()
	done := make(chan struct{})

	r.mu.Lock()
	r.sub = sub
	r.done = done
	r.mu.Unlock()

	// The goroutine works off its own copies; Close mutates the fields
	// under mu without touching a running listener.
	go func() {
		sweep := time.NewTicker(SessionTTL / 2)
		defer sweep.Stop()

		for {
			select {
			case ev, ok := <-sub.C:
				if !ok {
					return
				}
				if ev.Table != realtime.TableQuestions {
					continue
				}
				if err := r.Refresh(); err != nil {
					slog.Error("kiosk refresh failed", "error", err)
				}
			case <-sweep.C:
				r.sweep(SessionTTL)
			case <-done:
				return
			}
		}
	}()
}

// Close releases the hub subscription and stops the listener. Safe to
// call more than once.
func (r *Registry) Close() {
	r.mu.Lock()
	sub, done := r.sub, r.done
	r.sub, r.done = nil, nil
	r.mu.Unlock()

	if done != nil {
		close(done)
	}
	if sub != nil {
		sub.Unsubscribe()
	}
}

// sweep drops sessions idle longer than ttl.
func (r *Registry) sweep(ttl time.Duration) {
	cutoff := time.Now().Add(-ttl)

	r.mu.Lock()
	defer r.mu.Unlock()

	for token, s := range r.sessions {
		if s.lastSeen.Before(cutoff) {
			delete(r.sessions, token)
			slog.Info("kiosk session expired", "location", s.location, "idle_since", s.lastSeen)
		}
	}
}
