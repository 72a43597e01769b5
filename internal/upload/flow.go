// Package upload implements the simulated upload pipeline: a moderation
// check, a ticker-driven mock transfer, and publication into the content
// store. No real media is transferred.
package upload

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/utgstodio-dev/UTG-Stodio/internal/content"
	"github.com/utgstodio-dev/UTG-Stodio/internal/moderation"
	"github.com/utgstodio-dev/UTG-Stodio/internal/platform/analytics"
)

type State string

const (
	StateIdle      State = "idle"
	StateChecking  State = "checking"
	StateViolation State = "violation" // terminal, nothing stored
	StateSafe      State = "safe"
	StateUploading State = "uploading"
	StateComplete  State = "complete"
	StateFailed    State = "failed" // store rejected the item, terminal
)

var (
	ErrNoMedia     = errors.New("upload: media reference required")
	ErrInvalidKind = errors.New("upload: invalid content kind")
)

// Request describes one upload attempt.
type Request struct {
	Kind        content.Kind
	MediaURL    string
	Description string
	Owner       content.User
}

// Status is an observable snapshot of an in-flight or finished upload.
type Status struct {
	ID        string  `json:"id"`
	State     State   `json:"state"`
	Progress  float64 `json:"progress"`
	ContentID string  `json:"content_id,omitempty"`
}

// Flow tracks a single upload from checking to a terminal state. Once
// started it cannot be cancelled; navigating away does not abort it.
type Flow struct {
	id string

	mu        sync.Mutex
	state     State
	progress  float64
	contentID string

	done chan struct{}
}

func (f *Flow) ID() string { return f.id }

// Done is closed when the flow reaches a terminal state.
func (f *Flow) Done() <-chan struct{} { return f.done }

func (f *Flow) Status() Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	return Status{ID: f.id, State: f.state, Progress: f.progress, ContentID: f.contentID}
}

func (f *Flow) setState(s State) {
	f.mu.Lock()
	f.state = s
	f.mu.Unlock()
}

func (f *Flow) setProgress(p float64) {
	f.mu.Lock()
	f.progress = p
	f.mu.Unlock()
}

func (f *Flow) finish(s State, contentID string) {
	f.mu.Lock()
	f.state = s
	f.contentID = contentID
	f.mu.Unlock()
	close(f.done)
}

// Options tunes the simulated transfer. Zero values get defaults.
type Options struct {
	// TickInterval is the simulated-transfer tick. Default 200ms.
	TickInterval time.Duration
	// Step returns the progress increment applied per tick.
	// Default is a uniform random value in [0, 10).
	Step func() float64
	// OnComplete runs after a flow publishes its content item.
	OnComplete func(req Request, published content.Content)
}

// Manager starts upload flows and keeps them addressable for status polling.
type Manager struct {
	store   content.Store
	checker *moderation.Checker
	events  *analytics.Publisher
	log     *zap.Logger
	opts    Options

	mu    sync.RWMutex
	flows map[string]*Flow
}

func NewManager(store content.Store, checker *moderation.Checker, events *analytics.Publisher, log *zap.Logger, opts Options) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	if opts.TickInterval <= 0 {
		opts.TickInterval = 200 * time.Millisecond
	}
	if opts.Step == nil {
		opts.Step = func() float64 { return rand.Float64() * 10 }
	}
	return &Manager{
		store:   store,
		checker: checker,
		events:  events,
		log:     log,
		opts:    opts,
		flows:   make(map[string]*Flow),
	}
}

// Start validates req and launches the flow. The returned Flow is already
// in StateChecking; the rest runs in the background and is observable via
// Status and Done.
func (m *Manager) Start(_ context.Context, req Request) (*Flow, error) {
	if req.MediaURL == "" {
		return nil, ErrNoMedia
	}
	if !req.Kind.Valid() {
		return nil, ErrInvalidKind
	}

	f := &Flow{id: uuid.NewString(), state: StateChecking, done: make(chan struct{})}
	m.mu.Lock()
	m.flows[f.id] = f
	m.mu.Unlock()

	// Deliberately detached from the request context: an upload is not
	// cancellable once started.
	go m.run(context.Background(), f, req)
	return f, nil
}

func (m *Manager) Get(id string) (*Flow, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	f, ok := m.flows[id]
	return f, ok
}

func (m *Manager) run(ctx context.Context, f *Flow, req Request) {
	if m.checker.Check(ctx, req.Description) == moderation.VerdictViolation {
		m.log.Info("upload rejected by copyright check", zap.String("upload_id", f.id))
		m.events.Publish(analytics.SubjectUploadRejected, "upload_rejected", req.Owner.ID, map[string]any{
			"upload_id": f.id,
		})
		f.finish(StateViolation, "")
		return
	}

	f.setState(StateSafe)
	f.setState(StateUploading)

	ticker := time.NewTicker(m.opts.TickInterval)
	defer ticker.Stop()

	var progress float64
	for range ticker.C {
		progress += m.opts.Step()
		if progress >= 100 {
			break
		}
		f.setProgress(progress)
	}
	f.setProgress(100)

	published, err := m.store.Prepend(ctx, buildContent(req))
	if err != nil {
		m.log.Error("publish uploaded content", zap.String("upload_id", f.id), zap.Error(err))
		f.finish(StateFailed, "")
		return
	}

	m.log.Info("upload complete",
		zap.String("upload_id", f.id),
		zap.String("content_id", published.ID),
		zap.String("kind", string(published.Kind)))
	m.events.Publish(analytics.SubjectUploadCompleted, "upload_completed", req.Owner.ID, map[string]any{
		"upload_id":  f.id,
		"content_id": published.ID,
		"kind":       string(published.Kind),
	})
	m.events.Publish(analytics.SubjectContentPublished, "content_published", req.Owner.ID, map[string]any{
		"content_id": published.ID,
		"kind":       string(published.Kind),
	})

	if m.opts.OnComplete != nil {
		m.opts.OnComplete(req, published)
	}
	f.finish(StateComplete, published.ID)
}

func buildContent(req Request) content.Content {
	c := content.Content{
		Kind:        req.Kind,
		URL:         req.MediaURL,
		Description: req.Description,
		User:        req.Owner,
		Likes:       0,
		Dislikes:    0,
		Comments:    []content.Comment{},
	}
	if req.Kind == content.KindVideo || req.Kind == content.KindShort {
		views := 0
		c.Views = &views
	}
	if req.Kind == content.KindVideo {
		c.Title = "New Video"
	}
	return c
}
