// Package audit writes the activity trail for every mutating operation.
// Logging is best-effort and fire-and-forget: entries travel through a
// buffered channel to a background writer, so a slow or failing audit
// write can never delay or mask the outcome of the request it documents.
package audit

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"gorm.io/datatypes"

	"github.com/dinaskp/perikanan-backend/internal/domain"
)

const (
	defaultBufferSize = 256
	appendTimeout     = 5 * time.Second
)

// Entry is one audit event handed to the Logger. Before and After are
// arbitrary structured snapshots, stored opaquely as JSON without schema
// validation.
type Entry struct {
	Actor       domain.ActorContext
	Action      string
	Module      string
	Description string
	Before      any
	After       any
	Status      string
	ErrorMsg    string
}

// Logger accepts entries without blocking the caller and persists them on a
// background goroutine. When the buffer is full the entry is dropped with a
// warning rather than stalling the request path.
type Logger struct {
	store Store
	log   *slog.Logger

	ch     chan *domain.ActivityLog
	done   chan struct{}
	mu     sync.RWMutex
	closed bool
}

// NewLogger creates a Logger and starts its background writer.
// bufferSize <= 0 selects the default.
func NewLogger(store Store, log *slog.Logger, bufferSize int) *Logger {
	if log == nil {
		log = slog.Default()
	}
	if bufferSize <= 0 {
		bufferSize = defaultBufferSize
	}

	l := &Logger{
		store: store,
		log:   log,
		ch:    make(chan *domain.ActivityLog, bufferSize),
		done:  make(chan struct{}),
	}
	go l.run()
	return l
}

// Log enqueues an audit entry. It never blocks and never returns an error:
// failure to log must not fail the operation it documents.
func (l *Logger) Log(e Entry) {
	record := &domain.ActivityLog{
		UserID:      e.Actor.UserID,
		UserName:    e.Actor.UserName,
		IPAddress:   e.Actor.IPAddress,
		Method:      e.Actor.Method,
		Path:        e.Actor.Path,
		Action:      e.Action,
		Module:      e.Module,
		Description: e.Description,
		Before:      marshalSnapshot(l.log, e.Before),
		After:       marshalSnapshot(l.log, e.After),
		Status:      e.Status,
		ErrorMsg:    e.ErrorMsg,
	}

	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.closed {
		l.log.Warn("audit entry discarded after close",
			slog.String("module", e.Module), slog.String("action", e.Action))
		return
	}

	select {
	case l.ch <- record:
	default:
		l.log.Warn("audit buffer full, entry dropped",
			slog.String("module", e.Module), slog.String("action", e.Action))
	}
}

// Close stops accepting entries, drains the buffer, and waits for the
// background writer to finish.
func (l *Logger) Close() {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	l.closed = true
	l.mu.Unlock()

	close(l.ch)
	<-l.done
}

func (l *Logger) run() {
	defer close(l.done)
	for record := range l.ch {
		ctx, cancel := context.WithTimeout(context.Background(), appendTimeout)
		if err := l.store.Append(ctx, record); err != nil {
			l.log.Error("audit write failed",
				slog.String("module", record.Module),
				slog.String("action", record.Action),
				slog.Any("error", err))
		}
		cancel()
	}
}

// marshalSnapshot serializes a before/after snapshot. A snapshot that fails
// to marshal is recorded as null rather than losing the whole entry.
func marshalSnapshot(log *slog.Logger, v any) datatypes.JSON {
	if v == nil {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		log.Warn("audit snapshot marshal failed", slog.Any("error", err))
		return nil
	}
	return datatypes.JSON(b)
}
