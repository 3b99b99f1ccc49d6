package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/bnema/vidqa/internal/domain"
	"github.com/bnema/vidqa/internal/service"
	"github.com/go-chi/chi/v5"
)

const keepAliveInterval = 15 * time.Second

type EventSubscriber interface {
	Subscribe(jobID string) chan service.Event
	Unsubscribe(jobID string, ch chan service.Event)
}

type JobReader interface {
	Status(jobID string) (*domain.Job, error)
}

type SSEHandler struct {
	events    EventSubscriber
	jobs      JobReader
	keepAlive time.Duration
}

func NewSSEHandler(events EventSubscriber, jobs JobReader) *SSEHandler {
	return &SSEHandler{
		events:    events,
		jobs:      jobs,
		keepAlive: keepAliveInterval,
	}
}

// sseWrite writes an SSE event, handling multi-line data correctly.
func sseWrite(w http.ResponseWriter, eventName string, data string) {
	_, _ = fmt.Fprintf(w, "event: %s\n", eventName)
	for _, line := range strings.Split(data, "\n") {
		_, _ = fmt.Fprintf(w, "data: %s\n", line)
	}
	_, _ = fmt.Fprint(w, "\n")
	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}
}

func sendJob(w http.ResponseWriter, eventName string, job *domain.Job) error {
	data, err := json.Marshal(job)
	if err != nil {
		return err
	}
	sseWrite(w, eventName, string(data))
	return nil
}

// sendKeepAlive writes an SSE comment to keep the connection active.
func sendKeepAlive(w http.ResponseWriter) {
	_, _ = fmt.Fprint(w, ": keep-alive\n\n")
	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}
}

// Events streams job snapshots until the job reaches a terminal state or the
// client goes away. The current state is always sent first, and the job is
// re-read on every keep-alive tick.
func (h *SSEHandler) Events() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		// Subscribe before reading so no transition falls between the two.
		ch := h.events.Subscribe(id)
		defer h.events.Unsubscribe(id, ch)

		job, err := h.jobs.Status(id)
		if err != nil {
			writeServiceError(w, "job events", err)
			return
		}

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.Header().Set("X-Accel-Buffering", "no")

		if err := sendJob(w, "status", job); err != nil || job.Status.IsTerminal() {
			return
		}

		ctx := r.Context()
		keepAlive := time.NewTicker(h.keepAlive)
		defer keepAlive.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-keepAlive.C:
				// A terminal event dropped by a full subscriber channel would
				// otherwise leave the stream open forever.
				if job, err := h.jobs.Status(id); err == nil && job.Status.IsTerminal() {
					_ = sendJob(w, "status", job)
					return
				}
				sendKeepAlive(w)
			case event, ok := <-ch:
				if !ok {
					return
				}
				if err := sendJob(w, event.Type, event.Job); err != nil {
					return
				}
				if event.Job.Status.IsTerminal() {
					return
				}
			}
		}
	}
}
