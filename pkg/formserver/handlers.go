package formserver

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/formkit/pkg/feedback"
	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/formctl"
	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// pendingChanges bounds the changes buffered between the controller and
// the event stream. Overflow is covered by the final snapshot.
const pendingChanges = 64

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	data, err := s.pageModel(uuid.NewString(), r.URL.Query().Get(form.FieldRef))
	if err != nil {
		s.log.ErrorContext(r.Context(), "build page", logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		s.log.ErrorContext(r.Context(), "render page", logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = buf.WriteTo(w)
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	kind, err := form.ParseKind(chi.URLParam(r, "kind"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	var signals submitSignals
	if err := datastar.ReadSignals(r, &signals); err != nil {
		http.Error(w, "malformed signals", http.StatusBadRequest)
		return
	}
	if err := uuid.Validate(signals.Instance); err != nil {
		http.Error(w, ErrInvalidInstance.Error(), http.StatusBadRequest)
		return
	}

	f := s.instance(signals.Instance).forms[kind]
	if !f.ctl.CanSubmit(ctx) {
		http.Error(w, formctl.ErrBusy.Error(), http.StatusConflict)
		return
	}

	// Subscribe before the claim so the posted values reach this stream.
	stream := subscribe(f.doc)
	defer stream.close()

	// The submission outlives a dropped connection; only the stream stops.
	submitCtx := formctl.WithSubmissionID(context.WithoutCancel(ctx), uuid.NewString())
	future, err := f.ctl.Start(submitCtx, signals.values(kind))
	switch {
	case errors.Is(err, formctl.ErrBusy):
		http.Error(w, formctl.ErrBusy.Error(), http.StatusConflict)
		return
	case err != nil:
		s.log.ErrorContext(submitCtx, "start submission", logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	sse := datastar.NewSSE(w, r)
	for {
		select {
		case c := <-stream.changes:
			if err := patch(sse, f.changePatch(c)); err != nil {
				return
			}
		case <-future.Done():
			stream.close()
			for drained := false; !drained; {
				select {
				case c := <-stream.changes:
					if err := patch(sse, f.changePatch(c)); err != nil {
						return
					}
				default:
					drained = true
				}
			}

			if _, err := future.Await(); err != nil && !validator.IsValidationError(err) {
				s.log.ErrorContext(submitCtx, "submission failed", logger.Error(err))
			}
			if err := patch(sse, f.snapshotPatch()); err != nil {
				s.log.DebugContext(submitCtx, "final patch not delivered", logger.Error(err))
			}
			return
		case <-ctx.Done():
			return
		}
	}
}

func patch(sse *datastar.ServerSentEventGenerator, signals map[string]any) error {
	raw, err := json.Marshal(signals)
	if err != nil {
		return err
	}
	return sse.PatchSignals(raw)
}

// changeStream forwards document changes to a buffered channel until closed.
type changeStream struct {
	changes     chan feedback.Change
	unsubscribe func()
	mu          sync.Mutex
	closed      bool
}

func subscribe(doc *feedback.MemDocument) *changeStream {
	cs := &changeStream{changes: make(chan feedback.Change, pendingChanges)}
	cs.unsubscribe = doc.Subscribe(func(c feedback.Change) {
		cs.mu.Lock()
		defer cs.mu.Unlock()
		if cs.closed {
			return
		}
		select {
		case cs.changes <- c:
		default:
		}
	})
	return cs
}

func (cs *changeStream) close() {
	cs.mu.Lock()
	cs.closed = true
	cs.mu.Unlock()
	cs.unsubscribe()
}
