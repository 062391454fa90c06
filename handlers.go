package main

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Handler handles HTTP requests for the metadata refresh workflow.
type Handler struct {
	store        MetaStore
	orchestrator *OrchestratorClient
	siteURL      string
	logger       *log.Logger
}

// NewHandler creates a Handler with dependencies.
func NewHandler(store MetaStore, orchestrator *OrchestratorClient, siteURL string, logger *log.Logger) *Handler {
	return &Handler{store: store, orchestrator: orchestrator, siteURL: siteURL, logger: logger}
}

// generateMetaHandler processes POST /generate-meta/{id}.
func (h *Handler) generateMetaHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	postID, err := parsePostID(strings.TrimPrefix(r.URL.Path, "/generate-meta/"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_input", "Post id must be a positive integer.")
		return
	}
	h.handleGenerateMeta(w, r, postID)
}

// handleGenerateMeta maps refresh outcomes to HTTP responses.
func (h *Handler) handleGenerateMeta(w http.ResponseWriter, r *http.Request, postID int64) {
	cache := NewMetaCache()
	result, err := h.refresh(r.Context(), cache, postID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			writeError(w, http.StatusNotFound, "not_found", "Post not found.")
		case errors.Is(err, ErrOrchestratorUnreachable):
			h.logger.Printf("orchestrator unreachable for post %d: %v", postID, err)
			writeError(w, http.StatusInternalServerError, "orchestrator_unreachable", "Failed to contact MCP orchestrator.")
		case errors.Is(err, ErrOrchestratorError):
			h.logger.Printf("orchestrator error for post %d: %v", postID, err)
			writeError(w, http.StatusBadGateway, "orchestrator_error", "Unexpected orchestrator response.")
		default:
			h.logger.Printf("error refreshing post %d: %v", postID, err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// refresh runs one workflow invocation: load the post, trigger the
// orchestrator, persist non-empty sanitized meta fields, populate the
// invocation's cache, and record the run. Orchestrator errors
// propagate unchanged; nothing is written on failure.
func (h *Handler) refresh(ctx context.Context, cache *MetaCache, postID int64) (*WorkflowResponse, error) {
	post, err := h.store.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	workflow, err := h.orchestrator.Trigger(ctx, post.ID, h.siteURL)
	if err != nil {
		return nil, err
	}

	// Meta writes are independent best-effort: an empty field never
	// overwrites a previously stored value, and a failure on one field
	// does not block the other.
	title, description := extractMeta(workflow)
	var written PostMeta
	if title != "" {
		written.Title = sanitizeTextField(title)
		if err := h.store.SetMeta(ctx, postID, fieldTitle, written.Title); err != nil {
			h.logger.Printf("error storing title for post %d: %v", postID, err)
		}
	}
	if description != "" {
		written.Description = sanitizeTextareaField(description)
		if err := h.store.SetMeta(ctx, postID, fieldDescription, written.Description); err != nil {
			h.logger.Printf("error storing description for post %d: %v", postID, err)
		}
	}

	// The invocation's cache holds exactly what this run produced, not
	// a merge with prior stored values.
	if title != "" || description != "" {
		cache.Put(postID, written)
	}

	status := RunStatus{
		RunID:       uuid.NewString(),
		PostID:      postID,
		CompletedAt: time.Now().UTC(),
	}
	if err := h.store.SetLastRun(ctx, status); err != nil {
		h.logger.Printf("error recording last run: %v", err)
	}

	shownTitle, err := resolveMeta(ctx, h.store, cache, postID, fieldTitle, post.Title)
	if err == nil {
		h.logger.Printf("post %d refreshed, run %s, title %q", postID, status.RunID, shownTitle)
	}

	return &WorkflowResponse{
		PostID:      postID,
		Workflow:    workflow,
		TruSEOScore: truSEOScore,
		Message:     "MCP workflow triggered; AIOSEO meta refreshed.",
	}, nil
}

// previewHandler processes GET /posts/{id}/preview, showing the
// resolved metadata next to the post's original fields.
func (h *Handler) previewHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	rest := strings.TrimPrefix(r.URL.Path, "/posts/")
	idPart, ok := strings.CutSuffix(rest, "/preview")
	if !ok {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
		return
	}
	postID, err := parsePostID(idPart)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_input", "Post id must be a positive integer.")
		return
	}

	ctx := r.Context()
	post, err := h.store.GetPost(ctx, postID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found", "Post not found.")
		} else {
			h.logger.Printf("error loading post %d: %v", postID, err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	cache := NewMetaCache()
	aiTitle, err := resolveMeta(ctx, h.store, cache, postID, fieldTitle, post.Title)
	if err != nil {
		h.logger.Printf("error resolving title for post %d: %v", postID, err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	aiDescription, err := resolveMeta(ctx, h.store, cache, postID, fieldDescription, post.Excerpt)
	if err != nil {
		h.logger.Printf("error resolving description for post %d: %v", postID, err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	if aiTitle == "" {
		aiTitle = "AI title pending"
	}
	if aiDescription == "" {
		aiDescription = "AI description pending"
	}

	writeJSON(w, http.StatusOK, PreviewResponse{
		PostID:          postID,
		AITitle:         aiTitle,
		AIDescription:   aiDescription,
		OriginalTitle:   post.Title,
		OriginalExcerpt: post.Excerpt,
	})
}

// statusHandler processes GET /status, exposing the last-run record.
func (h *Handler) statusHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	status, err := h.store.LastRun(r.Context())
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			writeError(w, http.StatusNotFound, "never_run", "No refresh has completed yet.")
		} else {
			h.logger.Printf("error reading last run: %v", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}
	writeJSON(w, http.StatusOK, status)
}

// parsePostID validates that the raw path segment is a positive
// integer id. Anything else is ErrInvalidInput, rejected before any I/O.
func parsePostID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidInput
	}
	return id, nil
}

// writeJSON writes a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// apiError is the structured error body: a stable code plus a
// human-readable message.
type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeError writes a structured JSON error response.
func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, apiError{Code: code, Message: message})
}
