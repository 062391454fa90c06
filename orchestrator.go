package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// OrchestratorClient triggers metadata generation jobs on the external
// orchestrator. One attempt per call, bounded by the client timeout;
// retry policy, if ever wanted, belongs to the caller.
type OrchestratorClient struct {
	url    string
	client *http.Client
}

// NewOrchestratorClient creates a client for the webhook at url.
func NewOrchestratorClient(url string, timeout time.Duration) *OrchestratorClient {
	return &OrchestratorClient{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

// Trigger posts a job request for the given post and returns the
// orchestrator's payload as-is. Transport failures map to
// ErrOrchestratorUnreachable; a status >= 300 or a body that is not a
// JSON object maps to ErrOrchestratorError.
func (c *OrchestratorClient) Trigger(ctx context.Context, postID int64, siteURL string) (map[string]any, error) {
	payload := TriggerPayload{
		PostID:      postID,
		SiteURL:     siteURL,
		TriggeredBy: "wordpress-plugin",
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal trigger payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build trigger request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOrchestratorUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: status %d", ErrOrchestratorError, resp.StatusCode)
	}
	var result map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil || result == nil {
		return nil, fmt.Errorf("%w: response body is not a JSON object", ErrOrchestratorError)
	}
	return result, nil
}

// extractMeta pulls the recognized meta.title / meta.description pair
// out of an orchestrator payload. Anything else in the payload is
// opaque and left to the caller.
func extractMeta(workflow map[string]any) (title, description string) {
	meta, ok := workflow["meta"].(map[string]any)
	if !ok {
		return "", ""
	}
	title, _ = meta["title"].(string)
	description, _ = meta["description"].(string)
	return title, description
}
