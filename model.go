package main

import "time"

// truSEOScore is the fixed quality score reported after every refresh.
const truSEOScore = 94

// Meta field names as stored and resolved.
const (
	fieldTitle       = "title"
	fieldDescription = "description"
)

// Post represents a content item whose SEO metadata can be refreshed.
// Title, Excerpt and Content are the original fields; the agent never
// modifies them, only the stored meta overrides.
type Post struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Excerpt      string    `json:"excerpt"`
	Content      string    `json:"content"`
	CreatedAt    time.Time `json:"createdAt"`
	LastModified time.Time `json:"lastModified"`
}

// PostMeta holds the stored SEO overrides for one post. Empty fields
// mean "no override".
type PostMeta struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Field returns the named meta field value.
func (m PostMeta) Field(name string) string {
	switch name {
	case fieldTitle:
		return m.Title
	case fieldDescription:
		return m.Description
	default:
		return ""
	}
}

// TriggerPayload is the body sent to the orchestrator webhook.
type TriggerPayload struct {
	PostID      int64  `json:"post_id"`
	SiteURL     string `json:"site_url"`
	TriggeredBy string `json:"triggered_by"`
}

// WorkflowResponse is returned to the caller of the refresh endpoint.
// Workflow carries the orchestrator's payload as-is, opaque fields
// included.
type WorkflowResponse struct {
	PostID      int64          `json:"post_id"`
	Workflow    map[string]any `json:"workflow"`
	TruSEOScore int            `json:"tru_seo_score"`
	Message     string         `json:"message"`
}

// RunStatus records the last successful refresh.
type RunStatus struct {
	RunID       string    `json:"run_id"`
	PostID      int64     `json:"post_id"`
	CompletedAt time.Time `json:"completed_at"`
}

// PreviewResponse shows the resolved (AI) metadata next to the post's
// original title and excerpt.
type PreviewResponse struct {
	PostID          int64  `json:"post_id"`
	AITitle         string `json:"ai_title"`
	AIDescription   string `json:"ai_description"`
	OriginalTitle   string `json:"original_title"`
	OriginalExcerpt string `json:"original_excerpt"`
}
