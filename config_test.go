package main

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":8088")
	t.Setenv("BASIC_AUTH_USER", "alice")
	t.Setenv("BASIC_AUTH_PASS", "secret")
	t.Setenv("ORCHESTRATOR_TIMEOUT", "5s")

	// t.Setenv registers the restore; Unsetenv makes the defaults apply
	// regardless of the outer environment.
	t.Setenv("ORCHESTRATOR_URL", "")
	os.Unsetenv("ORCHESTRATOR_URL")
	t.Setenv("SITE_URL", "")
	os.Unsetenv("SITE_URL")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":8088", cfg.HTTPAddr)
	assert.Equal(t, "alice", cfg.BasicUser)
	assert.Equal(t, "secret", cfg.BasicPass)
	assert.Equal(t, 5*time.Second, cfg.OrchestratorTimeout)

	// unset vars fall back to defaults
	assert.Equal(t, "http://mcp-orchestrator:9000/webhook", cfg.OrchestratorURL)
	assert.Equal(t, "http://wordpress", cfg.SiteURL)
}
