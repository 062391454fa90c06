package main

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
)

func basic(creds string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(creds))
}

func TestCheckBasicAuth(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   authReason
	}{
		{"missing header", "", authMissingHeader},
		{"bearer scheme", "Bearer abc123", authWrongScheme},
		{"bare credentials", base64.StdEncoding.EncodeToString([]byte("mcp:agent")), authWrongScheme},
		{"invalid base64", "Basic !!!not-base64!!!", authBadEncoding},
		{"no colon separator", "Basic " + base64.StdEncoding.EncodeToString([]byte("mcpagent")), authMalformedPair},
		{"wrong password", basic("mcp:wrongpass"), authWrongCredential},
		{"wrong user", basic("other:agent"), authWrongCredential},
		{"swapped pair", basic("agent:mcp"), authWrongCredential},
		{"valid pair", basic("mcp:agent"), authOK},
		{"lowercase scheme", "basic " + base64.StdEncoding.EncodeToString([]byte("mcp:agent")), authOK},
		{"empty password", basic("mcp:"), authWrongCredential},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, checkBasicAuth(tt.header, "mcp", "agent"))
		})
	}
}

func TestCheckBasicAuthPasswordWithColon(t *testing.T) {
	// Only the first colon splits user from password.
	assert.Equal(t, authOK, checkBasicAuth(basic("mcp:a:gent"), "mcp", "a:gent"))
}
