package main

import (
	"encoding/base64"
	"log"
	"net/http"
	"strings"
)

// authReason classifies why a Basic Authorization header was rejected.
// authOK means the credentials matched.
type authReason string

const (
	authOK              authReason = "ok"
	authMissingHeader   authReason = "missing_header"
	authWrongScheme     authReason = "wrong_scheme"
	authBadEncoding     authReason = "bad_encoding"
	authMalformedPair   authReason = "malformed_pair"
	authWrongCredential authReason = "wrong_credential"
)

// checkBasicAuth validates an Authorization header value against the
// configured user/pass pair. Pure predicate, no side effects.
func checkBasicAuth(header, user, pass string) authReason {
	if header == "" {
		return authMissingHeader
	}
	const prefix = "Basic "
	if len(header) < len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return authWrongScheme
	}
	decoded, err := base64.StdEncoding.DecodeString(header[len(prefix):])
	if err != nil {
		return authBadEncoding
	}
	gotUser, gotPass, found := strings.Cut(string(decoded), ":")
	if !found {
		return authMalformedPair
	}
	if gotUser != user || gotPass != pass {
		return authWrongCredential
	}
	return authOK
}

// basicAuthMiddleware enforces Basic authentication with a fixed
// credential pair. Rejections are logged with the reason code.
func basicAuthMiddleware(user, pass string, logger *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if reason := checkBasicAuth(r.Header.Get("Authorization"), user, pass); reason != authOK {
				logger.Printf("auth rejected: %s %s (%s)", r.Method, r.URL.Path, reason)
				w.Header().Set("WWW-Authenticate", `Basic realm="seoagent"`)
				writeError(w, http.StatusUnauthorized, "rest_forbidden", "Missing or invalid credentials.")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
