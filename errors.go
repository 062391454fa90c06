package main

import "errors"

// ErrNotFound is returned when a post is not found in the store.
var ErrNotFound = errors.New("post not found")

// ErrInvalidInput is returned when the post id is not a positive integer.
var ErrInvalidInput = errors.New("invalid input")

// ErrUnauthorized is returned when Basic credentials are missing or wrong.
var ErrUnauthorized = errors.New("unauthorized")

// ErrOrchestratorUnreachable is returned on a transport-level failure
// (connection refused, timeout, DNS) reaching the orchestrator.
var ErrOrchestratorUnreachable = errors.New("orchestrator unreachable")

// ErrOrchestratorError is returned when the orchestrator answers with a
// status >= 300 or a body that is not a JSON object.
var ErrOrchestratorError = errors.New("orchestrator error")
