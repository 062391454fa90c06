package main

import (
	"context"
	"sync"
)

// memStore is an in-memory MetaStore for unit tests. It counts reads
// and writes so tests can assert on store traffic.
type memStore struct {
	mu           sync.Mutex
	posts        map[int64]*Post
	meta         map[int64]map[string]string
	lastRun      *RunStatus
	getMetaCalls int
	setMetaCalls int
}

func newMemStore() *memStore {
	return &memStore{
		posts: make(map[int64]*Post),
		meta:  make(map[int64]map[string]string),
	}
}

func (s *memStore) GetPost(ctx context.Context, id int64) (*Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	post, ok := s.posts[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *post
	return &copied, nil
}

func (s *memStore) SavePost(ctx context.Context, post *Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *post
	s.posts[post.ID] = &copied
	return nil
}

func (s *memStore) GetMeta(ctx context.Context, postID int64) (PostMeta, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.getMetaCalls++
	fields := s.meta[postID]
	return PostMeta{
		Title:       fields[fieldTitle],
		Description: fields[fieldDescription],
	}, nil
}

func (s *memStore) SetMeta(ctx context.Context, postID int64, field, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setMetaCalls++
	if s.meta[postID] == nil {
		s.meta[postID] = make(map[string]string)
	}
	s.meta[postID][field] = value
	return nil
}

func (s *memStore) SetLastRun(ctx context.Context, status RunStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := status
	s.lastRun = &copied
	return nil
}

func (s *memStore) LastRun(ctx context.Context) (RunStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lastRun == nil {
		return RunStatus{}, ErrNotFound
	}
	return *s.lastRun, nil
}

// storedMeta returns the raw stored meta fields for assertions.
func (s *memStore) storedMeta(postID int64) map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]string, len(s.meta[postID]))
	for k, v := range s.meta[postID] {
		out[k] = v
	}
	return out
}
