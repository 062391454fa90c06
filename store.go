package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"
)

// MetaStore is the persistence surface the agent needs: post records,
// per-post meta fields, and the last-run status record.
type MetaStore interface {
	GetPost(ctx context.Context, id int64) (*Post, error)
	SavePost(ctx context.Context, post *Post) error
	GetMeta(ctx context.Context, postID int64) (PostMeta, error)
	SetMeta(ctx context.Context, postID int64, field, value string) error
	SetLastRun(ctx context.Context, status RunStatus) error
	LastRun(ctx context.Context) (RunStatus, error)
}

// lastRunKey holds the single process-wide status record, overwritten
// on every successful refresh.
const lastRunKey = "agent:last_run"

// RedisStore provides post and metadata persistence in Redis.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a new RedisStore.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// SavePost stores a new or updated post in Redis.
func (s *RedisStore) SavePost(ctx context.Context, post *Post) error {
	key := fmt.Sprintf("post:%d", post.ID)
	data, err := json.Marshal(post)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, data, 0).Err()
}

// GetPost retrieves a post by ID.
func (s *RedisStore) GetPost(ctx context.Context, id int64) (*Post, error) {
	key := fmt.Sprintf("post:%d", id)
	data, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrNotFound
		}
		return nil, err
	}
	var post Post
	if err := json.Unmarshal([]byte(data), &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// GetMeta retrieves the stored meta overrides for a post. A post with
// no overrides yields the zero value, not an error.
func (s *RedisStore) GetMeta(ctx context.Context, postID int64) (PostMeta, error) {
	key := fmt.Sprintf("postmeta:%d", postID)
	fields, err := s.client.HGetAll(ctx, key).Result()
	if err != nil {
		return PostMeta{}, err
	}
	return PostMeta{
		Title:       fields[fieldTitle],
		Description: fields[fieldDescription],
	}, nil
}

// SetMeta writes one meta field for a post. Fields are written
// independently so a refresh can update title without touching a
// previously stored description.
func (s *RedisStore) SetMeta(ctx context.Context, postID int64, field, value string) error {
	key := fmt.Sprintf("postmeta:%d", postID)
	return s.client.HSet(ctx, key, field, value).Err()
}

// SetLastRun overwrites the last-run status record.
func (s *RedisStore) SetLastRun(ctx context.Context, status RunStatus) error {
	data, err := json.Marshal(status)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, lastRunKey, data, 0).Err()
}

// LastRun returns the last-run status record, or ErrNotFound when no
// refresh has completed yet.
func (s *RedisStore) LastRun(ctx context.Context) (RunStatus, error) {
	data, err := s.client.Get(ctx, lastRunKey).Result()
	if err != nil {
		if err == redis.Nil {
			return RunStatus{}, ErrNotFound
		}
		return RunStatus{}, err
	}
	var status RunStatus
	if err := json.Unmarshal([]byte(data), &status); err != nil {
		return RunStatus{}, err
	}
	return status, nil
}
