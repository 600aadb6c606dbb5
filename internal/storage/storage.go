package storage

import (
	"context"
	"errors"
	"io"
	"time"
)

// Package storage contains blob storage abstractions for uploaded documents.
// Two implementations exist: a local file tree (the default) and an
// S3-compatible object store. Both stream content; nothing is buffered whole
// in memory.

// ErrNotFound is returned by Get when no blob exists under the key at call
// time. An existence check followed by a Get is inherently racy; callers must
// be prepared for Get to fail even after Exists reported true.
var ErrNotFound = errors.New("blob not found")

// PutObjectOptions define optional parameters for uploading objects.
// Size should be the exact number of bytes if known; if unknown, set to -1
// and the implementation will buffer/chunk as supported by the backend.
// ContentType and Metadata are optional.
type PutObjectOptions struct {
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// ObjectInfo contains basic information about a stored blob.
type ObjectInfo struct {
	Key          string
	Size         int64
	ContentType  string
	LastModified time.Time
	Metadata     map[string]string
}

// Storage is the blob store used for uploaded document content.
// Put overwrites silently on key collision; generated keys embed a timestamp
// which makes collision unlikely but not impossible within the same instant.
type Storage interface {
	// Put uploads a blob under the given key using the provided reader and options.
	Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error)
	// Get retrieves a blob's content as a streaming reader alongside its info.
	// Returns ErrNotFound when no blob exists under the key.
	Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error)
	// Exists reports whether a blob exists under the key.
	Exists(ctx context.Context, key string) (bool, error)
	// Delete removes a blob by key.
	Delete(ctx context.Context, key string) error
}
