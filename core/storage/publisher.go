package storage

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
)

// Publisher stores public assets in a bucket and maps them to durable URLs.
type Publisher struct {
	client  Client
	bucket  string
	baseURL string
}

// NewPublisher creates a publisher for the configured bucket.
func NewPublisher(client Client, cfg Config) *Publisher {
	return &Publisher{
		client:  client,
		bucket:  cfg.Bucket,
		baseURL: cfg.BaseURL(),
	}
}

// Upload stores data under objectPath and returns its public URL.
func (p *Publisher) Upload(ctx context.Context, data []byte, contentType, objectPath string) (string, error) {
	objectPath = strings.TrimPrefix(objectPath, "/")
	if objectPath == "" {
		return "", fmt.Errorf("empty object path")
	}

	_, err := p.client.PutObject(
		ctx,
		p.bucket,
		objectPath,
		bytes.NewReader(data),
		int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType},
	)
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", objectPath, err)
	}

	return p.URL(objectPath), nil
}

// DeleteByPath removes the object stored under objectPath.
func (p *Publisher) DeleteByPath(ctx context.Context, objectPath string) error {
	if err := p.client.RemoveObject(ctx, p.bucket, objectPath, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete storage object %s: %w", objectPath, err)
	}
	return nil
}

// URL returns the public URL of an object path.
func (p *Publisher) URL(objectPath string) string {
	return p.baseURL + "/" + p.bucket + "/" + objectPath
}

// PathFromURL derives the object path from a public URL produced by URL.
// Only the URL path is inspected, so a CDN host in front of the bucket still resolves.
func (p *Publisher) PathFromURL(publicURL string) (string, bool) {
	u, err := url.Parse(publicURL)
	if err != nil || u.Path == "" {
		return "", false
	}

	prefix := "/" + p.bucket + "/"
	if base, err := url.Parse(p.baseURL); err == nil {
		prefix = strings.TrimRight(base.Path, "/") + prefix
	}

	if !strings.HasPrefix(u.Path, prefix) {
		return "", false
	}
	objectPath := strings.TrimPrefix(u.Path, prefix)
	return objectPath, objectPath != ""
}

// ObjectPath builds a collision-free object path inside folder for a file extension.
func ObjectPath(folder, ext string) string {
	ext = strings.TrimPrefix(ext, ".")
	name := fmt.Sprintf("%d-%s.%s", time.Now().UnixMilli(), strings.ReplaceAll(uuid.NewString(), "-", "")[:12], ext)
	return path.Join(folder, name)
}
