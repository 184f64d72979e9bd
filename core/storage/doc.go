// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client, which supports both AWS S3 and self-hosted MinIO.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (see core/storage/mocks).
//
// # Publisher
//
// Publisher turns uploaded bytes into durable public URLs and back: Upload stores an
// object and returns its URL, PathFromURL recovers the object path from a URL so that
// DeleteByPath can clean up the asset when its owning record is removed.
//
// # Usage
//
//	client, err := storage.NewClient(cfg)
//	pub := storage.NewPublisher(client, cfg)
//	url, err := pub.Upload(ctx, data, "image/jpeg", storage.ObjectPath("products", "jpg"))
package storage
