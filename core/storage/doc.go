// Package storage keeps scene documents in object storage.
//
// It wraps the MinIO Go client behind a small Client interface so tests can use
// the mock in core/storage/mocks, and works against AWS S3 as well as
// self-hosted MinIO.
//
// # Documents
//
// Documents maps document names to object keys below a configurable prefix
// and offers Load, Save, List and Remove. A missing key is reported as
// ErrDocumentNotFound.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	docs := storage.NewDocuments(client, cfg.Storage)
//	if err := docs.EnsureBucket(ctx); err != nil {
//	    return err
//	}
//	data, err := docs.Load(ctx, "shot-010")
package storage
