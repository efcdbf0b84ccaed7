package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/minio/minio-go/v7"
)

// ErrDocumentNotFound is returned when a document does not exist in the bucket.
var ErrDocumentNotFound = errors.New("document not found")

// DocumentExt is the file extension of stored scene documents.
const DocumentExt = ".json"

// Documents reads and writes scene documents kept in one bucket.
type Documents struct {
	client Client
	bucket string
	prefix string
}

// NewDocuments binds client to the configured bucket and prefix.
func NewDocuments(client Client, cfg Config) *Documents {
	return &Documents{client: client, bucket: cfg.Bucket, prefix: cfg.Prefix}
}

// Bucket returns the bucket name.
func (d *Documents) Bucket() string {
	return d.bucket
}

// Key returns the object key of the document called name.
func (d *Documents) Key(name string) string {
	name = strings.TrimSuffix(name, DocumentExt)
	return path.Join(d.prefix, name) + DocumentExt
}

// EnsureBucket creates the bucket when it does not exist yet.
func (d *Documents) EnsureBucket(ctx context.Context) error {
	exists, err := d.client.BucketExists(ctx, d.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", d.bucket, err)
	}
	if exists {
		return nil
	}
	if err := d.client.MakeBucket(ctx, d.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", d.bucket, err)
	}
	return nil
}

// Load returns the raw content of the document called name.
func (d *Documents) Load(ctx context.Context, name string) ([]byte, error) {
	key := d.Key(name)
	obj, err := d.client.GetObject(ctx, d.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, d.wrap(key, err)
	}
	defer obj.Close()

	// minio reports a missing key on the first read, not on GetObject.
	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, d.wrap(key, err)
	}
	return data, nil
}

// Save stores data as the document called name.
func (d *Documents) Save(ctx context.Context, name string, data []byte) error {
	key := d.Key(name)
	_, err := d.client.PutObject(ctx, d.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", key, err)
	}
	return nil
}

// List returns the names of all stored documents.
func (d *Documents) List(ctx context.Context) ([]string, error) {
	var names []string
	for info := range d.client.ListObjects(ctx, d.bucket, minio.ListObjectsOptions{Prefix: d.prefix, Recursive: true}) {
		if info.Err != nil {
			return nil, fmt.Errorf("failed to list %s: %w", d.bucket, info.Err)
		}
		if !strings.HasSuffix(info.Key, DocumentExt) {
			continue
		}
		name := strings.TrimPrefix(info.Key, d.prefix)
		names = append(names, strings.TrimSuffix(name, DocumentExt))
	}
	return names, nil
}

// Remove deletes the document called name.
func (d *Documents) Remove(ctx context.Context, name string) error {
	key := d.Key(name)
	if err := d.client.RemoveObject(ctx, d.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return d.wrap(key, err)
	}
	return nil
}

func (d *Documents) wrap(key string, err error) error {
	if minio.ToErrorResponse(err).Code == "NoSuchKey" {
		return fmt.Errorf("%s: %w", key, ErrDocumentNotFound)
	}
	return fmt.Errorf("failed to read %s: %w", key, err)
}
