package storage_test

import (
	"context"
	"errors"
	"testing"

	"layersync/core/storage"
	"layersync/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDocuments(client storage.Client) *storage.Documents {
	return storage.NewDocuments(client, storage.Config{Bucket: "layers", Prefix: "scenes/"})
}

func TestDocuments_Key(t *testing.T) {
	docs := newDocuments(new(mocks.Client))
	assert.Equal(t, "scenes/shot.json", docs.Key("shot"))
	assert.Equal(t, "scenes/shot.json", docs.Key("shot.json"))
	assert.Equal(t, "scenes/seq/shot.json", docs.Key("seq/shot"))
}

func TestDocuments_EnsureBucket(t *testing.T) {
	ctx := context.Background()

	t.Run("Exists", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", ctx, "layers").Return(true, nil)

		require.NoError(t, newDocuments(client).EnsureBucket(ctx))
		client.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
	})
	t.Run("Created", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", ctx, "layers").Return(false, nil)
		client.On("MakeBucket", ctx, "layers", minio.MakeBucketOptions{}).Return(nil)

		require.NoError(t, newDocuments(client).EnsureBucket(ctx))
		client.AssertExpectations(t)
	})
	t.Run("Check fails", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", ctx, "layers").Return(false, errors.New("connection refused"))

		err := newDocuments(client).EnsureBucket(ctx)
		assert.ErrorContains(t, err, "connection refused")
	})
}

func TestDocuments_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		client := new(mocks.Client)
		client.ServeObject("layers", "scenes/shot.json", `{"version":1}`)

		data, err := newDocuments(client).Load(ctx, "shot")
		require.NoError(t, err)
		assert.JSONEq(t, `{"version":1}`, string(data))
	})
	t.Run("Missing key", func(t *testing.T) {
		client := new(mocks.Client)
		client.MissingObject("layers", "scenes/shot.json")

		_, err := newDocuments(client).Load(ctx, "shot")
		assert.ErrorIs(t, err, storage.ErrDocumentNotFound)
	})
	t.Run("Other error", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("GetObject", ctx, "layers", "scenes/shot.json", minio.GetObjectOptions{}).
			Return(nil, errors.New("timeout"))

		_, err := newDocuments(client).Load(ctx, "shot")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, storage.ErrDocumentNotFound)
	})
}

func TestDocuments_Save(t *testing.T) {
	ctx := context.Background()
	client := new(mocks.Client)
	data := []byte(`{"version":1}`)
	client.On("PutObject", ctx, "layers", "scenes/shot.json", mock.Anything, int64(len(data)),
		mock.MatchedBy(func(opts minio.PutObjectOptions) bool { return opts.ContentType == "application/json" })).
		Return(minio.UploadInfo{Key: "scenes/shot.json"}, nil)

	require.NoError(t, newDocuments(client).Save(ctx, "shot", data))
	client.AssertExpectations(t)
}

func TestDocuments_List(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		client := new(mocks.Client)
		ch := make(chan minio.ObjectInfo, 3)
		ch <- minio.ObjectInfo{Key: "scenes/a.json"}
		ch <- minio.ObjectInfo{Key: "scenes/seq/b.json"}
		ch <- minio.ObjectInfo{Key: "scenes/notes.txt"}
		close(ch)
		client.On("ListObjects", ctx, "layers", minio.ListObjectsOptions{Prefix: "scenes/", Recursive: true}).
			Return((<-chan minio.ObjectInfo)(ch))

		names, err := newDocuments(client).List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "seq/b"}, names)
	})
	t.Run("Listing error", func(t *testing.T) {
		client := new(mocks.Client)
		ch := make(chan minio.ObjectInfo, 1)
		ch <- minio.ObjectInfo{Err: errors.New("access denied")}
		close(ch)
		client.On("ListObjects", ctx, "layers", mock.Anything).Return(ch)

		_, err := newDocuments(client).List(ctx)
		assert.ErrorContains(t, err, "access denied")
	})
}

func TestDocuments_Remove(t *testing.T) {
	ctx := context.Background()
	client := new(mocks.Client)
	client.On("RemoveObject", ctx, "layers", "scenes/shot.json", minio.RemoveObjectOptions{}).Return(nil)

	require.NoError(t, newDocuments(client).Remove(ctx, "shot"))
	client.AssertExpectations(t)
}
