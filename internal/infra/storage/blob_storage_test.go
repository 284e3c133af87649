package storage

import (
	"context"
	"io"
	"testing"

	"cafe/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func TestBucketStorage_UploadOpenDelete(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	store := NewBucketStorage(bucket, "https://cdn.example/uploads/")

	url, err := store.Upload(ctx, "payment_screenshots/1700000000000_Ana Lee.png", "image/png", []byte("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example/uploads/payment_screenshots/1700000000000_Ana%20Lee.png", url)

	reader, contentType, err := store.Open(ctx, "payment_screenshots/1700000000000_Ana Lee.png")
	require.NoError(t, err)
	data, err := io.ReadAll(reader)
	require.NoError(t, err)
	require.NoError(t, reader.Close())
	assert.Equal(t, "png-bytes", string(data))
	assert.Equal(t, "image/png", contentType)

	require.NoError(t, store.Delete(ctx, "payment_screenshots/1700000000000_Ana Lee.png"))

	_, _, err = store.Open(ctx, "payment_screenshots/1700000000000_Ana Lee.png")
	assert.True(t, errors.Is(err, service.ErrBlobNotFound))
}

func TestBucketStorage_DeleteMissingKey(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	store := NewBucketStorage(bucket, "")
	assert.NoError(t, store.Delete(context.Background(), "menu_images/missing.png"))
}

func TestBucketStorage_URLWithoutBase(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	store := NewBucketStorage(bucket, "")
	url, err := store.Upload(context.Background(), "menu_images/latte.webp", "image/webp", []byte{1})
	require.NoError(t, err)
	assert.Equal(t, "menu_images/latte.webp", url)
}

func TestRedactBucketURL(t *testing.T) {
	assert.Equal(t, "s3://bucket", redactBucketURL("s3://bucket?region=x&awssdk=v2"))
	assert.Equal(t, "mem://", redactBucketURL("mem://"))
}
