package storage

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pdv-api/internal/domain"
)

func TestImageStorage_UploadAndDelete(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := NewImageStorageFs(fs, "/data", "http://localhost:8080/static/")

	url, err := s.Upload(context.Background(), "abc.png", []byte("png"))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/static/products/abc.png", url)

	got, err := afero.ReadFile(fs, "/data/products/abc.png")
	require.NoError(t, err)
	assert.Equal(t, "png", string(got))

	require.NoError(t, s.Delete(context.Background(), url))
	exists, err := afero.Exists(fs, "/data/products/abc.png")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestImageStorage_UploadReplaces(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := NewImageStorageFs(fs, "/data", "/static")

	_, err := s.Upload(context.Background(), "p1.jpg", []byte("v1"))
	require.NoError(t, err)
	_, err = s.Upload(context.Background(), "p1.jpg", []byte("v2"))
	require.NoError(t, err)

	got, _ := afero.ReadFile(fs, "/data/products/p1.jpg")
	assert.Equal(t, "v2", string(got))
}

func TestImageStorage_DeleteMissingIsNoop(t *testing.T) {
	s := NewImageStorageFs(afero.NewMemMapFs(), "/data", "/static")
	assert.NoError(t, s.Delete(context.Background(), "/static/products/nada.png"))
}

func TestImageStorage_RejectsPathTraversal(t *testing.T) {
	s := NewImageStorageFs(afero.NewMemMapFs(), "/data", "/static")

	_, err := s.Upload(context.Background(), "../x.png", []byte("x"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = s.Upload(context.Background(), "", []byte("x"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestImageStorage_CanceledContext(t *testing.T) {
	s := NewImageStorageFs(afero.NewMemMapFs(), "/data", "/static")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Upload(ctx, "a.png", []byte("x"))
	assert.ErrorIs(t, err, context.Canceled)
}
