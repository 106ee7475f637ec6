package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/anz-davar/giuson/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStore(t *testing.T) {
	ctx := context.Background()
	root := filepath.Join(t.TempDir(), "resumes")
	store, err := NewLocalStore(root)
	require.NoError(t, err)

	content := "%PDF-1.4 resume"
	location, err := store.Put(ctx, "application_7/cv.pdf", strings.NewReader(content), int64(len(content)), "application/pdf")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "application_7", "cv.pdf"), location)

	data, err := os.ReadFile(location)
	require.NoError(t, err)
	assert.Equal(t, content, string(data))

	t.Run("short reads fail", func(t *testing.T) {
		_, err := store.Put(ctx, "application_7/short.pdf", strings.NewReader("abc"), 10, "application/pdf")
		assert.Error(t, err)
		_, statErr := os.Stat(filepath.Join(root, "application_7", "short.pdf"))
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("keys may not escape the root", func(t *testing.T) {
		for _, key := range []string{"../evil.pdf", "a/../../evil.pdf", "/abs.pdf", "", `a\b.pdf`} {
			_, err := store.Put(ctx, key, strings.NewReader("x"), 1, "text/plain")
			assert.ErrorIs(t, err, ErrInvalidKey, key)
		}
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, location))
		_, err := os.Stat(location)
		assert.True(t, os.IsNotExist(err))

		assert.NoError(t, store.Delete(ctx, location), "deleting twice is fine")
		assert.ErrorIs(t, store.Delete(ctx, "/etc/passwd"), ErrInvalidKey)
	})
}

func TestNew(t *testing.T) {
	cfg := &config.Config{}
	cfg.Storage.Driver = "local"
	cfg.Storage.Dir = t.TempDir()

	store, err := New(context.Background(), cfg)
	require.NoError(t, err)
	assert.IsType(t, &LocalStore{}, store)

	cfg.Storage.Driver = "ftp"
	_, err = New(context.Background(), cfg)
	assert.Error(t, err)
}

func TestMinioLocation(t *testing.T) {
	s := &MinioStore{bucket: "resumes"}
	assert.Equal(t, "s3://resumes/application_1/a.pdf", s.location("application_1/a.pdf"))

	err := s.Delete(context.Background(), "s3://other/application_1/a.pdf")
	assert.ErrorIs(t, err, ErrInvalidKey)
}
