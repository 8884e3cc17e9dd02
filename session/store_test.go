package session_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	clienterrors "github.com/sellerhq/seller-console/internal/errors"
	"github.com/sellerhq/seller-console/session"
)

type storedUser struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
}

func newMemStore(t *testing.T, options ...session.FileStoreOption) *session.FileStore {
	t.Helper()
	opts := append([]session.FileStoreOption{session.WithFs(afero.NewMemMapFs())}, options...)
	store, err := session.NewFileStore("/state", opts...)
	require.NoError(t, err)
	return store
}

func TestFileStoreRoundTrip(t *testing.T) {
	store := newMemStore(t)

	in := storedUser{ID: "u1", Username: "ada"}
	require.NoError(t, store.Set(session.KeyUser, in))

	var out storedUser
	found, err := store.Get(session.KeyUser, &out)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, in, out)
}

func TestFileStoreMissingKey(t *testing.T) {
	store := newMemStore(t)

	var out storedUser
	found, err := store.Get("nope", &out)
	require.NoError(t, err)
	require.False(t, found)
}

func TestFileStoreDelete(t *testing.T) {
	store := newMemStore(t)
	require.NoError(t, store.Set(session.KeyAccessToken, "tok"))
	require.NoError(t, store.Delete(session.KeyAccessToken))

	var out string
	found, err := store.Get(session.KeyAccessToken, &out)
	require.NoError(t, err)
	require.False(t, found)

	// Deleting an absent key is fine.
	require.NoError(t, store.Delete(session.KeyAccessToken))
}

func TestFileStoreOverwrite(t *testing.T) {
	store := newMemStore(t)
	require.NoError(t, store.Set(session.KeyAccessToken, "first"))
	require.NoError(t, store.Set(session.KeyAccessToken, "second"))

	var out string
	found, err := store.Get(session.KeyAccessToken, &out)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "second", out)
}

func TestFileStoreSealedRoundTrip(t *testing.T) {
	fs := afero.NewMemMapFs()
	store, err := session.NewFileStore("/state",
		session.WithFs(fs), session.WithPassphrase("hunter2"))
	require.NoError(t, err)

	require.NoError(t, store.Set(session.KeyRefreshToken, "refresh-1"))

	// The token must not appear in the file on disk.
	raw, err := afero.ReadFile(fs, "/state/sellerRefreshToken.json")
	require.NoError(t, err)
	require.NotContains(t, string(raw), "refresh-1")
	require.Contains(t, string(raw), `"sealed":true`)

	var out string
	found, err := store.Get(session.KeyRefreshToken, &out)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "refresh-1", out)
}

func TestFileStoreSealedWrongPassphrase(t *testing.T) {
	fs := afero.NewMemMapFs()
	store, err := session.NewFileStore("/state",
		session.WithFs(fs), session.WithPassphrase("hunter2"))
	require.NoError(t, err)
	require.NoError(t, store.Set(session.KeyRefreshToken, "refresh-1"))

	reopened, err := session.NewFileStore("/state",
		session.WithFs(fs), session.WithPassphrase("wrong"))
	require.NoError(t, err)

	var out string
	_, err = reopened.Get(session.KeyRefreshToken, &out)
	require.ErrorIs(t, err, clienterrors.ErrCorruptEntry)
}

func TestFileStoreSealedEntryWithoutPassphrase(t *testing.T) {
	fs := afero.NewMemMapFs()
	sealed, err := session.NewFileStore("/state",
		session.WithFs(fs), session.WithPassphrase("hunter2"))
	require.NoError(t, err)
	require.NoError(t, sealed.Set(session.KeyRefreshToken, "refresh-1"))

	plain, err := session.NewFileStore("/state", session.WithFs(fs))
	require.NoError(t, err)

	var out string
	_, err = plain.Get(session.KeyRefreshToken, &out)
	require.ErrorIs(t, err, clienterrors.ErrSealedEntry)
}

func TestFileStorePlainEntryReadableWithPassphrase(t *testing.T) {
	fs := afero.NewMemMapFs()
	plain, err := session.NewFileStore("/state", session.WithFs(fs))
	require.NoError(t, err)
	require.NoError(t, plain.Set(session.KeyAccessToken, "tok"))

	// Entries written before a passphrase was configured stay readable.
	sealed, err := session.NewFileStore("/state",
		session.WithFs(fs), session.WithPassphrase("hunter2"))
	require.NoError(t, err)

	var out string
	found, err := sealed.Get(session.KeyAccessToken, &out)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "tok", out)
}
