package session

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/afero"

	clienterrors "github.com/sellerhq/seller-console/internal/errors"
)

// Storage keys. Each session field is persisted independently so it
// survives a restart on its own.
const (
	KeyUser         = "sellerLoggedIn"
	KeyAccessToken  = "sellerToken"
	KeyRefreshToken = "sellerRefreshToken"
	KeyMerchant     = "merchant"
)

// Store is durable keyed storage for session state. Get reports absence
// via its bool rather than an error so missing keys rehydrate as "logged
// out", not as a failure.
type Store interface {
	Get(key string, out any) (bool, error)
	Set(key string, value any) error
	Delete(key string) error
}

// FileStore keeps one JSON file per key under a directory. With a sealer
// configured, values are encrypted at rest.
type FileStore struct {
	fs     afero.Fs
	dir    string
	sealer *sealer
}

// FileStoreOption defines a function type to modify the FileStore instance.
type FileStoreOption func(*FileStore)

// WithFs replaces the filesystem (primarily for testing).
func WithFs(fs afero.Fs) FileStoreOption {
	return func(s *FileStore) {
		s.fs = fs
	}
}

// WithPassphrase seals stored values with a key derived from passphrase.
// An empty passphrase leaves values stored as plain JSON.
func WithPassphrase(passphrase string) FileStoreOption {
	return func(s *FileStore) {
		if passphrase != "" {
			s.sealer = newSealer(passphrase)
		}
	}
}

var _ Store = (*FileStore)(nil)

// NewFileStore creates the store rooted at dir, creating it if needed.
func NewFileStore(dir string, options ...FileStoreOption) (*FileStore, error) {
	store := &FileStore{
		fs:  afero.NewOsFs(),
		dir: dir,
	}
	for _, opt := range options {
		opt(store)
	}
	if err := store.fs.MkdirAll(dir, 0o700); err != nil {
		return nil, errors.Wrap(err, "[NewFileStore] create state dir")
	}
	return store, nil
}

func (s *FileStore) Get(key string, out any) (bool, error) {
	raw, err := afero.ReadFile(s.fs, s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, errors.Wrapf(err, "[FileStore.Get] read %q", key)
	}

	if isSealed(raw) {
		if s.sealer == nil {
			return false, clienterrors.Wrapf(clienterrors.ErrSealedEntry, "%q", key)
		}
		raw, err = s.sealer.open(raw)
		if err != nil {
			return false, errors.Wrapf(err, "[FileStore.Get] unseal %q", key)
		}
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return false, errors.Wrapf(err, "[FileStore.Get] decode %q", key)
	}
	return true, nil
}

func (s *FileStore) Set(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "[FileStore.Set] encode %q", key)
	}

	if s.sealer != nil {
		raw, err = s.sealer.seal(raw)
		if err != nil {
			return errors.Wrapf(err, "[FileStore.Set] seal %q", key)
		}
	}

	if err := afero.WriteFile(s.fs, s.path(key), raw, 0o600); err != nil {
		return errors.Wrapf(err, "[FileStore.Set] write %q", key)
	}
	return nil
}

func (s *FileStore) Delete(key string) error {
	if err := s.fs.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "[FileStore.Delete] remove %q", key)
	}
	return nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
