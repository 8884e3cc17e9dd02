package session

import (
	"bytes"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"

	"github.com/pkg/errors"
	"golang.org/x/crypto/nacl/secretbox"
	"golang.org/x/crypto/scrypt"

	clienterrors "github.com/sellerhq/seller-console/internal/errors"
)

// sealedEnvelope is the on-disk form of a sealed entry. The salt is
// per-entry so identical values never produce identical ciphertexts.
type sealedEnvelope struct {
	Sealed bool   `json:"sealed"`
	Salt   string `json:"salt"`
	Nonce  string `json:"nonce"`
	Box    string `json:"box"`
}

var sealedMarker = []byte(`{"sealed":true`)

func isSealed(raw []byte) bool {
	return bytes.HasPrefix(bytes.TrimSpace(raw), sealedMarker)
}

// sealer encrypts entries with secretbox using an scrypt-derived key.
type sealer struct {
	passphrase string
}

func newSealer(passphrase string) *sealer {
	return &sealer{passphrase: passphrase}
}

func (s *sealer) seal(plaintext []byte) ([]byte, error) {
	salt := make([]byte, 16)
	if _, err := rand.Read(salt); err != nil {
		return nil, errors.Wrap(err, "[sealer.seal] generate salt")
	}

	key, err := s.deriveKey(salt)
	if err != nil {
		return nil, err
	}

	var nonce [24]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return nil, errors.Wrap(err, "[sealer.seal] generate nonce")
	}

	box := secretbox.Seal(nil, plaintext, &nonce, key)
	return json.Marshal(sealedEnvelope{
		Sealed: true,
		Salt:   base64.StdEncoding.EncodeToString(salt),
		Nonce:  base64.StdEncoding.EncodeToString(nonce[:]),
		Box:    base64.StdEncoding.EncodeToString(box),
	})
}

func (s *sealer) open(raw []byte) ([]byte, error) {
	var envelope sealedEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, clienterrors.Wrapf(clienterrors.ErrCorruptEntry, "decode envelope: %v", err)
	}

	salt, err := base64.StdEncoding.DecodeString(envelope.Salt)
	if err != nil {
		return nil, clienterrors.ErrCorruptEntry
	}
	nonceBytes, err := base64.StdEncoding.DecodeString(envelope.Nonce)
	if err != nil || len(nonceBytes) != 24 {
		return nil, clienterrors.ErrCorruptEntry
	}
	box, err := base64.StdEncoding.DecodeString(envelope.Box)
	if err != nil {
		return nil, clienterrors.ErrCorruptEntry
	}

	key, err := s.deriveKey(salt)
	if err != nil {
		return nil, err
	}

	var nonce [24]byte
	copy(nonce[:], nonceBytes)
	plaintext, ok := secretbox.Open(nil, box, &nonce, key)
	if !ok {
		return nil, clienterrors.ErrCorruptEntry
	}
	return plaintext, nil
}

func (s *sealer) deriveKey(salt []byte) (*[32]byte, error) {
	derived, err := scrypt.Key([]byte(s.passphrase), salt, 1<<15, 8, 1, 32)
	if err != nil {
		return nil, errors.Wrap(err, "[sealer.deriveKey] scrypt")
	}
	var key [32]byte
	copy(key[:], derived)
	return &key, nil
}
