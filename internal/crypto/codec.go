// SPDX-License-Identifier: Apache-2.0

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"

	"github.com/MKhiriev/go-mirror-sync/models"
)

// ErrDecrypt is returned when an encrypted payload fails authentication,
// typically because of a wrong sync key or a corrupted blob.
var ErrDecrypt = errors.New("payload decryption failed")

// hkdfInfo domain-separates the record encryption key from any other key
// material derived from the same sync key.
const hkdfInfo = "mirror-sync/record-encryption"

// PlainCodec passes payloads through as JSON. Used for accounts that store
// records unencrypted.
type PlainCodec struct{}

// NewPlainCodec returns the passthrough codec.
func NewPlainCodec() *PlainCodec {
	return &PlainCodec{}
}

// DecodePayload implements [Codec].
func (c *PlainCodec) DecodePayload(rec models.Record) (models.BookmarkPayload, error) {
	var payload models.BookmarkPayload
	if err := json.Unmarshal(rec.Payload, &payload); err != nil {
		return models.BookmarkPayload{}, fmt.Errorf("decode payload of record %s: %w", rec.ID, err)
	}

	if payload.ID == "" {
		payload.ID = rec.ID
	}

	return payload, nil
}

// EncodePayload implements [Codec].
func (c *PlainCodec) EncodePayload(payload models.BookmarkPayload) (json.RawMessage, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode payload %s: %w", payload.ID, err)
	}
	return data, nil
}

// KeyBundleCodec encrypts and decrypts payloads with AES-GCM. The encryption
// key is derived from the account sync key via HKDF-SHA256, so the sync key
// itself never touches record data directly.
//
// Wire format: the record payload is a JSON string holding
// base64(nonce || ciphertext).
type KeyBundleCodec struct {
	aead cipher.AEAD
}

// NewKeyBundleCodec derives the record encryption key from syncKey and
// returns a ready codec. syncKey must be non-empty; it is the raw account
// sync key, not the derived encryption key.
func NewKeyBundleCodec(syncKey []byte) (*KeyBundleCodec, error) {
	if len(syncKey) == 0 {
		return nil, errors.New("empty sync key")
	}

	key := make([]byte, 32)
	if _, err := io.ReadFull(hkdf.New(sha256.New, syncKey, nil, []byte(hkdfInfo)), key); err != nil {
		return nil, fmt.Errorf("derive record encryption key: %w", err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("init cipher: %w", err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("init GCM: %w", err)
	}

	return &KeyBundleCodec{aead: aead}, nil
}

// DecodePayload implements [Codec].
func (c *KeyBundleCodec) DecodePayload(rec models.Record) (models.BookmarkPayload, error) {
	var encoded string
	if err := json.Unmarshal(rec.Payload, &encoded); err != nil {
		return models.BookmarkPayload{}, fmt.Errorf("record %s payload is not an encrypted blob: %w", rec.ID, err)
	}

	blob, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return models.BookmarkPayload{}, fmt.Errorf("record %s payload is not base64: %w", rec.ID, err)
	}

	if len(blob) < c.aead.NonceSize() {
		return models.BookmarkPayload{}, fmt.Errorf("record %s: %w: blob too short", rec.ID, ErrDecrypt)
	}

	nonce, ciphertext := blob[:c.aead.NonceSize()], blob[c.aead.NonceSize():]
	plaintext, err := c.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return models.BookmarkPayload{}, fmt.Errorf("record %s: %w", rec.ID, ErrDecrypt)
	}

	var payload models.BookmarkPayload
	if err := json.Unmarshal(plaintext, &payload); err != nil {
		return models.BookmarkPayload{}, fmt.Errorf("decode decrypted payload of record %s: %w", rec.ID, err)
	}

	if payload.ID == "" {
		payload.ID = rec.ID
	}

	return payload, nil
}

// EncodePayload implements [Codec].
func (c *KeyBundleCodec) EncodePayload(payload models.BookmarkPayload) (json.RawMessage, error) {
	plaintext, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode payload %s: %w", payload.ID, err)
	}

	nonce := make([]byte, c.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	blob := c.aead.Seal(nonce, nonce, plaintext, nil)
	encoded := base64.StdEncoding.EncodeToString(blob)

	data, err := json.Marshal(encoded)
	if err != nil {
		return nil, fmt.Errorf("wrap encrypted payload %s: %w", payload.ID, err)
	}

	return data, nil
}
