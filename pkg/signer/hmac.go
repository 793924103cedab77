// Package signer issues and verifies the opaque session tokens that carry a
// user identifier between the client and this service.
package signer

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/binary"
	"errors"
	"hash"
)

// Codec signs user identifiers into opaque tokens and back. Implementations
// must be safe for concurrent use.
type Codec interface {
	EncodeUserToken(userID string) string
	DecodeUserToken(token string) (string, error)
}

var (
	ErrTokenLength    = errors.New("invalid_token_length")
	ErrTokenSignature = errors.New("invalid_token_signature")
	ErrTokenPayload   = errors.New("invalid_token_payload")
)

// HMAC implements Codec using HMAC-SHA256 for integrity. Tokens are base64
// URL without padding: payload||sig.
type HMAC struct {
	key []byte
	h   func() hash.Hash
}

// NewHMAC creates an HMAC signer with the provided secret key.
func NewHMAC(key []byte) *HMAC {
	return &HMAC{key: append([]byte(nil), key...), h: sha256.New}
}

func (c *HMAC) seal(payload []byte) string {
	mac := hmac.New(c.h, c.key)
	mac.Write(payload)
	sig := mac.Sum(nil)
	buf := append(payload, sig...)
	return base64.RawURLEncoding.EncodeToString(buf)
}

func (c *HMAC) open(token string, minPayloadLen int) ([]byte, error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, err
	}
	if len(raw) < minPayloadLen+32 {
		return nil, ErrTokenLength
	}
	payload := raw[:len(raw)-32]
	sig := raw[len(raw)-32:]
	mac := hmac.New(c.h, c.key)
	mac.Write(payload)
	expected := mac.Sum(nil)
	if !hmac.Equal(sig, expected) {
		return nil, ErrTokenSignature
	}
	return payload, nil
}

// User token: idLen(uint16) + id bytes.
func (c *HMAC) EncodeUserToken(userID string) string {
	idBytes := []byte(userID)
	payload := make([]byte, 2+len(idBytes))
	binary.BigEndian.PutUint16(payload[0:2], uint16(len(idBytes)))
	copy(payload[2:], idBytes)
	return c.seal(payload)
}

func (c *HMAC) DecodeUserToken(token string) (string, error) {
	payload, err := c.open(token, 2)
	if err != nil {
		return "", err
	}
	idLen := int(binary.BigEndian.Uint16(payload[0:2]))
	if 2+idLen != len(payload) {
		return "", ErrTokenPayload
	}
	return string(payload[2:]), nil
}
