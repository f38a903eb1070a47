package storage

import (
	"bytes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"
)

// sealedKind marks a sealed document so it can be told apart from a plain one.
const sealedKind = "phonebook/sealed"

// sealedVersion is the current sealed envelope format.
const sealedVersion = 1

var (
	errWrongPassphrase    = errors.New("wrong passphrase or corrupted file")
	errPassphraseRequired = errors.New("file is sealed and no passphrase is configured")
	errKDFParams          = errors.New("sealed envelope has out-of-range scrypt parameters")
)

// kdfParams are the scrypt cost parameters.
type kdfParams struct {
	N int
	R int
	P int
}

func defaultKDFParams() kdfParams { return kdfParams{N: 1 << 15, R: 8, P: 1} }

// Upper bounds for parameters read back from a file. They sit well above
// the written defaults and keep scrypt's memory use near 128 MiB.
const (
	maxKDFN = 1 << 20
	maxKDFR = 32
	maxKDFP = 16
)

// check rejects parameters a file may carry but scrypt cannot safely run
// with. N must be a power of two greater than one.
func (p kdfParams) check() error {
	switch {
	case p.N <= 1 || p.N > maxKDFN || p.N&(p.N-1) != 0:
		return fmt.Errorf("%w: N=%d", errKDFParams, p.N)
	case p.R < 1 || p.R > maxKDFR:
		return fmt.Errorf("%w: r=%d", errKDFParams, p.R)
	case p.P < 1 || p.P > maxKDFP:
		return fmt.Errorf("%w: p=%d", errKDFParams, p.P)
	}
	return nil
}

// sealed is the on-disk structure holding the ciphertext and KDF parameters.
type sealed struct {
	Kind   string `json:"kind"`
	V      int    `json:"v"`
	Salt   []byte `json:"salt"`
	N      int    `json:"scrypt_N"`
	R      int    `json:"scrypt_r"`
	P      int    `json:"scrypt_p"`
	Nonce  []byte `json:"nonce"`
	Cipher []byte `json:"cipher"`
}

// isSealed reports whether b holds a sealed envelope.
func isSealed(b []byte) bool {
	if !bytes.HasPrefix(bytes.TrimSpace(b), []byte("{")) {
		return false
	}
	var probe struct {
		Kind string `json:"kind"`
	}
	if err := json.Unmarshal(b, &probe); err != nil {
		return false
	}
	return probe.Kind == sealedKind
}

// seal derives a key from passphrase and encrypts plain into a sealed
// envelope.
func seal(passphrase string, plain []byte, params kdfParams) ([]byte, error) {
	salt := make([]byte, 16)
	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}
	aead, err := newAEAD(passphrase, salt, params)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}

	b, err := json.MarshalIndent(sealed{
		Kind:   sealedKind,
		V:      sealedVersion,
		Salt:   salt,
		N:      params.N,
		R:      params.R,
		P:      params.P,
		Nonce:  nonce,
		Cipher: aead.Seal(nil, nonce, plain, salt),
	}, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}

// unseal opens a sealed envelope with a key derived from passphrase.
func unseal(passphrase string, b []byte) ([]byte, error) {
	if passphrase == "" {
		return nil, errPassphraseRequired
	}
	var s sealed
	if err := json.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("decoding sealed envelope: %w", err)
	}
	if s.V != sealedVersion {
		return nil, fmt.Errorf("%w: sealed envelope %d", errUnsupportedVersion, s.V)
	}

	params := kdfParams{N: s.N, R: s.R, P: s.P}
	if err := params.check(); err != nil {
		return nil, err
	}
	aead, err := newAEAD(passphrase, s.Salt, params)
	if err != nil {
		return nil, err
	}
	if len(s.Nonce) != aead.NonceSize() {
		return nil, errWrongPassphrase
	}
	plain, err := aead.Open(nil, s.Nonce, s.Cipher, s.Salt)
	if err != nil {
		return nil, errWrongPassphrase
	}
	return plain, nil
}

func newAEAD(passphrase string, salt []byte, params kdfParams) (cipher.AEAD, error) {
	key, err := scrypt.Key([]byte(passphrase), salt, params.N, params.R, params.P, chacha20poly1305.KeySize)
	if err != nil {
		return nil, fmt.Errorf("deriving key: %w", err)
	}
	return chacha20poly1305.New(key)
}
