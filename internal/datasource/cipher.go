package datasource

import (
	"crypto/cipher"
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"
)

// envelope is the JSON structure the cipher layer stores in the inner source,
// holding the ciphertext and the KDF salt needed to reopen it.
type envelope struct {
	V      int    `json:"v"`
	Salt   []byte `json:"salt"`
	Cipher []byte `json:"cipher"`
}

const envelopeVersion = 1

// Tunables for scrypt key derivation.
func scryptParams() (N, r, p int) { return 1 << 15, 8, 1 }

// CipherLayer encrypts the value with a passphrase-derived key before it
// reaches the inner source and decrypts it on the way back. The stored form
// is a base64-wrapped JSON envelope, so it still fits the text-valued
// DataSource contract.
//
// A wrong passphrase, or an inner value not produced by a matching Write,
// fails with ErrDecode.
type CipherLayer struct {
	*Wrapper
	passphrase string
}

// NewCipherLayer returns a Layer binding the given passphrase.
func NewCipherLayer(passphrase string) Layer {
	return func(inner DataSource) DataSource {
		return &CipherLayer{Wrapper: NewWrapper(inner), passphrase: passphrase}
	}
}

func (l *CipherLayer) Write(value string) error {
	var salt [16]byte
	if _, err := rand.Read(salt[:]); err != nil {
		return err
	}
	aead, err := l.open(salt[:])
	if err != nil {
		return err
	}
	var nonce [chacha20poly1305.NonceSize]byte // zero nonce; salt-bound key guarantees uniqueness
	ct := aead.Seal(nil, nonce[:], []byte(value), salt[:])

	blob, err := json.Marshal(envelope{V: envelopeVersion, Salt: salt[:], Cipher: ct})
	if err != nil {
		return err
	}
	return l.Inner().Write(base64.StdEncoding.EncodeToString(blob))
}

func (l *CipherLayer) Read() (string, error) {
	stored, err := l.Inner().Read()
	if err != nil {
		return "", err
	}
	blob, err := base64.StdEncoding.DecodeString(stored)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecode, err)
	}
	var env envelope
	if err := json.Unmarshal(blob, &env); err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if env.V > envelopeVersion {
		return "", fmt.Errorf("%w: unsupported envelope version %d", ErrDecode, env.V)
	}
	aead, err := l.open(env.Salt)
	if err != nil {
		return "", err
	}
	var nonce [chacha20poly1305.NonceSize]byte
	pt, err := aead.Open(nil, nonce[:], env.Cipher, env.Salt)
	if err != nil {
		return "", fmt.Errorf("%w: wrong passphrase or corrupted value", ErrDecode)
	}
	return string(pt), nil
}

// open derives the AEAD for salt and wipes the intermediate key.
func (l *CipherLayer) open(salt []byte) (cipher.AEAD, error) {
	N, r, p := scryptParams()
	key, err := scrypt.Key([]byte(l.passphrase), salt, N, r, p, chacha20poly1305.KeySize)
	if err != nil {
		return nil, err
	}
	defer wipe(key)
	return chacha20poly1305.New(key)
}

// wipe overwrites b with zeros in a constant-time friendly way.
func wipe(b []byte) {
	if len(b) == 0 {
		return
	}
	subtle.ConstantTimeCopy(1, b, make([]byte, len(b)))
}
