package accounts

import (
	"encoding/base64"

	"golang.org/x/crypto/bcrypt"
)

// CredentialCodec encodes passwords for storage in the account directory
// and verifies supplied passwords against the stored encoding.
//
// Two implementations exist. Base64Codec is a reversible encoding, not a
// credential hash, suitable only for demo deployments. BcryptCodec is the
// salted-hash upgrade; selecting it changes the stored format, so a
// directory written with one codec cannot be verified with the other.
type CredentialCodec interface {
	Encode(password string) (string, error)
	Verify(password, encoded string) bool
}

// Base64Codec stores the password as plain base64. Anyone with store
// access can read it back.
type Base64Codec struct{}

var _ CredentialCodec = Base64Codec{}

func (Base64Codec) Encode(password string) (string, error) {
	return base64.StdEncoding.EncodeToString([]byte(password)), nil
}

func (Base64Codec) Verify(password, encoded string) bool {
	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return false
	}
	return string(decoded) == password
}

// BcryptCodec stores a salted bcrypt hash.
type BcryptCodec struct {
	Cost int
}

var _ CredentialCodec = BcryptCodec{}

func (c BcryptCodec) Encode(password string) (string, error) {
	cost := c.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	return string(hash), err
}

func (BcryptCodec) Verify(password, encoded string) bool {
	return bcrypt.CompareHashAndPassword([]byte(encoded), []byte(password)) == nil
}
