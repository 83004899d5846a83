package utils

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"strings"

	"golang.org/x/crypto/scrypt"
)

// scrypt parameters: N=32768 keeps derivation in the tens of milliseconds
// on current hardware, which is the point for login credentials.
const (
	scryptN = 32768
	scryptR = 8
	scryptP = 1
	keyLen  = 32
	saltLen = 16
)

var errMalformedHash = errors.New("malformed password hash")

// HashPassword derives an scrypt key from the password under a fresh
// random salt and returns it as "hex(key).hex(salt)". Hex excludes the
// dot, so splitting on it is unambiguous.
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}
	key, err := scrypt.Key([]byte(password), salt, scryptN, scryptR, scryptP, keyLen)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(key) + "." + hex.EncodeToString(salt), nil
}

// CheckPasswordHash re-derives the key from the supplied password using
// the stored salt and compares in constant time.
func CheckPasswordHash(password, stored string) bool {
	key, salt, err := decodeStored(stored)
	if err != nil {
		return false
	}
	derived, err := scrypt.Key([]byte(password), salt, scryptN, scryptR, scryptP, len(key))
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare(key, derived) == 1
}

func decodeStored(stored string) (key, salt []byte, err error) {
	parts := strings.Split(stored, ".")
	if len(parts) != 2 {
		return nil, nil, errMalformedHash
	}
	key, err = hex.DecodeString(parts[0])
	if err != nil || len(key) == 0 {
		return nil, nil, errMalformedHash
	}
	salt, err = hex.DecodeString(parts[1])
	if err != nil || len(salt) == 0 {
		return nil, nil, errMalformedHash
	}
	return key, salt, nil
}
