package security

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters, OWASP-recommended: 19 MiB memory, 2 iterations,
// 1 thread, 16-byte salt.
const (
	argonMemoryKiB  = 19456
	argonIterations = 2
	argonThreads    = 1
	argonSaltLen    = 16
	argonKeyLen     = 32
	argonVersion    = 0x13
)

var ErrInvalidPassword = fmt.Errorf("password is empty or invalid")
var ErrInvalidHash = fmt.Errorf("password hash is not in the expected format")

// HashPassword hashes password with Argon2id and returns a self-describing
// PHC-format string: $argon2id$v=19$m=19456,t=2,p=1$<salt>$<digest>
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", ErrInvalidPassword
	}

	salt := make([]byte, argonSaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generating salt: %w", err)
	}

	digest := argon2.IDKey([]byte(password), salt, argonIterations, argonMemoryKiB, argonThreads, argonKeyLen)

	encoded := fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argonVersion, argonMemoryKiB, argonIterations, argonThreads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(digest))

	return encoded, nil
}

// VerifyPassword reports whether password matches hash. A malformed hash
// string is an error; a well-formed hash that simply doesn't match the
// password is (false, nil) — never conflate the two.
func VerifyPassword(password, hash string) (bool, error) {
	if password == "" {
		return false, ErrInvalidPassword
	}

	params, salt, digest, err := decodeHash(hash)
	if err != nil {
		return false, err
	}

	candidate := argon2.IDKey([]byte(password), salt, params.iterations, params.memoryKiB, params.threads, uint32(len(digest)))

	return subtle.ConstantTimeCompare(candidate, digest) == 1, nil
}

type hashParams struct {
	memoryKiB  uint32
	iterations uint32
	threads    uint8
}

func decodeHash(encoded string) (hashParams, []byte, []byte, error) {
	parts := strings.Split(encoded, "$")
	// "" $argon2id $v=19 $m=...,t=...,p=... $salt $digest
	if len(parts) != 6 || parts[1] != "argon2id" {
		return hashParams{}, nil, nil, ErrInvalidHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argonVersion {
		return hashParams{}, nil, nil, ErrInvalidHash
	}

	var p hashParams
	var m, t, par int
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &m, &t, &par); err != nil {
		return hashParams{}, nil, nil, ErrInvalidHash
	}
	p.memoryKiB, p.iterations, p.threads = uint32(m), uint32(t), uint8(par)

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return hashParams{}, nil, nil, ErrInvalidHash
	}

	digest, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return hashParams{}, nil, nil, ErrInvalidHash
	}

	return p, salt, digest, nil
}
