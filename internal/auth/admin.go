package auth

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const (
	AdminTokenHeader = "X-FITQUEST-ADMIN-TOKEN"

	adminTokenBytes = 32
	adminTokenCost  = 12
)

// AdminChecker validates admin tokens against a bcrypt hash.
type AdminChecker struct {
	tokenHash []byte
}

func NewAdminChecker(tokenHash string) *AdminChecker {
	return &AdminChecker{
		tokenHash: []byte(tokenHash),
	}
}

func (c *AdminChecker) IsAdmin(token string) bool {
	if len(c.tokenHash) == 0 || token == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword(c.tokenHash, []byte(token)) == nil
}

// HashAdminToken produces the value expected in FITQUEST_ADMIN_TOKEN_HASH.
func HashAdminToken(token string) (string, error) {
	if token == "" {
		return "", fmt.Errorf("empty admin token")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(token), adminTokenCost)
	if err != nil {
		return "", fmt.Errorf("hash admin token: %w", err)
	}
	return string(hash), nil
}

// NewAdminToken returns a random URL safe token and its hash.
func NewAdminToken() (token, hash string, err error) {
	buf := make([]byte, adminTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", "", fmt.Errorf("read random bytes: %w", err)
	}
	token = base64.RawURLEncoding.EncodeToString(buf)
	hash, err = HashAdminToken(token)
	if err != nil {
		return "", "", err
	}
	return token, hash, nil
}
