package service

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrWeakToken    = errors.New("token does not meet requirements")
)

const minTokenLength = 24

func validateTokenStrength(token string) error {
	if len(token) < minTokenLength {
		return fmt.Errorf("%w: must be at least %d characters", ErrWeakToken, minTokenLength)
	}

	var hasLetter, hasNumber bool
	for _, char := range token {
		switch {
		case unicode.IsLetter(char):
			hasLetter = true
		case unicode.IsNumber(char):
			hasNumber = true
		}
	}

	var missing []string
	if !hasLetter {
		missing = append(missing, "letter")
	}
	if !hasNumber {
		missing = append(missing, "number")
	}
	if len(missing) == 1 {
		return fmt.Errorf("%w: must contain at least one %s", ErrWeakToken, missing[0])
	}
	if len(missing) == 2 {
		return fmt.Errorf("%w: must contain at least one %s and %s", ErrWeakToken, missing[0], missing[1])
	}
	return nil
}

// AuthService checks API bearer tokens against a bcrypt hash. With no hash
// configured authentication is disabled.
type AuthService struct {
	tokenHash []byte
}

func NewAuthService(tokenHash string) *AuthService {
	return &AuthService{tokenHash: []byte(tokenHash)}
}

func (s *AuthService) Enabled() bool {
	return len(s.tokenHash) > 0
}

func (s *AuthService) ValidateToken(token string) error {
	if !s.Enabled() {
		return nil
	}
	if token == "" {
		return ErrInvalidToken
	}
	if err := bcrypt.CompareHashAndPassword(s.tokenHash, []byte(token)); err != nil {
		return ErrInvalidToken
	}
	return nil
}

// HashToken returns the bcrypt hash to configure as API_TOKEN_HASH.
func HashToken(token string) (string, error) {
	if err := validateTokenStrength(token); err != nil {
		return "", err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(token), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// GenerateToken returns a random URL-safe token that passes
// validateTokenStrength.
func GenerateToken() (string, error) {
	for {
		buf := make([]byte, 32)
		if _, err := rand.Read(buf); err != nil {
			return "", err
		}
		token := base64.RawURLEncoding.EncodeToString(buf)
		if validateTokenStrength(token) == nil {
			return token, nil
		}
	}
}
