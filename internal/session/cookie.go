package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/jonathan/interview-prep/internal/types"
)

// maxCookieToken keeps the whole Set-Cookie value under the 4096-byte browser limit.
const maxCookieToken = 3800

// PayloadTooLargeError is returned when a submission does not fit in a cookie.
type PayloadTooLargeError struct {
	Size  int
	Limit int
}

func (e *PayloadTooLargeError) Error() string {
	return fmt.Sprintf("session: signed submission is %d bytes, cookie limit is %d", e.Size, e.Limit)
}

type submissionClaims struct {
	Submission json.RawMessage `json:"submission"`
	jwt.RegisteredClaims
}

// CookieStore keeps nothing server-side: the token is a signed JWT carrying the submission.
type CookieStore struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewCookieStore creates a store that signs tokens with HS256 using secret.
func NewCookieStore(secret string, ttl time.Duration) *CookieStore {
	return &CookieStore{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (s *CookieStore) Save(_ context.Context, sub *types.Submission) (string, error) {
	data, err := encode(sub)
	if err != nil {
		return "", err
	}

	now := s.now()
	claims := &submissionClaims{
		Submission: data,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("session: failed to sign token: %w", err)
	}
	if len(token) > maxCookieToken {
		return "", &PayloadTooLargeError{Size: len(token), Limit: maxCookieToken}
	}
	return token, nil
}

func (s *CookieStore) Load(_ context.Context, token string) (*types.Submission, error) {
	if token == "" {
		return nil, ErrNotFound
	}

	claims := &submissionClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now), jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrNotFound
		}
		return nil, &DecodeError{Cause: err}
	}

	return decode(claims.Submission)
}

func (s *CookieStore) Close() error {
	return nil
}
