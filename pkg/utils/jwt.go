package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

type Claims struct {
	Role      string `json:"role"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// TokenProvider issues and validates HS256 tokens whose subject is an account id.
type TokenProvider struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

func NewTokenProvider(secret string, accessTTL, refreshTTL time.Duration) *TokenProvider {
	return &TokenProvider{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        time.Now,
	}
}

func (p *TokenProvider) RefreshTTL() time.Duration { return p.refreshTTL }

func (p *TokenProvider) IssueAccess(subject, role string) (string, error) {
	return p.issue(subject, role, TokenTypeAccess, p.accessTTL)
}

func (p *TokenProvider) IssueRefresh(subject, role string) (string, error) {
	return p.issue(subject, role, TokenTypeRefresh, p.refreshTTL)
}

func (p *TokenProvider) issue(subject, role, tokenType string, ttl time.Duration) (string, error) {
	now := p.now()
	claims := &Claims{
		Role:      role,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(p.secret)
}

func (p *TokenProvider) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return p.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(p.now))
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

func (p *TokenProvider) Validate(tokenString string) bool {
	_, err := p.Parse(tokenString)
	return err == nil
}

// SubjectOf returns "" when the token does not validate.
func (p *TokenProvider) SubjectOf(tokenString string) string {
	claims, err := p.Parse(tokenString)
	if err != nil {
		return ""
	}
	return claims.Subject
}
