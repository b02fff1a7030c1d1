package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenProvider_IssueAndParse(t *testing.T) {
	p := NewTokenProvider("secret", 30*time.Minute, time.Hour)

	access, err := p.IssueAccess("user1", RoleUser)
	require.NoError(t, err)
	claims, err := p.Parse(access)
	require.NoError(t, err)
	assert.Equal(t, "user1", claims.Subject)
	assert.Equal(t, RoleUser, claims.Role)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)

	refresh, err := p.IssueRefresh("user1", RoleUser)
	require.NoError(t, err)
	claims, err = p.Parse(refresh)
	require.NoError(t, err)
	assert.Equal(t, TokenTypeRefresh, claims.TokenType)

	assert.Equal(t, "user1", p.SubjectOf(access))
	assert.Equal(t, "", p.SubjectOf("not-a-token"))
}

func TestTokenProvider_RejectsExpiredAndForeignTokens(t *testing.T) {
	p := NewTokenProvider("secret", time.Minute, time.Hour)
	issued := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	p.now = func() time.Time { return issued }

	token, err := p.IssueAccess("user1", RoleUser)
	require.NoError(t, err)
	assert.True(t, p.Validate(token))

	p.now = func() time.Time { return issued.Add(2 * time.Minute) }
	assert.False(t, p.Validate(token))

	other := NewTokenProvider("other-secret", time.Minute, time.Hour)
	foreign, err := other.IssueAccess("user1", RoleUser)
	require.NoError(t, err)
	p.now = time.Now
	assert.False(t, p.Validate(foreign))
}
