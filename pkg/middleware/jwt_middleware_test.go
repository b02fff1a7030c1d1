package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fitple/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticResolver struct {
	principals map[string]*utils.Principal
}

func (r staticResolver) ResolvePrincipal(_ context.Context, accountID, role string) (*utils.Principal, error) {
	p, ok := r.principals[role+":"+accountID]
	if !ok {
		return nil, utils.ErrUnauthorized
	}
	return p, nil
}

func newAuthRouter(tokens *utils.TokenProvider, resolver PrincipalResolver, roles ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(TraceIDMiddleware())
	handlers := []gin.HandlerFunc{JWTAuthMiddleware(tokens, resolver)}
	if len(roles) > 0 {
		handlers = append(handlers, RoleMiddleware(roles...))
	}
	handlers = append(handlers, func(c *gin.Context) {
		p, ok := GetPrincipal(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, p.AccountID)
	})
	r.GET("/me", handlers...)
	return r
}

func get(r *gin.Engine, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuthMiddleware(t *testing.T) {
	tokens := utils.NewTokenProvider("secret", time.Minute, time.Hour)
	resolver := staticResolver{principals: map[string]*utils.Principal{
		"USER:user1": {ID: uuid.New(), AccountID: "user1", Role: utils.RoleUser},
	}}
	r := newAuthRouter(tokens, resolver)

	access, err := tokens.IssueAccess("user1", utils.RoleUser)
	require.NoError(t, err)
	w := get(r, access)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user1", w.Body.String())
	assert.NotEmpty(t, w.Header().Get(TraceIDHeader))

	assert.Equal(t, http.StatusUnauthorized, get(r, "").Code)
	assert.Equal(t, http.StatusUnauthorized, get(r, "garbage").Code)

	refresh, err := tokens.IssueRefresh("user1", utils.RoleUser)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, get(r, refresh).Code)

	unknown, err := tokens.IssueAccess("ghost", utils.RoleUser)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, get(r, unknown).Code)
}

func TestRoleMiddleware(t *testing.T) {
	tokens := utils.NewTokenProvider("secret", time.Minute, time.Hour)
	resolver := staticResolver{principals: map[string]*utils.Principal{
		"USER:user1":   {ID: uuid.New(), AccountID: "user1", Role: utils.RoleUser},
		"OWNER:owner1": {ID: uuid.New(), AccountID: "owner1", Role: utils.RoleOwner},
	}}
	r := newAuthRouter(tokens, resolver, utils.RoleOwner)

	owner, _ := tokens.IssueAccess("owner1", utils.RoleOwner)
	assert.Equal(t, http.StatusOK, get(r, owner).Code)

	user, _ := tokens.IssueAccess("user1", utils.RoleUser)
	assert.Equal(t, http.StatusForbidden, get(r, user).Code)
}

func TestTraceIDMiddleware_ReusesIncomingID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(TraceIDMiddleware(), RequestLogger())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString("trace_id")) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(TraceIDHeader, "trace-123")
	r.ServeHTTP(w, req)

	assert.Equal(t, "trace-123", w.Body.String())
	assert.Equal(t, "trace-123", w.Header().Get(TraceIDHeader))
}
