package token

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubResolver struct {
	identities map[string]*Identity
}

func (s *stubResolver) ResolveIdentity(_ context.Context, email string) (*Identity, error) {
	if identity, ok := s.identities[email]; ok {
		return identity, nil
	}
	return nil, errors.New("user not found")
}

func newAuthTestRouter(t *testing.T, svc *Service, resolver IdentityResolver, roles ...string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	handlers := []gin.HandlerFunc{AuthRequired(svc, resolver)}
	if len(roles) > 0 {
		handlers = append(handlers, RequireRole(roles...))
	}
	handlers = append(handlers, func(c *gin.Context) {
		identity, ok := IdentityFromContext(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"email": identity.Email})
	})
	r.GET("/protected", handlers...)
	return r
}

func TestAuthRequired(t *testing.T) {
	t.Parallel()

	svc := NewService("test-secret", time.Hour)
	resolver := &stubResolver{identities: map[string]*Identity{
		"user@example.com": {ID: 1, Email: "user@example.com", Role: "tutor"},
	}}

	valid, err := svc.Issue("user@example.com", "tutor")
	require.NoError(t, err)
	expired, err := svc.IssueWithTTL("user@example.com", "tutor", -time.Minute)
	require.NoError(t, err)
	unknown, err := svc.Issue("ghost@example.com", "tutor")
	require.NoError(t, err)
	forged, err := NewService("other-secret", time.Hour).Issue("user@example.com", "tutor")
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{name: "valid bearer token", header: "Bearer " + valid, wantStatus: http.StatusOK},
		{name: "lowercase scheme accepted", header: "bearer " + valid, wantStatus: http.StatusOK},
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "no token after scheme", header: "Bearer", wantStatus: http.StatusUnauthorized},
		{name: "extra fields", header: "Bearer " + valid + " trailing", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic " + valid, wantStatus: http.StatusUnauthorized},
		{name: "expired token", header: "Bearer " + expired, wantStatus: http.StatusUnauthorized},
		{name: "forged token", header: "Bearer " + forged, wantStatus: http.StatusUnauthorized},
		{name: "token for vanished user", header: "Bearer " + unknown, wantStatus: http.StatusUnauthorized},
	}

	r := newAuthTestRouter(t, svc, resolver)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestRequireRole(t *testing.T) {
	t.Parallel()

	svc := NewService("test-secret", time.Hour)
	resolver := &stubResolver{identities: map[string]*Identity{
		"vet@example.com":   {ID: 1, Email: "vet@example.com", Role: "vet"},
		"tutor@example.com": {ID: 2, Email: "tutor@example.com", Role: "tutor"},
	}}

	tests := []struct {
		name       string
		email      string
		allowed    []string
		wantStatus int
	}{
		{name: "role allowed", email: "vet@example.com", allowed: []string{"vet"}, wantStatus: http.StatusOK},
		{name: "role among several allowed", email: "tutor@example.com", allowed: []string{"vet", "tutor"}, wantStatus: http.StatusOK},
		{name: "role forbidden", email: "tutor@example.com", allowed: []string{"vet"}, wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newAuthTestRouter(t, svc, resolver, tt.allowed...)
			signed, err := svc.Issue(tt.email, "")
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			req.Header.Set("Authorization", "Bearer "+signed)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestIdentityFromContext_Missing(t *testing.T) {
	t.Parallel()
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	_, ok := IdentityFromContext(c)
	assert.False(t, ok)
}
