package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"project-portal/internal/data/entity"
	"project-portal/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubSessions struct {
	session *entity.Session
	err     error
	asked   string
}

func (s *stubSessions) Create(context.Context, *entity.Session) error { return nil }
func (s *stubSessions) Revoke(context.Context, string) error          { return nil }

func (s *stubSessions) FindValidSession(_ context.Context, token string) (*entity.Session, error) {
	s.asked = token
	return s.session, s.err
}

func identityEcho(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := utils.GetIdentityIDFromContext(r.Context())
		require.True(t, ok)
		role, ok := utils.GetRoleFromContext(r.Context())
		require.True(t, ok)
		token, _ := utils.GetTokenFromContext(r.Context())
		w.Header().Set("X-Identity", id.String())
		w.Header().Set("X-Role", role.String())
		w.Header().Set("X-Token", token)
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestAuthSession(t *testing.T) {
	token := uuid.New()
	session := &entity.Session{
		IdentityID: uuid.New(),
		Role:       entity.RoleEmployee,
		Token:      token,
		ExpiresAt:  time.Now().Add(time.Hour),
	}

	tests := []struct {
		name      string
		header    string
		sessions  *stubSessions
		wantCode  int
		wantToken string
	}{
		{name: "missing header", sessions: &stubSessions{}, wantCode: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic abc", sessions: &stubSessions{}, wantCode: http.StatusUnauthorized},
		{name: "empty bearer", header: "Bearer ", sessions: &stubSessions{}, wantCode: http.StatusUnauthorized},
		{name: "unknown session", header: "Bearer " + token.String(), sessions: &stubSessions{}, wantCode: http.StatusUnauthorized, wantToken: token.String()},
		{name: "store failure", header: "Bearer " + token.String(), sessions: &stubSessions{err: errors.New("db down")}, wantCode: http.StatusInternalServerError, wantToken: token.String()},
		{name: "valid", header: "Bearer " + token.String(), sessions: &stubSessions{session: session}, wantCode: http.StatusNoContent, wantToken: token.String()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/tabs", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			AuthSession(tt.sessions, zap.NewNop())(identityEcho(t)).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantToken, tt.sessions.asked)
			if tt.wantCode == http.StatusNoContent {
				assert.Equal(t, session.IdentityID.String(), rec.Header().Get("X-Identity"))
				assert.Equal(t, "employee", rec.Header().Get("X-Role"))
				assert.Equal(t, token.String(), rec.Header().Get("X-Token"))
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	guard := RequireRole(zap.NewNop(), entity.RoleAdmin, entity.RoleEmployee)(ok)

	serve := func(ctx context.Context) int {
		req := httptest.NewRequest(http.MethodDelete, "/api/tabs/1", nil).WithContext(ctx)
		rec := httptest.NewRecorder()
		guard.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusUnauthorized, serve(context.Background()))
	assert.Equal(t, http.StatusOK, serve(utils.SetIdentityContext(context.Background(), uuid.New(), entity.RoleAdmin)))
	assert.Equal(t, http.StatusOK, serve(utils.SetIdentityContext(context.Background(), uuid.New(), entity.RoleEmployee)))
	assert.Equal(t, http.StatusForbidden, serve(utils.SetIdentityContext(context.Background(), uuid.New(), entity.RoleUser)))
}

func TestRecover(t *testing.T) {
	panicking := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	Recover(zap.NewNop())(panicking).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"success":false,"message":"Internal server error"}`, rec.Body.String())
}
