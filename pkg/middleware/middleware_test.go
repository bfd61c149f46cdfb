package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/creator-pitch-api/internal/domain"
	"github.com/vfg2006/creator-pitch-api/pkg/log"
)

type stubValidator struct {
	claims *domain.Claims
	err    error
	token  string
}

func (s *stubValidator) ValidateToken(tokenString string) (*domain.Claims, error) {
	s.token = tokenString
	return s.claims, s.err
}

func okHandler(t *testing.T, check func(r *http.Request)) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if check != nil {
			check(r)
		}
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		header     string
		validator  *stubValidator
		wantStatus int
	}{
		{"Rota pública sem token", "/v1/login", "", &stubValidator{}, http.StatusNoContent},
		{"Healthcheck sem token", "/healthcheck", "", &stubValidator{}, http.StatusNoContent},
		{"Sem header", "/v1/outreach", "", &stubValidator{}, http.StatusUnauthorized},
		{"Sem prefixo Bearer", "/v1/outreach", "Token abc", &stubValidator{}, http.StatusUnauthorized},
		{"Token inválido", "/v1/outreach", "Bearer abc", &stubValidator{err: errors.New("invalid")}, http.StatusUnauthorized},
		{"Token válido", "/v1/outreach", "Bearer abc", &stubValidator{claims: &domain.Claims{UserID: 7}}, http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := AuthMiddleware(tt.validator)(okHandler(t, nil))

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestAuthMiddleware_StoresClaims(t *testing.T) {
	validator := &stubValidator{claims: &domain.Claims{UserID: 7, UserRoleID: RoleCreator}}

	var got *domain.Claims
	handler := AuthMiddleware(validator)(okHandler(t, func(r *http.Request) {
		got, _ = ClaimsFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/v1/me", nil)
	req.Header.Set("Authorization", "Bearer abc.def")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	require.NotNil(t, got)
	assert.Equal(t, 7, got.UserID)
	assert.Equal(t, "abc.def", validator.token)
}

func TestRoleMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		claims     *domain.Claims
		middleware func(http.Handler) http.Handler
		wantStatus int
	}{
		{"Sem claims", nil, AllRoles(), http.StatusUnauthorized},
		{"Criador em rota de admin", &domain.Claims{UserRoleID: RoleCreator}, AdminOnly(), http.StatusForbidden},
		{"Admin em rota de admin", &domain.Claims{UserRoleID: RoleAdmin}, AdminOnly(), http.StatusNoContent},
		{"Criador em rota comum", &domain.Claims{UserRoleID: RoleCreator}, AllRoles(), http.StatusNoContent},
		{"Role desconhecido", &domain.Claims{UserRoleID: 99}, AllRoles(), http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			validator := &stubValidator{claims: tt.claims}
			var handler http.Handler = tt.middleware(okHandler(t, nil))
			if tt.claims != nil {
				handler = AuthMiddleware(validator)(handler)
			}

			req := httptest.NewRequest(http.MethodGet, "/v1/outreach", nil)
			req.Header.Set("Authorization", "Bearer abc")
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestCors(t *testing.T) {
	handler := Cors([]string{"https://app.example.com"})(okHandler(t, nil))

	t.Run("Origem permitida", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/outreach", nil)
		req.Header.Set("Origin", "https://app.example.com")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, "https://app.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("Origem não permitida", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/outreach", nil)
		req.Header.Set("Origin", "https://evil.example.com")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/v1/pitch/generate", nil)
		req.Header.Set("Origin", "https://app.example.com")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestLoggingMiddleware(t *testing.T) {
	handler := LoggingMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, log.GetCorrelationID(r.Context()))

		_, _ = w.Write([]byte("chunk"))
		flusher, ok := w.(http.Flusher)
		require.True(t, ok)
		flusher.Flush()
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/pitch/generate", nil))

	assert.NotEmpty(t, rec.Header().Get(CorrelationIDHeader))
	assert.True(t, rec.Flushed)
	assert.Equal(t, "chunk", rec.Body.String())
}

func TestLogPanicMiddleware(t *testing.T) {
	handler := LogPanicMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/outreach", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"code":"SRV_001","message":"Erro interno no servidor"}`, rec.Body.String())
}
