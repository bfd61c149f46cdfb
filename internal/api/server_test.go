package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/creator-pitch-api/internal/config"
	"github.com/vfg2006/creator-pitch-api/internal/domain"
	authmocks "github.com/vfg2006/creator-pitch-api/internal/usecases/authenticating/mocks"
	outreachmocks "github.com/vfg2006/creator-pitch-api/internal/usecases/outreach/mocks"
	pitchingmocks "github.com/vfg2006/creator-pitch-api/internal/usecases/pitching/mocks"
	"github.com/vfg2006/creator-pitch-api/pkg/middleware"
	"go.uber.org/mock/gomock"
)

func newTestHandler(t *testing.T) (http.Handler, *authmocks.MockAuthenticator, *outreachmocks.MockService) {
	ctrl := gomock.NewController(t)
	auth := authmocks.NewMockAuthenticator(ctrl)
	outreachService := outreachmocks.NewMockService(ctrl)

	cfg := &config.Config{Server: config.Server{AllowedOrigins: []string{"https://app.example.com"}}}

	return NewHandler(cfg, Services{
		Authenticator: auth,
		Outreach:      outreachService,
		Pitching:      pitchingmocks.NewMockService(ctrl),
	}), auth, outreachService
}

func TestNewHandler_Healthcheck(t *testing.T) {
	h, _, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(middleware.CorrelationIDHeader))
}

func TestNewHandler_RequiresToken(t *testing.T) {
	h, _, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/pitch/sent?brandId=brand_1", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestNewHandler_AuthenticatedRequest(t *testing.T) {
	h, auth, outreachService := newTestHandler(t)

	auth.EXPECT().ValidateToken("good-token").Return(&domain.Claims{UserID: 7, UserRoleID: middleware.RoleCreator}, nil)
	outreachService.EXPECT().CheckPitched(gomock.Any(), 7, "brand_1").Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/pitch/sent?brandId=brand_1", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	req.Header.Set("Origin", "https://app.example.com")
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"pitched":false,"outreach":null}`, rec.Body.String())
	assert.Equal(t, "https://app.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestNew_RequiresServices(t *testing.T) {
	_, err := New(&config.Config{}, Services{})
	assert.Error(t, err)
}
