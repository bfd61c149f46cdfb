package handler

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/vfg2006/creator-pitch-api/internal/api/handler/router"
	"github.com/vfg2006/creator-pitch-api/internal/domain"
	"github.com/vfg2006/creator-pitch-api/pkg/middleware"
)

var (
	creatorClaims = &domain.Claims{UserID: 7, UserName: "Jane", UserRoleID: middleware.RoleCreator}
	adminClaims   = &domain.Claims{UserID: 1, UserName: "Admin", UserRoleID: middleware.RoleAdmin}
)

// serve executa a requisição pelas rotas informadas, com as claims já no contexto
func serve(t *testing.T, routes []router.Route, claims *domain.Claims, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if claims != nil {
		req = req.WithContext(context.WithValue(req.Context(), middleware.ContextKeyUser, claims))
	}

	rec := httptest.NewRecorder()
	router.New(router.WithRoutes(routes...)).ServeHTTP(rec, req)
	return rec
}

func ptr[T any](v T) *T {
	return &v
}
