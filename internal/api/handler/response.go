package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creator-pitch-api/internal/domain"
	"github.com/vfg2006/creator-pitch-api/internal/usecases/authenticating"
	"github.com/vfg2006/creator-pitch-api/internal/usecases/outreach"
	"github.com/vfg2006/creator-pitch-api/internal/usecases/pitching"
	"github.com/vfg2006/creator-pitch-api/pkg/apiErrors"
	"github.com/vfg2006/creator-pitch-api/pkg/log"
	"github.com/vfg2006/creator-pitch-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("Erro ao enviar resposta")
	}
}

// currentUser lê as claims do AuthMiddleware e responde 401 quando ausentes
func currentUser(w http.ResponseWriter, r *http.Request) (*domain.Claims, bool) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
		return nil, false
	}
	return claims, true
}

// handleServiceError traduz os erros tipados dos usecases para a resposta da API
func handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		outreachErr *outreach.OutreachError
		pitchErr    *pitching.PitchError
		authErr     *authenticating.AuthError
	)

	switch {
	case errors.As(err, &outreachErr):
		var details any
		if outreachErr.Existing != nil {
			details = outreachErr.Existing
		}
		apiErrors.WriteError(w, outreachErr.Code, outreachErr.Error(), details)
		return

	case errors.As(err, &pitchErr):
		apiErrors.WriteError(w, pitchErr.Code, pitchErr.Error(), nil)
		return

	case errors.As(err, &authErr):
		apiErrors.WriteError(w, authErr.Code, authErr.Error(), nil)
		return
	}

	log.ForContext(r.Context()).WithError(err).Error("Erro não mapeado")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno no servidor", nil)
}
