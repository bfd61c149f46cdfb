package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creator-pitch-api/internal/usecases/authenticating"
	"github.com/vfg2006/creator-pitch-api/pkg/apiErrors"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		token, err := service.LoginUser(r.Context(), req.Email, req.Password)
		if err != nil {
			logrus.WithError(err).Warn("Falha no login")
			handleServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{
			"token": token,
		})
	}
}

// GetMe retorna as informações do usuário logado
func GetMe(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := currentUser(w, r)
		if !ok {
			return
		}

		user, err := service.GetUserProfile(r.Context(), userClaims.UserID)
		if err != nil {
			handleServiceError(w, r, err)
			return
		}

		if user == nil {
			apiErrors.WriteError(w, apiErrors.ErrUserNotFound, "Usuário não encontrado", nil)
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}
