package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/creator-pitch-api/infrastructure/integrator/profile"
	"github.com/vfg2006/creator-pitch-api/pkg/apiErrors"
	"github.com/vfg2006/creator-pitch-api/pkg/log"
)

// GetCreatorProfile repassa o perfil normalizado do provedor de perfis
func GetCreatorProfile(fetcher profile.ProfileFetcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := httprouter.ParamsFromContext(r.Context()).ByName("username")
		if username == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "username não informado", nil)
			return
		}

		creator, err := fetcher.FetchProfile(r.Context(), username)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).WithField("username", username).Error("Erro ao buscar perfil")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao consultar o serviço de perfis", nil)
			return
		}

		if creator == nil {
			apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Perfil não encontrado", username)
			return
		}

		writeJSON(w, http.StatusOK, creator)
	}
}
