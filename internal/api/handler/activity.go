package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/creator-pitch-api/internal/usecases/activity"
	"github.com/vfg2006/creator-pitch-api/pkg/apiErrors"
)

// GetBrandActivity retorna a janela de 6 meses de parcerias e o sinal de contato da marca
func GetBrandActivity(service activity.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		brandID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		result, err := service.BrandActivity(r.Context(), brandID)
		if err != nil {
			switch {
			case errors.Is(err, activity.ErrBrandIDRequired):
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			case errors.Is(err, activity.ErrBrandNotFound):
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, err.Error(), nil)
			default:
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, activity.ErrFetchActivity.Error(), nil)
			}
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}
