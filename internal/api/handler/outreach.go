package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/creator-pitch-api/internal/domain"
	"github.com/vfg2006/creator-pitch-api/internal/usecases/outreach"
	"github.com/vfg2006/creator-pitch-api/pkg/apiErrors"
)

type UpdateOutreachRequest struct {
	Status *string  `json:"status"`
	Amount *float64 `json:"amount"`
	Notes  *string  `json:"notes"`
}

type RecordPitchRequest struct {
	BrandID      string  `json:"brandId"`
	PitchSubject *string `json:"pitchSubject"`
	PitchBody    *string `json:"pitchBody"`
	PitchTone    *string `json:"pitchTone"`
	TemplateID   *string `json:"templateId"`
}

// queryInt devolve 0 para parâmetro ausente; o usecase aplica os defaults
func queryInt(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}

// ListOutreach retorna a página de outreach do usuário junto com as estatísticas por status
func ListOutreach(service outreach.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := currentUser(w, r)
		if !ok {
			return
		}

		page, err := queryInt(r, "page")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "page deve ser um número", nil)
			return
		}

		limit, err := queryInt(r, "limit")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "limit deve ser um número", nil)
			return
		}

		records, pagination, err := service.ListForUser(r.Context(), userClaims.UserID, r.URL.Query().Get("status"), page, limit)
		if err != nil {
			handleServiceError(w, r, err)
			return
		}

		stats, err := service.StatsForUser(r.Context(), userClaims.UserID)
		if err != nil {
			handleServiceError(w, r, err)
			return
		}

		if records == nil {
			records = []domain.OutreachRecord{}
		}

		writeJSON(w, http.StatusOK, domain.OutreachListResponse{
			Outreach:   records,
			Pagination: pagination,
			Stats:      stats,
		})
	}
}

func UpdateOutreach(service outreach.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req UpdateOutreachRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		record, err := service.UpdateOutreach(r.Context(), outreach.UpdateOutreachInput{
			ID:     httprouter.ParamsFromContext(r.Context()).ByName("id"),
			UserID: userClaims.UserID,
			Status: req.Status,
			Amount: req.Amount,
			Notes:  req.Notes,
		})
		if err != nil {
			handleServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, record)
	}
}

// RecordPitchSent registra o envio do pitch; 409 carrega o registro existente em details
func RecordPitchSent(service outreach.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req RecordPitchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		record, err := service.RecordPitch(r.Context(), outreach.RecordPitchInput{
			UserID:       userClaims.UserID,
			BrandID:      req.BrandID,
			PitchSubject: req.PitchSubject,
			PitchBody:    req.PitchBody,
			PitchTone:    req.PitchTone,
			TemplateID:   req.TemplateID,
		})
		if err != nil {
			handleServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, record)
	}
}

func CheckPitchSent(service outreach.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := currentUser(w, r)
		if !ok {
			return
		}

		record, err := service.CheckPitched(r.Context(), userClaims.UserID, r.URL.Query().Get("brandId"))
		if err != nil {
			handleServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, domain.PitchedResponse{
			Pitched:  record != nil,
			Outreach: record,
		})
	}
}
