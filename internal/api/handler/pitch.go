package handler

import (
	"io"
	"net/http"

	"github.com/pkg/errors"
	llmdomain "github.com/vfg2006/creator-pitch-api/infrastructure/integrator/llm/domain"
	"github.com/vfg2006/creator-pitch-api/internal/usecases/pitching"
	"github.com/vfg2006/creator-pitch-api/pkg/apiErrors"
	"github.com/vfg2006/creator-pitch-api/pkg/log"
)

func GeneratePitch(service pitching.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req pitching.PitchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		stream, err := service.Generate(r.Context(), req)
		if err != nil {
			handleServiceError(w, r, err)
			return
		}

		writeStream(w, r, stream)
	}
}

func RefinePitch(service pitching.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req pitching.RefineRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "messages deve ser uma lista de mensagens", nil)
			return
		}

		stream, err := service.Refine(r.Context(), req)
		if err != nil {
			handleServiceError(w, r, err)
			return
		}

		writeStream(w, r, stream)
	}
}

// writeStream repassa cada pedaço do stream assim que chega. Depois do primeiro
// byte o status já foi enviado: falhas no meio do stream apenas o encerram.
func writeStream(w http.ResponseWriter, r *http.Request, stream llmdomain.Stream) {
	defer stream.Close()

	logger := log.ForContext(r.Context())

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)

	flusher, _ := w.(http.Flusher)
	if flusher != nil {
		flusher.Flush()
	}

	chunks := 0
	for {
		chunk, err := stream.Recv()
		if err != nil {
			switch {
			case errors.Is(err, io.EOF):
				logger.WithField("chunks", chunks).Debug("Stream finalizado")
			case r.Context().Err() != nil:
				logger.WithField("chunks", chunks).Info("Cliente desconectou durante o stream")
			default:
				logger.WithError(err).WithField("chunks", chunks).Error("Falha durante o stream do pitch")
			}
			return
		}

		if _, err := io.WriteString(w, chunk); err != nil {
			logger.WithError(err).Warn("Erro ao escrever pedaço do stream")
			return
		}
		chunks++

		if flusher != nil {
			flusher.Flush()
		}
	}
}
