package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creator-pitch-api/pkg/apiErrors"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeGhostedSweep = "ghosted-sweep"
	CronJobTypeAll          = "all"
)

// CronJob é um job agendado que também pode ser disparado manualmente
type CronJob interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	GhostedSweepService CronJob
}

func (s CronJobServices) jobs() map[string]CronJob {
	jobs := make(map[string]CronJob)
	if s.GhostedSweepService != nil {
		jobs[CronJobTypeGhostedSweep] = s.GhostedSweepService
	}
	return jobs
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		jobs := services.jobs()
		started := map[string]bool{}

		switch cronType {
		case CronJobTypeAll:
			for name, job := range jobs {
				started[name] = job.TriggerManualSync()
			}

		default:
			job, ok := jobs[cronType]
			if !ok {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: ghosted-sweep, all", nil)
				return
			}
			started[cronType] = job.TriggerManualSync()
		}

		logrus.WithFields(logrus.Fields{"type": cronType, "started": started}).Info("Cron job disparada manualmente")

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
			"started": started,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := make(map[string]any)
		for name, job := range services.jobs() {
			status[name] = job.GetStatus()
		}

		writeJSON(w, http.StatusOK, status)
	}
}
