// Package scheduler contém os jobs agendados da API
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creator-pitch-api/internal/config"
	"github.com/vfg2006/creator-pitch-api/internal/usecases/outreach"
)

const (
	defaultGhostedCron      = "0 2 * * *"
	defaultGhostedAfterDays = 30
)

type GhostedSweepConfig struct {
	CronSchedule string
	SyncEnabled  bool
	AfterDays    int
}

// GhostedSweepService move para ghosted os pitches sem resposta há mais de AfterDays dias
type GhostedSweepService struct {
	scheduler           *gocron.Scheduler
	outreachService     outreach.Service
	config              GhostedSweepConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSwept           int
	lastError           string
}

func NewGhostedSweepService(outreachService outreach.Service, cfg *config.Config) *GhostedSweepService {
	sweepConfig := GhostedSweepConfig{
		CronSchedule: cfg.GhostedSweep.CronSchedule,
		SyncEnabled:  cfg.GhostedSweep.Enabled,
		AfterDays:    cfg.GhostedSweep.AfterDays,
	}

	if sweepConfig.CronSchedule == "" {
		sweepConfig.CronSchedule = defaultGhostedCron
	}

	if sweepConfig.AfterDays <= 0 {
		sweepConfig.AfterDays = defaultGhostedAfterDays
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": sweepConfig.CronSchedule,
		"after_days":    sweepConfig.AfterDays,
	}).Info("Configuração do agendador de outreach sem resposta carregada")

	return &GhostedSweepService{
		scheduler:       gocron.NewScheduler(time.UTC),
		outreachService: outreachService,
		config:          sweepConfig,
	}
}

func (s *GhostedSweepService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron de outreach sem resposta desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de outreach sem resposta")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.RunSweep(ctx); err != nil {
			logrus.WithError(err).Error("Erro na varredura de outreach sem resposta")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar varredura de outreach sem resposta: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de outreach sem resposta")
		s.scheduler.Stop()
	}()

	return nil
}

// RunSweep executa uma varredura; retorna 0 sem erro quando outra já está em andamento
func (s *GhostedSweepService) RunSweep(ctx context.Context) (int, error) {
	if !s.begin() {
		logrus.Warn("Varredura de outreach sem resposta já está em execução")
		return 0, nil
	}

	logrus.Info("Iniciando varredura de outreach sem resposta")

	swept, err := s.outreachService.SweepGhosted(ctx, time.Duration(s.config.AfterDays)*24*time.Hour)

	s.finish(swept, err)

	if err != nil {
		return swept, err
	}

	logrus.WithField("swept", swept).Info("Varredura de outreach sem resposta concluída")

	return swept, nil
}

func (s *GhostedSweepService) begin() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return false
	}

	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	return true
}

func (s *GhostedSweepService) finish(swept int, err error) {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	s.lastSwept = swept
	s.lastError = ""
	if err != nil {
		s.lastError = err.Error()
	}
}

// TriggerManualSync dispara a varredura em background; false quando já existe uma em andamento
func (s *GhostedSweepService) TriggerManualSync() bool {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Varredura de outreach sem resposta já em andamento, ignorando solicitação manual")
		return false
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando varredura manual de outreach sem resposta")
	go func() {
		if _, err := s.RunSweep(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro na varredura manual de outreach sem resposta")
		}
	}()

	return true
}

// GetStatus retorna o status atual do agendador
func (s *GhostedSweepService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"after_days":             s.config.AfterDays,
		"running":                s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_swept":             s.lastSwept,
		"last_error":             s.lastError,
	}
}
