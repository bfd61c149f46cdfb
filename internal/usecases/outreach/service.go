package outreach

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creator-pitch-api/infrastructure/repository"
	"github.com/vfg2006/creator-pitch-api/internal/domain"
	"github.com/vfg2006/creator-pitch-api/internal/events"
	"github.com/vfg2006/creator-pitch-api/pkg/apiErrors"
	"github.com/vfg2006/creator-pitch-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
	// MaxPage mantém (page-1)*limit dentro de um OFFSET válido
	MaxPage = math.MaxInt32 / MaxLimit

	sweepBatchSize = 200
	idPrefix       = "out"
	conflictCode   = apiErrors.ErrOutreachConflict
)

type RecordPitchInput struct {
	UserID       int
	BrandID      string
	PitchSubject *string
	PitchBody    *string
	PitchTone    *string
	TemplateID   *string
}

type UpdateOutreachInput struct {
	ID     string
	UserID int
	Status *string
	Amount *float64
	Notes  *string
}

type Service interface {
	CheckPitched(ctx context.Context, userID int, brandID string) (*domain.OutreachRecord, error)
	RecordPitch(ctx context.Context, input RecordPitchInput) (*domain.OutreachRecord, error)
	ListForUser(ctx context.Context, userID int, status string, page, limit int) ([]domain.OutreachRecord, domain.Pagination, error)
	StatsForUser(ctx context.Context, userID int) (domain.OutreachStats, error)
	UpdateOutreach(ctx context.Context, input UpdateOutreachInput) (*domain.OutreachRecord, error)
	SweepGhosted(ctx context.Context, olderThan time.Duration) (int, error)
}

type service struct {
	outreachRepo repository.OutreachRepository
	brandRepo    repository.BrandRepository
	publisher    events.Publisher
	nowFn        func() time.Time
}

func NewService(
	outreachRepo repository.OutreachRepository,
	brandRepo repository.BrandRepository,
	publisher events.Publisher,
) Service {
	return &service{
		outreachRepo: outreachRepo,
		brandRepo:    brandRepo,
		publisher:    publisher,
		nowFn:        time.Now,
	}
}

// CheckPitched retorna nil quando o usuário ainda não contatou a marca
func (s *service) CheckPitched(ctx context.Context, userID int, brandID string) (*domain.OutreachRecord, error) {
	brandID = strings.TrimSpace(brandID)
	if brandID == "" {
		return nil, NewOutreachError(ErrBrandIDRequired, apiErrors.ErrInvalidRequest, "Informe o brandId")
	}

	record, err := s.outreachRepo.GetByUserAndBrand(ctx, userID, brandID)
	if err != nil {
		logrus.WithError(err).WithField("brand_id", brandID).Error("Erro ao consultar outreach")
		return nil, NewOutreachError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao consultar outreach")
	}

	return record, nil
}

// RecordPitch cria o outreach com status pitched. Um registro existente para o par
// (usuário, marca), detectado antes ou durante o INSERT, resulta no mesmo conflito.
func (s *service) RecordPitch(ctx context.Context, input RecordPitchInput) (*domain.OutreachRecord, error) {
	brandID := strings.TrimSpace(input.BrandID)
	if brandID == "" {
		return nil, NewOutreachError(ErrBrandIDRequired, apiErrors.ErrInvalidRequest, "Informe o brandId")
	}

	logger := logrus.WithFields(logrus.Fields{
		"user_id":  input.UserID,
		"brand_id": brandID,
	})

	brand, err := s.brandRepo.GetBrandByID(ctx, brandID)
	if err != nil {
		logger.WithError(err).Error("Erro ao buscar marca")
		return nil, NewOutreachError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao consultar marca")
	}

	if brand == nil {
		return nil, NewOutreachError(ErrBrandNotFound, apiErrors.ErrResourceNotFound, brandID)
	}

	existing, err := s.outreachRepo.GetByUserAndBrand(ctx, input.UserID, brandID)
	if err != nil {
		logger.WithError(err).Error("Erro ao consultar outreach existente")
		return nil, NewOutreachError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao consultar outreach")
	}

	if existing != nil {
		return nil, NewConflictError(ErrAlreadyPitched, existing, "")
	}

	id, err := utils.GeneratePrefixedID(idPrefix)
	if err != nil {
		logger.WithError(err).Error("Erro ao gerar ID do outreach")
		return nil, NewOutreachError(ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar identificador")
	}

	now := s.nowFn().UTC()
	record := &domain.OutreachRecord{
		ID:           id,
		UserID:       input.UserID,
		BrandID:      brandID,
		Status:       domain.OutreachStatusPitched,
		PitchSubject: trimmedOrNil(input.PitchSubject),
		PitchBody:    trimmedOrNil(input.PitchBody),
		PitchTone:    trimmedOrNil(input.PitchTone),
		TemplateID:   trimmedOrNil(input.TemplateID),
		PitchedAt:    &now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.outreachRepo.Create(ctx, record); err != nil {
		if errors.Is(err, repository.ErrDuplicateOutreach) {
			logger.Info("Outreach criado por requisição concorrente")
			return nil, s.duplicateConflict(ctx, input.UserID, brandID)
		}

		logger.WithError(err).Error("Erro ao inserir outreach")
		return nil, NewOutreachError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao registrar outreach")
	}

	record.Brand = &domain.BrandSummary{
		Name:     brand.Name,
		Handle:   brand.Handle,
		Category: brand.Category,
	}

	logger.WithField("outreach_id", record.ID).Info("Pitch registrado")
	s.publish(ctx, events.EventOutreachPitched, record, "")

	return record, nil
}

// duplicateConflict relê o registro vencedor para anexá-lo ao conflito
func (s *service) duplicateConflict(ctx context.Context, userID int, brandID string) error {
	existing, err := s.outreachRepo.GetByUserAndBrand(ctx, userID, brandID)
	if err != nil {
		logrus.WithError(err).WithField("brand_id", brandID).Warn("Erro ao reler outreach duplicado")
	}

	return NewConflictError(ErrAlreadyPitched, existing, "")
}

func (s *service) ListForUser(ctx context.Context, userID int, status string, page, limit int) ([]domain.OutreachRecord, domain.Pagination, error) {
	filter := repository.OutreachFilter{UserID: userID}

	if status = strings.TrimSpace(status); status != "" {
		parsed, err := domain.ParseOutreachStatus(status)
		if err != nil {
			return nil, domain.Pagination{}, NewOutreachError(ErrInvalidStatus, apiErrors.ErrInvalidRequest, status)
		}
		filter.Status = &parsed
	}

	page, limit = normalizePaging(page, limit)
	filter.Limit = limit
	filter.Offset = (page - 1) * limit

	records, total, err := s.outreachRepo.ListByUser(ctx, filter)
	if err != nil {
		logrus.WithError(err).WithField("user_id", userID).Error("Erro ao listar outreach")
		return nil, domain.Pagination{}, NewOutreachError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar outreach")
	}

	pagination := domain.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}

	return records, pagination, nil
}

func normalizePaging(page, limit int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}

	if page > MaxPage {
		page = MaxPage
	}

	if limit < 1 {
		limit = DefaultLimit
	}

	if limit > MaxLimit {
		limit = MaxLimit
	}

	return page, limit
}

// StatsForUser sempre devolve os seis status, mesmo zerados
func (s *service) StatsForUser(ctx context.Context, userID int) (domain.OutreachStats, error) {
	counts, err := s.outreachRepo.CountByStatus(ctx, userID)
	if err != nil {
		logrus.WithError(err).WithField("user_id", userID).Error("Erro ao contar outreach por status")
		return nil, NewOutreachError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao calcular estatísticas")
	}

	stats := domain.NewOutreachStats()
	for status, count := range counts {
		if _, known := stats[status]; known {
			stats[status] = count
		}
	}

	return stats, nil
}

// UpdateOutreach altera status, valor e notas. A escrita só acontece se o status
// no banco ainda for o lido aqui; caso contrário devolve conflito.
func (s *service) UpdateOutreach(ctx context.Context, input UpdateOutreachInput) (*domain.OutreachRecord, error) {
	if strings.TrimSpace(input.ID) == "" {
		return nil, NewOutreachError(ErrOutreachIDRequired, apiErrors.ErrInvalidRequest, "")
	}

	if input.Status == nil && input.Amount == nil && input.Notes == nil {
		return nil, NewOutreachError(ErrNoChanges, apiErrors.ErrInvalidRequest, "Informe status, amount ou notes")
	}

	if input.Amount != nil && *input.Amount < 0 {
		return nil, NewOutreachError(ErrInvalidAmount, apiErrors.ErrInvalidRequest, "")
	}

	logger := logrus.WithFields(logrus.Fields{
		"user_id":     input.UserID,
		"outreach_id": input.ID,
	})

	current, err := s.outreachRepo.GetByID(ctx, input.ID)
	if err != nil {
		logger.WithError(err).Error("Erro ao buscar outreach")
		return nil, NewOutreachError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao consultar outreach")
	}

	// Outreach de outro usuário é tratado como inexistente
	if current == nil || current.UserID != input.UserID {
		return nil, NewOutreachError(ErrOutreachNotFound, apiErrors.ErrResourceNotFound, input.ID)
	}

	now := s.nowFn().UTC()
	updated := *current
	updated.UpdatedAt = now

	update := domain.OutreachUpdate{
		ID:             current.ID,
		UserID:         current.UserID,
		ExpectedStatus: current.Status,
		UpdatedAt:      now,
	}

	statusChanged := false
	if input.Status != nil {
		next, err := domain.ParseOutreachStatus(strings.TrimSpace(*input.Status))
		if err != nil {
			return nil, NewOutreachError(ErrInvalidStatus, apiErrors.ErrInvalidRequest, *input.Status)
		}

		if next != current.Status {
			if current.Status.IsTerminal() {
				return nil, NewOutreachError(
					ErrTerminalStatus,
					apiErrors.ErrInvalidTransition,
					fmt.Sprintf("%s é um status final", current.Status),
				)
			}

			if !domain.CanTransition(current.Status, next) {
				return nil, NewOutreachError(
					ErrInvalidTransition,
					apiErrors.ErrInvalidTransition,
					fmt.Sprintf("%s -> %s", current.Status, next),
				)
			}

			statusChanged = true
			update.Status = &next
			updated.Status = next

			switch next {
			case domain.OutreachStatusConfirmed:
				update.ConfirmedAt = &now
				updated.ConfirmedAt = &now
			case domain.OutreachStatusCompleted:
				update.PaidAt = &now
				updated.PaidAt = &now
			}
		}
	}

	if input.Amount != nil {
		amount := utils.RoundWithTwoDecimalPlace(*input.Amount)
		update.Amount = &amount
		updated.Amount = &amount
	}

	if input.Notes != nil {
		notes := strings.TrimSpace(*input.Notes)
		update.Notes = &notes
		updated.Notes = &notes
	}

	ok, err := s.outreachRepo.Update(ctx, update)
	if err != nil {
		logger.WithError(err).Error("Erro ao atualizar outreach")
		return nil, NewOutreachError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao atualizar outreach")
	}

	if !ok {
		logger.Warn("Outreach alterado por outra requisição")
		latest, err := s.outreachRepo.GetByID(ctx, input.ID)
		if err != nil {
			logger.WithError(err).Warn("Erro ao reler outreach")
		}
		return nil, NewConflictError(ErrConcurrentUpdate, latest, "")
	}

	if statusChanged {
		logger.WithFields(logrus.Fields{
			"from": current.Status,
			"to":   updated.Status,
		}).Info("Status do outreach atualizado")
		s.publish(ctx, events.EventOutreachStatusChanged, &updated, current.Status)
	}

	return &updated, nil
}

// SweepGhosted marca como ghosted os pitches sem atualização há mais de olderThan,
// lote a lote até esgotar o backlog. Registros alterados durante a varredura são
// ignorados; um lote sem nenhum registro movido encerra a varredura.
func (s *service) SweepGhosted(ctx context.Context, olderThan time.Duration) (int, error) {
	now := s.nowFn().UTC()
	cutoff := now.Add(-olderThan)

	moved := 0
	found := 0

	for {
		if err := ctx.Err(); err != nil {
			return moved, err
		}

		stale, err := s.outreachRepo.ListStalePitched(ctx, cutoff, sweepBatchSize)
		if err != nil {
			logrus.WithError(err).Error("Erro ao buscar outreach sem resposta")
			return moved, NewOutreachError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao buscar outreach sem resposta")
		}

		found += len(stale)
		batchMoved := s.ghostBatch(ctx, stale, now)
		moved += batchMoved

		if len(stale) < sweepBatchSize || batchMoved == 0 {
			break
		}
	}

	logrus.WithFields(logrus.Fields{
		"cutoff":  cutoff.Format(time.RFC3339),
		"found":   found,
		"ghosted": moved,
	}).Info("Varredura de outreach sem resposta concluída")

	return moved, nil
}

func (s *service) ghostBatch(ctx context.Context, stale []domain.OutreachRecord, now time.Time) int {
	ghosted := domain.OutreachStatusGhosted
	moved := 0

	for i := range stale {
		record := stale[i]
		if !domain.CanTransition(record.Status, ghosted) {
			continue
		}

		ok, err := s.outreachRepo.Update(ctx, domain.OutreachUpdate{
			ID:             record.ID,
			UserID:         record.UserID,
			ExpectedStatus: record.Status,
			Status:         &ghosted,
			UpdatedAt:      now,
		})
		if err != nil {
			logrus.WithError(err).WithField("outreach_id", record.ID).Error("Erro ao marcar outreach como ghosted")
			continue
		}

		if !ok {
			continue
		}

		previous := record.Status
		record.Status = ghosted
		record.UpdatedAt = now
		s.publish(ctx, events.EventOutreachStatusChanged, &record, previous)
		moved++
	}

	return moved
}

// publish é best effort: falhas são registradas e não afetam a operação
func (s *service) publish(ctx context.Context, eventType string, record *domain.OutreachRecord, previous domain.OutreachStatus) {
	if s.publisher == nil {
		return
	}

	payload, err := json.Marshal(events.OutreachEvent{
		OutreachID:     record.ID,
		UserID:         record.UserID,
		BrandID:        record.BrandID,
		Status:         string(record.Status),
		PreviousStatus: string(previous),
		OccurredAt:     record.UpdatedAt,
	})
	if err != nil {
		logrus.WithError(err).Error("Erro ao serializar evento de outreach")
		return
	}

	key := fmt.Sprintf("%d:%s", record.UserID, record.BrandID)
	if err := s.publisher.Publish(ctx, eventType, payload, key); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"event_type":  eventType,
			"outreach_id": record.ID,
		}).Warn("Falha ao publicar evento de outreach")
	}
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}

	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
