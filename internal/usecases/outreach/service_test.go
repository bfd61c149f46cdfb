package outreach

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/creator-pitch-api/infrastructure/repository"
	"github.com/vfg2006/creator-pitch-api/infrastructure/repository/mocks"
	"github.com/vfg2006/creator-pitch-api/internal/domain"
	"github.com/vfg2006/creator-pitch-api/internal/events"
	eventmocks "github.com/vfg2006/creator-pitch-api/internal/events/mocks"
	"github.com/vfg2006/creator-pitch-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

type serviceMocks struct {
	outreachRepo *mocks.MockOutreachRepository
	brandRepo    *mocks.MockBrandRepository
	publisher    *eventmocks.MockPublisher
}

func newTestService(t *testing.T) (*service, serviceMocks) {
	ctrl := gomock.NewController(t)
	m := serviceMocks{
		outreachRepo: mocks.NewMockOutreachRepository(ctrl),
		brandRepo:    mocks.NewMockBrandRepository(ctrl),
		publisher:    eventmocks.NewMockPublisher(ctrl),
	}

	svc := &service{
		outreachRepo: m.outreachRepo,
		brandRepo:    m.brandRepo,
		publisher:    m.publisher,
		nowFn:        func() time.Time { return fixedNow },
	}

	return svc, m
}

func requireOutreachError(t *testing.T, err error, target error, code string) *OutreachError {
	t.Helper()

	require.ErrorIs(t, err, target)

	var outreachErr *OutreachError
	require.True(t, errors.As(err, &outreachErr))
	assert.Equal(t, code, outreachErr.Code)

	return outreachErr
}

func brand() *domain.Brand {
	category := "beauty"
	return &domain.Brand{ID: "brand_1", Name: "Glow Co", Handle: "glowco", Category: &category}
}

func existingRecord(status domain.OutreachStatus) *domain.OutreachRecord {
	subject := "Original subject"
	pitchedAt := fixedNow.Add(-48 * time.Hour)
	return &domain.OutreachRecord{
		ID:           "out_existing",
		UserID:       7,
		BrandID:      "brand_1",
		Status:       status,
		PitchSubject: &subject,
		PitchedAt:    &pitchedAt,
		CreatedAt:    pitchedAt,
		UpdatedAt:    pitchedAt,
	}
}

func strPtr(s string) *string {
	return &s
}

func TestService_RecordPitch(t *testing.T) {
	t.Run("Cria outreach com status pitched", func(t *testing.T) {
		svc, m := newTestService(t)

		m.brandRepo.EXPECT().GetBrandByID(gomock.Any(), "brand_1").Return(brand(), nil)
		m.outreachRepo.EXPECT().GetByUserAndBrand(gomock.Any(), 7, "brand_1").Return(nil, nil)
		m.outreachRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, record *domain.OutreachRecord) error {
				assert.Equal(t, domain.OutreachStatusPitched, record.Status)
				assert.Equal(t, 7, record.UserID)
				require.NotNil(t, record.PitchedAt)
				assert.True(t, fixedNow.Equal(*record.PitchedAt))
				assert.Nil(t, record.PitchTone)
				return nil
			})
		m.publisher.EXPECT().Publish(gomock.Any(), events.EventOutreachPitched, gomock.Any(), "7:brand_1").Return(nil)

		record, err := svc.RecordPitch(context.Background(), RecordPitchInput{
			UserID:       7,
			BrandID:      " brand_1 ",
			PitchSubject: strPtr("Collab?"),
			PitchBody:    strPtr("Hi Glow Co!"),
			PitchTone:    strPtr("   "),
		})
		require.NoError(t, err)

		assert.Contains(t, record.ID, "out_")
		assert.Equal(t, "Collab?", *record.PitchSubject)
		require.NotNil(t, record.Brand)
		assert.Equal(t, "Glow Co", record.Brand.Name)
	})

	t.Run("Segunda chamada devolve conflito com o registro original", func(t *testing.T) {
		svc, m := newTestService(t)
		original := existingRecord(domain.OutreachStatusPitched)

		m.brandRepo.EXPECT().GetBrandByID(gomock.Any(), "brand_1").Return(brand(), nil)
		m.outreachRepo.EXPECT().GetByUserAndBrand(gomock.Any(), 7, "brand_1").Return(original, nil)

		record, err := svc.RecordPitch(context.Background(), RecordPitchInput{
			UserID:       7,
			BrandID:      "brand_1",
			PitchSubject: strPtr("A completely different subject"),
		})
		assert.Nil(t, record)

		outreachErr := requireOutreachError(t, err, ErrAlreadyPitched, apiErrors.ErrOutreachConflict)
		assert.Same(t, original, outreachErr.Existing)
		assert.Equal(t, "Original subject", *outreachErr.Existing.PitchSubject)
	})

	t.Run("Violação de unicidade no INSERT vira o mesmo conflito", func(t *testing.T) {
		svc, m := newTestService(t)
		winner := existingRecord(domain.OutreachStatusPitched)

		m.brandRepo.EXPECT().GetBrandByID(gomock.Any(), "brand_1").Return(brand(), nil)
		gomock.InOrder(
			m.outreachRepo.EXPECT().GetByUserAndBrand(gomock.Any(), 7, "brand_1").Return(nil, nil),
			m.outreachRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(repository.ErrDuplicateOutreach),
			m.outreachRepo.EXPECT().GetByUserAndBrand(gomock.Any(), 7, "brand_1").Return(winner, nil),
		)

		record, err := svc.RecordPitch(context.Background(), RecordPitchInput{UserID: 7, BrandID: "brand_1"})
		assert.Nil(t, record)

		outreachErr := requireOutreachError(t, err, ErrAlreadyPitched, apiErrors.ErrOutreachConflict)
		assert.Same(t, winner, outreachErr.Existing)
	})

	t.Run("brandId ausente", func(t *testing.T) {
		svc, _ := newTestService(t)

		_, err := svc.RecordPitch(context.Background(), RecordPitchInput{UserID: 7})
		requireOutreachError(t, err, ErrBrandIDRequired, apiErrors.ErrInvalidRequest)
	})

	t.Run("Marca inexistente", func(t *testing.T) {
		svc, m := newTestService(t)

		m.brandRepo.EXPECT().GetBrandByID(gomock.Any(), "ghost").Return(nil, nil)

		_, err := svc.RecordPitch(context.Background(), RecordPitchInput{UserID: 7, BrandID: "ghost"})
		requireOutreachError(t, err, ErrBrandNotFound, apiErrors.ErrResourceNotFound)
	})

	t.Run("Falha ao publicar evento não afeta o registro", func(t *testing.T) {
		svc, m := newTestService(t)

		m.brandRepo.EXPECT().GetBrandByID(gomock.Any(), "brand_1").Return(brand(), nil)
		m.outreachRepo.EXPECT().GetByUserAndBrand(gomock.Any(), 7, "brand_1").Return(nil, nil)
		m.outreachRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

		record, err := svc.RecordPitch(context.Background(), RecordPitchInput{UserID: 7, BrandID: "brand_1"})
		require.NoError(t, err)
		assert.Equal(t, domain.OutreachStatusPitched, record.Status)
	})

	t.Run("Erro inesperado no INSERT", func(t *testing.T) {
		svc, m := newTestService(t)

		m.brandRepo.EXPECT().GetBrandByID(gomock.Any(), "brand_1").Return(brand(), nil)
		m.outreachRepo.EXPECT().GetByUserAndBrand(gomock.Any(), 7, "brand_1").Return(nil, nil)
		m.outreachRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))

		_, err := svc.RecordPitch(context.Background(), RecordPitchInput{UserID: 7, BrandID: "brand_1"})
		requireOutreachError(t, err, ErrDatabaseOperation, apiErrors.ErrDatabaseOperation)
	})
}

func TestService_CheckPitched(t *testing.T) {
	svc, m := newTestService(t)

	m.outreachRepo.EXPECT().GetByUserAndBrand(gomock.Any(), 7, "brand_1").Return(nil, nil)
	record, err := svc.CheckPitched(context.Background(), 7, "brand_1")
	assert.NoError(t, err)
	assert.Nil(t, record)

	existing := existingRecord(domain.OutreachStatusNegotiating)
	m.outreachRepo.EXPECT().GetByUserAndBrand(gomock.Any(), 7, "brand_1").Return(existing, nil)
	record, err = svc.CheckPitched(context.Background(), 7, "brand_1")
	assert.NoError(t, err)
	assert.Same(t, existing, record)

	_, err = svc.CheckPitched(context.Background(), 7, "")
	requireOutreachError(t, err, ErrBrandIDRequired, apiErrors.ErrInvalidRequest)
}

func TestService_ListForUser(t *testing.T) {
	tests := []struct {
		name       string
		status     string
		page       int
		limit      int
		total      int
		wantFilter repository.OutreachFilter
		wantPages  domain.Pagination
	}{
		{
			name:       "Valores padrão",
			total:      45,
			wantFilter: repository.OutreachFilter{UserID: 7, Limit: 20, Offset: 0},
			wantPages:  domain.Pagination{Page: 1, Limit: 20, Total: 45, TotalPages: 3},
		},
		{
			name:       "Limite acima do máximo",
			page:       2,
			limit:      500,
			total:      150,
			wantFilter: repository.OutreachFilter{UserID: 7, Limit: 100, Offset: 100},
			wantPages:  domain.Pagination{Page: 2, Limit: 100, Total: 150, TotalPages: 2},
		},
		{
			name:       "Filtro por status",
			status:     "negotiating",
			page:       3,
			limit:      5,
			total:      0,
			wantFilter: repository.OutreachFilter{UserID: 7, Status: statusPtr(domain.OutreachStatusNegotiating), Limit: 5, Offset: 10},
			wantPages:  domain.Pagination{Page: 3, Limit: 5, Total: 0, TotalPages: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newTestService(t)

			m.outreachRepo.EXPECT().ListByUser(gomock.Any(), tt.wantFilter).Return([]domain.OutreachRecord{}, tt.total, nil)

			records, pagination, err := svc.ListForUser(context.Background(), 7, tt.status, tt.page, tt.limit)
			require.NoError(t, err)
			assert.NotNil(t, records)
			assert.Equal(t, tt.wantPages, pagination)
		})
	}

	t.Run("Página muito alta é limitada", func(t *testing.T) {
		svc, m := newTestService(t)

		m.outreachRepo.EXPECT().
			ListByUser(gomock.Any(), repository.OutreachFilter{UserID: 7, Limit: MaxLimit, Offset: (MaxPage - 1) * MaxLimit}).
			Return([]domain.OutreachRecord{}, 3, nil)

		_, pagination, err := svc.ListForUser(context.Background(), 7, "", math.MaxInt, MaxLimit)
		require.NoError(t, err)
		assert.Equal(t, MaxPage, pagination.Page)
		assert.LessOrEqual(t, (MaxPage-1)*MaxLimit, math.MaxInt32)
	})

	t.Run("Status inválido", func(t *testing.T) {
		svc, _ := newTestService(t)

		_, _, err := svc.ListForUser(context.Background(), 7, "archived", 1, 20)
		requireOutreachError(t, err, ErrInvalidStatus, apiErrors.ErrInvalidRequest)
	})
}

func TestService_StatsForUser(t *testing.T) {
	t.Run("Usuário sem registros tem as seis chaves zeradas", func(t *testing.T) {
		svc, m := newTestService(t)

		m.outreachRepo.EXPECT().CountByStatus(gomock.Any(), 7).Return(map[domain.OutreachStatus]int{}, nil)

		stats, err := svc.StatsForUser(context.Background(), 7)
		require.NoError(t, err)
		assert.Equal(t, domain.OutreachStats{
			domain.OutreachStatusPitched:     0,
			domain.OutreachStatusNegotiating: 0,
			domain.OutreachStatusConfirmed:   0,
			domain.OutreachStatusCompleted:   0,
			domain.OutreachStatusRejected:    0,
			domain.OutreachStatusGhosted:     0,
		}, stats)
	})

	t.Run("Mescla as contagens do banco", func(t *testing.T) {
		svc, m := newTestService(t)

		m.outreachRepo.EXPECT().CountByStatus(gomock.Any(), 7).Return(map[domain.OutreachStatus]int{
			domain.OutreachStatusPitched: 4,
			domain.OutreachStatusGhosted: 2,
			domain.OutreachStatus("old"): 9,
		}, nil)

		stats, err := svc.StatsForUser(context.Background(), 7)
		require.NoError(t, err)
		assert.Len(t, stats, 6)
		assert.Equal(t, 4, stats[domain.OutreachStatusPitched])
		assert.Equal(t, 2, stats[domain.OutreachStatusGhosted])
		assert.Equal(t, 0, stats[domain.OutreachStatusCompleted])
	})
}

func TestService_UpdateOutreach(t *testing.T) {
	t.Run("negotiating para confirmed registra confirmedAt", func(t *testing.T) {
		svc, m := newTestService(t)
		current := existingRecord(domain.OutreachStatusNegotiating)

		m.outreachRepo.EXPECT().GetByID(gomock.Any(), "out_existing").Return(current, nil)
		m.outreachRepo.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, update domain.OutreachUpdate) (bool, error) {
				assert.Equal(t, domain.OutreachStatusNegotiating, update.ExpectedStatus)
				require.NotNil(t, update.Status)
				assert.Equal(t, domain.OutreachStatusConfirmed, *update.Status)
				require.NotNil(t, update.ConfirmedAt)
				assert.Nil(t, update.PaidAt)
				require.NotNil(t, update.Amount)
				assert.Equal(t, 1250.5, *update.Amount)
				return true, nil
			})
		m.publisher.EXPECT().Publish(gomock.Any(), events.EventOutreachStatusChanged, gomock.Any(), "7:brand_1").Return(nil)

		amount := 1250.499
		updated, err := svc.UpdateOutreach(context.Background(), UpdateOutreachInput{
			ID:     "out_existing",
			UserID: 7,
			Status: strPtr("confirmed"),
			Amount: &amount,
		})
		require.NoError(t, err)
		assert.Equal(t, domain.OutreachStatusConfirmed, updated.Status)
		require.NotNil(t, updated.ConfirmedAt)
		assert.True(t, fixedNow.Equal(*updated.ConfirmedAt))
		assert.Equal(t, domain.OutreachStatusNegotiating, current.Status)
	})

	t.Run("confirmed para completed registra paidAt", func(t *testing.T) {
		svc, m := newTestService(t)

		m.outreachRepo.EXPECT().GetByID(gomock.Any(), "out_existing").Return(existingRecord(domain.OutreachStatusConfirmed), nil)
		m.outreachRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(true, nil)
		m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		updated, err := svc.UpdateOutreach(context.Background(), UpdateOutreachInput{ID: "out_existing", UserID: 7, Status: strPtr("completed")})
		require.NoError(t, err)
		require.NotNil(t, updated.PaidAt)
		assert.True(t, fixedNow.Equal(*updated.PaidAt))
	})

	t.Run("Transição inválida", func(t *testing.T) {
		tests := []struct {
			from domain.OutreachStatus
			to   string
		}{
			{domain.OutreachStatusPitched, "completed"},
			{domain.OutreachStatusPitched, "confirmed"},
			{domain.OutreachStatusGhosted, "negotiating"},
			{domain.OutreachStatusCompleted, "rejected"},
		}

		for _, tt := range tests {
			svc, m := newTestService(t)
			m.outreachRepo.EXPECT().GetByID(gomock.Any(), "out_existing").Return(existingRecord(tt.from), nil)

			_, err := svc.UpdateOutreach(context.Background(), UpdateOutreachInput{ID: "out_existing", UserID: 7, Status: strPtr(tt.to)})
			requireOutreachError(t, err, ErrInvalidTransition, apiErrors.ErrInvalidTransition)
		}
	})

	t.Run("Status final não aceita mudanças", func(t *testing.T) {
		for _, from := range []domain.OutreachStatus{domain.OutreachStatusCompleted, domain.OutreachStatusRejected, domain.OutreachStatusGhosted} {
			svc, m := newTestService(t)
			m.outreachRepo.EXPECT().GetByID(gomock.Any(), "out_existing").Return(existingRecord(from), nil)

			_, err := svc.UpdateOutreach(context.Background(), UpdateOutreachInput{ID: "out_existing", UserID: 7, Status: strPtr("negotiating")})
			outreachErr := requireOutreachError(t, err, ErrTerminalStatus, apiErrors.ErrInvalidTransition)
			assert.ErrorIs(t, err, ErrInvalidTransition)
			assert.Contains(t, outreachErr.Error(), string(from))
		}
	})

	t.Run("Mesmo status apenas atualiza notas", func(t *testing.T) {
		svc, m := newTestService(t)

		m.outreachRepo.EXPECT().GetByID(gomock.Any(), "out_existing").Return(existingRecord(domain.OutreachStatusPitched), nil)
		m.outreachRepo.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, update domain.OutreachUpdate) (bool, error) {
				assert.Nil(t, update.Status)
				require.NotNil(t, update.Notes)
				assert.Equal(t, "Follow up next week", *update.Notes)
				return true, nil
			})

		updated, err := svc.UpdateOutreach(context.Background(), UpdateOutreachInput{
			ID:     "out_existing",
			UserID: 7,
			Status: strPtr("pitched"),
			Notes:  strPtr(" Follow up next week "),
		})
		require.NoError(t, err)
		assert.Equal(t, domain.OutreachStatusPitched, updated.Status)
	})

	t.Run("Outreach de outro usuário", func(t *testing.T) {
		svc, m := newTestService(t)

		m.outreachRepo.EXPECT().GetByID(gomock.Any(), "out_existing").Return(existingRecord(domain.OutreachStatusPitched), nil)

		_, err := svc.UpdateOutreach(context.Background(), UpdateOutreachInput{ID: "out_existing", UserID: 99, Status: strPtr("negotiating")})
		requireOutreachError(t, err, ErrOutreachNotFound, apiErrors.ErrResourceNotFound)
	})

	t.Run("Alteração concorrente", func(t *testing.T) {
		svc, m := newTestService(t)
		latest := existingRecord(domain.OutreachStatusRejected)

		gomock.InOrder(
			m.outreachRepo.EXPECT().GetByID(gomock.Any(), "out_existing").Return(existingRecord(domain.OutreachStatusPitched), nil),
			m.outreachRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(false, nil),
			m.outreachRepo.EXPECT().GetByID(gomock.Any(), "out_existing").Return(latest, nil),
		)

		_, err := svc.UpdateOutreach(context.Background(), UpdateOutreachInput{ID: "out_existing", UserID: 7, Status: strPtr("negotiating")})
		outreachErr := requireOutreachError(t, err, ErrConcurrentUpdate, apiErrors.ErrOutreachConflict)
		assert.Same(t, latest, outreachErr.Existing)
	})

	t.Run("Validações de entrada", func(t *testing.T) {
		svc, _ := newTestService(t)
		negative := -10.0

		_, err := svc.UpdateOutreach(context.Background(), UpdateOutreachInput{ID: "out_existing", UserID: 7})
		requireOutreachError(t, err, ErrNoChanges, apiErrors.ErrInvalidRequest)

		_, err = svc.UpdateOutreach(context.Background(), UpdateOutreachInput{UserID: 7, Notes: strPtr("x")})
		requireOutreachError(t, err, ErrOutreachIDRequired, apiErrors.ErrInvalidRequest)

		_, err = svc.UpdateOutreach(context.Background(), UpdateOutreachInput{ID: "out_existing", UserID: 7, Amount: &negative})
		requireOutreachError(t, err, ErrInvalidAmount, apiErrors.ErrInvalidRequest)
	})

	t.Run("Status desconhecido", func(t *testing.T) {
		svc, m := newTestService(t)

		m.outreachRepo.EXPECT().GetByID(gomock.Any(), "out_existing").Return(existingRecord(domain.OutreachStatusPitched), nil)

		_, err := svc.UpdateOutreach(context.Background(), UpdateOutreachInput{ID: "out_existing", UserID: 7, Status: strPtr("archived")})
		requireOutreachError(t, err, ErrInvalidStatus, apiErrors.ErrInvalidRequest)
	})
}

func TestService_SweepGhosted(t *testing.T) {
	svc, m := newTestService(t)
	cutoff := fixedNow.Add(-30 * 24 * time.Hour)

	first := existingRecord(domain.OutreachStatusPitched)
	second := existingRecord(domain.OutreachStatusPitched)
	second.ID = "out_second"
	third := existingRecord(domain.OutreachStatusPitched)
	third.ID = "out_third"

	m.outreachRepo.EXPECT().
		ListStalePitched(gomock.Any(), cutoff, sweepBatchSize).
		Return([]domain.OutreachRecord{*first, *second, *third}, nil)

	m.outreachRepo.EXPECT().Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, update domain.OutreachUpdate) (bool, error) {
			assert.Equal(t, domain.OutreachStatusPitched, update.ExpectedStatus)
			assert.Equal(t, domain.OutreachStatusGhosted, *update.Status)
			switch update.ID {
			case "out_second":
				return false, nil
			case "out_third":
				return false, errors.New("deadlock detected")
			}
			return true, nil
		}).
		Times(3)
	m.publisher.EXPECT().Publish(gomock.Any(), events.EventOutreachStatusChanged, gomock.Any(), gomock.Any()).Return(nil).Times(1)

	moved, err := svc.SweepGhosted(context.Background(), 30*24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, moved)
}

func staleBatch(prefix string, n int) []domain.OutreachRecord {
	records := make([]domain.OutreachRecord, 0, n)
	for i := 0; i < n; i++ {
		record := existingRecord(domain.OutreachStatusPitched)
		record.ID = fmt.Sprintf("%s_%d", prefix, i)
		records = append(records, *record)
	}
	return records
}

func TestService_SweepGhosted_Batches(t *testing.T) {
	t.Run("Continua até esgotar o backlog", func(t *testing.T) {
		svc, m := newTestService(t)
		cutoff := fixedNow.Add(-30 * 24 * time.Hour)

		gomock.InOrder(
			m.outreachRepo.EXPECT().ListStalePitched(gomock.Any(), cutoff, sweepBatchSize).Return(staleBatch("out_a", sweepBatchSize), nil),
			m.outreachRepo.EXPECT().ListStalePitched(gomock.Any(), cutoff, sweepBatchSize).Return(staleBatch("out_b", 2), nil),
		)
		m.outreachRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(true, nil).Times(sweepBatchSize + 2)
		m.publisher.EXPECT().Publish(gomock.Any(), events.EventOutreachStatusChanged, gomock.Any(), gomock.Any()).Return(nil).Times(sweepBatchSize + 2)

		moved, err := svc.SweepGhosted(context.Background(), 30*24*time.Hour)
		require.NoError(t, err)
		assert.Equal(t, sweepBatchSize+2, moved)
	})

	t.Run("Lote sem progresso encerra a varredura", func(t *testing.T) {
		svc, m := newTestService(t)

		m.outreachRepo.EXPECT().ListStalePitched(gomock.Any(), gomock.Any(), sweepBatchSize).Return(staleBatch("out_a", sweepBatchSize), nil).Times(1)
		m.outreachRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(false, errors.New("database down")).Times(sweepBatchSize)

		moved, err := svc.SweepGhosted(context.Background(), 30*24*time.Hour)
		require.NoError(t, err)
		assert.Zero(t, moved)
	})

	t.Run("Erro no segundo lote devolve o que já foi movido", func(t *testing.T) {
		svc, m := newTestService(t)

		gomock.InOrder(
			m.outreachRepo.EXPECT().ListStalePitched(gomock.Any(), gomock.Any(), sweepBatchSize).Return(staleBatch("out_a", sweepBatchSize), nil),
			m.outreachRepo.EXPECT().ListStalePitched(gomock.Any(), gomock.Any(), sweepBatchSize).Return(nil, errors.New("connection reset")),
		)
		m.outreachRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(true, nil).Times(sweepBatchSize)
		m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(sweepBatchSize)

		moved, err := svc.SweepGhosted(context.Background(), 30*24*time.Hour)
		requireOutreachError(t, err, ErrDatabaseOperation, apiErrors.ErrDatabaseOperation)
		assert.Equal(t, sweepBatchSize, moved)
	})
}

func statusPtr(s domain.OutreachStatus) *domain.OutreachStatus {
	return &s
}
