package activity

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creator-pitch-api/infrastructure/repository"
	"github.com/vfg2006/creator-pitch-api/internal/domain"
)

type Service interface {
	BrandActivity(ctx context.Context, brandID string) (*domain.BrandActivity, error)
}

type service struct {
	brandRepo repository.BrandRepository
	nowFn     func() time.Time
}

func NewService(brandRepo repository.BrandRepository) Service {
	return &service{
		brandRepo: brandRepo,
		nowFn:     time.Now,
	}
}

// BrandActivity recalcula a janela a cada chamada, sem cache.
func (s *service) BrandActivity(ctx context.Context, brandID string) (*domain.BrandActivity, error) {
	brandID = strings.TrimSpace(brandID)
	if brandID == "" {
		return nil, ErrBrandIDRequired
	}

	brand, err := s.brandRepo.GetBrandByID(ctx, brandID)
	if err != nil {
		logrus.WithError(err).WithField("brand_id", brandID).Error("Erro ao buscar marca")
		return nil, fmt.Errorf("%w: %v", ErrFetchActivity, err)
	}

	if brand == nil {
		return nil, ErrBrandNotFound
	}

	now := s.nowFn().UTC()

	counts, err := s.brandRepo.CountPartnershipsByMonth(ctx, brandID, WindowStart(now))
	if err != nil {
		logrus.WithError(err).WithField("brand_id", brandID).Error("Erro ao contar parcerias por mês")
		return nil, fmt.Errorf("%w: %v", ErrFetchActivity, err)
	}

	buckets := BuildMonthlyWindow(now, counts)
	signal := AnalyzeBuckets(buckets)

	return &domain.BrandActivity{
		BrandID:              brand.ID,
		MonthlyActivity:      buckets,
		CurrentMonthProgress: CurrentMonthProgress(now),
		IsGoodTimeToContact:  signal.IsGoodTimeToContact,
		ContactSignal:        signal.Signal,
		LastActiveMonth:      signal.LastActiveMonth,
		TotalPartnerships:    signal.TotalCount,
		RecentPartnerships:   signal.RecentCount,
	}, nil
}
