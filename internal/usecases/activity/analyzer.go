package activity

import (
	"math"
	"time"

	"github.com/vfg2006/creator-pitch-api/internal/domain"
	"github.com/vfg2006/creator-pitch-api/pkg/utils"
)

const recentWindowMonths = 3

// AnalyzeBuckets calcula o sinal de contato a partir da janela de meses,
// ordenada do mais antigo para o mais recente. Espera exatamente
// domain.ActivityWindowMonths buckets (garantido por BuildMonthlyWindow).
func AnalyzeBuckets(buckets []domain.MonthlyActivityBucket) domain.ActivitySignal {
	total, recent := 0, 0
	recentStart := len(buckets) - recentWindowMonths

	for i, bucket := range buckets {
		total += bucket.Count
		if i >= recentStart {
			recent += bucket.Count
		}
	}

	signal := domain.ContactSignalLow
	switch {
	case recent >= 2:
		signal = domain.ContactSignalActive
	case recent >= 1 || total >= 3:
		signal = domain.ContactSignalModerate
	}

	var lastActive *string
	for i := len(buckets) - 1; i >= 0; i-- {
		if buckets[i].Count > 0 {
			label := buckets[i].Label
			lastActive = &label
			break
		}
	}

	return domain.ActivitySignal{
		TotalCount:          total,
		RecentCount:         recent,
		Signal:              signal,
		IsGoodTimeToContact: signal != domain.ContactSignalLow,
		LastActiveMonth:     lastActive,
	}
}

// WindowStart é o primeiro instante (UTC) do mês mais antigo da janela que termina em now
func WindowStart(now time.Time) time.Time {
	return utils.FirstDayOfMonth(now.UTC()).AddDate(0, -(domain.ActivityWindowMonths - 1), 0)
}

// BuildMonthlyWindow monta os buckets dos últimos meses até o mês de now (inclusive),
// preenchendo com zero os meses ausentes em counts.
func BuildMonthlyWindow(now time.Time, counts map[string]int) []domain.MonthlyActivityBucket {
	start := WindowStart(now)

	buckets := make([]domain.MonthlyActivityBucket, 0, domain.ActivityWindowMonths)
	for i := 0; i < domain.ActivityWindowMonths; i++ {
		month := start.AddDate(0, i, 0)
		key := utils.MonthKey(month)

		buckets = append(buckets, domain.MonthlyActivityBucket{
			MonthKey: key,
			Label:    utils.MonthLabel(month),
			Count:    max(counts[key], 0),
		})
	}

	return buckets
}

// CurrentMonthProgress é o percentual já decorrido do mês corrente (UTC)
func CurrentMonthProgress(now time.Time) int {
	now = now.UTC()
	return int(math.Round(float64(now.Day()) / float64(utils.DaysInMonth(now)) * 100))
}
