package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/creator-pitch-api/infrastructure/database/postgres"
	"github.com/vfg2006/creator-pitch-api/internal/domain"
)

const (
	brandsTable       = "brands b"
	partnershipsTable = "partnerships p"
)

type BrandRepository interface {
	GetBrandByID(ctx context.Context, brandID string) (*domain.Brand, error)
	CountPartnershipsByMonth(ctx context.Context, brandID string, since time.Time) (map[string]int, error)
}

type brandRepository struct {
	conn postgres.Queryer
}

func NewBrandRepository(conn postgres.Queryer) BrandRepository {
	return &brandRepository{
		conn: conn,
	}
}

func (r *brandRepository) GetBrandByID(ctx context.Context, brandID string) (*domain.Brand, error) {
	query, args, err := squirrel.
		Select(
			"b.id",
			"b.name",
			"b.handle",
			"b.category",
			"b.followers",
			"b.partnership_count",
			"b.activity_score",
			"b.last_partnership_at",
		).
		From(brandsTable).
		Where(squirrel.Eq{"b.id": brandID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	brand := &domain.Brand{}
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&brand.ID,
		&brand.Name,
		&brand.Handle,
		&brand.Category,
		&brand.Followers,
		&brand.PartnershipCount,
		&brand.ActivityScore,
		&brand.LastPartnershipAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar marca: %w", err)
	}

	return brand, nil
}

// CountPartnershipsByMonth agrupa as parcerias da marca por mês (chave yyyy-mm, UTC)
// a partir de since. Meses sem parcerias não aparecem no resultado.
func (r *brandRepository) CountPartnershipsByMonth(ctx context.Context, brandID string, since time.Time) (map[string]int, error) {
	query, args, err := squirrel.
		Select(
			"to_char(date_trunc('month', p.detected_at AT TIME ZONE 'UTC'), 'YYYY-MM') AS month_key",
			"COUNT(*)",
		).
		From(partnershipsTable).
		Where(squirrel.Eq{"p.brand_id": brandID}).
		Where(squirrel.GtOrEq{"p.detected_at": since}).
		GroupBy("month_key").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var monthKey string
		var count int
		if err := rows.Scan(&monthKey, &count); err != nil {
			return nil, fmt.Errorf("erro ao escanear contagem mensal: %w", err)
		}
		counts[monthKey] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return counts, nil
}
