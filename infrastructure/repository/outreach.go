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
	outreachTable = "outreach o"

	// OutreachUserBrandConstraint garante um único outreach por (usuário, marca)
	OutreachUserBrandConstraint = "outreach_user_brand_key"
)

// ErrDuplicateOutreach é devolvido quando o banco rejeita um segundo outreach para o mesmo par
var ErrDuplicateOutreach = errors.New("outreach already exists for user and brand")

var outreachColumns = []string{
	"o.id",
	"o.user_id",
	"o.brand_id",
	"o.status",
	"o.pitch_subject",
	"o.pitch_body",
	"o.pitch_tone",
	"o.template_id",
	"o.pitched_at",
	"o.confirmed_at",
	"o.paid_at",
	"o.amount",
	"o.notes",
	"o.created_at",
	"o.updated_at",
}

type OutreachFilter struct {
	UserID int
	Status *domain.OutreachStatus
	Limit  int
	Offset int
}

type OutreachRepository interface {
	GetByID(ctx context.Context, id string) (*domain.OutreachRecord, error)
	GetByUserAndBrand(ctx context.Context, userID int, brandID string) (*domain.OutreachRecord, error)
	Create(ctx context.Context, record *domain.OutreachRecord) error
	ListByUser(ctx context.Context, filter OutreachFilter) ([]domain.OutreachRecord, int, error)
	CountByStatus(ctx context.Context, userID int) (map[domain.OutreachStatus]int, error)
	Update(ctx context.Context, update domain.OutreachUpdate) (bool, error)
	ListStalePitched(ctx context.Context, updatedBefore time.Time, limit int) ([]domain.OutreachRecord, error)
}

type outreachRepository struct {
	conn postgres.Queryer
}

func NewOutreachRepository(conn postgres.Queryer) OutreachRepository {
	return &outreachRepository{
		conn: conn,
	}
}

func (r *outreachRepository) GetByID(ctx context.Context, id string) (*domain.OutreachRecord, error) {
	return r.getOutreach(ctx, squirrel.Eq{"o.id": id})
}

func (r *outreachRepository) GetByUserAndBrand(ctx context.Context, userID int, brandID string) (*domain.OutreachRecord, error) {
	return r.getOutreach(ctx, squirrel.Eq{"o.user_id": userID, "o.brand_id": brandID})
}

func (r *outreachRepository) getOutreach(ctx context.Context, whereClause squirrel.Eq) (*domain.OutreachRecord, error) {
	query, args, err := squirrel.
		Select(outreachColumns...).
		From(outreachTable).
		Where(whereClause).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	record := &domain.OutreachRecord{}
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(outreachScanTargets(record)...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get outreach: %w", err)
	}

	return record, nil
}

// Create insere o outreach em um único INSERT. A constraint UNIQUE do banco é
// a fonte de verdade para duplicidade; a violação vira ErrDuplicateOutreach.
func (r *outreachRepository) Create(ctx context.Context, record *domain.OutreachRecord) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("outreach").
		Columns(
			"id",
			"user_id",
			"brand_id",
			"status",
			"pitch_subject",
			"pitch_body",
			"pitch_tone",
			"template_id",
			"pitched_at",
			"created_at",
			"updated_at",
		).
		Values(
			record.ID,
			record.UserID,
			record.BrandID,
			record.Status,
			record.PitchSubject,
			record.PitchBody,
			record.PitchTone,
			record.TemplateID,
			record.PitchedAt,
			record.CreatedAt,
			record.UpdatedAt,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		if postgres.IsUniqueViolation(err, OutreachUserBrandConstraint) {
			return ErrDuplicateOutreach
		}
		return fmt.Errorf("failed to insert outreach: %w", err)
	}

	return nil
}

func (r *outreachRepository) ListByUser(ctx context.Context, filter OutreachFilter) ([]domain.OutreachRecord, int, error) {
	where := squirrel.Eq{"o.user_id": filter.UserID}
	if filter.Status != nil {
		where["o.status"] = *filter.Status
	}

	countSQL, countArgs, err := squirrel.
		Select("COUNT(*)").
		From(outreachTable).
		Where(where).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count query: %w", err)
	}

	var total int
	if err := r.conn.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count outreach: %w", err)
	}

	columns := append(append([]string{}, outreachColumns...), "b.name", "b.handle", "b.category", "b.profile_picture")

	listSQL, listArgs, err := squirrel.
		Select(columns...).
		From(outreachTable).
		Join("brands b ON b.id = o.brand_id").
		Where(where).
		OrderBy("o.created_at DESC").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list outreach: %w", err)
	}
	defer rows.Close()

	records := make([]domain.OutreachRecord, 0)
	for rows.Next() {
		record := domain.OutreachRecord{Brand: &domain.BrandSummary{}}
		targets := append(outreachScanTargets(&record),
			&record.Brand.Name,
			&record.Brand.Handle,
			&record.Brand.Category,
			&record.Brand.ProfilePicture,
		)

		if err := rows.Scan(targets...); err != nil {
			return nil, 0, fmt.Errorf("failed to scan outreach: %w", err)
		}

		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating outreach rows: %w", err)
	}

	return records, total, nil
}

func (r *outreachRepository) CountByStatus(ctx context.Context, userID int) (map[domain.OutreachStatus]int, error) {
	query, args, err := squirrel.
		Select("o.status", "COUNT(*)").
		From(outreachTable).
		Where(squirrel.Eq{"o.user_id": userID}).
		GroupBy("o.status").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to count outreach by status: %w", err)
	}
	defer rows.Close()

	counts := make(map[domain.OutreachStatus]int)
	for rows.Next() {
		var status domain.OutreachStatus
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("failed to scan status count: %w", err)
		}
		counts[status] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating status rows: %w", err)
	}

	return counts, nil
}

// Update aplica a alteração somente se o status atual ainda for ExpectedStatus.
// Retorna false quando nenhuma linha foi afetada (registro alterado por outra requisição).
func (r *outreachRepository) Update(ctx context.Context, update domain.OutreachUpdate) (bool, error) {
	queryBuilder := squirrel.
		Update("outreach").
		Set("updated_at", update.UpdatedAt).
		Where(squirrel.Eq{
			"id":      update.ID,
			"user_id": update.UserID,
			"status":  update.ExpectedStatus,
		}).
		PlaceholderFormat(squirrel.Dollar)

	if update.Status != nil {
		queryBuilder = queryBuilder.Set("status", *update.Status)
	}

	if update.Amount != nil {
		queryBuilder = queryBuilder.Set("amount", *update.Amount)
	}

	if update.Notes != nil {
		queryBuilder = queryBuilder.Set("notes", *update.Notes)
	}

	if update.ConfirmedAt != nil {
		queryBuilder = queryBuilder.Set("confirmed_at", *update.ConfirmedAt)
	}

	if update.PaidAt != nil {
		queryBuilder = queryBuilder.Set("paid_at", *update.PaidAt)
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to update outreach: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("error getting rows affected: %w", err)
	}

	return rowsAffected > 0, nil
}

func (r *outreachRepository) ListStalePitched(ctx context.Context, updatedBefore time.Time, limit int) ([]domain.OutreachRecord, error) {
	query, args, err := squirrel.
		Select(outreachColumns...).
		From(outreachTable).
		Where(squirrel.Eq{"o.status": domain.OutreachStatusPitched}).
		Where(squirrel.Lt{"o.updated_at": updatedBefore}).
		OrderBy("o.updated_at ASC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list stale outreach: %w", err)
	}
	defer rows.Close()

	records := make([]domain.OutreachRecord, 0)
	for rows.Next() {
		var record domain.OutreachRecord
		if err := rows.Scan(outreachScanTargets(&record)...); err != nil {
			return nil, fmt.Errorf("failed to scan outreach: %w", err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating outreach rows: %w", err)
	}

	return records, nil
}

func outreachScanTargets(record *domain.OutreachRecord) []interface{} {
	return []interface{}{
		&record.ID,
		&record.UserID,
		&record.BrandID,
		&record.Status,
		&record.PitchSubject,
		&record.PitchBody,
		&record.PitchTone,
		&record.TemplateID,
		&record.PitchedAt,
		&record.ConfirmedAt,
		&record.PaidAt,
		&record.Amount,
		&record.Notes,
		&record.CreatedAt,
		&record.UpdatedAt,
	}
}
