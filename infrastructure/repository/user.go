package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/creator-pitch-api/infrastructure/database/postgres"
	"github.com/vfg2006/creator-pitch-api/internal/domain"
)

const (
	usersTable = "users"
)

type UserRepository interface {
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	GetUserByID(ctx context.Context, userID int) (*domain.User, error)
}

type userRepository struct {
	conn postgres.Queryer
}

func NewUserRepository(conn postgres.Queryer) UserRepository {
	return &userRepository{
		conn: conn,
	}
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getUser(ctx, squirrel.Eq{"email": email})
}

func (r *userRepository) GetUserByID(ctx context.Context, userID int) (*domain.User, error) {
	return r.getUser(ctx, squirrel.Eq{"id": userID})
}

func (r *userRepository) getUser(ctx context.Context, whereClause squirrel.Eq) (*domain.User, error) {
	query, args, err := squirrel.
		Select("id, name, email, password_hash, active, role_id, created_at, updated_at").
		From(usersTable).
		Where(whereClause).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var user domain.User
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.Active,
		&user.RoleID,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar usuário: %w", err)
	}

	return &user, nil
}
