package sql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/parkplatztransform/parkapi/internal/pkg/auth"
	"github.com/parkplatztransform/parkapi/internal/user/domain"
	pkgsql "github.com/parkplatztransform/parkapi/pkg/sql"
)

type userRepository struct {
	db pkgsql.Client
}

func NewUserRepository(db pkgsql.Client) domain.UserRepository {
	return userRepository{db: db}
}

func (r userRepository) NextID() domain.UserID {
	return domain.UserID{UUID: uuid.New()}
}

func (r userRepository) Store(ctx context.Context, user *domain.User) error {
	query, args, err := sq.
		Insert("\"user\"").
		Columns("id", "email", "permission_level", "created_at").
		Values(user.ID, user.Email, user.PermissionLevel, user.CreatedAt).
		Suffix(`on conflict (id) do update set
			email = excluded.email,
			permission_level = excluded.permission_level
		`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	_, err = r.db.ExecContext(ctx, query, args...)
	return err
}

func (r userRepository) FindByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	return r.findOne(ctx, sq.Eq{"id": id})
}

func (r userRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, sq.Eq{"email": email})
}

func (r userRepository) findOne(ctx context.Context, where sq.Eq) (*domain.User, error) {
	query, args, err := sq.
		Select("id", "email", "permission_level", "created_at").
		From("\"user\"").
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row sqlxUser
	err = r.db.GetContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	return &domain.User{
		ID:              row.ID,
		Email:           row.Email,
		PermissionLevel: auth.PermissionLevel(row.PermissionLevel),
		CreatedAt:       row.CreatedAt,
	}, nil
}

type sqlxUser struct {
	ID              domain.UserID `db:"id"`
	Email           string        `db:"email"`
	PermissionLevel int           `db:"permission_level"`
	CreatedAt       time.Time     `db:"created_at"`
}
