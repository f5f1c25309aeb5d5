package userrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/mkarpov/tollgate/internal/domain"
	"github.com/mkarpov/tollgate/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (repo *Repository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `
		SELECT user_id, username, password_hash, role, user_type, country, company_id, company_name
		FROM users
		WHERE username = $1
	`
	var user domain.User
	err := repo.db.QueryRow(ctx, query, username).Scan(
		&user.ID, &user.Username, &user.PasswordHash, &user.Role,
		&user.Kind, &user.Country, &user.CompanyID, &user.CompanyName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find user by username", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) FindByID(ctx context.Context, userID int) (*domain.User, error) {
	query := `
		SELECT user_id, username, password_hash, role, user_type, country, company_id, company_name
		FROM users
		WHERE user_id = $1
	`
	var user domain.User
	err := repo.db.QueryRow(ctx, query, userID).Scan(
		&user.ID, &user.Username, &user.PasswordHash, &user.Role,
		&user.Kind, &user.Country, &user.CompanyID, &user.CompanyName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find user by id", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (username, password_hash, role, user_type, country, company_id, company_name)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING user_id
	`
	err := repo.db.QueryRow(ctx, query,
		user.Username, user.PasswordHash, user.Role, user.Kind,
		user.Country, user.CompanyID, user.CompanyName,
	).Scan(&user.ID)
	if err != nil {
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (repo *Repository) FindAll(ctx context.Context) ([]domain.User, error) {
	query := `
		SELECT user_id, username, role, user_type, country
		FROM users
		ORDER BY user_id
	`
	rows, err := repo.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list users", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(&user.ID, &user.Username, &user.Role, &user.Kind, &user.Country); err != nil {
			zap.L().Error("can't scan user row", zap.Error(err))
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (repo *Repository) Delete(ctx context.Context, userID int) (bool, error) {
	tag, err := repo.db.Exec(ctx, `DELETE FROM users WHERE user_id = $1`, userID)
	if err != nil {
		zap.L().Error("can't delete user", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
