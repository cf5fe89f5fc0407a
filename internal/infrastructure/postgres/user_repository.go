package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/stoqr-api/internal/domain"
	"github.com/jhoicas/stoqr-api/internal/domain/entity"
	"github.com/jhoicas/stoqr-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

const userColumns = `id, name, email, password_hash, role, status, created_by, updated_by, created_at, updated_at`

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create persiste un nuevo usuario.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		user.ID, user.Name, user.Email, user.PasswordHash, user.Role, user.Status,
		nullable(user.CreatedBy), nullable(user.UpdatedBy), user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	if !validID(id) {
		return nil, nil
	}
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id, "get user by id")
}

// GetByEmail obtiene un usuario por email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1 LIMIT 1`, email, "get user by email")
}

func (r *UserRepo) findOne(ctx context.Context, query, arg, op string) (*entity.User, error) {
	u, err := scanUser(r.q.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}

// Update actualiza un usuario.
func (r *UserRepo) Update(ctx context.Context, user *entity.User) error {
	query := `
		UPDATE users SET name = $2, email = $3, password_hash = $4, role = $5, status = $6,
			updated_by = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		user.ID, user.Name, user.Email, user.PasswordHash, user.Role, user.Status,
		nullable(user.UpdatedBy), user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// List lista todos los usuarios ordenados por nombre.
func (r *UserRepo) List(ctx context.Context) ([]*entity.User, error) {
	rows, err := r.q.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	list := []*entity.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	var createdBy, updatedBy *string
	if err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.Status,
		&createdBy, &updatedBy, &u.CreatedAt, &u.UpdatedAt,
	); err != nil {
		return nil, err
	}
	u.CreatedBy = deref(createdBy)
	u.UpdatedBy = deref(updatedBy)
	return &u, nil
}
