package usecase

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/stoqr-api/internal/application/dto"
	"github.com/jhoicas/stoqr-api/internal/application/validation"
	"github.com/jhoicas/stoqr-api/internal/domain"
	"github.com/jhoicas/stoqr-api/internal/domain/entity"
	"github.com/jhoicas/stoqr-api/internal/domain/repository"
)

// Actor identifica a quien ejecuta la operación (extraído del JWT).
type Actor struct {
	ID   string
	Role string
}

// IsAdmin indica si el actor tiene rol Admin.
func (a Actor) IsAdmin() bool { return a.Role == entity.RoleAdmin }

// UserUseCase aplica reglas de negocio para usuarios.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// GetByID obtiene un usuario por ID. domain.ErrUserNotFound si no existe.
func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, repoErr("obtener usuario", err)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return ToUserResponse(user), nil
}

// List lista todos los usuarios.
func (uc *UserUseCase) List(ctx context.Context) (*dto.UserListResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, repoErr("listar usuarios", err)
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *ToUserResponse(u))
	}
	return &dto.UserListResponse{Items: items}, nil
}

// Update modifica nombre y email; rol y estado solo los cambia un Admin.
// Un usuario no Admin solo puede actualizarse a sí mismo.
func (uc *UserUseCase) Update(ctx context.Context, actor Actor, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	if !actor.IsAdmin() && actor.ID != id {
		return nil, domain.ErrForbidden
	}
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, repoErr("obtener usuario", err)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	changesRole := in.Role != "" && in.Role != user.Role
	changesStatus := in.Status != "" && in.Status != user.Status
	if (changesRole || changesStatus) && !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	existing, err := uc.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, repoErr("buscar email", err)
	}
	if existing != nil && existing.ID != id {
		return nil, domain.ErrEmailAlreadyExists
	}

	user.Name = in.Name
	user.Email = in.Email
	if changesRole {
		user.Role = in.Role
	}
	if changesStatus {
		user.Status = in.Status
	}
	user.UpdatedBy = actor.ID
	user.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(ctx, user); err != nil {
		return nil, repoErr("actualizar usuario", err)
	}
	return ToUserResponse(user), nil
}

// ChangePassword reemplaza el hash de la contraseña (propio usuario o Admin).
func (uc *UserUseCase) ChangePassword(ctx context.Context, actor Actor, id string, in dto.ChangePasswordRequest) error {
	if err := validation.Struct(in); err != nil {
		return err
	}
	if !actor.IsAdmin() && actor.ID != id {
		return domain.ErrForbidden
	}
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return repoErr("obtener usuario", err)
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)
	user.UpdatedBy = actor.ID
	user.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(ctx, user); err != nil {
		return repoErr("actualizar contraseña", err)
	}
	return nil
}

// ToUserResponse convierte la entidad a su DTO sin el hash de la contraseña.
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
