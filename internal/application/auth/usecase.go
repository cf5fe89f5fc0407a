package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/stoqr-api/internal/application/dto"
	"github.com/jhoicas/stoqr-api/internal/application/usecase"
	"github.com/jhoicas/stoqr-api/internal/application/validation"
	"github.com/jhoicas/stoqr-api/internal/domain"
	"github.com/jhoicas/stoqr-api/internal/domain/entity"
	"github.com/jhoicas/stoqr-api/internal/domain/repository"
	"github.com/jhoicas/stoqr-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro, login y usuario actual.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Register crea un usuario activo con rol User, hashea el password con bcrypt y devuelve
// un token. El endpoint es público: el rol no se acepta del cliente, solo un Admin lo cambia.
// domain.ErrEmailAlreadyExists si el email ya está registrado.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.TokenResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	user, err := uc.createUser(ctx, in, entity.RoleUser)
	if err != nil {
		return nil, err
	}
	return uc.issue(user)
}

// EnsureAdmin crea el administrador inicial si el email aún no existe. Es idempotente:
// un usuario ya registrado con ese email no se modifica.
func (uc *AuthUseCase) EnsureAdmin(ctx context.Context, in dto.RegisterRequest) (created bool, err error) {
	if err := validation.Struct(in); err != nil {
		return false, err
	}
	_, err = uc.createUser(ctx, in, entity.RoleAdmin)
	if errors.Is(err, domain.ErrEmailAlreadyExists) {
		return false, nil
	}
	return err == nil, err
}

func (uc *AuthUseCase) createUser(ctx context.Context, in dto.RegisterRequest, role string) (*entity.User, error) {
	existing, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, domain.Dependency("buscar email", err)
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         role,
		Status:       entity.UserStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			return nil, err
		}
		return nil, domain.Dependency("crear usuario", err)
	}
	return user, nil
}

// Login verifica email/password y genera el JWT. Un usuario inactivo recibe domain.ErrForbidden.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.TokenResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	user, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, domain.Dependency("buscar usuario", err)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != entity.UserStatusActive {
		return nil, domain.ErrForbidden
	}
	return uc.issue(user)
}

// Me devuelve el usuario del token.
func (uc *AuthUseCase) Me(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, domain.Dependency("obtener usuario", err)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return usecase.ToUserResponse(user), nil
}

func (uc *AuthUseCase) issue(user *entity.User) (*dto.TokenResponse, error) {
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Name, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.TokenResponse{Token: token}, nil
}
