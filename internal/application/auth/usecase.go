package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/atelier-soft/joyeria-api/internal/application/dto"
	"github.com/atelier-soft/joyeria-api/internal/domain"
	"github.com/atelier-soft/joyeria-api/internal/domain/entity"
	"github.com/atelier-soft/joyeria-api/internal/domain/repository"
	"github.com/atelier-soft/joyeria-api/pkg/jwt"
)

// Config parámetros de emisión de tokens.
type Config struct {
	JWTSecret  string
	Issuer     string
	ExpMinutes int
}

// UseCase registro y autenticación de usuarios.
type UseCase struct {
	repo repository.UserRepository
	cfg  Config
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.UserRepository, cfg Config) *UseCase {
	return &UseCase{repo: repo, cfg: cfg}
}

// Register crea un usuario con contraseña hasheada (bcrypt) y devuelve su token.
// El registro público siempre crea vendedores: el rol admin solo se otorga por
// fuera de este endpoint (ver el seed en schema.sql).
func (uc *UseCase) Register(in dto.RegisterRequest) (*dto.AuthResponse, error) {
	if in.Email == "" || len(in.Password) < 8 || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         in.Name,
		Role:         entity.RoleVendedor,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(user); err != nil {
		return nil, err
	}
	return uc.authResponse(user)
}

// Login verifica credenciales y devuelve el token. Credenciales incorrectas y
// usuario inexistente responden igual para no filtrar qué emails existen.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.AuthResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.repo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	return uc.authResponse(user)
}

func (uc *UseCase) authResponse(user *entity.User) (*dto.AuthResponse, error) {
	token, err := jwt.Generate(uc.cfg.JWTSecret, user.ID, user.Role, uc.cfg.Issuer, uc.cfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{
		Token: token,
		User: dto.UserResponse{
			ID:    user.ID,
			Email: user.Email,
			Name:  user.Name,
			Role:  user.Role,
		},
	}, nil
}
