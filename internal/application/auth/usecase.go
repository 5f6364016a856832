package auth

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/barcaexpert/pdv-api/internal/application/dto"
	"github.com/barcaexpert/pdv-api/internal/domain"
	"github.com/barcaexpert/pdv-api/internal/domain/entity"
	"github.com/barcaexpert/pdv-api/internal/domain/repository"
	"github.com/barcaexpert/pdv-api/pkg/jwt"
)

// JWTConfig configuração para geração de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase login e cadastro de operadores do terminal.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase constrói o caso de uso.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Register cria um operador: senha com bcrypt, papel padrão operador.
// Devolve ErrDuplicate se o username já existe.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.UserResponse, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.userRepo.FindByUsername(in.Username)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	name := in.Name
	if name == "" {
		name = in.Username
	}
	role := in.Role
	switch role {
	case "":
		role = entity.RoleOperador
	case entity.RoleAdmin, entity.RoleOperador, entity.RoleVendedor:
	default:
		return nil, domain.ErrInvalidInput
	}
	user := &entity.User{
		Username:     in.Username,
		PasswordHash: string(hash),
		Name:         name,
		Role:         role,
		Active:       true,
		CreatedAt:    time.Now(),
	}
	id, err := uc.userRepo.Create(user)
	if err != nil {
		return nil, err
	}
	user.ID = id
	return toUserResponse(user), nil
}

// Login confere username/senha, gera o JWT e devolve token + operador.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !user.Active {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: *toUserResponse(user)}, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Name:     u.Name,
		Role:     u.Role,
	}
}
