package auth

import (
	"time"

	"github.com/google/uuid"
	"github.com/zerowaste/estoque-api/internal/application/dto"
	"github.com/zerowaste/estoque-api/internal/domain"
	"github.com/zerowaste/estoque-api/internal/domain/entity"
	"github.com/zerowaste/estoque-api/internal/domain/repository"
	"github.com/zerowaste/estoque-api/pkg/jwt"
)

// JWTConfig configuração para geração de tokens de sessão.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

/// UseCase casos de uso de autenticação: registro e login.
type UseCase struct {
	usuarioRepo repository.UsuarioRepository
	hasher      PasswordHasher
	jwtCfg      JWTConfig
}

// NewUseCase constrói o caso de uso de auth.
func NewUseCase(usuarioRepo repository.UsuarioRepository, hasher PasswordHasher, jwtCfg JWTConfig) *UseCase {
	return &UseCase{usuarioRepo: usuarioRepo, hasher: hasher, jwtCfg: jwtCfg}
}

/// Registrar cria um usuário: hasheia a senha e persiste.
// Devolve ErrEmailAlreadyExists se o e-mail já está cadastrado.
func (uc *UseCase) Registrar(in dto.RegistrarRequest) (*dto.RegistradoResponse, error) {
	if in.Nome == "" || in.Email == "" || in.Senha == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.usuarioRepo.GetByEmail(in.Email)
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := uc.hasher.Hash(in.Senha)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	u := &entity.Usuario{
		ID:        uuid.New().String(),
		Nome:      in.Nome,
		Email:     in.Email,
		SenhaHash: hash,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.usuarioRepo.Create(u); err != nil {
		return nil, err
	}
	return &dto.RegistradoResponse{ID: u.ID, Email: u.Email}, nil
}

// Login verifica email/senha e devolve os dados do usuário com um JWT.
// ErrUserNotFound para e-mail desconhecido, ErrUnauthorized para senha errada.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Email == "" || in.Senha == "" {
		return nil, domain.ErrInvalidInput
	}
	u, err := uc.usuarioRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := uc.hasher.Compare(u.SenhaHash, in.Senha); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, u.ID, u.Email, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		ID:      u.ID,
		Nome:    u.Nome,
		Email:   u.Email,
		Message: "Login bem-sucedido!",
		Token:   token,
	}, nil
}

// Me devolve os dados do usuário autenticado (id vindo do token).
func (uc *UseCase) Me(id string) (*dto.MeResponse, error) {
	u, err := uc.usuarioRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	return &dto.MeResponse{ID: u.ID, Nome: u.Nome, Email: u.Email}, nil
}
