package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/zerowaste/estoque-api/internal/application/auth"
	"github.com/zerowaste/estoque-api/internal/application/dto"
	"github.com/zerowaste/estoque-api/internal/domain"
	"github.com/zerowaste/estoque-api/internal/domain/entity"
	infracrypto "github.com/zerowaste/estoque-api/internal/infrastructure/crypto"
)

const testJWTSecret = "segredo-de-teste-para-unit-tests"

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória
// ──────────────────────────────────────────────────────────────────────────────

type fakeUsuarioRepo struct {
	porEmail map[string]*entity.Usuario
}

func newFakeUsuarioRepo() *fakeUsuarioRepo {
	return &fakeUsuarioRepo{porEmail: make(map[string]*entity.Usuario)}
}

func (r *fakeUsuarioRepo) Create(u *entity.Usuario) error {
	if _, ok := r.porEmail[u.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	cp := *u
	r.porEmail[u.Email] = &cp
	return nil
}

func (r *fakeUsuarioRepo) GetByID(id string) (*entity.Usuario, error) {
	for _, u := range r.porEmail {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUsuarioRepo) GetByEmail(email string) (*entity.Usuario, error) {
	u, ok := r.porEmail[email]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUsuarioRepo) SalvarResetToken(id, token string, expira time.Time) error {
	for _, u := range r.porEmail {
		if u.ID == id {
			tk := token
			ex := expira
			u.ResetToken = &tk
			u.ResetTokenExpira = &ex
			return nil
		}
	}
	return domain.ErrUserNotFound
}

func (r *fakeUsuarioRepo) RedefinirSenha(id, senhaHash string) error {
	for _, u := range r.porEmail {
		if u.ID == id {
			u.SenhaHash = senhaHash
			u.ResetToken = nil
			u.ResetTokenExpira = nil
			return nil
		}
	}
	return domain.ErrUserNotFound
}

// fakeSender registra o último envio; pode injetar falha de SMTP.
type fakeSender struct {
	para    string
	nome    string
	codigo  string
	envios  int
	failErr error
}

func (s *fakeSender) EnviarCodigoRecuperacao(_ context.Context, para, nome, codigo string) error {
	if s.failErr != nil {
		return s.failErr
	}
	s.para = para
	s.nome = nome
	s.codigo = codigo
	s.envios++
	return nil
}

func novoAuthUC(repo *fakeUsuarioRepo) *auth.UseCase {
	hasher := infracrypto.NewBcryptHasher(bcrypt.MinCost)
	return auth.NewUseCase(repo, hasher, auth.JWTConfig{
		Secret:     testJWTSecret,
		ExpMinutes: 60,
		Issuer:     "zero-waste-test",
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Registrar
// ──────────────────────────────────────────────────────────────────────────────

func TestRegistrar_HasheiaSenhaAntesDePersistir(t *testing.T) {
	repo := newFakeUsuarioRepo()
	uc := novoAuthUC(repo)

	out, err := uc.Registrar(dto.RegistrarRequest{Nome: "Maria", Email: "maria@ex.com", Senha: "minha-senha"})
	require.NoError(t, err)
	assert.Equal(t, "maria@ex.com", out.Email)
	assert.NotEmpty(t, out.ID)

	u, _ := repo.GetByEmail("maria@ex.com")
	require.NotNil(t, u)
	assert.NotEqual(t, "minha-senha", u.SenhaHash, "a senha nunca é persistida em texto")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.SenhaHash), []byte("minha-senha")),
		"o hash deve corresponder à senha original")
}

func TestRegistrar_CamposObrigatorios(t *testing.T) {
	uc := novoAuthUC(newFakeUsuarioRepo())

	for _, in := range []dto.RegistrarRequest{
		{Email: "a@ex.com", Senha: "x"},
		{Nome: "A", Senha: "x"},
		{Nome: "A", Email: "a@ex.com"},
	} {
		_, err := uc.Registrar(in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

func TestRegistrar_EmailDuplicado(t *testing.T) {
	repo := newFakeUsuarioRepo()
	uc := novoAuthUC(repo)

	_, err := uc.Registrar(dto.RegistrarRequest{Nome: "Maria", Email: "maria@ex.com", Senha: "s1"})
	require.NoError(t, err)

	_, err = uc.Registrar(dto.RegistrarRequest{Nome: "Outra", Email: "maria@ex.com", Senha: "s2"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_Sucesso(t *testing.T) {
	repo := newFakeUsuarioRepo()
	uc := novoAuthUC(repo)

	_, err := uc.Registrar(dto.RegistrarRequest{Nome: "Maria", Email: "maria@ex.com", Senha: "minha-senha"})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "maria@ex.com", Senha: "minha-senha"})
	require.NoError(t, err)
	assert.Equal(t, "Maria", out.Nome)
	assert.Equal(t, "Login bem-sucedido!", out.Message)
	assert.NotEmpty(t, out.Token, "o login devolve um JWT")
}

func TestLogin_EmailDesconhecido(t *testing.T) {
	uc := novoAuthUC(newFakeUsuarioRepo())

	_, err := uc.Login(dto.LoginRequest{Email: "ninguem@ex.com", Senha: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_SenhaErrada(t *testing.T) {
	repo := newFakeUsuarioRepo()
	uc := novoAuthUC(repo)

	_, err := uc.Registrar(dto.RegistrarRequest{Nome: "Maria", Email: "maria@ex.com", Senha: "certa"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "maria@ex.com", Senha: "errada"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
