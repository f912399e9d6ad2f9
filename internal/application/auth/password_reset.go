package auth

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/zerowaste/estoque-api/internal/domain"
	"github.com/zerowaste/estoque-api/internal/domain/repository"
)

// tokenTTL validade do código de recuperação.
const tokenTTL = time.Hour

// PasswordResetUseCase máquina de estados da recuperação de senha:
// emissão do código, validação e consumo de uso único.
type PasswordResetUseCase struct {
	usuarioRepo repository.UsuarioRepository
	hasher      PasswordHasher
	sender      EmailSender
}

// NewPasswordResetUseCase constrói o caso de uso.
func NewPasswordResetUseCase(usuarioRepo repository.UsuarioRepository, hasher PasswordHasher, sender EmailSender) *PasswordResetUseCase {
	return &PasswordResetUseCase{usuarioRepo: usuarioRepo, hasher: hasher, sender: sender}
}

// EsqueciSenha gera um código de 6 dígitos com validade de 1 hora, persiste
// token + expiração no usuário (sobrescrevendo qualquer código anterior ainda
// vivo) e envia por e-mail. Se o envio falhar o erro é reportado, mas o código
// já persistido continua válido — comportamento mantido do backend original.
func (uc *PasswordResetUseCase) EsqueciSenha(ctx context.Context, email string) error {
	if email == "" {
		return domain.ErrInvalidInput
	}
	u, err := uc.usuarioRepo.GetByEmail(email)
	if err != nil {
		return err
	}
	if u == nil {
		return domain.ErrUserNotFound
	}

	codigo, err := gerarCodigo()
	if err != nil {
		return err
	}
	expira := time.Now().Add(tokenTTL)
	if err := uc.usuarioRepo.SalvarResetToken(u.ID, codigo, expira); err != nil {
		return err
	}

	if err := uc.sender.EnviarCodigoRecuperacao(ctx, u.Email, u.Nome, codigo); err != nil {
		return fmt.Errorf("enviar e-mail de recuperação: %w", err)
	}
	return nil
}

// RedefinirSenha valida email, código e validade, nessa ordem, e então grava o
// novo hash limpando token + expiração num único statement. O consumo do
// código é o próprio clear: uma repetição com o mesmo código cai em
// ErrTokenInvalido, porque o token armazenado já é nulo.
func (uc *PasswordResetUseCase) RedefinirSenha(ctx context.Context, email, token, novaSenha string) error {
	if email == "" || token == "" || novaSenha == "" {
		return domain.ErrInvalidInput
	}
	u, err := uc.usuarioRepo.GetByEmail(email)
	if err != nil {
		return err
	}
	if u == nil {
		return domain.ErrUserNotFound
	}
	if u.ResetToken == nil || *u.ResetToken != token {
		return domain.ErrTokenInvalido
	}
	if u.ResetTokenExpira == nil || !time.Now().Before(*u.ResetTokenExpira) {
		return domain.ErrTokenExpirado
	}

	hash, err := uc.hasher.Hash(novaSenha)
	if err != nil {
		return err
	}
	return uc.usuarioRepo.RedefinirSenha(u.ID, hash)
}

// gerarCodigo sorteia um código numérico de 6 dígitos, uniforme em
// 000000–999999, com zeros à esquerda preservados.
func gerarCodigo() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", fmt.Errorf("gerar código: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
