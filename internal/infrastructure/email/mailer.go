package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"net/smtp"

	"github.com/jordan-wright/email"
	"github.com/zerowaste/estoque-api/internal/application/auth"
	"github.com/zerowaste/estoque-api/pkg/config"
)

var _ auth.EmailSender = (*Mailer)(nil)

// corpo do e-mail de recuperação, igual ao template do backend original.
var tmplRecuperacao = template.Must(template.New("recuperacao").Parse(`
<div style="font-family: Arial, sans-serif; color: #333;">
  <h2>Recuperação de Senha</h2>
  <p>Olá, <strong>{{.Nome}}</strong>!</p>
  <p>Seu código para redefinir a senha é:</p>
  <h1 style="color: #007bff; letter-spacing: 5px;">{{.Codigo}}</h1>
  <p>Este código expira em 1 hora.</p>
</div>`))

// Mailer envia e-mails transacionais via SMTP.
type Mailer struct {
	host     string
	user     string
	password string
	from     string
	addr     string
}

// NewMailer constrói o mailer com a configuração SMTP.
func NewMailer(cfg config.SMTPConfig) *Mailer {
	return &Mailer{
		host:     cfg.Host,
		user:     cfg.User,
		password: cfg.Password,
		from:     cfg.From,
		addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
	}
}

// EnviarCodigoRecuperacao envia o código de 6 dígitos para o e-mail do usuário.
func (m *Mailer) EnviarCodigoRecuperacao(_ context.Context, para, nome, codigo string) error {
	var body bytes.Buffer
	if err := tmplRecuperacao.Execute(&body, struct{ Nome, Codigo string }{nome, codigo}); err != nil {
		return fmt.Errorf("mailer: renderizar corpo: %w", err)
	}

	e := email.NewEmail()
	e.From = m.from
	e.To = []string{para}
	e.Subject = "Recuperação de Senha"
	e.HTML = body.Bytes()

	auth := smtp.PlainAuth("", m.user, m.password, m.host)
	if err := e.Send(m.addr, auth); err != nil {
		return fmt.Errorf("mailer: enviar: %w", err)
	}
	return nil
}
