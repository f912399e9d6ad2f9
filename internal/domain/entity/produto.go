package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Produto representa uma matéria-prima recebida no estoque.
// Quantidade é o saldo atual: entra no recebimento e sai via produção.
// Pode ficar negativa se o consumo ultrapassar o saldo — comportamento aceito,
// o alerta fica no app, não no servidor.
type Produto struct {
	ID              string
	Nome            string
	UnidadeMedida   string // Kg, L, Un...
	Quantidade      decimal.Decimal
	Fornecedor      string
	DataRecebimento *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
