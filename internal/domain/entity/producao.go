package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Producao registra um evento de consumo de estoque: a criação baixa a
// Quantidade do Produto de origem na mesma transação.
// ProdutoID guarda o produto de origem para o estorno; NomeProduto é apenas
// um snapshot de exibição capturado na criação (não acompanha renomeações).
type Producao struct {
	ID           string
	ProdutoID    string
	NomeProduto  string
	Quantidade   decimal.Decimal
	DataProducao *time.Time
	Observacao   string
	CreatedAt    time.Time
}
