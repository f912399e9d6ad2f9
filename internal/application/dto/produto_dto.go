package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CriarProdutoRequest entrada para cadastrar um recebimento de matéria-prima.
// QuantidadeRecebida aceita número ou string no JSON (o app envia string).
type CriarProdutoRequest struct {
	Nome               string          `json:"nome"`
	UnidadeMedida      string          `json:"unidadeMedida"`
	QuantidadeRecebida decimal.Decimal `json:"quantidadeRecebida"`
	Fornecedor         string          `json:"fornecedor"`
	DataRecebimento    *time.Time      `json:"dataRecebimento"`
}

// ProdutoResponse saída de um produto com o saldo atual.
type ProdutoResponse struct {
	ID              string          `json:"id"`
	Nome            string          `json:"nome"`
	UnidadeMedida   string          `json:"unidadeMedida"`
	Quantidade      decimal.Decimal `json:"quantidade"`
	Fornecedor      string          `json:"fornecedor,omitempty"`
	DataRecebimento *time.Time      `json:"dataRecebimento,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}
