package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CriarProducaoRequest entrada para registrar uma produção (consumo de estoque).
// Quantidade aceita número ou string no JSON. NomeProduto chega do app como
// snapshot de exibição; o vínculo real é ProdutoID.
type CriarProducaoRequest struct {
	ProdutoID    string          `json:"produtoId"`
	NomeProduto  string          `json:"nomeProduto"`
	Quantidade   decimal.Decimal `json:"quantidade"`
	DataProducao *time.Time      `json:"dataProducao"`
	Observacao   string          `json:"observacao"`
}

// ProducaoCriadaResponse saída da criação: confirmação + saldo pós-baixa.
type ProducaoCriadaResponse struct {
	Message   string          `json:"message"`
	NovoSaldo decimal.Decimal `json:"novoSaldo"`
}

// ProducaoResponse saída de um registro do histórico de produção.
type ProducaoResponse struct {
	ID           string          `json:"id"`
	ProdutoID    string          `json:"produtoId"`
	NomeProduto  string          `json:"nomeProduto"`
	Quantidade   decimal.Decimal `json:"quantidade"`
	DataProducao *time.Time      `json:"dataProducao,omitempty"`
	Observacao   string          `json:"observacao,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
}
