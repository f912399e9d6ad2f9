package producao

import (
	"context"

	"github.com/zerowaste/estoque-api/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de banco, passando
// repositórios atados a essa transação. Garante que o par de escritas
// (producao + ajuste de saldo) seja tudo-ou-nada para leitores concorrentes.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		produtoRepo repository.ProdutoRepository,
		producaoRepo repository.ProducaoRepository,
	) error) error
}
