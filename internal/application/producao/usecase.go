package producao

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/zerowaste/estoque-api/internal/application/dto"
	"github.com/zerowaste/estoque-api/internal/domain"
	"github.com/zerowaste/estoque-api/internal/domain/entity"
	"github.com/zerowaste/estoque-api/internal/domain/repository"
)

// Mensagens de confirmação retornadas ao app (mantidas do backend original).
const (
	MsgRegistrada       = "Produção registrada e estoque atualizado!"
	MsgEstornada        = "Erro corrigido: Estoque devolvido."
	MsgLimpaDoHistorico = "Registro limpo do histórico."
)

// UseCase amarra produção e estoque: registrar uma produção baixa o saldo do
// produto na mesma transação; excluir pode devolver a quantidade (estorno).
// A baixa é um ajuste relativo avaliado pelo banco, então dois registros
// concorrentes sobre o mesmo produto acumulam sem lock explícito.
type UseCase struct {
	txRunner     TxRunner
	produtoRepo  repository.ProdutoRepository
	producaoRepo repository.ProducaoRepository
}

// NewUseCase constrói o caso de uso.
func NewUseCase(txRunner TxRunner, produtoRepo repository.ProdutoRepository, producaoRepo repository.ProducaoRepository) *UseCase {
	return &UseCase{txRunner: txRunner, produtoRepo: produtoRepo, producaoRepo: producaoRepo}
}

// ResultadoRegistro saída de Registrar: id da produção criada e saldo pós-baixa.
type ResultadoRegistro struct {
	ProducaoID string
	NovoSaldo  decimal.Decimal
}

// Registrar cria o registro de produção e baixa o estoque do produto, tudo ou
// nada. Não valida a quantidade contra o saldo disponível: saldo negativo é
// aceito (o app avisa antes de enviar, o servidor não bloqueia).
func (uc *UseCase) Registrar(ctx context.Context, in dto.CriarProducaoRequest) (*ResultadoRegistro, error) {
	if in.ProdutoID == "" || in.Quantidade.IsZero() {
		return nil, domain.ErrInvalidInput
	}

	p, err := uc.produtoRepo.GetByID(in.ProdutoID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	prod := &entity.Producao{
		ID:           uuid.New().String(),
		ProdutoID:    p.ID,
		NomeProduto:  p.Nome, // snapshot de exibição; não é usado para o estorno
		Quantidade:   in.Quantidade,
		DataProducao: in.DataProducao,
		Observacao:   in.Observacao,
		CreatedAt:    now,
	}

	var novoSaldo decimal.Decimal
	err = uc.txRunner.Run(ctx, func(
		produtoRepo repository.ProdutoRepository,
		producaoRepo repository.ProducaoRepository,
	) error {
		if err := producaoRepo.Create(prod); err != nil {
			return err
		}
		saldo, err := produtoRepo.AjustarQuantidade(p.ID, in.Quantidade.Neg())
		if err != nil {
			return err
		}
		novoSaldo = saldo
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &ResultadoRegistro{ProducaoID: prod.ID, NovoSaldo: novoSaldo}, nil
}

// Excluir remove um registro de produção. Com devolver=true o estorno devolve
// a quantidade ao produto de origem na mesma transação; se o produto foi
// excluído depois, a remoção segue sem mexer em saldo nenhum (soft-fail).
// Com devolver=false só limpa o histórico.
func (uc *UseCase) Excluir(ctx context.Context, id string, devolver bool) (string, error) {
	prod, err := uc.producaoRepo.GetByID(id)
	if err != nil {
		return "", err
	}
	if prod == nil {
		return "", domain.ErrNotFound
	}

	if devolver {
		p, err := uc.produtoRepo.GetByID(prod.ProdutoID)
		if err != nil {
			return "", err
		}
		if p != nil {
			err = uc.txRunner.Run(ctx, func(
				produtoRepo repository.ProdutoRepository,
				producaoRepo repository.ProducaoRepository,
			) error {
				if err := producaoRepo.Delete(prod.ID); err != nil {
					return err
				}
				_, err := produtoRepo.AjustarQuantidade(p.ID, prod.Quantidade)
				return err
			})
			if err != nil {
				return "", err
			}
			return MsgEstornada, nil
		}
		log.Warn().
			Str("producao_id", prod.ID).
			Str("produto_id", prod.ProdutoID).
			Msg("estorno sem produto de origem; registro excluído sem devolução")
	}

	if err := uc.producaoRepo.Delete(prod.ID); err != nil {
		return "", err
	}
	return MsgLimpaDoHistorico, nil
}

// Listar devolve o histórico de produções, mais recentes primeiro.
func (uc *UseCase) Listar() ([]*dto.ProducaoResponse, error) {
	producoes, err := uc.producaoRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProducaoResponse, 0, len(producoes))
	for _, prod := range producoes {
		out = append(out, &dto.ProducaoResponse{
			ID:           prod.ID,
			ProdutoID:    prod.ProdutoID,
			NomeProduto:  prod.NomeProduto,
			Quantidade:   prod.Quantidade,
			DataProducao: prod.DataProducao,
			Observacao:   prod.Observacao,
			CreatedAt:    prod.CreatedAt,
		})
	}
	return out, nil
}
