package produto

import (
	"time"

	"github.com/google/uuid"
	"github.com/zerowaste/estoque-api/internal/application/dto"
	"github.com/zerowaste/estoque-api/internal/domain"
	"github.com/zerowaste/estoque-api/internal/domain/entity"
	"github.com/zerowaste/estoque-api/internal/domain/repository"
)

// UseCase casos de uso de produto: recebimento de matéria-prima e listagem.
// O saldo só muda aqui na criação; baixas e estornos passam pelo caso de uso
// de produção, dentro de transação.
type UseCase struct {
	repo repository.ProdutoRepository
}

// NewUseCase constrói o caso de uso.
func NewUseCase(repo repository.ProdutoRepository) *UseCase {
	return &UseCase{repo: repo}
}

// Criar cadastra um recebimento: o produto nasce com o saldo recebido.
func (uc *UseCase) Criar(in dto.CriarProdutoRequest) (*dto.ProdutoResponse, error) {
	if in.Nome == "" || in.UnidadeMedida == "" || in.QuantidadeRecebida.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	p := &entity.Produto{
		ID:              uuid.New().String(),
		Nome:            in.Nome,
		UnidadeMedida:   in.UnidadeMedida,
		Quantidade:      in.QuantidadeRecebida,
		Fornecedor:      in.Fornecedor,
		DataRecebimento: in.DataRecebimento,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(p); err != nil {
		return nil, err
	}
	return toProdutoResponse(p), nil
}

// Listar devolve todos os produtos em ordem alfabética.
func (uc *UseCase) Listar() ([]*dto.ProdutoResponse, error) {
	produtos, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProdutoResponse, 0, len(produtos))
	for _, p := range produtos {
		out = append(out, toProdutoResponse(p))
	}
	return out, nil
}

func toProdutoResponse(p *entity.Produto) *dto.ProdutoResponse {
	if p == nil {
		return nil
	}
	return &dto.ProdutoResponse{
		ID:              p.ID,
		Nome:            p.Nome,
		UnidadeMedida:   p.UnidadeMedida,
		Quantidade:      p.Quantidade,
		Fornecedor:      p.Fornecedor,
		DataRecebimento: p.DataRecebimento,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}
