package producao_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zerowaste/estoque-api/internal/application/dto"
	"github.com/zerowaste/estoque-api/internal/application/producao"
	"github.com/zerowaste/estoque-api/internal/domain"
	"github.com/zerowaste/estoque-api/internal/domain/entity"
	"github.com/zerowaste/estoque-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória
// ──────────────────────────────────────────────────────────────────────────────

type fakeProdutoRepo struct {
	produtos   map[string]*entity.Produto
	failAjuste bool // injeta falha no ajuste para testar o rollback
}

func newFakeProdutoRepo() *fakeProdutoRepo {
	return &fakeProdutoRepo{produtos: make(map[string]*entity.Produto)}
}

func (r *fakeProdutoRepo) Create(p *entity.Produto) error {
	cp := *p
	r.produtos[p.ID] = &cp
	return nil
}

func (r *fakeProdutoRepo) GetByID(id string) (*entity.Produto, error) {
	p, ok := r.produtos[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProdutoRepo) List() ([]*entity.Produto, error) {
	var list []*entity.Produto
	for _, p := range r.produtos {
		cp := *p
		list = append(list, &cp)
	}
	return list, nil
}

func (r *fakeProdutoRepo) AjustarQuantidade(id string, delta decimal.Decimal) (decimal.Decimal, error) {
	if r.failAjuste {
		return decimal.Zero, errors.New("falha injetada no ajuste")
	}
	p, ok := r.produtos[id]
	if !ok {
		return decimal.Zero, domain.ErrNotFound
	}
	p.Quantidade = p.Quantidade.Add(delta)
	return p.Quantidade, nil
}

type fakeProducaoRepo struct {
	producoes  map[string]*entity.Producao
	failCreate bool
}

func newFakeProducaoRepo() *fakeProducaoRepo {
	return &fakeProducaoRepo{producoes: make(map[string]*entity.Producao)}
}

func (r *fakeProducaoRepo) Create(p *entity.Producao) error {
	if r.failCreate {
		return errors.New("falha injetada no insert")
	}
	cp := *p
	r.producoes[p.ID] = &cp
	return nil
}

func (r *fakeProducaoRepo) GetByID(id string) (*entity.Producao, error) {
	p, ok := r.producoes[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProducaoRepo) List() ([]*entity.Producao, error) {
	var list []*entity.Producao
	for _, p := range r.producoes {
		cp := *p
		list = append(list, &cp)
	}
	return list, nil
}

func (r *fakeProducaoRepo) Delete(id string) error {
	delete(r.producoes, id)
	return nil
}

// fakeTxRunner tira um snapshot dos dois repositórios antes de executar fn e
// o restaura se fn falhar, imitando o Commit/Rollback do TxRunner real.
type fakeTxRunner struct {
	produtos  *fakeProdutoRepo
	producoes *fakeProducaoRepo
}

func (t *fakeTxRunner) Run(_ context.Context, fn func(
	produtoRepo repository.ProdutoRepository,
	producaoRepo repository.ProducaoRepository,
) error) error {
	produtosAntes := make(map[string]*entity.Produto, len(t.produtos.produtos))
	for k, v := range t.produtos.produtos {
		cp := *v
		produtosAntes[k] = &cp
	}
	producoesAntes := make(map[string]*entity.Producao, len(t.producoes.producoes))
	for k, v := range t.producoes.producoes {
		cp := *v
		producoesAntes[k] = &cp
	}

	if err := fn(t.produtos, t.producoes); err != nil {
		t.produtos.produtos = produtosAntes
		t.producoes.producoes = producoesAntes
		return err
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func novoAmbiente(t *testing.T) (*producao.UseCase, *fakeProdutoRepo, *fakeProducaoRepo) {
	t.Helper()
	produtos := newFakeProdutoRepo()
	producoes := newFakeProducaoRepo()
	runner := &fakeTxRunner{produtos: produtos, producoes: producoes}
	return producao.NewUseCase(runner, produtos, producoes), produtos, producoes
}

func seedProduto(t *testing.T, repo *fakeProdutoRepo, nome, saldo string) *entity.Produto {
	t.Helper()
	p := &entity.Produto{
		ID:            "produto-" + nome,
		Nome:          nome,
		UnidadeMedida: "Kg",
		Quantidade:    decimal.RequireFromString(saldo),
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	require.NoError(t, repo.Create(p))
	return p
}

func qtd(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// ──────────────────────────────────────────────────────────────────────────────
// Registrar
// ──────────────────────────────────────────────────────────────────────────────

// Registrar baixa exatamente a quantidade pedida e cria um único registro.
func TestRegistrar_BaixaEstoqueECriaRegistro(t *testing.T) {
	uc, produtos, producoes := novoAmbiente(t)
	p := seedProduto(t, produtos, "Filé", "100")

	out, err := uc.Registrar(context.Background(), dto.CriarProducaoRequest{
		ProdutoID:  p.ID,
		Quantidade: qtd("30"),
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.True(t, out.NovoSaldo.Equal(qtd("70")),
		"novoSaldo deve ser 70, veio %s", out.NovoSaldo)

	atual, _ := produtos.GetByID(p.ID)
	assert.True(t, atual.Quantidade.Equal(qtd("70")), "saldo do produto deve ser 70")
	assert.Len(t, producoes.producoes, 1, "deve existir exatamente um registro de produção")

	criada, _ := producoes.GetByID(out.ProducaoID)
	require.NotNil(t, criada)
	assert.Equal(t, p.ID, criada.ProdutoID, "a produção deve guardar o produto de origem")
	assert.Equal(t, "Filé", criada.NomeProduto, "o nome é um snapshot do produto")
	assert.True(t, criada.Quantidade.Equal(qtd("30")))
}

// Saldo negativo é aceito: o servidor não valida contra o disponível.
func TestRegistrar_PermiteSaldoNegativo(t *testing.T) {
	uc, produtos, _ := novoAmbiente(t)
	p := seedProduto(t, produtos, "Açúcar", "10")

	out, err := uc.Registrar(context.Background(), dto.CriarProducaoRequest{
		ProdutoID:  p.ID,
		Quantidade: qtd("25"),
	})
	require.NoError(t, err)
	assert.True(t, out.NovoSaldo.Equal(qtd("-15")), "saldo pode ficar negativo")
}

func TestRegistrar_ProdutoInexistente(t *testing.T) {
	uc, _, producoes := novoAmbiente(t)

	_, err := uc.Registrar(context.Background(), dto.CriarProducaoRequest{
		ProdutoID:  "nao-existe",
		Quantidade: qtd("5"),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, producoes.producoes, "nada deve ser criado")
}

func TestRegistrar_EntradaInvalida(t *testing.T) {
	uc, _, _ := novoAmbiente(t)

	_, err := uc.Registrar(context.Background(), dto.CriarProducaoRequest{Quantidade: qtd("5")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "sem produtoId")

	_, err = uc.Registrar(context.Background(), dto.CriarProducaoRequest{ProdutoID: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "sem quantidade")
}

// Falha em qualquer escrita do par desfaz as duas: nenhum estado parcial.
func TestRegistrar_FalhaNoAjusteDesfazTudo(t *testing.T) {
	uc, produtos, producoes := novoAmbiente(t)
	p := seedProduto(t, produtos, "Farinha", "50")
	produtos.failAjuste = true

	_, err := uc.Registrar(context.Background(), dto.CriarProducaoRequest{
		ProdutoID:  p.ID,
		Quantidade: qtd("20"),
	})
	require.Error(t, err)

	atual, _ := produtos.GetByID(p.ID)
	assert.True(t, atual.Quantidade.Equal(qtd("50")), "saldo não pode mudar")
	assert.Empty(t, producoes.producoes, "registro de produção não pode sobrar")
}

func TestRegistrar_FalhaNoInsertDesfazTudo(t *testing.T) {
	uc, produtos, producoes := novoAmbiente(t)
	p := seedProduto(t, produtos, "Leite", "50")
	producoes.failCreate = true

	_, err := uc.Registrar(context.Background(), dto.CriarProducaoRequest{
		ProdutoID:  p.ID,
		Quantidade: qtd("20"),
	})
	require.Error(t, err)

	atual, _ := produtos.GetByID(p.ID)
	assert.True(t, atual.Quantidade.Equal(qtd("50")), "saldo não pode mudar")
	assert.Empty(t, producoes.producoes)
}

// ──────────────────────────────────────────────────────────────────────────────
// Excluir
// ──────────────────────────────────────────────────────────────────────────────

func TestExcluir_ComDevolucaoRestauraSaldo(t *testing.T) {
	uc, produtos, producoes := novoAmbiente(t)
	p := seedProduto(t, produtos, "Filé", "100")

	out, err := uc.Registrar(context.Background(), dto.CriarProducaoRequest{
		ProdutoID:  p.ID,
		Quantidade: qtd("30"),
	})
	require.NoError(t, err)

	msg, err := uc.Excluir(context.Background(), out.ProducaoID, true)
	require.NoError(t, err)
	assert.Equal(t, producao.MsgEstornada, msg)

	atual, _ := produtos.GetByID(p.ID)
	assert.True(t, atual.Quantidade.Equal(qtd("100")),
		"estorno deve devolver o saldo exato: esperado 100, veio %s", atual.Quantidade)
	assert.Empty(t, producoes.producoes, "o registro deve sumir")
}

// Ida e volta com decimais não inteiros: igualdade exata, não aproximada.
func TestExcluir_RoundTripDecimalExato(t *testing.T) {
	uc, produtos, _ := novoAmbiente(t)
	p := seedProduto(t, produtos, "Azeite", "7.345")

	out, err := uc.Registrar(context.Background(), dto.CriarProducaoRequest{
		ProdutoID:  p.ID,
		Quantidade: qtd("2.125"),
	})
	require.NoError(t, err)
	assert.True(t, out.NovoSaldo.Equal(qtd("5.22")))

	_, err = uc.Excluir(context.Background(), out.ProducaoID, true)
	require.NoError(t, err)

	atual, _ := produtos.GetByID(p.ID)
	assert.True(t, atual.Quantidade.Equal(qtd("7.345")),
		"saldo deve voltar exatamente a 7.345, veio %s", atual.Quantidade)
}

func TestExcluir_SemDevolucaoNaoMexeNoSaldo(t *testing.T) {
	uc, produtos, producoes := novoAmbiente(t)
	p := seedProduto(t, produtos, "Sal", "40")

	out, err := uc.Registrar(context.Background(), dto.CriarProducaoRequest{
		ProdutoID:  p.ID,
		Quantidade: qtd("15"),
	})
	require.NoError(t, err)

	msg, err := uc.Excluir(context.Background(), out.ProducaoID, false)
	require.NoError(t, err)
	assert.Equal(t, producao.MsgLimpaDoHistorico, msg)

	atual, _ := produtos.GetByID(p.ID)
	assert.True(t, atual.Quantidade.Equal(qtd("25")), "saldo fica como estava após a baixa")
	assert.Empty(t, producoes.producoes)
}

// Produto excluído depois da produção: o estorno vira soft-fail, o registro
// some e nenhum saldo muda.
func TestExcluir_DevolucaoSemProdutoDeOrigem(t *testing.T) {
	uc, produtos, producoes := novoAmbiente(t)
	p := seedProduto(t, produtos, "Manteiga", "60")

	out, err := uc.Registrar(context.Background(), dto.CriarProducaoRequest{
		ProdutoID:  p.ID,
		Quantidade: qtd("10"),
	})
	require.NoError(t, err)

	delete(produtos.produtos, p.ID)

	msg, err := uc.Excluir(context.Background(), out.ProducaoID, true)
	require.NoError(t, err)
	assert.Equal(t, producao.MsgLimpaDoHistorico, msg, "sem produto, só limpa o histórico")
	assert.Empty(t, producoes.producoes)
	assert.Empty(t, produtos.produtos, "nenhum produto deve reaparecer")
}

func TestExcluir_RegistroInexistente(t *testing.T) {
	uc, _, _ := novoAmbiente(t)

	_, err := uc.Excluir(context.Background(), "nao-existe", true)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
