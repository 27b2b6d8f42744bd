package honorario

import (
	"testing"
	"time"

	"github.com/AsielSouza/advsystem/internal/parcela"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dia(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func parcelaExistente(id uint, numero int, valor, pago float64, vencimento string) parcela.Parcela {
	p := parcela.Parcela{
		ID:              id,
		HonorarioID:     "hon-1",
		NumeroDaParcela: numero,
		ValorParcela:    valor,
		ValorPago:       pago,
		Status:          parcela.StatusPendente,
		DataVencimento:  dia(vencimento),
		FormaPagamento:  parcela.FormaParceladoLabel,
	}
	if pago >= valor {
		p.Status = parcela.StatusPaga
		dt := dia(vencimento)
		p.DataPagamento = &dt
	}
	return p
}

func normParcelado(parcelas ...ParcelaPlano) *FormNormalizado {
	n := len(parcelas)
	return &FormNormalizado{
		NumeroProcesso: "0001234-56.2024.8.26.0100",
		ValorTotal:     1000,
		FormaPagamento: FormaParcelado,
		NumeroParcelas: &n,
		Parcelas:       parcelas,
	}
}

func TestReconciliarAtualizaPreservandoPagamento(t *testing.T) {
	existentes := []parcela.Parcela{
		parcelaExistente(1, 1, 300, 0, "2024-02-10"),
		parcelaExistente(2, 2, 300, 300, "2024-03-10"), // quitada
	}

	ops := ReconciliarParcelas(existentes, normParcelado(
		ParcelaPlano{Numero: 1, DataVencimento: dia("2024-02-10"), Valor: 300},
		ParcelaPlano{Numero: 2, DataVencimento: dia("2024-04-01"), Valor: 300}, // só muda o vencimento
	))

	require.Len(t, ops.Atualizar, 2)
	assert.Empty(t, ops.Inserir)
	assert.Empty(t, ops.Remover)

	seq2 := ops.Atualizar[1]
	assert.Equal(t, uint(2), seq2.ID)
	assert.Equal(t, dia("2024-04-01"), seq2.DataVencimento)
	assert.Equal(t, 300.0, seq2.ValorPago, "pagamento registrado nunca é alterado pela submissão")
	assert.Equal(t, parcela.StatusPaga, seq2.Status)
	require.NotNil(t, seq2.DataPagamento)
}

func TestReconciliarRederivaStatusQuandoValorSobe(t *testing.T) {
	existentes := []parcela.Parcela{
		parcelaExistente(7, 1, 300, 300, "2024-02-10"), // quitada a 300
	}

	ops := ReconciliarParcelas(existentes, normParcelado(
		ParcelaPlano{Numero: 1, DataVencimento: dia("2024-02-10"), Valor: 500},
	))

	require.Len(t, ops.Atualizar, 1)
	assert.Equal(t, parcela.StatusPendente, ops.Atualizar[0].Status)
	assert.Equal(t, 300.0, ops.Atualizar[0].ValorPago)
}

func TestReconciliarInsereNovaComoPendente(t *testing.T) {
	existentes := []parcela.Parcela{
		parcelaExistente(1, 1, 300, 0, "2024-02-10"),
	}

	ops := ReconciliarParcelas(existentes, normParcelado(
		ParcelaPlano{Numero: 1, DataVencimento: dia("2024-02-10"), Valor: 300},
		ParcelaPlano{Numero: 4, DataVencimento: dia("2024-05-10"), Valor: 400},
	))

	require.Len(t, ops.Inserir, 1)
	nova := ops.Inserir[0]
	assert.Equal(t, 4, nova.NumeroDaParcela)
	assert.Equal(t, 0.0, nova.ValorPago)
	assert.Equal(t, parcela.StatusPendente, nova.Status)
	assert.Nil(t, nova.DataPagamento)
}

func TestReconciliarRemoveApenasNaoPagas(t *testing.T) {
	existentes := []parcela.Parcela{
		parcelaExistente(1, 1, 300, 0, "2024-02-10"),
		parcelaExistente(2, 2, 300, 150, "2024-03-10"), // pagamento parcial
		parcelaExistente(3, 3, 400, 0, "2024-04-10"),
	}

	ops := ReconciliarParcelas(existentes, normParcelado(
		ParcelaPlano{Numero: 1, DataVencimento: dia("2024-02-10"), Valor: 300},
	))

	require.Len(t, ops.Remover, 1)
	assert.Equal(t, 3, ops.Remover[0].NumeroDaParcela,
		"parcela com pagamento parcial não pode ser removida")
}

func TestReconciliarTrocaParaAVistaDescartaTudo(t *testing.T) {
	existentes := []parcela.Parcela{
		parcelaExistente(1, 1, 300, 300, "2024-02-10"),
		parcelaExistente(2, 2, 300, 0, "2024-03-10"),
	}

	dataPagamento := dia("2024-06-01")
	norm := &FormNormalizado{
		NumeroProcesso:  "0001234-56.2024.8.26.0100",
		ValorTotal:      600,
		FormaPagamento:  FormaAVista,
		DataContratacao: dia("2024-01-05"),
		DataPagamento:   &dataPagamento,
	}

	ops := ReconciliarParcelas(existentes, norm)

	assert.Len(t, ops.Remover, 2, "troca de modalidade remove inclusive parcelas pagas")
	require.Len(t, ops.Inserir, 1)
	unica := ops.Inserir[0]
	assert.Equal(t, 1, unica.NumeroDaParcela)
	assert.Equal(t, 600.0, unica.ValorParcela)
	assert.Equal(t, 600.0, unica.ValorPago)
	assert.Equal(t, parcela.StatusPaga, unica.Status)
	require.NotNil(t, unica.DataPagamento)
	assert.Equal(t, dataPagamento, *unica.DataPagamento)
}

func TestReconciliarParceladoVazioLimpaTudo(t *testing.T) {
	existentes := []parcela.Parcela{
		parcelaExistente(1, 1, 300, 0, "2024-02-10"),
	}

	ops := ReconciliarParcelas(existentes, normParcelado())

	assert.Len(t, ops.Remover, 1)
	assert.Empty(t, ops.Inserir)
	assert.Empty(t, ops.Atualizar)
}
