package honorario

import (
	"github.com/AsielSouza/advsystem/internal/divisao"
	"github.com/AsielSouza/advsystem/internal/parcela"
)

// MontarHonorario monta o cabeçalho persistido a partir do formulário
// normalizado. Transformação pura, sem I/O.
func MontarHonorario(norm *FormNormalizado) *Honorario {
	return &Honorario{
		ClientePessoaFisicaID:   norm.ClientePFID,
		ClientePessoaJuridicaID: norm.ClientePJID,
		NumeroProcesso:          norm.NumeroProcesso,
		ValorTotal:              norm.ValorTotal,
		ValorCausa:              norm.ValorCausa,
		DataContratacao:         norm.DataContratacao,
		FormaPagamento:          norm.FormaPagamento,
		NumeroParcelas:          norm.NumeroParcelas,
		PossuiEntrada:           norm.PossuiEntrada,
		ValorEntrada:            norm.ValorEntrada,
		DataEntrada:             norm.DataEntrada,
		Status:                  StatusPendente,
		DividirEntreSocios:      norm.DividirEntreSocios,
		DividirEntreParceiros:   norm.DividirEntreParceiros,
		PercentualSocios:        norm.PercentualSocios,
		PercentualParceiros:     norm.PercentualParceiros,
		AdvogadoResponsavelID:   norm.AdvogadoResponsavelID,
	}
}

// MontarPlanoParcelas monta as linhas de parcela iniciais de um honorário
// recém-criado. Para "avista", uma única parcela já quitada na data de
// pagamento (ou da contratação, na ausência dela); para "parcelado", uma
// linha pendente por parcela do plano.
func MontarPlanoParcelas(norm *FormNormalizado) []parcela.Parcela {
	if norm.FormaPagamento == FormaAVista {
		return []parcela.Parcela{montarParcelaAVista(norm)}
	}

	linhas := make([]parcela.Parcela, 0, len(norm.Parcelas))
	for _, p := range norm.Parcelas {
		linhas = append(linhas, parcela.Parcela{
			NumeroProcesso:  norm.NumeroProcesso,
			NumeroDaParcela: p.Numero,
			ValorParcela:    p.Valor,
			ValorPago:       0,
			Status:          parcela.StatusPendente,
			DataVencimento:  p.DataVencimento,
			DataPagamento:   nil,
			FormaPagamento:  parcela.FormaParceladoLabel,
		})
	}
	return linhas
}

func montarParcelaAVista(norm *FormNormalizado) parcela.Parcela {
	dataPagamento := norm.DataContratacao
	if norm.DataPagamento != nil {
		dataPagamento = *norm.DataPagamento
	}
	return parcela.Parcela{
		NumeroProcesso:  norm.NumeroProcesso,
		NumeroDaParcela: 1,
		ValorParcela:    norm.ValorTotal,
		ValorPago:       norm.ValorTotal,
		Status:          parcela.StatusPaga,
		DataVencimento:  dataPagamento,
		DataPagamento:   &dataPagamento,
		FormaPagamento:  parcela.FormaAVistaLabel,
	}
}

// MontarDivisoes converte as listas de divisão do formulário nas entradas
// persistidas dos dois grupos. Flag desligada produz lista vazia, o que na
// substituição limpa o grupo.
func MontarDivisoes(norm *FormNormalizado) (socios, parceiros []divisao.Divisao) {
	if norm.DividirEntreSocios {
		socios = montarGrupo(norm, norm.DivisaoSocios)
	}
	if norm.DividirEntreParceiros {
		parceiros = montarGrupo(norm, norm.DivisaoParceiros)
	}
	return socios, parceiros
}

func montarGrupo(norm *FormNormalizado, entradas []DivisaoForm) []divisao.Divisao {
	out := make([]divisao.Divisao, 0, len(entradas))
	for _, d := range entradas {
		out = append(out, divisao.Divisao{
			NumeroProcesso:  norm.NumeroProcesso,
			IDAdvogado:      d.IDAdvogado,
			NomeAdvogado:    d.Nome,
			PercentualValor: d.Percentual,
		})
	}
	return out
}
