package honorario

import (
	"github.com/AsielSouza/advsystem/internal/parcela"
)

// OperacoesParcelas é o resultado do diff entre o plano de parcelas
// submetido e as linhas já persistidas: o conjunto mínimo de operações que
// alinha o banco à submissão sem descartar pagamentos registrados.
type OperacoesParcelas struct {
	Inserir   []parcela.Parcela
	Atualizar []parcela.Parcela
	Remover   []parcela.Parcela
}

// ReconciliarParcelas compara as parcelas existentes de um honorário com o
// plano submetido, correlacionando pelo número da parcela.
//
// Regras:
//   - número presente nos dois lados: atualiza vencimento e valor, mas
//     carrega adiante valor pago e data de pagamento; o status é rederivado
//     ("paga" se o pago acumulado cobre o novo valor).
//   - número só na submissão: insere como pendente, sem pagamento.
//   - número só no banco: remove apenas se nada foi pago nela. Parcela com
//     qualquer pagamento registrado nunca é removida.
//   - submissão "avista" (ou plano parcelado vazio): remove todas as linhas
//     existentes; para "avista", insere a parcela única quitada. A troca de
//     modalidade descarta o histórico de pagamento das parcelas antigas.
func ReconciliarParcelas(existentes []parcela.Parcela, norm *FormNormalizado) OperacoesParcelas {
	var ops OperacoesParcelas

	if norm.FormaPagamento == FormaAVista {
		ops.Remover = append(ops.Remover, existentes...)
		ops.Inserir = append(ops.Inserir, montarParcelaAVista(norm))
		return ops
	}

	if len(norm.Parcelas) == 0 {
		// A validação rejeita parcelado sem parcelas; aqui é só defesa.
		ops.Remover = append(ops.Remover, existentes...)
		return ops
	}

	porNumero := make(map[int]parcela.Parcela, len(existentes))
	for _, e := range existentes {
		porNumero[e.NumeroDaParcela] = e
	}

	submetidos := make(map[int]bool, len(norm.Parcelas))
	for _, plano := range norm.Parcelas {
		submetidos[plano.Numero] = true

		existente, ok := porNumero[plano.Numero]
		if !ok {
			ops.Inserir = append(ops.Inserir, parcela.Parcela{
				NumeroProcesso:  norm.NumeroProcesso,
				NumeroDaParcela: plano.Numero,
				ValorParcela:    plano.Valor,
				ValorPago:       0,
				Status:          parcela.StatusPendente,
				DataVencimento:  plano.DataVencimento,
				DataPagamento:   nil,
				FormaPagamento:  parcela.FormaParceladoLabel,
			})
			continue
		}

		atualizada := existente
		atualizada.NumeroProcesso = norm.NumeroProcesso
		atualizada.DataVencimento = plano.DataVencimento
		atualizada.ValorParcela = plano.Valor
		atualizada.FormaPagamento = parcela.FormaParceladoLabel
		if atualizada.ValorPago >= plano.Valor {
			atualizada.Status = parcela.StatusPaga
		} else {
			atualizada.Status = parcela.StatusPendente
		}
		ops.Atualizar = append(ops.Atualizar, atualizada)
	}

	for _, e := range existentes {
		if submetidos[e.NumeroDaParcela] {
			continue
		}
		if e.ValorPago != 0 {
			// Pagamento registrado: a linha fica como está.
			continue
		}
		ops.Remover = append(ops.Remover, e)
	}

	return ops
}
