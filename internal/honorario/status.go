package honorario

import (
	"fmt"
	"time"

	"github.com/AsielSouza/advsystem/internal/parcela"
)

// Derivação de status a partir das parcelas: em atraso > tudo pago >
// pendente > status gravado no cabeçalho.

// ContarParcelasAtraso conta as parcelas pendentes, vencidas antes de hoje
// e com saldo a pagar.
func ContarParcelasAtraso(parcelas []parcela.Parcela, hoje time.Time) int {
	dia := hoje.Truncate(24 * time.Hour)
	count := 0
	for i := range parcelas {
		p := &parcelas[i]
		saldo := p.ValorParcela - p.ValorPago
		if p.Status == parcela.StatusPendente && p.DataVencimento.Before(dia) && saldo > 0 {
			count++
		}
	}
	return count
}

// TodasParcelasPagas informa se todas as parcelas estão quitadas.
// Lista vazia conta como não paga.
func TodasParcelasPagas(parcelas []parcela.Parcela) bool {
	if len(parcelas) == 0 {
		return false
	}
	for i := range parcelas {
		if !parcelas[i].Quitada() {
			return false
		}
	}
	return true
}

// TemParcelasPendentes informa se há alguma parcela ainda não quitada.
func TemParcelasPendentes(parcelas []parcela.Parcela) bool {
	for i := range parcelas {
		p := &parcelas[i]
		if p.ValorParcela > 0 && p.ValorPago < p.ValorParcela {
			return true
		}
	}
	return false
}

// FormatarStatus gera o rótulo exibido para o honorário.
func FormatarStatus(h *Honorario, parcelas []parcela.Parcela, hoje time.Time) string {
	if atraso := ContarParcelasAtraso(parcelas, hoje); atraso > 0 {
		if atraso == 1 {
			return "1 Parcela em atraso"
		}
		return fmt.Sprintf("%d Parcelas em atraso", atraso)
	}
	if TodasParcelasPagas(parcelas) {
		return "Pago"
	}
	if TemParcelasPendentes(parcelas) {
		return "Pendente"
	}

	switch h.Status {
	case StatusPago:
		return "Pago"
	case StatusCancelado:
		return "Cancelado"
	case StatusPendente:
		return "Pendente"
	default:
		return h.Status
	}
}
