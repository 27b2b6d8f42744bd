package honorario

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ErroValidacao é um problema corrigível pelo usuário; nada foi enviado
// ao banco quando ele é retornado.
type ErroValidacao struct {
	Mensagem string
}

func (e *ErroValidacao) Error() string { return e.Mensagem }

func erroValidacao(msg string) error { return &ErroValidacao{Mensagem: msg} }

// Tolerância para a soma dos percentuais de parceiros.
var toleranciaPercentual = decimal.NewFromFloat(0.01)
var cem = decimal.NewFromInt(100)

// ParcelaPlano é uma linha do plano de parcelas já normalizada.
type ParcelaPlano struct {
	Numero         int
	DataVencimento time.Time
	Valor          float64
}

// FormNormalizado é o formulário validado e convertido para os tipos
// persistidos. É a única entrada do mapper e do reconciliador.
type FormNormalizado struct {
	ClientePFID *string
	ClientePJID *string

	NumeroProcesso string
	HistoricoTexto string
	ValorCausa     *float64

	ValorTotal      float64
	DataContratacao time.Time
	FormaPagamento  string // "avista" | "parcelado"
	DataPagamento   *time.Time
	NumeroParcelas  *int
	Parcelas        []ParcelaPlano

	PossuiEntrada bool
	ValorEntrada  *float64
	DataEntrada   *time.Time

	DividirEntreSocios    bool
	AdvogadoResponsavelID *string
	DivisaoSocios         []DivisaoForm
	DividirEntreParceiros bool
	PercentualSocios      float64
	PercentualParceiros   float64
	DivisaoParceiros      []DivisaoForm
}

// parseDecimal aceita vírgula ou ponto como separador decimal.
func parseDecimal(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, false
	}
	s = strings.ReplaceAll(s, ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

func parseData(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ValidarFormulario valida e normaliza o payload do formulário.
// Não tem efeitos colaterais: ou retorna o formulário normalizado,
// ou um *ErroValidacao com mensagem para o usuário.
func ValidarFormulario(form *FormDataHonorario) (*FormNormalizado, error) {
	if form == nil || form.Cliente == nil || strings.TrimSpace(form.Cliente.ID) == "" {
		return nil, erroValidacao("Cliente é obrigatório.")
	}

	norm := &FormNormalizado{}

	clienteID := strings.TrimSpace(form.Cliente.ID)
	switch strings.TrimSpace(form.Cliente.Tipo) {
	case "fisica":
		norm.ClientePFID = &clienteID
	case "juridica":
		norm.ClientePJID = &clienteID
	default:
		return nil, erroValidacao("Tipo de cliente inválido.")
	}

	norm.NumeroProcesso = strings.TrimSpace(form.Processo.NumeroProcesso)
	if norm.NumeroProcesso == "" {
		return nil, erroValidacao("Número do processo é obrigatório.")
	}
	norm.HistoricoTexto = strings.TrimSpace(form.Processo.Historico)

	valorTotal, ok := parseDecimal(form.Financeiro.ValorHonorario)
	if !ok || !valorTotal.IsPositive() {
		return nil, erroValidacao("Valor do honorário é obrigatório e deve ser maior que zero.")
	}
	norm.ValorTotal = valorTotal.InexactFloat64()

	// Valor da causa é opcional; valor ilegível vira nulo, como no restante
	// do sistema.
	if vc, ok := parseDecimal(form.Processo.ValorCausa); ok {
		f := vc.InexactFloat64()
		norm.ValorCausa = &f
	}

	dataContratacao, ok := parseData(form.Financeiro.DataContratacao)
	if !ok {
		return nil, erroValidacao("Data da contratação é obrigatória.")
	}
	norm.DataContratacao = dataContratacao

	switch strings.TrimSpace(form.Financeiro.FormaPagamento) {
	case "a_vista", "avista":
		norm.FormaPagamento = FormaAVista
	case "parcelado":
		norm.FormaPagamento = FormaParcelado
	default:
		return nil, erroValidacao("Forma de pagamento inválida.")
	}

	if dp, ok := parseData(form.Financeiro.DataPagamento); ok {
		norm.DataPagamento = &dp
	}

	if norm.FormaPagamento == FormaParcelado {
		if len(form.Financeiro.Parcelas) == 0 {
			return nil, erroValidacao("Informe as parcelas do pagamento.")
		}
		vistos := make(map[int]bool, len(form.Financeiro.Parcelas))
		for _, p := range form.Financeiro.Parcelas {
			if vistos[p.Numero] {
				return nil, erroValidacao("Números de parcela duplicados.")
			}
			vistos[p.Numero] = true
			if p.Valor <= 0 {
				return nil, erroValidacao(fmt.Sprintf("Valor da parcela %d deve ser maior que zero.", p.Numero))
			}
			venc, ok := parseData(p.DataPagamento)
			if !ok {
				return nil, erroValidacao(fmt.Sprintf("Data de vencimento da parcela %d inválida.", p.Numero))
			}
			norm.Parcelas = append(norm.Parcelas, ParcelaPlano{
				Numero:         p.Numero,
				DataVencimento: venc,
				Valor:          p.Valor,
			})
		}
		n := len(norm.Parcelas)
		norm.NumeroParcelas = &n
	}

	if form.Financeiro.PossuiEntrada {
		ve, ok := parseDecimal(form.Financeiro.ValorEntrada)
		if !ok || !ve.IsPositive() {
			return nil, erroValidacao("Valor da entrada deve ser maior que zero.")
		}
		f := ve.InexactFloat64()
		norm.PossuiEntrada = true
		norm.ValorEntrada = &f
		if de, ok := parseData(form.Financeiro.DataEntrada); ok {
			norm.DataEntrada = &de
		}
	}

	norm.DividirEntreSocios = form.Honorarios.DividirEntreSocios
	norm.DivisaoSocios = normalizarDivisoes(form.Honorarios.DivisaoSocios)
	norm.DividirEntreParceiros = form.Honorarios.DividirEntreParceiros
	norm.DivisaoParceiros = normalizarDivisoes(form.Honorarios.DivisaoParceiros)

	if resp := strings.TrimSpace(form.Honorarios.AdvogadoResponsavelID); resp != "" {
		norm.AdvogadoResponsavelID = &resp
	}

	// Percentuais dos grupos: padrão 100/0 quando não informados.
	norm.PercentualSocios = form.Honorarios.PercentualSocios
	norm.PercentualParceiros = form.Honorarios.PercentualParceiros
	if norm.PercentualSocios == 0 && norm.PercentualParceiros == 0 {
		norm.PercentualSocios = 100
	}

	if norm.DividirEntreParceiros {
		if len(norm.DivisaoParceiros) == 0 {
			return nil, erroValidacao("Informe a divisão entre parceiros.")
		}
		soma := decimal.Zero
		for _, d := range norm.DivisaoParceiros {
			soma = soma.Add(decimal.NewFromFloat(d.Percentual))
		}
		if soma.Sub(cem).Abs().GreaterThan(toleranciaPercentual) {
			return nil, erroValidacao("Os percentuais dos parceiros devem somar 100%.")
		}
	}

	return norm, nil
}

func normalizarDivisoes(entradas []DivisaoForm) []DivisaoForm {
	out := make([]DivisaoForm, 0, len(entradas))
	for _, d := range entradas {
		d.IDAdvogado = strings.TrimSpace(d.IDAdvogado)
		d.Nome = strings.TrimSpace(d.Nome)
		if d.IDAdvogado == "" {
			continue
		}
		out = append(out, d)
	}
	return out
}
