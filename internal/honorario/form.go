package honorario

// Formato do formulário de honorário, como chega do frontend e como o
// Carregar devolve. Datas são strings "2006-01-02"; valores monetários e
// percentuais chegam como string aceitando vírgula ou ponto decimal.

type ClienteForm struct {
	ID           string  `json:"id"`
	Tipo         string  `json:"tipo"` // "fisica" | "juridica"
	Nome         string  `json:"nome"`
	NomeFantasia *string `json:"nome_fantasia,omitempty"`
}

type ProcessoForm struct {
	NumeroProcesso string `json:"numero_processo"`
	ValorCausa     string `json:"valor_causa"`
	Historico      string `json:"historico"`
}

type ParcelaForm struct {
	Numero        int     `json:"numero"`
	DataPagamento string  `json:"dataPagamento"` // data de vencimento da parcela
	Valor         float64 `json:"valor"`
}

type FinanceiroForm struct {
	DataContratacao string        `json:"data_contratacao"`
	ValorHonorario  string        `json:"valor_honorario"`
	FormaPagamento  string        `json:"forma_pagamento"` // "a_vista" | "avista" | "parcelado"
	DataPagamento   string        `json:"data_pagamento"`
	PossuiEntrada   bool          `json:"possui_entrada"`
	ValorEntrada    string        `json:"valor_entrada"`
	DataEntrada     string        `json:"data_entrada"`
	Parcelas        []ParcelaForm `json:"parcelas"`
}

type DivisaoForm struct {
	IDAdvogado string  `json:"id_advogado"`
	Nome       string  `json:"nome"`
	Percentual float64 `json:"percentual"`
}

type HonorariosForm struct {
	DividirEntreSocios    bool          `json:"dividir_entre_socios"`
	AdvogadoResponsavelID string        `json:"advogado_responsavel_id"`
	DivisaoSocios         []DivisaoForm `json:"divisao_socios"`
	DividirEntreParceiros bool          `json:"dividir_entre_parceiros"`
	PercentualSocios      float64       `json:"percentual_socios"`
	PercentualParceiros   float64       `json:"percentual_parceiros"`
	DivisaoParceiros      []DivisaoForm `json:"divisao_parceiros"`
}

type FormDataHonorario struct {
	Cliente    *ClienteForm   `json:"cliente"`
	Processo   ProcessoForm   `json:"processo"`
	Financeiro FinanceiroForm `json:"financeiro"`
	Honorarios HonorariosForm `json:"honorarios"`
}
