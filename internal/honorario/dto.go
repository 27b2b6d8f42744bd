package honorario

// ResumoHonorarioDTO é a linha da listagem de honorários, com o status
// derivado das parcelas.
type ResumoHonorarioDTO struct {
	ID               string  `json:"id"`
	NumeroProcesso   string  `json:"numeroProcesso"`
	Cliente          string  `json:"cliente"`
	ValorTotal       float64 `json:"valorTotal"`
	FormaPagamento   string  `json:"formaPagamento"`
	Status           string  `json:"status"`
	StatusLabel      string  `json:"statusLabel"`
	ParcelasAtraso   int     `json:"parcelasAtraso"`
	TotalParcelas    int     `json:"totalParcelas"`
	ParcelasQuitadas int     `json:"parcelasQuitadas"`
}
