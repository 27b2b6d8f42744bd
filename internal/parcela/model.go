package parcela

import (
	"time"

	"gorm.io/gorm"
)

// Status derivado de uma parcela: "paga" quando o valor pago acumulado
// atinge o valor programado, "pendente" caso contrário.
const (
	StatusPendente = "pendente"
	StatusPaga     = "paga"
)

// Rótulos persistidos em forma_pagamento da parcela.
const (
	FormaAVistaLabel    = "À Vista"
	FormaParceladoLabel = "Parcelado"
)

// Parcela representa uma única parcela do pagamento de um honorário.
type Parcela struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	HonorarioID     string     `gorm:"type:uuid;not null;index" json:"honorarioId"`
	NumeroProcesso  string     `gorm:"size:100" json:"numeroProcesso"`
	NumeroDaParcela int        `gorm:"not null;index" json:"numeroDaParcela"`
	ValorParcela    float64    `gorm:"not null;default:0" json:"valorParcela"`
	ValorPago       float64    `gorm:"column:valor_pago_parcela;not null;default:0" json:"valorPagoParcela"`
	Status          string     `gorm:"size:50;not null;default:'pendente';index" json:"status"`
	DataVencimento  time.Time  `gorm:"not null" json:"dataVencimento"`
	DataPagamento   *time.Time `json:"dataPagamento"`
	FormaPagamento  string     `gorm:"size:50" json:"formaPagamento"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

func (Parcela) TableName() string { return "honorarios_parcelas" }

// Quitada informa se o valor pago acumulado cobre o valor programado.
func (p *Parcela) Quitada() bool {
	return p.ValorParcela > 0 && p.ValorPago >= p.ValorParcela
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Parcela{})
}
