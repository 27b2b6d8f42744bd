package honorario

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Formas de pagamento persistidas.
const (
	FormaAVista    = "avista"
	FormaParcelado = "parcelado"
)

// Status do ciclo de vida do honorário.
const (
	StatusPendente  = "pendente"
	StatusPago      = "pago"
	StatusCancelado = "cancelado"
)

// Honorario é o cabeçalho do registro de honorário: um cliente (pessoa
// física OU jurídica, nunca ambos), um processo e as condições de pagamento.
type Honorario struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	ClientePessoaFisicaID   *string `gorm:"type:uuid;index" json:"clientePessoaFisicaId"`
	ClientePessoaJuridicaID *string `gorm:"type:uuid;index" json:"clientePessoaJuridicaId"`

	NumeroProcesso  string    `gorm:"size:100;not null;index" json:"numeroProcesso"`
	ValorTotal      float64   `gorm:"not null" json:"valorTotal"`
	ValorCausa      *float64  `json:"valorCausa"`
	DataContratacao time.Time `gorm:"not null" json:"dataContratacao"`

	FormaPagamento string `gorm:"size:20;not null" json:"formaPagamento"` // "avista" | "parcelado"
	NumeroParcelas *int   `json:"numeroParcelas"`                         // apenas para "parcelado"

	// Entrada (pagamento inicial) opcional
	PossuiEntrada bool       `gorm:"not null;default:false" json:"possuiEntrada"`
	ValorEntrada  *float64   `json:"valorEntrada"`
	DataEntrada   *time.Time `json:"dataEntrada"`

	Descricao *string `json:"descricao"`
	Status    string  `gorm:"size:20;not null;default:'pendente';index" json:"status"`

	DividirEntreSocios    bool    `gorm:"not null;default:false" json:"dividirEntreSocios"`
	DividirEntreParceiros bool    `gorm:"not null;default:false" json:"dividirEntreParceiros"`
	PercentualSocios      float64 `gorm:"not null;default:100" json:"percentualSocios"`
	PercentualParceiros   float64 `gorm:"not null;default:0" json:"percentualParceiros"`

	AdvogadoResponsavelID *string `gorm:"type:uuid" json:"advogadoResponsavelId"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`
}

func (h *Honorario) BeforeCreate(tx *gorm.DB) error {
	if h.ID == "" {
		h.ID = uuid.New().String()
	}
	return nil
}

func (Honorario) TableName() string { return "honorarios" }

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Honorario{})
}
