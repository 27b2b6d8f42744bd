package divisao

import (
	"time"

	"gorm.io/gorm"
)

// Grupos de divisão de receita de um honorário.
const (
	GrupoSocios    = "socios"    // sócios internos do escritório
	GrupoParceiros = "parceiros" // parceiros externos
)

// Divisao é uma entrada de divisão de receita: um advogado e seu
// percentual dentro de um dos dois grupos. Não carrega estado de
// pagamento, então a lista é substituída por inteiro a cada edição.
type Divisao struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	HonorarioID     string    `gorm:"type:uuid;not null;index" json:"honorarioId"`
	NumeroProcesso  string    `gorm:"size:100" json:"numeroProcesso"`
	Grupo           string    `gorm:"size:20;not null;index" json:"grupo"`
	IDAdvogado      string    `gorm:"type:uuid;not null" json:"idAdvogado"`
	NomeAdvogado    string    `json:"nomeAdvogado"`
	PercentualValor float64   `gorm:"not null;default:0" json:"percentualValor"`
	CreatedAt       time.Time `json:"createdAt"`
}

func (Divisao) TableName() string { return "honorarios_divisoes" }

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Divisao{})
}
