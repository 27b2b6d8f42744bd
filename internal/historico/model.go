package historico

import (
	"time"

	"gorm.io/gorm"
)

// Historico é a nota de histórico do processo vinculada a um honorário.
// O armazenamento aceita várias linhas por honorário, mas o motor de
// salvamento mantém apenas a mais recente atualizada (semântica de nota única).
type Historico struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	HonorarioID    string    `gorm:"type:uuid;not null;index" json:"honorarioId"`
	NumeroProcesso string    `gorm:"size:100" json:"numeroProcesso"`
	Texto          string    `gorm:"column:historico;type:text;not null" json:"historico"`
	CreatedAt      time.Time `json:"createdAt"`
}

func (Historico) TableName() string { return "honorarios_historico" }

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Historico{})
}
