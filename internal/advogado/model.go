package advogado

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Advogado representa um advogado do escritório (sócio ou parceiro externo).
type Advogado struct {
	ID        string `gorm:"type:uuid;primaryKey" json:"id"`
	Nome      string `gorm:"not null" json:"nome"`
	Sobrenome string `json:"sobrenome"`
	OAB       string `gorm:"size:20;uniqueIndex" json:"oab"`
	Email     string `gorm:"uniqueIndex" json:"email"`
	Telefone  string `json:"telefone"`
	Parceiro  bool   `gorm:"not null;default:false" json:"parceiro"` // externo ao quadro de sócios

	Senha                 string `gorm:"not null" json:"-"`
	PrecisaRedefinirSenha bool   `json:"-"`
	IsAdmin               bool   `json:"isAdmin"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`
}

func (a *Advogado) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return nil
}

func (Advogado) TableName() string { return "advogados" }

// Migrate cria a tabela de advogados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Advogado{})
}
