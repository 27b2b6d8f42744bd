package cliente

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PessoaFisica é o cliente pessoa física do escritório.
type PessoaFisica struct {
	ID           string `gorm:"type:uuid;primaryKey" json:"id"`
	NomeCompleto string `gorm:"not null" json:"nomeCompleto"`
	CPF          string `gorm:"size:14;uniqueIndex" json:"cpf"`
	Email        string `json:"email"`
	Telefone     string `json:"telefone"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`
}

func (c *PessoaFisica) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}

func (PessoaFisica) TableName() string { return "clientes_pessoa_fisica" }

// PessoaJuridica é o cliente pessoa jurídica do escritório.
type PessoaJuridica struct {
	ID           string `gorm:"type:uuid;primaryKey" json:"id"`
	RazaoSocial  string `gorm:"not null" json:"razaoSocial"`
	NomeFantasia string `json:"nomeFantasia"`
	CNPJ         string `gorm:"size:18;uniqueIndex" json:"cnpj"`
	Email        string `json:"email"`
	Telefone     string `json:"telefone"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`
}

func (c *PessoaJuridica) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}

func (PessoaJuridica) TableName() string { return "clientes_pessoa_juridica" }

// Migrate cria as tabelas de clientes.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&PessoaFisica{}, &PessoaJuridica{})
}
