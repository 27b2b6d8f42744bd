package cliente

import "gorm.io/gorm"

type Repository interface {
	CriarPF(db *gorm.DB, c *PessoaFisica) error
	CriarPJ(db *gorm.DB, c *PessoaJuridica) error
	BuscarPFPorID(db *gorm.DB, id string) (*PessoaFisica, error)
	BuscarPJPorID(db *gorm.DB, id string) (*PessoaJuridica, error)
	ListarPF(db *gorm.DB) ([]PessoaFisica, error)
	ListarPJ(db *gorm.DB) ([]PessoaJuridica, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) CriarPF(db *gorm.DB, c *PessoaFisica) error {
	return db.Create(c).Error
}

func (r *repositoryImpl) CriarPJ(db *gorm.DB, c *PessoaJuridica) error {
	return db.Create(c).Error
}

func (r *repositoryImpl) BuscarPFPorID(db *gorm.DB, id string) (*PessoaFisica, error) {
	var c PessoaFisica
	err := db.Where("id = ?", id).First(&c).Error
	return &c, err
}

func (r *repositoryImpl) BuscarPJPorID(db *gorm.DB, id string) (*PessoaJuridica, error) {
	var c PessoaJuridica
	err := db.Where("id = ?", id).First(&c).Error
	return &c, err
}

func (r *repositoryImpl) ListarPF(db *gorm.DB) ([]PessoaFisica, error) {
	var list []PessoaFisica
	err := db.Order("nome_completo ASC").Find(&list).Error
	return list, err
}

func (r *repositoryImpl) ListarPJ(db *gorm.DB) ([]PessoaJuridica, error) {
	var list []PessoaJuridica
	err := db.Order("razao_social ASC").Find(&list).Error
	return list, err
}
