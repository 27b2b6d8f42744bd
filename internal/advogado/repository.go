package advogado

import "gorm.io/gorm"

type Repository interface {
	Criar(db *gorm.DB, a *Advogado) error
	ListarTodos(db *gorm.DB) ([]Advogado, error)
	BuscarPorID(db *gorm.DB, id string) (*Advogado, error)
	BuscarPorEmailOuOAB(db *gorm.DB, login string) (*Advogado, error)
	Atualizar(db *gorm.DB, a *Advogado) error
	Deletar(db *gorm.DB, id string) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Criar(db *gorm.DB, a *Advogado) error {
	return db.Create(a).Error
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Advogado, error) {
	var list []Advogado
	err := db.Order("nome ASC").Find(&list).Error
	return list, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id string) (*Advogado, error) {
	var a Advogado
	err := db.Where("id = ?", id).First(&a).Error
	return &a, err
}

func (r *repositoryImpl) BuscarPorEmailOuOAB(db *gorm.DB, login string) (*Advogado, error) {
	var a Advogado
	err := db.Where("email = ? OR oab = ?", login, login).First(&a).Error
	return &a, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, a *Advogado) error {
	return db.Save(a).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id string) error {
	return db.Delete(&Advogado{}, "id = ?", id).Error
}
