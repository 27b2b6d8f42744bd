package honorario

import "gorm.io/gorm"

type Repository interface {
	Criar(db *gorm.DB, h *Honorario) error
	BuscarPorID(db *gorm.DB, id string) (*Honorario, error)
	ListarTodos(db *gorm.DB) ([]Honorario, error)
	Atualizar(db *gorm.DB, h *Honorario) error
	Deletar(db *gorm.DB, id string) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Criar(db *gorm.DB, h *Honorario) error {
	return db.Create(h).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id string) (*Honorario, error) {
	var h Honorario
	err := db.Where("id = ?", id).First(&h).Error
	if err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Honorario, error) {
	var list []Honorario
	err := db.Order("created_at DESC").Find(&list).Error
	return list, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, h *Honorario) error {
	return db.Save(h).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id string) error {
	return db.Delete(&Honorario{}, "id = ?", id).Error
}
