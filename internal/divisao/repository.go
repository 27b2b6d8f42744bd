package divisao

import "gorm.io/gorm"

type Repository interface {
	ListarPorHonorario(db *gorm.DB, honorarioID, grupo string) ([]Divisao, error)
	Substituir(db *gorm.DB, honorarioID, grupo string, entradas []Divisao) error
	DeletarPorHonorario(db *gorm.DB, honorarioID string) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) ListarPorHonorario(db *gorm.DB, honorarioID, grupo string) ([]Divisao, error) {
	var list []Divisao
	err := db.Where("honorario_id = ? AND grupo = ?", honorarioID, grupo).Find(&list).Error
	return list, err
}

// Substituir apaga todas as entradas do grupo e reinsere as informadas.
// Com entradas vazias, funciona como uma limpeza do grupo.
func (r *repositoryImpl) Substituir(db *gorm.DB, honorarioID, grupo string, entradas []Divisao) error {
	if err := db.Where("honorario_id = ? AND grupo = ?", honorarioID, grupo).
		Delete(&Divisao{}).Error; err != nil {
		return err
	}
	if len(entradas) == 0 {
		return nil
	}
	for i := range entradas {
		entradas[i].ID = 0
		entradas[i].HonorarioID = honorarioID
		entradas[i].Grupo = grupo
	}
	return db.Create(&entradas).Error
}

func (r *repositoryImpl) DeletarPorHonorario(db *gorm.DB, honorarioID string) error {
	return db.Where("honorario_id = ?", honorarioID).Delete(&Divisao{}).Error
}
