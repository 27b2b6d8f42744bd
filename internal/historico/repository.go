package historico

import "gorm.io/gorm"

type Repository interface {
	Criar(db *gorm.DB, h *Historico) error
	BuscarMaisRecente(db *gorm.DB, honorarioID string) (*Historico, error)
	Atualizar(db *gorm.DB, id uint, texto, numeroProcesso string) error
	DeletarPorHonorario(db *gorm.DB, honorarioID string) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Criar(db *gorm.DB, h *Historico) error {
	return db.Create(h).Error
}

func (r *repositoryImpl) BuscarMaisRecente(db *gorm.DB, honorarioID string) (*Historico, error) {
	var h Historico
	err := db.Where("honorario_id = ?", honorarioID).
		Order("created_at DESC").
		First(&h).Error
	if err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, id uint, texto, numeroProcesso string) error {
	return db.Model(&Historico{}).Where("id = ?", id).Updates(map[string]interface{}{
		"historico":       texto,
		"numero_processo": numeroProcesso,
	}).Error
}

func (r *repositoryImpl) DeletarPorHonorario(db *gorm.DB, honorarioID string) error {
	return db.Where("honorario_id = ?", honorarioID).Delete(&Historico{}).Error
}
