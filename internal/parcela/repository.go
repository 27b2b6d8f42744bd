package parcela

import (
	"time"

	"gorm.io/gorm"
)

// Repository encapsula o acesso a dados de parcelas de honorário.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// WithDB retorna uma cópia do repo usando um *gorm.DB específico (ex.: tx).
func (r *Repository) WithDB(db *gorm.DB) *Repository {
	if db == nil {
		db = r.DB
	}
	return &Repository{DB: db}
}

/* ========================= CRUD básico de parcelas ========================= */

// Criar insere uma parcela.
func (r *Repository) Criar(p *Parcela) error {
	return r.DB.Create(p).Error
}

// CriarEmLote insere múltiplas parcelas de uma vez (ignora se vazio).
func (r *Repository) CriarEmLote(parcelas []*Parcela) error {
	if len(parcelas) == 0 {
		return nil
	}
	return r.DB.Create(parcelas).Error
}

// BuscarPorID busca uma única parcela pelo seu ID.
func (r *Repository) BuscarPorID(id uint) (*Parcela, error) {
	var p Parcela
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// ListarPorHonorario busca todas as parcelas de um honorário,
// ordenadas pelo número da parcela.
func (r *Repository) ListarPorHonorario(honorarioID string) ([]Parcela, error) {
	var parcelas []Parcela
	err := r.DB.
		Where("honorario_id = ?", honorarioID).
		Order("numero_da_parcela ASC").
		Find(&parcelas).Error
	return parcelas, err
}

// Atualizar atualiza todos os campos de uma parcela existente (Save exige PK).
func (r *Repository) Atualizar(p *Parcela) error {
	return r.DB.Save(p).Error
}

// DeletarPorID apaga a parcela; retorna gorm.ErrRecordNotFound se nada foi deletado.
func (r *Repository) DeletarPorID(id uint) error {
	res := r.DB.Delete(&Parcela{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeletarPorHonorario apaga todas as parcelas de um honorário.
func (r *Repository) DeletarPorHonorario(honorarioID string) error {
	return r.DB.Where("honorario_id = ?", honorarioID).Delete(&Parcela{}).Error
}

/* ============================= Pagamento ============================= */

// RegistrarPagamento acumula um valor pago na parcela e deriva o status.
// Quando o acumulado atinge o valor programado, marca "paga" e grava a
// data de pagamento informada.
func (r *Repository) RegistrarPagamento(id uint, valor float64, data time.Time) (*Parcela, error) {
	p, err := r.BuscarPorID(id)
	if err != nil {
		return nil, err
	}

	p.ValorPago += valor
	if p.Quitada() {
		p.Status = StatusPaga
		if p.DataPagamento == nil {
			p.DataPagamento = &data
		}
	}

	if err := r.DB.Save(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

// SomaValorPorHonorario soma os valores programados das parcelas de um honorário.
func (r *Repository) SomaValorPorHonorario(db *gorm.DB, honorarioID string) (float64, error) {
	if db == nil {
		db = r.DB
	}
	var total float64
	err := db.Model(&Parcela{}).
		Where("honorario_id = ?", honorarioID).
		Select("COALESCE(SUM(valor_parcela), 0)").
		Scan(&total).Error
	return total, err
}
