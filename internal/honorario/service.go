package honorario

import (
	"errors"
	"strconv"
	"time"

	"github.com/AsielSouza/advsystem/internal/cliente"
	"github.com/AsielSouza/advsystem/internal/divisao"
	"github.com/AsielSouza/advsystem/internal/historico"
	"github.com/AsielSouza/advsystem/internal/parcela"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service é o motor de salvar/carregar honorários. Recebe o banco e o
// logger por injeção; nenhum acesso global.
type Service struct {
	DB         *gorm.DB
	Honorarios Repository
	Clientes   cliente.Repository
	Historicos historico.Repository
	Parcelas   *parcela.Repository
	Divisoes   divisao.Repository
	Logger     *zap.Logger
}

func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{
		DB:         db,
		Honorarios: NewRepository(),
		Clientes:   cliente.NewRepository(),
		Historicos: historico.NewRepository(),
		Parcelas:   parcela.NewRepository(db),
		Divisoes:   divisao.NewRepository(),
		Logger:     logger,
	}
}

// SaveReport descreve o resultado de um Salvar: o id do honorário e quais
// sub-etapas foram concluídas. Falhas de parcelas e divisões não abortam o
// salvamento (consistência fraca documentada); ficam registradas aqui e no
// log.
type SaveReport struct {
	HonorarioID string   `json:"id"`
	Criado      bool     `json:"criado"`
	HistoricoOK bool     `json:"historicoOk"`
	ParcelasOK  bool     `json:"parcelasOk"`
	DivisoesOK  bool     `json:"divisoesOk"`
	Falhas      []string `json:"falhas,omitempty"`
}

// Salvar valida o formulário e persiste o agregado completo do honorário.
// Com honorarioID vazio cria um registro novo; com id, reconcilia a edição
// contra as parcelas já gravadas preservando pagamentos.
//
// Falha de cabeçalho ou histórico aborta com erro; falhas nas parcelas e
// divisões são logadas e engolidas, com o ocorrido anotado no SaveReport.
func (s *Service) Salvar(form *FormDataHonorario, honorarioID string) (*SaveReport, error) {
	norm, err := ValidarFormulario(form)
	if err != nil {
		return nil, err
	}

	header := MontarHonorario(norm)
	criacao := honorarioID == ""

	if criacao {
		if err := s.Honorarios.Criar(s.DB, header); err != nil {
			s.Logger.Error("erro ao inserir honorário", zap.Error(err))
			return nil, errors.New("Erro ao salvar honorário.")
		}
	} else {
		existente, err := s.Honorarios.BuscarPorID(s.DB, honorarioID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, errors.New("Honorário não encontrado.")
			}
			s.Logger.Error("erro ao buscar honorário", zap.String("honorario_id", honorarioID), zap.Error(err))
			return nil, errors.New("Erro ao salvar honorário.")
		}
		header.ID = existente.ID
		header.Status = existente.Status
		header.CreatedAt = existente.CreatedAt
		if err := s.Honorarios.Atualizar(s.DB, header); err != nil {
			s.Logger.Error("erro ao atualizar honorário", zap.String("honorario_id", honorarioID), zap.Error(err))
			return nil, errors.New("Erro ao salvar honorário.")
		}
	}

	report := &SaveReport{
		HonorarioID: header.ID,
		Criado:      criacao,
		HistoricoOK: true,
		ParcelasOK:  true,
		DivisoesOK:  true,
	}

	if err := s.salvarHistorico(header.ID, norm); err != nil {
		s.Logger.Error("erro ao salvar histórico", zap.String("honorario_id", header.ID), zap.Error(err))
		return nil, errors.New("Erro ao salvar histórico do processo.")
	}

	s.salvarParcelas(header.ID, norm, criacao, report)
	s.salvarDivisoes(header.ID, norm, report)

	return report, nil
}

// salvarHistorico aplica a semântica de nota única: atualiza a nota mais
// recente se houver, senão insere. Texto vazio não mexe no que está gravado.
func (s *Service) salvarHistorico(honorarioID string, norm *FormNormalizado) error {
	if norm.HistoricoTexto == "" {
		return nil
	}

	atual, err := s.Historicos.BuscarMaisRecente(s.DB, honorarioID)
	switch {
	case err == nil:
		return s.Historicos.Atualizar(s.DB, atual.ID, norm.HistoricoTexto, norm.NumeroProcesso)
	case errors.Is(err, gorm.ErrRecordNotFound):
		return s.Historicos.Criar(s.DB, &historico.Historico{
			HonorarioID:    honorarioID,
			NumeroProcesso: norm.NumeroProcesso,
			Texto:          norm.HistoricoTexto,
		})
	default:
		return err
	}
}

func (s *Service) salvarParcelas(honorarioID string, norm *FormNormalizado, criacao bool, report *SaveReport) {
	if criacao {
		plano := MontarPlanoParcelas(norm)
		lote := make([]*parcela.Parcela, 0, len(plano))
		for i := range plano {
			plano[i].HonorarioID = honorarioID
			lote = append(lote, &plano[i])
		}
		if err := s.Parcelas.CriarEmLote(lote); err != nil {
			s.registrarFalhaParcela(report, honorarioID, "inserir plano de parcelas", err)
		}
		return
	}

	existentes, err := s.Parcelas.ListarPorHonorario(honorarioID)
	if err != nil {
		s.registrarFalhaParcela(report, honorarioID, "listar parcelas existentes", err)
		return
	}

	ops := ReconciliarParcelas(existentes, norm)

	for i := range ops.Remover {
		if err := s.Parcelas.DeletarPorID(ops.Remover[i].ID); err != nil {
			s.registrarFalhaParcela(report, honorarioID, "remover parcela", err)
		}
	}
	for i := range ops.Atualizar {
		if err := s.Parcelas.Atualizar(&ops.Atualizar[i]); err != nil {
			s.registrarFalhaParcela(report, honorarioID, "atualizar parcela", err)
		}
	}
	for i := range ops.Inserir {
		ops.Inserir[i].HonorarioID = honorarioID
		if err := s.Parcelas.Criar(&ops.Inserir[i]); err != nil {
			s.registrarFalhaParcela(report, honorarioID, "inserir parcela", err)
		}
	}
}

func (s *Service) registrarFalhaParcela(report *SaveReport, honorarioID, etapa string, err error) {
	report.ParcelasOK = false
	report.Falhas = append(report.Falhas, etapa)
	s.Logger.Warn("falha em sub-etapa de parcelas",
		zap.String("honorario_id", honorarioID),
		zap.String("etapa", etapa),
		zap.Error(err))
}

// salvarDivisoes substitui as duas listas por inteiro. Divisões não têm
// estado de pagamento, então a troca total é segura.
func (s *Service) salvarDivisoes(honorarioID string, norm *FormNormalizado, report *SaveReport) {
	socios, parceiros := MontarDivisoes(norm)

	if err := s.Divisoes.Substituir(s.DB, honorarioID, divisao.GrupoSocios, socios); err != nil {
		report.DivisoesOK = false
		report.Falhas = append(report.Falhas, "substituir divisão de sócios")
		s.Logger.Warn("falha ao substituir divisão de sócios",
			zap.String("honorario_id", honorarioID), zap.Error(err))
	}
	if err := s.Divisoes.Substituir(s.DB, honorarioID, divisao.GrupoParceiros, parceiros); err != nil {
		report.DivisoesOK = false
		report.Falhas = append(report.Falhas, "substituir divisão de parceiros")
		s.Logger.Warn("falha ao substituir divisão de parceiros",
			zap.String("honorario_id", honorarioID), zap.Error(err))
	}
}

// Carregar reidrata um honorário no formato do formulário. Cabeçalho
// ausente retorna nil (com log); falhas nas entidades aninhadas degradam
// para valores parciais em vez de derrubar a carga.
func (s *Service) Carregar(honorarioID string) *FormDataHonorario {
	h, err := s.Honorarios.BuscarPorID(s.DB, honorarioID)
	if err != nil {
		s.Logger.Warn("erro ao carregar honorário",
			zap.String("honorario_id", honorarioID), zap.Error(err))
		return nil
	}

	form := &FormDataHonorario{
		Cliente: s.carregarCliente(h),
		Processo: ProcessoForm{
			NumeroProcesso: h.NumeroProcesso,
			ValorCausa:     formatValorOpcional(h.ValorCausa),
		},
		Financeiro: FinanceiroForm{
			DataContratacao: formatData(h.DataContratacao),
			ValorHonorario:  formatValor(h.ValorTotal),
			PossuiEntrada:   h.PossuiEntrada,
			ValorEntrada:    formatValorOpcional(h.ValorEntrada),
		},
		Honorarios: HonorariosForm{
			DividirEntreSocios:    h.DividirEntreSocios,
			DividirEntreParceiros: h.DividirEntreParceiros,
			PercentualSocios:      h.PercentualSocios,
			PercentualParceiros:   h.PercentualParceiros,
		},
	}
	if h.DataEntrada != nil {
		form.Financeiro.DataEntrada = formatData(*h.DataEntrada)
	}
	if h.AdvogadoResponsavelID != nil {
		form.Honorarios.AdvogadoResponsavelID = *h.AdvogadoResponsavelID
	}

	if nota, err := s.Historicos.BuscarMaisRecente(s.DB, honorarioID); err == nil {
		form.Processo.Historico = nota.Texto
	}

	if h.FormaPagamento == FormaAVista {
		form.Financeiro.FormaPagamento = "a_vista"
	} else {
		form.Financeiro.FormaPagamento = FormaParcelado
	}

	parcelas, err := s.Parcelas.ListarPorHonorario(honorarioID)
	if err != nil {
		s.Logger.Warn("erro ao carregar parcelas",
			zap.String("honorario_id", honorarioID), zap.Error(err))
	}
	for i := range parcelas {
		p := &parcelas[i]
		form.Financeiro.Parcelas = append(form.Financeiro.Parcelas, ParcelaForm{
			Numero:        p.NumeroDaParcela,
			DataPagamento: formatData(p.DataVencimento),
			Valor:         p.ValorParcela,
		})
	}
	if h.FormaPagamento == FormaAVista && len(parcelas) > 0 && parcelas[0].DataPagamento != nil {
		form.Financeiro.DataPagamento = formatData(*parcelas[0].DataPagamento)
	}

	form.Honorarios.DivisaoSocios = s.carregarDivisao(honorarioID, divisao.GrupoSocios)
	form.Honorarios.DivisaoParceiros = s.carregarDivisao(honorarioID, divisao.GrupoParceiros)

	return form
}

func (s *Service) carregarCliente(h *Honorario) *ClienteForm {
	if h.ClientePessoaFisicaID != nil {
		pf, err := s.Clientes.BuscarPFPorID(s.DB, *h.ClientePessoaFisicaID)
		if err != nil {
			return nil
		}
		return &ClienteForm{ID: pf.ID, Tipo: "fisica", Nome: pf.NomeCompleto}
	}
	if h.ClientePessoaJuridicaID != nil {
		pj, err := s.Clientes.BuscarPJPorID(s.DB, *h.ClientePessoaJuridicaID)
		if err != nil {
			return nil
		}
		fantasia := pj.NomeFantasia
		return &ClienteForm{ID: pj.ID, Tipo: "juridica", Nome: pj.RazaoSocial, NomeFantasia: &fantasia}
	}
	return nil
}

func (s *Service) carregarDivisao(honorarioID, grupo string) []DivisaoForm {
	entradas, err := s.Divisoes.ListarPorHonorario(s.DB, honorarioID, grupo)
	if err != nil {
		s.Logger.Warn("erro ao carregar divisões",
			zap.String("honorario_id", honorarioID), zap.String("grupo", grupo), zap.Error(err))
		return nil
	}
	out := make([]DivisaoForm, 0, len(entradas))
	for _, d := range entradas {
		out = append(out, DivisaoForm{
			IDAdvogado: d.IDAdvogado,
			Nome:       d.NomeAdvogado,
			Percentual: d.PercentualValor,
		})
	}
	return out
}

func formatData(t time.Time) string {
	return t.Format("2006-01-02")
}

func formatValor(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatValorOpcional(v *float64) string {
	if v == nil {
		return ""
	}
	return formatValor(*v)
}
