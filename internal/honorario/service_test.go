package honorario

import (
	"testing"

	"github.com/AsielSouza/advsystem/internal/cliente"
	"github.com/AsielSouza/advsystem/internal/divisao"
	"github.com/AsielSouza/advsystem/internal/historico"
	"github.com/AsielSouza/advsystem/internal/parcela"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func novoServico(t *testing.T) *Service {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&Honorario{},
		&historico.Historico{},
		&parcela.Parcela{},
		&divisao.Divisao{},
		&cliente.PessoaFisica{},
		&cliente.PessoaJuridica{},
	))
	return NewService(db, zap.NewNop())
}

func seedClientePF(t *testing.T, s *Service) *cliente.PessoaFisica {
	t.Helper()
	pf := &cliente.PessoaFisica{NomeCompleto: "Maria Silva", CPF: "111.222.333-44"}
	require.NoError(t, s.Clientes.CriarPF(s.DB, pf))
	return pf
}

func formAVista(clienteID string) *FormDataHonorario {
	return &FormDataHonorario{
		Cliente: &ClienteForm{ID: clienteID, Tipo: "fisica", Nome: "Maria Silva"},
		Processo: ProcessoForm{
			NumeroProcesso: "0001234-56.2024.8.26.0100",
			Historico:      "Ação de cobrança em fase inicial.",
		},
		Financeiro: FinanceiroForm{
			DataContratacao: "2024-01-05",
			ValorHonorario:  "1000",
			FormaPagamento:  "a_vista",
			DataPagamento:   "2024-01-10",
		},
	}
}

func formParcelado(clienteID string) *FormDataHonorario {
	form := formAVista(clienteID)
	form.Financeiro.FormaPagamento = "parcelado"
	form.Financeiro.DataPagamento = ""
	form.Financeiro.Parcelas = []ParcelaForm{
		{Numero: 1, DataPagamento: "2024-02-10", Valor: 300},
		{Numero: 2, DataPagamento: "2024-03-10", Valor: 300},
		{Numero: 3, DataPagamento: "2024-04-10", Valor: 400},
	}
	return form
}

func TestSalvarCriacaoAVista(t *testing.T) {
	s := novoServico(t)
	pf := seedClientePF(t, s)

	report, err := s.Salvar(formAVista(pf.ID), "")
	require.NoError(t, err)
	require.NotEmpty(t, report.HonorarioID)
	assert.True(t, report.Criado)
	assert.True(t, report.ParcelasOK)

	parcelas, err := s.Parcelas.ListarPorHonorario(report.HonorarioID)
	require.NoError(t, err)
	require.Len(t, parcelas, 1)

	p := parcelas[0]
	assert.Equal(t, 1, p.NumeroDaParcela)
	assert.Equal(t, 1000.0, p.ValorParcela)
	assert.Equal(t, 1000.0, p.ValorPago)
	assert.Equal(t, parcela.StatusPaga, p.Status)
	require.NotNil(t, p.DataPagamento)
	assert.Equal(t, "2024-01-10", p.DataPagamento.Format("2006-01-02"))
}

func TestSalvarCriacaoParcelado(t *testing.T) {
	s := novoServico(t)
	pf := seedClientePF(t, s)

	report, err := s.Salvar(formParcelado(pf.ID), "")
	require.NoError(t, err)

	parcelas, err := s.Parcelas.ListarPorHonorario(report.HonorarioID)
	require.NoError(t, err)
	require.Len(t, parcelas, 3)

	for i, p := range parcelas {
		assert.Equal(t, i+1, p.NumeroDaParcela)
		assert.Equal(t, 0.0, p.ValorPago)
		assert.Equal(t, parcela.StatusPendente, p.Status)
		assert.Nil(t, p.DataPagamento)
	}
	assert.Equal(t, 300.0, parcelas[0].ValorParcela)
	assert.Equal(t, 300.0, parcelas[1].ValorParcela)
	assert.Equal(t, 400.0, parcelas[2].ValorParcela)

	h, err := s.Honorarios.BuscarPorID(s.DB, report.HonorarioID)
	require.NoError(t, err)
	require.NotNil(t, h.NumeroParcelas)
	assert.Equal(t, 3, *h.NumeroParcelas)
}

func TestSalvarEdicaoReconciliaSemPerderPagamento(t *testing.T) {
	s := novoServico(t)
	pf := seedClientePF(t, s)

	report, err := s.Salvar(formParcelado(pf.ID), "")
	require.NoError(t, err)
	id := report.HonorarioID

	// Paga integralmente a parcela 2.
	existentes, err := s.Parcelas.ListarPorHonorario(id)
	require.NoError(t, err)
	_, err = s.Parcelas.RegistrarPagamento(existentes[1].ID, 300, dia("2024-03-01"))
	require.NoError(t, err)

	// Edição: parcela 2 só muda o vencimento, parcela 3 sai, entra a 4.
	form := formParcelado(pf.ID)
	form.Financeiro.Parcelas = []ParcelaForm{
		{Numero: 1, DataPagamento: "2024-02-10", Valor: 300},
		{Numero: 2, DataPagamento: "2024-05-10", Valor: 300},
		{Numero: 4, DataPagamento: "2024-06-10", Valor: 400},
	}

	report2, err := s.Salvar(form, id)
	require.NoError(t, err)
	assert.False(t, report2.Criado)
	assert.True(t, report2.ParcelasOK)

	parcelas, err := s.Parcelas.ListarPorHonorario(id)
	require.NoError(t, err)
	require.Len(t, parcelas, 3)

	numeros := []int{parcelas[0].NumeroDaParcela, parcelas[1].NumeroDaParcela, parcelas[2].NumeroDaParcela}
	assert.Equal(t, []int{1, 2, 4}, numeros)

	seq2 := parcelas[1]
	assert.Equal(t, "2024-05-10", seq2.DataVencimento.Format("2006-01-02"))
	assert.Equal(t, 300.0, seq2.ValorPago)
	assert.Equal(t, parcela.StatusPaga, seq2.Status)
	require.NotNil(t, seq2.DataPagamento)

	seq4 := parcelas[2]
	assert.Equal(t, 0.0, seq4.ValorPago)
	assert.Equal(t, parcela.StatusPendente, seq4.Status)
}

func TestSalvarEdicaoNaoRemoveParcelaComPagamento(t *testing.T) {
	s := novoServico(t)
	pf := seedClientePF(t, s)

	report, err := s.Salvar(formParcelado(pf.ID), "")
	require.NoError(t, err)
	id := report.HonorarioID

	existentes, err := s.Parcelas.ListarPorHonorario(id)
	require.NoError(t, err)
	_, err = s.Parcelas.RegistrarPagamento(existentes[2].ID, 150, dia("2024-04-01"))
	require.NoError(t, err)

	// A submissão tenta remover a parcela 3, que tem pagamento parcial.
	form := formParcelado(pf.ID)
	form.Financeiro.Parcelas = []ParcelaForm{
		{Numero: 1, DataPagamento: "2024-02-10", Valor: 300},
		{Numero: 2, DataPagamento: "2024-03-10", Valor: 300},
	}

	_, err = s.Salvar(form, id)
	require.NoError(t, err)

	parcelas, err := s.Parcelas.ListarPorHonorario(id)
	require.NoError(t, err)
	require.Len(t, parcelas, 3, "parcela com pagamento registrado permanece")
	assert.Equal(t, 3, parcelas[2].NumeroDaParcela)
	assert.Equal(t, 150.0, parcelas[2].ValorPago)
}

func TestSalvarTrocaModalidadeDescartaParcelas(t *testing.T) {
	s := novoServico(t)
	pf := seedClientePF(t, s)

	report, err := s.Salvar(formParcelado(pf.ID), "")
	require.NoError(t, err)
	id := report.HonorarioID

	existentes, err := s.Parcelas.ListarPorHonorario(id)
	require.NoError(t, err)
	_, err = s.Parcelas.RegistrarPagamento(existentes[0].ID, 300, dia("2024-02-01"))
	require.NoError(t, err)

	report2, err := s.Salvar(formAVista(pf.ID), id)
	require.NoError(t, err)
	assert.True(t, report2.ParcelasOK)

	parcelas, err := s.Parcelas.ListarPorHonorario(id)
	require.NoError(t, err)
	require.Len(t, parcelas, 1, "troca para à vista descarta o plano anterior inteiro")
	assert.Equal(t, 1000.0, parcelas[0].ValorParcela)
	assert.Equal(t, parcela.StatusPaga, parcelas[0].Status)
}

func TestSalvarIdempotente(t *testing.T) {
	s := novoServico(t)
	pf := seedClientePF(t, s)

	report, err := s.Salvar(formParcelado(pf.ID), "")
	require.NoError(t, err)
	id := report.HonorarioID

	antes, err := s.Parcelas.ListarPorHonorario(id)
	require.NoError(t, err)

	_, err = s.Salvar(formParcelado(pf.ID), id)
	require.NoError(t, err)

	depois, err := s.Parcelas.ListarPorHonorario(id)
	require.NoError(t, err)
	require.Len(t, depois, len(antes))
	for i := range antes {
		assert.Equal(t, antes[i].ID, depois[i].ID, "nenhuma linha nova é criada")
		assert.Equal(t, antes[i].ValorPago, depois[i].ValorPago)
	}
}

func TestSalvarEdicaoHonorarioInexistente(t *testing.T) {
	s := novoServico(t)
	pf := seedClientePF(t, s)

	_, err := s.Salvar(formParcelado(pf.ID), "00000000-0000-0000-0000-000000000000")
	require.EqualError(t, err, "Honorário não encontrado.")
}

func TestSalvarValidacaoNaoTocaOBanco(t *testing.T) {
	s := novoServico(t)

	form := formAVista("")
	form.Cliente = nil
	_, err := s.Salvar(form, "")
	require.Error(t, err)
	var ev *ErroValidacao
	require.ErrorAs(t, err, &ev)

	var count int64
	require.NoError(t, s.DB.Model(&Honorario{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestHistoricoMantemNotaUnica(t *testing.T) {
	s := novoServico(t)
	pf := seedClientePF(t, s)

	report, err := s.Salvar(formParcelado(pf.ID), "")
	require.NoError(t, err)
	id := report.HonorarioID

	form := formParcelado(pf.ID)
	form.Processo.Historico = "Sentença publicada, aguardando trânsito em julgado."
	_, err = s.Salvar(form, id)
	require.NoError(t, err)

	var notas []historico.Historico
	require.NoError(t, s.DB.Where("honorario_id = ?", id).Find(&notas).Error)
	require.Len(t, notas, 1, "a nota mais recente é sobrescrita, não duplicada")
	assert.Equal(t, "Sentença publicada, aguardando trânsito em julgado.", notas[0].Texto)
}

func TestSalvarSubstituiDivisoes(t *testing.T) {
	s := novoServico(t)
	pf := seedClientePF(t, s)

	form := formParcelado(pf.ID)
	form.Honorarios.DividirEntreParceiros = true
	form.Honorarios.DivisaoParceiros = []DivisaoForm{
		{IDAdvogado: "adv-1", Nome: "Dr. Souza", Percentual: 60},
		{IDAdvogado: "adv-2", Nome: "Dra. Lima", Percentual: 40},
	}

	report, err := s.Salvar(form, "")
	require.NoError(t, err)
	id := report.HonorarioID

	// Edição troca a lista inteira.
	form2 := formParcelado(pf.ID)
	form2.Honorarios.DividirEntreParceiros = true
	form2.Honorarios.DivisaoParceiros = []DivisaoForm{
		{IDAdvogado: "adv-3", Nome: "Dr. Pereira", Percentual: 100},
	}
	_, err = s.Salvar(form2, id)
	require.NoError(t, err)

	entradas, err := s.Divisoes.ListarPorHonorario(s.DB, id, divisao.GrupoParceiros)
	require.NoError(t, err)
	require.Len(t, entradas, 1)
	assert.Equal(t, "adv-3", entradas[0].IDAdvogado)
	assert.Equal(t, 100.0, entradas[0].PercentualValor)
}

func TestCarregarRoundTrip(t *testing.T) {
	s := novoServico(t)
	pf := seedClientePF(t, s)

	original := formParcelado(pf.ID)
	report, err := s.Salvar(original, "")
	require.NoError(t, err)

	form := s.Carregar(report.HonorarioID)
	require.NotNil(t, form)

	require.NotNil(t, form.Cliente)
	assert.Equal(t, pf.ID, form.Cliente.ID)
	assert.Equal(t, "fisica", form.Cliente.Tipo)
	assert.Equal(t, "Maria Silva", form.Cliente.Nome)

	assert.Equal(t, "0001234-56.2024.8.26.0100", form.Processo.NumeroProcesso)
	assert.Equal(t, original.Processo.Historico, form.Processo.Historico)
	assert.Equal(t, "1000", form.Financeiro.ValorHonorario)
	assert.Equal(t, "parcelado", form.Financeiro.FormaPagamento)
	assert.Equal(t, "2024-01-05", form.Financeiro.DataContratacao)

	require.Len(t, form.Financeiro.Parcelas, 3)
	assert.Equal(t, original.Financeiro.Parcelas, form.Financeiro.Parcelas)
}

func TestCarregarAVistaEchoaDataPagamento(t *testing.T) {
	s := novoServico(t)
	pf := seedClientePF(t, s)

	report, err := s.Salvar(formAVista(pf.ID), "")
	require.NoError(t, err)

	form := s.Carregar(report.HonorarioID)
	require.NotNil(t, form)
	assert.Equal(t, "a_vista", form.Financeiro.FormaPagamento)
	assert.Equal(t, "2024-01-10", form.Financeiro.DataPagamento)
}

func TestCarregarInexistenteRetornaNil(t *testing.T) {
	s := novoServico(t)
	assert.Nil(t, s.Carregar("11111111-1111-1111-1111-111111111111"))
}

func TestCarregarDegradaQuandoClienteSumiu(t *testing.T) {
	s := novoServico(t)
	pf := seedClientePF(t, s)

	report, err := s.Salvar(formAVista(pf.ID), "")
	require.NoError(t, err)

	require.NoError(t, s.DB.Unscoped().Delete(&cliente.PessoaFisica{}, "id = ?", pf.ID).Error)

	form := s.Carregar(report.HonorarioID)
	require.NotNil(t, form, "cliente ausente não derruba a carga")
	assert.Nil(t, form.Cliente)
	assert.Equal(t, "1000", form.Financeiro.ValorHonorario)
}

func TestStatusPreservadoNaEdicao(t *testing.T) {
	s := novoServico(t)
	pf := seedClientePF(t, s)

	report, err := s.Salvar(formParcelado(pf.ID), "")
	require.NoError(t, err)
	id := report.HonorarioID

	require.NoError(t, s.DB.Model(&Honorario{}).Where("id = ?", id).
		Update("status", StatusCancelado).Error)

	_, err = s.Salvar(formParcelado(pf.ID), id)
	require.NoError(t, err)

	h, err := s.Honorarios.BuscarPorID(s.DB, id)
	require.NoError(t, err)
	assert.Equal(t, StatusCancelado, h.Status, "edição não ressuscita honorário cancelado")
}
