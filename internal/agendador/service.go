// internal/agendador/service.go
package agendador

import (
	"time"

	"api/internal/despesafixa"
	"api/internal/lembrete"
	"api/internal/logger"
	"api/internal/modelodespesa"
)

// Interfaces mínimas sobre os repositórios; permitem testar o serviço com
// dublês em memória.
type ModeloStore interface {
	ListarAtivasAuto() ([]modelodespesa.ModeloDespesa, error)
	BuscarPorID(id uint) (*modelodespesa.ModeloDespesa, error)
	MarcarUso(id uint) error
}

type DespesaStore interface {
	ObterOuCriarDoModelo(m *modelodespesa.ModeloDespesa, data time.Time, estatus string) (*despesafixa.DespesaFixa, bool, error)
	AtualizarLembrete(id uint, lembreteID *uint) error
}

type LembreteStore interface {
	Criar(l *lembrete.Lembrete) error
}

// Service materializa modelos de despesa em despesas fixas datadas, com o
// lembrete de calendário correspondente. Não guarda estado entre execuções;
// tudo vive no banco.
type Service struct {
	Modelos   ModeloStore
	Despesas  DespesaStore
	Lembretes LembreteStore
}

func NewService(modelos ModeloStore, despesas DespesaStore, lembretes LembreteStore) *Service {
	return &Service{Modelos: modelos, Despesas: despesas, Lembretes: lembretes}
}

// Ações possíveis por item do resultado.
const (
	AcaoCriada      = "criada"
	AcaoReutilizada = "reutilizada"
	AcaoIgnorada    = "ignorada"
	AcaoErro        = "erro"
)

// Item descreve o que aconteceu com um modelo em uma execução.
type Item struct {
	ModeloID     uint                     `json:"modeloId"`
	ChavePeriodo string                   `json:"chavePeriodo,omitempty"`
	Acao         string                   `json:"acao"`
	Despesa      *despesafixa.DespesaFixa `json:"despesa,omitempty"`
	Aviso        string                   `json:"aviso,omitempty"`
	Erro         string                   `json:"erro,omitempty"`
}

// Resultado agrega uma execução completa do agendador. Sempre é um sucesso
// parcial: erros por modelo ficam nos itens, nunca abortam o lote.
type Resultado struct {
	Data         string `json:"data"`
	Criadas      int    `json:"criadas"`
	Reutilizadas int    `json:"reutilizadas"`
	Ignoradas    int    `json:"ignoradas"`
	Erros        int    `json:"erros"`
	Itens        []Item `json:"itens"`
}

// ExecutarParaData avalia todos os modelos ativos com auto-instanciação para
// a data alvo. Reexecuções para a mesma data são seguras: a consulta de
// idempotência encontra a despesa existente e o lembrete nunca é duplicado.
func (s *Service) ExecutarParaData(data time.Time) (Resultado, error) {
	res := Resultado{Data: data.Format("2006-01-02")}

	modelos, err := s.Modelos.ListarAtivasAuto()
	if err != nil {
		return res, err
	}

	for i := range modelos {
		m := &modelos[i]

		if m.DiaPagamento == nil {
			// Modelo mal configurado: auto-instanciar ligado sem dia de
			// pagamento. Pulado, nunca aborta o lote.
			logger.Log.Warnf("Modelo %d sem dia de pagamento; ignorado pelo agendador", m.ID)
			res.Ignoradas++
			res.Itens = append(res.Itens, Item{
				ModeloID: m.ID,
				Acao:     AcaoIgnorada,
				Aviso:    "modelo sem dia de pagamento",
			})
			continue
		}

		deve, chave := m.DeveInstanciar(data)
		if !deve {
			res.Ignoradas++
			continue
		}

		item := s.materializar(m, data, chave)
		switch item.Acao {
		case AcaoCriada:
			res.Criadas++
		case AcaoReutilizada:
			res.Reutilizadas++
		case AcaoErro:
			res.Erros++
		}
		res.Itens = append(res.Itens, item)
	}

	logger.Log.Infof("Agendador %s: criadas=%d reutilizadas=%d ignoradas=%d erros=%d",
		res.Data, res.Criadas, res.Reutilizadas, res.Ignoradas, res.Erros)
	return res, nil
}

// InstanciarModelo força a materialização de um modelo para uma data,
// independente da cadência (o operador decide). Mesma idempotência da
// execução em lote.
func (s *Service) InstanciarModelo(id uint, data time.Time, estatus string) (*despesafixa.DespesaFixa, bool, error) {
	m, err := s.Modelos.BuscarPorID(id)
	if err != nil {
		return nil, false, err
	}

	despesa, criada, err := s.Despesas.ObterOuCriarDoModelo(m, data, estatus)
	if err != nil {
		return nil, false, err
	}
	if criada {
		if err := s.Modelos.MarcarUso(m.ID); err != nil {
			logger.Log.Warnf("Não foi possível marcar uso do modelo %d: %v", m.ID, err)
		}
	}
	if err := s.anexarLembrete(m, despesa); err != nil {
		logger.Log.Warnf("Lembrete do modelo %d não pôde ser anexado: %v", m.ID, err)
	}
	return despesa, criada, nil
}

func (s *Service) materializar(m *modelodespesa.ModeloDespesa, data time.Time, chave string) Item {
	item := Item{ModeloID: m.ID, ChavePeriodo: chave}

	despesa, criada, err := s.Despesas.ObterOuCriarDoModelo(m, data, "")
	if err != nil {
		logger.Log.Errorf("Modelo %d: erro ao materializar despesa: %v", m.ID, err)
		item.Acao = AcaoErro
		item.Erro = err.Error()
		return item
	}

	if criada {
		item.Acao = AcaoCriada
		if err := s.Modelos.MarcarUso(m.ID); err != nil {
			logger.Log.Warnf("Não foi possível marcar uso do modelo %d: %v", m.ID, err)
		}
	} else {
		item.Acao = AcaoReutilizada
	}

	// Tentada também para despesas reutilizadas: se uma execução anterior
	// criou a despesa mas falhou no lembrete, esta repara.
	if err := s.anexarLembrete(m, despesa); err != nil {
		logger.Log.Warnf("Lembrete do modelo %d não pôde ser anexado: %v", m.ID, err)
		item.Aviso = "lembrete não anexado: " + err.Error()
	}

	item.Despesa = despesa
	return item
}

// anexarLembrete cria o lembrete da despesa e grava a referência de volta.
// No-op quando o modelo não pede lembrete ou a despesa já tem um (um
// lembrete anexado nunca é substituído). São duas escritas sem transação:
// se a segunda falhar a despesa fica sem lembrete, estado degradado aceito —
// a despesa é a fonte de verdade, o lembrete é consultivo.
func (s *Service) anexarLembrete(m *modelodespesa.ModeloDespesa, d *despesafixa.DespesaFixa) error {
	if !m.AutoLembrete || d.LembreteID != nil {
		return nil
	}

	hora := m.HoraPreferida
	if hora == "" {
		hora = lembrete.HoraPadrao
	}
	minutos := m.LembrarMinutos
	if minutos <= 0 {
		minutos = lembrete.LembrarMinutosPadrao
	}

	l := &lembrete.Lembrete{
		Titulo:         lembrete.TituloDespesa(d.Categoria),
		Descricao:      lembrete.DescricaoDespesa(d.Fornecedor, d.Valor, d.Estatus),
		Data:           d.Data,
		Hora:           hora,
		Tipo:           lembrete.TipoFinancas,
		Prioridade:     lembrete.PrioridadeMedia,
		LembrarMinutos: minutos,
	}
	if err := s.Lembretes.Criar(l); err != nil {
		return err
	}
	if err := s.Despesas.AtualizarLembrete(d.ID, &l.ID); err != nil {
		return err
	}
	d.LembreteID = &l.ID
	return nil
}
