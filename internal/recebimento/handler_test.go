package recebimento

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"api/internal/lembrete"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type fakeRepo struct {
	recebimentos map[uint]*Recebimento
	seq          uint
}

func novoFakeRepo() *fakeRepo {
	return &fakeRepo{recebimentos: map[uint]*Recebimento{}}
}

func (f *fakeRepo) Criar(rec *Recebimento) error {
	f.seq++
	rec.ID = f.seq
	f.recebimentos[rec.ID] = rec
	return nil
}

func (f *fakeRepo) BuscarPorID(id uint) (*Recebimento, error) {
	rec, ok := f.recebimentos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return rec, nil
}

func (f *fakeRepo) Listar(Filtros) ([]Recebimento, error) { return nil, nil }

func (f *fakeRepo) Atualizar(rec *Recebimento) error {
	f.recebimentos[rec.ID] = rec
	return nil
}

func (f *fakeRepo) AtualizarLembrete(id uint, lembreteID *uint) error {
	rec, ok := f.recebimentos[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	rec.LembreteID = lembreteID
	return nil
}

func (f *fakeRepo) DeletarPorID(id uint) error {
	if _, ok := f.recebimentos[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.recebimentos, id)
	return nil
}

type fakeLembretes struct {
	seq            uint
	criados        []*lembrete.Lembrete
	falharExclusao error
	excluidos      []uint
}

func (f *fakeLembretes) Criar(l *lembrete.Lembrete) error {
	f.seq++
	l.ID = f.seq
	f.criados = append(f.criados, l)
	return nil
}

func (f *fakeLembretes) BuscarPorID(id uint) (*lembrete.Lembrete, error) {
	return &lembrete.Lembrete{ID: id}, nil
}

func (f *fakeLembretes) Atualizar(*lembrete.Lembrete) error { return nil }

func (f *fakeLembretes) DeletarPorID(id uint) error {
	if f.falharExclusao != nil {
		return f.falharExclusao
	}
	f.excluidos = append(f.excluidos, id)
	return nil
}

func novoRouter(h *Handler) *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/recebimentos/{id}", h.Atualizar).Methods("PUT")
	router.HandleFunc("/recebimentos/{id}", h.Deletar).Methods("DELETE")
	return router
}

func TestDeletarRemoveLembreteVinculado(t *testing.T) {
	repo := novoFakeRepo()
	lid := uint(3)
	_ = repo.Criar(&Recebimento{Curso: "Inglês A1", LembreteID: &lid})
	lembretes := &fakeLembretes{}

	rec := httptest.NewRecorder()
	novoRouter(NewHandler(repo, lembretes)).ServeHTTP(rec,
		httptest.NewRequest("DELETE", "/recebimentos/1", nil))

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, esperado 204", rec.Code)
	}
	if len(lembretes.excluidos) != 1 || lembretes.excluidos[0] != lid {
		t.Errorf("lembretes excluídos = %v, esperado [%d]", lembretes.excluidos, lid)
	}
}

func TestDeletarComFalhaNoLembreteAindaRetorna204(t *testing.T) {
	repo := novoFakeRepo()
	lid := uint(3)
	_ = repo.Criar(&Recebimento{Curso: "Inglês A1", LembreteID: &lid})
	lembretes := &fakeLembretes{falharExclusao: errors.New("banco indisponível")}

	rec := httptest.NewRecorder()
	novoRouter(NewHandler(repo, lembretes)).ServeHTTP(rec,
		httptest.NewRequest("DELETE", "/recebimentos/1", nil))

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, esperado 204 mesmo com falha na limpeza do lembrete", rec.Code)
	}
	if _, err := repo.BuscarPorID(1); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("recebimento deveria ter sido apagado apesar da falha no lembrete")
	}
}

func TestDeletarComLembreteJaRemovido(t *testing.T) {
	repo := novoFakeRepo()
	lid := uint(3)
	_ = repo.Criar(&Recebimento{Curso: "Inglês A1", LembreteID: &lid})
	lembretes := &fakeLembretes{falharExclusao: gorm.ErrRecordNotFound}

	rec := httptest.NewRecorder()
	novoRouter(NewHandler(repo, lembretes)).ServeHTTP(rec,
		httptest.NewRequest("DELETE", "/recebimentos/1", nil))

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, esperado 204 com lembrete já removido", rec.Code)
	}
}

func TestAtualizarCriaLembreteQuandoAusente(t *testing.T) {
	repo := novoFakeRepo()
	_ = repo.Criar(&Recebimento{
		Curso:   "Inglês A1",
		Aluno:   "Maria",
		Data:    time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC),
		Estatus: "Pendente",
	})
	lembretes := &fakeLembretes{}

	rec := httptest.NewRecorder()
	novoRouter(NewHandler(repo, lembretes)).ServeHTTP(rec,
		httptest.NewRequest("PUT", "/recebimentos/1", strings.NewReader(`{"estatus":"Pago"}`)))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, corpo: %s", rec.Code, rec.Body.String())
	}
	if len(lembretes.criados) != 1 {
		t.Fatalf("lembretes criados = %d, esperado 1", len(lembretes.criados))
	}
	atualizado, _ := repo.BuscarPorID(1)
	if atualizado.LembreteID == nil || *atualizado.LembreteID != lembretes.criados[0].ID {
		t.Errorf("recebimento não ficou vinculado ao lembrete criado")
	}
	if lembretes.criados[0].Tipo != lembrete.TipoTrabalho {
		t.Errorf("tipo do lembrete = %q", lembretes.criados[0].Tipo)
	}
}
