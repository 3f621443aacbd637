package despesafixa

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"api/internal/lembrete"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type fakeRepo struct {
	despesas map[uint]*DespesaFixa
	seq      uint
}

func novoFakeRepo() *fakeRepo {
	return &fakeRepo{despesas: map[uint]*DespesaFixa{}}
}

func (f *fakeRepo) Criar(d *DespesaFixa) error {
	f.seq++
	d.ID = f.seq
	f.despesas[d.ID] = d
	return nil
}

func (f *fakeRepo) BuscarPorID(id uint) (*DespesaFixa, error) {
	d, ok := f.despesas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return d, nil
}

func (f *fakeRepo) Listar(Filtros) ([]DespesaFixa, error) { return nil, nil }

func (f *fakeRepo) Atualizar(d *DespesaFixa) error {
	f.despesas[d.ID] = d
	return nil
}

func (f *fakeRepo) DeletarPorID(id uint) error {
	if _, ok := f.despesas[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.despesas, id)
	return nil
}

type fakeLembretes struct {
	falharExclusao error
	excluidos      []uint
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

func deletarVia(h *Handler, url string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/despesas-fixas/{id}", h.Deletar).Methods("DELETE")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("DELETE", url, nil))
	return rec
}

func TestDeletarRemoveLembreteVinculado(t *testing.T) {
	repo := novoFakeRepo()
	lid := uint(9)
	_ = repo.Criar(&DespesaFixa{Categoria: "Aluguel", LembreteID: &lid})
	lembretes := &fakeLembretes{}

	rec := deletarVia(NewHandler(repo, lembretes), "/despesas-fixas/1")

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, esperado 204", rec.Code)
	}
	if len(lembretes.excluidos) != 1 || lembretes.excluidos[0] != lid {
		t.Errorf("lembretes excluídos = %v, esperado [%d]", lembretes.excluidos, lid)
	}
}

func TestDeletarComFalhaNoLembreteAindaRetorna204(t *testing.T) {
	repo := novoFakeRepo()
	lid := uint(9)
	_ = repo.Criar(&DespesaFixa{Categoria: "Aluguel", LembreteID: &lid})
	lembretes := &fakeLembretes{falharExclusao: errors.New("banco indisponível")}

	rec := deletarVia(NewHandler(repo, lembretes), "/despesas-fixas/1")

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, esperado 204 mesmo com falha na limpeza do lembrete", rec.Code)
	}
	if _, err := repo.BuscarPorID(1); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("despesa deveria ter sido apagada apesar da falha no lembrete")
	}
}

func TestDeletarComLembreteJaRemovido(t *testing.T) {
	repo := novoFakeRepo()
	lid := uint(9)
	_ = repo.Criar(&DespesaFixa{Categoria: "Aluguel", LembreteID: &lid})
	lembretes := &fakeLembretes{falharExclusao: gorm.ErrRecordNotFound}

	rec := deletarVia(NewHandler(repo, lembretes), "/despesas-fixas/1")

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, esperado 204 com lembrete já removido", rec.Code)
	}
}

func TestDeletarSemLembrete(t *testing.T) {
	repo := novoFakeRepo()
	_ = repo.Criar(&DespesaFixa{Categoria: "Aluguel"})
	lembretes := &fakeLembretes{}

	rec := deletarVia(NewHandler(repo, lembretes), "/despesas-fixas/1")

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, esperado 204", rec.Code)
	}
	if len(lembretes.excluidos) != 0 {
		t.Errorf("nenhum lembrete deveria ser excluído: %v", lembretes.excluidos)
	}
}

func TestDeletarDespesaInexistente(t *testing.T) {
	rec := deletarVia(NewHandler(novoFakeRepo(), &fakeLembretes{}), "/despesas-fixas/42")

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, esperado 404", rec.Code)
	}
}
