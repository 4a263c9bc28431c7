package inventory_test

import (
	"context"
	"strings"

	"github.com/reaksa/stockford-api/internal/application/inventory"
	"github.com/reaksa/stockford-api/internal/domain"
	"github.com/reaksa/stockford-api/internal/domain/entity"
	"github.com/reaksa/stockford-api/internal/domain/repository"
)

// fakeItemRepo repositorio en memoria para los tests de los casos de uso.
// Devuelve copias en las lecturas para imitar el ciclo cargar-mutar-persistir
// del repositorio real.
type fakeItemRepo struct {
	items map[string]*entity.Item
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{items: make(map[string]*entity.Item)}
}

func cloneItem(it *entity.Item) *entity.Item {
	cp := *it
	cp.History = append([]entity.HistoryRecord(nil), it.History...)
	return &cp
}

func (r *fakeItemRepo) Create(item *entity.Item) error {
	for _, existing := range r.items {
		if existing.Category == item.Category && sameDescription(existing.Description, item.Description) {
			return domain.ErrDuplicate
		}
	}
	r.items[item.ID] = cloneItem(item)
	return nil
}

func (r *fakeItemRepo) GetByID(id string) (*entity.Item, error) {
	it, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return cloneItem(it), nil
}

func (r *fakeItemRepo) GetForUpdate(id string) (*entity.Item, error) {
	return r.GetByID(id)
}

func (r *fakeItemRepo) FindByDescriptionForUpdate(category, description string) (*entity.Item, error) {
	for _, it := range r.items {
		if it.Category == category && sameDescription(it.Description, description) {
			return cloneItem(it), nil
		}
	}
	return nil, nil
}

func (r *fakeItemRepo) Update(item *entity.Item) error {
	stored, ok := r.items[item.ID]
	if !ok {
		return domain.ErrNotFound
	}
	history := stored.History
	*stored = *cloneItem(item)
	stored.History = history
	return nil
}

func (r *fakeItemRepo) AppendHistory(itemID string, records []entity.HistoryRecord) error {
	stored, ok := r.items[itemID]
	if !ok {
		return domain.ErrNotFound
	}
	stored.History = append(stored.History, records...)
	return nil
}

func (r *fakeItemRepo) Delete(id string) error {
	if _, ok := r.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *fakeItemRepo) List(f repository.ItemFilter) ([]*entity.Item, int, error) {
	out := make([]*entity.Item, 0, len(r.items))
	for _, it := range r.items {
		out = append(out, cloneItem(it))
	}
	return out, len(out), nil
}

func sameDescription(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// fakeTxRunner ejecuta la función directamente contra el repositorio en
// memoria, sin semántica de rollback.
type fakeTxRunner struct {
	repo *fakeItemRepo
}

func (tr *fakeTxRunner) Run(_ context.Context, fn func(itemRepo repository.ItemRepository) error) error {
	return fn(tr.repo)
}

var _ inventory.TxRunner = (*fakeTxRunner)(nil)
var _ repository.ItemRepository = (*fakeItemRepo)(nil)
