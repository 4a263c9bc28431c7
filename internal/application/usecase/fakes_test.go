package usecase_test

import (
	"context"
	"strings"
	"time"

	"github.com/reaksa/stockford-api/internal/application/inventory"
	"github.com/reaksa/stockford-api/internal/domain"
	"github.com/reaksa/stockford-api/internal/domain/entity"
	"github.com/reaksa/stockford-api/internal/domain/repository"
)

// Fakes en memoria para los tests del paquete. Las lecturas devuelven
// copias para imitar el ciclo cargar-mutar-persistir del repositorio real.

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
		if existing.Category == item.Category &&
			strings.EqualFold(strings.TrimSpace(existing.Description), strings.TrimSpace(item.Description)) {
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
		if it.Category == category &&
			strings.EqualFold(strings.TrimSpace(it.Description), strings.TrimSpace(description)) {
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

type fakeTxRunner struct {
	repo *fakeItemRepo
}

func (tr *fakeTxRunner) Run(_ context.Context, fn func(itemRepo repository.ItemRepository) error) error {
	return fn(tr.repo)
}

var _ repository.ItemRepository = (*fakeItemRepo)(nil)
var _ inventory.TxRunner = (*fakeTxRunner)(nil)

// ── Users ─────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(user *entity.User) error {
	for _, u := range r.users {
		if u.Username == user.Username {
			return domain.ErrUsernameExists
		}
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) FindByUsername(username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(user *entity.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) Delete(id string) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) List() ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

// ── Reports ───────────────────────────────────────────────────────────────────

type fakeReportRepo struct {
	critical  []*entity.Item
	movements []*entity.Item
	summary   []repository.CategorySummary
}

func (r *fakeReportRepo) CriticalStock() ([]*entity.Item, error) {
	return r.critical, nil
}

func (r *fakeReportRepo) ItemsWithMovements(category string, from, to time.Time) ([]*entity.Item, error) {
	return r.movements, nil
}

func (r *fakeReportRepo) SummaryByCategory() ([]repository.CategorySummary, error) {
	return r.summary, nil
}

var _ repository.ReportRepository = (*fakeReportRepo)(nil)
