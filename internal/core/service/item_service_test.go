package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/mercadito/catalog-api/internal/core/domain"
	"github.com/mercadito/catalog-api/internal/core/ports"
)

type stubItemRepo struct {
	byName map[string]*domain.Item
	nextID int64
}

func newStubItemRepo() *stubItemRepo {
	return &stubItemRepo{byName: make(map[string]*domain.Item), nextID: 1}
}

func (r *stubItemRepo) FindByName(_ context.Context, name string) (*domain.Item, error) {
	if i, ok := r.byName[name]; ok {
		return i, nil
	}
	return nil, domain.ErrItemNotFound
}

func (r *stubItemRepo) List(_ context.Context) ([]*domain.Item, error) {
	items := make([]*domain.Item, 0, len(r.byName))
	for _, i := range r.byName {
		items = append(items, i)
	}
	return items, nil
}

func (r *stubItemRepo) Create(_ context.Context, item *domain.Item) (*domain.Item, error) {
	if _, exists := r.byName[item.Name]; exists {
		return nil, domain.ErrItemExists
	}
	item.ID = r.nextID
	r.nextID++
	r.byName[item.Name] = item
	return item, nil
}

func (r *stubItemRepo) UpdatePrice(_ context.Context, item *domain.Item) error {
	stored, ok := r.byName[item.Name]
	if !ok {
		return domain.ErrItemNotFound
	}
	stored.Price = item.Price
	return nil
}

func (r *stubItemRepo) DeleteByName(_ context.Context, name string) (int64, error) {
	if _, ok := r.byName[name]; !ok {
		return 0, nil
	}
	delete(r.byName, name)
	return 1, nil
}

func newItemFixture(t *testing.T) (*ItemService, *stubItemRepo, *domain.Store) {
	t.Helper()
	items := newStubItemRepo()
	stores := newStubStoreRepo()
	store, err := stores.Create(context.Background(), &domain.Store{Name: "grocery"})
	if err != nil {
		t.Fatalf("seed store: %v", err)
	}
	return NewItemService(items, stores, zerolog.Nop()), items, store
}

func TestItemService_Create(t *testing.T) {
	svc, _, store := newItemFixture(t)

	item, err := svc.Create(context.Background(), ports.ItemInput{Name: "milk", Price: 2.49, StoreID: store.ID})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if item.ID == 0 || item.Price != 2.49 || item.StoreID != store.ID {
		t.Fatalf("unexpected item: %+v", item)
	}
}

func TestItemService_Create_UnknownStore(t *testing.T) {
	svc, _, _ := newItemFixture(t)

	if _, err := svc.Create(context.Background(), ports.ItemInput{Name: "milk", Price: 2.49, StoreID: 999}); !errors.Is(err, domain.ErrStoreNotFound) {
		t.Fatalf("expected ErrStoreNotFound, got %v", err)
	}
}

func TestItemService_Create_Duplicate(t *testing.T) {
	svc, _, store := newItemFixture(t)

	input := ports.ItemInput{Name: "milk", Price: 2.49, StoreID: store.ID}
	_, _ = svc.Create(context.Background(), input)
	if _, err := svc.Create(context.Background(), input); !errors.Is(err, domain.ErrItemExists) {
		t.Fatalf("expected ErrItemExists, got %v", err)
	}
}

func TestItemService_Upsert_CreatesWhenMissing(t *testing.T) {
	svc, _, store := newItemFixture(t)

	item, err := svc.Upsert(context.Background(), ports.ItemInput{Name: "milk", Price: 2.49, StoreID: store.ID})
	if err != nil {
		t.Fatalf("Upsert returned error: %v", err)
	}
	if item.Price != 2.49 {
		t.Fatalf("unexpected price: %f", item.Price)
	}
}

func TestItemService_Upsert_UpdatesPrice(t *testing.T) {
	svc, repo, store := newItemFixture(t)

	_, _ = svc.Create(context.Background(), ports.ItemInput{Name: "milk", Price: 2.49, StoreID: store.ID})

	item, err := svc.Upsert(context.Background(), ports.ItemInput{Name: "milk", Price: 3.99, StoreID: store.ID})
	if err != nil {
		t.Fatalf("Upsert returned error: %v", err)
	}
	if item.Price != 3.99 {
		t.Fatalf("expected updated price, got %f", item.Price)
	}
	if repo.byName["milk"].Price != 3.99 {
		t.Fatalf("price not persisted")
	}
}

func TestItemService_Delete_Tolerant(t *testing.T) {
	svc, _, store := newItemFixture(t)

	if err := svc.Delete(context.Background(), "ghost"); err != nil {
		t.Fatalf("expected tolerant delete, got %v", err)
	}

	_, _ = svc.Create(context.Background(), ports.ItemInput{Name: "milk", Price: 2.49, StoreID: store.ID})
	if err := svc.Delete(context.Background(), "milk"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, err := svc.Get(context.Background(), "milk"); !errors.Is(err, domain.ErrItemNotFound) {
		t.Fatalf("item still present after delete")
	}
}
