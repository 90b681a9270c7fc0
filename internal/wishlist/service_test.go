package wishlist

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/paradise-nursery/storefront-backend/pkg/db/models"
	pkgerrors "github.com/paradise-nursery/storefront-backend/pkg/errors"
)

type pairKey struct {
	userID    uuid.UUID
	productID uuid.UUID
}

type stubWishlistRepo struct {
	entries map[pairKey]bool
}

func newStubWishlistRepo() *stubWishlistRepo {
	return &stubWishlistRepo{entries: map[pairKey]bool{}}
}

func (s *stubWishlistRepo) AddItem(ctx context.Context, userID, productID uuid.UUID) error {
	s.entries[pairKey{userID, productID}] = true
	return nil
}

func (s *stubWishlistRepo) RemoveItem(ctx context.Context, userID, productID uuid.UUID) error {
	delete(s.entries, pairKey{userID, productID})
	return nil
}

func (s *stubWishlistRepo) Exists(ctx context.Context, userID, productID uuid.UUID) (bool, error) {
	return s.entries[pairKey{userID, productID}], nil
}

func (s *stubWishlistRepo) ListItems(ctx context.Context, userID uuid.UUID) ([]ItemDTO, error) {
	items := []ItemDTO{}
	for key := range s.entries {
		if key.userID == userID {
			items = append(items, ItemDTO{Product: models.Product{ID: key.productID}})
		}
	}
	return items, nil
}

func (s *stubWishlistRepo) ListProductIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	ids := []uuid.UUID{}
	for key := range s.entries {
		if key.userID == userID {
			ids = append(ids, key.productID)
		}
	}
	return ids, nil
}

type stubCatalog struct {
	known map[uuid.UUID]bool
}

func (s *stubCatalog) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	if s.known[id] {
		return &models.Product{ID: id}, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func newWishlistService(t *testing.T, productIDs ...uuid.UUID) (Service, *stubWishlistRepo) {
	t.Helper()

	catalog := &stubCatalog{known: map[uuid.UUID]bool{}}
	for _, id := range productIDs {
		catalog.known[id] = true
	}
	repo := newStubWishlistRepo()
	svc, err := NewService(repo, catalog)
	require.NoError(t, err)
	return svc, repo
}

func TestToggleAddsThenRemoves(t *testing.T) {
	t.Parallel()

	productID := uuid.New()
	userID := uuid.New()
	svc, repo := newWishlistService(t, productID)
	ctx := context.Background()

	first, err := svc.Toggle(ctx, userID, productID)
	require.NoError(t, err)
	assert.True(t, first.Wishlisted)
	assert.True(t, repo.entries[pairKey{userID, productID}])

	second, err := svc.Toggle(ctx, userID, productID)
	require.NoError(t, err)
	assert.False(t, second.Wishlisted)
	assert.False(t, repo.entries[pairKey{userID, productID}])
}

func TestToggleUnknownProduct(t *testing.T) {
	t.Parallel()

	svc, _ := newWishlistService(t)

	_, err := svc.Toggle(context.Background(), uuid.New(), uuid.New())
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}

func TestAddItemRequiresUser(t *testing.T) {
	t.Parallel()

	productID := uuid.New()
	svc, _ := newWishlistService(t, productID)

	err := svc.AddItem(context.Background(), uuid.Nil, productID)
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
}

func TestRemoveItemAbsentEntryIsNoop(t *testing.T) {
	t.Parallel()

	productID := uuid.New()
	svc, _ := newWishlistService(t, productID)

	err := svc.RemoveItem(context.Background(), uuid.New(), productID)
	require.NoError(t, err)
}
