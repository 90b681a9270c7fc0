package contact

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paradise-nursery/storefront-backend/pkg/db/models"
	pkgerrors "github.com/paradise-nursery/storefront-backend/pkg/errors"
)

type stubMessageRepo struct {
	created []*models.ContactMessage
}

func (s *stubMessageRepo) Create(ctx context.Context, message *models.ContactMessage) (*models.ContactMessage, error) {
	s.created = append(s.created, message)
	return message, nil
}

func (s *stubMessageRepo) List(ctx context.Context) ([]models.ContactMessage, error) {
	out := make([]models.ContactMessage, 0, len(s.created))
	for _, m := range s.created {
		out = append(out, *m)
	}
	return out, nil
}

func TestSubmitNormalizesAndStores(t *testing.T) {
	t.Parallel()

	repo := &stubMessageRepo{}
	svc, err := NewService(repo)
	require.NoError(t, err)

	created, err := svc.Submit(context.Background(), MessageInput{
		Name:    "  Pat Gardner ",
		Email:   "Pat@Example.com",
		Subject: "Repotting advice",
		Message: "How often should I repot a monstera?",
	})
	require.NoError(t, err)
	assert.Equal(t, "Pat Gardner", created.Name)
	assert.Equal(t, "pat@example.com", created.Email)
	require.Len(t, repo.created, 1)
}

func TestSubmitRejectsBlankFields(t *testing.T) {
	t.Parallel()

	svc, err := NewService(&stubMessageRepo{})
	require.NoError(t, err)

	_, err = svc.Submit(context.Background(), MessageInput{Email: "pat@example.com"})
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
}

func TestSubmitRejectsInvalidEmail(t *testing.T) {
	t.Parallel()

	svc, err := NewService(&stubMessageRepo{})
	require.NoError(t, err)

	_, err = svc.Submit(context.Background(), MessageInput{
		Name:    "Pat",
		Email:   "not-an-email",
		Subject: "Hi",
		Message: "Hello",
	})
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
}
