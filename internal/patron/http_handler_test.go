package patron

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"rentalapi/internal/testutil"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) List(ctx context.Context, name string) ([]Patron, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Patron), args.Error(1)
}

func (m *mockRepository) GetByID(ctx context.Context, id string) (Patron, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(Patron), args.Error(1)
}

func (m *mockRepository) Create(ctx context.Context, p *Patron) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func newTestHandler() (*HTTPHandler, *mockRepository) {
	repo := &mockRepository{}
	return NewHTTPHandler(NewService(repo)), repo
}

func serve(h http.HandlerFunc, r *http.Request) testutil.RecordedResponse {
	w := httptest.NewRecorder()
	h(w, r)
	return testutil.RecordHTTPResponse(w)
}

func TestHTTPHandler_Search(t *testing.T) {
	h, repo := newTestHandler()
	repo.On("List", mock.Anything, "diya").Return([]Patron{
		{ID: "patron-1", Name: "Diya Sharma", Email: "diya@example.com"},
	}, nil)

	resp := serve(h.Search, testutil.NewRequest(http.MethodGet, "/patrons/search?name=diya", nil))

	assert.Equal(t, http.StatusOK, resp.Code)
	repo.AssertExpectations(t)
}

func TestHTTPHandler_Create(t *testing.T) {
	t.Run("201 on success", func(t *testing.T) {
		h, repo := newTestHandler()
		repo.On("Create", mock.Anything, mock.AnythingOfType("*patron.Patron")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*Patron).ID = "patron-1"
			}).
			Return(nil)

		resp := serve(h.Create, testutil.NewRequest(http.MethodPost, "/patrons",
			map[string]string{"name": "Rohan Mehta", "email": "rohan@example.com"}))

		require.Equal(t, http.StatusCreated, resp.Code)
		assert.Equal(t, "patron-1", resp.Body["id"])
	})

	t.Run("400 on invalid email", func(t *testing.T) {
		h, repo := newTestHandler()
		resp := serve(h.Create, testutil.NewRequest(http.MethodPost, "/patrons",
			map[string]string{"name": "Rohan Mehta", "email": "not-an-email"}))

		assert.Equal(t, http.StatusBadRequest, resp.Code)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}
