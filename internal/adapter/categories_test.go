package adapter

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/restomenu/restomenu/internal/backend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeInvalidator records which menus had their cache dropped.
type fakeInvalidator struct {
	invalidated []string
}

func (f *fakeInvalidator) Invalidate(_ context.Context, menuID string) error {
	f.invalidated = append(f.invalidated, menuID)
	return nil
}

func newTestBackend(t *testing.T, handler http.HandlerFunc) *backend.Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return backend.New(backend.Config{
		BaseURL: srv.URL,
		Timeout: 2 * time.Second,
	}, zap.NewNop().Sugar())
}

func TestCategoriesListNormalizesEnvelopes(t *testing.T) {
	payloads := map[string]string{
		"bare array":   `[{"id":"c1","nameEn":"Burgers"}]`,
		"keyed object": `{"categories":[{"id":"c1","nameEn":"Burgers"}]}`,
		"data wrapper": `{"data":{"categories":[{"id":"c1","nameEn":"Burgers"}]}}`,
	}

	for name, payload := range payloads {
		t.Run(name, func(t *testing.T) {
			client := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(payload))
			})
			a := NewCategories(client, &fakeInvalidator{}, zap.NewNop().Sugar())

			got := a.List(context.Background(), "m1")
			require.Len(t, got, 1)
			assert.Equal(t, "c1", got[0].ID)
			assert.Equal(t, "Burgers", got[0].NameI18n.EN)
		})
	}
}

func TestCategoriesListDegradesToEmpty(t *testing.T) {
	client := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	a := NewCategories(client, &fakeInvalidator{}, zap.NewNop().Sugar())

	got := a.List(context.Background(), "m1")
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestCategoriesListNumericIDs(t *testing.T) {
	client := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":42,"nameEn":"Burgers"}]`))
	})
	a := NewCategories(client, &fakeInvalidator{}, zap.NewNop().Sugar())

	got := a.List(context.Background(), "m1")
	require.Len(t, got, 1)
	assert.Equal(t, "42", got[0].ID)
}

func TestCategoriesListNestedTranslations(t *testing.T) {
	client := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":"c1","translations":{"ar":{"name":"برغر"},"en":{"name":"Burgers"}}}]`))
	})
	a := NewCategories(client, &fakeInvalidator{}, zap.NewNop().Sugar())

	got := a.List(context.Background(), "m1")
	require.Len(t, got, 1)
	assert.Equal(t, "برغر", got[0].NameI18n.AR)
	assert.Equal(t, "Burgers", got[0].NameI18n.EN)
}

func TestCategoriesCreateInvalidatesCache(t *testing.T) {
	client := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/menus/m1/categories", r.URL.Path)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"data":{"id":"c9","nameEn":"Desserts"}}`))
	})

	inv := &fakeInvalidator{}
	a := NewCategories(client, inv, zap.NewNop().Sugar())

	cat, err := a.Create(context.Background(), "m1", CategoryInput{NameEn: "Desserts"})
	require.NoError(t, err)
	assert.Equal(t, "c9", cat.ID)
	assert.Equal(t, []string{"m1"}, inv.invalidated)
}

func TestCategoriesCreatePropagatesBackendError(t *testing.T) {
	client := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error":"plan limit reached"}`))
	})

	inv := &fakeInvalidator{}
	a := NewCategories(client, inv, zap.NewNop().Sugar())

	_, err := a.Create(context.Background(), "m1", CategoryInput{NameEn: "Desserts"})
	require.Error(t, err)

	var apiErr *backend.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "plan limit reached", apiErr.Message)

	// failed writes must not drop the cache
	assert.Empty(t, inv.invalidated)
}

func TestCategoriesDeleteInvalidatesCache(t *testing.T) {
	client := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.Write([]byte(`{"success":true}`))
	})

	inv := &fakeInvalidator{}
	a := NewCategories(client, inv, zap.NewNop().Sugar())

	require.NoError(t, a.Delete(context.Background(), "m1", "c1"))
	assert.Equal(t, []string{"m1"}, inv.invalidated)
}

func TestCategoryInputOmitsEmptyImage(t *testing.T) {
	wire := CategoryInput{NameEn: "Burgers"}.toWire()
	_, ok := wire["imageUrl"]
	assert.False(t, ok)

	wire = CategoryInput{NameEn: "Burgers", ImageURL: "https://cdn/x.png"}.toWire()
	assert.Equal(t, "https://cdn/x.png", wire["imageUrl"])
}
