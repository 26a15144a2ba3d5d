package adapter

import (
	"context"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/restomenu/restomenu/internal/backend"
	"github.com/restomenu/restomenu/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestUsersForwardsPaginationParams(t *testing.T) {
	var gotQuery string

	client := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{"data":{"users":[{"id":"u1","email":"a@b.c"}],"total":37}}`))
	})
	a := NewAdmin(client, zap.NewNop().Sugar())

	page := a.Users(context.Background(), 3, 10, "ali")

	assert.Contains(t, gotQuery, "page=3")
	assert.Contains(t, gotQuery, "limit=10")
	assert.Contains(t, gotQuery, "search=ali")

	require.Len(t, page.Users, 1)
	assert.Equal(t, "u1", page.Users[0].ID)
	assert.Equal(t, 37, page.Total)
}

func TestUsersTotalFallsBackToLength(t *testing.T) {
	client := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":"u1"},{"id":"u2"}]`))
	})
	a := NewAdmin(client, zap.NewNop().Sugar())

	page := a.Users(context.Background(), 1, 10, "")
	assert.Equal(t, 2, page.Total)
}

func TestUsersDegradesToEmpty(t *testing.T) {
	client := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	a := NewAdmin(client, zap.NewNop().Sugar())

	page := a.Users(context.Background(), 1, 10, "")
	require.NotNil(t, page.Users)
	assert.Empty(t, page.Users)
}

func TestUserDetailsPropagatesError(t *testing.T) {
	client := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"user not found"}`))
	})
	a := NewAdmin(client, zap.NewNop().Sugar())

	_, err := a.UserDetails(context.Background(), "u404")
	require.Error(t, err)

	var apiErr *backend.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
}

func TestSubscriptionPlansPropagatesError(t *testing.T) {
	client := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	a := NewAdmin(client, zap.NewNop().Sugar())

	_, err := a.SubscriptionPlans(context.Background())
	require.Error(t, err)
}

func TestUpdatePlanSendsOnlySetFields(t *testing.T) {
	var gotBody []byte

	client := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		w.Write([]byte(`{"success":true}`))
	})
	a := NewAdmin(client, zap.NewNop().Sugar())

	price := 49.0
	err := a.UpdatePlan(context.Background(), "p1", domain.PlanUpdate{PriceMonthly: &price})
	require.NoError(t, err)
	assert.JSONEq(t, `{"priceMonthly":49}`, string(gotBody))
}
