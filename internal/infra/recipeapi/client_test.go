package recipeapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aalvaropc/recipedeck/internal/domain"
	"github.com/aalvaropc/recipedeck/internal/infra/httpclient"
	"github.com/aalvaropc/recipedeck/internal/infra/logger"
)

func TestNewRejectsEmptyBaseURL(t *testing.T) {
	_, err := New("  ")
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindInvalidConfig))

	_, err = New("not a url")
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindInvalidConfig))
}

func TestListRecipesPreservesServerOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/recipes/test", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"_id":"b","title":"Bread","ingredients":["flour","water"],"steps":["knead","bake"]},
			{"_id":"a","title":"Tea","ingredients":["water"],"steps":["boil"]}
		]`))
	}))
	defer srv.Close()

	c, err := New(srv.URL + "/")
	require.NoError(t, err)

	got, err := c.ListRecipes(context.Background(), "test")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "b", got[0].ID)
	assert.Equal(t, []string{"flour", "water"}, got[0].Ingredients)
	assert.Equal(t, "a", got[1].ID)
}

func TestListRecipesNullIsEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`null`))
	}))
	defer srv.Close()

	c, err := New(srv.URL)
	require.NoError(t, err)

	got, err := c.ListRecipes(context.Background(), "test")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestListRecipesWithSelector(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"recipes":[{"_id":"1","title":"Soup","ingredients":["salt"],"steps":["cook"]}]}}`))
	}))
	defer srv.Close()

	c, err := New(srv.URL, WithListSelector("$.data.recipes"))
	require.NoError(t, err)

	got, err := c.ListRecipes(context.Background(), "test")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Soup", got[0].Title)
}

func TestListRecipesErrors(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
		kind   domain.ErrorKind
	}{
		{"server error", http.StatusInternalServerError, `{"error":"boom"}`, domain.KindHTTPStatus},
		{"not found", http.StatusNotFound, ``, domain.KindHTTPStatus},
		{"malformed", http.StatusOK, `{"not":"an array"}`, domain.KindDecode},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			c, err := New(srv.URL)
			require.NoError(t, err)

			_, err = c.ListRecipes(context.Background(), "test")
			require.Error(t, err)
			assert.True(t, domain.IsKind(err, tc.kind), "got %v", err)
		})
	}
}

func TestListRecipesTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(100 * time.Millisecond)
	}))
	defer srv.Close()

	exec := httpclient.NewExecutor(httpclient.WithTimeout(10 * time.Millisecond))
	c, err := New(srv.URL, WithExecutor(exec))
	require.NoError(t, err)

	_, err = c.ListRecipes(context.Background(), "test")
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindTransport), "got %v", err)
}

func TestCreateRecipeSendsBodyAndDecodesRecord(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/recipes", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"_id":"new-1","title":"Tea","ingredients":["water","tea leaves"],"steps":["boil","steep","serve"]}`))
	}))
	defer srv.Close()

	c, err := New(srv.URL)
	require.NoError(t, err)

	in := domain.Draft{Title: "Tea", Ingredients: "water, tea leaves", Steps: "boil, steep, serve"}.ToNewRecipe("test")
	rec, err := c.CreateRecipe(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"userId":      "test",
		"title":       "Tea",
		"ingredients": []any{"water", "tea leaves"},
		"steps":       []any{"boil", "steep", "serve"},
	}, got)
	assert.Equal(t, domain.Recipe{
		ID:          "new-1",
		Title:       "Tea",
		Ingredients: []string{"water", "tea leaves"},
		Steps:       []string{"boil", "steep", "serve"},
	}, rec)
}

func TestCreateRecipeNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "bad input", http.StatusBadRequest)
	}))
	defer srv.Close()

	c, err := New(srv.URL)
	require.NoError(t, err)

	_, err = c.CreateRecipe(context.Background(), domain.NewRecipe{UserID: "test", Title: "x"})
	require.Error(t, err)

	var se *domain.StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusBadRequest, se.StatusCode)
	assert.Equal(t, "bad input", se.Body)
}

func TestCreateRecipeWithoutIDIsDecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"title":"Tea"}`))
	}))
	defer srv.Close()

	c, err := New(srv.URL)
	require.NoError(t, err)

	_, err = c.CreateRecipe(context.Background(), domain.NewRecipe{UserID: "test", Title: "Tea"})
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindDecode))
}

func TestResponsesAreLoggedAtDebug(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	var logs bytes.Buffer
	c, err := New(srv.URL, WithLogger(logger.New(&logs, true)))
	require.NoError(t, err)

	_, err = c.ListRecipes(context.Background(), "test")
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(logs.Bytes()), &entry))
	assert.Equal(t, "http.response", entry["msg"])
	assert.Equal(t, "recipeapi.list", entry["op"])
	assert.Equal(t, float64(http.StatusOK), entry["status"])
	assert.Equal(t, "application/json", entry["content_type"])
	assert.Contains(t, entry, "duration_ms")

	logs.Reset()
	c, err = New(srv.URL, WithLogger(logger.New(&logs, false)))
	require.NoError(t, err)
	_, err = c.ListRecipes(context.Background(), "test")
	require.NoError(t, err)
	assert.Empty(t, logs.String(), "debug lines are dropped at info level")
}
