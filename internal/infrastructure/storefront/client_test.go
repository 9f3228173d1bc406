package storefront

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fitform/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	client := NewClient("https://shop.example.com")

	assert.NotNil(t, client)
	assert.Equal(t, "https://shop.example.com", client.baseURL)
	assert.NotNil(t, client.httpClient)
	assert.NotNil(t, client.rateLimiter)
	assert.False(t, client.debug)
}

func TestSetDebug(t *testing.T) {
	client := NewClient("https://shop.example.com")

	assert.False(t, client.debug)

	client.SetDebug(true)
	assert.True(t, client.debug)

	client.SetDebug(false)
	assert.False(t, client.debug)
}

func TestExponentialBackoff(t *testing.T) {
	tests := []struct {
		attempt  int
		expected time.Duration
	}{
		{1, 500 * time.Millisecond},
		{2, 1000 * time.Millisecond},
		{3, 2000 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run("", func(t *testing.T) {
			result := exponentialBackoff(tt.attempt)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestGetProduct_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products/man-oxford-shirt.js", r.URL.Path)

		payload := map[string]interface{}{
			"title":   "Men's Oxford Shirt",
			"handle":  "man-oxford-shirt",
			"type":    "Shirts",
			"vendor":  "FitForm",
			"tags":    []string{"men", "shirts"},
			"options": []string{"Size", "Color"},
			"variants": []map[string]string{
				{"option1": "39", "option2": "White"},
				{"option1": "41", "option2": "White"},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(payload)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	product, err := client.GetProduct(context.Background(), "man-oxford-shirt")

	require.NoError(t, err)
	assert.Equal(t, "Men's Oxford Shirt", product.Title)
	assert.Equal(t, "man-oxford-shirt", product.Handle)
	assert.Equal(t, []string{"Size", "Color"}, product.Options)
	require.Len(t, product.Variants, 2)
	assert.Equal(t, "39", product.Variants[0].Option1)
}

func TestGetProduct_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	product, err := client.GetProduct(context.Background(), "no-such-product")

	assert.Nil(t, product)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestGetProduct_EmptyHandle(t *testing.T) {
	client := NewClient("https://shop.example.com")

	product, err := client.GetProduct(context.Background(), "")

	assert.Nil(t, product)
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
}

func TestGetProduct_RetriesServerError(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"title":  "Pleated Trousers",
			"handle": "pleated-trousers",
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	product, err := client.GetProduct(context.Background(), "pleated-trousers")

	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
	assert.Equal(t, "Pleated Trousers", product.Title)
}

func TestGetProduct_GivesUpAfterRetries(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	product, err := client.GetProduct(context.Background(), "pleated-trousers")

	assert.Nil(t, product)
	assert.ErrorIs(t, err, domain.ErrStorefrontAPIFailure)
}

func TestGetProduct_MalformedPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	product, err := client.GetProduct(context.Background(), "pleated-trousers")

	assert.Nil(t, product)
	assert.Error(t, err)
}
