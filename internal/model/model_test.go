package model

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryRef_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected CategoryRef
	}{
		{
			name:     "Bare id string",
			input:    `{"_id": "p1", "name": "Tea", "price": 100, "category": "cat-1"}`,
			expected: CategoryRef{ID: "cat-1"},
		},
		{
			name:     "Populated object",
			input:    `{"_id": "p1", "name": "Tea", "price": 100, "category": {"_id": "cat-1", "name": "Drinks"}}`,
			expected: CategoryRef{ID: "cat-1", Name: "Drinks"},
		},
		{
			name:     "Missing category",
			input:    `{"_id": "p1", "name": "Tea", "price": 100}`,
			expected: CategoryRef{},
		},
		{
			name:     "Null category",
			input:    `{"_id": "p1", "name": "Tea", "price": 100, "category": null}`,
			expected: CategoryRef{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var product Product
			require.NoError(t, json.Unmarshal([]byte(tt.input), &product))
			assert.Equal(t, tt.expected, product.Category)
		})
	}
}

func TestCategoryRef_MarshalRoundTrip(t *testing.T) {
	original := Product{ID: "p1", Name: "Tea", Price: 100, Category: CategoryRef{ID: "cat-1"}}

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded Product
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, original.Category, decoded.Category)
}

func TestCodeOf(t *testing.T) {
	err := NewDomainError(ErrCodeEmptyCart, "Cart is empty")

	assert.Equal(t, ErrCodeEmptyCart, CodeOf(err))
	assert.Equal(t, ErrCodeEmptyCart, CodeOf(fmt.Errorf("place order: %w", err)))
	assert.Empty(t, CodeOf(fmt.Errorf("plain error")))
	assert.Empty(t, CodeOf(nil))
}

func TestProduct_FirstImageURL(t *testing.T) {
	withImages := Product{Images: []Image{{URL: "https://cdn.example.com/a.jpg"}, {URL: "https://cdn.example.com/b.jpg"}}}
	assert.Equal(t, "https://cdn.example.com/a.jpg", withImages.FirstImageURL())

	var bare Product
	assert.Empty(t, bare.FirstImageURL())
}
