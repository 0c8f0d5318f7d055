package generation_test

import (
	"errors"
	"testing"

	"github.com/phrazzld/catalog-forge/internal/generation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProduct(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     string
		want    *generation.ParsedProduct
		wantErr bool
	}{
		{
			name: "valid response",
			raw:  `{"title": "Walnut Desk Organizer", "description": "A handmade organizer.", "price": "34.50"}`,
			want: &generation.ParsedProduct{
				Title:       "Walnut Desk Organizer",
				Description: "A handmade organizer.",
				Price:       "34.50",
			},
		},
		{
			name: "json wrapped in markdown fences",
			raw:  "```json\n{\"title\": \"Brass Hook\", \"description\": \"Wall hook.\", \"price\": \"9.99\"}\n```",
			want: &generation.ParsedProduct{
				Title:       "Brass Hook",
				Description: "Wall hook.",
				Price:       "9.99",
			},
		},
		{
			name: "bare fences without language tag",
			raw:  "```\n{\"title\": \"Brass Hook\", \"description\": \"Wall hook.\", \"price\": \"9.99\"}\n```",
			want: &generation.ParsedProduct{
				Title:       "Brass Hook",
				Description: "Wall hook.",
				Price:       "9.99",
			},
		},
		{
			name:    "malformed json",
			raw:     `{"title": "Broken`,
			wantErr: true,
		},
		{
			name:    "missing title",
			raw:     `{"description": "No title here.", "price": "1.00"}`,
			wantErr: true,
		},
		{
			name:    "missing description",
			raw:     `{"title": "Lamp", "price": "1.00"}`,
			wantErr: true,
		},
		{
			name:    "missing price",
			raw:     `{"title": "Lamp", "description": "A lamp."}`,
			wantErr: true,
		},
		{
			name:    "empty response",
			raw:     "   \n  ",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := generation.ParseProduct(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, generation.ErrInvalidResponse),
					"error should wrap ErrInvalidResponse, got %v", err)
				assert.Nil(t, got)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Re-parsing the same raw response must yield the same candidate or the same
// failure; the parser holds no state between calls.
func TestParseProductIdempotent(t *testing.T) {
	t.Parallel()

	valid := `{"title": "Ceramic Mug", "description": "A mug.", "price": "12.00"}`
	first, err1 := generation.ParseProduct(valid)
	second, err2 := generation.ParseProduct(valid)
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, first, second)

	invalid := `{"title": }`
	_, err1 = generation.ParseProduct(invalid)
	_, err2 = generation.ParseProduct(invalid)
	require.Error(t, err1)
	require.Error(t, err2)
	assert.Equal(t, err1.Error(), err2.Error())
}

func TestParseNameList(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     string
		want    []string
		wantErr bool
	}{
		{
			name: "valid list",
			raw:  `["Acme Goods", "Birch & Sons"]`,
			want: []string{"Acme Goods", "Birch & Sons"},
		},
		{
			name: "fenced list",
			raw:  "```json\n[\"Acme Goods\"]\n```",
			want: []string{"Acme Goods"},
		},
		{
			name:    "empty list",
			raw:     `[]`,
			wantErr: true,
		},
		{
			name:    "blank entry",
			raw:     `["Acme Goods", "  "]`,
			wantErr: true,
		},
		{
			name:    "not an array",
			raw:     `{"names": ["Acme"]}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := generation.ParseNameList(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, generation.ErrInvalidResponse))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
