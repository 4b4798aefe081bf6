package pagination

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/rshade/shelfview/internal/catalog"
	"github.com/rshade/shelfview/internal/engine"
)

func sampleProducts(n int) []catalog.Product {
	out := make([]catalog.Product, n)
	for i := range out {
		out[i] = catalog.Product{ID: i + 1, Title: fmt.Sprintf("Product %02d", i+1), Price: float64(i%7) + 1}
	}
	return out
}

func TestPaginationParams_Validate(t *testing.T) {
	tests := []struct {
		name    string
		params  PaginationParams
		wantErr error
	}{
		{name: "valid default", params: *NewPaginationParams(10)},
		{name: "valid with sort", params: PaginationParams{Page: 3, PageSize: 5, Sort: "price:desc"}},
		{name: "page zero", params: PaginationParams{Page: 0, PageSize: 10}, wantErr: ErrInvalidPage},
		{name: "negative page", params: PaginationParams{Page: -1, PageSize: 10}, wantErr: ErrInvalidPage},
		{name: "page-size zero", params: PaginationParams{Page: 1, PageSize: 0}, wantErr: ErrInvalidPageSize},
		{name: "page-size too large", params: PaginationParams{Page: 1, PageSize: MaxPageSize + 1}, wantErr: ErrInvalidPageSize},
		{name: "bad sort field", params: PaginationParams{Page: 1, PageSize: 10, Sort: "rating"}, wantErr: ErrInvalidSortField},
		{name: "bad sort order", params: PaginationParams{Page: 1, PageSize: 10, Sort: "title:up"}, wantErr: ErrInvalidSortOrder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParseSort(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    engine.SortConfig
		wantErr error
	}{
		{name: "empty keeps upstream order", input: "", want: engine.DefaultSort()},
		{name: "field only defaults to asc", input: "title",
			want: engine.SortConfig{Column: engine.SortTitle, Direction: engine.Ascending}},
		{name: "explicit desc", input: "price:desc",
			want: engine.SortConfig{Column: engine.SortPrice, Direction: engine.Descending}},
		{name: "case and spaces", input: " Price : DESC ",
			want: engine.SortConfig{Column: engine.SortPrice, Direction: engine.Descending}},
		{name: "none ignores order", input: "none:desc", want: engine.DefaultSort()},
		{name: "too many colons", input: "price:asc:desc", wantErr: ErrInvalidSortFormat},
		{name: "empty field", input: ":asc", wantErr: ErrEmptySortField},
		{name: "unknown field", input: "rating", wantErr: ErrInvalidSortField},
		{name: "empty order", input: "title:", wantErr: ErrInvalidSortOrder},
		{name: "unknown order", input: "title:sideways", wantErr: ErrInvalidSortOrder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSort(tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsValidSortField(t *testing.T) {
	assert.True(t, IsValidSortField("title"))
	assert.True(t, IsValidSortField("PRICE"))
	assert.True(t, IsValidSortField("none"))
	assert.False(t, IsValidSortField(""))
	assert.False(t, IsValidSortField("rating"))
}

func TestPaginationParams_ViewState(t *testing.T) {
	products := sampleProducts(25)

	t.Run("requested page", func(t *testing.T) {
		params := PaginationParams{Page: 2, PageSize: 10}
		state, err := params.ViewState(products, language.English)
		require.NoError(t, err)

		page := state.Page()
		require.Len(t, page.Items, 10)
		assert.Equal(t, 11, page.Items[0].ID)
	})

	t.Run("page past the end clamps", func(t *testing.T) {
		params := PaginationParams{Page: 9, PageSize: 10}
		state, err := params.ViewState(products, language.English)
		require.NoError(t, err)
		assert.Equal(t, 3, state.PageNumber())
		assert.Len(t, state.Page().Items, 5)
	})

	t.Run("search and sort applied", func(t *testing.T) {
		params := PaginationParams{Page: 1, PageSize: 50, Search: "product 1", Sort: "price:desc"}
		state, err := params.ViewState(products, language.English)
		require.NoError(t, err)

		items := state.Page().Items
		require.NotEmpty(t, items)
		for i := 1; i < len(items); i++ {
			assert.GreaterOrEqual(t, items[i-1].Price, items[i].Price)
		}
		for _, p := range items {
			assert.Contains(t, p.Title, "Product 1")
		}
	})

	t.Run("invalid params", func(t *testing.T) {
		params := PaginationParams{Page: 1, PageSize: 10, Sort: "stars"}
		_, err := params.ViewState(products, language.English)
		require.ErrorIs(t, err, ErrInvalidSortField)
	})
}

func TestNewPaginationMeta(t *testing.T) {
	tests := []struct {
		name  string
		state engine.ViewState
		want  PaginationMeta
	}{
		{
			name:  "first of three",
			state: engine.NewViewState(10).Load(sampleProducts(25)),
			want: PaginationMeta{
				CurrentPage: 1, PageSize: 10, TotalPages: 3, TotalItems: 25,
				HasPrevious: false, HasNext: true, Sort: "none",
			},
		},
		{
			name:  "last page sorted",
			state: engine.NewViewState(10).Load(sampleProducts(25)).ToggleSort(engine.SortPrice).GoToPage(3),
			want: PaginationMeta{
				CurrentPage: 3, PageSize: 10, TotalPages: 3, TotalItems: 25,
				HasPrevious: true, HasNext: false, Sort: "price:asc",
			},
		},
		{
			name:  "no matches",
			state: engine.NewViewState(10).Load(sampleProducts(25)).SetSearch("xyz"),
			want: PaginationMeta{
				CurrentPage: 1, PageSize: 10, TotalPages: 1, TotalItems: 0,
				Search: "xyz", Sort: "none",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewPaginationMeta(tt.state))
		})
	}
}
