/*
 * Copyright 2025 tomoncle.
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSortOrder(t *testing.T) {
	assert.Equal(t, SortByPriceAsc, ParseSortOrder("priceAsc"))
	assert.Equal(t, SortByPriceDesc, ParseSortOrder("priceDesc"))
	assert.Equal(t, SortByName, ParseSortOrder("PRICEDESC"))
	assert.Equal(t, SortByName, ParseSortOrder(" priceAsc"))
	assert.Equal(t, SortByName, ParseSortOrder(""))
	assert.Equal(t, SortByName, ParseSortOrder("popularity"))
	assert.Equal(t, -1, SortOrder(42).Number())
	assert.False(t, SortOrder(42).IsValid())
}

func TestNewProductFilterSortPaginationSpec(t *testing.T) {
	t.Run("no filter sorts by name", func(t *testing.T) {
		spec := NewProductFilterSortPaginationSpec(ProductSpecParams{})
		assert.Nil(t, spec.Criteria())
		assert.Equal(t, "name", spec.OrderBy())
		assert.Empty(t, spec.OrderByDescending())
		assert.False(t, spec.IsPagingEnabled())
	})

	t.Run("brand and type are combined", func(t *testing.T) {
		spec := NewProductFilterSortPaginationSpec(ProductSpecParams{Brand: "Nike", Type: "Boots", Sort: "priceDesc"})
		require.NotNil(t, spec.Criteria())
		assert.Equal(t, "(?TableAlias.brand = ?) AND (?TableAlias.type = ?)", spec.Criteria().Schema)
		assert.Equal(t, []interface{}{"Nike", "Boots"}, spec.Criteria().Args)
		assert.Equal(t, "price", spec.OrderByDescending())
		assert.Empty(t, spec.OrderBy())
	})

	t.Run("blank brand is ignored", func(t *testing.T) {
		spec := NewProductFilterSortPaginationSpec(ProductSpecParams{Brand: "  ", Type: "Hats", Sort: "priceAsc"})
		require.NotNil(t, spec.Criteria())
		assert.Equal(t, "?TableAlias.type = ?", spec.Criteria().Schema)
		assert.Equal(t, "price", spec.OrderBy())
	})

	t.Run("filters match values as given", func(t *testing.T) {
		spec := NewProductFilterSortPaginationSpec(ProductSpecParams{Brand: " Nike ", Type: "boots"})
		require.NotNil(t, spec.Criteria())
		assert.Equal(t, []interface{}{" Nike ", "boots"}, spec.Criteria().Args)
	})

	t.Run("paging from page index and size", func(t *testing.T) {
		spec := NewProductFilterSortPaginationSpec(ProductSpecParams{PageIndex: 3, PageSize: 6})
		assert.True(t, spec.IsPagingEnabled())
		assert.Equal(t, 12, spec.Skip())
		assert.Equal(t, 6, spec.Take())
	})
}

func TestNewProductFilterSpec_HasNoOrderOrPaging(t *testing.T) {
	spec := NewProductFilterSpec(ProductSpecParams{Brand: "Nike", Sort: "priceAsc", PageSize: 5})
	require.NotNil(t, spec.Criteria())
	assert.Empty(t, spec.OrderBy())
	assert.False(t, spec.IsPagingEnabled())
}

func TestFacetSpecs(t *testing.T) {
	for column, spec := range map[string]interface {
		OrderBy() string
	}{
		"brand": NewBrandListSpec(),
		"type":  NewTypeListSpec(),
	} {
		assert.Equal(t, column, spec.OrderBy())
	}

	brands := NewBrandListSpec()
	require.NotNil(t, brands.Selector())
	assert.Equal(t, "brand", brands.Selector().Column)
	assert.True(t, brands.Selector().Distinct)
	assert.Nil(t, brands.Criteria())
	assert.False(t, brands.IsPagingEnabled())
}
