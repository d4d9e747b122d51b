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
	"strings"

	"github.com/tomoncle/storefront/specification"
	"github.com/tomoncle/storefront/types"
)

// ProductSpecParams carries the optional listing parameters of the
// products endpoint. Blank Brand and Type do not filter; other values
// match exactly. Paging is enabled only when PageSize is positive.
type ProductSpecParams struct {
	Brand     string
	Type      string
	Sort      string
	PageIndex int
	PageSize  int
}

func (p ProductSpecParams) criteria() *types.QueryFilter {
	var brand, typ *types.QueryFilter
	if strings.TrimSpace(p.Brand) != "" {
		brand = types.NewQueryFilter("?TableAlias.brand = ?", p.Brand)
	}
	if strings.TrimSpace(p.Type) != "" {
		typ = types.NewQueryFilter("?TableAlias.type = ?", p.Type)
	}
	return types.And(brand, typ)
}

// NewProductFilterSortPaginationSpec matches products by exact brand and
// type, sorts them by the sort token and optionally pages the result.
func NewProductFilterSortPaginationSpec(params ProductSpecParams) specification.Spec[Product, Product] {
	b := specification.New[Product, Product](params.criteria())

	switch ParseSortOrder(params.Sort) {
	case SortByPriceAsc:
		b.ApplyOrderBy("price")
	case SortByPriceDesc:
		b.ApplyOrderByDescending("price")
	default:
		b.ApplyOrderBy("name")
	}

	if params.PageSize > 0 {
		page := types.NewPageRequest(params.PageIndex, params.PageSize)
		b.ApplyPaging(page.GetOffset(), page.GetPageSize())
	}
	return b.Build()
}

// NewProductFilterSpec matches the same products as
// NewProductFilterSortPaginationSpec without ordering or paging.
func NewProductFilterSpec(params ProductSpecParams) specification.Spec[Product, Product] {
	return specification.New[Product, Product](params.criteria()).Build()
}

// NewBrandListSpec selects the distinct brands, sorted ascending.
func NewBrandListSpec() specification.Spec[Product, string] {
	return newFacetSpec("brand")
}

// NewTypeListSpec selects the distinct product types, sorted ascending.
func NewTypeListSpec() specification.Spec[Product, string] {
	return newFacetSpec("type")
}

func newFacetSpec(column string) specification.Spec[Product, string] {
	return specification.New[Product, string](nil).
		ApplySelect(specification.Selector{Column: column, Distinct: true}).
		ApplyOrderBy(column).
		Build()
}
