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
	"github.com/tomoncle/storefront/types"
)

// SortOrder is the sort token accepted by the product listing.
type SortOrder int

const (
	SortByName SortOrder = iota
	SortByPriceAsc
	SortByPriceDesc
)

var sortOrders = []SortOrder{SortByName, SortByPriceAsc, SortByPriceDesc}

var _ types.BaseEnum = SortByName

// ParseSortOrder maps a query-string token to a SortOrder. Tokens are
// case-sensitive; unknown and empty tokens sort by name.
func ParseSortOrder(token string) SortOrder {
	return types.ParseEnum(token, sortOrders, SortByName)
}

func (s SortOrder) IsValid() bool { return s >= SortByName && s <= SortByPriceDesc }

func (s SortOrder) Number() int {
	if !s.IsValid() {
		return types.IllegalValue
	}
	return int(s)
}

func (s SortOrder) String() string { return s.Name() }

func (s SortOrder) Name() string {
	switch s {
	case SortByName:
		return "name"
	case SortByPriceAsc:
		return "priceAsc"
	case SortByPriceDesc:
		return "priceDesc"
	default:
		return "unknown"
	}
}

func (s SortOrder) Desc() string {
	switch s {
	case SortByName:
		return "name ascending"
	case SortByPriceAsc:
		return "price ascending"
	case SortByPriceDesc:
		return "price descending"
	default:
		return "unknown"
	}
}
