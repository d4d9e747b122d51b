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

package types

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnd(t *testing.T) {
	assert.Nil(t, And())
	assert.Nil(t, And(nil, nil))
	assert.Nil(t, And(NewQueryFilter("   ")))

	single := NewQueryFilter("brand = ?", "Nike")
	got := And(nil, single)
	require.NotNil(t, got)
	assert.Equal(t, "brand = ?", got.Schema)
	assert.Equal(t, []interface{}{"Nike"}, got.Args)
	assert.NotSame(t, single, got)

	got = And(NewQueryFilter("brand = ?", "Nike"), nil, NewQueryFilter("type = ? OR type = ?", "Boots", "Hats"))
	require.NotNil(t, got)
	assert.Equal(t, "(brand = ?) AND (type = ? OR type = ?)", got.Schema)
	assert.Equal(t, []interface{}{"Nike", "Boots", "Hats"}, got.Args)
}

func TestPageRequest(t *testing.T) {
	tests := []struct {
		name       string
		page, size int
		wantPage   int
		wantSize   int
		wantOffset int
	}{
		{name: "defaults", page: 0, size: 0, wantPage: 1, wantSize: 10, wantOffset: 0},
		{name: "second page", page: 2, size: 5, wantPage: 2, wantSize: 5, wantOffset: 5},
		{name: "size capped", page: 3, size: 500, wantPage: 3, wantSize: MaxPageSize, wantOffset: 2 * MaxPageSize},
		{name: "negative page", page: -4, size: 20, wantPage: 1, wantSize: 20, wantOffset: 0},
		{name: "huge page is capped", page: math.MaxInt, size: 10, wantPage: math.MaxInt, wantSize: 10, wantOffset: MaxOffset},
		{name: "last page below the cap", page: MaxOffset/MaxPageSize + 1, size: MaxPageSize, wantPage: MaxOffset/MaxPageSize + 1, wantSize: MaxPageSize, wantOffset: MaxOffset / MaxPageSize * MaxPageSize},
		{name: "first page past the cap", page: MaxOffset/MaxPageSize + 2, size: MaxPageSize, wantPage: MaxOffset/MaxPageSize + 2, wantSize: MaxPageSize, wantOffset: MaxOffset},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPageRequest(tt.page, tt.size)
			assert.Equal(t, tt.wantPage, p.GetPage())
			assert.Equal(t, tt.wantSize, p.GetPageSize())
			assert.Equal(t, tt.wantOffset, p.GetOffset())
		})
	}
}
