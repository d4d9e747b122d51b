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

package specification

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomoncle/storefront/types"
)

type gadget struct {
	ID   int64
	Name string
}

func TestNew_MatchAll(t *testing.T) {
	spec := New[gadget, gadget](nil).Build()

	assert.Nil(t, spec.Criteria())
	assert.Empty(t, spec.Includes())
	assert.Empty(t, spec.OrderBy())
	assert.Empty(t, spec.OrderByDescending())
	assert.False(t, spec.IsPagingEnabled())
	assert.Nil(t, spec.Selector())
}

func TestBuilder_OrderingLastCallWins(t *testing.T) {
	spec := New[gadget, gadget](nil).ApplyOrderBy("name").ApplyOrderByDescending("price").Build()
	assert.Empty(t, spec.OrderBy())
	assert.Equal(t, "price", spec.OrderByDescending())

	spec = New[gadget, gadget](nil).ApplyOrderByDescending("price").ApplyOrderBy("name").Build()
	assert.Equal(t, "name", spec.OrderBy())
	assert.Empty(t, spec.OrderByDescending())
}

func TestBuilder_Paging(t *testing.T) {
	spec := New[gadget, gadget](nil).ApplyPaging(-3, 5).Build()

	assert.True(t, spec.IsPagingEnabled())
	assert.Equal(t, 0, spec.Skip())
	assert.Equal(t, 5, spec.Take())

	spec = New[gadget, gadget](nil).ApplyPaging(2, -4).Build()
	assert.True(t, spec.IsPagingEnabled())
	assert.Equal(t, 0, spec.Take())
}

func TestBuild_SnapshotIsIndependent(t *testing.T) {
	b := New[gadget, string](types.NewQueryFilter("name = ?", "a")).
		AddInclude("Maker").
		ApplySelect(Selector{Column: "name"})
	first := b.Build()

	b.AddInclude("Parts").ApplySelect(Selector{Column: "kind", Distinct: true}).ApplyPaging(1, 1)

	assert.Equal(t, []string{"Maker"}, first.Includes())
	require.NotNil(t, first.Selector())
	assert.Equal(t, Selector{Column: "name"}, *first.Selector())
	assert.False(t, first.IsPagingEnabled())

	second := b.Build()
	assert.Equal(t, []string{"Maker", "Parts"}, second.Includes())
	assert.Equal(t, Selector{Column: "kind", Distinct: true}, *second.Selector())
}

func TestSpec_AccessorsReturnCopies(t *testing.T) {
	spec := New[gadget, string](types.NewQueryFilter("name = ?", "a")).
		AddInclude("Maker").
		ApplySelect(Selector{Column: "name"}).
		Build()

	spec.Includes()[0] = "Other"
	spec.Selector().Column = "other"
	spec.Criteria().Args[0] = "b"

	assert.Equal(t, []string{"Maker"}, spec.Includes())
	assert.Equal(t, "name", spec.Selector().Column)
	assert.Equal(t, []interface{}{"a"}, spec.Criteria().Args)
}
