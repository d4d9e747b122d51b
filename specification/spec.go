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
	"github.com/tomoncle/storefront/types"
)

// Selector projects an entity onto a single column.
type Selector struct {
	Column   string
	Distinct bool
}

// Spec is a read-only query descriptor over entities of type T whose rows
// are returned as R. R equals T unless a Selector is set.
type Spec[T any, R any] struct {
	criteria          *types.QueryFilter
	includes          []string
	orderBy           string
	orderByDescending string
	skip              int
	take              int
	pagingEnabled     bool
	selector          *Selector
}

// Criteria returns a copy of the filter, or nil when every entity matches.
func (s Spec[T, R]) Criteria() *types.QueryFilter {
	if s.criteria == nil {
		return nil
	}
	return types.NewQueryFilter(s.criteria.Schema, append([]interface{}(nil), s.criteria.Args...)...)
}

// Includes returns the relations to eager-load, in the order they were added.
func (s Spec[T, R]) Includes() []string {
	out := make([]string, len(s.includes))
	copy(out, s.includes)
	return out
}

func (s Spec[T, R]) OrderBy() string { return s.orderBy }

func (s Spec[T, R]) OrderByDescending() string { return s.orderByDescending }

func (s Spec[T, R]) Skip() int { return s.skip }

func (s Spec[T, R]) Take() int { return s.take }

func (s Spec[T, R]) IsPagingEnabled() bool { return s.pagingEnabled }

// Selector returns a copy of the projection, or nil when rows are entities.
func (s Spec[T, R]) Selector() *Selector {
	if s.selector == nil {
		return nil
	}
	sel := *s.selector
	return &sel
}

// Builder assembles a Spec. Factories for a single query intent own a
// Builder, configure it and hand out only the built value.
type Builder[T any, R any] struct {
	spec Spec[T, R]
}

// New starts a specification. A nil criteria matches every entity.
func New[T any, R any](criteria *types.QueryFilter) *Builder[T, R] {
	return &Builder[T, R]{spec: Spec[T, R]{criteria: criteria}}
}

// AddInclude appends a relation to eager-load.
func (b *Builder[T, R]) AddInclude(relation string) *Builder[T, R] {
	b.spec.includes = append(b.spec.includes, relation)
	return b
}

// ApplyOrderBy sorts ascending by column. It replaces any earlier
// ApplyOrderByDescending call.
func (b *Builder[T, R]) ApplyOrderBy(column string) *Builder[T, R] {
	b.spec.orderBy = column
	b.spec.orderByDescending = ""
	return b
}

// ApplyOrderByDescending sorts descending by column. It replaces any earlier
// ApplyOrderBy call.
func (b *Builder[T, R]) ApplyOrderByDescending(column string) *Builder[T, R] {
	b.spec.orderByDescending = column
	b.spec.orderBy = ""
	return b
}

// ApplyPaging windows the result to take rows after skipping skip rows.
// A take of zero or less yields an empty window.
func (b *Builder[T, R]) ApplyPaging(skip, take int) *Builder[T, R] {
	if skip < 0 {
		skip = 0
	}
	if take < 0 {
		take = 0
	}
	b.spec.skip = skip
	b.spec.take = take
	b.spec.pagingEnabled = true
	return b
}

// ApplySelect projects every row onto a single column.
func (b *Builder[T, R]) ApplySelect(selector Selector) *Builder[T, R] {
	b.spec.selector = &selector
	return b
}

// Build returns a snapshot; later builder calls do not affect it.
func (b *Builder[T, R]) Build() Spec[T, R] {
	out := b.spec
	out.includes = b.spec.Includes()
	out.selector = b.spec.Selector()
	out.criteria = b.spec.Criteria()
	return out
}
