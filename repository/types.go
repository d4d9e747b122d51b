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

package repository

import (
	"context"

	"github.com/tomoncle/storefront/specification"

	"github.com/uptrace/bun"
)

// ReadRepository defines point lookups and specification-driven reads.
type ReadRepository[T any, ID comparable] interface {
	// GetByID returns nil without an error when no entity has the id.
	GetByID(ctx context.Context, id ID) (*T, error)

	ListAll(ctx context.Context) ([]*T, error)

	// GetEntityWithSpec returns the only entity matching spec. It returns
	// nil when none or several match; specs used here must be selective.
	GetEntityWithSpec(ctx context.Context, spec specification.Spec[T, T]) (*T, error)

	List(ctx context.Context, spec specification.Spec[T, T]) ([]*T, error)

	// Count reports how many entities satisfy the criteria of spec,
	// ignoring its ordering and paging.
	Count(ctx context.Context, spec specification.Spec[T, T]) (int, error)

	Exists(ctx context.Context, id ID) (bool, error)
}

// WriteRepository stages changes in the session; nothing reaches the store
// until SaveAll.
type WriteRepository[T any] interface {
	Add(entity *T)
	Update(entity *T)
	Remove(entity *T)

	// SaveAll commits the session and reports whether any row changed.
	SaveAll(ctx context.Context) (bool, error)
}

// Repository combines reads and staged writes and exposes the Bun select
// builder used for projections.
type Repository[T any, ID comparable] interface {
	ReadRepository[T, ID]
	WriteRepository[T]
	Session() *Session
	NewSelect() *bun.SelectQuery
}
