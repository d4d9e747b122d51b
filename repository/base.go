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
	"database/sql"
	"errors"
	"fmt"

	"github.com/tomoncle/storefront/specification"

	"github.com/uptrace/bun"
)

type baseRepositoryImpl[T any, ID comparable] struct {
	session *Session
}

// NewRepository returns a generic repository bound to session. The model T
// must be a Bun model whose primary key column is named id.
func NewRepository[T any, ID comparable](session *Session) Repository[T, ID] {
	return &baseRepositoryImpl[T, ID]{session: session}
}

func (r *baseRepositoryImpl[T, ID]) Session() *Session { return r.session }

func (r *baseRepositoryImpl[T, ID]) NewSelect() *bun.SelectQuery { return r.session.db.NewSelect() }

func (r *baseRepositoryImpl[T, ID]) GetByID(ctx context.Context, id ID) (*T, error) {
	entity := new(T)
	err := r.NewSelect().Model(entity).Where("?TableAlias.id = ?", id).Limit(1).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return entity, nil
}

func (r *baseRepositoryImpl[T, ID]) ListAll(ctx context.Context) ([]*T, error) {
	entities := make([]*T, 0)
	if err := r.NewSelect().Model(&entities).Scan(ctx); err != nil {
		return nil, err
	}
	return entities, nil
}

func (r *baseRepositoryImpl[T, ID]) GetEntityWithSpec(ctx context.Context, spec specification.Spec[T, T]) (*T, error) {
	var entities []*T
	query := specification.GetQuery(r.NewSelect().Model(&entities), spec)
	if !spec.IsPagingEnabled() {
		query = query.Limit(2)
	}
	if err := query.Scan(ctx); err != nil {
		return nil, err
	}
	switch len(entities) {
	case 0:
		return nil, nil
	case 1:
		return entities[0], nil
	default:
		if r.session.logger != nil {
			r.session.logger.Warn("Specification matched more than one entity", "model", fmt.Sprintf("%T", (*T)(nil)))
		}
		return nil, nil
	}
}

func (r *baseRepositoryImpl[T, ID]) List(ctx context.Context, spec specification.Spec[T, T]) ([]*T, error) {
	entities := make([]*T, 0)
	if err := specification.GetQuery(r.NewSelect().Model(&entities), spec).Scan(ctx); err != nil {
		return nil, err
	}
	if entities == nil {
		entities = make([]*T, 0)
	}
	return entities, nil
}

func (r *baseRepositoryImpl[T, ID]) Count(ctx context.Context, spec specification.Spec[T, T]) (int, error) {
	return specification.GetCountQuery(r.NewSelect().Model((*T)(nil)), spec).Count(ctx)
}

func (r *baseRepositoryImpl[T, ID]) Exists(ctx context.Context, id ID) (bool, error) {
	return r.NewSelect().Model((*T)(nil)).Where("?TableAlias.id = ?", id).Exists(ctx)
}

func (r *baseRepositoryImpl[T, ID]) Add(entity *T) { r.session.stage(changeInsert, entity) }

func (r *baseRepositoryImpl[T, ID]) Update(entity *T) { r.session.stage(changeUpdate, entity) }

func (r *baseRepositoryImpl[T, ID]) Remove(entity *T) { r.session.stage(changeDelete, entity) }

func (r *baseRepositoryImpl[T, ID]) SaveAll(ctx context.Context) (bool, error) {
	affected, err := r.session.SaveChanges(ctx)
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// ListSelect runs a projecting specification and returns the selected
// column values. It is a function because methods cannot declare the extra
// result type parameter.
func ListSelect[T any, R any, ID comparable](ctx context.Context, repo Repository[T, ID], spec specification.Spec[T, R]) ([]R, error) {
	if spec.Selector() == nil {
		return nil, fmt.Errorf("specification for %T has no selector", (*T)(nil))
	}
	values := make([]R, 0)
	query := specification.GetQuery(repo.NewSelect().Model((*T)(nil)), spec)
	if err := query.Scan(ctx, &values); err != nil {
		return nil, err
	}
	if values == nil {
		values = make([]R, 0)
	}
	return values, nil
}
