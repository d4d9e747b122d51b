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
	"github.com/uptrace/bun"
)

// GetQuery applies spec to base and returns the resulting select query
// without executing it. base must already carry the model (or destination)
// of T. Steps run in a fixed order: criteria, includes, ascending order,
// descending order, paging, projection.
func GetQuery[T any, R any](base *bun.SelectQuery, spec Spec[T, R]) *bun.SelectQuery {
	q := base

	if spec.criteria != nil {
		q = q.Where(spec.criteria.Schema, spec.criteria.Args...)
	}

	// includes only make sense before a projection
	if spec.selector == nil {
		for _, relation := range spec.includes {
			q = q.Relation(relation)
		}
	}

	if spec.orderBy != "" {
		q = q.OrderExpr("?TableAlias.? ASC", bun.Ident(spec.orderBy))
	}
	if spec.orderByDescending != "" {
		q = q.OrderExpr("?TableAlias.? DESC", bun.Ident(spec.orderByDescending))
	}

	if spec.pagingEnabled {
		if spec.take > 0 {
			q = q.Offset(spec.skip).Limit(spec.take)
		} else {
			// bun drops LIMIT 0
			q = q.Where("1 = 0")
		}
	}

	if sel := spec.selector; sel != nil {
		if sel.Distinct {
			q = q.Distinct()
		}
		q = q.ColumnExpr("?TableAlias.?", bun.Ident(sel.Column))
	}
	return q
}

// GetCountQuery applies only the criteria of spec, for counting matches
// regardless of ordering and paging.
func GetCountQuery[T any, R any](base *bun.SelectQuery, spec Spec[T, R]) *bun.SelectQuery {
	if spec.criteria == nil {
		return base
	}
	return base.Where(spec.criteria.Schema, spec.criteria.Args...)
}
