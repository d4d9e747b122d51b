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
	"strings"
)

// MaxPageSize caps the number of rows a single page may request.
const MaxPageSize = 50

// MaxOffset caps GetOffset; pages beyond it are empty.
const MaxOffset = math.MaxInt32

// QueryFilter describes a WHERE clause schema and its argument values.
type QueryFilter struct {
	Schema string
	Args   []interface{}
}

// NewQueryFilter creates a new query filter with schema and args.
func NewQueryFilter(schema string, args ...interface{}) *QueryFilter {
	return &QueryFilter{schema, args}
}

// And joins the non-nil filters with logical AND. It returns nil when no
// filter remains, which callers treat as "match everything".
func And(filters ...*QueryFilter) *QueryFilter {
	kept := make([]*QueryFilter, 0, len(filters))
	for _, f := range filters {
		if f == nil || strings.TrimSpace(f.Schema) == "" {
			continue
		}
		kept = append(kept, f)
	}
	switch len(kept) {
	case 0:
		return nil
	case 1:
		return NewQueryFilter(kept[0].Schema, kept[0].Args...)
	}
	parts := make([]string, 0, len(kept))
	args := make([]interface{}, 0)
	for _, f := range kept {
		parts = append(parts, "("+f.Schema+")")
		args = append(args, f.Args...)
	}
	return &QueryFilter{Schema: strings.Join(parts, " AND "), Args: args}
}

// PageRequest describes a 1-based page index and a page size.
type PageRequest struct {
	page     int
	pageSize int
}

func (p *PageRequest) GetPageSize() int {
	if p.pageSize < 1 {
		p.pageSize = 10
	}
	if p.pageSize > MaxPageSize {
		p.pageSize = MaxPageSize
	}
	return p.pageSize
}

func (p *PageRequest) GetPage() int {
	if p.page < 1 {
		p.page = 1
	}
	return p.page
}

// GetOffset returns the number of rows to skip before the page starts,
// never more than MaxOffset.
func (p *PageRequest) GetOffset() int {
	size := p.GetPageSize()
	if p.GetPage()-1 > MaxOffset/size {
		return MaxOffset
	}
	return (p.GetPage() - 1) * size
}

// NewPageRequest constructs a PageRequest.
func NewPageRequest(page int, pageSize int) *PageRequest {
	return &PageRequest{page, pageSize}
}
