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
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"

	"github.com/tomoncle/storefront/internal/testdb"
	"github.com/tomoncle/storefront/types"
)

type maker struct {
	bun.BaseModel `bun:"table:makers,alias:m"`

	ID   int64  `bun:"id,pk,autoincrement"`
	Name string `bun:"name"`
}

type widget struct {
	bun.BaseModel `bun:"table:widgets,alias:w"`

	ID      int64  `bun:"id,pk,autoincrement"`
	Name    string `bun:"name"`
	Kind    string `bun:"kind"`
	Score   int    `bun:"score"`
	MakerID int64  `bun:"maker_id"`
	Maker   *maker `bun:"rel:belongs-to,join:maker_id=id"`
}

func seedWidgets(t *testing.T) *bun.DB {
	t.Helper()
	db := testdb.Open(t, (*maker)(nil), (*widget)(nil))
	ctx := context.Background()

	makers := []*maker{{Name: "acme"}, {Name: "globex"}}
	_, err := db.NewInsert().Model(&makers).Exec(ctx)
	require.NoError(t, err)

	widgets := []*widget{
		{Name: "delta", Kind: "gear", Score: 4, MakerID: makers[0].ID},
		{Name: "alpha", Kind: "gear", Score: 2, MakerID: makers[1].ID},
		{Name: "charlie", Kind: "spring", Score: 9, MakerID: makers[0].ID},
		{Name: "bravo", Kind: "gear", Score: 7, MakerID: makers[1].ID},
		{Name: "echo", Kind: "lever", Score: 1, MakerID: makers[0].ID},
	}
	_, err = db.NewInsert().Model(&widgets).Exec(ctx)
	require.NoError(t, err)
	return db
}

func names(ws []*widget) []string {
	out := make([]string, 0, len(ws))
	for _, w := range ws {
		out = append(out, w.Name)
	}
	return out
}

func TestGetQuery_IsLazy(t *testing.T) {
	db := seedWidgets(t)
	spec := New[widget, widget](types.NewQueryFilter("?TableAlias.kind = ?", "gear")).
		ApplyOrderBy("name").
		ApplyPaging(1, 2).
		Build()

	var ws []*widget
	query := GetQuery(db.NewSelect().Model(&ws), spec)
	assert.Empty(t, ws)

	sql := query.String()
	assert.Contains(t, sql, `WHERE ("w"."kind" = 'gear')`)
	assert.Contains(t, sql, `ORDER BY "w"."name" ASC`)
	assert.Contains(t, sql, "LIMIT 2")
	assert.Contains(t, sql, "OFFSET 1")
}

func TestGetQuery_FilterSortPage(t *testing.T) {
	db := seedWidgets(t)
	ctx := context.Background()
	gears := types.NewQueryFilter("?TableAlias.kind = ?", "gear")

	tests := []struct {
		name string
		spec Spec[widget, widget]
		want []string
	}{
		{
			name: "no criteria returns everything",
			spec: New[widget, widget](nil).ApplyOrderBy("name").Build(),
			want: []string{"alpha", "bravo", "charlie", "delta", "echo"},
		},
		{
			name: "criteria ascending",
			spec: New[widget, widget](gears).ApplyOrderBy("score").Build(),
			want: []string{"alpha", "delta", "bravo"},
		},
		{
			name: "criteria descending",
			spec: New[widget, widget](gears).ApplyOrderByDescending("score").Build(),
			want: []string{"bravo", "delta", "alpha"},
		},
		{
			name: "paging skips then takes",
			spec: New[widget, widget](nil).ApplyOrderBy("name").ApplyPaging(1, 3).Build(),
			want: []string{"bravo", "charlie", "delta"},
		},
		{
			name: "page past the end",
			spec: New[widget, widget](nil).ApplyOrderBy("name").ApplyPaging(10, 3).Build(),
			want: []string{},
		},
		{
			name: "zero take is empty",
			spec: New[widget, widget](nil).ApplyOrderBy("name").ApplyPaging(0, 0).Build(),
			want: []string{},
		},
		{
			name: "zero take after skip is empty",
			spec: New[widget, widget](gears).ApplyOrderBy("name").ApplyPaging(1, 0).Build(),
			want: []string{},
		},
		{
			name: "negative take is empty",
			spec: New[widget, widget](nil).ApplyPaging(0, -1).Build(),
			want: []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ws := make([]*widget, 0)
			require.NoError(t, GetQuery(db.NewSelect().Model(&ws), tt.spec).Scan(ctx))
			assert.Equal(t, tt.want, names(ws))
		})
	}
}

func TestGetQuery_Includes(t *testing.T) {
	db := seedWidgets(t)
	spec := New[widget, widget](types.NewQueryFilter("?TableAlias.name = ?", "alpha")).
		AddInclude("Maker").
		Build()

	var ws []*widget
	require.NoError(t, GetQuery(db.NewSelect().Model(&ws), spec).Scan(context.Background()))
	require.Len(t, ws, 1)
	require.NotNil(t, ws[0].Maker)
	assert.Equal(t, "globex", ws[0].Maker.Name)
}

func TestGetQuery_SelectorDistinctSorted(t *testing.T) {
	db := seedWidgets(t)
	spec := New[widget, string](nil).
		AddInclude("Maker").
		ApplySelect(Selector{Column: "kind", Distinct: true}).
		ApplyOrderBy("kind").
		Build()

	query := GetQuery(db.NewSelect().Model((*widget)(nil)), spec)
	assert.NotContains(t, query.String(), "JOIN")

	var kinds []string
	require.NoError(t, query.Scan(context.Background(), &kinds))
	assert.Equal(t, []string{"gear", "lever", "spring"}, kinds)
}

func TestGetQuery_ZeroTakeProjection(t *testing.T) {
	db := seedWidgets(t)
	spec := New[widget, string](nil).
		ApplySelect(Selector{Column: "kind", Distinct: true}).
		ApplyOrderBy("kind").
		ApplyPaging(1, 0).
		Build()

	kinds := make([]string, 0)
	require.NoError(t, GetQuery(db.NewSelect().Model((*widget)(nil)), spec).Scan(context.Background(), &kinds))
	assert.Empty(t, kinds)
}

func TestGetCountQuery_IgnoresPaging(t *testing.T) {
	db := seedWidgets(t)
	spec := New[widget, widget](types.NewQueryFilter("?TableAlias.kind = ?", "gear")).
		ApplyOrderBy("name").
		ApplyPaging(0, 1).
		Build()

	n, err := GetCountQuery(db.NewSelect().Model((*widget)(nil)), spec).Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}
