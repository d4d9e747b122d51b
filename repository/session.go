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
	"fmt"

	"github.com/tomoncle/storefront/database"

	"github.com/uptrace/bun"
)

type changeKind int

const (
	changeInsert changeKind = iota
	changeUpdate
	changeDelete
)

func (k changeKind) String() string {
	switch k {
	case changeInsert:
		return "insert"
	case changeUpdate:
		return "update"
	case changeDelete:
		return "delete"
	default:
		return "unknown"
	}
}

type pendingChange struct {
	kind  changeKind
	model interface{}
}

func (c pendingChange) exec(ctx context.Context, tx bun.Tx) (sql.Result, error) {
	switch c.kind {
	case changeInsert:
		return tx.NewInsert().Model(c.model).Exec(ctx)
	case changeUpdate:
		return tx.NewUpdate().Model(c.model).WherePK().Exec(ctx)
	case changeDelete:
		return tx.NewDelete().Model(c.model).WherePK().Exec(ctx)
	default:
		return nil, fmt.Errorf("unsupported change kind: %d", c.kind)
	}
}

// Session is the unit of work of a single request. Repositories created
// from the same Session share its pending-change set. A Session must not be
// used from more than one goroutine.
type Session struct {
	db      *bun.DB
	pending []pendingChange
	logger  database.Logger
}

// NewSession opens a unit of work over db. No connection is held until a
// query runs.
func NewSession(db *bun.DB) *Session {
	return &Session{db: db, logger: database.GetLogger()}
}

// DB returns the underlying Bun database.
func (s *Session) DB() *bun.DB { return s.db }

// Pending returns the number of staged changes.
func (s *Session) Pending() int { return len(s.pending) }

func (s *Session) stage(kind changeKind, model interface{}) {
	s.pending = append(s.pending, pendingChange{kind: kind, model: model})
}

// SaveChanges applies every staged change inside one transaction and
// reports the total number of affected rows. On failure the transaction is
// rolled back and the staged changes are kept.
func (s *Session) SaveChanges(ctx context.Context) (int64, error) {
	if len(s.pending) == 0 {
		return 0, nil
	}

	var affected int64
	err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		for _, change := range s.pending {
			res, err := change.exec(ctx, tx)
			if err != nil {
				return fmt.Errorf("%s %T: %w", change.kind, change.model, err)
			}
			n, err := res.RowsAffected()
			if err != nil {
				return fmt.Errorf("%s %T: rows affected: %w", change.kind, change.model, err)
			}
			affected += n
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	if s.logger != nil {
		s.logger.Debug("Pending changes committed", "changes", len(s.pending), "rows_affected", affected)
	}
	s.pending = nil
	return affected, nil
}
