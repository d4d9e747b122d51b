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

package database

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
)

func TestIsSqlError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		is   bool
		want SQLError
	}{
		{"nil", nil, false, UnknownErr},
		{"plain error", errors.New("boom"), false, UnknownErr},
		{"no rows", fmt.Errorf("lookup: %w", sql.ErrNoRows), true, NoRowsErr},
		{"mysql duplicate", &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}, true, DuplicateKeyErr},
		{"mysql missing table", fmt.Errorf("select: %w", &mysql.MySQLError{Number: 1146}), true, NoTableErr},
		{"mysql other", &mysql.MySQLError{Number: 9999}, true, UnknownErr},
		{"postgres unique", errors.New(`ERROR: duplicate key value violates unique constraint "products_pkey" (SQLSTATE 23505)`), true, DuplicateKeyErr},
		{"postgres undefined table", errors.New(`pq: relation "products" does not exist (SQLSTATE 42P01)`), true, NoTableErr},
		{"sqlite unique", errors.New("UNIQUE constraint failed: products.id"), true, DuplicateKeyErr},
		{"sqlite not null", errors.New("NOT NULL constraint failed: products.name"), true, NotNullViolationErr},
		{"sqlite no table", errors.New("no such table: products"), true, NoTableErr},
		{"sqlite locked", errors.New("database is locked"), true, ConnectionErr},
		{"tx done", sql.ErrTxDone, true, ConnectionErr},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			is, kind := IsSqlError(tt.err)
			assert.Equal(t, tt.is, is)
			assert.Equal(t, tt.want, kind)
		})
	}
}

func TestClassifySqlError(t *testing.T) {
	assert.Empty(t, ClassifySqlError(nil))
	assert.Empty(t, ClassifySqlError(errors.New("boom")))
	assert.Equal(t, "duplicate_key", ClassifySqlError(errors.New("UNIQUE constraint failed: products.id")))
	assert.Equal(t, "unknown", SQLError(100).String())
}
