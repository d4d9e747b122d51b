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
	"bytes"
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/uptrace/bun"
)

type recordingLogger struct {
	warnings []string
}

func (l *recordingLogger) SetLevel(LogLevel)                 {}
func (l *recordingLogger) Debug(string, ...interface{})      {}
func (l *recordingLogger) Info(string, ...interface{})       {}
func (l *recordingLogger) Error(string, ...interface{})      {}
func (l *recordingLogger) Warn(msg string, _ ...interface{}) { l.warnings = append(l.warnings, msg) }

func event(query string, started time.Time, err error) *bun.QueryEvent {
	return &bun.QueryEvent{Query: query, StartTime: started, Err: err}
}

func TestQueryHook(t *testing.T) {
	var buf bytes.Buffer
	hook := NewQueryHook(&buf, true, "")
	ctx := context.Background()

	hook.AfterQuery(ctx, event(`SELECT * FROM "products"`, time.Now(), nil))
	assert.Contains(t, buf.String(), `SELECT * FROM "products"`)

	buf.Reset()
	hook.AfterQuery(ctx, event(`SELECT 1`, time.Now(), sql.ErrNoRows))
	assert.Empty(t, buf.String())

	hook.AfterQuery(ctx, event(`INSERT INTO x`, time.Now(), errors.New("no such table: x")))
	assert.Contains(t, buf.String(), "no such table: x")

	buf.Reset()
	EnableBunSqlSilent(true)
	hook.AfterQuery(ctx, event(`SELECT 2`, time.Now(), nil))
	EnableBunSqlSilent(false)
	assert.Empty(t, buf.String())

	disabled := NewQueryHook(&buf, false, "")
	disabled.AfterQuery(ctx, event(`SELECT 3`, time.Now(), nil))
	assert.Empty(t, buf.String())
}

func TestQueryHook_EnvOverride(t *testing.T) {
	var buf bytes.Buffer
	t.Setenv("STOREFRONT_TEST_BUNDEBUG", "0")
	hook := NewQueryHook(&buf, true, "STOREFRONT_TEST_BUNDEBUG")

	hook.AfterQuery(context.Background(), event(`SELECT 1`, time.Now(), nil))
	assert.Empty(t, buf.String())
}

func TestSlowQueryHook(t *testing.T) {
	logger := &recordingLogger{}
	hook := NewSlowQueryHook(50*time.Millisecond, logger)
	ctx := context.Background()

	hook.AfterQuery(ctx, event(`SELECT fast`, time.Now(), nil))
	hook.AfterQuery(ctx, event(`SELECT failed`, time.Now().Add(-time.Second), errors.New("boom")))
	assert.Empty(t, logger.warnings)

	hook.AfterQuery(ctx, event(`SELECT slow`, time.Now().Add(-time.Second), nil))
	assert.Equal(t, []string{"Database slow query detected"}, logger.warnings)
}
