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

// Package testdb opens throwaway in-memory SQLite databases for tests.
package testdb

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"

	"github.com/tomoncle/storefront/database"
)

// Config returns a database configuration for a private in-memory SQLite
// database. Migrations are enabled and seeding is off.
func Config() *database.Config {
	conn := database.DefaultConnectionConfig()
	conn.DBName = fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	conn.MaxOpenConns = 1
	conn.HealthCheckInterval = 0
	conn.SlowQueryTime = 0
	return &database.Config{
		ConnectionConfig:  *conn,
		DataMigrateConfig: database.DataMigrateConfig{EnableMigrateOnStartup: true},
	}
}

// Open connects to a fresh in-memory database, creates a table for each
// model and closes the database when the test ends.
func Open(t testing.TB, models ...interface{}) *bun.DB {
	t.Helper()

	cfg := Config()
	manager := database.NewDatabaseManager(&cfg.ConnectionConfig)
	require.NoError(t, manager.Connect(context.Background()))
	t.Cleanup(func() { _ = manager.Disconnect() })

	db := manager.GetDB()
	for _, model := range models {
		_, err := db.NewCreateTable().Model(model).IfNotExists().Exec(context.Background())
		require.NoError(t, err)
	}
	return db
}
