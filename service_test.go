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

package storefront

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomoncle/storefront/config"
	"github.com/tomoncle/storefront/internal/testdb"
)

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Server.Addr = "127.0.0.1:0"
	cfg.Server.Mode = "test"
	cfg.Server.ShutdownTimeout = time.Second
	cfg.Log.Level = "error"
	cfg.Database = *testdb.Config()
	cfg.Database.DataInitConfig.AutoInitOnMigration = true
	cfg.Database.DataInitConfig.Filepath = "configs/sql"
	cfg.Database.DataInitConfig.Environment = "test"
	return cfg
}

func get(t *testing.T, h http.Handler, target string, out interface{}) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	if out != nil {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
	}
	return w
}

func TestService_ServesSeededCatalog(t *testing.T) {
	svc, err := NewService(context.Background(), testConfig())
	require.NoError(t, err)
	t.Cleanup(func() { _ = svc.Close() })
	h := svc.Handler()

	var products []map[string]interface{}
	w := get(t, h, "/api/products", &products)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, products, 18)

	w = get(t, h, "/api/products?brand=React&type=Gloves&sort=priceDesc&pageIndex=1&pageSize=1", &products)
	assert.Equal(t, "2", w.Header().Get("X-Total-Count"))
	require.Len(t, products, 1)
	assert.Equal(t, "Purple React Gloves", products[0]["name"])

	var types []string
	get(t, h, "/api/products/types", &types)
	assert.Equal(t, []string{"Boards", "Boots", "Gloves", "Hats"}, types)

	var health map[string]interface{}
	w = get(t, h, "/api/health", &health)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, health["database"].(map[string]interface{})["healthy"])
}

func TestService_RunStopsOnCancel(t *testing.T) {
	svc, err := NewService(context.Background(), testConfig())
	require.NoError(t, err)
	t.Cleanup(func() { _ = svc.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- svc.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestService_OpenFailure(t *testing.T) {
	cfg := testConfig()
	cfg.Database.ConnectionConfig.Type = "oracle"

	_, err := NewService(context.Background(), cfg)
	assert.ErrorContains(t, err, "unsupported database type")
}
