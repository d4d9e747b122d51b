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

// Package storefront wires configuration, the database and the HTTP API
// into a runnable product catalog service.
package storefront

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/tomoncle/storefront/api"
	"github.com/tomoncle/storefront/catalog"
	"github.com/tomoncle/storefront/config"
	"github.com/tomoncle/storefront/database"
	"github.com/tomoncle/storefront/utils"
)

const serviceName = "storefront"

// Service owns the database factory and the HTTP server of one process.
type Service struct {
	cfg     *config.Config
	factory *database.BaseDatabaseFactory
	server  *http.Server
	handler http.Handler
}

// NewService configures logging, opens the database, runs migrations when
// enabled and builds the HTTP handler. Call Close to release the database.
func NewService(ctx context.Context, cfg *config.Config) (*Service, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	utils.ConfigureLogLevel(cfg.Log.Level)
	utils.ConfigureConsoleLogFormat(cfg.Log.Format)
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}

	catalog.RegisterModels()
	factory, err := database.Open(ctx, &cfg.Database)
	if err != nil {
		return nil, err
	}

	router := api.NewRouter(api.SessionRepositoryFactory(factory.GetDB()), factory, cfg.Server)
	return &Service{
		cfg:     cfg,
		factory: factory,
		handler: otelhttp.NewHandler(router, serviceName),
	}, nil
}

// Handler returns the instrumented HTTP handler.
func (s *Service) Handler() http.Handler {
	return s.handler
}

// Run serves HTTP until ctx is done, then shuts the server down gracefully.
func (s *Service) Run(ctx context.Context) error {
	s.server = &http.Server{
		Addr:         s.cfg.Server.Addr,
		Handler:      s.handler,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		utils.NewLogger(serviceName).WithField("addr", s.cfg.Server.Addr).Info("HTTP server listening")
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	timeout := s.cfg.Server.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := s.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown failed: %w", err)
	}
	return nil
}

// Close releases the database connection.
func (s *Service) Close() error {
	return s.factory.Close()
}
