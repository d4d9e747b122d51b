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

package api

import (
	"context"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/tomoncle/storefront/config"
	"github.com/tomoncle/storefront/database"
	"github.com/tomoncle/storefront/utils"
)

const loggerName = "HTTP"

// HealthReporter reports database health for the health endpoint.
// *database.BaseDatabaseFactory satisfies it.
type HealthReporter interface {
	GetHealthStatus(ctx context.Context) *database.HealthStatus
	GetStats() *database.DBStats
}

// NewRouter builds the gin engine with middleware, the products resource
// under /api and, when health is not nil, GET /api/health.
func NewRouter(newRepo ProductRepositoryFactory, health HealthReporter, cfg config.ServerConfig) *gin.Engine {
	log := utils.NewLogger(loggerName)

	r := gin.New()
	r.Use(RequestID(), RequestLogger(log), Recovery(log))
	if len(cfg.CORSOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:  cfg.CORSOrigins,
			AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", headerRequestID},
			ExposeHeaders: []string{headerLocation, headerTotalCount, headerRequestID},
		}))
	}
	if cfg.RateLimit > 0 {
		r.Use(RateLimit(rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst)))
	}
	r.Use(ErrorHandler(log))

	group := r.Group("/api")
	if health != nil {
		group.GET("/health", healthHandler(health))
	}
	RegisterProductRoutes(group, newRepo)
	return r
}

// RegisterProductRoutes mounts the products endpoints on rg. newRepo is
// called once per request.
func RegisterProductRoutes(rg *gin.RouterGroup, newRepo ProductRepositoryFactory) {
	handle := func(h func(*ProductsController, *gin.Context)) gin.HandlerFunc {
		return func(c *gin.Context) {
			h(NewProductsController(newRepo()), c)
		}
	}

	rg.GET(productsCollection, handle((*ProductsController).GetProducts))
	rg.POST(productsCollection, handle((*ProductsController).CreateProduct))
	rg.GET(productsCollection+"/brands", handle((*ProductsController).GetBrands))
	rg.GET(productsCollection+"/types", handle((*ProductsController).GetTypes))
	rg.GET(productsItemPattern, handle((*ProductsController).GetProduct))
	rg.PUT(productsItemPattern, handle((*ProductsController).UpdateProduct))
	rg.DELETE(productsItemPattern, handle((*ProductsController).DeleteProduct))
}

func healthHandler(health HealthReporter) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := health.GetHealthStatus(c.Request.Context())
		code := http.StatusOK
		if !status.Healthy {
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{"database": status, "pool": health.GetStats()})
	}
}
