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
	"net/http"
	"path"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/uptrace/bun"

	"github.com/tomoncle/storefront/catalog"
	"github.com/tomoncle/storefront/repository"
	"github.com/tomoncle/storefront/specification"
)

const (
	msgProductNotFound  = "product not found"
	msgCannotUpdate     = "Cannot update this product"
	msgProblemCreating  = "Problem creating a product"
	msgProblemUpdating  = "Problem updating the product"
	msgProblemDeleting  = "Problem deleting the product"
	headerTotalCount    = "X-Total-Count"
	headerLocation      = "Location"
	productIDParam      = "id"
	productsCollection  = "/products"
	productsItemPattern = productsCollection + "/:" + productIDParam
)

// ProductRepository is the repository shape the products endpoints need.
type ProductRepository = repository.Repository[catalog.Product, int64]

// ProductRepositoryFactory returns a repository over a fresh session.
type ProductRepositoryFactory func() ProductRepository

// SessionRepositoryFactory builds repositories over a new unit of work on
// db for every call.
func SessionRepositoryFactory(db *bun.DB) ProductRepositoryFactory {
	return func() ProductRepository {
		return repository.NewRepository[catalog.Product, int64](repository.NewSession(db))
	}
}

// ProductsController serves the products resource. One controller is built
// per request around that request's repository.
type ProductsController struct {
	repo ProductRepository
}

func NewProductsController(repo ProductRepository) *ProductsController {
	return &ProductsController{repo: repo}
}

type productListQuery struct {
	Brand     string `form:"brand"`
	Type      string `form:"type"`
	Sort      string `form:"sort"`
	PageIndex int    `form:"pageIndex" binding:"gte=0"`
	PageSize  int    `form:"pageSize" binding:"gte=0"`
}

// GetProducts handles GET /products?brand=&type=&sort=&pageIndex=&pageSize=.
func (pc *ProductsController) GetProducts(c *gin.Context) {
	var q productListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	params := catalog.ProductSpecParams{
		Brand:     q.Brand,
		Type:      q.Type,
		Sort:      q.Sort,
		PageIndex: q.PageIndex,
		PageSize:  q.PageSize,
	}

	products, err := pc.repo.List(c.Request.Context(), catalog.NewProductFilterSortPaginationSpec(params))
	if err != nil {
		_ = c.Error(err)
		return
	}
	if params.PageSize > 0 {
		total, err := pc.repo.Count(c.Request.Context(), catalog.NewProductFilterSpec(params))
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.Header(headerTotalCount, strconv.Itoa(total))
	}
	c.JSON(http.StatusOK, products)
}

// GetProduct handles GET /products/:id.
func (pc *ProductsController) GetProduct(c *gin.Context) {
	id, ok := productID(c)
	if !ok {
		return
	}
	product, err := pc.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": msgProductNotFound})
		return
	}
	c.JSON(http.StatusOK, product)
}

// CreateProduct handles POST /products. The id is always assigned by the
// store; any id in the body is ignored.
func (pc *ProductsController) CreateProduct(c *gin.Context) {
	var product catalog.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	product.ID = 0

	pc.repo.Add(&product)
	saved, err := pc.repo.SaveAll(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	if !saved {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgProblemCreating})
		return
	}
	c.Header(headerLocation, path.Join(c.Request.URL.Path, strconv.FormatInt(product.ID, 10)))
	c.JSON(http.StatusCreated, product)
}

// UpdateProduct handles PUT /products/:id. The body id must equal the path
// id and the product must already exist.
func (pc *ProductsController) UpdateProduct(c *gin.Context) {
	id, ok := productID(c)
	if !ok {
		return
	}
	var product catalog.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if product.ID != id {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgCannotUpdate})
		return
	}
	exists, err := pc.repo.Exists(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if !exists {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgCannotUpdate})
		return
	}

	pc.repo.Update(&product)
	saved, err := pc.repo.SaveAll(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	if !saved {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgProblemUpdating})
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteProduct handles DELETE /products/:id.
func (pc *ProductsController) DeleteProduct(c *gin.Context) {
	id, ok := productID(c)
	if !ok {
		return
	}
	product, err := pc.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": msgProductNotFound})
		return
	}

	pc.repo.Remove(product)
	saved, err := pc.repo.SaveAll(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	if !saved {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgProblemDeleting})
		return
	}
	c.Status(http.StatusNoContent)
}

// GetBrands handles GET /products/brands.
func (pc *ProductsController) GetBrands(c *gin.Context) {
	pc.listFacet(c, catalog.NewBrandListSpec)
}

// GetTypes handles GET /products/types.
func (pc *ProductsController) GetTypes(c *gin.Context) {
	pc.listFacet(c, catalog.NewTypeListSpec)
}

func (pc *ProductsController) listFacet(c *gin.Context, newSpec func() specification.Spec[catalog.Product, string]) {
	values, err := repository.ListSelect(c.Request.Context(), pc.repo, newSpec())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, values)
}

// productID parses the :id segment. Non-integer ids do not name a product,
// so they answer 404 like an unknown id.
func productID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(productIDParam), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": msgProductNotFound})
		return 0, false
	}
	return id, true
}
