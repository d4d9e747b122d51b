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

package catalog

import (
	"github.com/shopspring/decimal"
	"github.com/tomoncle/storefront/database"

	"github.com/uptrace/bun"
)

func init() {
	// prices travel as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true
}

// Product is a catalog item. Its id is assigned by the store on insert.
type Product struct {
	bun.BaseModel `bun:"table:products,alias:p"`

	ID              int64           `bun:"id,pk,autoincrement" json:"id"`
	Name            string          `bun:"name,notnull" json:"name" binding:"required"`
	Description     string          `bun:"description,notnull,default:''" json:"description"`
	Price           decimal.Decimal `bun:"price,type:decimal(18,2),notnull" json:"price"`
	PictureURL      string          `bun:"picture_url,notnull,default:''" json:"pictureUrl"`
	Type            string          `bun:"type,notnull" json:"type" binding:"required"`
	Brand           string          `bun:"brand,notnull" json:"brand" binding:"required"`
	QuantityInStock int             `bun:"quantity_in_stock,notnull,default:0" json:"quantityInStock" binding:"gte=0"`
}

// GetID returns the store-assigned identifier.
func (p *Product) GetID() int64 { return p.ID }

// RegisterModels adds the catalog models to the migration registry.
func RegisterModels() {
	database.RegisteredModel(database.NewModelAdapter((*Product)(nil), 10))
}
