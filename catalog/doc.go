// Package catalog holds the product entity and the specifications the
// product endpoints are built from.
package catalog
