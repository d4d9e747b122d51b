// Package api exposes the product catalog over HTTP with gin. Every request
// gets its own repository session; handlers never share store state.
package api
