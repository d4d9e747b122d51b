// Package repository provides a generic, specification-driven repository
// over Bun with a per-request unit of work for staged inserts, updates and
// deletes.
package repository
