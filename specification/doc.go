// Package specification describes queries over Bun models as immutable
// values (filter, includes, ordering, paging, projection) and translates
// them into lazy Bun select queries.
package specification
