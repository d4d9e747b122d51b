// Package database provides connection management, migrations, SQL file
// seeding, configuration types, logging, health checks and SQL error
// classification built on top of Bun.
package database
