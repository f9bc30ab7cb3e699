// Package queries contains read-only operations. Handlers read straight from
// the database with gorm, bypassing repositories, and return response types
// shaped for the HTTP layer. Every query carries the calling actor and is
// authorized by services.AccessPolicy before anything is read.
package queries
