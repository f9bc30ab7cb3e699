// Package user holds user profiles, the closed Role enumeration and Actor,
// the authenticated identity every command and query runs as.
package user
