// Package storage archives simulation runs on disk and exports loaded runs
// as JSON.
package storage
