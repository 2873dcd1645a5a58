// Package domain contains the entity types and shared error values used
// across all layers. Entities are passive records constructed from upstream
// API responses on each request; the package holds no infrastructure
// concerns and imports nothing outside the standard library.
package domain
