// Package storage persists domain collections as one JSON document per
// domain. Stores are interface-driven so domain services stay testable with
// an in-memory fake instead of touching disk.
package storage

import "context"

// Store loads and saves whole collection documents by domain name.
type Store interface {
	// Load decodes the document stored under name into v. It returns
	// found=false (and no error) when nothing is stored yet — absence
	// triggers generation, it is not a failure. A document that exists but
	// does not decode is a CodeCorruptData error.
	Load(ctx context.Context, name string, v any) (bool, error)

	// Save fully overwrites the document stored under name with v. There is
	// no partial update; callers rewrite the entire collection.
	Save(ctx context.Context, name string, v any) error
}
