// Package domain contains the core domain model for seqtools.
//
// The domain is I/O-agnostic: it does not depend on stream parsing,
// compression, or the terminal. Infra/adapters map into/from these types.
package domain
