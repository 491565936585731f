// Package usecase implements the seqtools commands as pure functions over
// the record stream ports. Every command is a single streaming pass; only
// the viewer materializes records, and it lives elsewhere.
package usecase
