package regex

import "github.com/google/uuid"

// token is the opaque, pointer-like state identity the translator mints
// for every NFA fragment it builds. Two tokens are equal iff they are
// the same freshly generated UUID;
// uuid.New() draws from a cryptographically random source, so tokens
// minted anywhere — even across concurrent compilations — are distinct
// without needing a shared, atomically-guarded counter.
type token = uuid.UUID

func newToken() token {
	return uuid.New()
}
