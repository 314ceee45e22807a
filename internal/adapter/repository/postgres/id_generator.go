package postgres

import "github.com/oklog/ulid/v2"

// ULIDGenerator issues transaction IDs. ULIDs sort lexicographically in
// creation order, which the postgres store relies on as the tiebreak for
// records sharing a received_at timestamp.
type ULIDGenerator struct{}

// NewULIDGenerator creates a new ULIDGenerator.
func NewULIDGenerator() *ULIDGenerator {
	return &ULIDGenerator{}
}

// Generate returns a fresh ULID string.
func (g *ULIDGenerator) Generate() string {
	return ulid.Make().String()
}
