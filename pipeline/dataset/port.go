package dataset

import "context"

// Loader reads the candidate tracking export into a Dataset.
//
// Contract: every source row becomes one record in source order; no row is
// dropped for missing or malformed fields; unparseable dates become nil.
// Only a missing source fails the load (CodeDatasetNotFound).
type Loader interface {
	Load(ctx context.Context) (*Dataset, error)
}
