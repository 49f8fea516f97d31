package ids

import "github.com/google/uuid"

// New returns a fresh opaque record id. IDs are never reused or mutated
// once assigned to a record.
func New() string {
	return uuid.NewString()
}
