package core

import (
	"github.com/google/uuid"
)

// ID represents a domain identifier
type ID string

// NewID creates a new unique identifier using UUID v7 for time-ordered generation
func NewID() ID {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to v4 if v7 fails
		id = uuid.New()
	}
	return ID(id.String())
}

// String returns the string representation
func (id ID) String() string {
	return string(id)
}

// IsEmpty checks if the ID is empty
func (id ID) IsEmpty() bool {
	return id == ""
}

// Artifact represents any output of the system
type Artifact struct {
	ID        ID           `json:"id"`
	Kind      ArtifactKind `json:"kind"`
	Payload   interface{}  `json:"payload"`
	CreatedAt Timestamp    `json:"created_at"`
}

// ArtifactKind defines types of artifacts
type ArtifactKind string

const (
	// ArtifactTestResult is the output of a single hypothesis-test calculation.
	ArtifactTestResult ArtifactKind = "test_result"
	// ArtifactSampleProfile captures descriptive statistics for one sample.
	ArtifactSampleProfile ArtifactKind = "sample_profile"
	// ArtifactWalkthrough records a narrated worked example, arithmetic beside
	// the oracle cross-check.
	ArtifactWalkthrough ArtifactKind = "walkthrough"
)
