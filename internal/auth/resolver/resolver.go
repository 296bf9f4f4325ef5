package resolver

import (
	"context"

	"github.com/ewok0116/CS308-Project/internal/auth"
)

// Source says where a resolved role came from.
type Source int

const (
	// SourceNone means no role could be determined.
	SourceNone Source = iota
	// SourceRecord means the stored user record supplied the role.
	SourceRecord
	// SourceClaim means the verified token's role claim supplied it.
	SourceClaim
)

// Resolution is the outcome of role resolution. Role is "" iff Source
// is SourceNone.
type Resolution struct {
	Role   string
	Source Source
}

// Resolver determines the effective role of a verified identity.
// It is the ONLY place where role-precedence logic lives.
type Resolver interface {
	Resolve(ctx context.Context, identity *auth.Identity) Resolution
}
