package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ewok0116/CS308-Project/internal/auth"
	"github.com/ewok0116/CS308-Project/internal/auth/resolver"
)

// unexported, collision-proof context key
const principalKey = "middleware.principal"

// Principal is the request-scoped authenticated identity: subject id,
// raw verified claims and the resolved role. It lives only for the
// duration of the request.
type Principal struct {
	UID        string
	Claims     map[string]any
	Role       string
	RoleSource resolver.Source
}

// PrincipalFromContext extracts the authenticated principal attached by
// the Authenticate stage.
func PrincipalFromContext(c *gin.Context) (*Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return nil, false
	}
	p, ok := v.(*Principal)
	return p, ok
}

// Rejection short-circuits the pipeline with a status and a
// machine-readable error code.
type Rejection struct {
	Status  int
	Code    string
	Details string
}

// Stage is one step of the request pipeline. A stage either returns nil
// to continue with the (possibly enriched) request context, or a
// Rejection to stop the chain and respond.
type Stage func(c *gin.Context) *Rejection

// Chain composes stages, in order, into a single gin handler. The first
// rejection wins; later stages never run.
func Chain(stages ...Stage) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, stage := range stages {
			if rej := stage(c); rej != nil {
				body := gin.H{"error": rej.Code}
				if rej.Details != "" {
					body["details"] = rej.Details
				}
				c.AbortWithStatusJSON(rej.Status, body)
				return
			}
		}
	}
}

// Authenticate extracts the bearer credential, verifies it against the
// identity provider and attaches the resolved principal. A missing or
// malformed Authorization header fails fast without a verification call.
func Authenticate(verifier auth.TokenVerifier, roles resolver.Resolver) Stage {
	return func(c *gin.Context) *Rejection {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			return &Rejection{
				Status:  http.StatusUnauthorized,
				Code:    "missing_credential",
				Details: "missing auth token",
			}
		}

		token := strings.TrimPrefix(header, "Bearer ")

		identity, err := verifier.Verify(c.Request.Context(), token)
		if err != nil {
			return &Rejection{
				Status:  http.StatusUnauthorized,
				Code:    "invalid_credential",
				Details: err.Error(),
			}
		}

		res := roles.Resolve(c.Request.Context(), identity)

		c.Set(principalKey, &Principal{
			UID:        identity.UID,
			Claims:     identity.Claims,
			Role:       res.Role,
			RoleSource: res.Source,
		})

		return nil
	}
}

// RequireRoles authorizes the authenticated principal against an
// allow-list. An empty list admits any authenticated request; a
// non-empty list requires exact, case-sensitive membership. Running
// without a preceding Authenticate stage is a programming error and is
// treated as unauthenticated.
func RequireRoles(allowed ...string) Stage {
	return func(c *gin.Context) *Rejection {
		p, ok := PrincipalFromContext(c)
		if !ok {
			return &Rejection{
				Status:  http.StatusUnauthorized,
				Code:    "missing_credential",
				Details: "not authenticated",
			}
		}

		if len(allowed) == 0 {
			return nil
		}

		for _, role := range allowed {
			if p.Role == role {
				return nil
			}
		}

		return &Rejection{
			Status:  http.StatusForbidden,
			Code:    "forbidden",
			Details: "insufficient role",
		}
	}
}
