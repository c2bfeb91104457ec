package common

import "context"

// UserContext holds the authenticated user for a request, populated by the
// bearer-token middleware. When absent (nil), the request is anonymous and
// handlers require an explicit owner parameter.
type UserContext struct {
	UserID string
	Email  string
	Role   string
}

type contextKey int

const userContextKey contextKey = iota

// WithUserContext stores a UserContext in the request context.
func WithUserContext(ctx context.Context, uc *UserContext) context.Context {
	return context.WithValue(ctx, userContextKey, uc)
}

// UserContextFromContext retrieves the UserContext from context, or nil if absent.
func UserContextFromContext(ctx context.Context) *UserContext {
	uc, _ := ctx.Value(userContextKey).(*UserContext)
	return uc
}

// ResolveOwner returns the explicit owner if non-empty, otherwise the
// authenticated user ID from context, otherwise "".
func ResolveOwner(ctx context.Context, explicit string) string {
	if explicit != "" {
		return explicit
	}
	if uc := UserContextFromContext(ctx); uc != nil {
		return uc.UserID
	}
	return ""
}
