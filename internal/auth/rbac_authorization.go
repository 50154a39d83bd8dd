package auth

import (
	"context"
	"fmt"
	"net/http"
	"slices"

	"github.com/frahmantamala/crms/internal"
	"github.com/frahmantamala/crms/internal/transport"
	"github.com/frahmantamala/crms/pkg/logger"
)

type RoleResolver interface {
	RoleName(ctx context.Context, userID int64) (string, error)
}

// RBACAuthorization provides the two gates used by the router: a role
// allow-list and a permission check against the shared table. Both look the
// role up per request.
type RBACAuthorization struct {
	*transport.BaseHandler
	roles RoleResolver
	table *PermissionTable
}

func NewRBACAuthorization(base *transport.BaseHandler, roles RoleResolver, table *PermissionTable) *RBACAuthorization {
	return &RBACAuthorization{
		BaseHandler: base,
		roles:       roles,
		table:       table,
	}
}

// RequirePermission admits callers whose role holds permission or "all".
func (ra *RBACAuthorization) RequirePermission(permission string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			p, ok := internal.PrincipalFromContext(ctx)
			if !ok {
				ra.WriteError(w, http.StatusUnauthorized, internal.ErrMissingToken.Message)
				return
			}

			role, err := ra.roles.RoleName(ctx, p.UserID)
			if IsPrincipalNotFound(err) {
				ra.WriteError(w, http.StatusForbidden, internal.ErrPrincipalNotFound.Message)
				return
			}
			if err != nil {
				logger.From(ctx).ErrorContext(ctx, "permission check failed", "error", err, "user_id", p.UserID, "permission", permission)
				ra.WriteError(w, http.StatusInternalServerError, "Permission check error")
				return
			}

			if !ra.table.Allows(role, permission) {
				logger.From(ctx).WarnContext(ctx, "access denied: missing permission",
					"user_id", p.UserID,
					"role", role,
					"required_permission", permission)
				ra.WriteError(w, http.StatusForbidden, fmt.Sprintf("Access denied. %s role does not have permission: %s", role, permission))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireRoles admits callers whose current role is one of roles.
func (ra *RBACAuthorization) RequireRoles(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			p, ok := internal.PrincipalFromContext(ctx)
			if !ok {
				ra.WriteError(w, http.StatusUnauthorized, internal.ErrMissingToken.Message)
				return
			}

			role, err := ra.roles.RoleName(ctx, p.UserID)
			if err != nil && !IsPrincipalNotFound(err) {
				logger.From(ctx).ErrorContext(ctx, "role check failed", "error", err, "user_id", p.UserID)
				ra.WriteError(w, http.StatusInternalServerError, "Authorization error")
				return
			}

			if err != nil || !slices.Contains(roles, role) {
				logger.From(ctx).WarnContext(ctx, "access denied: role not allowed",
					"user_id", p.UserID,
					"role", role,
					"allowed_roles", roles)
				ra.WriteError(w, http.StatusForbidden, internal.ErrInsufficientRole.Message)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
