package middleware

import (
	"net/http"

	"appointment-booking/internal/domain/entity"
	"appointment-booking/pkg/response"
)

// RequireRole checks that the authenticated user holds one of the allowed
// roles. Role is read from context (set by AuthMiddleware from JWT claims).
func RequireRole(allowedRoles ...entity.UserRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := GetRoleFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Role information not found")
				return
			}

			for _, allowed := range allowedRoles {
				if entity.UserRole(role) == allowed {
					next.ServeHTTP(w, r)
					return
				}
			}

			response.Forbidden(w, "You don't have permission to access this resource")
		})
	}
}

// RequireAdmin is a convenience middleware for admin-only endpoints
func RequireAdmin(next http.Handler) http.Handler {
	return RequireRole(entity.RoleAdmin)(next)
}

// RequireStaffOrAdmin allows both dashboard roles
func RequireStaffOrAdmin(next http.Handler) http.Handler {
	return RequireRole(entity.RoleAdmin, entity.RoleStaff)(next)
}
