package auth

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/taskmetrics/task-incentive/internal"
	"github.com/taskmetrics/task-incentive/internal/core/model"
)

// Route groups and the roles permitted to call them. Routes are gated by
// this table rather than ad hoc checks inside handlers.
const (
	GroupUser  = "/api/user"
	GroupAdmin = "/api/admin"
)

var RouteCapabilities = map[string][]string{
	GroupUser:  {model.RoleEmployee, model.RoleManager, model.RoleAdmin},
	GroupAdmin: {model.RoleAdmin},
}

// RBACAuthorization evaluates the capability table for incoming requests.
type RBACAuthorization struct {
	logger *slog.Logger
}

func NewRBACAuthorization(logger *slog.Logger) *RBACAuthorization {
	return &RBACAuthorization{logger: logger}
}

// RequireGroup gates a router subtree with the roles registered for it.
func (ra *RBACAuthorization) RequireGroup(group string) func(http.Handler) http.Handler {
	return ra.RequireRoles(RouteCapabilities[group]...)
}

// RequireRoles rejects callers whose role is not in the allow list.
func (ra *RBACAuthorization) RequireRoles(roles ...string) func(http.Handler) http.Handler {
	allowed := make(map[string]bool, len(roles))
	for _, role := range roles {
		allowed[role] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				writeAuthError(w, internal.ErrMissingAuthHeader)
				return
			}

			if !allowed[claims.Role] {
				ra.logger.Warn("access denied: role not permitted",
					"userId", claims.UserID,
					"role", claims.Role,
					"path", r.URL.Path)
				writeAuthError(w, internal.ErrInsufficientRole)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func writeAuthError(w http.ResponseWriter, err *internal.AppError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(err.StatusCode)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"code":    err.StatusCode,
		"message": err.Message,
	})
}
