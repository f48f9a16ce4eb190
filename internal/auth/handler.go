package auth

import (
	"encoding/json"
	"net/http"

	"github.com/taskmetrics/task-incentive/internal"
	"github.com/taskmetrics/task-incentive/internal/transport"
	"github.com/taskmetrics/task-incentive/pkg/logger"
)

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(svc ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: transport.NewBaseHandler(logger.L()),
		Service:     svc,
	}
}

// Register handles POST /api/auth/register.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var dto RegisterDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.Service.Register(dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "user registered successfully",
		"user":    user,
	})
}

// Login handles POST /api/auth/login.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var dto LoginDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.Service.Authenticate(dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message": "login successful",
		"token":   result.Token,
		"role":    result.Role,
	})
}

// AuthMiddleware guards protected routes. A missing header is 401, an
// expired token is 401 "token expired", anything else that fails
// verification is 403.
func (h *Handler) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, present := h.ExtractTokenFromHeader(r)
		if !present {
			h.HandleServiceError(w, internal.ErrMissingAuthHeader)
			return
		}
		if token == "" {
			h.HandleServiceError(w, internal.ErrInvalidToken)
			return
		}

		claims, err := h.Service.ValidateAccessToken(token)
		if err != nil {
			h.HandleServiceError(w, err)
			return
		}

		ctx := ContextWithClaims(r.Context(), claims)
		ctx = logger.With(ctx, "userId", claims.UserID, "role", claims.Role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
