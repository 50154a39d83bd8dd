package user

import (
	"context"
	"net/http"

	"github.com/frahmantamala/crms/internal"
	"github.com/frahmantamala/crms/internal/transport"
)

type ServiceAPI interface {
	List(ctx context.Context) ([]View, error)
	Roles(ctx context.Context) ([]Role, error)
	Create(ctx context.Context, actorID int64, dto CreateUserDTO) (int64, error)
	Update(ctx context.Context, actorID, id int64, dto UpdateUserDTO) error
	Deactivate(ctx context.Context, actorID, id int64) error
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(baseHandler *transport.BaseHandler, svc ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: baseHandler,
		Service:     svc,
	}
}

// List handles GET /users
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.Service.List(r.Context())
	if err != nil {
		h.HandleServiceError(w, r, err, "Failed to fetch users")
		return
	}
	h.WriteJSON(w, http.StatusOK, users)
}

// Roles handles GET /roles
func (h *Handler) Roles(w http.ResponseWriter, r *http.Request) {
	roles, err := h.Service.Roles(r.Context())
	if err != nil {
		h.HandleServiceError(w, r, err, "Failed to fetch roles")
		return
	}
	h.WriteJSON(w, http.StatusOK, roles)
}

// Create handles POST /users
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var dto CreateUserDTO
	if !h.DecodeJSON(w, r, &dto) {
		return
	}
	id, err := h.Service.Create(r.Context(), internal.UserIDFromContext(r.Context()), dto)
	if err != nil {
		h.HandleServiceError(w, r, err, "Failed to create user")
		return
	}
	h.WriteJSON(w, http.StatusCreated, CreatedResponse{Message: "User created successfully", UserID: id})
}

// Update handles PUT /users/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.PathID(w, r, "id", "Invalid user ID")
	if !ok {
		return
	}
	var dto UpdateUserDTO
	if !h.DecodeJSON(w, r, &dto) {
		return
	}
	if err := h.Service.Update(r.Context(), internal.UserIDFromContext(r.Context()), id, dto); err != nil {
		h.HandleServiceError(w, r, err, "Failed to update user")
		return
	}
	h.WriteMessage(w, http.StatusOK, "User updated successfully")
}

// Deactivate handles DELETE /users/{id}
func (h *Handler) Deactivate(w http.ResponseWriter, r *http.Request) {
	id, ok := h.PathID(w, r, "id", "Invalid user ID")
	if !ok {
		return
	}
	if err := h.Service.Deactivate(r.Context(), internal.UserIDFromContext(r.Context()), id); err != nil {
		h.HandleServiceError(w, r, err, "Failed to deactivate user")
		return
	}
	h.WriteMessage(w, http.StatusOK, "User deactivated successfully")
}
