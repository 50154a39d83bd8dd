package auth

import (
	"context"
	"net/http"

	"github.com/frahmantamala/crms/internal"
	"github.com/frahmantamala/crms/internal/transport"
)

type ServiceAPI interface {
	Login(ctx context.Context, dto LoginDTO) (*LoginResponse, error)
	Authenticate(ctx context.Context, token string) (*internal.Principal, error)
	Logout(ctx context.Context, p *internal.Principal) error
	Me(ctx context.Context, userID int64) (*MeResponse, error)
	Permissions() *PermissionTable
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

// Login handles POST /auth/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var dto LoginDTO
	if !h.DecodeJSON(w, r, &dto) {
		return
	}

	resp, err := h.Service.Login(r.Context(), dto)
	if err != nil {
		h.HandleServiceError(w, r, err, "Login failed")
		return
	}

	h.WriteJSON(w, http.StatusOK, resp)
}

// Logout handles POST /auth/logout
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	p, ok := internal.PrincipalFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, internal.ErrMissingToken.Message)
		return
	}
	if err := h.Service.Logout(r.Context(), p); err != nil {
		h.HandleServiceError(w, r, err, "Logout failed")
		return
	}
	h.WriteMessage(w, http.StatusOK, "Logged out successfully")
}

// Me handles GET /auth/me
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	me, err := h.Service.Me(r.Context(), internal.UserIDFromContext(r.Context()))
	if err != nil {
		h.HandleServiceError(w, r, err, "Failed to fetch profile")
		return
	}
	h.WriteJSON(w, http.StatusOK, me)
}

// Permissions handles GET /permissions
func (h *Handler) Permissions(w http.ResponseWriter, r *http.Request) {
	h.WriteJSON(w, http.StatusOK, h.Service.Permissions())
}

// AuthMiddleware is the bearer token gate: 401 without a token, 403 for any
// token that does not verify.
func (h *Handler) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := h.ExtractTokenFromHeader(r)
		if token == "" {
			h.WriteError(w, http.StatusUnauthorized, internal.ErrMissingToken.Message)
			return
		}

		p, err := h.Service.Authenticate(r.Context(), token)
		if err != nil {
			h.Logger.DebugContext(r.Context(), "token rejected", "error", err)
			h.HandleServiceError(w, r, err, "Authentication error")
			return
		}

		next.ServeHTTP(w, r.WithContext(internal.ContextWithPrincipal(r.Context(), p)))
	})
}
