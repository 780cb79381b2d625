package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/tabaccounts/internal/accounts/service"
	"github.com/aussiebroadwan/tabaccounts/internal/accounts/store"
	"github.com/aussiebroadwan/tabaccounts/pkg/accountsdk"
	"github.com/aussiebroadwan/tabaccounts/pkg/httpx"
	"github.com/aussiebroadwan/tabaccounts/pkg/slogx"
)

type MeHandler struct {
	UserService *service.UserService
}

// ServeHTTP handles GET /me. It runs behind the authn middleware, so the
// identity is already verified; the subject may still have been deleted out
// of band, which surfaces as 404.
func (h *MeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	id, ok := httpx.IdentityFromContext(ctx)
	if !ok || id.UserID == "" {
		writeError(w, http.StatusUnauthorized, accountsdk.MessageUnauthorized)
		return
	}

	user, err := h.UserService.GetUserByID(ctx, id.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, accountsdk.MessageUserNotFound)
			return
		}
		log.Error("failed to load user", "user_id", id.UserID, "err", err)
		writeError(w, http.StatusInternalServerError, accountsdk.MessageServerError)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, accountsdk.MeResponse{User: publicUser(user)})
}
