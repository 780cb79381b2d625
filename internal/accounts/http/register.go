package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aussiebroadwan/tabaccounts/internal/accounts/service"
	"github.com/aussiebroadwan/tabaccounts/pkg/accountsdk"
	"github.com/aussiebroadwan/tabaccounts/pkg/httpx"
	"github.com/aussiebroadwan/tabaccounts/pkg/slogx"
)

type RegisterHandler struct {
	UserService *service.UserService
}

// ServeHTTP handles POST /register: validate the body, create the account,
// and return the public user shape with 201. Duplicate emails come back as
// 409 whether caught by the pre-check or by the store's unique constraint.
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req accountsdk.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, accountsdk.MessageInvalidBody)
		return
	}

	if errs := validateCredentials(req.Email, req.Password); len(errs) > 0 {
		writeValidationError(w, errs)
		return
	}

	user, err := h.UserService.Register(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			writeError(w, http.StatusConflict, accountsdk.MessageEmailTaken)
			return
		}
		log.Error("failed to register user", "err", err)
		writeError(w, http.StatusInternalServerError, accountsdk.MessageServerError)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, accountsdk.RegisterResponse{
		User: accountsdk.User{
			ID:        user.ID,
			Email:     user.Email,
			CreatedAt: user.CreatedAt,
		},
	})
}
