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

type LoginHandler struct {
	UserService  *service.UserService
	TokenService *service.TokenService
}

// ServeHTTP handles POST /login: validate the body, check the credentials
// and issue a signed bearer token. Unknown email and wrong password produce
// byte-identical 401 responses.
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req accountsdk.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, accountsdk.MessageInvalidBody)
		return
	}

	if errs := validateCredentials(req.Email, req.Password); len(errs) > 0 {
		writeValidationError(w, errs)
		return
	}

	user, err := h.UserService.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, accountsdk.MessageInvalidCredentials)
			return
		}
		log.Error("failed to authenticate user", "err", err)
		writeError(w, http.StatusInternalServerError, accountsdk.MessageServerError)
		return
	}

	token, err := h.TokenService.Issue(user)
	if err != nil {
		log.Error("failed to issue token", "user_id", user.ID, "err", err)
		writeError(w, http.StatusInternalServerError, accountsdk.MessageServerError)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, accountsdk.LoginResponse{Token: token})
}
