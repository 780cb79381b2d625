package http

import (
	"net/http"

	"github.com/aussiebroadwan/tabaccounts/internal/accounts/domain"
	"github.com/aussiebroadwan/tabaccounts/pkg/accountsdk"
	"github.com/aussiebroadwan/tabaccounts/pkg/httpx"
)

func writeError(w http.ResponseWriter, code int, message string) {
	httpx.WriteJSON(w, code, accountsdk.ErrorResponse{Message: message})
}

func writeValidationError(w http.ResponseWriter, errs []accountsdk.FieldError) {
	httpx.WriteJSON(w, http.StatusBadRequest, accountsdk.ErrorResponse{
		Message: accountsdk.MessageInvalidBody,
		Errors:  errs,
	})
}

// publicUser strips a user record down to its public shape. The password
// hash never crosses this boundary.
func publicUser(u domain.User) accountsdk.User {
	return accountsdk.User{
		ID:        u.ID,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
