package service

import (
	"time"

	"github.com/aussiebroadwan/tabaccounts/internal/accounts/domain"
	"github.com/aussiebroadwan/tabaccounts/pkg/jwtx"
)

type TokenService struct {
	Signer jwtx.Signer
	TTL    time.Duration
}

// Issue signs a token for the user carrying {sub, email} with the
// configured expiry. Tokens are stateless; nothing is persisted.
func (s *TokenService) Issue(user domain.User) (string, error) {
	ttl := s.TTL
	if ttl <= 0 {
		ttl = jwtx.DefaultTokenTTL
	}
	return s.Signer.Sign(jwtx.NewClaims(user.ID, user.Email, ttl, time.Now().UTC()))
}
