package http

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/peopledesk/hrops-backend-go/internal/domain/auth"
)

// accountFromClaims pulls the authenticated account's ID and email out of
// the verified token. Handlers behind AuthRequired can rely on both being
// present.
func accountFromClaims(r *http.Request) (accountID string, email string, err error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", "", auth.ErrInvalidToken
	}

	accountID, ok := claims["account_id"].(string)
	if !ok || accountID == "" {
		return "", "", auth.ErrInvalidToken
	}

	email, _ = claims["email"].(string)
	return accountID, email, nil
}
