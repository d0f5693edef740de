package middleware

import (
	"net/http"

	"github.com/drewpayment/choice-marketing-partners-sub002/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Unauthorized(w, "Invalid access token")
			return
		}

		admin, ok := claims["is_admin"].(bool)
		if !admin || !ok {
			response.Forbidden(w, "Admin privilege required")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// ManagerOrAdmin admits managers as well. Used for read surfaces that
// cover more than the caller's own rows.
func ManagerOrAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Unauthorized(w, "Invalid access token")
			return
		}

		admin, _ := claims["is_admin"].(bool)
		manager, _ := claims["is_mgr"].(bool)
		if !admin && !manager {
			response.Forbidden(w, "Manager privilege required")
			return
		}

		next.ServeHTTP(w, r)
	})
}
