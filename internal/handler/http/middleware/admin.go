package middleware

import (
	"net/http"

	"github.com/cmlabs-hris/hris-calendar-go/internal/domain/user"
	"github.com/cmlabs-hris/hris-calendar-go/internal/handler/http/response"
	"github.com/cmlabs-hris/hris-calendar-go/internal/pkg/jwt"
)

func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := jwt.ClaimsFromContext(r.Context())
		if err != nil {
			response.HandleError(w, err)
			return
		}

		if claims.Role != user.RoleAdmin {
			response.HandleError(w, user.ErrInsufficientPermissions)
			return
		}

		next.ServeHTTP(w, r)
	})
}
