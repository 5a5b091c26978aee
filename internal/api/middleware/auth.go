package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/KKKircheff/GTP-BookingService/internal/api/handlers"
)

// adminTokenHeader заголовок с токеном администратора
const adminTokenHeader = "X-Admin-Token"

const msgAdminTokenRequired = "требуется токен администратора"

// AdminAuth проверяет заголовок X-Admin-Token для админских маршрутов.
// Сравнение токенов выполняется за константное время.
func AdminAuth(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get(adminTokenHeader)
			if got == "" || subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
				handlers.RespondUnauthorized(w, msgAdminTokenRequired)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
