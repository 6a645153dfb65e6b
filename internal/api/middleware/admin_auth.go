package middleware

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
)

// HeaderAdminToken заголовок аутентификации администратора
const HeaderAdminToken = "X-Admin-Token"

// AdminAuth проверяет заголовок X-Admin-Token.
// Токен задается только конфигурацией: если он пустой, доступ
// к админским маршрутам закрыт полностью
func AdminAuth(adminToken string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if adminToken == "" {
				respondForbidden(w, "административный доступ не настроен")
				return
			}

			provided := r.Header.Get(HeaderAdminToken)
			if subtle.ConstantTimeCompare([]byte(provided), []byte(adminToken)) != 1 {
				respondForbidden(w, "доступ запрещен")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func respondForbidden(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusForbidden)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
