package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/IbrahimTareq/masjidaa-booking-service/internal/api/handlers"
)

type staffIDKey struct{}

// Auth проверяет наличие заголовка X-Staff-ID на защищённых маршрутах
// Членство персонала в тенанте проверяет шлюз платформы; здесь ID только
// извлекается для аудита в логах
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("X-Staff-ID")
		if header == "" {
			handlers.RespondUnauthorized(w, "отсутствует заголовок X-Staff-ID")
			return
		}

		staffID, err := strconv.ParseInt(header, 10, 64)
		if err != nil || staffID <= 0 {
			handlers.RespondUnauthorized(w, "некорректный заголовок X-Staff-ID")
			return
		}

		ctx := context.WithValue(r.Context(), staffIDKey{}, staffID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// StaffIDFromContext возвращает ID сотрудника из контекста запроса
func StaffIDFromContext(ctx context.Context) (int64, bool) {
	staffID, ok := ctx.Value(staffIDKey{}).(int64)
	return staffID, ok
}
