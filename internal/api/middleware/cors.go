package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORSOptions параметры CORS из конфигурации
type CORSOptions struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
	MaxAge         int
}

// CORS оборачивает обработчик в go-chi/cors. Без разрешенных origin'ов
// обработчик возвращается как есть.
func CORS(opts CORSOptions) func(http.Handler) http.Handler {
	if len(opts.AllowedOrigins) == 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	return cors.Handler(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: opts.AllowedMethods,
		AllowedHeaders: opts.AllowedHeaders,
		MaxAge:         opts.MaxAge,
	})
}
