package middleware

import (
	"net/http"
	"slices"
)

// Origens do painel em desenvolvimento local e em produção.
// TODO mover a lista de origens para a configuração
var allowedOrigins = []string{
	"http://localhost:3000",
	"http://localhost:8050",
	"https://clips-burger-dashboard.vercel.app",
	"https://clips-burger-dashboard-web.vercel.app",
}

// Cors libera o acesso do painel às rotas da API. A API só expõe leituras e
// registros de venda, então os métodos permitidos ficam em GET e POST.
func Cors() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			if slices.Contains(allowedOrigins, origin) {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Accept, Authorization, Content-Type, X-Requested-With")
				w.Header().Set("Access-Control-Allow-Credentials", "true")
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("Access-Control-Max-Age", "86400") // Cache do CORS por 24 horas
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
