package middleware

import (
	"fmt"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/clipsburger/sales-dashboard-api/pkg/log"
)

// Acima deste tempo a requisição ganha um aviso de lentidão no log
const slowRequestThreshold = 500 * time.Millisecond

// statusRecorder captura o status code escrito pelo handler
type statusRecorder struct {
	http.ResponseWriter
	statusCode int
}

func newStatusRecorder(w http.ResponseWriter) *statusRecorder {
	return &statusRecorder{w, http.StatusOK}
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.statusCode = code
	sr.ResponseWriter.WriteHeader(code)
}

// LoggingMiddleware injeta um ID de correlação no contexto e registra o
// início e o fim de cada requisição. Em desenvolvimento o formato é curto;
// em produção todos os campos vão para o log estruturado.
func LoggingMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, correlationID := log.WithCorrelationID(r.Context())
			r = r.WithContext(ctx)

			recorder := newStatusRecorder(w)
			startTime := time.Now()
			isDev := log.IsDevelopment()

			logRequestStart(r, correlationID, isDev)

			next.ServeHTTP(recorder, r)

			logRequestEnd(r, correlationID, recorder.statusCode, time.Since(startTime), isDev)
		})
	}
}

func logRequestStart(r *http.Request, correlationID string, isDev bool) {
	if isDev {
		log.L.WithFields(log.Fields{
			"method": r.Method,
			"path":   r.URL.Path,
		}).Info("→ Iniciando requisição")
		return
	}

	log.L.WithFields(log.Fields{
		"correlation_id": correlationID,
		"remote_addr":    r.RemoteAddr,
		"method":         r.Method,
		"path":           r.URL.Path,
		"query":          r.URL.RawQuery,
		"user_agent":     r.UserAgent(),
		"referer":        r.Referer(),
		"content_type":   r.Header.Get("Content-Type"),
		"content_length": r.ContentLength,
	}).Info("Requisição iniciada")
}

func logRequestEnd(r *http.Request, correlationID string, statusCode int, duration time.Duration, isDev bool) {
	if isDev {
		statusSymbol := "✓"
		if statusCode >= 400 {
			statusSymbol = "✗"
		}

		logger := log.L.WithFields(log.Fields{
			"method":      r.Method,
			"path":        r.URL.Path,
			"status_code": statusCode,
		})
		message := fmt.Sprintf("%s Completada em %s", statusSymbol, formatDuration(duration))

		logByStatus(logger, statusCode, message)

		if duration > slowRequestThreshold {
			log.L.Warnf("⚠ Requisição lenta: %s %s (%dms)", r.Method, r.URL.Path, duration.Milliseconds())
		}
		return
	}

	fields := log.Fields{
		"correlation_id": correlationID,
		"method":         r.Method,
		"path":           r.URL.Path,
		"duration_ms":    duration.Milliseconds(),
		"status_code":    statusCode,
	}

	logByStatus(log.L.WithFields(fields), statusCode, requestEndMessage(statusCode))

	if duration > slowRequestThreshold {
		log.L.WithFields(fields).Warnf("Requisição lenta: %s", duration)
	}
}

func requestEndMessage(statusCode int) string {
	switch {
	case statusCode >= 500:
		return "Requisição finalizada com erro"
	case statusCode >= 400:
		return "Requisição finalizada com aviso"
	default:
		return "Requisição finalizada com sucesso"
	}
}

func logByStatus(logger log.Logger, statusCode int, message string) {
	switch {
	case statusCode >= 500:
		logger.Error(message)
	case statusCode >= 400:
		logger.Warn(message)
	default:
		logger.Info(message)
	}
}

func formatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%d µs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%d ms", d.Milliseconds())
	default:
		return fmt.Sprintf("%.2f s", d.Seconds())
	}
}

// LogPanicMiddleware intercepta pânicos dos handlers, registra o stack trace
// e devolve 500 para o cliente
func LogPanicMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					stackTrace := captureStack()

					if log.IsDevelopment() {
						log.L.WithFields(log.Fields{
							"error": err,
							"path":  r.URL.Path,
						}).Error("❌ PANIC na aplicação")

						// No terminal o stack trace cru é mais fácil de ler
						fmt.Fprintf(os.Stderr, "\n\n=== STACK TRACE ===\n%s\n=================\n\n", stackTrace)
					} else {
						logger := log.L.WithFields(log.Fields{
							"correlation_id": log.GetCorrelationID(r.Context()),
							"panic_error":    err,
							"method":         r.Method,
							"path":           r.URL.Path,
						})

						logger.Error("Erro não tratado na aplicação")
						logger.WithField("stack_trace", stackTrace).Error("Stack trace do erro")
					}

					http.Error(w, "Erro interno no servidor", http.StatusInternalServerError)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}

func captureStack() string {
	stack := make([]byte, 4096)
	stackSize := runtime.Stack(stack, false)
	return string(stack[:stackSize])
}
