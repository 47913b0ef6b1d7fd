package router

import (
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/Totarae/SecondBrain/internal/handlers"
	"github.com/Totarae/SecondBrain/internal/middleware"
)

// requestTimeout ограничивает время обработки одного запроса.
const requestTimeout = 30 * time.Second

// NewRouter создаёт и настраивает маршрутизатор
func NewRouter(handler *handlers.Handler, allowedOrigins []string, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.LoggingMiddleware(logger)) // Подключаем логирование
	r.Use(chimw.Recoverer)
	r.Use(middleware.CORS(allowedOrigins))
	r.Use(middleware.GzipMiddleware) // Gzip-сжатие
	r.Use(chimw.Timeout(requestTimeout))

	r.Get("/ping", handler.PingHandler)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/signup", handler.Signup)
		r.Post("/signin", handler.Signin)
		r.Get("/brain/{shareHash}", handler.ResolveShare)

		// дальше только с токеном
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(handler.Users, logger))

			r.Post("/content", handler.AddContent)
			r.Get("/content", handler.ListContent)
			r.Delete("/content", handler.DeleteContent)
			r.Delete("/content/{contentId}", handler.DeleteContent)

			r.Post("/brain/share", handler.ShareBrain)
			r.Get("/brain/share", handler.ShareBrain)
		})
	})

	return r
}
