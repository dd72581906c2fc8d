package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Jatin020403/quiz-api/internal/api"
	apiMiddleware "github.com/Jatin020403/quiz-api/internal/api/middleware"
)

// setupRouter builds the route table on top of the wired services.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.Trace(app.logger))

	contentHandler := api.NewContentHandler(app.contentService, app.config.Server.MaxUploadBytes, app.logger)
	ownerHandler := api.NewOwnerHandler(app.ownerService)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	r.Route("/api", func(r chi.Router) {
		r.Get("/healthchecker", api.HealthCheck)

		r.Post("/generate_flashcard", contentHandler.GenerateFlashcard)
		r.Post("/generate_quiz", contentHandler.GenerateQuiz)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.OptionalAuth)
			r.Post("/create_flash", contentHandler.CreateFlash)
			r.Post("/create_quiz", contentHandler.CreateQuiz)
		})

		r.Post("/add_student", ownerHandler.AddStudent)
		r.Post("/add_faculty", ownerHandler.AddFaculty)
		r.Post("/login", ownerHandler.Login)
	})

	return r
}
