package v1

import (
	"jobboard/internal/delivery/http/handler"
	"jobboard/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Handlers struct {
	Auth         *handler.AuthHandler
	Users        *handler.UserHandler
	Jobs         *handler.JobHandler
	Applications *handler.ApplicationHandler
	JobEvents    *ws.Handler
	RequireAuth  fiber.Handler
}

func Register(r fiber.Router, h Handlers) {
	if r == nil {
		return
	}

	registerUsers(r, h)
	registerJobs(r, h)
	registerApplications(r, h)

	if h.Auth != nil {
		r.Post("/auth/refresh", h.Auth.Refresh)
	}
	if h.JobEvents != nil {
		r.Get("/ws/jobs", h.JobEvents.HandleJobsWS)
	}
}

// Static user routes are registered before /users/:userId.
func registerUsers(r fiber.Router, h Handlers) {
	users := r.Group("/users")

	if h.Auth != nil {
		users.Post("/create", h.Auth.Register)
		users.Post("/login", h.Auth.Login)
		if h.RequireAuth != nil {
			users.Get("/me", h.RequireAuth, h.Auth.Me)
		}
	}

	if h.Users != nil {
		users.Get("/", h.Users.List)
		users.Get("/:userId", h.Users.Get)
		users.Put("/:userId", h.Users.Update)
		users.Delete("/:userId", h.Users.Delete)
	}
	if h.Applications != nil {
		users.Get("/:userId/applications", h.Applications.ListByCandidate)
	}
}

func registerJobs(r fiber.Router, h Handlers) {
	if h.Jobs == nil {
		return
	}
	jobs := r.Group("/jobs")

	jobs.Post("/", h.Jobs.Create)
	jobs.Get("/", h.Jobs.List)
	jobs.Get("/recruiter/:recruiterId", h.Jobs.ListByRecruiter)
	jobs.Get("/:jobId", h.Jobs.Get)
	jobs.Put("/:jobId", h.Jobs.Update)
	jobs.Patch("/:jobId/close", h.Jobs.Close)
	jobs.Delete("/:jobId", h.Jobs.Delete)
}

func registerApplications(r fiber.Router, h Handlers) {
	if h.Applications == nil {
		return
	}

	r.Post("/jobs/:jobId/applications", h.Applications.Apply)
	r.Get("/jobs/:jobId/applications", h.Applications.ListByJob)
	r.Patch("/applications/:applicationId/status", h.Applications.UpdateStatus)
}
