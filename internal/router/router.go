package router

import (
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	apiHandler "github.com/gamedesk/backend/api/handler"
)

type Handlers struct {
	Game   *apiHandler.GameHandler
	Task   *apiHandler.TaskHandler
	Member *apiHandler.MemberHandler
	Health *apiHandler.HealthHandler
}

// New wires the HTTP surface. Reads are public; mutations pass through the
// auth middleware (identity when auth is disabled).
func New(handlers Handlers, authMiddleware func(fasthttp.RequestHandler) fasthttp.RequestHandler) *router.Router {
	r := router.New()

	r.GET("/health", handlers.Health.Check)

	r.GET("/api/v1/games", handlers.Game.ListGames)
	r.GET("/api/v1/games/{id}", handlers.Game.GetGame)
	r.GET("/api/v1/games/{id}/stats", handlers.Game.GetStats)
	r.GET("/api/v1/games/{id}/deleted-tasks", handlers.Game.GetDeletedTasks)
	r.GET("/api/v1/games/{id}/tasks", handlers.Task.ListTasks)
	r.GET("/api/v1/games/{id}/tasks/{taskId}", handlers.Task.GetTask)
	r.GET("/api/v1/members", handlers.Member.ListMembers)

	r.POST("/api/v1/games", authMiddleware(handlers.Game.CreateGame))
	r.PUT("/api/v1/games/{id}", authMiddleware(handlers.Game.UpdateGame))
	r.DELETE("/api/v1/games/{id}", authMiddleware(handlers.Game.DeleteGame))

	r.POST("/api/v1/games/{id}/tasks", authMiddleware(handlers.Task.CreateTask))
	r.PUT("/api/v1/games/{id}/tasks/{taskId}/status", authMiddleware(handlers.Task.SetTaskStatus))
	r.POST("/api/v1/games/{id}/tasks/{taskId}/comments", authMiddleware(handlers.Task.AddComment))
	r.DELETE("/api/v1/games/{id}/tasks/{taskId}", authMiddleware(handlers.Task.DeleteTask))

	r.POST("/api/v1/members", authMiddleware(handlers.Member.AddMember))
	r.DELETE("/api/v1/members/{id}", authMiddleware(handlers.Member.RemoveMember))

	return r
}
