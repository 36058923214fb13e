package handlers

import (
	"net/http"

	"todoapp/internal/logger"
	"todoapp/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "todoapp/docs"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.requestIDMiddleware)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	// Todo endpoints; the list lives at the root path
	router.GET("/", h.listTodos)
	h.registerTodoRoutes(router)

	// Auth endpoints
	h.registerAuthRoutes(router)

	return router
}

func (h *Handler) registerTodoRoutes(r *gin.Engine) {
	todo := r.Group("/todo")
	{
		todo.GET("/:id", h.getTodo)
		todo.POST("", h.createTodo)
		todo.PUT("/:id", h.updateTodo)
		todo.DELETE("/:id", h.deleteTodo)
	}
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.GET("/", h.authStatus)
		auth.POST("/", h.register)
	}
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}
