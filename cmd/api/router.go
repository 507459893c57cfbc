package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"premios-backend/internal/shared/middleware"
	"premios-backend/internal/shared/response"
	"premios-backend/pkg/container"
)

// SetupRouter mounts all routes at the root. Registration, login and
// the health check are public; everything else requires a bearer token.
func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	router.GET("/health", healthCheckHandler(c))
	router.POST("/users", c.UsuarioHandler.Register)
	router.POST("/login", c.UsuarioHandler.Login)

	auth := middleware.AuthMiddleware(c.JWTManager)

	setupUsuarioRoutes(router, c, auth)
	setupAutorRoutes(router, c, auth)
	setupAvaliadorRoutes(router, c, auth)
	setupPremioRoutes(router, c, auth)
	setupProjetoRoutes(router, c, auth)

	return router
}

func setupUsuarioRoutes(router *gin.Engine, c *container.Container, auth gin.HandlerFunc) {
	// The account lookup lives at the root, a quirk kept for client
	// compatibility.
	router.GET("/:id", auth, c.UsuarioHandler.GetByID)
	router.PUT("/users/:id", auth, c.UsuarioHandler.Update)
}

func setupAutorRoutes(router *gin.Engine, c *container.Container, auth gin.HandlerFunc) {
	autores := router.Group("/autores")
	autores.Use(auth)
	{
		autores.POST("", c.AutorHandler.Create)
		autores.GET("", c.AutorHandler.List)
		autores.GET("/:id", c.AutorHandler.GetByID)
		autores.PUT("/:id", c.AutorHandler.Update)
		autores.DELETE("/:id", c.AutorHandler.Delete)
		autores.GET("/:id/projetos", c.AutorHandler.GetProjetos)
		autores.GET("/:id/projetos/count", c.AutorHandler.CountProjetos)
		autores.POST("/:id/projetos/media", c.AutorHandler.MediaNotas)
	}
}

func setupAvaliadorRoutes(router *gin.Engine, c *container.Container, auth gin.HandlerFunc) {
	avaliadores := router.Group("/avaliadores")
	avaliadores.Use(auth)
	{
		avaliadores.POST("", c.AvaliadorHandler.Create)
		avaliadores.GET("", c.AvaliadorHandler.List)
		avaliadores.GET("/:id", c.AvaliadorHandler.GetByID)
		avaliadores.PUT("/:id", c.AvaliadorHandler.Update)
		avaliadores.DELETE("/:id", c.AvaliadorHandler.Delete)
		avaliadores.GET("/:id/projetos", c.AvaliadorHandler.GetProjetos)
		avaliadores.GET("/:id/projetos/count", c.AvaliadorHandler.CountProjetos)
		avaliadores.GET("/:id/projetos/media", c.AvaliadorHandler.MediaNotas)
	}
}

func setupPremioRoutes(router *gin.Engine, c *container.Container, auth gin.HandlerFunc) {
	premios := router.Group("/premios")
	premios.Use(auth)
	{
		premios.POST("", c.PremioHandler.Create)
		premios.GET("", c.PremioHandler.List)
		premios.GET("/ano/:ano", c.PremioHandler.GetByAno)
		premios.GET("/:id", c.PremioHandler.GetByID)
		premios.PUT("/:id", c.PremioHandler.Update)
		premios.DELETE("/:id", c.PremioHandler.Delete)
		premios.GET("/:id/projetos", c.PremioHandler.GetProjetos)
		premios.GET("/:id/projetos/count", c.PremioHandler.CountProjetos)
	}
}

func setupProjetoRoutes(router *gin.Engine, c *container.Container, auth gin.HandlerFunc) {
	projetos := router.Group("/projetos")
	projetos.Use(auth)
	{
		projetos.POST("", c.ProjetoHandler.Create)
		projetos.GET("", c.ProjetoHandler.List)
		projetos.GET("/:id", c.ProjetoHandler.GetByID)
		projetos.PUT("/:id", c.ProjetoHandler.Update)
		projetos.DELETE("/:id", c.ProjetoHandler.Delete)
		projetos.PATCH("/:id/avaliar", c.ProjetoHandler.Evaluate)
		projetos.POST("/:id/autores", c.ProjetoHandler.AddAutor)
		projetos.DELETE("/:id/autores/:autorId", c.ProjetoHandler.RemoveAutor)

		projetos.GET("/filtro/area/:area", c.ProjetoHandler.GetByArea)
		projetos.GET("/filtro/situacao/:situacao", c.ProjetoHandler.GetBySituacao)
		projetos.GET("/filtro/autor/:autorId", c.ProjetoHandler.GetByAutor)
		projetos.GET("/filtro/premio/:premioId", c.ProjetoHandler.GetByPremio)
		projetos.GET("/filtro/avaliador/:avaliadorId", c.ProjetoHandler.GetByAvaliador)
		projetos.GET("/contagem/premio/:premioId/situacao/:situacao", c.ProjetoHandler.CountBySituacaoAndPremio)
	}
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		dbStatus := "up"
		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			dbStatus = "down"
		}

		cacheStatus := "up"
		if err := c.Cache.Ping(ctx.Request.Context()); err != nil {
			cacheStatus = "down"
		}

		status := http.StatusOK
		if dbStatus == "down" || cacheStatus == "down" {
			status = http.StatusServiceUnavailable
		}

		response.Success(ctx, status, gin.H{
			"database": dbStatus,
			"cache":    cacheStatus,
		})
	}
}
