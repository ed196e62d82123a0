package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	assistantHTTP "personal-assistant/internal/assistant/delivery/http"
	emailHTTP "personal-assistant/internal/email/delivery/http"
	"personal-assistant/internal/middleware"
	schedulerHTTP "personal-assistant/internal/scheduler/delivery/http"
	taskHTTP "personal-assistant/internal/task/delivery/http"
	"personal-assistant/pkg/datemath"
)

func (srv HTTPServer) mapHandlers(mw middleware.Middleware) {
	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
}

func (srv HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(gin.Recovery(), mw.RequestID(), mw.AccessLog())
	srv.l.Infof(context.Background(), "HTTP server environment: %s (gin %s mode)", srv.environment, srv.mode)
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
	srv.gin.GET("/metrics", gin.WrapH(promhttp.Handler()))

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes mounts every configured domain.
//
// Adding a domain:
//  1. Build its handler:   h := mydomainHTTP.New(srv.l, srv.myUC)
//  2. Register its routes: mydomainHTTP.RegisterRoutes(api, h)
func (srv HTTPServer) registerDomainRoutes() {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")

	if srv.telegramHandler != nil {
		srv.gin.POST("/webhook/telegram", srv.telegramHandler.HandleWebhook)
		srv.l.Infof(ctx, "Telegram webhook route registered at POST /webhook/telegram")
	} else {
		srv.l.Infof(ctx, "Telegram handler not configured, skipping webhook route")
	}

	if srv.assistantUC != nil {
		h := assistantHTTP.New(srv.l, srv.assistantUC, srv.messageUC, srv.bot, srv.telegram)
		assistantHTTP.RegisterRoutes(api, h)
		srv.l.Infof(ctx, "Assistant domain registered")
	}

	if srv.emailUC != nil {
		emailHTTP.RegisterRoutes(api, emailHTTP.New(srv.l, srv.emailUC))
		srv.l.Infof(ctx, "Email domain registered")
	}

	if srv.taskUC != nil {
		taskHTTP.RegisterRoutes(api, taskHTTP.New(srv.l, srv.taskUC, datemath.NewParser(srv.location)))
		srv.l.Infof(ctx, "Task domain registered")
	}

	if srv.scheduler != nil {
		schedulerHTTP.RegisterRoutes(api, schedulerHTTP.New(srv.l, srv.scheduler))
		srv.l.Infof(ctx, "Scheduler domain registered")
	}
}
