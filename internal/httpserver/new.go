package httpserver

import (
	"context"
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"personal-assistant/internal/assistant"
	assistantHTTP "personal-assistant/internal/assistant/delivery/http"
	tgDelivery "personal-assistant/internal/assistant/delivery/telegram"
	"personal-assistant/internal/email"
	"personal-assistant/internal/message"
	"personal-assistant/internal/middleware"
	schedulerHTTP "personal-assistant/internal/scheduler/delivery/http"
	"personal-assistant/internal/task"
	"personal-assistant/pkg/log"
)

const defaultShutdownTimeout = 10 * time.Second

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration
	db              Pinger
	location        *time.Location

	// Domains
	assistantUC     assistant.UseCase
	taskUC          task.UseCase
	messageUC       message.UseCase
	emailUC         email.UseCase
	bot             assistantHTTP.Bot
	telegram        assistantHTTP.Config
	scheduler       schedulerHTTP.Runner
	telegramHandler tgDelivery.Handler
}

// Config is the dependency bag passed to New(). Domains left nil are not mounted.
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration
	DB              Pinger
	Location        *time.Location // Wall clock for relative task schedules

	AssistantUC     assistant.UseCase
	TaskUC          task.UseCase
	MessageUC       message.UseCase
	EmailUC         email.UseCase
	Bot             assistantHTTP.Bot
	Telegram        assistantHTTP.Config
	Scheduler       schedulerHTTP.Runner
	TelegramHandler tgDelivery.Handler
}

// New creates a new HTTPServer instance with every route mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: cfg.ShutdownTimeout,
		db:              cfg.DB,
		location:        cfg.Location,
		assistantUC:     cfg.AssistantUC,
		taskUC:          cfg.TaskUC,
		messageUC:       cfg.MessageUC,
		emailUC:         cfg.EmailUC,
		bot:             cfg.Bot,
		telegram:        cfg.Telegram,
		scheduler:       cfg.Scheduler,
		telegramHandler: cfg.TelegramHandler,
	}
	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = defaultShutdownTimeout
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	srv.mapHandlers(middleware.New(logger))

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.assistantUC != nil && (srv.bot == nil || srv.messageUC == nil) {
		return errors.New("bot and message use case are required to mount the assistant domain")
	}
	return nil
}

// Handler exposes the router, mostly for tests.
func (srv *HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
