package httpserver

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type Option func(*Options)

type Options struct {
	addr          string
	appName       string
	logger        *zap.Logger
	readTimeout   time.Duration
	bodyLimit     int
	enableLogging bool
}

func WithAddr(addr string) Option {
	return func(o *Options) {
		o.addr = addr
	}
}

func WithAppName(name string) Option {
	return func(o *Options) {
		o.appName = name
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(o *Options) {
		o.logger = logger
	}
}

func WithReadTimeout(timeout time.Duration) Option {
	return func(o *Options) {
		o.readTimeout = timeout
	}
}

func WithBodyLimit(limit int) Option {
	return func(o *Options) {
		o.bodyLimit = limit
	}
}

func WithLogging(enabled bool) Option {
	return func(o *Options) {
		o.enableLogging = enabled
	}
}

type Server struct {
	app    *fiber.App
	lis    net.Listener
	logger *zap.Logger
}

// New creates a new HTTP server using the builder options. The listener is
// bound immediately so configuration problems surface here rather than at
// Start time.
func New(opts ...Option) (*Server, error) {
	options := &Options{
		addr:        ":8080",
		appName:     "triage-server",
		logger:      zap.NewNop(),
		readTimeout: 10 * time.Second,
	}

	for _, opt := range opts {
		opt(options)
	}

	if options.addr == "" {
		return nil, fmt.Errorf("invalid address: must not be empty")
	}

	logger := options.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	lis, err := net.Listen("tcp", options.addr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", options.addr, err)
	}

	cfg := fiber.Config{
		AppName:               options.appName,
		ReadTimeout:           options.readTimeout,
		DisableStartupMessage: true,
		ErrorHandler:          newErrorHandler(logger),
	}
	if options.bodyLimit > 0 {
		cfg.BodyLimit = options.bodyLimit
	}

	app := fiber.New(cfg)

	app.Use(Recover(logger))
	if options.enableLogging {
		app.Use(RequestLogger(logger))
	}

	return &Server{
		app:    app,
		lis:    lis,
		logger: logger.Named("http-server"),
	}, nil
}

// RegisterRoutes allows the main application to register its specific routes.
func (s *Server) RegisterRoutes(register func(app *fiber.App)) {
	register(s.app)
}

// Start runs the server in a goroutine and returns immediately.
func (s *Server) Start() {
	s.logger.Info("http server starting", zap.String("addr", s.lis.Addr().String()))

	go func() {
		if err := s.app.Listener(s.lis); err != nil {
			s.logger.Error("http server failed", zap.Error(err))
		}
	}()
}

// Shutdown gracefully shuts down the server, forcing the issue when the
// context expires first.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("http server shutting down")

	if err := s.app.ShutdownWithContext(ctx); err != nil {
		s.logger.Warn("forced shutdown due to timeout", zap.Error(err))
		return err
	}

	s.logger.Info("http server stopped")
	return nil
}

// Addr returns the server's listening address.
func (s *Server) Addr() net.Addr {
	return s.lis.Addr()
}

// App exposes the underlying fiber app, mainly for tests.
func (s *Server) App() *fiber.App {
	return s.app
}
