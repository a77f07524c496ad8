package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"building/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Server represents the HTTP server
type Server struct {
	cfg    *config.Config
	log    *slog.Logger
	router *gin.Engine
	mongo  *mongo.Client
	http   *http.Server
}

// New connects to MongoDB, prepares indexes and wires every layer
func New(ctx context.Context, cfg *config.Config, log *slog.Logger) (*Server, error) {
	mongoClient, err := Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}
	db := mongoClient.Database(cfg.Mongo.Database)

	repos := InitRepositories(db)
	if err := repos.User.EnsureIndexes(ctx); err != nil {
		_ = disconnect(mongoClient)
		return nil, err
	}
	services := InitServices(cfg, repos, log)
	handlers := InitHandlers(services, &mongoPinger{client: mongoClient}, log)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	router := setupRouter(cfg, handlers, reg, log)

	return &Server{
		cfg:    cfg,
		log:    log,
		router: router,
		mongo:  mongoClient,
		http: &http.Server{
			Addr:         cfg.Server.Address(),
			Handler:      router,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
		},
	}, nil
}

// Connect opens the MongoDB client and verifies it with a ping
func Connect(ctx context.Context, cfg *config.Config) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.Mongo.Timeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(cfg.Mongo.URI).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1))

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = disconnect(client)
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}
	return client, nil
}

// Run serves HTTP until ctx is cancelled, then drains in-flight requests
// and disconnects MongoDB.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("building management is running", slog.String("addr", s.http.Addr))
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			_ = s.Close()
			return fmt.Errorf("http server: %w", err)
		}
	case <-ctx.Done():
		s.log.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		s.log.Error("http shutdown", slog.String("error", err.Error()))
	}
	return s.Close()
}

// Close disconnects MongoDB client
func (s *Server) Close() error {
	if s.mongo == nil {
		return nil
	}
	err := disconnect(s.mongo)
	s.mongo = nil
	return err
}

func disconnect(client *mongo.Client) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return client.Disconnect(ctx)
}

type mongoPinger struct {
	client *mongo.Client
}

func (p *mongoPinger) Ping(ctx context.Context) error {
	return p.client.Ping(ctx, readpref.Primary())
}
