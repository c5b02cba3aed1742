package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/iulianpascalau/coverage-graph/graph/chart"
	"github.com/iulianpascalau/coverage-graph/services/grapher/common"
	"github.com/iulianpascalau/coverage-graph/services/grapher/config"
	"github.com/iulianpascalau/coverage-graph/services/grapher/converter"
	"github.com/multiversx/mx-chain-core-go/core/check"
	logger "github.com/multiversx/mx-chain-logger-go"
)

var log = logger.GetOrCreate("api")

const shutdownTimeout = 5 * time.Second

type server struct {
	router               *gin.Engine
	httpServer           *http.Server
	assembler            ChartAssembler
	layouts              LayoutProvider
	metrics              MetricsHandler
	serviceKey           string
	listenAddr           string
	defaultHistoryLength int
	generalHandler       func(http.Handler) http.Handler
	wg                   sync.WaitGroup
}

// ArgsWebServer defines the web server arguments
type ArgsWebServer struct {
	ServiceKeyApi        string
	ListenAddress        string
	DefaultHistoryLength int
	RateLimit            config.RateLimitConfig
	Assembler            ChartAssembler
	Layouts              LayoutProvider
	Metrics              MetricsHandler
	GeneralHandler       func(http.Handler) http.Handler
}

// NewServer initializes the Gin engine and mounts all routes
func NewServer(args ArgsWebServer) (*server, error) {
	if check.IfNil(args.Assembler) {
		return nil, errors.New("assembler is required")
	}
	if check.IfNil(args.Layouts) {
		return nil, errors.New("layout provider is required")
	}
	if check.IfNil(args.Metrics) {
		return nil, errors.New("metrics handler is required")
	}
	if args.GeneralHandler == nil {
		return nil, errors.New("nil http handler")
	}
	if args.DefaultHistoryLength < 0 {
		return nil, fmt.Errorf("negative default history length %d", args.DefaultHistoryLength)
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	router.Use(gin.Recovery())

	s := &server{
		router:               router,
		assembler:            args.Assembler,
		layouts:              args.Layouts,
		metrics:              args.Metrics,
		serviceKey:           args.ServiceKeyApi,
		listenAddr:           args.ListenAddress,
		defaultHistoryLength: args.DefaultHistoryLength,
		generalHandler:       args.GeneralHandler,
	}

	s.setupRoutes(args.RateLimit)
	return s, nil
}

func (s *server) setupRoutes(limits config.RateLimitConfig) {
	s.router.GET("/metrics", gin.WrapH(s.metrics.Handler()))

	api := s.router.Group("/api")
	api.Use(requestID())
	if limits.RequestsPerSecond > 0 {
		limiter := newRateLimiter(limits.RequestsPerSecond, limits.Burst, s.metrics)
		api.Use(limiter.handler())
	} else {
		log.Debug("rate limiting disabled")
	}

	api.Use(s.authAPIKey())
	{
		api.POST("/chart", s.handleChart)
		api.GET("/layouts", s.handleGetLayouts)
		api.GET("/layouts/:name", s.handleGetLayout)
	}

	s.router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, common.ErrorResponse{Error: "route not found"})
	})
}

// Start listens and serves connections
func (s *server) Start() {
	handler := s.generalHandler(s.router)

	s.httpServer = &http.Server{
		Addr:    s.listenAddr,
		Handler: handler,
	}

	ln, err := net.Listen("tcp", s.listenAddr)
	if err != nil {
		log.Error("failed to listen", "error", err)
		return
	}
	s.listenAddr = ln.Addr().String()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		log.Info("starting HTTP server", "address", s.listenAddr)

		err := s.httpServer.Serve(ln)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("http server failed", "error", err)
		}
	}()
}

// Address returns the actual listen address
func (s *server) Address() string {
	return s.listenAddr
}

// Close gracefully stops the server
func (s *server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return err
		}
	}
	s.wg.Wait()

	return nil
}

// IsInterfaceNil returns true if there is no value under the interface
func (s *server) IsInterfaceNil() bool {
	return s == nil
}

// --- Middlewares ---

func (s *server) authAPIKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader("X-Api-Key")
		if key != s.serviceKey {
			c.AbortWithStatusJSON(http.StatusUnauthorized, common.ErrorResponse{Error: "unauthorized"})
			return
		}
		c.Next()
	}
}

// --- Handlers ---

func (s *server) handleChart(c *gin.Context) {
	var req common.ChartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, common.ErrorResponse{Error: "invalid payload"})
		return
	}

	dto, status, err := s.resolveLayout(req)
	if err != nil {
		c.JSON(status, common.ErrorResponse{Error: err.Error()})
		return
	}

	log.Debug("chart requested",
		"request id", c.GetHeader(requestIDHeader),
		"history", len(req.History),
		"layout", dto.Name)

	builder, err := converter.ToBuilder(dto)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, common.ErrorResponse{Error: err.Error(), Reason: chart.Outcome(err)})
		return
	}

	chain, err := converter.ToChain(req, s.defaultHistoryLength)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, common.ErrorResponse{Error: err.Error(), Reason: chart.Outcome(err)})
		return
	}

	result, err := s.assembler.Build(chain, builder)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, common.ErrorResponse{Error: err.Error(), Reason: chart.Outcome(err)})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (s *server) resolveLayout(req common.ChartRequest) (common.LayoutDTO, int, error) {
	hasName := len(req.LayoutName) > 0
	hasInline := req.Layout != nil

	switch {
	case hasName && hasInline:
		return common.LayoutDTO{}, http.StatusBadRequest, errors.New("layout and layoutName are mutually exclusive")
	case hasInline:
		return *req.Layout, http.StatusOK, nil
	case hasName:
		dto, found := s.layouts.Layout(req.LayoutName)
		if !found {
			return common.LayoutDTO{}, http.StatusNotFound, fmt.Errorf("layout %s not found", req.LayoutName)
		}
		return dto, http.StatusOK, nil
	default:
		return common.LayoutDTO{}, http.StatusBadRequest, errors.New("missing layout")
	}
}

func (s *server) handleGetLayouts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"layouts": s.layouts.Names()})
}

func (s *server) handleGetLayout(c *gin.Context) {
	name := c.Param("name")
	dto, found := s.layouts.Layout(name)
	if !found {
		c.JSON(http.StatusNotFound, common.ErrorResponse{Error: "layout not found"})
		return
	}

	c.JSON(http.StatusOK, dto)
}
