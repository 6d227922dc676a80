package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/osse101/SpaceBot_Go/internal/database"
	"github.com/osse101/SpaceBot_Go/internal/economy"
	"github.com/osse101/SpaceBot_Go/internal/handler"
	"github.com/osse101/SpaceBot_Go/internal/inventory"
	"github.com/osse101/SpaceBot_Go/internal/job"
	"github.com/osse101/SpaceBot_Go/internal/ledger"
	"github.com/osse101/SpaceBot_Go/internal/logger"
	"github.com/osse101/SpaceBot_Go/internal/metrics"
	"github.com/osse101/SpaceBot_Go/internal/stock"
	"github.com/osse101/SpaceBot_Go/internal/trade"
)

// Options are the transport settings of the HTTP server
type Options struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	Version        string
}

// Services are the economy services exposed over HTTP
type Services struct {
	Ledger    ledger.Service
	Inventory inventory.Service
	Shop      economy.Service
	Jobs      job.Service
	Stocks    stock.Service
	Trades    trade.Service
}

type Server struct {
	httpServer *http.Server
	dbPool     database.Pool
}

// NewServer creates a new Server instance
func NewServer(opts Options, dbPool database.Pool, svc Services) *Server {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(opts.APIKey, opts.TrustedProxies, detector))
	r.Use(SecurityLoggingMiddleware(opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))
	r.Get("/version", handler.HandleVersion(opts.Version))
	r.Handle("/metrics", promhttp.Handler())

	r.Route(APIPrefix, func(r chi.Router) {
		mountRoutes(r, svc)
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           r,
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
		dbPool: dbPool,
	}
}

func mountRoutes(r chi.Router, svc Services) {
	ledgerHandler := handler.NewLedgerHandler(svc.Ledger)
	inventoryHandler := handler.NewInventoryHandler(svc.Inventory)
	shopHandler := handler.NewShopHandler(svc.Shop)
	jobHandler := handler.NewJobHandler(svc.Jobs)
	stockHandler := handler.NewStockHandler(svc.Stocks)
	tradeHandler := handler.NewTradeHandler(svc.Trades)

	r.Route("/users/{userID}", func(r chi.Router) {
		r.Get("/balance", ledgerHandler.HandleGetBalance)
		r.Get("/account", ledgerHandler.HandleGetAccount)
		r.Get("/inventory", inventoryHandler.HandleGetInventory)
		r.Get("/job", jobHandler.HandleGetUserJob)
		r.Get("/portfolio", stockHandler.HandlePortfolio)
		r.Get("/trades", tradeHandler.HandleListPending)
	})

	r.Route("/ledger", func(r chi.Router) {
		r.Post("/transfer", ledgerHandler.HandleTransfer)
		r.Post("/daily", ledgerHandler.HandleClaimDaily)
		r.Post("/rob", ledgerHandler.HandleRob)
	})

	r.Post("/inventory/dig", inventoryHandler.HandleDig)

	r.Route("/shop", func(r chi.Router) {
		r.Get("/", shopHandler.HandleListItems)
		r.Post("/buy", shopHandler.HandleBuyItem)
		r.Post("/sell", shopHandler.HandleSellItem)
	})

	r.Route("/jobs", func(r chi.Router) {
		r.Get("/", jobHandler.HandleGetJobs)
		r.Post("/apply", jobHandler.HandleApply)
		r.Post("/resign", jobHandler.HandleResign)
		r.Post("/work/start", jobHandler.HandleStartWork)
		r.Post("/work/submit", jobHandler.HandleSubmitWork)
	})

	r.Route("/stocks", func(r chi.Router) {
		r.Get("/", stockHandler.HandleMarketOverview)
		r.Get("/trends", stockHandler.HandleMarketTrends)
		r.Get("/{stockID}/history", stockHandler.HandleHistory)
		r.Post("/buy", stockHandler.HandleBuy)
		r.Post("/sell", stockHandler.HandleSell)
	})

	r.Route("/trades", func(r chi.Router) {
		r.Post("/", tradeHandler.HandlePropose)
		r.Route("/{tradeID}", func(r chi.Router) {
			r.Get("/", tradeHandler.HandleGetTrade)
			r.Post("/accept", tradeHandler.HandleAccept)
			r.Post("/reject", tradeHandler.HandleReject)
			r.Post("/cancel", tradeHandler.HandleCancel)
		})
	})

	r.Route("/admin", func(r chi.Router) {
		r.Post("/ledger/add", ledgerHandler.HandleAdminAddBalance)
		r.Post("/ledger/remove", ledgerHandler.HandleAdminRemoveBalance)
		r.Post("/inventory/add", inventoryHandler.HandleAdminAddItem)
		r.Post("/inventory/remove", inventoryHandler.HandleAdminRemoveItem)
		r.Post("/shop/items", shopHandler.HandleAdminAddItem)
		r.Post("/jobs", jobHandler.HandleAdminAddJob)
		r.Post("/stocks", stockHandler.HandleAdminAddStock)
	})
}

// Handler exposes the routed middleware stack
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func isQuietPath(path string) bool {
	for _, p := range quietPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		if isQuietPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		ctx := logger.WithRequestID(r.Context(), logger.GenerateRequestID())
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
