package main

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/sells-group/csrd-engine/internal/config"
	"github.com/sells-group/csrd-engine/internal/engine"
)

const accessCookie = "csrd_access"

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the report API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if err := cfg.Validate("serve"); err != nil {
			return err
		}

		srvCfg := cfg.Server
		if servePort != 0 {
			srvCfg.Port = servePort
		}

		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", srvCfg.Port),
			Handler: buildRouter(srvCfg),
		}

		// Graceful shutdown
		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down server")
			srv.Shutdown(ctx)
		}()

		zap.L().Info("starting server", zap.Int("port", srvCfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return eris.Wrap(err, "server listen")
		}

		return nil
	},
}

// buildRouter wires the API routes, CORS, rate limiting and the access gate.
func buildRouter(srvCfg config.ServerConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   srvCfg.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	}))
	r.Use(rateLimit(srvCfg.RateLimitPerMinute))

	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Post("/api/login", func(w http.ResponseWriter, req *http.Request) {
		var body struct {
			Password string `json:"password"`
		}
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
			return
		}
		if srvCfg.AccessPassword == "" || body.Password != srvCfg.AccessPassword {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
			return
		}
		http.SetCookie(w, &http.Cookie{
			Name:     accessCookie,
			Value:    srvCfg.AccessPassword,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Group(func(r chi.Router) {
		r.Use(accessGate(srvCfg.AccessPassword))

		r.Post("/api/modules/{id}", func(w http.ResponseWriter, req *http.Request) {
			id := engine.ModuleID(chi.URLParam(req, "id"))

			var in engine.ModuleInput
			if err := json.NewDecoder(req.Body).Decode(&in); err != nil {
				writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
				return
			}

			res, ok := engine.RunModule(id, &in)
			if !ok {
				writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown module id"})
				return
			}

			zap.L().Info("module calculated",
				zap.String("module", string(id)),
				zap.Float64("value", res.Value),
			)
			writeJSON(w, http.StatusOK, engine.AggregatedResult{
				ModuleID: id,
				Title:    engine.Title(id),
				Result:   res,
			})
		})

		r.Post("/api/report", func(w http.ResponseWriter, req *http.Request) {
			var in engine.ModuleInput
			if err := json.NewDecoder(req.Body).Decode(&in); err != nil {
				writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
				return
			}

			results := engine.AggregateResults(&in)
			envelope := reportEnvelope{
				ReportID:    uuid.NewString(),
				GeneratedAt: time.Now().UTC().Format(time.RFC3339),
				Results:     results,
			}

			zap.L().Info("report calculated",
				zap.String("reportId", envelope.ReportID),
				zap.Int("modules", len(results)),
			)
			writeJSON(w, http.StatusOK, envelope)
		})
	})

	return r
}

type reportEnvelope struct {
	ReportID    string                    `json:"reportId"`
	GeneratedAt string                    `json:"generatedAt"`
	Results     []engine.AggregatedResult `json:"results"`
}

// accessGate requires the shared-secret cookie when a password is configured.
func accessGate(password string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if password != "" {
				c, err := req.Cookie(accessCookie)
				if err != nil || c.Value != password {
					writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
					return
				}
			}
			next.ServeHTTP(w, req)
		})
	}
}

// rateLimit applies a per-client token bucket keyed by remote IP.
func rateLimit(perMinute int) func(http.Handler) http.Handler {
	var (
		mu      sync.Mutex
		clients = map[string]*rate.Limiter{}
	)
	limiterFor := func(ip string) *rate.Limiter {
		mu.Lock()
		defer mu.Unlock()
		lim, ok := clients[ip]
		if !ok {
			lim = rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), perMinute)
			clients[ip] = lim
		}
		return lim
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ip, _, err := net.SplitHostPort(req.RemoteAddr)
			if err != nil {
				ip = req.RemoteAddr
			}
			if !limiterFor(ip).Allow() {
				writeJSON(w, http.StatusTooManyRequests, map[string]string{"error": "rate limit exceeded"})
				return
			}
			next.ServeHTTP(w, req)
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		zap.L().Error("write response", zap.Error(err))
	}
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}
