// internal/platform/boot/server.go
package boot

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"storefront/internal/adapters/in/http/middleware"
	appcfg "storefront/internal/infra/config"
	shared "storefront/internal/platform/di/shared"
)

// atomicHandler allows swapping the underlying handler at runtime safely.
type atomicHandler struct {
	v atomic.Value // stores http.Handler
}

func newAtomicHandler(initial http.Handler) *atomicHandler {
	ah := &atomicHandler{}
	if initial == nil {
		initial = http.NotFoundHandler()
	}
	ah.v.Store(initial)
	return ah
}

func (h *atomicHandler) Store(next http.Handler) {
	if next == nil {
		return
	}
	h.v.Store(next)
}

func (h *atomicHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	cur, _ := h.v.Load().(http.Handler)
	if cur == nil {
		http.NotFound(w, r)
		return
	}
	cur.ServeHTTP(w, r)
}

// Module is what a service adds on top of the shared infra.
type Module interface {
	Register(r chi.Router)
	Close() error
}

// BuildFunc constructs the service module once infra is up.
type BuildFunc func(ctx context.Context, infra *shared.Infra) (Module, error)

// Options configures Run.
type Options struct {
	Name   string
	Config *appcfg.Config
	Log    *zap.Logger
	Build  BuildFunc

	InitTimeout     time.Duration
	ShutdownTimeout time.Duration
}

func healthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// newBaseRouter returns a router with the middleware chain and /healthz.
func newBaseRouter(cfg *appcfg.Config, log *zap.Logger) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))
	r.Use(middleware.Recover(log))
	r.Use(middleware.RequestLog(log))
	r.Get("/healthz", healthz)
	return r
}

// Run listens immediately with a healthz-only router, builds infra and the
// module in the background, then swaps in the full router. It blocks until
// SIGINT/SIGTERM has drained the server.
func Run(ctx context.Context, o Options) error {
	if o.Config == nil || o.Build == nil {
		return errors.New("boot: config and build are required")
	}
	root := o.Log
	if root == nil {
		root = zap.NewNop()
	}
	log := root.Named("boot").With(zap.String("service", o.Name))
	if o.InitTimeout <= 0 {
		o.InitTimeout = 2 * time.Minute
	}
	if o.ShutdownTimeout <= 0 {
		o.ShutdownTimeout = 25 * time.Second
	}

	switcher := newAtomicHandler(newBaseRouter(o.Config, root))
	srv := &http.Server{
		Addr:         ":" + o.Config.Port,
		Handler:      switcher,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	var (
		infraHolder  atomic.Pointer[shared.Infra]
		moduleHolder atomic.Value // stores Module
	)
	shuttingDown := make(chan struct{})
	stopped := make(chan struct{})

	// Graceful shutdown
	go func() {
		c := make(chan os.Signal, 1)
		signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
		sig := <-c

		close(shuttingDown)
		log.Info("received signal; shutting down", zap.String("signal", sig.String()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), o.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Warn("server shutdown error", zap.Error(err))
		}

		if m, ok := moduleHolder.Load().(Module); ok && m != nil {
			if err := m.Close(); err != nil {
				log.Warn("module close error", zap.Error(err))
			}
		}
		if infra := infraHolder.Swap(nil); infra != nil {
			if err := infra.Close(); err != nil {
				log.Warn("infra close error", zap.Error(err))
			}
		}
		close(stopped)
	}()

	serveErr := make(chan error, 1)
	go func() {
		log.Info("listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	// Heavy DI init in background; then swap handler to the full router
	go func() {
		initCtx, cancel := context.WithTimeout(ctx, o.InitTimeout)
		defer cancel()

		infra, err := shared.NewInfra(initCtx, o.Config, root)
		if err != nil {
			log.Warn("shared infra init failed; serving /healthz only", zap.Error(err))
			return
		}
		infraHolder.Store(infra)

		m, err := o.Build(initCtx, infra)
		if err != nil {
			if infraHolder.CompareAndSwap(infra, nil) {
				_ = infra.Close()
			}
			log.Warn("di init failed; serving /healthz only", zap.Error(err))
			return
		}
		moduleHolder.Store(m)

		select {
		case <-shuttingDown:
			_ = m.Close()
			if infraHolder.CompareAndSwap(infra, nil) {
				_ = infra.Close()
			}
			return
		default:
		}

		full := newBaseRouter(o.Config, root)
		m.Register(full)
		switcher.Store(full)
		log.Info("handler switched to full router")
	}()

	select {
	case err := <-serveErr:
		return err
	case <-stopped:
	}
	log.Info("server stopped")
	return nil
}
