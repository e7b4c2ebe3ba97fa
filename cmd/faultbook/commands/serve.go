package commands

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/faultbook/faultbook"
	"github.com/faultbook/faultbook/demo"
)

func serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the demo catalog over HTTP",
		Long: `Expose the catalog as a small JSON API. GET /demos lists the catalog,
POST /demos/{name}/run executes one demo and returns its report.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			runner := demo.NewRunner(registry, log, cfg)

			r := chi.NewRouter()
			r.Use(middleware.Recoverer)

			r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
				writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
			})
			r.Get("/demos", func(w http.ResponseWriter, req *http.Request) {
				demos := registry.All()
				if topic := req.URL.Query().Get("topic"); topic != "" {
					demos = registry.ByTopic(topic)
				}
				writeJSON(w, http.StatusOK, demoSummaries(demos))
			})
			r.Post("/demos/{name}/run", func(w http.ResponseWriter, req *http.Request) {
				name := chi.URLParam(req, "name")
				report, err := runner.Run(req.Context(), name)
				if err != nil {
					writeError(w, err)
					return
				}
				writeJSON(w, http.StatusOK, report)
			})

			srv := &http.Server{
				Addr:              addr,
				Handler:           r,
				ReadHeaderTimeout: 5 * time.Second,
			}

			errc := make(chan error, 1)
			go func() {
				log.Info("listening on " + addr)
				errc <- srv.ListenAndServe()
			}()

			select {
			case err := <-errc:
				return faultbook.Wrap(err, "server stopped", faultbook.ClassUnavailable)
			case <-ctx.Done():
			}

			log.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				return faultbook.Wrap(err, "shutdown failed", faultbook.ClassTimeout)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:8080", "listen address")
	return cmd
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, faultbook.HTTPCode(err), faultbook.ErrorToJSON(err))
}
