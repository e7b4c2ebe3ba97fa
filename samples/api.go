package samples

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/faultbook/faultbook"
	"github.com/faultbook/faultbook/demo"
	"github.com/faultbook/faultbook/library"
)

func apiDemos() []demo.Demo {
	return []demo.Demo{
		{
			Name:     "endpoint-not-found",
			Topic:    "api",
			Synopsis: "requesting a book the catalog endpoint does not have",
			Expect:   faultbook.ClassNotFound,
			Run: func(ctx context.Context) error {
				return callCatalog(ctx, "/books/The%20Wind-Up%20Bird%20Chronicle")
			},
		},
		{
			Name:     "remote-internal-error",
			Topic:    "api",
			Synopsis: "the catalog endpoint fails internally and reports 500",
			Expect:   faultbook.ClassInternal,
			Run: func(ctx context.Context) error {
				return callCatalog(ctx, "/books/burn")
			},
		},
	}
}

// callCatalog spins up a short-lived catalog server, performs one GET and
// converts a failure status into a fault.
func callCatalog(ctx context.Context, path string) error {
	addr, stop, err := startCatalog()
	if err != nil {
		return err
	}
	defer stop()

	url := "http://" + addr + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return faultbook.Wrap(err, "build request", faultbook.CategoryAPI)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return faultbook.Wrap(err, "call catalog", faultbook.CategoryAPI, "url", url)
	}
	defer resp.Body.Close()

	if class := faultbook.ClassFromStatusCode(resp.StatusCode); class != faultbook.ClassUnknown {
		return faultbook.New("catalog request failed", class,
			faultbook.CategoryAPI, "status", resp.StatusCode, "url", url)
	}
	return nil
}

// startCatalog serves the stock shelf over HTTP on a loopback port.
func startCatalog() (addr string, stop func(), err error) {
	shelf := library.StockShelf()

	r := chi.NewRouter()
	r.Get("/books/{title}", func(w http.ResponseWriter, req *http.Request) {
		title := chi.URLParam(req, "title")
		if title == "burn" {
			renderError(w, faultbook.New("catalog storage failed",
				faultbook.ClassInternal, faultbook.CategoryAPI))
			return
		}
		book, err := shelf.Find(title)
		if err != nil {
			renderError(w, err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(book)
	})

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return "", nil, faultbook.Wrap(err, "listen", faultbook.CategoryNetwork)
	}
	srv := &http.Server{Handler: r, ReadHeaderTimeout: 5 * time.Second}
	go func() { _ = srv.Serve(ln) }()

	return ln.Addr().String(), func() { _ = srv.Close() }, nil
}

func renderError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(faultbook.HTTPCode(err))
	_ = json.NewEncoder(w).Encode(map[string]any{"error": faultbook.ErrorToJSON(err)})
}
