package repl

import (
	"io"
	"log/slog"
	"net/http"
)

const maxCodeBytes = 64 << 10

// HTTPService exposes a Session over HTTP:
//
//	POST /repl/eval   code=<source>   -> the lines Rep would print
type HTTPService struct {
	session *Session
	mux     *http.ServeMux
}

func NewHTTPService(opts Options) *HTTPService {
	opts.Color = false
	rs := &HTTPService{
		session: NewSession(opts),
		mux:     http.NewServeMux(),
	}
	rs.routes()
	return rs
}

func (rs *HTTPService) routes() {
	rs.mux.HandleFunc("POST /repl/eval", rs.handleReplEval)
}

func (rs *HTTPService) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rs.mux.ServeHTTP(w, r)
}

func (rs *HTTPService) handleReplEval(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxCodeBytes)
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	code := r.PostFormValue("code")
	slog.Debug("evaluating over http", slog.String("remote", r.RemoteAddr), slog.Int("bytes", len(code)))

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := io.WriteString(w, rs.session.Rep(r.Context(), code)); err != nil {
		slog.Error("error writing repl response", slog.Any("error", err.Error()))
	}
}
