package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// gateway maps REST routes onto a GameServiceServer
type gateway struct {
	srv       GameServiceServer
	mux       *runtime.ServeMux
	marshaler runtime.Marshaler
	logger    zerolog.Logger
}

// NewGateway returns a grpc-gateway mux serving the GameService under /api/v1
func NewGateway(srv GameServiceServer, logger zerolog.Logger) (*runtime.ServeMux, error) {
	gw := &gateway{
		srv:       srv,
		mux:       runtime.NewServeMux(),
		marshaler: &runtime.JSONPb{},
		logger:    logger,
	}

	routes := []struct {
		method  string
		pattern string
		handler runtime.HandlerFunc
	}{
		{http.MethodPost, "/api/v1/sessions", gw.createSession},
		{http.MethodGet, "/api/v1/sessions/{session_id}", gw.getSession},
		{http.MethodDelete, "/api/v1/sessions/{session_id}", gw.deleteSession},
		{http.MethodPost, "/api/v1/sessions/{session_id}/play/{cell}", gw.play},
		{http.MethodPost, "/api/v1/sessions/{session_id}/jump/{step}", gw.jumpTo},
		{http.MethodPost, "/api/v1/sessions/{session_id}/order", gw.toggleOrder},
	}

	for _, r := range routes {
		if err := gw.mux.HandlePath(r.method, r.pattern, r.handler); err != nil {
			return nil, err
		}
	}

	return gw.mux, nil
}

func (gw *gateway) createSession(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	resp, err := gw.srv.CreateSession(r.Context(), &CreateSessionRequest{})
	gw.respond(w, r, resp, err)
}

func (gw *gateway) getSession(w http.ResponseWriter, r *http.Request, params map[string]string) {
	resp, err := gw.srv.GetSession(r.Context(), &SessionRequest{SessionID: params["session_id"]})
	gw.respond(w, r, resp, err)
}

func (gw *gateway) deleteSession(w http.ResponseWriter, r *http.Request, params map[string]string) {
	resp, err := gw.srv.DeleteSession(r.Context(), &SessionRequest{SessionID: params["session_id"]})
	gw.respond(w, r, resp, err)
}

func (gw *gateway) play(w http.ResponseWriter, r *http.Request, params map[string]string) {
	cell, err := strconv.ParseInt(params["cell"], 10, 32)
	if err != nil {
		gw.respond(w, r, nil, status.Error(codes.InvalidArgument, "cell must be an integer"))
		return
	}

	resp, err := gw.srv.Play(r.Context(), &PlayRequest{SessionID: params["session_id"], Cell: int32(cell)})
	gw.respond(w, r, resp, err)
}

func (gw *gateway) jumpTo(w http.ResponseWriter, r *http.Request, params map[string]string) {
	step, err := strconv.ParseInt(params["step"], 10, 32)
	if err != nil {
		gw.respond(w, r, nil, status.Error(codes.InvalidArgument, "step must be an integer"))
		return
	}

	resp, err := gw.srv.JumpTo(r.Context(), &JumpToRequest{SessionID: params["session_id"], Step: int32(step)})
	gw.respond(w, r, resp, err)
}

func (gw *gateway) toggleOrder(w http.ResponseWriter, r *http.Request, params map[string]string) {
	resp, err := gw.srv.ToggleOrder(r.Context(), &SessionRequest{SessionID: params["session_id"]})
	gw.respond(w, r, resp, err)
}

// respond writes resp, or err through the gateway's error handler
func (gw *gateway) respond(w http.ResponseWriter, r *http.Request, resp any, err error) {
	if err != nil {
		runtime.HTTPError(r.Context(), gw.mux, gw.marshaler, w, r, err)
		return
	}

	buf, err := gw.marshaler.Marshal(resp)
	if err != nil {
		runtime.HTTPError(r.Context(), gw.mux, gw.marshaler, w, r, status.Errorf(codes.Internal, "failed to marshal response: %v", err))
		return
	}

	w.Header().Set("Content-Type", gw.marshaler.ContentType(resp))
	if _, err := w.Write(buf); err != nil {
		gw.logger.Warn().Err(err).Str("path", r.URL.Path).Msg("failed to write response")
	}
}

// NewHTTPHandler routes /api/ to the gateway and serves /health and /metrics beside it
func NewHTTPHandler(gwMux http.Handler, gatherer prometheus.Gatherer) http.Handler {
	httpMux := http.NewServeMux()

	// Health check endpoint
	httpMux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	httpMux.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	mainHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/") {
			gwMux.ServeHTTP(w, r)
		} else {
			httpMux.ServeHTTP(w, r)
		}
	})

	return cors(mainHandler)
}

// cors allows browser UIs on other origins to call the API
func cors(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		h.ServeHTTP(w, r)
	})
}
