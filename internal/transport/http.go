// Package transport exposes the service health and metrics surfaces.
package transport

import (
	"net/http"
	"time"

	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

const healthzPath = "/healthz"

// NewHTTPHandler serves liveness on /ping and Prometheus metrics. With a
// non-nil health client it also serves /healthz, translated from the gRPC
// health service.
func NewHTTPHandler(health healthpb.HealthClient) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ping", ping)
	mux.Handle("/metrics", promhttp.Handler())
	if health != nil {
		gw := gwruntime.NewServeMux(gwruntime.WithHealthEndpointAt(health, healthzPath))
		mux.Handle(healthzPath, gw)
	}
	return cors.Default().Handler(mux)
}

// NewHTTPServer wraps handler with the server timeouts used across services.
func NewHTTPServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
}

func ping(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	w.WriteHeader(http.StatusOK)
}
