package healthhttp

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/jonwraymond/healthops/health"
	"github.com/jonwraymond/healthops/observe"
)

const (
	kindProbe   = "probe"
	kindDetails = "details"
)

// API implements the health routes on a chi router.
type API struct {
	Aggregator *health.Aggregator

	// Logger receives evaluation failures and rejected requests.
	Logger observe.Logger

	// Authenticator protects the details routes when set. Probe routes are
	// never authenticated.
	Authenticator Authenticator

	// Metrics records probe traffic and is served at /metrics when set.
	Metrics *ProbeMetrics
}

// NewAPI constructs a health API.
func NewAPI(agg *health.Aggregator) *API {
	return &API{Aggregator: agg}
}

func (api *API) logger() observe.Logger {
	if api.Logger == nil {
		return observe.NopLogger()
	}
	return api.Logger
}

// RegisterRoutes attaches GET /<path> and GET /<path>/details for both
// verdicts, using the paths from the aggregator settings.
func (api *API) RegisterRoutes(r chi.Router) {
	s := api.Aggregator.Settings()
	logger := api.logger()

	for _, v := range []health.Verdict{health.Ready, health.Alive} {
		path := "/" + s.Path(v)

		r.Method(http.MethodGet, path,
			api.instrument(v, kindProbe, health.VerdictHandler(api.Aggregator, v, logger)))

		r.Group(func(r chi.Router) {
			if api.Authenticator != nil {
				r.Use(RequireAuth(api.Authenticator, logger))
			}
			r.Method(http.MethodGet, path+"/details",
				api.instrument(v, kindDetails, health.DetailedHandler(api.Aggregator, v)))
		})
	}
}

func (api *API) instrument(v health.Verdict, kind string, next http.Handler) http.Handler {
	if api.Metrics == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		api.Metrics.Observe(v.String(), kind, ww.Status(), time.Since(start))
	})
}

// Handler builds a standalone handler serving the health routes, plus
// /metrics when Metrics is set. Detail requests are traced with otelhttp;
// plain probes and metric scrapes are not.
func (api *API) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	api.RegisterRoutes(r)
	if api.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", api.Metrics.Handler())
	}

	s := api.Aggregator.Settings()
	probes := map[string]bool{
		"/" + s.ReadinessPath(): true,
		"/" + s.LivenessPath():  true,
		"/metrics":              true,
	}

	return otelhttp.NewHandler(
		r,
		"health.http",
		otelhttp.WithFilter(func(r *http.Request) bool {
			return !probes[r.URL.Path]
		}),
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return r.Method + " " + r.URL.Path
		}),
	)
}
