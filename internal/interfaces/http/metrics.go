package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	peticionesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "geslab",
		Subsystem: "api",
		Name:      "http_requests_total",
		Help:      "Peticiones HTTP atendidas por ruta, método y estado.",
	}, []string{"ruta", "metodo", "estado"})

	duracionPeticion = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "geslab",
		Subsystem: "api",
		Name:      "http_request_duration_seconds",
		Help:      "Duración de las peticiones HTTP.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"ruta", "metodo"})
)

// MetricsMiddleware registra contador y duración de cada petición. Usa la
// plantilla de la ruta (no el path concreto) para acotar la cardinalidad.
func MetricsMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		inicio := time.Now()
		err := c.Next()

		ruta := c.Route().Path
		estado := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				estado = fe.Code
			} else {
				estado = fiber.StatusInternalServerError
			}
		}
		peticionesTotal.WithLabelValues(ruta, c.Method(), strconv.Itoa(estado)).Inc()
		duracionPeticion.WithLabelValues(ruta, c.Method()).Observe(time.Since(inicio).Seconds())
		return err
	}
}

// MetricsHandler expone el endpoint Prometheus /metrics.
func MetricsHandler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
