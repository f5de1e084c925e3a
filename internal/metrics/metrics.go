package metrics

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

var (
	ErrorsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "karirku_errors_total",
			Help: "Total number of occurred errors.",
		},
		[]string{"type"},
	)
	ValidationsSubmittedCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "karirku_validations_submitted_total",
			Help: "Total number of stored validation requests.",
		},
	)
	ApplicationsSubmittedCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "karirku_applications_submitted_total",
			Help: "Total number of stored job applications.",
		},
	)
	ApplicationsRejectedCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "karirku_applications_rejected_total",
			Help: "Total number of rejected application submissions.",
		},
		[]string{"reason"},
	)
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "karirku_http_request_duration_seconds",
			Help:    "Duration of handled HTTP requests in seconds.",
			Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
		[]string{"route"},
	)
	PositionApplicants = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "karirku_position_applicants",
			Help: "Current number of non-rejected applicants per position.",
		},
		[]string{"vacancy", "position"},
	)
)

func StartMetricsServer(port int) {

	prometheus.MustRegister(ErrorsCounter)
	prometheus.MustRegister(ValidationsSubmittedCounter)
	prometheus.MustRegister(ApplicationsSubmittedCounter)
	prometheus.MustRegister(ApplicationsRejectedCounter)
	prometheus.MustRegister(RequestDuration)
	prometheus.MustRegister(PositionApplicants)

	http.Handle("/metrics", promhttp.Handler())
	go func() {
		log.Fatal(http.ListenAndServe(fmt.Sprintf(":%d", port), nil))
	}()
}
