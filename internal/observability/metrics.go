package observability

import "github.com/prometheus/client_golang/prometheus"

const (
	namespace     = "weblog"
	subsystemHTTP = "http"
	subsystemLog  = "log"

	metricSuccessName = "requests_success_total"
	metricErrorName   = "requests_error_total"
	metricLinesName   = "lines_total"
	helpSuccess       = "Total access-logged requests with a handled status"
	helpError         = "Total access-logged requests with any other status"
	helpLines         = "Total log lines written to the sink"
)

var (
	// SuccessCounter counts requests classified as success.
	SuccessCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystemHTTP,
		Name:      metricSuccessName,
		Help:      helpSuccess,
	})
	// ErrorCounter counts requests classified as anything else.
	ErrorCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystemHTTP,
		Name:      metricErrorName,
		Help:      helpError,
	})
	// LineCounter counts emitted log lines.
	LineCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystemLog,
		Name:      metricLinesName,
		Help:      helpLines,
	})
)

// Register registers all observability metrics.
func Register() {
	prometheus.MustRegister(SuccessCounter, ErrorCounter, LineCounter)
}
