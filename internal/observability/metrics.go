package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// namespace defines the global prefix for all metrics (e.g., dbc_...).
const namespace = "dbc"

// lowLatencyBuckets covers in-process work such as a trace sink write.
// Range: 100µs to 500ms.
var lowLatencyBuckets = []float64{.0001, .0005, .001, .002, .005, .010, .025, .050, .100, .250, .500}

var (
	// -------------------------------------------------------------------------
	// CONTRACTS
	// -------------------------------------------------------------------------

	// ContractChecksTotal counts evaluated checks.
	// Metric: dbc_contract_checks_total
	ContractChecksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "contract",
		Name:      "checks_total",
		Help:      "Total contract checks evaluated, by category and result",
	}, []string{"category", "result"}) // result: pass, fail

	// ContractViolationsTotal counts failed checks by the mode that handled them.
	// Metric: dbc_contract_violations_total
	ContractViolationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "contract",
		Name:      "violations_total",
		Help:      "Total contract violations, by category and failure mode",
	}, []string{"category", "mode"})

	// -------------------------------------------------------------------------
	// TRACE SINKS
	// -------------------------------------------------------------------------

	// TraceWritesTotal counts trace lines written to a backend.
	// Metric: dbc_trace_writes_total
	TraceWritesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "trace",
		Name:      "writes_total",
		Help:      "Total trace writes per sink backend",
	}, []string{"sink", "status"}) // status: success, error

	// TraceWriteDuration measures the latency of a single trace write.
	// Metric: dbc_trace_write_duration_seconds
	TraceWriteDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "trace",
		Name:      "write_duration_seconds",
		Help:      "Time taken to persist one trace line",
		Buckets:   lowLatencyBuckets,
	}, []string{"sink"})

	// TraceSuppressedTotal counts repeated trace lines dropped by deduplication.
	TraceSuppressedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "trace",
		Name:      "suppressed_total",
		Help:      "Total trace lines suppressed as duplicates within the dedupe window",
	})

	// -------------------------------------------------------------------------
	// DEMO API (HTTP + gRPC)
	// -------------------------------------------------------------------------

	// HTTPReqDuration measures the latency of HTTP requests.
	// Metric: dbc_api_http_handling_seconds
	HTTPReqDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "api",
		Name:      "http_handling_seconds",
		Help:      "Time taken to handle HTTP requests",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path"})

	// HTTPReqTotal counts the total number of HTTP requests.
	// Metric: dbc_api_http_requests_total
	HTTPReqTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "api",
		Name:      "http_requests_total",
		Help:      "Total HTTP requests",
	}, []string{"method", "path", "code"})

	// GRPCReqTotal counts unary gRPC calls by final status code.
	// Metric: dbc_api_grpc_requests_total
	GRPCReqTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "api",
		Name:      "grpc_requests_total",
		Help:      "Total unary gRPC requests",
	}, []string{"method", "code"})
)
