package metrics

import "github.com/prometheus/client_golang/prometheus"

// Metrics groups the dispatch counters. A nil *Metrics is a valid no-op.
type Metrics struct {
	dispatchOutcomes *prometheus.CounterVec
	courierRetries   *prometheus.CounterVec
	statusChecks     *prometheus.CounterVec
	httpRequests     *prometheus.CounterVec
}

// New creates the counters and registers them on reg (prometheus.DefaultRegisterer if nil).
func New(reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &Metrics{
		dispatchOutcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dispatch_outcomes_total",
			Help: "Automatic dispatch attempts by vendor and outcome",
		}, []string{"vendor", "outcome"}),
		courierRetries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "courier_call_retries_total",
			Help: "Retry attempts performed against courier vendor APIs",
		}, []string{"vendor"}),
		statusChecks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "shipment_status_checks_total",
			Help: "Vendor status checks performed by the sync worker",
		}, []string{"vendor", "result"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"method", "path", "status"}),
	}
	for _, c := range []prometheus.Collector{m.dispatchOutcomes, m.courierRetries, m.statusChecks, m.httpRequests} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) DispatchOutcome(vendor, outcome string) {
	if m == nil {
		return
	}
	m.dispatchOutcomes.WithLabelValues(vendor, outcome).Inc()
}

func (m *Metrics) CourierRetry(vendor string) {
	if m == nil {
		return
	}
	m.courierRetries.WithLabelValues(vendor).Inc()
}

func (m *Metrics) StatusCheck(vendor, result string) {
	if m == nil {
		return
	}
	m.statusChecks.WithLabelValues(vendor, result).Inc()
}

func (m *Metrics) HTTPRequest(method, path, status string) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, path, status).Inc()
}
