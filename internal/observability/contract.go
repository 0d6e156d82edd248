package observability

import (
	"github.com/rafaeljc/dbc/pkg/contract"
)

// ContractMetrics records contract outcomes in Prometheus.
// It implements contract.Observer.
type ContractMetrics struct{}

var _ contract.Observer = ContractMetrics{}

// ObserveCheck increments dbc_contract_checks_total.
func (ContractMetrics) ObserveCheck(category contract.Category, passed bool) {
	result := "pass"
	if !passed {
		result = "fail"
	}
	ContractChecksTotal.WithLabelValues(category.String(), result).Inc()
}

// ObserveViolation increments dbc_contract_violations_total.
func (ContractMetrics) ObserveViolation(category contract.Category, mode contract.Mode) {
	ContractViolationsTotal.WithLabelValues(category.String(), mode.String()).Inc()
}
