package calculator

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"lizzyKeypad/internal/domain"
)

var (
	keyPresses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "calculator_key_presses_total",
			Help: "Total number of keys applied to calculator sessions",
		},
		[]string{"kind"},
	)

	computations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "calculator_computations_total",
			Help: "Total number of completed computations",
		},
		[]string{"operation", "outcome"},
	)

	sessionsOpened = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "calculator_sessions_opened_total",
			Help: "Total number of calculator sessions created",
		},
	)
)

// keyLabel — низкокардинальная метка клавиши для Prometheus.
func keyLabel(k domain.Key) string {
	switch k.Kind {
	case domain.KeyDigit:
		return "digit"
	case domain.KeyDecimal:
		return "decimal"
	case domain.KeyOperator:
		return "operator"
	case domain.KeyEquals:
		return "equals"
	case domain.KeyClear:
		return "clear"
	case domain.KeyDelete:
		return "delete"
	case domain.KeyToggleSign:
		return "toggle_sign"
	case domain.KeyPercent:
		return "percent"
	}
	return "unknown"
}
