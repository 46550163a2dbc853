package bot

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	updatesHandled = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "datingbot",
			Name:      "updates_handled_total",
			Help:      "Count of handled Telegram updates by kind.",
		},
		[]string{"kind"},
	)

	registrationsCompleted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "datingbot",
			Name:      "registrations_completed_total",
			Help:      "Count of fully completed registration dialogs.",
		},
	)

	storageFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "datingbot",
			Name:      "storage_failures_total",
			Help:      "Count of storage errors surfaced to users.",
		},
	)
)

// RegisterMetrics регистрирует метрики бота в реестре по умолчанию.
// Повторные вызовы безопасны.
func RegisterMetrics() {
	once.Do(func() {
		prometheus.MustRegister(updatesHandled, registrationsCompleted, storageFailures)
	})
}

func incUpdateHandled(kind string) {
	updatesHandled.WithLabelValues(kind).Inc()
}

func incRegistrationCompleted() {
	registrationsCompleted.Inc()
}

func incStorageFailure() {
	storageFailures.Inc()
}
