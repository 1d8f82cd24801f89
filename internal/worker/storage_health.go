package worker

import (
	"context"
	"time"

	"github.com/osse101/DecisionSpinner_Go/internal/logger"
	"github.com/osse101/DecisionSpinner_Go/internal/metrics"
)

// Pinger is a storage driver that can report reachability
type Pinger interface {
	Ping(ctx context.Context) error
}

// StorageHealthJob pings the state store and exports the result as metrics
type StorageHealthJob struct {
	store   Pinger
	driver  string
	timeout time.Duration
}

// NewStorageHealthJob creates a health job for the named driver
func NewStorageHealthJob(store Pinger, driver string) *StorageHealthJob {
	return &StorageHealthJob{
		store:   store,
		driver:  driver,
		timeout: DefaultHealthCheckTimeout,
	}
}

// Process runs one check. A failed ping is reported, not returned, so the
// pool does not log it twice.
func (j *StorageHealthJob) Process(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, j.timeout)
	defer cancel()

	start := time.Now()
	err := j.store.Ping(ctx)
	elapsed := time.Since(start)

	metrics.StorageCheckDuration.WithLabelValues(j.driver).Observe(elapsed.Seconds())

	log := logger.FromContext(ctx)
	if err != nil {
		metrics.StorageUp.WithLabelValues(j.driver).Set(0)
		log.Warn(LogMsgStorageUnhealthy, "driver", j.driver, "error", err)
		return nil
	}

	metrics.StorageUp.WithLabelValues(j.driver).Set(1)
	log.Debug(LogMsgStorageHealthy, "driver", j.driver, "duration", elapsed)
	return nil
}
