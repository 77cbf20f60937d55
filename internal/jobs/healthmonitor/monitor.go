package healthmonitor

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// Monitor периодически проверяет parking API и публикует gauge upstream_available
// Только наблюдение: решения о fallback принимаются клиентом на каждый вызов
type Monitor struct {
	prober  Prober
	gauge   Gauge
	logger  Logger
	timeout time.Duration
	cron    *cron.Cron

	mu        sync.Mutex
	checked   bool
	available bool
}

// New создает монитор с расписанием в формате cron ("@every 30s", "*/1 * * * *")
func New(prober Prober, gauge Gauge, schedule string, timeout time.Duration, logger Logger) (*Monitor, error) {
	m := &Monitor{
		prober:  prober,
		gauge:   gauge,
		logger:  logger,
		timeout: timeout,
		cron:    cron.New(),
	}

	if _, err := m.cron.AddFunc(schedule, func() { m.RunOnce(context.Background()) }); err != nil {
		return nil, fmt.Errorf("healthmonitor: invalid schedule %q: %w", schedule, err)
	}

	return m, nil
}

// Start запускает проверки по расписанию (первая проверка выполняется сразу)
func (m *Monitor) Start() {
	m.RunOnce(context.Background())
	m.cron.Start()
	m.logger.Info("HealthMonitor: started")
}

// Stop останавливает расписание; возвращенный контекст завершается после текущей проверки
func (m *Monitor) Stop() context.Context {
	ctx := m.cron.Stop()
	m.logger.Info("HealthMonitor: stopped")
	return ctx
}

// RunOnce выполняет одну проверку и обновляет gauge
func (m *Monitor) RunOnce(ctx context.Context) bool {
	if m.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.timeout)
		defer cancel()
	}

	available := m.prober.CheckAvailability(ctx)
	m.gauge.SetUpstreamAvailable(available)

	m.mu.Lock()
	changed := !m.checked || m.available != available
	m.checked = true
	m.available = available
	m.mu.Unlock()

	if changed {
		if available {
			m.logger.Info("HealthMonitor: parking API is available")
		} else {
			m.logger.Warn("HealthMonitor: parking API is unavailable, reads are served from fallback data")
		}
	}

	return available
}
