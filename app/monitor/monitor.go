package monitor

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/shook-dev/shook/app/database"
)

// ErrSweepInProgress is returned when a sweep is requested while one is
// already running. Overlapping ticks are skipped, never queued.
var ErrSweepInProgress = errors.New("sweep already in progress")

const serviceName = "monitor"

// perChannelTimeout bounds the work done for a single channel in a sweep
const perChannelTimeout = 5 * time.Minute

// Monitor drives the recurring check-and-process cycle over all
// subscribed channels.
type Monitor struct {
	channelRepo database.ChannelRepository
	subRepo     database.SubscriptionRepository
	videoRepo   database.VideoRepository

	source     VideoSource
	fallback   FallbackSource
	extractor  TranscriptExtractor
	summarizer Summarizer
	sink       DeliverySink
	reporter   ErrorReporter

	interval    time.Duration
	workerCount int

	mu       sync.Mutex
	running  bool
	sweeping bool
	cancel   context.CancelFunc
	wg       sync.WaitGroup

	locks    *keyedLocks
	queueLen atomic.Int64

	statsMu         sync.Mutex
	sweepCount      int64
	videosProcessed int64
	videosFailed    int64
	channelErrors   int64
	lastSweepAt     *time.Time
}

// Status is the operational snapshot exposed by the status endpoint.
type Status struct {
	Active          bool       `json:"active"`
	SweepInProgress bool       `json:"sweep_in_progress"`
	QueueLength     int        `json:"queue_length"`
	Interval        string     `json:"interval"`
	SweepCount      int64      `json:"sweep_count"`
	VideosProcessed int64      `json:"videos_processed"`
	VideosFailed    int64      `json:"videos_failed"`
	ChannelErrors   int64      `json:"channel_errors"`
	LastSweepAt     *time.Time `json:"last_sweep_at,omitempty"`
}

func New(channelRepo database.ChannelRepository, subRepo database.SubscriptionRepository,
	videoRepo database.VideoRepository, source VideoSource, fallback FallbackSource,
	extractor TranscriptExtractor, summarizer Summarizer, sink DeliverySink,
	reporter ErrorReporter, interval time.Duration, workerCount int) *Monitor {

	if workerCount < 1 {
		workerCount = 1
	}

	return &Monitor{
		channelRepo: channelRepo,
		subRepo:     subRepo,
		videoRepo:   videoRepo,
		source:      source,
		fallback:    fallback,
		extractor:   extractor,
		summarizer:  summarizer,
		sink:        sink,
		reporter:    reporter,
		interval:    interval,
		workerCount: workerCount,
		locks:       newKeyedLocks(),
	}
}

// Start arms the recurring timer. Ticks that land while a sweep is still
// running are skipped.
func (m *Monitor) Start() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.running {
		return
	}
	m.running = true

	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel

	m.wg.Add(1)
	go func() {
		defer m.wg.Done()

		ticker := time.NewTicker(m.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := m.Sweep(); err != nil {
					if errors.Is(err, ErrSweepInProgress) {
						slog.Warn("Previous sweep still running, skipping tick")
						continue
					}
					slog.Error("Sweep failed", "error", err)
				}
			}
		}
	}()

	slog.Info("Monitor started", "interval", m.interval, "workers", m.workerCount)
}

// Stop prevents further sweeps from being scheduled. A sweep already in
// progress runs to completion.
func (m *Monitor) Stop() {
	m.mu.Lock()
	if !m.running {
		m.mu.Unlock()
		return
	}
	m.running = false
	m.cancel()
	m.mu.Unlock()

	m.wg.Wait()
	slog.Info("Monitor stopped")
}

// Sweep runs one full pass over all subscribed channels. It returns
// ErrSweepInProgress when called while another sweep is running.
func (m *Monitor) Sweep() error {
	if !m.beginSweep() {
		return ErrSweepInProgress
	}
	defer m.endSweep()

	m.sweepAll(context.Background())

	return nil
}

func (m *Monitor) beginSweep() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.sweeping {
		return false
	}
	m.sweeping = true
	return true
}

func (m *Monitor) endSweep() {
	now := time.Now()

	m.statsMu.Lock()
	m.sweepCount++
	m.lastSweepAt = &now
	m.statsMu.Unlock()

	m.mu.Lock()
	m.sweeping = false
	m.mu.Unlock()
}

func (m *Monitor) Status() Status {
	m.mu.Lock()
	active := m.running
	sweeping := m.sweeping
	m.mu.Unlock()

	m.statsMu.Lock()
	defer m.statsMu.Unlock()

	return Status{
		Active:          active,
		SweepInProgress: sweeping,
		QueueLength:     int(m.queueLen.Load()),
		Interval:        m.interval.String(),
		SweepCount:      m.sweepCount,
		VideosProcessed: m.videosProcessed,
		VideosFailed:    m.videosFailed,
		ChannelErrors:   m.channelErrors,
		LastSweepAt:     m.lastSweepAt,
	}
}

func (m *Monitor) recordProcessed() {
	m.statsMu.Lock()
	m.videosProcessed++
	m.statsMu.Unlock()
}

func (m *Monitor) recordFailed() {
	m.statsMu.Lock()
	m.videosFailed++
	m.statsMu.Unlock()
}

func (m *Monitor) recordChannelError() {
	m.statsMu.Lock()
	m.channelErrors++
	m.statsMu.Unlock()
}
