// Kessler - Orbital Debris Tracking and Visualization Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kessler

package refresh

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/tomtom215/kessler/internal/cache"
	"github.com/tomtom215/kessler/internal/config"
	"github.com/tomtom215/kessler/internal/enrich"
	"github.com/tomtom215/kessler/internal/logging"
	"github.com/tomtom215/kessler/internal/models"
)

//nolint:gochecknoinits // init ensures consistent logging for tests
func init() {
	logging.Init(logging.Config{
		Level:  "info",
		Format: "console",
		Output: io.Discard,
	})
}

type stubFetcher struct {
	mu      sync.Mutex
	records []models.RawTrackingRecord
	err     error
	calls   int
}

func (s *stubFetcher) FetchRecords(_ context.Context, _ int) ([]models.RawTrackingRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.records, nil
}

func (s *stubFetcher) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func (s *stubFetcher) setErr(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

type stubSnapshots struct {
	mu       sync.Mutex
	key      string
	snapshot *models.CatalogSnapshot
	setCalls int
}

func (s *stubSnapshots) SetSnapshot(key string, snapshot *models.CatalogSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.key = key
	s.snapshot = snapshot
	s.setCalls++
}

func (s *stubSnapshots) state() (string, *models.CatalogSnapshot, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.key, s.snapshot, s.setCalls
}

type stubBroadcaster struct {
	mu          sync.Mutex
	totalCounts []int
	lastUpdated []string
}

func (s *stubBroadcaster) BroadcastCatalogUpdate(totalCount int, lastUpdated string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.totalCounts = append(s.totalCounts, totalCount)
	s.lastUpdated = append(s.lastUpdated, lastUpdated)
}

func (s *stubBroadcaster) broadcasts() ([]int, []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]int(nil), s.totalCounts...), append([]string(nil), s.lastUpdated...)
}

// catalogRecords returns two enrichable records and one with an
// unparseable mean motion that the pipeline drops.
func catalogRecords() []models.RawTrackingRecord {
	return []models.RawTrackingRecord{
		{"NORAD_CAT_ID": "25544", "OBJECT_NAME": "ISS (ZARYA)", "MEAN_MOTION": "15.49309239", "APOGEE": "420", "PERIGEE": "410"},
		{"NORAD_CAT_ID": "43013", "OBJECT_NAME": "STARLINK-1", "MEAN_MOTION": "15.06", "APOGEE": "550", "PERIGEE": "540"},
		{"NORAD_CAT_ID": "99999", "MEAN_MOTION": "N/A"},
	}
}

func testRefreshConfig() *config.Config {
	return &config.Config{
		API:     config.APIConfig{FetchLimit: 500, MaxFetchLimit: 10000},
		Refresh: config.RefreshConfig{Enabled: true, Interval: 10 * time.Minute},
	}
}

func TestNewRefresher_MinimumInterval(t *testing.T) {
	tests := []struct {
		name     string
		interval time.Duration
		want     time.Duration
	}{
		{"below minimum clamped", 5 * time.Second, time.Minute},
		{"at minimum kept", time.Minute, time.Minute},
		{"above minimum kept", 10 * time.Minute, 10 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testRefreshConfig()
			cfg.Refresh.Interval = tt.interval

			r := NewRefresher(&stubFetcher{}, enrich.NewPipeline(), nil, nil, cfg)
			if r.interval != tt.want {
				t.Errorf("interval = %v, want %v", r.interval, tt.want)
			}
		})
	}
}

func TestRefreshNow_Success(t *testing.T) {
	fetcher := &stubFetcher{records: catalogRecords()}
	snapshots := &stubSnapshots{}
	broadcaster := &stubBroadcaster{}

	r := NewRefresher(fetcher, enrich.NewPipeline(), snapshots, broadcaster, testRefreshConfig())

	if !r.LastRefreshTime().IsZero() {
		t.Error("Expected zero last refresh time before first run")
	}

	if err := r.RefreshNow(context.Background()); err != nil {
		t.Fatalf("RefreshNow() error = %v", err)
	}

	key, snapshot, setCalls := snapshots.state()
	if setCalls != 1 {
		t.Fatalf("Expected 1 cache store, got %d", setCalls)
	}
	if want := cache.GenerateKey("debris", 500); key != want {
		t.Errorf("Cache key = %q, want %q (debris endpoint default key)", key, want)
	}
	if snapshot.TotalCount() != 2 {
		t.Errorf("Snapshot TotalCount = %d, want 2 (unparseable record dropped)", snapshot.TotalCount())
	}
	if snapshot.FetchedAt.IsZero() {
		t.Error("Snapshot FetchedAt not set")
	}

	counts, stamps := broadcaster.broadcasts()
	if len(counts) != 1 || counts[0] != 2 {
		t.Errorf("Broadcast counts = %v, want [2]", counts)
	}
	if len(stamps) != 1 {
		t.Fatalf("Expected 1 broadcast timestamp, got %d", len(stamps))
	}
	if _, err := time.Parse(models.ClockFormat, stamps[0]); err != nil {
		t.Errorf("Broadcast last_updated %q is not HH:MM:SS: %v", stamps[0], err)
	}

	if r.LastRefreshTime().IsZero() {
		t.Error("Expected last refresh time to be set after success")
	}
}

func TestRefreshNow_FetchFailure(t *testing.T) {
	fetcher := &stubFetcher{err: errors.New("provider outage")}
	snapshots := &stubSnapshots{}
	broadcaster := &stubBroadcaster{}

	r := NewRefresher(fetcher, enrich.NewPipeline(), snapshots, broadcaster, testRefreshConfig())

	err := r.RefreshNow(context.Background())
	if err == nil {
		t.Fatal("Expected error from failed fetch")
	}

	if _, _, setCalls := snapshots.state(); setCalls != 0 {
		t.Errorf("Expected no cache store on failure, got %d", setCalls)
	}
	if counts, _ := broadcaster.broadcasts(); len(counts) != 0 {
		t.Errorf("Expected no broadcasts on failure, got %v", counts)
	}
	if !r.LastRefreshTime().IsZero() {
		t.Error("Expected zero last refresh time after failure")
	}
}

func TestRefreshNow_OptionalDependencies(t *testing.T) {
	fetcher := &stubFetcher{records: catalogRecords()}

	// Nil cache and hub: refresh still succeeds, priming and broadcast skipped
	r := NewRefresher(fetcher, enrich.NewPipeline(), nil, nil, testRefreshConfig())

	if err := r.RefreshNow(context.Background()); err != nil {
		t.Fatalf("RefreshNow() with nil cache/hub error = %v", err)
	}
	if r.LastRefreshTime().IsZero() {
		t.Error("Expected last refresh time to be set")
	}
}

func TestRun_ImmediateAndPeriodicRefresh(t *testing.T) {
	fetcher := &stubFetcher{records: catalogRecords()}
	snapshots := &stubSnapshots{}

	// Short interval via direct construction; NewRefresher clamps to 1m
	r := &Refresher{
		client:   fetcher,
		pipeline: enrich.NewPipeline(),
		cache:    snapshots,
		interval: 20 * time.Millisecond,
		limit:    10,
		cacheKey: cache.GenerateKey("debris", 10),
	}

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- r.Run(ctx)
	}()

	// Immediate refresh plus at least two ticks
	deadline := time.After(2 * time.Second)
	for fetcher.callCount() < 3 {
		select {
		case <-deadline:
			t.Fatalf("Expected >= 3 refreshes, got %d", fetcher.callCount())
		case <-time.After(5 * time.Millisecond):
		}
	}

	cancel()
	select {
	case err := <-errCh:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Run() = %v, want context.Canceled", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Run did not return after context cancellation")
	}

	if _, _, setCalls := snapshots.state(); setCalls < 3 {
		t.Errorf("Expected >= 3 cache stores, got %d", setCalls)
	}
}

func TestRun_ContinuesAfterFailure(t *testing.T) {
	fetcher := &stubFetcher{records: catalogRecords(), err: errors.New("provider outage")}
	snapshots := &stubSnapshots{}

	r := &Refresher{
		client:   fetcher,
		pipeline: enrich.NewPipeline(),
		cache:    snapshots,
		interval: 20 * time.Millisecond,
		limit:    10,
		cacheKey: cache.GenerateKey("debris", 10),
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	errCh := make(chan error, 1)
	go func() {
		errCh <- r.Run(ctx)
	}()

	// Let a few cycles fail, then recover the provider
	deadline := time.After(2 * time.Second)
	for fetcher.callCount() < 2 {
		select {
		case <-deadline:
			t.Fatalf("Expected >= 2 attempts, got %d", fetcher.callCount())
		case <-time.After(5 * time.Millisecond):
		}
	}
	fetcher.setErr(nil)

	for {
		if _, _, setCalls := snapshots.state(); setCalls >= 1 {
			break
		}
		select {
		case <-deadline:
			t.Fatal("Loop did not recover after provider came back")
		case <-time.After(5 * time.Millisecond):
		}
	}

	cancel()
	select {
	case <-errCh:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after context cancellation")
	}
}

func TestRefreshNow_SerializesWithTicker(t *testing.T) {
	fetcher := &stubFetcher{records: catalogRecords()}
	snapshots := &stubSnapshots{}

	r := NewRefresher(fetcher, enrich.NewPipeline(), snapshots, nil, testRefreshConfig())

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = r.RefreshNow(context.Background())
		}()
	}
	wg.Wait()

	if got := fetcher.callCount(); got != 5 {
		t.Errorf("Expected 5 serialized fetches, got %d", got)
	}
	if _, _, setCalls := snapshots.state(); setCalls != 5 {
		t.Errorf("Expected 5 cache stores, got %d", setCalls)
	}
}
