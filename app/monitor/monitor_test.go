package monitor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/shook-dev/shook/app/captions"
	"github.com/shook-dev/shook/app/database"
	"github.com/shook-dev/shook/app/slack"
	"github.com/shook-dev/shook/app/youtube"
)

// --- mocks ---

type mockChannelRepo struct {
	mu       sync.Mutex
	channels []database.Channel
	latest   map[string]string
}

func newMockChannelRepo(channels ...database.Channel) *mockChannelRepo {
	return &mockChannelRepo{channels: channels, latest: map[string]string{}}
}

func (m *mockChannelRepo) GetAll() ([]database.Channel, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]database.Channel, len(m.channels))
	copy(out, m.channels)
	return out, nil
}

func (m *mockChannelRepo) GetByChannelID(channelID string) (*database.Channel, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, channel := range m.channels {
		if channel.ChannelID == channelID {
			c := channel
			return &c, nil
		}
	}
	return nil, nil
}

func (m *mockChannelRepo) Upsert(channel database.Channel) (*database.Channel, error) {
	return &channel, nil
}

func (m *mockChannelRepo) UpdateLatestVideoID(channelID, videoID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.latest[channelID] = videoID
	return nil
}

func (m *mockChannelRepo) Delete(channelID string) error { return nil }

func (m *mockChannelRepo) GetChannelCount() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.channels), nil
}

func (m *mockChannelRepo) latestFor(channelID string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.latest[channelID]
}

type mockSubRepo struct {
	subscribers map[string][]database.Subscriber
}

func (m *mockSubRepo) Subscribe(userID, channelID string) error   { return nil }
func (m *mockSubRepo) Unsubscribe(userID, channelID string) error { return nil }

func (m *mockSubRepo) GetSubscribers(channelID string) ([]database.Subscriber, error) {
	return m.subscribers[channelID], nil
}

func (m *mockSubRepo) ListForUser(userID string) ([]database.Subscription, error) {
	return nil, nil
}

func (m *mockSubRepo) CountForChannel(channelID string) (int, error) {
	return len(m.subscribers[channelID]), nil
}

type mockVideoRepo struct {
	mu     sync.Mutex
	videos map[string]*database.Video
}

func newMockVideoRepo() *mockVideoRepo {
	return &mockVideoRepo{videos: map[string]*database.Video{}}
}

func (m *mockVideoRepo) GetByVideoID(videoID string) (*database.Video, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if video, ok := m.videos[videoID]; ok {
		v := *video
		return &v, nil
	}
	return nil, nil
}

func (m *mockVideoRepo) Create(video database.Video) (*database.Video, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.videos[video.VideoID]; ok {
		v := *existing
		return &v, nil
	}
	video.Status = database.VideoStatusPending
	m.videos[video.VideoID] = &video
	v := video
	return &v, nil
}

func (m *mockVideoRepo) MarkProcessed(videoID, summary, transcript string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	video, ok := m.videos[videoID]
	if !ok || video.Status != database.VideoStatusPending {
		return false, nil
	}
	video.Status = database.VideoStatusProcessed
	video.Summary = summary
	video.Transcript = transcript
	video.ErrorMessage = ""
	return true, nil
}

func (m *mockVideoRepo) MarkFailed(videoID, errorMessage string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	video, ok := m.videos[videoID]
	if !ok || video.Status != database.VideoStatusPending {
		return false, nil
	}
	video.Status = database.VideoStatusFailed
	video.ErrorMessage = errorMessage
	return true, nil
}

func (m *mockVideoRepo) ResetForRetry(videoID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	video, ok := m.videos[videoID]
	if !ok || video.Status != database.VideoStatusFailed {
		return false, nil
	}
	video.Status = database.VideoStatusPending
	video.ErrorMessage = ""
	return true, nil
}

func (m *mockVideoRepo) ListForChannel(channelID string, limit int) ([]database.Video, error) {
	return nil, nil
}

func (m *mockVideoRepo) ListRecent(limit int) ([]database.Video, error) { return nil, nil }

func (m *mockVideoRepo) CountByStatus() (map[database.VideoStatus]int, error) {
	return nil, nil
}

func (m *mockVideoRepo) get(videoID string) *database.Video {
	m.mu.Lock()
	defer m.mu.Unlock()
	if video, ok := m.videos[videoID]; ok {
		v := *video
		return &v
	}
	return nil
}

func (m *mockVideoRepo) put(video database.Video) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.videos[video.VideoID] = &video
}

type mockSource struct {
	mu           sync.Mutex
	uploads      map[string]*youtube.Upload
	uploadErrs   map[string]error
	broadcasts   map[string]youtube.BroadcastStatus
	broadcastErr error
	delay        time.Duration
	uploadCalls  int
}

func (m *mockSource) LatestUpload(ctx context.Context, channelID string) (*youtube.Upload, error) {
	if m.delay > 0 {
		time.Sleep(m.delay)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.uploadCalls++
	if err, ok := m.uploadErrs[channelID]; ok {
		return nil, err
	}
	if upload, ok := m.uploads[channelID]; ok {
		u := *upload
		return &u, nil
	}
	return nil, youtube.ErrNotFound
}

func (m *mockSource) BroadcastStatus(ctx context.Context, videoID string) (youtube.BroadcastStatus, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.broadcastErr != nil {
		return youtube.BroadcastNone, m.broadcastErr
	}
	if status, ok := m.broadcasts[videoID]; ok {
		return status, nil
	}
	return youtube.BroadcastNone, nil
}

func (m *mockSource) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.uploadCalls
}

type mockExtractor struct {
	mu    sync.Mutex
	err   error
	calls int
}

func (m *mockExtractor) Extract(ctx context.Context, videoID string) (*captions.Transcript, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return &captions.Transcript{
		VideoID:  videoID,
		Language: "ko",
		Segments: []captions.Segment{{Text: "transcript for " + videoID}},
	}, nil
}

func (m *mockExtractor) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

type mockSummarizer struct {
	mu    sync.Mutex
	err   error
	calls int
}

func (m *mockSummarizer) Summarize(ctx context.Context, title, transcript string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return "", m.err
	}
	return "summary of " + title, nil
}

func (m *mockSummarizer) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

type delivered struct {
	slackChannelID string
	videoID        string
}

type mockSink struct {
	mu         sync.Mutex
	deliveries []delivered
	failFor    map[string]bool
}

func (m *mockSink) Deliver(ctx context.Context, slackChannelID string, msg slack.VideoMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failFor[slackChannelID] {
		return slack.ErrDeliveryFailed
	}
	m.deliveries = append(m.deliveries, delivered{slackChannelID: slackChannelID, videoID: msg.VideoID})
	return nil
}

func (m *mockSink) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.deliveries)
}

type mockReporter struct {
	mu        sync.Mutex
	incidents []slack.Incident
}

func (m *mockReporter) Report(ctx context.Context, incident slack.Incident) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.incidents = append(m.incidents, incident)
}

func (m *mockReporter) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.incidents)
}

// --- test fixture ---

type fixture struct {
	channelRepo *mockChannelRepo
	subRepo     *mockSubRepo
	videoRepo   *mockVideoRepo
	source      *mockSource
	extractor   *mockExtractor
	summarizer  *mockSummarizer
	sink        *mockSink
	reporter    *mockReporter
	monitor     *Monitor
}

func newFixture(channels ...database.Channel) *fixture {
	f := &fixture{
		channelRepo: newMockChannelRepo(channels...),
		subRepo:     &mockSubRepo{subscribers: map[string][]database.Subscriber{}},
		videoRepo:   newMockVideoRepo(),
		source:      &mockSource{uploads: map[string]*youtube.Upload{}, uploadErrs: map[string]error{}, broadcasts: map[string]youtube.BroadcastStatus{}},
		extractor:   &mockExtractor{},
		summarizer:  &mockSummarizer{},
		sink:        &mockSink{failFor: map[string]bool{}},
		reporter:    &mockReporter{},
	}

	f.monitor = New(f.channelRepo, f.subRepo, f.videoRepo, f.source, nil,
		f.extractor, f.summarizer, f.sink, f.reporter, time.Hour, 2)

	return f
}

func channelFixture(channelID string, latestVideoID string) database.Channel {
	channel := database.Channel{ChannelID: channelID, Title: "Channel " + channelID}
	if latestVideoID != "" {
		channel.LatestVideoID = &latestVideoID
	}
	return channel
}

func destination(id string) *string { return &id }

// --- tests ---

func TestSweepProcessesNewVideo(t *testing.T) {
	f := newFixture(channelFixture("UC1", ""))
	f.source.uploads["UC1"] = &youtube.Upload{VideoID: "V1", Title: "First Video", PublishedAt: time.Now()}
	f.subRepo.subscribers["UC1"] = []database.Subscriber{
		{UserID: "u1", SlackChannelID: destination("C-u1")},
		{UserID: "u2", SlackChannelID: destination("C-u2")},
	}

	if err := f.monitor.Sweep(); err != nil {
		t.Fatalf("unexpected sweep error: %v", err)
	}

	video := f.videoRepo.get("V1")
	if video == nil {
		t.Fatal("expected video record for V1")
	}
	if video.Status != database.VideoStatusProcessed {
		t.Errorf("expected status processed, got %s", video.Status)
	}
	if video.Summary != "summary of First Video" {
		t.Errorf("unexpected summary: %q", video.Summary)
	}
	if f.extractor.callCount() != 1 {
		t.Errorf("expected 1 extraction, got %d", f.extractor.callCount())
	}
	if f.summarizer.callCount() != 1 {
		t.Errorf("expected 1 summarization, got %d", f.summarizer.callCount())
	}
	if f.sink.count() != 2 {
		t.Errorf("expected delivery to both subscribers, got %d", f.sink.count())
	}
	if got := f.channelRepo.latestFor("UC1"); got != "V1" {
		t.Errorf("expected latest pointer V1, got %q", got)
	}
}

func TestSweepSkipsUnchangedLatest(t *testing.T) {
	f := newFixture(channelFixture("UC1", "V1"))
	f.source.uploads["UC1"] = &youtube.Upload{VideoID: "V1", Title: "First Video"}

	if err := f.monitor.Sweep(); err != nil {
		t.Fatalf("unexpected sweep error: %v", err)
	}

	if f.extractor.callCount() != 0 {
		t.Errorf("expected no extraction, got %d", f.extractor.callCount())
	}
	if f.summarizer.callCount() != 0 {
		t.Errorf("expected no summarization, got %d", f.summarizer.callCount())
	}
	if f.sink.count() != 0 {
		t.Errorf("expected no delivery, got %d", f.sink.count())
	}
	if video := f.videoRepo.get("V1"); video != nil {
		t.Error("expected no video record to be created")
	}
}

func TestSweepSkipsUpcomingBroadcast(t *testing.T) {
	f := newFixture(channelFixture("UC1", "V1"))
	f.source.uploads["UC1"] = &youtube.Upload{VideoID: "V2", Title: "Scheduled Stream"}
	f.source.broadcasts["V2"] = youtube.BroadcastUpcoming

	if err := f.monitor.Sweep(); err != nil {
		t.Fatalf("unexpected sweep error: %v", err)
	}

	if got := f.channelRepo.latestFor("UC1"); got != "V2" {
		t.Errorf("expected latest pointer advanced to V2, got %q", got)
	}
	if video := f.videoRepo.get("V2"); video != nil {
		t.Errorf("expected no video record for upcoming broadcast, got status %s", video.Status)
	}
	if f.extractor.callCount() != 0 {
		t.Errorf("expected no extraction for upcoming broadcast, got %d", f.extractor.callCount())
	}
}

func TestSweepLiveBroadcastNeverProcessed(t *testing.T) {
	f := newFixture(channelFixture("UC1", ""))
	f.source.uploads["UC1"] = &youtube.Upload{VideoID: "V3", Title: "Live Now"}
	f.source.broadcasts["V3"] = youtube.BroadcastLive

	if err := f.monitor.Sweep(); err != nil {
		t.Fatalf("unexpected sweep error: %v", err)
	}

	if video := f.videoRepo.get("V3"); video != nil {
		t.Errorf("live broadcast must not get a video record, got status %s", video.Status)
	}
	if got := f.channelRepo.latestFor("UC1"); got != "V3" {
		t.Errorf("expected latest pointer advanced to V3, got %q", got)
	}
}

func TestSweepChannelFailureDoesNotBlockOthers(t *testing.T) {
	f := newFixture(
		channelFixture("UC1", ""),
		channelFixture("UC2", ""),
		channelFixture("UC3", ""),
	)
	f.source.uploads["UC1"] = &youtube.Upload{VideoID: "V1", Title: "One"}
	f.source.uploadErrs["UC2"] = fmt.Errorf("lookup: %w", youtube.ErrQuotaExceeded)
	f.source.uploads["UC3"] = &youtube.Upload{VideoID: "V3", Title: "Three"}

	if err := f.monitor.Sweep(); err != nil {
		t.Fatalf("unexpected sweep error: %v", err)
	}

	for _, videoID := range []string{"V1", "V3"} {
		video := f.videoRepo.get(videoID)
		if video == nil || video.Status != database.VideoStatusProcessed {
			t.Errorf("expected %s processed despite UC2 failure", videoID)
		}
	}
	if f.reporter.count() == 0 {
		t.Error("expected the failing channel to be reported")
	}
	if got := f.channelRepo.latestFor("UC2"); got != "" {
		t.Errorf("expected UC2 latest pointer unchanged, got %q", got)
	}
}

func TestDeliveryFailureKeepsProcessedState(t *testing.T) {
	f := newFixture(channelFixture("UC1", ""))
	f.source.uploads["UC1"] = &youtube.Upload{VideoID: "V1", Title: "First Video"}
	f.subRepo.subscribers["UC1"] = []database.Subscriber{
		{UserID: "u1", SlackChannelID: destination("C-broken")},
		{UserID: "u2", SlackChannelID: destination("C-ok")},
	}
	f.sink.failFor["C-broken"] = true

	if err := f.monitor.Sweep(); err != nil {
		t.Fatalf("unexpected sweep error: %v", err)
	}

	video := f.videoRepo.get("V1")
	if video == nil || video.Status != database.VideoStatusProcessed {
		t.Fatal("expected video to remain processed after delivery failure")
	}
	if video.Summary == "" {
		t.Error("expected summary to remain intact")
	}
	if f.sink.count() != 1 {
		t.Errorf("expected delivery to the healthy subscriber, got %d", f.sink.count())
	}
	if f.reporter.count() == 0 {
		t.Error("expected delivery failure to be reported")
	}
}

func TestConcurrentSweepIsSkipped(t *testing.T) {
	f := newFixture(
		channelFixture("UC1", ""),
		channelFixture("UC2", ""),
		channelFixture("UC3", ""),
	)
	f.source.delay = 50 * time.Millisecond
	for i, channelID := range []string{"UC1", "UC2", "UC3"} {
		f.source.uploads[channelID] = &youtube.Upload{VideoID: fmt.Sprintf("V%d", i+1), Title: "t"}
	}

	firstDone := make(chan error, 1)
	go func() { firstDone <- f.monitor.Sweep() }()

	// Give the first sweep time to claim the in-progress flag
	time.Sleep(10 * time.Millisecond)

	if err := f.monitor.Sweep(); !errors.Is(err, ErrSweepInProgress) {
		t.Errorf("expected ErrSweepInProgress, got %v", err)
	}

	if err := <-firstDone; err != nil {
		t.Fatalf("unexpected error from first sweep: %v", err)
	}

	if f.source.calls() != 3 {
		t.Errorf("expected exactly one pass of API calls (3), got %d", f.source.calls())
	}
}

func TestProcessedVideoIsNeverReprocessed(t *testing.T) {
	f := newFixture(channelFixture("UC1", ""))
	f.source.uploads["UC1"] = &youtube.Upload{VideoID: "V1", Title: "First Video"}
	f.subRepo.subscribers["UC1"] = []database.Subscriber{
		{UserID: "u1", SlackChannelID: destination("C-u1")},
	}
	f.videoRepo.put(database.Video{
		VideoID:   "V1",
		ChannelID: "UC1",
		Status:    database.VideoStatusProcessed,
		Summary:   "existing summary",
	})

	if err := f.monitor.Sweep(); err != nil {
		t.Fatalf("unexpected sweep error: %v", err)
	}

	if f.extractor.callCount() != 0 {
		t.Errorf("expected no re-extraction, got %d", f.extractor.callCount())
	}
	if f.summarizer.callCount() != 0 {
		t.Errorf("expected no re-summarization, got %d", f.summarizer.callCount())
	}
	if f.sink.count() != 0 {
		t.Errorf("expected no re-delivery, got %d", f.sink.count())
	}
	if video := f.videoRepo.get("V1"); video.Summary != "existing summary" {
		t.Errorf("expected summary untouched, got %q", video.Summary)
	}
	if got := f.channelRepo.latestFor("UC1"); got != "V1" {
		t.Errorf("expected latest pointer advanced to V1, got %q", got)
	}
}

func TestNoCaptionsMarksVideoFailed(t *testing.T) {
	f := newFixture(
		channelFixture("UC1", ""),
		channelFixture("UC2", ""),
	)
	f.source.uploads["UC1"] = &youtube.Upload{VideoID: "V3", Title: "Silent Video"}
	f.source.uploads["UC2"] = &youtube.Upload{VideoID: "V4", Title: "Normal Video"}
	f.extractor.err = fmt.Errorf("video V3: %w", captions.ErrNoCaptions)

	if err := f.monitor.Sweep(); err != nil {
		t.Fatalf("unexpected sweep error: %v", err)
	}

	video := f.videoRepo.get("V3")
	if video == nil || video.Status != database.VideoStatusFailed {
		t.Fatal("expected V3 to be marked failed")
	}
	if !strings.Contains(video.ErrorMessage, "captions") {
		t.Errorf("expected error message to mention captions, got %q", video.ErrorMessage)
	}

	// The extractor error applies to both channels here; the point is that
	// the sweep reached the second channel at all
	if other := f.videoRepo.get("V4"); other == nil {
		t.Error("expected sweep to continue to the next channel")
	}
}

func TestFailedVideoIsRetriedWhenReobserved(t *testing.T) {
	f := newFixture(channelFixture("UC1", ""))
	f.source.uploads["UC1"] = &youtube.Upload{VideoID: "V1", Title: "First Video"}
	f.videoRepo.put(database.Video{
		VideoID:      "V1",
		ChannelID:    "UC1",
		Status:       database.VideoStatusFailed,
		ErrorMessage: "no captions available",
	})

	if err := f.monitor.Sweep(); err != nil {
		t.Fatalf("unexpected sweep error: %v", err)
	}

	video := f.videoRepo.get("V1")
	if video.Status != database.VideoStatusProcessed {
		t.Errorf("expected failed video to be retried and processed, got %s", video.Status)
	}
	if f.extractor.callCount() != 1 {
		t.Errorf("expected 1 extraction on retry, got %d", f.extractor.callCount())
	}
}

func TestClassificationFailureDefaultsToRegular(t *testing.T) {
	f := newFixture(channelFixture("UC1", ""))
	f.source.uploads["UC1"] = &youtube.Upload{VideoID: "V1", Title: "First Video"}
	f.source.broadcastErr = fmt.Errorf("lookup: %w", youtube.ErrQuotaExceeded)

	if err := f.monitor.Sweep(); err != nil {
		t.Fatalf("unexpected sweep error: %v", err)
	}

	video := f.videoRepo.get("V1")
	if video == nil || video.Status != database.VideoStatusProcessed {
		t.Fatal("expected video processed despite classification failure")
	}
	if f.reporter.count() == 0 {
		t.Error("expected classification failure to be reported")
	}
}

func TestLatestUploadQuotaFallsBackToFeed(t *testing.T) {
	f := newFixture(channelFixture("UC1", ""))
	f.source.uploadErrs["UC1"] = fmt.Errorf("search: %w", youtube.ErrQuotaExceeded)

	fallback := &mockSource{uploads: map[string]*youtube.Upload{
		"UC1": {VideoID: "V1", Title: "From Feed"},
	}}
	f.monitor.fallback = fallback

	if err := f.monitor.Sweep(); err != nil {
		t.Fatalf("unexpected sweep error: %v", err)
	}

	video := f.videoRepo.get("V1")
	if video == nil || video.Status != database.VideoStatusProcessed {
		t.Fatal("expected video processed via feed fallback")
	}
}

func TestCheckChannelUnknown(t *testing.T) {
	f := newFixture()

	if err := f.monitor.CheckChannel(context.Background(), "UCmissing"); err == nil {
		t.Error("expected error for unregistered channel")
	}
}

func TestCheckChannelImmediate(t *testing.T) {
	f := newFixture(channelFixture("UC1", ""))
	f.source.uploads["UC1"] = &youtube.Upload{VideoID: "V1", Title: "First Video"}
	f.subRepo.subscribers["UC1"] = []database.Subscriber{
		{UserID: "u1", SlackChannelID: destination("C-u1")},
		{UserID: "u2", SlackChannelID: nil}, // no destination: skipped, not an error
	}

	if err := f.monitor.CheckChannel(context.Background(), "UC1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if f.sink.count() != 1 {
		t.Errorf("expected exactly one delivery, got %d", f.sink.count())
	}
	video := f.videoRepo.get("V1")
	if video == nil || video.Status != database.VideoStatusProcessed {
		t.Fatal("expected video processed by immediate check")
	}
}

func TestStartSkipsTicksWhileSweeping(t *testing.T) {
	f := newFixture(channelFixture("UC1", ""))
	f.source.uploads["UC1"] = &youtube.Upload{VideoID: "V1", Title: "t"}
	f.source.delay = 80 * time.Millisecond
	f.monitor.interval = 20 * time.Millisecond

	f.monitor.Start()
	time.Sleep(120 * time.Millisecond)
	f.monitor.Stop()

	// With an 80ms sweep and a 20ms interval, overlapping ticks must have
	// been skipped: only one full API pass fits in the window
	if f.source.calls() > 2 {
		t.Errorf("expected overlapping ticks to be skipped, got %d API calls", f.source.calls())
	}

	status := f.monitor.Status()
	if status.Active {
		t.Error("expected monitor inactive after Stop")
	}
}

func TestStatusSnapshot(t *testing.T) {
	f := newFixture(channelFixture("UC1", ""))
	f.source.uploads["UC1"] = &youtube.Upload{VideoID: "V1", Title: "t"}

	status := f.monitor.Status()
	if status.Active || status.SweepInProgress {
		t.Error("expected idle status before start")
	}

	if err := f.monitor.Sweep(); err != nil {
		t.Fatalf("unexpected sweep error: %v", err)
	}

	status = f.monitor.Status()
	if status.SweepCount != 1 {
		t.Errorf("expected sweep count 1, got %d", status.SweepCount)
	}
	if status.VideosProcessed != 1 {
		t.Errorf("expected 1 processed video, got %d", status.VideosProcessed)
	}
	if status.LastSweepAt == nil {
		t.Error("expected last sweep timestamp")
	}
}
