package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promptlens/internal/config"
)

func newRecordingServer(t *testing.T) (*httptest.Server, func() []time.Time) {
	t.Helper()

	var mu sync.Mutex
	var hits []time.Time

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		hits = append(hits, time.Now())
		mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"ok"}]}}]}`))
	}))
	t.Cleanup(srv.Close)

	return srv, func() []time.Time {
		mu.Lock()
		defer mu.Unlock()
		return append([]time.Time(nil), hits...)
	}
}

func testAIConfig(baseURL string, intervalMS int) *config.AIConfig {
	return &config.AIConfig{
		APIKey:        "test-key",
		BaseURL:       baseURL,
		Model:         "test-model",
		TimeoutMS:     5000,
		MinIntervalMS: intervalMS,
	}
}

func TestGenerateSpacesConcurrentRequests(t *testing.T) {
	const intervalMS = 200

	srv, recorded := newRecordingServer(t)
	client := NewGeminiClient(testAIConfig(srv.URL, intervalMS))

	// pretend a request just went out, so both callers start waiting
	// on the same stale timestamp
	client.mu.Lock()
	client.lastRequest = time.Now()
	client.mu.Unlock()

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := client.Generate(context.Background(), "ping")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	hits := recorded()
	require.Len(t, hits, 2)

	gap := hits[1].Sub(hits[0])
	if gap < 0 {
		gap = -gap
	}
	// small slack for scheduling jitter between claiming the slot and
	// the request reaching the server
	minGap := time.Duration(intervalMS)*time.Millisecond - 20*time.Millisecond
	assert.GreaterOrEqual(t, gap, minGap, "concurrent requests not spaced by the minimum interval")
}

func TestGenerateIntervalWaitHonorsContext(t *testing.T) {
	srv, recorded := newRecordingServer(t)
	client := NewGeminiClient(testAIConfig(srv.URL, 5000))

	client.mu.Lock()
	client.lastRequest = time.Now()
	client.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := client.Generate(ctx, "ping")
	require.Error(t, err)

	var serr *ServiceError
	require.ErrorAs(t, err, &serr)
	assert.Less(t, time.Since(start), time.Second, "cancelled wait should return promptly")
	assert.Empty(t, recorded(), "no request should be sent after cancellation")
}
