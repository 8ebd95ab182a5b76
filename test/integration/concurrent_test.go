package integration

import (
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VVuslat/En-Uygun-U-ak-Bileti/internal/domain"
	"github.com/VVuslat/En-Uygun-U-ak-Bileti/test/mock"
)

// TestConcurrent_MultipleSearchRequests tests that multiple concurrent
// search requests are handled correctly without interference.
func TestConcurrent_MultipleSearchRequests(t *testing.T) {
	provider := mock.NewProvider("pegasus").
		WithDelay(10 * time.Millisecond). // Small delay to increase overlap
		WithOffers(mock.SampleOffers("pegasus", 3))
	ts := NewTestServer(t, provider)

	numRequests := 10
	var wg sync.WaitGroup
	results := make([]Response, numRequests)

	for i := 0; i < numRequests; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			req := DefaultSearchRequest()
			// Distinct dates bypass the result cache so each request
			// reaches the provider.
			req.Date = time.Now().AddDate(0, 0, 30+idx).Format(domain.DateLayout)
			results[idx] = ts.SearchRequest(req)
		}(i)
	}

	wg.Wait()

	for i := 0; i < numRequests; i++ {
		assert.Equal(t, http.StatusOK, results[i].Code, "request %d should succeed", i)

		data := results[i].ParseEnvelope(t)
		flights := data["flights"].([]interface{})
		assert.Len(t, flights, 3, "request %d should have 3 flights", i)
	}

	assert.GreaterOrEqual(t, provider.CallCount(), numRequests)
}

// TestConcurrent_IndependentResults tests that each concurrent request
// receives its own independent results from multiple providers.
func TestConcurrent_IndependentResults(t *testing.T) {
	fastProvider := mock.NewProvider("pegasus").
		WithOffers(mock.SampleOffers("pegasus", 2))
	slowProvider := mock.NewProvider("thy").
		WithDelay(50 * time.Millisecond).
		WithOffers(mock.SampleOffers("thy", 3))
	ts := NewTestServer(t, fastProvider, slowProvider)

	numRequests := 5
	var wg sync.WaitGroup
	results := make([]Response, numRequests)

	for i := 0; i < numRequests; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			req := DefaultSearchRequest()
			req.Date = time.Now().AddDate(0, 0, 30+idx).Format(domain.DateLayout)
			results[idx] = ts.SearchRequest(req)
		}(i)
	}

	wg.Wait()

	for i := 0; i < numRequests; i++ {
		require.Equal(t, http.StatusOK, results[i].Code, "request %d should succeed", i)
		data := results[i].ParseEnvelope(t)
		flights := data["flights"].([]interface{})
		assert.Len(t, flights, 5, "request %d should have 5 flights (2+3)", i)
	}
}

// TestConcurrent_CachedRepeatQuery tests that repeating the exact same
// query is served from the cache without another provider round trip.
func TestConcurrent_CachedRepeatQuery(t *testing.T) {
	provider := mock.NewProvider("pegasus").WithOffers(mock.SampleOffers("pegasus", 2))
	ts := NewTestServer(t, provider)

	req := DefaultSearchRequest()

	first := ts.SearchRequest(req)
	second := ts.SearchRequest(req)

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, 1, provider.CallCount())
}
