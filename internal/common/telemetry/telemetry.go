// File path: internal/common/telemetry/telemetry.go
package telemetry

import (
	"context"
	"expvar"
	"strings"
	"sync"
	"time"

	"github.com/evmaxhq/evmax-catalog/internal/common"
)

type spanKey struct{}

type span struct {
	name  string
	start time.Time
}

var (
	initOnce sync.Once

	chainRegisterTotal    *expvar.Int
	chainRegisterRejected *expvar.Map
	chainQueryTotal       *expvar.Map
	chainQueryLatencyMS   *expvar.Map

	snapshotTotal     *expvar.Int
	snapshotCacheHits *expvar.Int

	quoteTotal *expvar.Int
	bidTotal   *expvar.Int
	roiTotal   *expvar.Int
)

func ensureInit() {
	initOnce.Do(func() {
		chainRegisterTotal = expvar.NewInt("evmax_chain_register_total")
		chainRegisterRejected = expvar.NewMap("evmax_chain_register_rejected")
		chainQueryTotal = expvar.NewMap("evmax_chain_query_total")
		chainQueryLatencyMS = expvar.NewMap("evmax_chain_query_latency_ms")

		snapshotTotal = expvar.NewInt("evmax_chain_snapshot_total")
		snapshotCacheHits = expvar.NewInt("evmax_chain_snapshot_cache_hits")

		quoteTotal = expvar.NewInt("evmax_quote_total")
		bidTotal = expvar.NewInt("evmax_bid_total")
		roiTotal = expvar.NewInt("evmax_roi_total")
	})
}

// StartSpan records the start of a named operation and returns a completion
// callback that logs the elapsed duration at debug level.
func StartSpan(ctx context.Context, name string) (context.Context, func(attrs ...interface{})) {
	ensureInit()
	sp := &span{name: name, start: time.Now()}
	ctx = context.WithValue(ctx, spanKey{}, sp)
	logger := common.Logger()
	logger.Debug("trace: start", "span", name)
	return ctx, func(attrs ...interface{}) {
		if sp == nil {
			return
		}
		duration := time.Since(sp.start)
		logger.Debug("trace: end", append([]interface{}{"span", name, "dur", duration}, attrs...)...)
	}
}

// RecordChainRegister counts a registration attempt. The reject key is empty
// for successful commits and names the error kind otherwise.
func RecordChainRegister(reject string) {
	ensureInit()
	chainRegisterTotal.Add(1)
	key := strings.TrimSpace(strings.ToLower(reject))
	if key != "" {
		chainRegisterRejected.Add(key, 1)
	}
}

// RecordChainQuery counts a lineage/metrics/analysis query per kind.
func RecordChainQuery(kind string, duration time.Duration) {
	ensureInit()
	key := strings.TrimSpace(strings.ToLower(kind))
	if key == "" {
		key = "unknown"
	}
	chainQueryTotal.Add(key, 1)
	if duration > 0 {
		chainQueryLatencyMS.Add(key, duration.Milliseconds())
	}
}

// RecordSnapshot counts a snapshot read and whether it was served from cache.
func RecordSnapshot(cacheHit bool) {
	ensureInit()
	snapshotTotal.Add(1)
	if cacheHit {
		snapshotCacheHits.Add(1)
	}
}

// RecordQuote counts a quote computation.
func RecordQuote() {
	ensureInit()
	quoteTotal.Add(1)
}

// RecordBid counts a bid calculation.
func RecordBid() {
	ensureInit()
	bidTotal.Add(1)
}

// RecordROI counts an ROI analysis.
func RecordROI() {
	ensureInit()
	roiTotal.Add(1)
}

// SpanDuration reports the elapsed time of the span carried by ctx, if any.
func SpanDuration(ctx context.Context) time.Duration {
	sp, _ := ctx.Value(spanKey{}).(*span)
	if sp == nil {
		return 0
	}
	return time.Since(sp.start)
}
