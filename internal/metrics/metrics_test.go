package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/projeli/wiki-service/internal/event"
)

func TestMetrics_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.EventAppended(event.KindWikiCreated)
	m.EventAppended(event.KindWikiCreated)
	m.AppendFailed(event.KindPageDeleted)
	m.Rejected("page.create", "forbidden")
	m.SyncOutcome("ProjectDeleted", "applied")
	m.ObserveRPC("GetWiki", "OK", 20*time.Millisecond)
	m.ObserveRPC("GetWiki", "OK", 30*time.Millisecond)

	require.Equal(t, 2.0, testutil.ToFloat64(m.EventsAppended.WithLabelValues(string(event.KindWikiCreated))))
	require.Equal(t, 1.0, testutil.ToFloat64(m.AppendFailures.WithLabelValues(string(event.KindPageDeleted))))
	require.Equal(t, 1.0, testutil.ToFloat64(m.Rejections.WithLabelValues("page.create", "forbidden")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.SyncMessages.WithLabelValues("ProjectDeleted", "applied")))

	require.Equal(t, 1, testutil.CollectAndCount(m.RPCDuration, "wiki_rpc_duration_seconds"))

	n, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	require.Equal(t, 5, n)
}
