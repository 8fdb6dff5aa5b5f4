package metrics

import (
	"github.com/goodnatureofminers/rbf-sniper/internal/mempool/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Feed message statuses.
const (
	FeedReceived  = "received"
	FeedMalformed = "malformed"
	FeedError     = "error"
	FeedGap       = "gap"
)

var feedMessagesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "feed",
	Name:      "messages_total",
	Help:      "Count of feed receive attempts by status.",
}, []string{"coin", "network", "topic", "status"})

// Feed tracks metrics for the ZMQ feed listener.
type Feed struct {
	coin    string
	network string
}

// NewFeed constructs a Feed collector.
func NewFeed(coin model.Coin, network model.Network) *Feed {
	c, n := labels(coin, network)
	return &Feed{coin: c, network: n}
}

// ObserveMessage counts one receive attempt on topic.
func (m Feed) ObserveMessage(topic, status string) {
	feedMessagesTotal.WithLabelValues(m.coin, m.network, topic, status).Inc()
}
