// Package metrics instruments hash tables with prometheus collectors.
package metrics

import (
	"iter"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/scottcagno/hashtables/pkg/hashmap"
)

const (
	ResultOK       = "ok"
	ResultNotFound = "not_found"
)

var (
	OperationCount = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "hashtable_operations_total",
		Help: "Total number of table operations by variant, operation and result",
	}, []string{"variant", "op", "result"})

	Entries = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "hashtable_entries",
		Help: "Number of live entries by variant",
	}, []string{"variant"})

	Capacity = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "hashtable_capacity",
		Help: "Number of buckets or slots by variant",
	}, []string{"variant"})

	ResizeCount = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "hashtable_resizes_total",
		Help: "Total number of table rebuilds by variant and kind (grow, shrink, compact)",
	}, []string{"variant", "kind"})
)

func init() {
	prometheus.MustRegister(OperationCount)
	prometheus.MustRegister(Entries)
	prometheus.MustRegister(Capacity)
	prometheus.MustRegister(ResizeCount)
}

func IncOperation(variant, op, result string) {
	OperationCount.WithLabelValues(variant, op, result).Inc()
}

func resultOf(err error) string {
	if err != nil {
		return ResultNotFound
	}
	return ResultOK
}

// Table wraps a hashmap.Table and records every call against the variant
// label. It is exactly as safe for concurrent use as the table it wraps.
type Table[K any, V any] struct {
	hm      hashmap.Table[K, V]
	variant string
	last    hashmap.Stats
}

// Wrap instruments hm under the given variant label
func Wrap[K any, V any](variant string, hm hashmap.Table[K, V]) *Table[K, V] {
	t := &Table[K, V]{hm: hm, variant: variant}
	t.observe()
	return t
}

// observe refreshes the gauges and turns any change in the resize counters
// since the previous call into counter increments
func (t *Table[K, V]) observe() {
	Entries.WithLabelValues(t.variant).Set(float64(t.hm.Len()))
	Capacity.WithLabelValues(t.variant).Set(float64(t.hm.Cap()))
	sp, ok := t.hm.(hashmap.StatsProvider)
	if !ok {
		return
	}
	st := sp.Stats()
	if d := st.Grows - t.last.Grows; d > 0 {
		ResizeCount.WithLabelValues(t.variant, "grow").Add(float64(d))
	}
	if d := st.Shrinks - t.last.Shrinks; d > 0 {
		ResizeCount.WithLabelValues(t.variant, "shrink").Add(float64(d))
	}
	if d := st.Compactions - t.last.Compactions; d > 0 {
		ResizeCount.WithLabelValues(t.variant, "compact").Add(float64(d))
	}
	t.last = st
}

// Unwrap returns the instrumented table
func (t *Table[K, V]) Unwrap() hashmap.Table[K, V] {
	return t.hm
}

func (t *Table[K, V]) Set(key K, value V) {
	t.hm.Set(key, value)
	IncOperation(t.variant, "set", ResultOK)
	t.observe()
}

func (t *Table[K, V]) Get(key K) (V, error) {
	val, err := t.hm.Get(key)
	IncOperation(t.variant, "get", resultOf(err))
	return val, err
}

func (t *Table[K, V]) Del(key K) error {
	err := t.hm.Del(key)
	IncOperation(t.variant, "del", resultOf(err))
	t.observe()
	return err
}

func (t *Table[K, V]) Items() iter.Seq2[K, V] {
	return t.hm.Items()
}

func (t *Table[K, V]) Range(it hashmap.Iterator[K, V]) {
	t.hm.Range(it)
}

func (t *Table[K, V]) Len() int {
	return t.hm.Len()
}

func (t *Table[K, V]) Cap() int {
	return t.hm.Cap()
}

func (t *Table[K, V]) Stats() hashmap.Stats {
	if sp, ok := t.hm.(hashmap.StatsProvider); ok {
		return sp.Stats()
	}
	return hashmap.Stats{Len: t.hm.Len(), Cap: t.hm.Cap()}
}

func (t *Table[K, V]) PercentFull() float64 {
	if sp, ok := t.hm.(hashmap.StatsProvider); ok {
		return sp.PercentFull()
	}
	return float64(t.hm.Len()) / float64(t.hm.Cap())
}

// Snapshot gathers every hashtable series carrying the variant label from
// the default registry, keyed by metric name and the remaining labels.
func Snapshot(variant string) (map[string]float64, error) {
	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		return nil, err
	}
	out := make(map[string]float64)
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			name, ok := seriesName(mf.GetName(), variant, m.GetLabel())
			if !ok {
				continue
			}
			out[name] = valueOf(m)
		}
	}
	return out, nil
}

func seriesName(family, variant string, labels []*dto.LabelPair) (string, bool) {
	name := family
	matched := false
	for _, lp := range labels {
		if lp.GetName() == "variant" {
			if lp.GetValue() != variant {
				return "", false
			}
			matched = true
			continue
		}
		name += " " + lp.GetName() + "=" + lp.GetValue()
	}
	return name, matched
}

func valueOf(m *dto.Metric) float64 {
	switch {
	case m.GetCounter() != nil:
		return m.GetCounter().GetValue()
	case m.GetGauge() != nil:
		return m.GetGauge().GetValue()
	}
	return 0
}
