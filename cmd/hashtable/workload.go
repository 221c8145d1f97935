package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/Scusemua/go-utils/config"
	"github.com/Scusemua/go-utils/logger"
	"github.com/elliotchance/orderedmap/v2"
	"github.com/google/uuid"
	cmap "github.com/orcaman/concurrent-map/v2"

	"github.com/scottcagno/hashtables"
	"github.com/scottcagno/hashtables/pkg/hashmap"
	"github.com/scottcagno/hashtables/pkg/hashmap/metrics"
	"github.com/scottcagno/hashtables/pkg/util"
)

const (
	PhaseInsert    = "insert"
	PhaseLookup    = "lookup"
	PhaseOverwrite = "overwrite"
	PhaseItems     = "items"
	PhaseMiss      = "miss"
	PhaseDelete    = "delete"
)

// Result is the outcome of one workload run against one table
type Result struct {
	Label    string
	Keys     int
	PeakCap  int
	HeapKB   uint64 // live heap with every key inserted
	Stats    hashmap.Stats
	Timings  *orderedmap.OrderedMap[string, time.Duration]
	Failures *orderedmap.OrderedMap[string, string] // first failure per phase
	Series   map[string]float64
}

func newResult(label string, keys int) *Result {
	return &Result{
		Label:    label,
		Keys:     keys,
		Timings:  orderedmap.NewOrderedMap[string, time.Duration](),
		Failures: orderedmap.NewOrderedMap[string, string](),
	}
}

func (r *Result) Failed() bool {
	return r.Failures.Len() > 0
}

// check records a failure for phase unless the phase already has one
func (r *Result) check(ok bool, phase string, format string, args ...interface{}) {
	if ok {
		return
	}
	if _, seen := r.Failures.Get(phase); !seen {
		r.Failures.Set(phase, fmt.Sprintf(format, args...))
	}
}

func (r *Result) time(phase string, start time.Time) {
	r.Timings.Set(phase, time.Since(start))
}

// buildTable returns the table under test and the label its results and
// metrics are recorded under
func buildTable[K comparable](v hashtables.Variant, shards int, hasher hashmap.Hasher[K]) (hashmap.Table[K, int], string, error) {
	label := v.String()
	if shards > 0 {
		label += "-sharded"
	}
	opts := []hashmap.Option[K, int]{
		hashmap.WithHasher[K, int](hasher),
		hashmap.WithLogger[K, int](config.GetLogger(label + " ")),
	}
	if shards > 0 {
		hm, err := hashtables.NewSharded(v, shards, opts...)
		if err != nil {
			return nil, label, err
		}
		return hm, label, nil
	}
	hm, err := hashtables.New(v, opts...)
	return hm, label, err
}

// runWorkload inserts every key, reads them back, overwrites half, walks
// the items, probes a missing key and finally deletes everything. A
// concurrent-map keyed through the same hasher serves as the reference for
// every observation.
func runWorkload[K comparable](label string, hm hashmap.Table[K, int], keys []K, miss K, hasher hashmap.Hasher[K], log logger.Logger) *Result {
	defer util.TimeThis(util.Msg(label + " workload"))
	res := newResult(label, len(keys))
	ref := cmap.NewWithCustomShardingFunction[K, int](func(key K) uint32 {
		return uint32(hasher.Hash(key))
	})
	tbl := metrics.Wrap(label, hm)

	log.Debug("%s: inserting %d keys", label, len(keys))
	start := time.Now()
	for i, k := range keys {
		tbl.Set(k, i)
		ref.Set(k, i)
		if c := tbl.Cap(); c > res.PeakCap {
			res.PeakCap = c
		}
	}
	res.time(PhaseInsert, start)
	res.HeapKB = util.BtoKB(util.HeapAlloc())
	res.check(tbl.Len() == ref.Count(), PhaseInsert, "len %d, want %d", tbl.Len(), ref.Count())

	start = time.Now()
	for _, k := range keys {
		got, err := tbl.Get(k)
		want, _ := ref.Get(k)
		res.check(err == nil && got == want, PhaseLookup, "get %v = %v (%v), want %v", k, got, err, want)
	}
	res.time(PhaseLookup, start)

	start = time.Now()
	for i := 0; i < len(keys); i += 2 {
		tbl.Set(keys[i], -i)
		ref.Set(keys[i], -i)
	}
	res.time(PhaseOverwrite, start)
	res.check(tbl.Len() == ref.Count(), PhaseOverwrite, "len %d after overwrite, want %d", tbl.Len(), ref.Count())
	for _, k := range keys {
		got, _ := tbl.Get(k)
		want, _ := ref.Get(k)
		res.check(got == want, PhaseOverwrite, "get %v = %v after overwrite, want %v", k, got, want)
	}

	var seen int
	for k, v := range tbl.Items() {
		want, ok := ref.Get(k)
		res.check(ok && v == want, PhaseItems, "items yielded %v=%v, want %v (present %v)", k, v, want, ok)
		seen++
	}
	res.check(seen == ref.Count(), PhaseItems, "items yielded %d pairs, want %d", seen, ref.Count())

	_, err := tbl.Get(miss)
	res.check(hashmap.IsKeyNotFound(err), PhaseMiss, "get of missing key %v returned %v", miss, err)
	res.check(hashmap.IsKeyNotFound(tbl.Del(miss)), PhaseMiss, "delete of missing key %v succeeded", miss)

	start = time.Now()
	for _, k := range keys {
		err := tbl.Del(k)
		res.check(err == nil, PhaseDelete, "del %v: %v", k, err)
		ref.Remove(k)
	}
	res.time(PhaseDelete, start)
	res.check(tbl.Len() == 0, PhaseDelete, "len %d after deleting every key", tbl.Len())
	if len(keys) > 0 {
		res.check(hashmap.IsKeyNotFound(tbl.Del(keys[0])), PhaseDelete, "second delete of %v succeeded", keys[0])
	}

	res.Stats = tbl.Stats()
	for el := res.Failures.Front(); el != nil; el = el.Next() {
		log.Error("%s: %s check failed: %s", label, el.Key, el.Value)
	}
	return res
}

func intKeys(n int) ([]int, int) {
	keys := make([]int, n)
	for i := range keys {
		keys[i] = i
	}
	return keys, -1
}

func stringKeys(n int) ([]string, string) {
	// letters only, so the miss key can never be generated
	return util.RandStrings(n, 12), "missing-" + strconv.Itoa(n)
}

func uuidKeys(n int) ([]string, string) {
	keys := make([]string, n)
	for i := range keys {
		keys[i] = uuid.NewString()
	}
	return keys, "not-a-uuid"
}

// runVariants runs the workload for each variant in turn, keyed by label in
// the order they ran
func runVariants[K comparable](opts *Options, variants []hashtables.Variant, keys []K, miss K, log logger.Logger) (*orderedmap.OrderedMap[string, *Result], error) {
	results := orderedmap.NewOrderedMap[string, *Result]()
	hasher := hasherFor[K](opts.Hasher)
	for _, v := range variants {
		hm, label, err := buildTable(v, opts.Shards, hasher)
		if err != nil {
			return nil, err
		}
		log.Info("Running %s with %d %s keys", label, len(keys), opts.KeyKind)
		res := runWorkload(label, hm, keys, miss, hasher, log)
		if opts.Metrics {
			if res.Series, err = metrics.Snapshot(label); err != nil {
				return nil, err
			}
		}
		results.Set(label, res)
	}
	return results, nil
}

func run(opts *Options, log logger.Logger) (*orderedmap.OrderedMap[string, *Result], error) {
	variants, err := opts.Variants()
	if err != nil {
		return nil, err
	}
	switch opts.KeyKind {
	case KeyKindString:
		keys, miss := stringKeys(opts.Keys)
		return runVariants(opts, variants, keys, miss, log)
	case KeyKindUUID:
		keys, miss := uuidKeys(opts.Keys)
		return runVariants(opts, variants, keys, miss, log)
	}
	keys, miss := intKeys(opts.Keys)
	return runVariants(opts, variants, keys, miss, log)
}
