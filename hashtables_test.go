package hashtables_test

import (
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/scottcagno/hashtables"
	"github.com/scottcagno/hashtables/pkg/hashmap"
)

func collect[K comparable, V any](hm hashmap.Table[K, V]) map[K]V {
	out := make(map[K]V)
	for k, v := range hm.Items() {
		out[k] = v
	}
	return out
}

var _ = Describe("Variant", func() {
	DescribeTable("parsing names",
		func(name string, expected hashtables.Variant) {
			v, err := hashtables.ParseVariant(name)
			Expect(err).To(BeNil())
			Expect(v).To(Equal(expected))
			Expect(v.String()).To(Equal(expected.String()))
		},
		Entry("fixed", "fixed", hashtables.Fixed),
		Entry("growable", "growable", hashtables.Growable),
		Entry("cached", "Cached", hashtables.Cached),
		Entry("linear", " linear ", hashtables.Linear),
		Entry("perturbed", "PERTURBED", hashtables.Perturbed),
	)

	It("rejects unknown names", func() {
		_, err := hashtables.ParseVariant("cuckoo")
		Expect(err).To(MatchError(hashtables.ErrUnknownVariant))

		_, err = hashtables.New[string, int](hashtables.Variant(99))
		Expect(err).To(MatchError(hashtables.ErrUnknownVariant))
		Expect(hashtables.Variant(99).String()).To(Equal("unknown"))

		_, err = hashtables.NewSharded[string, int](hashtables.Variant(-1), 4)
		Expect(err).To(MatchError(hashtables.ErrUnknownVariant))
	})

	It("lists every variant in order", func() {
		Expect(hashtables.Variants()).To(Equal([]hashtables.Variant{
			hashtables.Fixed,
			hashtables.Growable,
			hashtables.Cached,
			hashtables.Linear,
			hashtables.Perturbed,
		}))
	})
})

// contract runs every behavioural property against tables built by newTable
func contract(newString func() hashmap.Table[string, string], newInt func() hashmap.Table[int, int], resizes bool) {
	It("keeps the last write for a key", func() {
		hm := newString()
		hm.Set("lol", "hello!")
		hm.Set("lol", "buongiorno!")
		Expect(hm.Get("lol")).To(Equal("buongiorno!"))
		Expect(hm.Len()).To(Equal(1))
	})

	It("fails to get a key that was never inserted", func() {
		hm := newString()
		hm.Set("a", "1")
		_, err := hm.Get("b")
		Expect(err).To(MatchError(hashmap.ErrKeyNotFound))
		Expect(hashmap.IsKeyNotFound(err)).To(BeTrue())
	})

	It("counts inserts and deletes", func() {
		hm := newInt()
		for i := 0; i < 50; i++ {
			hm.Set(i, i)
		}
		for i := 0; i < 20; i++ {
			Expect(hm.Del(i)).To(Succeed())
		}
		Expect(hm.Len()).To(Equal(30))
	})

	It("leaves the table unchanged when deleting an absent key", func() {
		hm := newString()
		hm.Set("a", "1")
		hm.Set("b", "2")
		before := collect(hm)
		Expect(hm.Del("c")).To(MatchError(hashmap.ErrKeyNotFound))
		Expect(hm.Del("b")).To(Succeed())
		Expect(hm.Del("b")).To(MatchError(hashmap.ErrKeyNotFound))
		delete(before, "b")
		Expect(collect(hm)).To(Equal(before))
		Expect(hm.Len()).To(Equal(1))
	})

	It("yields exactly the live pairs", func() {
		hm := newString()
		hm.Set("a", "1")
		hm.Set("b", "2")
		hm.Set("c", "3")
		Expect(collect(hm)).To(Equal(map[string]string{"a": "1", "b": "2", "c": "3"}))
		// restartable
		Expect(hashmap.Collect(hm.Items())).To(HaveLen(3))
		Expect(hashmap.Collect(hm.Items())).To(HaveLen(3))
	})

	It("allows deleting every key while walking the items", func() {
		hm := newInt()
		for i := 0; i < 100; i++ {
			hm.Set(i, i)
		}
		seen := make(map[int]int)
		for k, v := range hm.Items() {
			Expect(hm.Del(k)).To(Succeed())
			seen[k] = v
		}
		Expect(seen).To(HaveLen(100))
		Expect(hm.Len()).To(Equal(0))
		Expect(collect(hm)).To(BeEmpty())
	})

	It("keeps walking the items it started with when a write resizes the table", func() {
		hm := newInt()
		for i := 0; i < 5; i++ {
			hm.Set(i, i)
		}
		seen := make(map[int]bool)
		for k := range hm.Items() {
			if len(seen) == 0 {
				for i := 100; i < 200; i++ {
					hm.Set(i, i)
				}
			}
			seen[k] = true
		}
		for i := 0; i < 5; i++ {
			Expect(seen).To(HaveKey(i))
		}
		Expect(hm.Len()).To(Equal(105))
		Expect(hm.Get(199)).To(Equal(199))
	})

	It("grows past the initial capacity and keeps every key", func() {
		hm := newInt()
		for i := 0; i < 1000; i++ {
			hm.Set(i, i)
		}
		Expect(hm.Get(998)).To(Equal(998))
		Expect(hm.Len()).To(Equal(1000))
		if resizes {
			Expect(hm.Cap()).To(BeNumerically(">", hashmap.InitialCapacity))
		}
	})

	It("shrinks on delete but never below the initial capacity", func() {
		hm := newInt()
		for i := 0; i < 1000; i++ {
			hm.Set(i, i)
		}
		peak := hm.Cap()
		for i := 0; i < 1000; i++ {
			Expect(hm.Del(i)).To(Succeed())
			Expect(hm.Cap()).To(BeNumerically(">=", hashmap.InitialCapacity))
		}
		Expect(hm.Len()).To(Equal(0))
		if resizes {
			Expect(hm.Cap()).To(BeNumerically("<", peak))
		}
	})
}

var _ = Describe("Table contract", func() {
	for _, v := range hashtables.Variants() {
		Context(v.String(), func() {
			contract(
				func() hashmap.Table[string, string] {
					hm, err := hashtables.New[string, string](v)
					Expect(err).To(BeNil())
					return hm
				},
				func() hashmap.Table[int, int] {
					hm, err := hashtables.New[int, int](v)
					Expect(err).To(BeNil())
					return hm
				},
				v != hashtables.Fixed,
			)

			It("seeds from an initial batch", func() {
				hm, err := hashtables.New(v, hashmap.WithPairs(
					hashmap.Pair[string, int]{Key: "x", Value: 1},
					hashmap.Pair[string, int]{Key: "y", Value: 2},
					hashmap.Pair[string, int]{Key: "x", Value: 3},
				))
				Expect(err).To(BeNil())
				Expect(hm.Len()).To(Equal(2))
				Expect(hm.Get("x")).To(Equal(3))
			})

			It("reports stats", func() {
				hm, err := hashtables.New[int, int](v)
				Expect(err).To(BeNil())
				sp, ok := hm.(hashmap.StatsProvider)
				Expect(ok).To(BeTrue())
				for i := 0; i < 10; i++ {
					hm.Set(i, i)
				}
				st := sp.Stats()
				Expect(st.Len).To(Equal(10))
				Expect(st.Cap).To(Equal(hm.Cap()))
				Expect(sp.PercentFull()).To(BeNumerically("~", float64(10)/float64(hm.Cap())))
			})
		})

		Context(v.String()+" sharded", func() {
			contract(
				func() hashmap.Table[string, string] {
					hm, err := hashtables.NewSharded[string, string](v, 4)
					Expect(err).To(BeNil())
					return hm
				},
				func() hashmap.Table[int, int] {
					hm, err := hashtables.NewSharded[int, int](v, 4)
					Expect(err).To(BeNil())
					return hm
				},
				v != hashtables.Fixed,
			)
		})
	}
})

var _ = Describe("Probing", func() {
	DescribeTable("linear and perturbed agree on every observation",
		func(seed int64, keySpace int) {
			rnd := rand.New(rand.NewSource(seed))
			lin, err := hashtables.New[int, int](hashtables.Linear)
			Expect(err).To(BeNil())
			per, err := hashtables.New[int, int](hashtables.Perturbed)
			Expect(err).To(BeNil())
			for i := 0; i < 5000; i++ {
				k := rnd.Intn(keySpace)
				switch rnd.Intn(3) {
				case 0:
					lin.Set(k, i)
					per.Set(k, i)
				case 1:
					Expect(lin.Del(k) == nil).To(Equal(per.Del(k) == nil))
				default:
					lv, lerr := lin.Get(k)
					pv, perr := per.Get(k)
					Expect(lerr == nil).To(Equal(perr == nil))
					Expect(lv).To(Equal(pv))
				}
				Expect(lin.Len()).To(Equal(per.Len()))
			}
			Expect(collect(lin)).To(Equal(collect(per)))
		},
		Entry("dense keys", int64(1), 64),
		Entry("sparse keys", int64(2), 5000),
		Entry("tiny key space", int64(3), 4),
	)
})
