package benchmarks

import (
	"fmt"
	"math/rand"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/agilira/xanthos"
	"github.com/llxisdsh/pb"
)

// Benchmark configuration
const (
	// Key spaces for different scenarios
	smallKeySpace  = 1_000
	mediumKeySpace = 10_000
	largeKeySpace  = 100_000

	// Workload ratios (read percentage)
	writeHeavy = 0.1 // 10% reads, 90% writes
	balanced   = 0.5 // 50% reads, 50% writes
	readHeavy  = 0.9 // 90% reads, 10% writes
)

// =============================================================================
// ZIPF DISTRIBUTION GENERATOR
// =============================================================================

// ZipfGenerator generates keys following Zipf distribution
// This simulates realistic access patterns where some items are much more
// popular than others (power law distribution)
type ZipfGenerator struct {
	zipf *rand.Zipf
	max  uint64
}

// NewZipfGenerator creates a new Zipf distribution generator
// s: exponent (must be > 1.0 for Zipf to work)
// v: second parameter for Zipf (must be >= 1.0)
// imax: maximum value (key space)
func NewZipfGenerator(s, v float64, imax uint64) *ZipfGenerator {
	// Ensure imax is at least 1
	if imax < 1 {
		imax = 1
	}
	// Ensure s > 1 and v >= 1 for valid Zipf
	if s <= 1.0 {
		s = 1.01
	}
	if v < 1.0 {
		v = 1.0
	}
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	zipf := rand.NewZipf(r, s, v, imax)
	if zipf == nil {
		panic(fmt.Sprintf("failed to create Zipf generator: s=%f, v=%f, imax=%d", s, v, imax))
	}
	return &ZipfGenerator{
		zipf: zipf,
		max:  imax,
	}
}

// Next returns the next key in the Zipf distribution
func (z *ZipfGenerator) Next() uint64 {
	return z.zipf.Uint64()
}

// NextString returns the next key as a string
func (z *ZipfGenerator) NextString() string {
	return strconv.FormatUint(z.Next(), 10)
}

// =============================================================================
// MAP WRAPPERS FOR UNIFORM INTERFACE
// =============================================================================

// MapInterface provides a uniform interface for all contenders.
// Every benchmark drives the maps single-threaded: xanthos and the builtin
// map require external exclusion, and running the concurrent contenders the
// same way keeps the comparison apples-to-apples.
type MapInterface interface {
	Put(key string, value int)
	Get(key string) (int, bool)
	Delete(key string)
	Name() string
}

// =============================================================================
// XANTHOS WRAPPER (Generic API)
// =============================================================================

type XanthosMap struct {
	m *xanthos.GenericMap[string, int]
}

func NewXanthosMap() *XanthosMap {
	m, err := xanthos.NewGenericMap[string, int](xanthos.Config{})
	if err != nil {
		panic(err)
	}
	return &XanthosMap{m: m}
}

func (x *XanthosMap) Put(key string, value int) {
	x.m.Put(key, value)
}

func (x *XanthosMap) Get(key string) (int, bool) {
	return x.m.Get(key)
}

func (x *XanthosMap) Delete(key string) {
	x.m.Delete(key)
}

func (x *XanthosMap) Name() string {
	return "Xanthos"
}

// =============================================================================
// BUILTIN MAP WRAPPER
// =============================================================================

type StdMap struct {
	m map[string]int
}

func NewStdMap() *StdMap {
	return &StdMap{m: make(map[string]int)}
}

func (s *StdMap) Put(key string, value int) {
	s.m[key] = value
}

func (s *StdMap) Get(key string) (int, bool) {
	v, ok := s.m[key]
	return v, ok
}

func (s *StdMap) Delete(key string) {
	delete(s.m, key)
}

func (s *StdMap) Name() string {
	return "StdMap"
}

// =============================================================================
// SYNC.MAP WRAPPER
// =============================================================================

type SyncMap struct {
	m sync.Map
}

func NewSyncMap() *SyncMap {
	return &SyncMap{}
}

func (s *SyncMap) Put(key string, value int) {
	s.m.Store(key, value)
}

func (s *SyncMap) Get(key string) (int, bool) {
	v, ok := s.m.Load(key)
	if !ok {
		return 0, false
	}
	return v.(int), true
}

func (s *SyncMap) Delete(key string) {
	s.m.Delete(key)
}

func (s *SyncMap) Name() string {
	return "SyncMap"
}

// =============================================================================
// PB MAPOF WRAPPER
// =============================================================================

type PbMap struct {
	m *pb.MapOf[string, int]
}

func NewPbMap() *PbMap {
	return &PbMap{m: pb.NewMapOf[string, int]()}
}

func (p *PbMap) Put(key string, value int) {
	p.m.Store(key, value)
}

func (p *PbMap) Get(key string) (int, bool) {
	return p.m.Load(key)
}

func (p *PbMap) Delete(key string) {
	p.m.Delete(key)
}

func (p *PbMap) Name() string {
	return "PbMapOf"
}

func contenders() []MapInterface {
	return []MapInterface{
		NewXanthosMap(),
		NewStdMap(),
		NewSyncMap(),
		NewPbMap(),
	}
}

// =============================================================================
// WORKLOAD BENCHMARKS
// =============================================================================

func benchmarkWorkload(b *testing.B, m MapInterface, keySpace uint64, readRatio float64) {
	zipf := NewZipfGenerator(1.1, 1.0, keySpace)

	// Preload half the key space so reads have something to hit
	for i := uint64(0); i < keySpace/2; i++ {
		m.Put(strconv.FormatUint(i, 10), int(i))
	}

	// Precompute keys and op kinds to keep generator cost out of the loop
	keys := make([]string, b.N)
	reads := make([]bool, b.N)
	r := rand.New(rand.NewSource(42))
	for i := 0; i < b.N; i++ {
		keys[i] = zipf.NextString()
		reads[i] = r.Float64() < readRatio
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if reads[i] {
			m.Get(keys[i])
		} else {
			m.Put(keys[i], i)
		}
	}
}

func BenchmarkWorkload_ReadHeavy(b *testing.B) {
	for _, m := range contenders() {
		b.Run(m.Name(), func(b *testing.B) {
			benchmarkWorkload(b, m, mediumKeySpace, readHeavy)
		})
	}
}

func BenchmarkWorkload_Balanced(b *testing.B) {
	for _, m := range contenders() {
		b.Run(m.Name(), func(b *testing.B) {
			benchmarkWorkload(b, m, mediumKeySpace, balanced)
		})
	}
}

func BenchmarkWorkload_WriteHeavy(b *testing.B) {
	for _, m := range contenders() {
		b.Run(m.Name(), func(b *testing.B) {
			benchmarkWorkload(b, m, mediumKeySpace, writeHeavy)
		})
	}
}

func BenchmarkWorkload_LargeKeySpace(b *testing.B) {
	for _, m := range contenders() {
		b.Run(m.Name(), func(b *testing.B) {
			benchmarkWorkload(b, m, largeKeySpace, balanced)
		})
	}
}

// =============================================================================
// SINGLE-OPERATION BENCHMARKS
// =============================================================================

func BenchmarkGet(b *testing.B) {
	for _, m := range contenders() {
		b.Run(m.Name(), func(b *testing.B) {
			keys := make([]string, smallKeySpace)
			for i := range keys {
				keys[i] = strconv.Itoa(i)
				m.Put(keys[i], i)
			}

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m.Get(keys[i%smallKeySpace])
			}
		})
	}
}

func BenchmarkPut_Growing(b *testing.B) {
	// Fresh keys on every iteration: each contender pays its own growth
	// strategy (progressive rehash vs stop-the-world vs sharding).
	for _, newMap := range []func() MapInterface{
		func() MapInterface { return NewXanthosMap() },
		func() MapInterface { return NewStdMap() },
		func() MapInterface { return NewSyncMap() },
		func() MapInterface { return NewPbMap() },
	} {
		m := newMap()
		b.Run(m.Name(), func(b *testing.B) {
			keys := make([]string, b.N)
			for i := range keys {
				keys[i] = strconv.Itoa(i)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m.Put(keys[i], i)
			}
		})
	}
}

func BenchmarkDelete(b *testing.B) {
	for _, m := range contenders() {
		b.Run(m.Name(), func(b *testing.B) {
			keys := make([]string, b.N)
			for i := range keys {
				keys[i] = strconv.Itoa(i)
				m.Put(keys[i], i)
			}

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m.Delete(keys[i])
			}
		})
	}
}
