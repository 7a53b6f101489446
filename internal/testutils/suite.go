package testutils

import (
	"fmt"
	"sync/atomic"
	"time"

	"dealflow-backend/internal/cache"
	"dealflow-backend/internal/database"

	"github.com/stretchr/testify/suite"
)

// FixedTime is the instant every StoreTestSuite clock starts at
var FixedTime = time.Date(2024, time.May, 1, 10, 0, 0, 0, time.UTC)

// StoreTestSuite gives each test a freshly seeded in-memory spreadsheet,
// a recording wrapper around it, a fake clock and an empty cache.
type StoreTestSuite struct {
	suite.Suite
	Memory    *database.MemoryStore
	Store     *RecordingStore
	Clock     *FakeClock
	Cache     *cache.Cache
	Factories *FactorySet

	ids atomic.Int64
}

// SetupTest runs before each test
func (s *StoreTestSuite) SetupTest() {
	s.Memory = database.NewSeededMemoryStore()
	s.Store = NewRecordingStore(s.Memory)
	s.Clock = NewFakeClock(FixedTime)
	s.Cache = cache.New(cache.DefaultTTL, s.Clock.Now)
	s.Factories = NewFactorySet()
	s.ids.Store(0)
}

// NextID is a deterministic id generator: <prefix>_1, <prefix>_2, ...
func (s *StoreTestSuite) NextID(prefix string) string {
	return fmt.Sprintf("%s_%d", prefix, s.ids.Add(1))
}

// SeedRows writes rows straight into the in-memory tab, bypassing the recorder
func (s *StoreTestSuite) SeedRows(tab database.Tab, rows ...[]string) {
	s.Memory.Seed(tab.Name, rows...)
}
