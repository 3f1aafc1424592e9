package factory

import (
	"time"

	"github.com/mcoot/rpsgame/internal/dependencies/mocks"
	"github.com/mcoot/rpsgame/internal/model"
	"github.com/mcoot/rpsgame/internal/reveal"
	"github.com/mcoot/rpsgame/internal/services/auth"
	"github.com/mcoot/rpsgame/internal/services/opponent"
	"github.com/mcoot/rpsgame/internal/storage/memory"
	"github.com/mcoot/rpsgame/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock     *mocks.MockClock
	MockRandom    *mocks.MockRandom
	MemoryStorage *memory.Storage
}

// NewTestApp creates an App configured for testing with mocked dependencies.
// The computer picks its moves from MockRandom: queue 0 for rock, 1 for paper, 2 for scissors.
// Reveal steps are not delayed.
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app := newWithDependencies(dependencies{
		store:    store,
		clock:    mockClock,
		random:   mockRandom,
		strategy: opponent.NewRandomStrategy(mockRandom),
		authCfg:  auth.DefaultConfig(),
		policy:   model.DefaultRoundsPolicy(),
		timing:   reveal.Timing{},
		logger:   testutil.NopLogger(),
	})

	return &TestApp{
		App:           app,
		MockClock:     mockClock,
		MockRandom:    mockRandom,
		MemoryStorage: store,
	}
}
