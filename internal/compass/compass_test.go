package compass

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/ramenreality/pkg/types"
)

func eligibleLogs(n int) []types.BowlLog {
	logs := make([]types.BowlLog, n)
	for i := range logs {
		logs[i] = types.BowlLog{
			ID:     string(rune('a' + i)),
			ShopID: "shop-" + string(rune('a'+i)),
			Rating: 5,
		}
	}
	return logs
}

// waitSettled blocks until the engine leaves Spinning.
func waitSettled(t *testing.T, e *Engine) {
	t.Helper()
	require.Eventually(t, func() bool {
		return e.State() == StateSettled
	}, time.Second, time.Millisecond)
}

func TestSpinRejectsEmptyEligibleSet(t *testing.T) {
	e := NewEngine()
	err := e.Spin(nil)
	assert.ErrorIs(t, err, ErrNoEligibleLogs)
	assert.Equal(t, StateIdle, e.State(), "rejected spin leaves the engine idle")
}

func TestSpinWhileSpinningIsRejected(t *testing.T) {
	logs := eligibleLogs(3)
	e := NewEngine(
		WithRevealDelay(50*time.Millisecond),
		WithIntn(func(int) int { return 0 }),
	)

	require.NoError(t, e.Spin(logs))
	assert.Equal(t, StateSpinning, e.State())

	// The second spin must not queue, restart the delay, or re-roll.
	err := e.Spin(logs)
	assert.ErrorIs(t, err, ErrSpinning)

	waitSettled(t, e)
	chosen, ok := e.Chosen()
	require.True(t, ok)
	assert.Equal(t, logs[0].ID, chosen.ID)
}

func TestChoiceFixedAtSpinTime(t *testing.T) {
	logs := eligibleLogs(4)
	draws := 0
	e := NewEngine(
		WithRevealDelay(10*time.Millisecond),
		WithIntn(func(n int) int {
			draws++
			require.Equal(t, len(logs), n)
			return 2
		}),
	)

	require.NoError(t, e.Spin(logs))

	// No choice visible during the reveal delay.
	_, ok := e.Chosen()
	assert.False(t, ok)

	waitSettled(t, e)
	chosen, ok := e.Chosen()
	require.True(t, ok)
	assert.Equal(t, logs[2].ID, chosen.ID)
	assert.Equal(t, 1, draws, "the reveal delay never re-rolls")
}

func TestSpinIsUniformOverEligibleLogs(t *testing.T) {
	logs := eligibleLogs(4)
	counts := make(map[string]int)

	const trials = 2000
	e := NewEngine(WithRevealDelay(0))
	for i := 0; i < trials; i++ {
		require.NoError(t, e.Spin(logs))
		waitSettled(t, e)
		chosen, ok := e.Chosen()
		require.True(t, ok)
		counts[chosen.ID]++
		e.Reset()
	}

	// Each log should land near trials/len(logs); a generous band keeps
	// the test deterministic in practice.
	expected := trials / len(logs)
	for _, log := range logs {
		assert.InDelta(t, expected, counts[log.ID], float64(expected)/4,
			"log %s drawn %d times", log.ID, counts[log.ID])
	}
}

func TestCommitResolvesShop(t *testing.T) {
	logs := eligibleLogs(1)
	e := NewEngine(WithRevealDelay(time.Millisecond))
	require.NoError(t, e.Spin(logs))
	waitSettled(t, e)

	shop := types.Shop{ID: logs[0].ShopID, Name: "隱家拉麵"}
	result, err := e.Commit(func(id string) (types.Shop, bool) {
		require.Equal(t, logs[0].ShopID, id)
		return shop, true
	})
	require.NoError(t, err)
	assert.Equal(t, shop, result.Shop)
	assert.Equal(t, logs[0].ID, result.Bowl.ID)
	assert.Equal(t, StateIdle, e.State(), "commit returns the engine to idle")
}

func TestCommitWithShopGone(t *testing.T) {
	logs := eligibleLogs(1)
	e := NewEngine(WithRevealDelay(time.Millisecond))
	require.NoError(t, e.Spin(logs))
	waitSettled(t, e)

	_, err := e.Commit(func(string) (types.Shop, bool) {
		return types.Shop{}, false
	})
	assert.ErrorIs(t, err, ErrShopGone)
	assert.Equal(t, StateIdle, e.State(), "shop-gone still re-enables spinning")
}

func TestCommitRequiresSettledState(t *testing.T) {
	e := NewEngine(WithRevealDelay(time.Hour))

	_, err := e.Commit(func(string) (types.Shop, bool) { return types.Shop{}, true })
	assert.ErrorIs(t, err, ErrNotSettled)

	require.NoError(t, e.Spin(eligibleLogs(2)))
	_, err = e.Commit(func(string) (types.Shop, bool) { return types.Shop{}, true })
	assert.ErrorIs(t, err, ErrNotSettled, "spinning is not settled")
}

func TestResetCancelsPendingReveal(t *testing.T) {
	e := NewEngine(WithRevealDelay(20 * time.Millisecond))
	require.NoError(t, e.Spin(eligibleLogs(2)))

	e.Reset()
	assert.Equal(t, StateIdle, e.State())

	// The canceled timer must not settle a later state.
	time.Sleep(40 * time.Millisecond)
	assert.Equal(t, StateIdle, e.State())
	_, ok := e.Chosen()
	assert.False(t, ok)
}
