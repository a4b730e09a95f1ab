package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/begreatfulforreal/ponzimon-program/types"
)

func TestClaimCooldownGate(t *testing.T) {
	e, l, _ := newTestEngine(t)
	initTestPool(t, e)
	onboard(t, e, l, "alice", startTick, nil)

	_, err := e.ClaimRewards("alice", startTick+testCooldown-1, nil)
	require.ErrorIs(t, err, types.ErrCooldownNotExpired)

	got, err := e.ClaimRewards("alice", startTick+testCooldown, nil)
	require.NoError(t, err)
	require.Equal(t, testCooldown*testRate, got)

	// The clock restarts from the successful claim.
	_, err = e.ClaimRewards("alice", startTick+testCooldown+1, nil)
	require.ErrorIs(t, err, types.ErrCooldownNotExpired)
}

func TestClaimSoleStakerTakesFullEmission(t *testing.T) {
	e, l, _ := newTestEngine(t)
	initTestPool(t, e)
	onboard(t, e, l, "alice", startTick, nil)

	elapsed := uint64(108_000)
	got, err := e.ClaimRewards("alice", startTick+elapsed, nil)
	require.NoError(t, err)

	want := elapsed * testRate // 375_000_192_000
	require.Equal(t, want, got)
	require.Equal(t, want, l.BalanceOf("alice"))

	pool := e.Pool()
	require.Equal(t, want, pool.CumulativeRewards)

	p, err := e.Participant("alice")
	require.NoError(t, err)
	require.Equal(t, want, p.TotalRewards)
	require.Equal(t, pool.AccRewardPerHash, p.LastAccRewardPerHash)
	require.Equal(t, startTick+elapsed, p.LastClaimTime)

	// Re-claiming right away nets nothing new even past the cooldown.
	got, err = e.ClaimRewards("alice", startTick+elapsed+testCooldown, nil)
	require.NoError(t, err)
	require.Equal(t, testCooldown*testRate, got)
}

func TestClaimSplitsReferralSlice(t *testing.T) {
	e, l, _ := newTestEngine(t)
	initTestPool(t, e)
	ref := "bob"
	onboard(t, e, l, "bob", startTick, nil)
	onboard(t, e, l, "alice", startTick, &ref)

	// Two equal stakers: alice accrues half the emission.
	elapsed := uint64(108_000)
	got, err := e.ClaimRewards("alice", startTick+elapsed, &ref)
	require.NoError(t, err)

	pending := elapsed * testRate / 2 // 187_500_096_000
	referral := pending * 25 / 1000   //   4_687_502_400
	require.Equal(t, pending-referral, got)
	require.Equal(t, pending-referral, l.BalanceOf("alice"))
	require.Equal(t, referral, l.BalanceOf("bob"))

	p, err := e.Participant("alice")
	require.NoError(t, err)
	require.Equal(t, pending-referral, p.TotalRewards)
}

func TestClaimFoldsReferralWithoutDestination(t *testing.T) {
	e, l, _ := newTestEngine(t)
	initTestPool(t, e)
	ref := "bob"
	onboard(t, e, l, "bob", startTick, nil)
	onboard(t, e, l, "alice", startTick, &ref)

	// No destination supplied: the whole accrual stays with alice.
	elapsed := uint64(108_000)
	got, err := e.ClaimRewards("alice", startTick+elapsed, nil)
	require.NoError(t, err)
	require.Equal(t, elapsed*testRate/2, got)
	require.Equal(t, uint64(0), l.BalanceOf("bob"))

	// A destination that is not the recorded referrer gets nothing either.
	stranger := "carol"
	got, err = e.ClaimRewards("alice", startTick+2*elapsed, &stranger)
	require.NoError(t, err)
	require.Equal(t, elapsed*testRate/2, got)
	require.Equal(t, uint64(0), l.BalanceOf("carol"))
}

func TestClaimUnknownParticipant(t *testing.T) {
	e, _, _ := newTestEngine(t)
	initTestPool(t, e)
	_, err := e.ClaimRewards("nobody", startTick+testCooldown, nil)
	require.ErrorIs(t, err, types.ErrUnknownParticipant)
}
