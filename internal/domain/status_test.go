package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus_Valid(t *testing.T) {
	assert.True(t, StatusPending.Valid())
	assert.True(t, StatusApproved.Valid())
	assert.True(t, StatusRejected.Valid())
	assert.False(t, Status("").Valid())
	assert.False(t, Status("pending").Valid()) // casing is part of the contract
	assert.False(t, Status("Maybe").Valid())
}

func TestStatus_Terminal(t *testing.T) {
	assert.False(t, StatusPending.Terminal())
	assert.True(t, StatusApproved.Terminal())
	assert.True(t, StatusRejected.Terminal())
}

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to Status
		ok       bool
	}{
		{StatusPending, StatusApproved, true},
		{StatusPending, StatusRejected, true},
		{StatusPending, StatusPending, false},
		{StatusApproved, StatusRejected, false},
		{StatusApproved, StatusPending, false},
		{StatusRejected, StatusApproved, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.ok, CanTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestStatusCounts_Total(t *testing.T) {
	counts := StatusCounts{Pending: 2, Approved: 5, Rejected: 1}
	assert.Equal(t, 8, counts.Total())
	assert.Equal(t, 0, StatusCounts{}.Total())
}

func TestNormalizeUsername(t *testing.T) {
	assert.Equal(t, "diretor", NormalizeUsername("  Diretor "))
	assert.Equal(t, "ana.paula", NormalizeUsername("ANA.PAULA"))
	assert.Equal(t, "", NormalizeUsername("   "))
}
