package ecsgo

import (
	"testing"

	"github.com/hupe1980/ecsgo/testutil"
	"github.com/stretchr/testify/assert"
)

func TestFingerprint_OrderIndependent(t *testing.T) {
	r := NewRegistry()
	pos := TypeOf[testutil.Position](r)
	vel := TypeOf[testutil.Velocity](r)
	health := TypeOf[testutil.Health](r)

	a := NewFingerprint(pos, vel, health)
	b := NewFingerprint(health, pos, vel)

	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Key(), b.Key())
}

func TestFingerprint_Distinct(t *testing.T) {
	r := NewRegistry()
	pos := TypeOf[testutil.Position](r)
	vel := TypeOf[testutil.Velocity](r)

	assert.False(t, NewFingerprint(pos).Equal(NewFingerprint(pos, vel)))
	assert.False(t, NewFingerprint(pos).Equal(NewFingerprint(vel)))
	assert.False(t, NewFingerprint().Equal(NewFingerprint(pos)))
}

func TestFingerprint_Membership(t *testing.T) {
	r := NewRegistry()
	pos := TypeOf[testutil.Position](r)
	vel := TypeOf[testutil.Velocity](r)
	health := TypeOf[testutil.Health](r)

	fp := NewFingerprint(health, pos)

	assert.True(t, fp.Contains(pos.ID()))
	assert.True(t, fp.Contains(health.ID()))
	assert.False(t, fp.Contains(vel.ID()))
	assert.False(t, fp.Contains(100))
	assert.False(t, fp.Contains(-1))
	assert.Equal(t, 2, fp.Len())
	assert.Equal(t, []int{0, 2}, fp.IDs())

	assert.True(t, fp.ContainsAll(NewFingerprint(pos)))
	assert.True(t, fp.ContainsAll(NewFingerprint()))
	assert.False(t, fp.ContainsAll(NewFingerprint(pos, vel)))
}

func TestFingerprint_Empty(t *testing.T) {
	var zero Fingerprint
	empty := NewFingerprint()

	assert.Equal(t, 0, empty.Len())
	assert.Empty(t, empty.IDs())
	assert.True(t, zero.Equal(empty))
	assert.False(t, zero.Contains(0))
}

func TestFingerprint_HighIDs(t *testing.T) {
	low := &componentType[testutil.Position]{id: 0}
	high := &componentType[testutil.Velocity]{id: 130}

	fp := NewFingerprint(low, high)

	assert.True(t, fp.Contains(130))
	assert.False(t, fp.Contains(64))
	assert.Equal(t, []int{0, 130}, fp.IDs())
	assert.False(t, fp.Equal(NewFingerprint(low)))
	assert.True(t, fp.Equal(NewFingerprint(high, low)))
}
