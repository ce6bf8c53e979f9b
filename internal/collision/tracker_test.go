package collision

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/jflat/errs"
)

func TestNewTracker(t *testing.T) {
	tracker := NewTracker()

	require.NotNil(t, tracker)
	require.Equal(t, 0, tracker.Count())
	require.False(t, tracker.HasCollision())
	require.Empty(t, tracker.Paths())
}

func TestTracker_Track_Success(t *testing.T) {
	tracker := NewTracker()

	collided, err := tracker.Track(".cfg.port", 0x1234567890abcdef)
	require.NoError(t, err)
	require.False(t, collided)

	collided, err = tracker.Track(".cfg.host", 0xfedcba0987654321)
	require.NoError(t, err)
	require.False(t, collided)

	require.Equal(t, 2, tracker.Count())
	require.False(t, tracker.HasCollision())
	require.Equal(t, []string{".cfg.port", ".cfg.host"}, tracker.Paths())

	owner, ok := tracker.Owner(0x1234567890abcdef)
	require.True(t, ok)
	require.Equal(t, ".cfg.port", owner)
}

func TestTracker_Track_EmptyPath(t *testing.T) {
	tracker := NewTracker()

	_, err := tracker.Track("", 0x1234567890abcdef)

	require.ErrorIs(t, err, errs.ErrInvalidPath)
	require.Equal(t, 0, tracker.Count())
}

func TestTracker_Track_Collision(t *testing.T) {
	tracker := NewTracker()

	_, err := tracker.Track(".a", 7)
	require.NoError(t, err)

	// same hash, different path: tracked, not an error
	collided, err := tracker.Track(".b", 7)
	require.NoError(t, err)
	require.True(t, collided)
	require.True(t, tracker.HasCollision())
	require.Equal(t, []string{".a", ".b"}, tracker.Paths())

	owner, _ := tracker.Owner(7)
	require.Equal(t, ".a", owner, "first path keeps the hash")
}

func TestTracker_Track_Duplicate(t *testing.T) {
	tracker := NewTracker()

	_, err := tracker.Track(".a", 7)
	require.NoError(t, err)
	_, err = tracker.Track(".b", 7)
	require.NoError(t, err)

	collided, err := tracker.Track(".a", 7)
	require.ErrorIs(t, err, errs.ErrDuplicatePath)
	require.False(t, collided)

	collided, err = tracker.Track(".b", 7)
	require.ErrorIs(t, err, errs.ErrDuplicatePath)
	require.True(t, collided, "a duplicate of a colliding path is reported as colliding")

	require.Equal(t, 2, tracker.Count())
}

func TestTracker_Reset(t *testing.T) {
	tracker := NewTracker()
	_, _ = tracker.Track(".a", 1)
	_, _ = tracker.Track(".b", 1)
	require.True(t, tracker.HasCollision())

	tracker.Reset()

	require.Equal(t, 0, tracker.Count())
	require.False(t, tracker.HasCollision())
	_, ok := tracker.Owner(1)
	require.False(t, ok)

	collided, err := tracker.Track(".b", 1)
	require.NoError(t, err)
	require.False(t, collided)
}
