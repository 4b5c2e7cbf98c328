package contexts

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddAngleNewestFirst(t *testing.T) {
	c := &Context{}
	day := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)

	c.AddAngle("first angle", day)
	c.AddAngle("second angle", day.AddDate(0, 0, 1))

	require.Len(t, c.RecentAngles, 2)
	assert.Equal(t, "2025-09-02: second angle", c.RecentAngles[0])
	assert.Equal(t, "2025-09-01: first angle", c.RecentAngles[1])
}

func TestAddAngleCapped(t *testing.T) {
	c := &Context{}
	day := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < MaxRecentAngles+5; i++ {
		c.AddAngle(fmt.Sprintf("angle %d", i), day.AddDate(0, 0, i))
	}

	require.Len(t, c.RecentAngles, MaxRecentAngles)
	// Newest kept, oldest dropped.
	assert.Contains(t, c.RecentAngles[0], "angle 14")
	assert.Contains(t, c.RecentAngles[MaxRecentAngles-1], "angle 5")
}

func TestStoreRoundTrip(t *testing.T) {
	s := &Store{Dir: t.TempDir()}

	in := &Context{
		Topic:        "AI in healthcare",
		Themes:       []string{"diagnostics", "ethics"},
		KeyMessages:  []string{"augment, don't replace"},
		RecentAngles: []string{"2025-09-01: pilot results"},
	}
	require.NoError(t, s.Save("ai_healthcare", in))

	out, err := s.Load("ai_healthcare")
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestStoreCreateRefusesOverwrite(t *testing.T) {
	s := &Store{Dir: t.TempDir()}

	require.NoError(t, s.Create("demo"))
	err := s.Create("demo")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestStoreCreateTemplateLoads(t *testing.T) {
	s := &Store{Dir: t.TempDir()}
	require.NoError(t, s.Create("fresh"))

	c, err := s.Load("fresh")
	require.NoError(t, err)
	assert.NotEmpty(t, c.Themes)
	assert.NotEmpty(t, c.KeyMessages)
	assert.Empty(t, c.RecentAngles)
}

func TestStoreLoadMissing(t *testing.T) {
	s := &Store{Dir: t.TempDir()}
	_, err := s.Load("nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestStoreListAndDelete(t *testing.T) {
	s := &Store{Dir: t.TempDir()}
	require.NoError(t, s.Create("b"))
	require.NoError(t, s.Create("a"))

	names, err := s.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, names)

	require.NoError(t, s.Delete("a"))
	names, err = s.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, names)

	require.Error(t, s.Delete("a"))
}

func TestStoreListMissingDir(t *testing.T) {
	s := &Store{Dir: t.TempDir() + "/does-not-exist"}
	names, err := s.List()
	require.NoError(t, err)
	assert.Empty(t, names)
}
