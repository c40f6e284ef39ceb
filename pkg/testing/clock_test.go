package testing

import (
	"testing"
	"time"

	"github.com/go-gooey/gooey/pkg/rendering"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFakeClock_Advance(t *testing.T) {
	clk := NewFakeClock()
	start := clk.Now()

	clk.Advance(100 * time.Millisecond)

	assert.Equal(t, 100*time.Millisecond, clk.Now().Sub(start))
}

func TestFakeClock_Set(t *testing.T) {
	clk := NewFakeClock()
	target := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	clk.Set(target)

	assert.True(t, clk.Now().Equal(target))
}

func TestFakeClock_AfterFiresAtDeadline(t *testing.T) {
	clk := NewFakeClock()
	ch := clk.After(50 * time.Millisecond)

	clk.Advance(49 * time.Millisecond)
	select {
	case <-ch:
		t.Fatal("fired before deadline")
	default:
	}
	require.Equal(t, 1, clk.Pending())

	clk.Advance(time.Millisecond)
	select {
	case <-ch:
	default:
		t.Fatal("did not fire at deadline")
	}
	assert.Equal(t, 0, clk.Pending())
}

func TestFakeClock_AfterFiresOnce(t *testing.T) {
	clk := NewFakeClock()
	ch := clk.After(time.Millisecond)

	clk.Advance(time.Second)
	clk.Advance(time.Second)

	<-ch
	select {
	case <-ch:
		t.Fatal("countdown fired twice")
	default:
	}
}

func TestRecordingBackend_ColorAt(t *testing.T) {
	var rec RecordingBackend
	colorA := rendering.FromRGB(0x112233FF)
	colorB := rendering.FromRGB(0x445566FF)
	colorC := rendering.FromRGB(0x778899FF)

	rec.FillRect(0, 0, 10, 10, colorA)
	rec.DrawHorizLine(0, 0, 10, colorB)
	rec.DrawVertLine(9, 0, 10, colorC)

	c, ok := rec.ColorAt(5, 5)
	require.True(t, ok)
	assert.Equal(t, colorA, c)

	c, _ = rec.ColorAt(0, 0)
	assert.Equal(t, colorB, c)

	c, _ = rec.ColorAt(9, 0)
	assert.Equal(t, colorC, c)

	_, ok = rec.ColorAt(20, 20)
	assert.False(t, ok)

	rec.Reset()
	assert.Empty(t, rec.Ops)
}
