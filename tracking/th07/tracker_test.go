package th07

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	th07mem "github.com/hakurei-works/thstat/memory/th07"
	th07types "github.com/hakurei-works/thstat/types/th07"
	"github.com/hakurei-works/thstat/tracking"
)

func baseRun() *th07mem.RunState {
	return &th07mem.RunState{
		Difficulty: th07types.Normal,
		Player: th07mem.PlayerState{
			ShotType:   th07types.ReimuA,
			Difficulty: th07types.Normal,
		},
		Stage: th07mem.StageState{Stage: th07types.StageOne},
	}
}

func TestBorderStartAndCleanEnd(t *testing.T) {
	base := time.Unix(0, 0)
	run := baseRun()
	active := NewActiveRun(run, base)

	r1 := *run
	r1.Player.BorderActive = true
	active.Update(&r1, base.Add(100*time.Millisecond))

	r2 := r1
	r2.Player.BorderActive = false
	active.Update(&r2, base.Add(1*time.Second))

	out := active.Finish(base.Add(1*time.Second), true)

	var starts, ends int
	var broken bool
	for _, e := range out.Events {
		ev, ok := e.GameSpecific.(Event)
		if !ok {
			continue
		}
		switch ev.Kind {
		case BorderStart:
			starts++
		case BorderEnd:
			ends++
			broken = ev.Broken
		}
	}
	require.Equal(t, 1, starts)
	require.Equal(t, 1, ends)
	require.False(t, broken, "a short border run should not be reported as broken")
}

func TestBorderBreakAtThreshold(t *testing.T) {
	base := time.Unix(0, 0)
	run := baseRun()
	active := NewActiveRun(run, base)

	r1 := *run
	r1.Player.BorderActive = true
	active.Update(&r1, base.Add(10*time.Millisecond))

	r2 := r1
	r2.Player.BorderActive = false
	active.Update(&r2, base.Add(9*time.Second))

	out := active.Finish(base.Add(9*time.Second), true)

	found := false
	for _, e := range out.Events {
		ev, ok := e.GameSpecific.(Event)
		if !ok || ev.Kind != BorderEnd {
			continue
		}
		found = true
		require.True(t, ev.Broken, "a border run lasting over 8750ms should be reported as broken")
	}
	require.True(t, found, "expected a BorderEnd event")
}

func TestMissBombContinuePauseThroughUpdate(t *testing.T) {
	base := time.Unix(0, 0)
	run := baseRun()
	run.Player.TotalMisses = 0
	run.Player.TotalBombs = 0
	run.Player.ContinuesUsed = 0
	active := NewActiveRun(run, base)

	r1 := *run
	r1.Player.TotalMisses = 1
	r1.Player.TotalBombs = 1
	r1.Player.ContinuesUsed = 1
	r1.Paused = true
	active.Update(&r1, base.Add(500*time.Millisecond))

	out := active.Finish(base.Add(500*time.Millisecond), false)

	var misses, bombs, continues, pauses int
	for _, e := range out.Events {
		switch e.Kind {
		case tracking.EventMiss:
			misses++
		case tracking.EventBomb:
			bombs++
		case tracking.EventContinue:
			continues++
		case tracking.EventPause:
			pauses++
		}
	}
	require.Equal(t, 1, misses)
	require.Equal(t, 1, bombs)
	require.Equal(t, 1, continues)
	require.Equal(t, 1, pauses)
	require.False(t, out.Cleared, "RunExited should report not cleared")
}

func TestStagePracticeFinish(t *testing.T) {
	base := time.Unix(0, 0)
	run := baseRun()
	run.Practice = true
	active := NewActiveRun(run, base)

	r1 := *run
	active.Update(&r1, base.Add(100*time.Millisecond))

	out := active.Finish(base.Add(100*time.Millisecond), true)
	require.False(t, out.Cleared, "stage-practice finish never reports cleared")
}
