// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gesture

import (
	"testing"

	"cogentcore.org/gesture/events"
	"cogentcore.org/gesture/math32"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func newTestPan(req PanRequest, opts *Options) (*PanRecognizer, *Recorder) {
	rec := &Recorder{}
	return NewPanRecognizer(req, opts, rec), rec
}

func touch(state events.PointStates, x, y float32, time uint64) *events.Touch {
	return events.NewSingleTouch(state, math32.Vec2(x, y), time)
}

// multi returns a sample whose primary contact has the given state and
// position, followed by the given secondary states.
func multi(state events.PointStates, x, y float32, time uint64, others ...events.PointStates) *events.Touch {
	pts := []events.Point{{ID: 0, State: state, Screen: math32.Vec2(x, y)}}
	for i, st := range others {
		pts = append(pts, events.Point{ID: i + 1, State: st, Screen: math32.Vec2(x+50, y)})
	}
	return events.NewTouch(time, pts...)
}

func pan(state events.GestureStates, pos, prev math32.Vector2, delta, time uint64, n int) *events.Pan {
	ev := events.NewPan(state)
	ev.Position = pos
	ev.PrevPosition = prev
	ev.TimeDelta = delta
	ev.Time = time
	ev.NumTouches = n
	return ev
}

func assertEvents(t *testing.T, want []*events.Pan, rec *Recorder) {
	t.Helper()
	if diff := cmp.Diff(want, rec.Events); diff != "" {
		t.Errorf("pan events mismatch (-want +got):\n%s", diff)
	}
}

func TestNewPanRecognizer(t *testing.T) {
	pr, _ := newTestPan(SinglePan, nil)
	assert.Equal(t, StateClear, pr.State())
	assert.Equal(t, Pan, pr.Kind())
	assert.Equal(t, float32(225), pr.minDistanceSquared)
	assert.Equal(t, 2, pr.minMotionSamples)
	assert.Equal(t, 10, pr.totalAdjustments)

	pr, _ = newTestPan(PanRequest{MinTouches: 2, MaxTouches: 3}, NewOptions(30, 4))
	assert.Equal(t, float32(900), pr.minDistanceSquared)
	assert.Equal(t, 4, pr.minMotionSamples)
	assert.Equal(t, 20, pr.totalAdjustments)
	mn, mx := pr.Touches()
	assert.Equal(t, 2, mn)
	assert.Equal(t, 3, mx)

	pr, _ = newTestPan(SinglePan, NewOptions(-4, -1))
	assert.Equal(t, float32(0), pr.minDistanceSquared)
	assert.Equal(t, 0, pr.minMotionSamples)
	assert.Equal(t, 0, pr.totalAdjustments)

	assert.Panics(t, func() { NewPanRecognizer(SinglePan, nil, nil) })
	assert.Panics(t, func() { newTestPan(PanRequest{MinTouches: 0, MaxTouches: 1}, nil) })
}

func TestConfigure(t *testing.T) {
	pr, _ := newTestPan(SinglePan, nil)
	pr.Configure(2, 4)
	mn, mx := pr.Touches()
	assert.Equal(t, 2, mn)
	assert.Equal(t, 4, mx)

	assert.Panics(t, func() { pr.Configure(0, 1) })
	assert.Panics(t, func() { pr.Configure(3, 2) })

	pr.Update(PanRequest{MinTouches: 1, MaxTouches: 2})
	mn, mx = pr.Touches()
	assert.Equal(t, 1, mn)
	assert.Equal(t, 2, mx)

	assert.Panics(t, func() { pr.Update(otherRequest{}) })
}

type otherRequest struct{}

func (otherRequest) Kind() Kinds { return Kinds(7) }

func TestPanFastStart(t *testing.T) {
	pr, rec := newTestPan(SinglePan, NewOptions(15, 2))

	pr.ProcessSample(touch(events.PointDown, 0, 0, 0))
	assert.Equal(t, StatePossible, pr.State())

	pr.ProcessSample(touch(events.PointMotion, 20, 0, 10))
	assert.Equal(t, StatePossible, pr.State())
	assert.Len(t, rec.Events, 1)

	pr.ProcessSample(touch(events.PointMotion, 20, 0, 20))
	assert.Equal(t, StateStarted, pr.State())

	assertEvents(t, []*events.Pan{
		pan(events.Possible, math32.Vec2(0, 0), math32.Vec2(0, 0), 0, 0, 1),
		pan(events.Started, math32.Vec2(20, 0), math32.Vec2(0, 0), 20, 20, 1),
	}, rec)

	pr.ProcessSample(touch(events.PointMotion, 30, 5, 30))
	pr.ProcessSample(touch(events.PointUp, 35, 5, 40))
	assert.Equal(t, StateClear, pr.State())

	assertEvents(t, []*events.Pan{
		pan(events.Possible, math32.Vec2(0, 0), math32.Vec2(0, 0), 0, 0, 1),
		pan(events.Started, math32.Vec2(20, 0), math32.Vec2(0, 0), 20, 20, 1),
		pan(events.Continuing, math32.Vec2(30, 5), math32.Vec2(20, 0), 10, 30, 1),
		pan(events.Finished, math32.Vec2(35, 5), math32.Vec2(30, 5), 10, 40, 1),
	}, rec)
}

func TestPanSlowStart(t *testing.T) {
	pr, rec := newTestPan(SinglePan, NewOptions(15, 1))

	pr.ProcessSample(touch(events.PointDown, 0, 0, 0))
	pr.ProcessSample(touch(events.PointMotion, 20, 0, 200))
	assert.Equal(t, StateStarted, pr.State())

	started := rec.Last()
	assert.Equal(t, events.Started, started.State)
	assert.NotEqual(t, math32.Vec2(20, 0), started.Position)
	assert.Equal(t, math32.Vec2(2, 0), started.Position)
	assert.Equal(t, math32.Vec2(0, 0), started.PrevPosition)
	assert.Equal(t, uint64(200), started.TimeDelta)

	pr.ProcessSample(touch(events.PointMotion, 22, 0, 210))
	moved := rec.Last()
	assert.Equal(t, events.Continuing, moved.State)
	assert.Equal(t, math32.Vec2(6, 0), moved.Position)
	assert.Equal(t, math32.Vec2(2, 0), moved.PrevPosition)
	assert.Equal(t, uint64(10), moved.TimeDelta)
}

func TestPanSmoothingConverges(t *testing.T) {
	pr, rec := newTestPan(SinglePan, NewOptions(15, 1))
	raw := math32.Vec2(20, 10)

	pr.ProcessSample(touch(events.PointDown, 0, 0, 0))
	tm := uint64(150)
	for i := 0; i < 14; i++ {
		pr.ProcessSample(touch(events.PointMotion, raw.X, raw.Y, tm))
		tm += 16
	}
	pans := rec.Events[1:]
	assert.Len(t, pans, 14)
	assert.Equal(t, events.Started, pans[0].State)

	prevDist := raw.DistanceTo(math32.Vector2{}) + 1
	for i, ev := range pans {
		dist := raw.DistanceTo(ev.Position)
		if i < 10 {
			assert.Less(t, dist, prevDist, "event %d should move toward the raw position", i)
			prevDist = dist
		}
		if i >= 9 {
			assert.Equal(t, raw, ev.Position, "event %d should be unadjusted", i)
		}
	}
	assert.Equal(t, math32.Vec2(2, 1), pans[0].Position)
}

func TestPanSlowPanBoundary(t *testing.T) {
	pr, rec := newTestPan(SinglePan, NewOptions(15, 1))
	pr.ProcessSample(touch(events.PointDown, 0, 0, 1000))
	pr.ProcessSample(touch(events.PointMotion, 20, 0, 1100))
	assert.Equal(t, math32.Vec2(20, 0), rec.Last().Position, "exactly at the threshold is a fast pan")

	pr, rec = newTestPan(SinglePan, NewOptions(15, 1))
	pr.ProcessSample(touch(events.PointDown, 0, 0, 1000))
	pr.ProcessSample(touch(events.PointMotion, 20, 0, 1101))
	assert.Equal(t, math32.Vec2(2, 0), rec.Last().Position)
}

func TestPanZeroDistance(t *testing.T) {
	pr, rec := newTestPan(SinglePan, NewOptions(0, 0))
	pr.ProcessSample(touch(events.PointDown, 4, 4, 0))
	pr.ProcessSample(touch(events.PointMotion, 4, 4, 500))
	assert.Equal(t, StateStarted, pr.State())
	assert.Equal(t, math32.Vec2(4, 4), rec.Last().Position)
}

func TestPanMotionSampleGate(t *testing.T) {
	pr, rec := newTestPan(SinglePan, NewOptions(15, 3))
	pr.ProcessSample(touch(events.PointDown, 0, 0, 0))
	pr.ProcessSample(touch(events.PointMotion, 100, 0, 10))
	pr.ProcessSample(touch(events.PointMotion, 200, 0, 20))
	assert.Equal(t, StatePossible, pr.State())
	assert.Equal(t, []events.GestureStates{events.Possible}, rec.States())

	pr.ProcessSample(touch(events.PointMotion, 300, 0, 30))
	assert.Equal(t, StateStarted, pr.State())
	assert.Equal(t, []events.GestureStates{events.Possible, events.Started}, rec.States())
}

func TestPanDistanceGate(t *testing.T) {
	pr, rec := newTestPan(SinglePan, NewOptions(15, 1))
	pr.ProcessSample(touch(events.PointDown, 0, 0, 0))
	for _, x := range []float32{5, 10, 14.9} {
		pr.ProcessSample(touch(events.PointMotion, x, 0, uint64(x)))
		assert.Equal(t, StatePossible, pr.State(), "x=%v", x)
	}
	pr.ProcessSample(touch(events.PointMotion, 9, 12, 20))
	assert.Equal(t, StateStarted, pr.State())
	assert.Equal(t, []events.GestureStates{events.Possible, events.Started}, rec.States())
}

func TestPanStartAndFinishOnUp(t *testing.T) {
	pr, rec := newTestPan(SinglePan, nil)
	pr.ProcessSample(touch(events.PointDown, 0, 0, 0))
	pr.ProcessSample(touch(events.PointUp, 30, 0, 50))
	assert.Equal(t, StateClear, pr.State())

	assertEvents(t, []*events.Pan{
		pan(events.Possible, math32.Vec2(0, 0), math32.Vec2(0, 0), 0, 0, 1),
		pan(events.Started, math32.Vec2(30, 0), math32.Vec2(30, 0), 0, 50, 1),
		pan(events.Finished, math32.Vec2(30, 0), math32.Vec2(0, 0), 50, 50, 1),
	}, rec)
}

func TestPanStartAndFinishAfterMotion(t *testing.T) {
	pr, rec := newTestPan(SinglePan, nil)
	pr.ProcessSample(touch(events.PointDown, 0, 0, 0))
	pr.ProcessSample(touch(events.PointMotion, 5, 0, 300))
	pr.ProcessSample(touch(events.PointUp, 40, 0, 320))
	assert.Equal(t, StateClear, pr.State())

	// Started measures from the down sample, and being slow, is pulled
	// back by 9 of 10 steps of the 40 pixel move.
	assertEvents(t, []*events.Pan{
		pan(events.Possible, math32.Vec2(0, 0), math32.Vec2(0, 0), 0, 0, 1),
		pan(events.Started, math32.Vec2(4, 0), math32.Vec2(0, 0), 320, 320, 1),
		pan(events.Finished, math32.Vec2(8, 0), math32.Vec2(4, 0), 20, 320, 1),
	}, rec)
}

func TestPanCancelledOnShortUp(t *testing.T) {
	pr, rec := newTestPan(SinglePan, nil)
	pr.ProcessSample(touch(events.PointDown, 0, 0, 0))
	pr.ProcessSample(touch(events.PointMotion, 3, 0, 10))
	pr.ProcessSample(touch(events.PointUp, 5, 0, 20))
	assert.Equal(t, StateClear, pr.State())
	assert.Equal(t, []events.GestureStates{events.Possible, events.Cancelled}, rec.States())
}

func TestPanDownCountMismatch(t *testing.T) {
	pr, rec := newTestPan(SinglePan, nil)
	pr.ProcessSample(multi(events.PointDown, 0, 0, 0, events.PointDown))
	assert.Equal(t, StateClear, pr.State())
	pr.ProcessSample(touch(events.PointUp, 0, 0, 10))
	assert.Equal(t, StateClear, pr.State())
	assert.Empty(t, rec.Events)
	assert.Equal(t, 0, pr.history.len())
	assert.Equal(t, uint64(0), pr.downTime)

	pr.ProcessSample(touch(events.PointDown, 7, 7, 20))
	assertEvents(t, []*events.Pan{
		pan(events.Possible, math32.Vec2(7, 7), math32.Vec2(7, 7), 0, 20, 1),
	}, rec)
}

func TestPanIgnoresNonDownWhenClear(t *testing.T) {
	pr, rec := newTestPan(SinglePan, nil)
	pr.ProcessSample(touch(events.PointMotion, 50, 0, 0))
	pr.ProcessSample(touch(events.PointStationary, 50, 0, 5))
	pr.ProcessSample(touch(events.PointUp, 50, 0, 10))
	assert.Equal(t, StateClear, pr.State())
	assert.Empty(t, rec.Events)
}

func TestPanInterrupted(t *testing.T) {
	t.Run("possible", func(t *testing.T) {
		pr, rec := newTestPan(SinglePan, nil)
		pr.ProcessSample(touch(events.PointDown, 0, 0, 0))
		pr.ProcessSample(touch(events.PointInterrupted, 2, 0, 10))
		assert.Equal(t, StateClear, pr.State())
		assert.Equal(t, 0, pr.history.len())
		assertEvents(t, []*events.Pan{
			pan(events.Possible, math32.Vec2(0, 0), math32.Vec2(0, 0), 0, 0, 1),
			pan(events.Cancelled, math32.Vec2(2, 0), math32.Vec2(0, 0), 10, 10, 1),
		}, rec)
	})
	t.Run("started", func(t *testing.T) {
		pr, rec := newTestPan(SinglePan, NewOptions(15, 1))
		pr.ProcessSample(touch(events.PointDown, 0, 0, 0))
		pr.ProcessSample(touch(events.PointMotion, 20, 0, 10))
		pr.ProcessSample(touch(events.PointInterrupted, 25, 0, 20))
		assert.Equal(t, StateClear, pr.State())
		assert.Equal(t, 0, pr.history.len())
		assert.Equal(t, []events.GestureStates{events.Possible, events.Started, events.Cancelled}, rec.States())
		assert.Equal(t, math32.Vec2(20, 0), rec.Last().PrevPosition)
	})
	t.Run("clear", func(t *testing.T) {
		pr, rec := newTestPan(SinglePan, nil)
		pr.ProcessSample(touch(events.PointInterrupted, 0, 0, 0))
		assert.Equal(t, StateClear, pr.State())
		assert.Empty(t, rec.Events)
	})
	t.Run("failed", func(t *testing.T) {
		pr, rec := newTestPan(SinglePan, nil)
		pr.ProcessSample(touch(events.PointDown, 0, 0, 0))
		pr.ProcessSample(multi(events.PointMotion, 1, 0, 10, events.PointDown))
		assert.Equal(t, StateFailed, pr.State())
		rec.Reset()
		pr.ProcessSample(touch(events.PointInterrupted, 0, 0, 20))
		assert.Equal(t, StateClear, pr.State())
		assert.Empty(t, rec.Events)
	})
}

func TestPanFailedUntilUp(t *testing.T) {
	pr, rec := newTestPan(SinglePan, nil)
	pr.ProcessSample(touch(events.PointDown, 0, 0, 0))
	pr.ProcessSample(multi(events.PointMotion, 1, 0, 10, events.PointDown))
	assert.Equal(t, StateFailed, pr.State())
	assert.Equal(t, []events.GestureStates{events.Possible, events.Cancelled}, rec.States())

	rec.Reset()
	pr.ProcessSample(touch(events.PointMotion, 100, 0, 20))
	pr.ProcessSample(touch(events.PointDown, 100, 0, 30))
	pr.ProcessSample(multi(events.PointStationary, 100, 0, 40, events.PointUp))
	assert.Equal(t, StateFailed, pr.State())
	assert.Empty(t, rec.Events)

	pr.ProcessSample(touch(events.PointUp, 100, 0, 50))
	assert.Equal(t, StateClear, pr.State())
	assert.Empty(t, rec.Events)
}

func TestPanPossibleOutOfRangeUp(t *testing.T) {
	pr, rec := newTestPan(PanRequest{MinTouches: 2, MaxTouches: 2}, nil)
	pr.ProcessSample(multi(events.PointDown, 0, 0, 0, events.PointDown))
	assert.Equal(t, StatePossible, pr.State())
	pr.ProcessSample(touch(events.PointUp, 0, 0, 10))
	assert.Equal(t, StateClear, pr.State())
	assert.Equal(t, []events.GestureStates{events.Possible, events.Cancelled}, rec.States())
}

func TestPanStartedOutOfRange(t *testing.T) {
	start := func(t *testing.T) (*PanRecognizer, *Recorder) {
		pr, rec := newTestPan(PanRequest{MinTouches: 2, MaxTouches: 2}, NewOptions(15, 1))
		pr.ProcessSample(multi(events.PointDown, 0, 0, 0, events.PointDown))
		pr.ProcessSample(multi(events.PointMotion, 20, 0, 10, events.PointMotion))
		assert.Equal(t, StateStarted, pr.State())
		rec.Reset()
		return pr, rec
	}

	t.Run("primary up", func(t *testing.T) {
		pr, rec := start(t)
		pr.ProcessSample(touch(events.PointUp, 25, 0, 20))
		assert.Equal(t, StateClear, pr.State())
		assert.Equal(t, []events.GestureStates{events.Finished}, rec.States())
	})
	t.Run("extra contact", func(t *testing.T) {
		pr, rec := start(t)
		pr.ProcessSample(multi(events.PointStationary, 20, 0, 20, events.PointMotion, events.PointDown))
		assert.Equal(t, StateFinished, pr.State())
		assert.Equal(t, []events.GestureStates{events.Finished}, rec.States())
		assert.Equal(t, 3, rec.Last().NumTouches)

		pr.ProcessSample(multi(events.PointMotion, 40, 0, 30, events.PointMotion))
		assert.Equal(t, StateFinished, pr.State())
		pr.ProcessSample(touch(events.PointUp, 40, 0, 40))
		assert.Equal(t, StateClear, pr.State())
		assert.Len(t, rec.Events, 1)
	})
}

func TestPanSecondaryLift(t *testing.T) {
	pr, rec := newTestPan(PanRequest{MinTouches: 2, MaxTouches: 2}, NewOptions(15, 1))
	pr.ProcessSample(multi(events.PointDown, 0, 0, 0, events.PointDown))
	pr.ProcessSample(multi(events.PointMotion, 20, 0, 10, events.PointMotion))
	assert.Equal(t, StateStarted, pr.State())

	pr.ProcessSample(multi(events.PointStationary, 20, 0, 20, events.PointStationary))
	assert.Equal(t, StateStarted, pr.State())
	assert.Len(t, rec.Events, 2)

	pr.ProcessSample(multi(events.PointStationary, 20, 0, 30, events.PointUp))
	assert.Equal(t, StateFinished, pr.State())
	assert.Equal(t, []events.GestureStates{events.Possible, events.Started, events.Finished}, rec.States())

	pr.ProcessSample(touch(events.PointUp, 20, 0, 40))
	assert.Equal(t, StateClear, pr.State())
	assert.Len(t, rec.Events, 3)
}

func TestPanSecondaryLiftAboveMinimum(t *testing.T) {
	pr, rec := newTestPan(PanRequest{MinTouches: 2, MaxTouches: 3}, NewOptions(15, 1))
	pr.ProcessSample(multi(events.PointDown, 0, 0, 0, events.PointDown))
	pr.ProcessSample(multi(events.PointMotion, 20, 0, 10, events.PointMotion, events.PointDown))
	assert.Equal(t, StateStarted, pr.State())

	// three contacts is in range but not the minimum, so a lift is not checked
	pr.ProcessSample(multi(events.PointStationary, 20, 0, 20, events.PointStationary, events.PointUp))
	assert.Equal(t, StateStarted, pr.State())
	assert.Equal(t, []events.GestureStates{events.Possible, events.Started}, rec.States())
}

func TestPanReconfigureMidCandidate(t *testing.T) {
	pr, rec := newTestPan(SinglePan, nil)
	pr.ProcessSample(touch(events.PointDown, 0, 0, 0))
	pr.Configure(2, 2)
	assert.Equal(t, StatePossible, pr.State())

	pr.ProcessSample(touch(events.PointMotion, 30, 0, 10))
	assert.Equal(t, StateFailed, pr.State())
	assert.Equal(t, []events.GestureStates{events.Possible, events.Cancelled}, rec.States())
}

func TestPanRepeatedGestures(t *testing.T) {
	pr, rec := newTestPan(SinglePan, NewOptions(15, 1))
	for i := 0; i < 3; i++ {
		base := uint64(i * 1000)
		rec.Reset()
		pr.ProcessSample(touch(events.PointDown, 0, 0, base))
		pr.ProcessSample(touch(events.PointMotion, 20, 0, base+400))
		pr.ProcessSample(touch(events.PointUp, 20, 0, base+410))
		assert.Equal(t, StateClear, pr.State())
		assertEvents(t, []*events.Pan{
			pan(events.Possible, math32.Vec2(0, 0), math32.Vec2(0, 0), 0, base, 1),
			pan(events.Started, math32.Vec2(2, 0), math32.Vec2(0, 0), 400, base+400, 1),
			pan(events.Finished, math32.Vec2(4, 0), math32.Vec2(2, 0), 10, base+410, 1),
		}, rec)
	}
}
