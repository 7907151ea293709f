package adaptive

import "testing"

func TestNew_DefaultsToBeginner(t *testing.T) {
	a := New("")
	if a.CurrentLevel() != LevelBeginner {
		t.Errorf("CurrentLevel = %s, want beginner", a.CurrentLevel())
	}
}

func TestShouldAdjust_RequiresMinimumSamples(t *testing.T) {
	a := New(LevelIntermediate)
	a.RecordAnswer(false, 10)
	a.RecordAnswer(false, 10)
	if rec := a.ShouldAdjust(); rec.ShouldAdjust {
		t.Errorf("got adjustment %+v with only 2 samples, want none", rec)
	}
}

func TestShouldAdjust_UpAfterFourCorrectHighAccuracy(t *testing.T) {
	a := New(LevelIntermediate)
	for i := 0; i < 4; i++ {
		a.RecordAnswer(true, 12)
	}
	rec := a.ShouldAdjust()
	if !rec.ShouldAdjust || rec.Direction != DirectionUp {
		t.Errorf("got %+v, want up adjustment after 4 straight correct at 100%% accuracy", rec)
	}
}

func TestShouldAdjust_DownAfterThreeWrongRegardlessOfAccuracy(t *testing.T) {
	a := New(LevelAdvanced)
	// Build up high accuracy first, then three straight misses.
	for i := 0; i < 7; i++ {
		a.RecordAnswer(true, 10)
	}
	for i := 0; i < 3; i++ {
		a.RecordAnswer(false, 10)
	}
	rec := a.ShouldAdjust()
	if !rec.ShouldAdjust || rec.Direction != DirectionDown {
		t.Errorf("got %+v, want down adjustment after 3 straight wrong", rec)
	}
}

func TestShouldAdjust_DownOnLowAccuracyWithEnoughSamples(t *testing.T) {
	a := New(LevelIntermediate)
	// Alternate so no wrong streak reaches 3, but accuracy sits at 40%.
	pattern := []bool{false, true, false, true, false}
	for _, correct := range pattern {
		a.RecordAnswer(correct, 10)
	}
	rec := a.ShouldAdjust()
	if !rec.ShouldAdjust || rec.Direction != DirectionDown {
		t.Errorf("got %+v, want down adjustment at 40%% accuracy over 5 samples", rec)
	}
}

func TestShouldAdjust_NoChangeInSteadyState(t *testing.T) {
	a := New(LevelIntermediate)
	pattern := []bool{true, true, false, true, true, false, true}
	for _, correct := range pattern {
		a.RecordAnswer(correct, 10)
	}
	if rec := a.ShouldAdjust(); rec.ShouldAdjust {
		t.Errorf("got %+v, want no adjustment for mixed-but-passing answers", rec)
	}
}

func TestRecordAnswer_WindowCapsAtTen(t *testing.T) {
	a := New(LevelBeginner)
	// Ten misses, then ten hits: the misses fall out of the window.
	for i := 0; i < 10; i++ {
		a.RecordAnswer(false, 5)
	}
	for i := 0; i < 10; i++ {
		a.RecordAnswer(true, 5)
	}
	if a.SampleCount() != 10 {
		t.Errorf("SampleCount = %d, want window capped at 10", a.SampleCount())
	}
	if a.Accuracy() != 1.0 {
		t.Errorf("Accuracy = %f, want 1.0 once misses age out", a.Accuracy())
	}
}

func TestRecordAnswer_CountersMutuallyReset(t *testing.T) {
	a := New(LevelBeginner)
	a.RecordAnswer(true, 5)
	a.RecordAnswer(true, 5)
	a.RecordAnswer(false, 5)
	a.RecordAnswer(false, 5)
	a.RecordAnswer(false, 5)
	rec := a.ShouldAdjust()
	if !rec.ShouldAdjust || rec.Direction != DirectionDown {
		t.Errorf("got %+v, want down after the wrong streak replaced the correct one", rec)
	}
}

func TestAdjust_StepsAndClamps(t *testing.T) {
	a := New(LevelBeginner)
	if got := a.Adjust(DirectionDown); got != LevelBeginner {
		t.Errorf("Adjust(down) at beginner = %s, want clamped at beginner", got)
	}
	if got := a.Adjust(DirectionUp); got != LevelIntermediate {
		t.Errorf("Adjust(up) = %s, want intermediate", got)
	}
	a.Adjust(DirectionUp)
	a.Adjust(DirectionUp)
	if got := a.CurrentLevel(); got != LevelExpert {
		t.Errorf("CurrentLevel = %s, want expert", got)
	}
	if got := a.Adjust(DirectionUp); got != LevelExpert {
		t.Errorf("Adjust(up) at expert = %s, want clamped at expert", got)
	}
}

func TestAdjust_ResetsOnlyTriggeringCounter(t *testing.T) {
	a := New(LevelIntermediate)
	for i := 0; i < 4; i++ {
		a.RecordAnswer(true, 10)
	}
	a.Adjust(DirectionUp)

	// The window survives the adjustment; only the correct streak was
	// cleared. One more correct answer must not immediately re-trigger.
	if a.SampleCount() != 4 {
		t.Errorf("SampleCount = %d, want window preserved across Adjust", a.SampleCount())
	}
	a.RecordAnswer(true, 10)
	if rec := a.ShouldAdjust(); rec.ShouldAdjust {
		t.Errorf("got %+v, want no immediate re-trigger after streak reset", rec)
	}
}

func TestReset_ClearsSessionState(t *testing.T) {
	a := New(LevelAdvanced)
	for i := 0; i < 6; i++ {
		a.RecordAnswer(true, 30)
	}
	a.Reset()
	if a.SampleCount() != 0 || a.Accuracy() != 0 || a.TotalTimeSpent() != 0 {
		t.Error("Reset left residual window state")
	}
	if a.CurrentLevel() != LevelAdvanced {
		t.Errorf("CurrentLevel = %s, want level kept across Reset", a.CurrentLevel())
	}
}
