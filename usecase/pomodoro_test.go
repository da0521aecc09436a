package usecase

import (
	"testing"

	"main/model"
)

func TestNextPhaseCycle(t *testing.T) {
	mode := model.TimerModeWork
	cycles := 0

	// First three work phases earn short breaks.
	for i := 1; i <= 3; i++ {
		mode, cycles = NextPhase(mode, cycles)
		if mode != model.TimerModeShortBreak {
			t.Fatalf("cycle %d: got %s, want SHORT_BREAK", i, mode)
		}
		if cycles != i {
			t.Fatalf("cycle %d: cycles = %d", i, cycles)
		}

		mode, cycles = NextPhase(mode, cycles)
		if mode != model.TimerModeWork {
			t.Fatalf("after break: got %s, want WORK", mode)
		}
	}

	// The fourth earns a long break.
	mode, cycles = NextPhase(mode, cycles)
	if mode != model.TimerModeLongBreak {
		t.Errorf("fourth cycle: got %s, want LONG_BREAK", mode)
	}
	if cycles != 4 {
		t.Errorf("cycles = %d, want 4", cycles)
	}

	mode, _ = NextPhase(mode, cycles)
	if mode != model.TimerModeWork {
		t.Errorf("after long break: got %s, want WORK", mode)
	}
}

func TestNextPhaseBreakKeepsCycles(t *testing.T) {
	mode, cycles := NextPhase(model.TimerModeShortBreak, 2)
	if mode != model.TimerModeWork || cycles != 2 {
		t.Errorf("got (%s, %d), want (WORK, 2)", mode, cycles)
	}
}

func TestPhaseMinutes(t *testing.T) {
	settings := model.DefaultSettings("u1")

	tests := []struct {
		mode model.TimerMode
		want int
	}{
		{model.TimerModeWork, 25},
		{model.TimerModeShortBreak, 5},
		{model.TimerModeLongBreak, 15},
	}
	for _, tt := range tests {
		if got := PhaseMinutes(tt.mode, settings); got != tt.want {
			t.Errorf("PhaseMinutes(%s) = %d, want %d", tt.mode, got, tt.want)
		}
	}
}
