package usecase

import (
	"context"
	"time"

	"main/model"
	"main/repository"
)

// NextPhase returns the timer mode and cycle count after finishing the
// current phase. Finishing a work phase counts a cycle; every fourth cycle
// earns a long break, otherwise a short one. Finishing any break returns
// to work.
func NextPhase(mode model.TimerMode, cycles int) (model.TimerMode, int) {
	if mode == model.TimerModeWork {
		cycles++
		if cycles%4 == 0 {
			return model.TimerModeLongBreak, cycles
		}
		return model.TimerModeShortBreak, cycles
	}
	return model.TimerModeWork, cycles
}

// PhaseMinutes returns the configured duration for a timer mode.
func PhaseMinutes(mode model.TimerMode, settings *model.Settings) int {
	switch mode {
	case model.TimerModeShortBreak:
		return settings.ShortBreakMinutes
	case model.TimerModeLongBreak:
		return settings.LongBreakMinutes
	default:
		return settings.WorkMinutes
	}
}

type PomodoroService struct {
	PomodoroRepo *repository.PomodoroRepo
	SettingsRepo *repository.SettingsRepo
}

// PhaseView is the timer state with the active phase duration resolved
// from the user's settings.
type PhaseView struct {
	Mode    model.TimerMode `json:"mode"`
	Cycles  int             `json:"cycles"`
	Minutes int             `json:"minutes"`
}

func (svc *PomodoroService) GetState(ctx context.Context, userID string) (*PhaseView, error) {
	state, err := svc.PomodoroRepo.GetState(ctx, userID)
	if err != nil {
		return nil, err
	}
	return svc.view(ctx, state)
}

// CompletePhase advances the user's timer to the next phase and persists it.
func (svc *PomodoroService) CompletePhase(ctx context.Context, userID string) (*PhaseView, error) {
	state, err := svc.PomodoroRepo.GetState(ctx, userID)
	if err != nil {
		return nil, err
	}

	state.Mode, state.Cycles = NextPhase(state.Mode, state.Cycles)
	state.UpdatedAt = time.Now()

	if err := svc.PomodoroRepo.SaveState(ctx, state); err != nil {
		return nil, err
	}
	return svc.view(ctx, state)
}

// Reset puts the timer back to a fresh work phase, keeping the cycle count.
func (svc *PomodoroService) Reset(ctx context.Context, userID string) (*PhaseView, error) {
	state, err := svc.PomodoroRepo.GetState(ctx, userID)
	if err != nil {
		return nil, err
	}

	state.Mode = model.TimerModeWork
	state.UpdatedAt = time.Now()

	if err := svc.PomodoroRepo.SaveState(ctx, state); err != nil {
		return nil, err
	}
	return svc.view(ctx, state)
}

func (svc *PomodoroService) view(ctx context.Context, state *model.PomodoroState) (*PhaseView, error) {
	settings, err := svc.SettingsRepo.GetSettings(ctx, state.UserID)
	if err != nil {
		return nil, err
	}
	return &PhaseView{
		Mode:    state.Mode,
		Cycles:  state.Cycles,
		Minutes: PhaseMinutes(state.Mode, settings),
	}, nil
}
