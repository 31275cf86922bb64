package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/ringshot/internal/core"
	"github.com/vovakirdan/ringshot/internal/games/ringshot"
)

func TestResultOverlayOptions(t *testing.T) {
	win := newResultOverlay(ringshot.Outcome{LevelID: 1, Success: true, Stars: 2, Score: 300}, 1)
	if len(win.options) != 3 || win.options[0] != choiceNext {
		t.Errorf("win options = %v, expected Next first", win.options)
	}

	loss := newResultOverlay(ringshot.Outcome{LevelID: 1}, 0)
	if len(loss.options) != 2 || loss.options[0] != choiceRetry {
		t.Errorf("loss options = %v, expected Retry first", loss.options)
	}
}

func TestResultOverlayHandle(t *testing.T) {
	tests := []struct {
		name    string
		success bool
		actions []MenuAction
		restart bool
		want    resultChoice
	}{
		{"select first on win", true, []MenuAction{MenuActionSelect}, false, choiceNext},
		{"move to replay", true, []MenuAction{MenuActionDown, MenuActionSelect}, false, choiceReplay},
		{"cursor stops at bottom", true, []MenuAction{MenuActionDown, MenuActionDown, MenuActionDown, MenuActionSelect}, false, choiceMenu},
		{"cursor stops at top", false, []MenuAction{MenuActionUp, MenuActionSelect}, false, choiceRetry},
		{"back picks menu", false, []MenuAction{MenuActionBack}, false, choiceMenu},
		{"restart replays a win", true, []MenuAction{MenuActionNone}, true, choiceReplay},
		{"restart retries a loss", false, []MenuAction{MenuActionNone}, true, choiceRetry},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := newResultOverlay(ringshot.Outcome{Success: tc.success, Stars: 1}, 0)
			for _, a := range tc.actions {
				r.handle(a, tc.restart)
			}
			if r.chosen != tc.want {
				t.Errorf("chosen = %v, expected %v", r.chosen, tc.want)
			}
		})
	}
}

func TestResultOverlayMessage(t *testing.T) {
	tests := []struct {
		outcome ringshot.Outcome
		streak  int
		want    string
	}{
		{ringshot.Outcome{Success: true, Stars: 3}, 1, "Excellent shooting."},
		{ringshot.Outcome{Success: true, Stars: 3}, 4, "Excellent! Streak: 4"},
		{ringshot.Outcome{}, 0, "Target missed. Sequence reset."},
	}

	for _, tc := range tests {
		if got := newResultOverlay(tc.outcome, tc.streak).message(); got != tc.want {
			t.Errorf("message() = %q, expected %q", got, tc.want)
		}
	}
}

func TestResultOverlayDraw(t *testing.T) {
	s := core.NewScreen(60, 20)
	r := newResultOverlay(ringshot.Outcome{Success: true, Stars: 2, Score: 450}, 1)
	r.draw(s)

	out := s.String()
	for _, want := range []string{"SECTOR CLEAR", "★ ★ ☆", "SCORE 450", "> Next Sector <", "Replay"} {
		if !strings.Contains(out, want) {
			t.Errorf("overlay missing %q:\n%s", want, out)
		}
	}
}
