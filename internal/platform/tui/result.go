package tui

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/ringshot/internal/core"
	"github.com/vovakirdan/ringshot/internal/games/ringshot"
)

// resultChoice is what the player picked on the result overlay.
type resultChoice int

const (
	choiceNone resultChoice = iota
	choiceNext
	choiceReplay
	choiceRetry
	choiceMenu
)

func (c resultChoice) String() string {
	switch c {
	case choiceNext:
		return "Next Sector"
	case choiceReplay:
		return "Replay"
	case choiceRetry:
		return "Retry"
	case choiceMenu:
		return "Menu"
	default:
		return ""
	}
}

// resultOverlay is the win or loss panel shown over the finished run.
type resultOverlay struct {
	outcome ringshot.Outcome
	streak  int
	options []resultChoice
	cursor  int
	chosen  resultChoice
}

func newResultOverlay(o ringshot.Outcome, streak int) *resultOverlay {
	options := []resultChoice{choiceRetry, choiceMenu}
	if o.Success {
		options = []resultChoice{choiceNext, choiceReplay, choiceMenu}
	}
	return &resultOverlay{outcome: o, streak: streak, options: options}
}

// handle applies a menu action. Back picks Menu and Restart picks the
// replay or retry entry.
func (r *resultOverlay) handle(a MenuAction, restart bool) {
	switch {
	case restart:
		r.chosen = r.options[len(r.options)-2]
	case a == MenuActionUp:
		if r.cursor > 0 {
			r.cursor--
		}
	case a == MenuActionDown:
		if r.cursor < len(r.options)-1 {
			r.cursor++
		}
	case a == MenuActionSelect:
		r.chosen = r.options[r.cursor]
	case a == MenuActionBack:
		r.chosen = choiceMenu
	}
}

func (r *resultOverlay) title() (string, core.Color) {
	if r.outcome.Success {
		return "SECTOR CLEAR", core.ColorSuccess
	}
	return "MISSION FAILED", core.ColorDanger
}

func (r *resultOverlay) message() string {
	switch {
	case !r.outcome.Success:
		return "Target missed. Sequence reset."
	case r.streak > 1:
		return fmt.Sprintf("Excellent! Streak: %d", r.streak)
	default:
		return "Excellent shooting."
	}
}

// draw renders the panel centered on dst.
func (r *resultOverlay) draw(dst *core.Screen) {
	title, titleColor := r.title()
	msg := r.message()

	lines := 6 + len(r.options)
	boxW := core.Max(len(msg)+4, 28)
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-lines)/2, boxW, lines)

	for y := box.Y; y < box.Bottom(); y++ {
		dst.DrawHLine(box.X, y, box.W, ' ', core.ColorDefault)
	}
	dst.DrawBox(box, titleColor)

	center := func(y int, text string, c core.Color) {
		dst.DrawTextColor(box.X+(boxW-len([]rune(text)))/2, y, text, c)
	}

	y := box.Y + 1
	center(y, title, titleColor)
	y++
	center(y, msg, core.ColorGray)
	y++

	if r.outcome.Success {
		var stars strings.Builder
		for i := 1; i <= 3; i++ {
			if i > 1 {
				stars.WriteRune(' ')
			}
			if i <= r.outcome.Stars {
				stars.WriteRune('★')
			} else {
				stars.WriteRune('☆')
			}
		}
		center(y, stars.String(), core.ColorBrightYellow)
	}
	y++
	center(y, fmt.Sprintf("SCORE %d", r.outcome.Score), core.ColorBrightWhite)
	y++

	for i, opt := range r.options {
		label := "  " + opt.String() + "  "
		c := core.ColorGray
		if i == r.cursor {
			label = "> " + opt.String() + " <"
			c = core.ColorAccent
		}
		center(y+i, label, c)
	}
}
