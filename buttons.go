package main

import (
	"fmt"
)

// Button is a clickable area of the game area. Buttons are rebuilt from the
// controller state every frame, by Update() to check clicks and by Draw() to
// draw them, so the two always agree.
type Button struct {
	Area    Rectangle
	Label   string
	Enabled bool
	Action  func()
}

func (g *Gui) MenuButtons() []Button {
	rects := StackRects(menuButtonsTopLeft, ButtonWidth, ButtonHeight, ButtonGap, 4)
	music := "Music: off (M)"
	if g.music.Enabled() {
		music = "Music: on (M)"
	}
	return []Button{
		{rects[0], "New game (N)", true, g.NewGame},
		{rects[1], "Continue (C)", g.controller.GameInProgress(), g.Continue},
		{rects[2], "Load (L)", g.loadAvailable(), g.Load},
		{rects[3], music, g.music.Available(), g.music.Toggle},
	}
}

func (g *Gui) PlayButtons() []Button {
	choices := g.controller.AvailableChoices()
	rects := StackRects(playScreenChoicesTopLeft, GameWidth-2*TextMargin,
		ChoiceHeight, ChoiceGap, len(choices))
	buttons := make([]Button, 0, len(choices)+2)
	buttons = append(buttons,
		Button{playScreenMenuButton, "Menu", true, g.BackToMenu},
		Button{playScreenMenuButton.Translate(Pt{-playScreenMenuButton.Width() - 12, 0}),
			"Save", true, g.Save})
	for i, c := range choices {
		buttons = append(buttons, Button{
			Area:    rects[i],
			Label:   fmt.Sprintf("%d. %s", i+1, c.Text),
			Enabled: true,
			Action:  func() { g.Choose(i) },
		})
	}
	return buttons
}
