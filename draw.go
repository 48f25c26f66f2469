package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/marisvali/yolka/story"
)

var (
	colorBackground     = color.NRGBA{R: 12, G: 20, B: 38, A: 255}
	colorText           = color.NRGBA{R: 235, G: 240, B: 250, A: 255}
	colorTitle          = color.NRGBA{R: 255, G: 214, B: 140, A: 255}
	colorButton         = color.NRGBA{R: 34, G: 58, B: 92, A: 230}
	colorButtonBorder   = color.NRGBA{R: 120, G: 160, B: 210, A: 255}
	colorButtonDisabled = color.NRGBA{R: 40, G: 44, B: 52, A: 200}
	colorTextDisabled   = color.NRGBA{R: 120, G: 124, B: 130, A: 255}
)

// sceneImageDim darkens scene images so the text on top stays readable.
const sceneImageDim = 0.45

func notificationColor(l story.Level) color.NRGBA {
	switch l {
	case story.LevelSuccess:
		return color.NRGBA{R: 40, G: 120, B: 60, A: 235}
	case story.LevelError:
		return color.NRGBA{R: 150, G: 40, B: 40, A: 235}
	default:
		return color.NRGBA{R: 40, G: 70, B: 130, A: 235}
	}
}

func (g *Gui) Draw(screen *ebiten.Image) {
	// The screen bitmap has the aspect ratio of the application window. We fill
	// it with some background. Then, we select the area inside of screen on
	// which we draw all the actually interesting elements of our game.
	screen.Fill(colorBackground)

	game := SubImage(screen, g.gameArea.ToImageRectangle())
	switch g.state {
	case MenuScreen:
		g.DrawMenuScreen(game)
	case PlayScreen:
		g.DrawPlayScreen(game)
	default:
		panic("unhandled default case")
	}

	// Particles go on top of everything, over the margins too.
	if img := g.visWorld.Overlay.Image(); img != nil {
		screen.DrawImage(img, nil)
	}

	g.DrawNotifications(game)
}

func (g *Gui) DrawMenuScreen(screen *ebiten.Image) {
	DrawText(SubImage(screen, menuTitleArea.ToImageRectangle()), g.titleFont,
		g.story.Title, true, true, colorTitle)
	g.DrawButtons(screen, g.MenuButtons())
}

func (g *Gui) DrawPlayScreen(screen *ebiten.Image) {
	scene, err := g.controller.CurrentScene()
	if err != nil {
		return
	}
	if scene.Image != "" {
		if img := g.SceneImage(scene.Image); img != nil {
			DrawCover(screen, img, sceneImageDim)
		}
	}
	DrawText(SubImage(screen, playScreenTitleArea.ToImageRectangle()), g.titleFont,
		scene.Title, false, true, colorTitle)

	textArea := SubImage(screen, playScreenTextArea.ToImageRectangle())
	lines := WrapText(g.defaultFont, g.visWorld.Reveal.Visible(),
		int(playScreenTextArea.Width()))
	DrawLines(textArea, g.defaultFont, lines, colorText)

	g.DrawButtons(screen, g.PlayButtons())
}

func (g *Gui) DrawButtons(screen *ebiten.Image, buttons []Button) {
	for _, b := range buttons {
		fill, label := colorButton, colorText
		if !b.Enabled {
			fill, label = colorButtonDisabled, colorTextDisabled
		}
		FillRect(screen, b.Area, fill)
		StrokeRect(screen, b.Area, 2, colorButtonBorder)
		DrawText(SubImage(screen, b.Area.ToImageRectangle()), g.defaultFont,
			b.Label, true, true, label)
	}
}

func (g *Gui) DrawNotifications(screen *ebiten.Image) {
	for i, n := range g.visWorld.Notifications {
		r := NewRectangleI(
			notificationsTopRight.X-NotificationWidth,
			notificationsTopRight.Y+int64(i)*(NotificationHeight+10),
			NotificationWidth,
			NotificationHeight)
		FillRect(screen, r, notificationColor(n.Level))
		DrawText(SubImage(screen, r.ToImageRectangle()), g.defaultFont,
			n.Message, true, true, colorText)
	}
}
