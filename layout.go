package main

// Visual areas
// ------------
//
// - The game area: the space on which the menu, the scene and the buttons are
// drawn. Has a fixed size, known at compile time.
// - The screen: contains the game area and any margins necessary to fill in
// the application window on the OS. Its size is known only at run time.
// - The overlay: the particles. It covers the whole screen, margins included,
// so that the snow doesn't stop at the edges of the game area.

const GameWidth = int64(1280)
const GameHeight = int64(800)

// The areas below are all relative to the game area and known at compile time.
const ButtonWidth = int64(420)
const ButtonHeight = int64(60)
const ButtonGap = int64(18)
const ChoiceHeight = int64(52)
const ChoiceGap = int64(12)
const TextMargin = int64(80)

var menuTitleArea = NewRectangleI(0, 80, GameWidth, 80)
var menuButtonsTopLeft = Pt{(GameWidth - ButtonWidth) / 2, 260}
var playScreenMenuButton = NewRectangleI(GameWidth-140, 20, 120, 48)
var playScreenTitleArea = NewRectangleI(TextMargin, 40, GameWidth-2*TextMargin-160, 60)
var playScreenTextArea = NewRectangleI(TextMargin, 120, GameWidth-2*TextMargin, 380)
var playScreenChoicesTopLeft = Pt{TextMargin, 520}
var notificationsTopRight = Pt{GameWidth - 20, 90}

const NotificationWidth = int64(460)
const NotificationHeight = int64(50)

func (g *Gui) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	// I receive the application window's actual width and height, via
	// outsideWidth, outsideHeight. I have to return the size I want, in pixels,
	// for the bitmap that will be drawn in the window.
	//
	// What I want:
	// - Cover the entire window with some background and with particles,
	// even if the text and buttons are only in some area in the center.
	// - Have a "game area" that I can reason about easily, no matter the
	// aspect ratio or the resolution of the user's screen.
	//
	// Solution:
	// - Have a fixed "game area" of GameWidth x GameHeight.
	// - Give the screen bitmap the aspect ratio of the window, so nothing is
	// stretched.
	// - Make the screen bitmap as small as possible while still containing the
	// game area. This means either screenWidth = GameWidth or
	// screenHeight = GameHeight.
	if outsideWidth <= 0 || outsideHeight <= 0 {
		outsideWidth, outsideHeight = int(GameWidth), int(GameHeight)
	}
	screenAspectRatio := float64(outsideWidth) / float64(outsideHeight)
	gameAspectRatio := float64(GameWidth) / float64(GameHeight)
	if screenAspectRatio < gameAspectRatio {
		screenWidth = int(GameWidth)
		// screenAspectRatio = screenWidth / screenHeight, which means:
		screenHeight = int(float64(screenWidth) / screenAspectRatio)
	} else {
		screenHeight = int(GameHeight)
		// screenAspectRatio = screenWidth / screenHeight, which means:
		screenWidth = int(float64(screenHeight) * screenAspectRatio)
	}
	Assert(int64(screenWidth) >= GameWidth-1 && int64(screenHeight) >= GameHeight-1)

	// Center the game area in the screen.
	g.gameArea = NewRectangleI(
		(int64(screenWidth)-GameWidth)/2,
		(int64(screenHeight)-GameHeight)/2,
		GameWidth,
		GameHeight)

	// The particles get the new size. While an effect is running the engine
	// applies it at the start of its next frame.
	if screenWidth != g.screenWidth || screenHeight != g.screenHeight {
		g.screenWidth = screenWidth
		g.screenHeight = screenHeight
		if g.visWorld != nil {
			g.visWorld.Resize(screenWidth, screenHeight)
		}
	}
	return
}

func (g *Gui) ScreenToGame(pt Pt) Pt {
	return pt.Minus(g.gameArea.Min)
}
