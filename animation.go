package main

// AnimationFps is the global number that says how fast animations run.
// The Update() method runs at 60 FPS (ebitengine's default). But often times
// animations do not need to be as detailed.
const AnimationFps = 30

// AnimationFramesPerImage is the number we actually use in many computations so
// just set it here.
const AnimationFramesPerImage = 60 / AnimationFps

// RevealRunesPerImage is how many characters of scene text appear at each
// step of a TextReveal.
const RevealRunesPerImage = 2

// TextReveal shows a text a few characters at a time, like a typewriter.
// It is cheap to copy. Every scene gets its own.
type TextReveal struct {
	Runes    []rune
	NShown   int64
	FrameIdx int64
}

func NewTextReveal(text string) TextReveal {
	return TextReveal{Runes: []rune(text)}
}

func (a *TextReveal) Step() {
	if a.Done() {
		return
	}
	a.FrameIdx++
	if a.FrameIdx == AnimationFramesPerImage {
		a.FrameIdx = 0
		a.NShown = min(a.NShown+RevealRunesPerImage, int64(len(a.Runes)))
	}
}

// Finish shows the whole text at once, for impatient players.
func (a *TextReveal) Finish() {
	a.NShown = int64(len(a.Runes))
	a.FrameIdx = 0
}

func (a *TextReveal) Done() bool {
	return a.NShown >= int64(len(a.Runes))
}

func (a *TextReveal) Visible() string {
	return string(a.Runes[:a.NShown])
}

func (a *TextReveal) TotalNFrames() int64 {
	n := int64(len(a.Runes))
	steps := (n + RevealRunesPerImage - 1) / RevealRunesPerImage
	return steps * AnimationFramesPerImage
}
