package story

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// StateBytes is what the controller looks like from the outside. Two
// controllers with the same StateBytes are "the same" even if they are
// implemented differently.
//
// The ids and the timestamps are left out on purpose. They are different on
// every run and say nothing about where the player got to. What matters is
// the scene, the inventory, the progress and whether the game is still going,
// which is also what the player sees.
func (c *Controller) StateBytes() []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "scene=%s\n", c.session.CurrentScene)
	fmt.Fprintf(&b, "progress=%d\n", c.session.Progress)
	fmt.Fprintf(&b, "inventory=%s\n", strings.Join(c.session.Inventory, ","))
	fmt.Fprintf(&b, "active=%t inProgress=%t\n", c.active, c.inProgress)
	for _, choice := range c.AvailableChoices() {
		fmt.Fprintf(&b, "choice=%s->%s\n", choice.Text, choice.NextScene)
	}
	return []byte(b.String())
}

// RegressionId is a hash of all the states the controller goes through while
// replaying p.
//
// It is meant to be used like this:
// - Compute the RegressionId of a playthrough.
// - Change the story or the controller.
// - Compute the RegressionId of the same playthrough again.
// - If it is the same, the change didn't alter the game for this
// playthrough. If it isn't, something the player sees is now different.
//
// A playthrough only checks the scenes it goes through, so it is only as good
// as the path it takes.
func RegressionId(s *Story, p Playthrough) (string, error) {
	hash := sha256.New()
	_, err := Replay(s, p, func(c *Controller) {
		_, _ = hash.Write(c.StateBytes())
	})
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(hash.Sum(nil)), nil
}

