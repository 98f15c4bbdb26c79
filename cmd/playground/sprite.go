package main

import (
	"fmt"

	"github.com/milk9111/charactercore/action"
)

// spriteSink records what the action layer asked to display. The playground
// has no art, so the sprite name is drawn as a label.
type spriteSink struct {
	sprite           action.Sprite
	offsetX, offsetY float64
	flipped          bool
}

func (s *spriteSink) SetSprite(sprite action.Sprite) { s.sprite = sprite }

func (s *spriteSink) SetSpriteOffset(x, y float64) {
	s.offsetX = x
	s.offsetY = y
}

func (s *spriteSink) SetFlipped(flipped bool) { s.flipped = flipped }

func (s *spriteSink) label(fallback string) string {
	name := fallback
	if s.sprite != nil {
		name = fmt.Sprint(s.sprite)
	}
	if s.flipped {
		return "<" + name
	}
	return name + ">"
}
