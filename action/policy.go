package action

import "slices"

// CancelPolicy decides whether a running step (or action) may be cut short
// by candidate. It must be a pure function of its argument.
type CancelPolicy func(candidate *Action) bool

// CancellableByAll accepts every candidate.
func CancellableByAll(*Action) bool { return true }

// CancellableByNone refuses every candidate.
func CancellableByNone(*Action) bool { return false }

// CancellableByTags accepts candidates carrying any of tags, either as a tag
// or as their name. An empty list accepts nothing.
func CancellableByTags(tags ...string) CancelPolicy {
	tags = slices.Clone(tags)
	return func(candidate *Action) bool {
		if candidate == nil {
			return false
		}
		for _, t := range tags {
			if candidate.Name == t || candidate.HasTag(t) {
				return true
			}
		}
		return false
	}
}

// Hook is a plain callback fired on step or action lifecycle edges.
type Hook func(a *Actioner)

func (h Hook) call(a *Actioner) {
	if h != nil {
		h(a)
	}
}

// Sprite is whatever the rendering layer uses to draw a frame. The core never
// inspects it.
type Sprite any

// SpriteSink is implemented by the rendering layer.
type SpriteSink interface {
	SetSprite(sprite Sprite)
	SetSpriteOffset(x, y float64)
	SetFlipped(flipped bool)
}
