package systems

import "github.com/1siamBot/snake-engine/engine/core"

// InterpolationSystem eases every smooth segment toward its grid cell
type InterpolationSystem struct {
	Speed float64
}

// Update runs once per frame, whether or not a step happened
func (s *InterpolationSystem) Update(sess *core.Session) {
	for i := range sess.Smooth {
		if i >= len(sess.Snake) {
			break
		}
		seg := &sess.Smooth[i]
		target := sess.Snake[i]
		seg.TargetX = float64(target.X)
		seg.TargetY = float64(target.Y)
		seg.X = Lerp(seg.X, seg.TargetX, s.Speed)
		seg.Y = Lerp(seg.Y, seg.TargetY, s.Speed)
	}
}

// Lerp blends a toward b by t
func Lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}
