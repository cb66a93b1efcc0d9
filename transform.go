package hostdata

import (
	"github.com/calebcase/hostdata/arabic"
	"github.com/calebcase/hostdata/bidi"
	"github.com/zeebo/errs"
)

// Error is the error class for this package.
var Error = errs.Class("hostdata")

// Options configures Transform.
type Options struct {
	Engine bidi.Engine
	Arabic arabic.Options
}

// Transform writes src to dst, reordered and shaped according to the flags
// of both, and sets dst.Count. The returned maps describe the reordering
// step. When a Lam-Alef or Tashkeel resize changes the number of
// characters, the maps relate positions before the resize.
func Transform(src, dst *bidi.Text, opts Options) (maps *bidi.Maps, err error) {
	defer Error.WrapP(&err)

	if src == nil || dst == nil {
		return nil, Error.New("nil text")
	}

	srcVisual := src.Flags.Type == bidi.Visual
	dstVisual := dst.Flags.Type == bidi.Visual

	work := src
	if srcVisual && !dstVisual && src.Flags.Shaping == bidi.ShapingAuto {
		if src.Offset < 0 || src.Count < 0 || src.Offset+src.Count > len(src.Data) {
			return nil, Error.New("src: range [%d:%d] outside buffer of %d", src.Offset, src.Offset+src.Count, len(src.Data))
		}

		data := arabic.Deshape(src.Runes(), src.Flags.RTL(src.Runes()), opts.Arabic)

		work = &bidi.Text{
			Data:  data,
			Count: len(data),
			Flags: src.Flags,
		}
	}

	maps, err = opts.Engine.Order(work, dst)
	if err != nil {
		return nil, err
	}

	if !dstVisual || dst.Flags.Shaping == bidi.ShapingNone {
		return maps, nil
	}

	// Shape with the orientation the engine laid dst out in.
	shaped := arabic.ShapeVisual(dst.Runes(), maps.RTL, opts.Arabic)
	if dst.Offset+len(shaped) > len(dst.Data) {
		return nil, Error.New("dst: %d shaped characters overflow buffer of %d at offset %d", len(shaped), len(dst.Data), dst.Offset)
	}

	copy(dst.Data[dst.Offset:], shaped)
	dst.Count = len(shaped)

	return maps, nil
}
