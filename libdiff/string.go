package libdiff

import (
	"io"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// RenderString writes a character-level diff of the canonical renderings
// from and to, insertions green and deletions red. With color disabled the
// spans are wrapped in +{} and -{} instead.
func RenderString(w io.Writer, from, to string) error {
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMain(from, to, false)
	for i := range diffs {
		diff := &diffs[i]
		var s string
		switch diff.Type {
		case diffpatch.DiffInsert:
			if color.NoColor {
				s = "+{" + diff.Text + "}"
			} else {
				s = color.GreenString("%s", diff.Text)
			}
		case diffpatch.DiffDelete:
			if color.NoColor {
				s = "-{" + diff.Text + "}"
			} else {
				s = color.RedString("%s", diff.Text)
			}
		case diffpatch.DiffEqual:
			s = diff.Text
		}
		if _, err := w.Write([]byte(s)); err != nil {
			return err
		}
	}
	return nil
}
