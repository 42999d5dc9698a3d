package contract

import (
	"testing"

	"github.com/mattn/go-runewidth"
)

// FuzzTruncateName fuzzes TruncateName with random names and widths.
func FuzzTruncateName(f *testing.F) {
	f.Add("Current Profile", 10)
	f.Add("With Canadian Work", 4)
	f.Add("日本語のプロフィール", 7)
	f.Add("", 0)

	f.Fuzz(func(t *testing.T, name string, width int) {
		got := TruncateName(name, width)
		if width > 3 && runewidth.StringWidth(got) > width {
			t.Fatalf("TruncateName(%q, %d) = %q exceeds width", name, width, got)
		}
	})
}
