package textshape

import (
	"sync"
	"testing"

	"github.com/go-text/typesetting/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/svgscene/geom"
	"github.com/gogpu/svgscene/svgdom"
)

// testFace parses Go Regular, which covers Latin, Greek, and Cyrillic
// and carries kerning tables.
func testFace(t *testing.T) *font.Face {
	t.Helper()
	face, err := ParseFont(goregular.TTF)
	if err != nil {
		t.Fatalf("ParseFont(goregular.TTF): %v", err)
	}
	return face
}

func TestShapeBasicLatin(t *testing.T) {
	face := testFace(t)
	shaper := NewShaper()

	runs := shaper.Shape(Input{Text: "Hello", Face: face, Size: 16})
	if len(runs) != 1 {
		t.Fatalf("Shape(\"Hello\"): got %d runs, want 1", len(runs))
	}
	run := runs[0]
	if run.Face != face {
		t.Error("run face does not match input face")
	}
	if run.Size != 16 {
		t.Errorf("run size = %v, want 16", run.Size)
	}
	if len(run.Glyphs) != 5 {
		t.Fatalf("got %d glyphs, want 5", len(run.Glyphs))
	}

	prevX := -1.0
	for i, g := range run.Glyphs {
		if g.GID == 0 {
			t.Errorf("glyph %d: GID = 0, want a real glyph", i)
		}
		if g.X <= prevX {
			t.Errorf("glyph %d: X = %v, want > %v", i, g.X, prevX)
		}
		if g.Cluster != i {
			t.Errorf("glyph %d: cluster = %d, want %d", i, g.Cluster, i)
		}
		prevX = g.X
	}
}

func TestShapeGlyphCounts(t *testing.T) {
	face := testFace(t)
	shaper := NewShaper()

	tests := []struct {
		name string
		text string
		want int
	}{
		{"single char", "A", 1},
		{"word", "Hello", 5},
		{"with space", "Hello World", 11},
		{"numbers", "12345", 5},
		{"punctuation", "Hello, World!", 13},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runs := shaper.Shape(Input{Text: tt.text, Face: face, Size: 16})
			total := 0
			for _, run := range runs {
				total += len(run.Glyphs)
			}
			if total != tt.want {
				t.Errorf("Shape(%q): got %d glyphs, want %d", tt.text, total, tt.want)
			}
		})
	}
}

func TestShapeEmptyInputs(t *testing.T) {
	face := testFace(t)
	shaper := NewShaper()

	if runs := shaper.Shape(Input{Text: "", Face: face, Size: 16}); runs != nil {
		t.Errorf("empty text: got %d runs, want nil", len(runs))
	}
	if runs := shaper.Shape(Input{Text: "abc", Face: nil, Size: 16}); runs != nil {
		t.Errorf("nil face: got %d runs, want nil", len(runs))
	}
}

func TestShapeClustersAreByteOffsets(t *testing.T) {
	face := testFace(t)
	shaper := NewShaper()

	// The euro sign is three UTF-8 bytes, so clusters must jump from
	// 1 to 4.
	runs := shaper.Shape(Input{Text: "a€b", Face: face, Size: 16})
	if len(runs) != 1 {
		t.Fatalf("got %d runs, want 1", len(runs))
	}
	want := []int{0, 1, 4}
	if len(runs[0].Glyphs) != len(want) {
		t.Fatalf("got %d glyphs, want %d", len(runs[0].Glyphs), len(want))
	}
	for i, g := range runs[0].Glyphs {
		if g.Cluster != want[i] {
			t.Errorf("glyph %d: cluster = %d, want %d", i, g.Cluster, want[i])
		}
	}
}

func TestShapeOrigin(t *testing.T) {
	face := testFace(t)
	shaper := NewShaper()

	runs := shaper.Shape(Input{
		Text:   "A",
		Face:   face,
		Size:   16,
		Origin: geom.Pt(10, 20),
	})
	if len(runs) != 1 || len(runs[0].Glyphs) != 1 {
		t.Fatalf("unexpected shape result: %+v", runs)
	}
	g := runs[0].Glyphs[0]
	if g.X != 10 {
		t.Errorf("glyph X = %v, want 10", g.X)
	}
	if g.Y != 20 {
		t.Errorf("glyph Y = %v, want 20", g.Y)
	}
}

func TestShapeBidi(t *testing.T) {
	face := testFace(t)
	shaper := NewShaper()

	// Latin, Hebrew, Latin: bidi analysis must split the text and the
	// runs must cover every rune exactly once.
	text := "abc אבג def"
	runs := shaper.Shape(Input{Text: text, Face: face, Size: 16})
	if len(runs) < 2 {
		t.Fatalf("got %d runs, want at least 2", len(runs))
	}
	total := 0
	for _, run := range runs {
		total += len(run.Glyphs)
	}
	if want := len([]rune(text)); total != want {
		t.Errorf("got %d glyphs across runs, want %d", total, want)
	}
}

func TestShapeText(t *testing.T) {
	face := testFace(t)
	shaper := NewShaper()

	fill := svgdom.NewFill(svgdom.RGB(0, 0, 0))
	node := shaper.ShapeText(Input{Text: "Hi", Face: face, Size: 12, Fill: fill})
	if !node.Visible {
		t.Error("text node should be visible")
	}
	if len(node.Runs) != 1 {
		t.Fatalf("got %d runs, want 1", len(node.Runs))
	}
	if node.Runs[0].Fill != fill {
		t.Error("run fill does not match input fill")
	}
}

func TestShaperConcurrent(t *testing.T) {
	face := testFace(t)
	shaper := NewShaper()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				runs := shaper.Shape(Input{Text: "Hello", Face: face, Size: 16})
				if len(runs) != 1 || len(runs[0].Glyphs) != 5 {
					t.Error("concurrent shape returned wrong result")
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestBidiSpans(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		base      Direction
		wantSpans int
		wantRTL   []bool
	}{
		{"latin", "abc", DirectionLTR, 1, []bool{false}},
		{"hebrew", "אבג", DirectionLTR, 1, []bool{true}},
		{"mixed", "ab אב cd", DirectionLTR, 3, []bool{false, true, false}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runes := []rune(tt.text)
			spans := bidiSpans(tt.text, len(runes), tt.base)
			if len(spans) != tt.wantSpans {
				t.Fatalf("got %d spans, want %d: %+v", len(spans), tt.wantSpans, spans)
			}
			covered := 0
			for i, sp := range spans {
				if sp.end <= sp.start {
					t.Errorf("span %d: empty range %+v", i, sp)
				}
				if sp.rtl != tt.wantRTL[i] {
					t.Errorf("span %d: rtl = %v, want %v", i, sp.rtl, tt.wantRTL[i])
				}
				covered += sp.end - sp.start
			}
			if covered != len(runes) {
				t.Errorf("spans cover %d runes, want %d", covered, len(runes))
			}
		})
	}
}

func TestByteOffsets(t *testing.T) {
	text := "a€b"
	runes := []rune(text)
	got := byteOffsets(text, runes)
	want := []int{0, 1, 4, 5}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("offset %d: got %d, want %d", i, got[i], want[i])
		}
	}
}
