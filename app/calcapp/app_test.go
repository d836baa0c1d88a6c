package calcapp

import (
	"testing"

	"gadgets/ui"
)

func TestApp_PressSequence(t *testing.T) {
	a := New()
	for _, in := range "12+8=" {
		a.Press(in)
	}
	if got := a.Engine().Display(); got != "20" {
		t.Fatalf("display=%q; want 20", got)
	}
	if got := a.Engine().Expression(); got != "12+8=" {
		t.Fatalf("expr=%q; want 12+8=", got)
	}
}

func TestApp_KeyMapping(t *testing.T) {
	tcs := []struct {
		name string
		keys []ui.KeyEvent
		want string
	}{
		{
			name: "digits and plus",
			keys: []ui.KeyEvent{{Rune: '1'}, {Rune: '2'}, {Rune: '+'}, {Rune: '8'}},
			want: "12+8",
		},
		{
			name: "asterisk maps to multiply glyph",
			keys: []ui.KeyEvent{{Rune: '3'}, {Rune: '*'}, {Rune: '4'}},
			want: "3×4",
		},
		{
			name: "slash maps to divide glyph",
			keys: []ui.KeyEvent{{Rune: '9'}, {Rune: '/'}, {Rune: '3'}},
			want: "9÷3",
		},
		{
			name: "x maps to multiply glyph",
			keys: []ui.KeyEvent{{Rune: '2'}, {Rune: 'x'}, {Rune: '5'}},
			want: "2×5",
		},
	}

	for _, tc := range tcs {
		a := New()
		for _, ev := range tc.keys {
			a.HandleKey(ev)
		}
		if got := a.Engine().Expression(); got != tc.want {
			t.Fatalf("%s: expr=%q; want %q", tc.name, got, tc.want)
		}
	}
}

func TestApp_EnterEvaluates(t *testing.T) {
	a := New()
	for _, ev := range []ui.KeyEvent{{Rune: '6'}, {Rune: '+'}, {Rune: '4'}, {Code: ui.KeyEnter}} {
		a.HandleKey(ev)
	}
	if got := a.Engine().Display(); got != "10" {
		t.Fatalf("display=%q; want 10", got)
	}
}

func TestApp_EscapeClears(t *testing.T) {
	a := New()
	a.HandleKey(ui.KeyEvent{Rune: '5'})
	a.HandleKey(ui.KeyEvent{Code: ui.KeyEscape})
	if got := a.Engine().Display(); got != "0" {
		t.Fatalf("display=%q; want 0", got)
	}
}

func TestApp_ClickButtons(t *testing.T) {
	a := New()
	click := func(label string) {
		t.Helper()
		for _, b := range a.btns {
			if b.Label == label {
				a.HandleClick(ui.ClickEvent{X: b.X + b.W/2, Y: b.Y + b.H/2})
				return
			}
		}
		t.Fatalf("no button labeled %q", label)
	}

	click("1")
	click("2")
	click("+")
	click("8")
	click("=")
	if got := a.Engine().Display(); got != "20" {
		t.Fatalf("display=%q; want 20", got)
	}

	click("C")
	if got := a.Engine().Display(); got != "0" {
		t.Fatalf("display=%q after clear; want 0", got)
	}
}

func TestApp_ClickOutsideButtons(t *testing.T) {
	a := New()
	a.HandleClick(ui.ClickEvent{X: 1, Y: 1})
	if got := a.Engine().Expression(); got != "" {
		t.Fatalf("expr=%q; want empty after miss", got)
	}
}

func TestApp_RenderDoesNotPanic(t *testing.T) {
	a := New()
	fb := ui.NewFramebuffer(Width, Height)
	a.Render(fb)

	a.Press('5')
	a.Press('÷')
	a.Press('0')
	a.Press('=')
	a.Render(fb)
}
