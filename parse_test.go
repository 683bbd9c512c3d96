package descent

import (
	"strings"
	"testing"
)

func TestPow(t *testing.T) {
	cases := []struct {
		name      string
		base, exp int64
		r         int64
		kind      ErrorKind
	}{
		{"zerozero", 0, 0, 1, KindNone},
		{"zeroexp", 2, 0, 1, KindNone},
		{"one", 3, 1, 3, KindNone},
		{"square", 12, 2, 144, KindNone},
		{"chain", 2, 25, 33554432, KindNone},
		{"negbase", -2, 4, 16, KindNone},
		{"negbaseodd", -2, 3, -8, KindNone},
		{"negexp", 2, -1, 0, KindNone},
		{"negexpbig", 10, -100, 0, KindNone},
		{"zerobase-negexp", 0, -1, 0, KindDivideByZero},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := parser{}
			r := p.pow(c.base, c.exp, 5)
			if p.kind != c.kind {
				t.Errorf("wrong error kind: want %v, got %v", c.kind, p.kind)
			}
			if c.kind != KindNone {
				if p.at != 5 {
					t.Errorf("wrong error offset: want 5, got %d", p.at)
				}
				return
			}
			if r != c.r {
				t.Errorf("wrong result for %d^%d: want %d, got %d", c.base, c.exp, c.r, r)
			}
		})
	}
}

func TestLiteral(t *testing.T) {
	cases := []struct {
		name string
		src  string
		r    int64
		pos  int
		kind ErrorKind
	}{
		{"simple", "17", 17, 2, KindNone},
		{"zero", "0", 0, 1, KindNone},
		{"signed", "-8", -8, 2, KindNone},
		{"plus", "+8", 8, 2, KindNone},
		{"leadspace", "  5", 5, 3, KindNone},
		{"stops", "12+3", 12, 2, KindNone},
		{"stops-space", "12 3", 12, 2, KindNone},
		{"saturate-max", "99999999999999999999", 1<<63 - 1, 20, KindNone},
		{"saturate-min", "-99999999999999999999", -1 << 63, 21, KindNone},
		{"empty", "", 0, 0, KindSyntax},
		{"bare-sign", "-", 0, 0, KindSyntax},
		{"sign-sign", "--5", 0, 0, KindSyntax},
		{"sign-paren", "-(5)", 0, 0, KindSyntax},
		{"letter", "x", 0, 0, KindSyntax},
		{"spaced-sign", "- 5", 0, 0, KindSyntax},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := parser{src: c.src}
			r := p.literal()
			if p.kind != c.kind {
				t.Errorf("wrong error kind for %q: want %v, got %v", c.src, c.kind, p.kind)
			}
			if c.kind != KindNone {
				return
			}
			if r != c.r {
				t.Errorf("wrong value for %q: want %d, got %d", c.src, c.r, r)
			}
			if p.pos != c.pos {
				t.Errorf("wrong cursor for %q: want %d, got %d", c.src, c.pos, p.pos)
			}
		})
	}
}

func TestErrorKindStrings(t *testing.T) {
	kinds := []ErrorKind{KindNone, KindSyntax, KindDivideByZero, KindUnclosedParen, KindTooDeep}
	seen := make(map[string]ErrorKind, len(kinds))
	for _, k := range kinds {
		s := k.String()
		if s == "" || strings.HasPrefix(s, "ErrorKind(") {
			t.Errorf("kind %d has no string", int(k))
		}
		if o, ok := seen[s]; ok {
			t.Errorf("kinds %d and %d share string %q", int(o), int(k), s)
		}
		seen[s] = k
	}
}

func TestStickyError(t *testing.T) {
	p := parser{src: "1/0+2/0"}
	p.addSub()
	if p.kind != KindDivideByZero {
		t.Fatalf("wrong error kind: %v", p.kind)
	}
	if p.at != 2 {
		t.Errorf("wrong error offset: want 2, got %d", p.at)
	}
	// A later failure must not displace the first.
	p.fail(KindSyntax, 6)
	if p.kind != KindDivideByZero || p.at != 2 {
		t.Errorf("error was displaced: %v at %d", p.kind, p.at)
	}
}
