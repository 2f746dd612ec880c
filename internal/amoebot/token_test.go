package amoebot

import "testing"

type widgetToken struct {
	Envelope
	n int
}

type gadgetToken struct {
	Envelope
	n int
}

func TestHasTokenDistinguishesTypes(t *testing.T) {
	p := &Particle{}
	p.PutToken(&widgetToken{n: 1})

	if !HasToken[*widgetToken](p) {
		t.Fatal("expected a widgetToken in the inbox")
	}
	if HasToken[*gadgetToken](p) {
		t.Fatal("gadgetToken should not match a widgetToken, even with an identical payload shape")
	}
}

func TestTakeTokenRemovesExactlyOne(t *testing.T) {
	p := &Particle{}
	p.PutToken(&widgetToken{n: 1})
	p.PutToken(&widgetToken{n: 2})

	first, ok := TakeToken[*widgetToken](p)
	if !ok || first.n != 1 {
		t.Fatalf("expected first widgetToken with n=1, got %+v ok=%v", first, ok)
	}
	if !HasToken[*widgetToken](p) {
		t.Fatal("expected a second widgetToken to remain")
	}
	second, ok := TakeToken[*widgetToken](p)
	if !ok || second.n != 2 {
		t.Fatalf("expected second widgetToken with n=2, got %+v ok=%v", second, ok)
	}
	if HasToken[*widgetToken](p) {
		t.Fatal("inbox should be empty of widgetTokens")
	}
}

func TestPeekTokenDoesNotRemove(t *testing.T) {
	p := &Particle{}
	p.PutToken(&widgetToken{n: 7})

	peeked, ok := PeekToken[*widgetToken](p)
	if !ok || peeked.n != 7 {
		t.Fatalf("expected to peek n=7, got %+v ok=%v", peeked, ok)
	}
	if !HasToken[*widgetToken](p) {
		t.Fatal("peek should not remove the token")
	}
}
