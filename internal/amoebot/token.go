package amoebot

// Token is a message exchanged between adjacent particles. Every token kind
// carries the local port label (in the receiver's frame) through which it
// arrived, or -1 if it was self-produced (§3, "Tokens").
//
// Concrete kinds (CounterToken, MarkerToken, LastMarkerToken, ...) live in
// the trianglerotate package; this package only knows about the common
// envelope, matching the design note that replaces the source's token
// inheritance hierarchy with a tagged variant: each concrete Go type is its
// own tag, and a type assertion against one kind never matches another, even
// a kind that embeds it (LastMarkerToken is not matched by a MarkerToken
// assertion, see §4.2).
type Token interface {
	From() int
	SetFrom(int)
}

// Envelope is embedded by every concrete token type to provide the From/
// SetFrom bookkeeping required by the Token interface.
type Envelope struct {
	PassedFrom int
}

// From returns the local port label the token arrived through, or -1.
func (e Envelope) From() int { return e.PassedFrom }

// SetFrom updates the local port label the token arrived through.
func (e *Envelope) SetFrom(label int) { e.PassedFrom = label }

// HasToken reports whether p's inbox holds a token of exactly kind T.
func HasToken[T Token](p *Particle) bool {
	for _, tok := range p.inbox {
		if _, ok := tok.(T); ok {
			return true
		}
	}
	return false
}

// PeekToken returns the first inbox token of kind T without removing it.
func PeekToken[T Token](p *Particle) (T, bool) {
	for _, tok := range p.inbox {
		if t, ok := tok.(T); ok {
			return t, true
		}
	}
	var zero T
	return zero, false
}

// TakeToken removes and returns the first inbox token of kind T.
func TakeToken[T Token](p *Particle) (T, bool) {
	for i, tok := range p.inbox {
		if t, ok := tok.(T); ok {
			p.inbox = append(p.inbox[:i], p.inbox[i+1:]...)
			return t, true
		}
	}
	var zero T
	return zero, false
}

// PutToken appends a token to the receiver's inbox.
func (p *Particle) PutToken(tok Token) {
	p.inbox = append(p.inbox, tok)
}
