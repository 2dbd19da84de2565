package tgl

import (
	"unicode/utf8"
)

// ByteSource is where the Decoder gets raw key bytes from.
// Pending must never block. ReadByte may block, but is only called
// when Pending has returned true or when an extended key prefix has been read.
type ByteSource interface {
	Pending() bool
	ReadByte() (byte, error)
}

// Decoder turns raw key bytes into Key values and calls bound functions.
type Decoder struct {
	src      ByteSource
	scheme   *Scheme
	bindings map[byte]func()
}

// NewDecoder creates a Decoder that reads from src and understands the extended
// keys of the given scheme (VTScheme if nil). The given bindings are copied, so
// the decoder never shares its binding table with the caller or other decoders.
func NewDecoder(src ByteSource, scheme *Scheme, bindings map[byte]func()) *Decoder {
	if scheme == nil {
		scheme = VTScheme
	}
	d := &Decoder{
		src:      src,
		scheme:   scheme,
		bindings: make(map[byte]func(), len(bindings)),
	}
	for b, fn := range bindings {
		d.Bind(b, fn)
	}
	return d
}

// Bind makes Poll call fn, instead of returning a Key, when b is read.
// A later Bind for the same byte replaces the earlier one.
func (d *Decoder) Bind(b byte, fn func()) {
	if fn == nil {
		return
	}
	d.bindings[b] = fn
}

// Unbind removes the binding for b, if any.
func (d *Decoder) Unbind(b byte) {
	delete(d.bindings, b)
}

// Bound checks if b has a binding.
func (d *Decoder) Bound(b byte) bool {
	_, ok := d.bindings[b]
	return ok
}

// Scheme returns the extended key scheme used by this decoder.
func (d *Decoder) Scheme() *Scheme {
	return d.scheme
}

// Poll reads at most one key and returns it. If no input is pending, it
// returns NoKey right away. Bound keys are consumed: their function is
// called and NoKey is returned. Unknown extended keys also give NoKey.
func (d *Decoder) Poll() Key {
	if !d.src.Pending() {
		return NoKey
	}
	b, err := d.src.ReadByte()
	if err != nil {
		return NoKey
	}
	if d.call(b) {
		return NoKey
	}
	if b == d.scheme.Prefix {
		return d.extended(b)
	}
	return d.plain(b)
}

// call runs the function bound to b, if there is one
func (d *Decoder) call(b byte) bool {
	fn, ok := d.bindings[b]
	if !ok {
		return false
	}
	fn()
	return true
}

// extended reads the rest of an extended key, after the prefix
func (d *Decoder) extended(prefix byte) Key {
	if d.scheme.PrefixIsKey && !d.src.Pending() {
		// A lone ESC
		return d.plain(prefix)
	}
	b, err := d.src.ReadByte()
	if err != nil {
		return NoKey
	}
	if d.scheme.isIntermediate(b) {
		if b, err = d.src.ReadByte(); err != nil {
			return NoKey
		}
		if isParameter(b) {
			// Modified or function keys, like ESC [ 1 ; 5 A or ESC [ 1 5 ~,
			// are read to the end and dropped
			d.skipParameters()
			return NoKey
		}
	}
	if d.call(b) {
		return NoKey
	}
	if k, ok := d.scheme.Directions[b]; ok {
		return k
	}
	return NoKey
}

// isParameter checks if b is a parameter or intermediate byte of a control sequence
func isParameter(b byte) bool {
	return b >= 0x20 && b <= 0x3F
}

// skipParameters reads pending bytes up to and including the final byte
// (0x40 to 0x7E) of a control sequence
func (d *Decoder) skipParameters() {
	for d.src.Pending() {
		b, err := d.src.ReadByte()
		if err != nil || !isParameter(b) {
			return
		}
	}
}

// plain decodes a key that is not an extended key. Multi-byte UTF-8
// characters are only assembled from bytes that are already pending.
func (d *Decoder) plain(b byte) Key {
	if b < utf8.RuneSelf {
		return Key(string(rune(b)))
	}
	var size int
	switch {
	case b&0xE0 == 0xC0:
		size = 2
	case b&0xF0 == 0xE0:
		size = 3
	case b&0xF8 == 0xF0:
		size = 4
	default:
		return NoKey
	}
	buf := make([]byte, 1, size)
	buf[0] = b
	for len(buf) < size && d.src.Pending() {
		next, err := d.src.ReadByte()
		if err != nil {
			return NoKey
		}
		buf = append(buf, next)
	}
	r, n := utf8.DecodeRune(buf)
	if r == utf8.RuneError || n != len(buf) {
		return NoKey
	}
	return Key(string(r))
}

// Name returns a readable name for the key, like "Enter" or "UP".
func (k Key) Name() string {
	if len(k) != 1 {
		return string(k)
	}
	switch k[0] {
	case ctrlC:
		return "Ctrl-C"
	case keyTab:
		return "Tab"
	case keyEnter:
		return "Enter"
	case keyEsc:
		return "Esc"
	case keySpace:
		return "Space"
	case keyBackspace:
		return "Backspace"
	}
	if k[0] < keySpace {
		return "Ctrl-" + string(rune('A'+k[0]-1))
	}
	return string(k)
}
