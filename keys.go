package tgl

// Key is a decoded key press: one of the arrow keys, or a single character
// string for any other key. NoKey means there was nothing to report.
type Key string

const (
	NoKey    Key = ""
	KeyUp    Key = "UP"
	KeyDown  Key = "DOWN"
	KeyLeft  Key = "LEFT"
	KeyRight Key = "RIGHT"
)

// Key constants for common single byte keys
const (
	ctrlC        = 3
	keyTab       = 9
	keyEnter     = 13
	keyEsc       = 27
	keySpace     = 32
	keyBackspace = 127
)

// Scheme describes how a terminal sends extended keys, like the arrow keys:
// first a prefix byte, then optionally one of the intermediate bytes, then
// one final byte that identifies the key.
type Scheme struct {
	Name string

	// Prefix is the byte that announces an extended key
	Prefix byte

	// Intermediates are bytes that may follow the prefix before the final byte
	Intermediates []byte

	// Directions maps the final byte to an arrow key
	Directions map[byte]Key

	// PrefixIsKey is true when the prefix on its own is also a real key,
	// as with ESC on VT terminals. Then the prefix only starts an extended
	// key if more input is already pending.
	PrefixIsKey bool
}

// ConsoleScheme is the layout of the Windows console (getch), where arrow keys
// are sent as 0xE0 followed by H, P, K or M.
var ConsoleScheme = &Scheme{
	Name:   "console",
	Prefix: 0xE0,
	Directions: map[byte]Key{
		'H': KeyUp,
		'P': KeyDown,
		'K': KeyLeft,
		'M': KeyRight,
	},
}

// VTScheme is the layout of VT100 compatible terminals, where arrow keys
// are sent as ESC [ A..D (or ESC O A..D in application cursor mode).
var VTScheme = &Scheme{
	Name:          "vt",
	Prefix:        keyEsc,
	Intermediates: []byte{'[', 'O'},
	Directions: map[byte]Key{
		'A': KeyUp,
		'B': KeyDown,
		'C': KeyRight,
		'D': KeyLeft,
	},
	PrefixIsKey: true,
}

// SchemeByName returns the scheme with the given name, or nil.
func SchemeByName(name string) *Scheme {
	switch name {
	case ConsoleScheme.Name:
		return ConsoleScheme
	case VTScheme.Name:
		return VTScheme
	}
	return nil
}

func (s *Scheme) isIntermediate(b byte) bool {
	for _, i := range s.Intermediates {
		if b == i {
			return true
		}
	}
	return false
}
