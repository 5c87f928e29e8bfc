package animate

import (
	"fmt"
	"strings"
)

// Mode determines what happens once a follower reaches the end of its path.
type Mode int

const (
	// Once stops at the end of the path.
	Once Mode = iota
	// Loop jumps back to the start.
	Loop
	// PingPong reverses direction at either end.
	PingPong
)

var modeNames = [...]string{
	Once:     "once",
	Loop:     "loop",
	PingPong: "pingpong",
}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// ParseMode parses the name of a mode, ignoring case.
func ParseMode(s string) (Mode, error) {
	for m, name := range modeNames {
		if strings.EqualFold(s, name) {
			return Mode(m), nil
		}
	}
	return 0, fmt.Errorf("unknown mode %q", s)
}

func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Mode) UnmarshalText(b []byte) error {
	v, err := ParseMode(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}
