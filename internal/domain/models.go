package domain

import "time"

// Glyph is a single emoji record from the dataset
type Glyph struct {
	Char  string `json:"char"`  // single grapheme cluster
	Name  string `json:"name"`  // human-readable label, the only searchable field
	Codes string `json:"codes"` // unique identifier, hex code points
}

// Mode is what activating a glyph does
type Mode int

const (
	ModeCopy Mode = iota
	ModeExport
)

// String returns the label shown next to the mode switch
func (m Mode) String() string {
	switch m {
	case ModeCopy:
		return "Copy Emoji"
	case ModeExport:
		return "Save as PNG"
	default:
		return "Unknown"
	}
}

// Toggle returns the other mode
func (m Mode) Toggle() Mode {
	if m == ModeCopy {
		return ModeExport
	}
	return ModeCopy
}

// ParseMode maps a config value onto a Mode
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "", "copy":
		return ModeCopy, true
	case "export", "png":
		return ModeExport, true
	default:
		return ModeCopy, false
	}
}

// Notification is a transient message shown after a completed action
type Notification struct {
	Message   string
	ExpiresAt time.Time
	Seq       uint64 // increases with every notification set
}
