// Package caps declares the fixed, dense, zero-based capability ordinals
// used to index the mandatory section of a compiled terminal description.
//
// The membership and ordering of these constants is fixed by the compiled
// terminfo format itself (see term(5)); this package is an external
// collaborator to the parser and, beyond a String method on each ordinal
// type, exposes no behavior of its own.
package caps

// BoolCap is an ordinal index into the mandatory boolean capabilities array of a TermInfo handle.
type BoolCap int

const (
	// AutoLeftMargin cub1 wraps from column 0 to last column
	AutoLeftMargin BoolCap = iota
	// AutoRightMargin Terminal has automatic margins
	AutoRightMargin
	// NoEscCtlc Beehive (f1=escape, f2=ctrl C)
	NoEscCtlc
	// CeolStandoutGlitch Standout not erased by overwriting (hp)
	CeolStandoutGlitch
	// EatNewlineGlitch Newline ignored after 80 columns (Concept)
	EatNewlineGlitch
	// EraseOverstrike Can erase overstrikes with a blank
	EraseOverstrike
	// GenericType Generic line type (e.g., dialup, switch)
	GenericType
	// HardCopy Hardcopy terminal
	HardCopy
	// HasMetaKey Has a meta key (shift, sets parity bit)
	HasMetaKey
	// HasStatusLine Has extra 'status line'
	HasStatusLine
	// InsertNullGlitch Insert mode distinguishes nulls
	InsertNullGlitch
	// MemoryAbove Display may be retained above the screen
	MemoryAbove
	// MemoryBelow Display may be retained below the screen
	MemoryBelow
	// MoveInsertMode Safe to move while in insert mode
	MoveInsertMode
	// MoveStandoutMode Safe to move in standout modes
	MoveStandoutMode
	// OverStrike Terminal overstrikes on hard-copy terminal
	OverStrike
	// StatusLineEscOk Escape can be used on the status line
	StatusLineEscOk
	// DestTabsMagicSmso Destructive tabs, magic smso char (t1061)
	DestTabsMagicSmso
	// TildeGlitch Hazeltine; can't print tilde (~)
	TildeGlitch
	// TransparentUnderline Underline character overstrikes
	TransparentUnderline
	// XonXoff Terminal uses xon/xoff handshaking
	XonXoff
	// NeedsXonXoff Padding won't work, xon/xoff required
	NeedsXonXoff
	// PrtrSilent Printer won't echo on screen
	PrtrSilent
	// HardCursor Cursor is hard to see
	HardCursor
	// NonRevRmcup smcup does not reverse rmcup
	NonRevRmcup
	// NoPadChar Pad character doesn't exist
	NoPadChar
	// NonDestScrollRegion Scrolling region is nondestructive
	NonDestScrollRegion
	// CanChange Terminal can re-define existing colour
	CanChange
	// BackColorErase Screen erased with background colour
	BackColorErase
	// HueLightnessSaturation Terminal uses only HLS colour notation (Tektronix)
	HueLightnessSaturation
	// ColAddrGlitch Only positive motion for hpa/mhpa caps
	ColAddrGlitch
	// CrCancelsMicroMode Using cr turns off micro mode
	CrCancelsMicroMode
	// HasPrintWheel Printer needs operator to change character set
	HasPrintWheel
	// RowAddrGlitch Only positive motion for vpa/mvpa caps
	RowAddrGlitch
	// SemiAutoRightMargin Printing in last column causes cr
	SemiAutoRightMargin
	// CpiChangesRes Changing character pitch changes resolution
	CpiChangesRes
	// LpiChangesRes Changing line pitch changes resolution
	LpiChangesRes
)

// BoolCount is the number of known boolean capabilities ordinals.
const BoolCount = 37