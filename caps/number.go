package caps

// NumberCap is an ordinal index into the mandatory numeric capabilities array of a TermInfo handle.
type NumberCap int

const (
	// Columns Number of columns in a line
	Columns NumberCap = iota
	// InitTabs Tabs initially every # spaces
	InitTabs
	// Lines Number of lines on a screen or a page
	Lines
	// LinesOfMemory Lines of memory if > lines; 0 means varies
	LinesOfMemory
	// MagicCookieGlitch Number of blank characters left by smso or rmso
	MagicCookieGlitch
	// PaddingBaudRate Lowest baud rate where padding needed
	PaddingBaudRate
	// VirtualTerminal Virtual terminal number
	VirtualTerminal
	// WidthStatusLine Number of columns in status line
	WidthStatusLine
	// NumLabels Number of labels on screen (start at 1)
	NumLabels
	// LabelHeight Number of rows in each label
	LabelHeight
	// LabelWidth Number of columns in each label
	LabelWidth
	// MaxAttributes Maximum combined video attributes terminal can display
	MaxAttributes
	// MaximumWindows Maximum number of definable windows
	MaximumWindows
	// MaxColors Maximum number of colours on the screen
	MaxColors
	// MaxPairs Maximum number of colour-pairs on the screen
	MaxPairs
	// NoColorVideo Video attributes that can't be used with colours
	NoColorVideo
	// BufferCapacity Number of bytes buffered before printing
	BufferCapacity
	// DotVertSpacing Spacing of pins vertically in pins per inch
	DotVertSpacing
	// DotHorzSpacing Spacing of dots horizontally in dots per inch
	DotHorzSpacing
	// MaxMicroAddress Maximum value in micro address
	MaxMicroAddress
	// MaxMicroJump Maximum value in parm micro
	MaxMicroJump
	// MicroColSize Character step size when in micro mode
	MicroColSize
	// MicroLineSize Line step size when in micro mode
	MicroLineSize
	// NumberOfPins Number of pins in print-head
	NumberOfPins
	// OutputResChar Horizontal resolution in units per character
	OutputResChar
	// OutputResLine Vertical resolution in units per line
	OutputResLine
	// OutputResHorzInch Horizontal resolution in units per inch
	OutputResHorzInch
	// OutputResVertInch Vertical resolution in units per inch
	OutputResVertInch
	// PrintRate Print rate in characters per second
	PrintRate
	// WideCharSize Character step size when in double-wide mode
	WideCharSize
	// Buttons Number of buttons on the mouse
	Buttons
	// BitImageEntwining Number of passes for each bit-map row
	BitImageEntwining
	// BitImageType Type of bit image device
	BitImageType
)

// NumberCount is the number of known numeric capabilities ordinals.
const NumberCount = 33