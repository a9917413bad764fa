package caps

// StringCap is an ordinal index into the mandatory string capabilities array of a TermInfo handle.
type StringCap int

const (
	// BackTab Back tab
	BackTab StringCap = iota
	// Bell Audible signal (bell)
	Bell
	// CarriageReturn Carriage return
	CarriageReturn
	// ChangeScrollRegion Change to lines #1 through #2 (VT100)
	ChangeScrollRegion
	// ClearAllTabs Clear all tab stops
	ClearAllTabs
	// ClearScreen Clear screen and home cursor
	ClearScreen
	// ClearEOL Clear to end of line
	ClearEOL
	// ClearEOS Clear to end of display
	ClearEOS
	// ColumnAddress Set horizontal position to absolute #1
	ColumnAddress
	// CommandCharacter Terminal settable cmd characterin prototype
	CommandCharacter
	// CursorAddress Move to row #1 col #2
	CursorAddress
	// CursorDown Down one line
	CursorDown
	// CursorHome Home cursor (if no cup)
	CursorHome
	// CursorInvisible Make cursor invisible
	CursorInvisible
	// CursorLeft Move left one space.
	CursorLeft
	// CursorMemAddress Memory relative cursor addressing
	CursorMemAddress
	// CursorNormal Make cursor appear normal (undo vs/vi)
	CursorNormal
	// CursorRight Non-destructive space (cursor or carriage right)
	CursorRight
	// CursorToLastLine Last line, first column (if no cup)
	CursorToLastLine
	// CursorUp Upline (cursor up)
	CursorUp
	// CursorVisible Make cursor very visible
	CursorVisible
	// DeleteCharacter Delete character
	DeleteCharacter
	// DeleteLine Delete line
	DeleteLine
	// DisStatusLine Disable status line
	DisStatusLine
	// DownHalfLine Half-line down (forward 1/2 linefeed)
	DownHalfLine
	// EnterAltCharsetMode Start alternate character set
	EnterAltCharsetMode
	// EnterBlinkMode Turn on blinking
	EnterBlinkMode
	// EnterBoldMode Turn on bold (extra bright) mode
	EnterBoldMode
	// EnterAlternativeMode String to begin programs that use cup
	EnterAlternativeMode
	// EnterDeleteMode Delete mode (enter)
	EnterDeleteMode
	// EnterDimMode Turn on half-bright mode
	EnterDimMode
	// EnterInsertMode Insert mode (enter)
	EnterInsertMode
	// EnterSecureMode Turn on blank mode (characters invisible)
	EnterSecureMode
	// EnterProtectedMode Turn on protected mode
	EnterProtectedMode
	// EnterReverseMode Turn on reverse video mode
	EnterReverseMode
	// EnterStandoutMode Begin standout mode
	EnterStandoutMode
	// EnterUnderlineMode Start underscore mode
	EnterUnderlineMode
	// EraseChars Erase #1 characters
	EraseChars
	// ExitAltCharsetMode End alternate character set
	ExitAltCharsetMode
	// ExitAttributeMode Turn off all attributes
	ExitAttributeMode
	// ExitAlternativeMode String to end programs that use cup
	ExitAlternativeMode
	// ExitDeleteMode End delete mode
	ExitDeleteMode
	// ExitInsertMode End insert mode
	ExitInsertMode
	// ExitStandoutMode End standout mode
	ExitStandoutMode
	// ExitUnderlineMode End underscore mode
	ExitUnderlineMode
	// FlashScreen Visible bell (may move cursor)
	FlashScreen
	// FormFeed Hardcopy terminal page eject
	FormFeed
	// FromStatusLine Return from status line
	FromStatusLine
	// Init1String Terminal or printer initialisation string
	Init1String
	// Init2String Terminal or printer initialisation string
	Init2String
	// Init3String Terminal or printer initialisation string
	Init3String
	// InitFile Name of initialisation file
	InitFile
	// InsertCharacter Insert character
	InsertCharacter
	// InsertLine Add new blank line
	InsertLine
	// InsertPadding Insert pad after character inserted
	InsertPadding
	// KeyBackspace sent by backspace key
	KeyBackspace
	// KeyClearAllTabs sent by clear-all-tabs key
	KeyClearAllTabs
	// KeyClear sent by clear-screen or erase key
	KeyClear
	// KeyClearTab sent by clear-tab key
	KeyClearTab
	// KeyDeleteCharacter sent by delete-character key
	KeyDeleteCharacter
	// KeyDeleteLine sent by delete-line key
	KeyDeleteLine
	// KeyDown sent by terminal down-arrow key
	KeyDown
	// KeyEic sent by rmir or smir in insert mode
	KeyEic
	// KeyClearEOL sent by clear-to-end-of-line key
	KeyClearEOL
	// KeyClearEOS sent by clear-to-end-of-screen key
	KeyClearEOS
	// KeyF0 sent by function key f0
	KeyF0
	// KeyF1 sent by function key f1
	KeyF1
	// KeyF10 sent by function key f10
	KeyF10
	// KeyF2 sent by function key f2
	KeyF2
	// KeyF3 sent by function key f3
	KeyF3
	// KeyF4 sent by function key f4
	KeyF4
	// KeyF5 sent by function key f5
	KeyF5
	// KeyF6 sent by function key f6
	KeyF6
	// KeyF7 sent by function key f7
	KeyF7
	// KeyF8 sent by function key f8
	KeyF8
	// KeyF9 sent by function key f9
	KeyF9
	// KeyHome sent by home key
	KeyHome
	// KeyInsertCharacter sent by ins-char/enter ins-mode key
	KeyInsertCharacter
	// KeyInsertLine sent by insert-line key
	KeyInsertLine
	// KeyLeft sent by terminal left-arrow key
	KeyLeft
	// KeyLastLine sent by home-down key
	KeyLastLine
	// KeyNextPage sent by next-page key
	KeyNextPage
	// KeyPreviousPage sent by previous-page key
	KeyPreviousPage
	// KeyRight sent by terminal right-arrow key
	KeyRight
	// KeyScrollForward sent by scroll-forward/down key
	KeyScrollForward
	// KeyScrollBackward sent by scroll-backward/up key
	KeyScrollBackward
	// KeySetTab sent by set-tab key
	KeySetTab
	// KeyUp sent by terminal up-arrow key
	KeyUp
	// KeypadLocal Out of 'keypad-transmit' mode
	KeypadLocal
	// KeypadXmit Put terminal in 'keypad-transmit' mode
	KeypadXmit
	// LabF0 Labels on function key f0 if not f0
	LabF0
	// LabF1 Labels on function key f1 if not f1
	LabF1
	// LabF10 Labels on function key f10 if not f10
	LabF10
	// LabF2 Labels on function key f2 if not f2
	LabF2
	// LabF3 Labels on function key f3 if not f3
	LabF3
	// LabF4 Labels on function key f4 if not f4
	LabF4
	// LabF5 Labels on function key f5 if not f5
	LabF5
	// LabF6 Labels on function key f6 if not f6
	LabF6
	// LabF7 Labels on function key f7 if not f7
	LabF7
	// LabF8 Labels on function key f8 if not f8
	LabF8
	// LabF9 Labels on function key f9 if not f9
	LabF9
	// MetaOff Turn off 'meta mode'
	MetaOff
	// MetaOn Turn on 'meta mode' (8th bit)
	MetaOn
	// Newline Newline (behaves like cr followed by lf)
	Newline
	// PadChar Pad character (rather than null)
	PadChar
	// ParmDeleteCharacters Delete #1 chars
	ParmDeleteCharacters
	// ParmDeleteLine Delete #1 lines
	ParmDeleteLine
	// ParmDownCursor Move down #1 lines.
	ParmDownCursor
	// ParmInsertCharacters Insert #1 blank chars
	ParmInsertCharacters
	// ParmIndex Scroll forward #1 lines.
	ParmIndex
	// ParmInsertLine Add #1 new blank lines
	ParmInsertLine
	// ParmLeftCursor Move cursor left #1 spaces
	ParmLeftCursor
	// ParmRightCursor Move right #1 spaces.
	ParmRightCursor
	// ParmReverseIndex Scroll backward #1 lines.
	ParmReverseIndex
	// ParmUpCursor Move cursor up #1 lines.
	ParmUpCursor
	// PKeyKey Prog funct key #1 to type string #2
	PKeyKey
	// PKeyLocal Prog funct key #1 to execute string #2
	PKeyLocal
	// PKeyXmit Prog funct key #1 to xmit string #2
	PKeyXmit
	// PrintScreen Print contents of the screen
	PrintScreen
	// PrinterOff Turn off the printer
	PrinterOff
	// PrinterOn Turn on the printer
	PrinterOn
	// RepeatChar Repeat char #1 #2 times
	RepeatChar
	// Reset1String Reset terminal completely to sane modes
	Reset1String
	// Reset2String Reset terminal completely to sane modes
	Reset2String
	// Reset3String Reset terminal completely to sane modes
	Reset3String
	// ResetFile Name of file containing reset string
	ResetFile
	// RestoreCursor Restore cursor to position of last sc
	RestoreCursor
	// RowAddress Set vertical position to absolute #1
	RowAddress
	// SaveCursor Save cursor position
	SaveCursor
	// ScrollForward Scroll text up
	ScrollForward
	// ScrollReverse Scroll text down
	ScrollReverse
	// SetAttributes Define first set of video attributes #1-#9
	SetAttributes
	// SetTab Set a tab in all rows, current column
	SetTab
	// SetWindow Current window is lines #1-#2 cols #3-#4
	SetWindow
	// Tab Tab to next 8-space hardware tab stop
	Tab
	// ToStatusLine Go to status line, col #1
	ToStatusLine
	// UnderlineChar Underscore one char and move past it
	UnderlineChar
	// UpHalfLine Half-line up (reverse 1/2 linefeed)
	UpHalfLine
	// InitProg Path name of program for initialisation
	InitProg
	// KeyA1 upper left of keypad
	KeyA1
	// KeyA3 upper right of keypad
	KeyA3
	// KeyB2 center of keypad
	KeyB2
	// KeyC1 lower left of keypad
	KeyC1
	// KeyC3 lower right of keypad
	KeyC3
	// PrinterOnForNBytes Turn on the printer for #1 bytes
	PrinterOnForNBytes
	// CharPadding Like ip but when in replace mode
	CharPadding
	// AcsChars Graphic charset pairs aAbBcC
	AcsChars
	// PlabNorm Prog label #1 to show string #2
	PlabNorm
	// KeyBackTab sent by back-tab key
	KeyBackTab
	// EnterXonMode Turn on xon/xoff handshaking
	EnterXonMode
	// ExitXonMode Turn off xon/xoff handshaking
	ExitXonMode
	// EnterAutomaticMarginsMode Turn on automatic margins
	EnterAutomaticMarginsMode
	// ExitAutomaticMarginsMode Turn off automatic margins
	ExitAutomaticMarginsMode
	// XOnCharacter X-on character
	XOnCharacter
	// XOffCharacter X-off character
	XOffCharacter
	// EnableAlternateCharSet Enable alternate character set
	EnableAlternateCharSet
	// LabelOn Turn on soft labels
	LabelOn
	// LabelOff Turn off soft labels
	LabelOff
	// KeyBegin 1
	KeyBegin
	// KeyCancel 2
	KeyCancel
	// KeyClose 3
	KeyClose
	// KeyCommand 4
	KeyCommand
	// KeyCopy 5
	KeyCopy
	// KeyCreate 6
	KeyCreate
	// KeyEnd 7
	KeyEnd
	// KeyEnter 8
	KeyEnter
	// KeyExit 9
	KeyExit
	// KeyFind 0
	KeyFind
	// KeyHelp sent by help key
	KeyHelp
	// KeyMark sent by mark key
	KeyMark
	// KeyMessage sent by message key
	KeyMessage
	// KeyMove sent by move key
	KeyMove
	// KeyNext sent by next-object key
	KeyNext
	// KeyOpen sent by open key
	KeyOpen
	// KeyOptions sent by options key
	KeyOptions
	// KeyPrevious sent by previous-object key
	KeyPrevious
	// KeyPrint sent by print or copy key
	KeyPrint
	// KeyRedo sent by redo key
	KeyRedo
	// KeyReference sent by ref(erence) key
	KeyReference
	// KeyRefresh sent by refresh key
	KeyRefresh
	// KeyReplace sent by replace key
	KeyReplace
	// KeyRestart sent by restart key
	KeyRestart
	// KeyResume sent by resume key
	KeyResume
	// KeySave sent by save key
	KeySave
	// KeySuspend sent by suspend key
	KeySuspend
	// KeyUndo sent by undo key
	KeyUndo
	// KeyShiftBegin sent by shifted beginning key
	KeyShiftBegin
	// KeyShiftCancel sent by shifted cancel key
	KeyShiftCancel
	// KeyShiftCommand sent by shifted command key
	KeyShiftCommand
	// KeyShiftCopy sent by shifted copy key
	KeyShiftCopy
	// KeyShiftCreate sent by shifted create key
	KeyShiftCreate
	// KeyShiftDeleteChar sent by shifted delete-char key
	KeyShiftDeleteChar
	// KeyShiftDeleteLine sent by shifted delete-line key
	KeyShiftDeleteLine
	// KeySelect sent by select key
	KeySelect
	// KeyShiftEnd sent by shifted end key
	KeyShiftEnd
	// KeyShiftEOL sent by shifted clear-line key
	KeyShiftEOL
	// KeyShiftExit sent by shifted exit key
	KeyShiftExit
	// KeyShiftFind sent by shifted find key
	KeyShiftFind
	// KeyShiftHelp #1  sent by shifted help key
	KeyShiftHelp
	// KeyShiftHome #2  sent by shifted home key
	KeyShiftHome
	// KeyShiftInputKey #3  sent by shifted input key
	KeyShiftInputKey
	// KeyShiftLeft #4  sent by shifted left-arrow key
	KeyShiftLeft
	// KeyShiftMessage sent by shifted message key
	KeyShiftMessage
	// KeyShiftMove sent by shifted move key
	KeyShiftMove
	// KeyShiftNext sent by shifted next key
	KeyShiftNext
	// KeyShiftOptions sent by shifted options key
	KeyShiftOptions
	// KeyShiftPrevious sent by shifted prev key
	KeyShiftPrevious
	// KeyShiftPrint sent by shifted print key
	KeyShiftPrint
	// KeyShiftRedo sent by shifted redo key
	KeyShiftRedo
	// KeyShiftReplace sent by shifted replace key
	KeyShiftReplace
	// KeyShiftRight sent by shifted right-arrow key
	KeyShiftRight
	// KeyShiftResume sent by shifted resume key
	KeyShiftResume
	// KeyShiftSave !1  sent by shifted save key
	KeyShiftSave
	// KeyShiftSuspend !2  sent by shifted suspend key
	KeyShiftSuspend
	// KeyShiftUndo !3  sent by shifted undo key
	KeyShiftUndo
	// ReqForInput Send next input char (for ptys)
	ReqForInput
	// KeyF11 sent by function key f11
	KeyF11
	// KeyF12 sent by function key f12
	KeyF12
	// KeyF13 sent by function key f13
	KeyF13
	// KeyF14 sent by function key f14
	KeyF14
	// KeyF15 sent by function key f15
	KeyF15
	// KeyF16 sent by function key f16
	KeyF16
	// KeyF17 sent by function key f17
	KeyF17
	// KeyF18 sent by function key f18
	KeyF18
	// KeyF19 sent by function key f19
	KeyF19
	// KeyF20 sent by function key f20
	KeyF20
	// KeyF21 sent by function key f21
	KeyF21
	// KeyF22 sent by function key f22
	KeyF22
	// KeyF23 sent by function key f23
	KeyF23
	// KeyF24 sent by function key f24
	KeyF24
	// KeyF25 sent by function key f25
	KeyF25
	// KeyF26 sent by function key f26
	KeyF26
	// KeyF27 sent by function key f27
	KeyF27
	// KeyF28 sent by function key f28
	KeyF28
	// KeyF29 sent by function key f29
	KeyF29
	// KeyF30 sent by function key f30
	KeyF30
	// KeyF31 sent by function key f31
	KeyF31
	// KeyF32 sent by function key f32
	KeyF32
	// KeyF33 sent by function key f33
	KeyF33
	// KeyF34 sent by function key f34
	KeyF34
	// KeyF35 sent by function key f35
	KeyF35
	// KeyF36 sent by function key f36
	KeyF36
	// KeyF37 sent by function key f37
	KeyF37
	// KeyF38 sent by function key f38
	KeyF38
	// KeyF39 sent by function key f39
	KeyF39
	// KeyF40 sent by function key f40
	KeyF40
	// KeyF41 sent by function key f41
	KeyF41
	// KeyF42 sent by function key f42
	KeyF42
	// KeyF43 sent by function key f43
	KeyF43
	// KeyF44 sent by function key f44
	KeyF44
	// KeyF45 sent by function key f45
	KeyF45
	// KeyF46 sent by function key f46
	KeyF46
	// KeyF47 sent by function key f47
	KeyF47
	// KeyF48 sent by function key f48
	KeyF48
	// KeyF49 sent by function key f49
	KeyF49
	// KeyF50 sent by function key f50
	KeyF50
	// KeyF51 sent by function key f51
	KeyF51
	// KeyF52 sent by function key f52
	KeyF52
	// KeyF53 sent by function key f53
	KeyF53
	// KeyF54 sent by function key f54
	KeyF54
	// KeyF55 sent by function key f55
	KeyF55
	// KeyF56 sent by function key f56
	KeyF56
	// KeyF57 sent by function key f57
	KeyF57
	// KeyF58 sent by function key f58
	KeyF58
	// KeyF59 sent by function key f59
	KeyF59
	// KeyF60 sent by function key f60
	KeyF60
	// KeyF61 sent by function key f61
	KeyF61
	// KeyF62 sent by function key f62
	KeyF62
	// KeyF63 sent by function key f63
	KeyF63
	// ClearBOL Clear to beginning of line, inclusive
	ClearBOL
	// ClearMargins Clear all margins (top, bottom, and sides)
	ClearMargins
	// SetLeftMargin Set left margin at current column
	SetLeftMargin
	// SetRightMargin Set right margin at current column
	SetRightMargin
	// LabelFormat Label format
	LabelFormat
	// SetClock Set clock to hours (#1), minutes (#2), seconds (#3)
	SetClock
	// DisplayClock Display time-of-day clock
	DisplayClock
	// RemoveClock Remove time-of-day clock
	RemoveClock
	// CreateWindow Define win #1 to go from #2,#3 to #4,#5
	CreateWindow
	// GotoWindow Go to window #1
	GotoWindow
	// Hangup Hang-up phone
	Hangup
	// DialPhone Dial phone number #1
	DialPhone
	// QuickDial Dial phone number #1, without progress detection
	QuickDial
	// Tone Select touch tone dialing
	Tone
	// Pulse Select pulse dialing
	Pulse
	// FlashHook Flash the switch hook
	FlashHook
	// FixedPause Pause for 2-3 seconds
	FixedPause
	// WaitTone Wait for dial tone
	WaitTone
	// User0 User string 0
	User0
	// User1 User string 1
	User1
	// User2 User string 2
	User2
	// User3 User string 3
	User3
	// User4 User string 4
	User4
	// User5 User string 5
	User5
	// User6 User string 6
	User6
	// User7 User string 7
	User7
	// User8 User string 8
	User8
	// User9 User string 9
	User9
	// OrigColorPair Set default colour-pair to the original one
	OrigColorPair
	// OrigColors Set all colour(-pair)s to the original ones
	OrigColors
	// InitializeColor Set colour #1 to RGB #2, #3, #4
	InitializeColor
	// InitializePair Set colour-pair #1 to fg #2, bg #3
	InitializePair
	// SetColorPair Set current colour pair to #1
	SetColorPair
	// SetForeground Set foreground colour to #1
	SetForeground
	// SetBackground Set background colour to #1
	SetBackground
	// ChangeCharPitch Change number of characters per inch
	ChangeCharPitch
	// ChangeLinePitch Change number of lines per inch
	ChangeLinePitch
	// ChangeResHorz Change horizontal resolution
	ChangeResHorz
	// ChangeResVert Change vertical resolution
	ChangeResVert
	// DefineChar Define a character in a character set
	DefineChar
	// EnterDoublewideMode Enable double wide printing
	EnterDoublewideMode
	// EnterDraftQuality Set draft quality print
	EnterDraftQuality
	// EnterItalicsMode Enable italics
	EnterItalicsMode
	// EnterLeftwardMode Enable leftward carriage motion
	EnterLeftwardMode
	// EnterMicroMode Enable micro motion capabilities
	EnterMicroMode
	// EnterNearLetterQuality Set near-letter quality print
	EnterNearLetterQuality
	// EnterNormalQuality Set normal quality print
	EnterNormalQuality
	// EnterShadowMode Enable shadow printing
	EnterShadowMode
	// EnterSubscriptMode Enable subscript printing
	EnterSubscriptMode
	// EnterSuperscriptMode Enable superscript printing
	EnterSuperscriptMode
	// EnterUpwardMode Enable upward carriage motion
	EnterUpwardMode
	// ExitDoublewideMode Disable double wide printing
	ExitDoublewideMode
	// ExitItalicsMode Disable italics
	ExitItalicsMode
	// ExitLeftwardMode Enable rightward (normal) carriage motion
	ExitLeftwardMode
	// ExitMicroMode Disable micro motion capabilities
	ExitMicroMode
	// ExitShadowMode Disable shadow printing
	ExitShadowMode
	// ExitSubscriptMode Disable subscript printing
	ExitSubscriptMode
	// ExitSuperscriptMode Disable superscript printing
	ExitSuperscriptMode
	// ExitUpwardMode Enable downward (normal) carriage motion
	ExitUpwardMode
	// MicroColumnAddress Like columnaddress for micro adjustment
	MicroColumnAddress
	// MicroDown Like cursordown for micro adjustment
	MicroDown
	// MicroLeft Like cursorleft for micro adjustment
	MicroLeft
	// MicroRight Like cursorright for micro adjustment
	MicroRight
	// MicroRowAddress Like rowaddress for micro adjustment
	MicroRowAddress
	// MicroUp Like cursorup for micro adjustment
	MicroUp
	// OrderOfPins Matches software bits to print-head pins
	OrderOfPins
	// ParmDownMicro Like parmdowncursor for micro adjust.
	ParmDownMicro
	// ParmLeftMicro Like parmleftcursor for micro adjust.
	ParmLeftMicro
	// ParmRightMicro Like parmrightcursor for micro adjust.
	ParmRightMicro
	// ParmUpMicro Like parmupcursor for micro adjust.
	ParmUpMicro
	// SelectCharSet Select character set
	SelectCharSet
	// SetBottomMargin Set bottom margin at current line
	SetBottomMargin
	// SetBottomMarginParm Set bottom margin at line #1 or #2 lines from bottom
	SetBottomMarginParm
	// SetLeftMarginParm Set left (right) margin at column #1 (#2)
	SetLeftMarginParm
	// SetRightMarginParm Set right margin at column #1
	SetRightMarginParm
	// SetTopMargin Set top margin at current line
	SetTopMargin
	// SetTopMarginParm Set top (bottom) margin at line #1 (#2)
	SetTopMarginParm
	// StartBitImage Start printing bit image graphics
	StartBitImage
	// StartCharSetDef Start definition of a character set
	StartCharSetDef
	// StopBitImage End printing bit image graphics
	StopBitImage
	// StopCharSetDef End definition of a character set
	StopCharSetDef
	// SubscriptCharacters List of 'subscript-able' characters
	SubscriptCharacters
	// SuperscriptCharacters List of 'superscript-able' characters
	SuperscriptCharacters
	// TheseCauseCr Printing any of these chars causes cr
	TheseCauseCr
	// ZeroMotion No motion for the subsequent character
	ZeroMotion
	// CharSetNames Returns a list of character set names
	CharSetNames
	// KeyMouse 0631, Mouse event has occured
	KeyMouse
	// MouseInfo Mouse status information
	MouseInfo
	// ReqMousePos Request mouse position report
	ReqMousePos
	// GetMouse Curses should get button events
	GetMouse
	// SetAnsiForeground Set foreground colour to #1 using ANSI escape
	SetAnsiForeground
	// SetAnsiBackground Set background colour to #1 using ANSI escape
	SetAnsiBackground
	// PKeyPlab Prog key #1 to xmit string #2 and show string #3
	PKeyPlab
	// DeviceType Indicate language/codeset support
	DeviceType
	// CodeSetInit Init sequence for multiple codesets
	CodeSetInit
	// Set0DesSeq Shift into codeset 0 (EUC set 0, ASCII)
	Set0DesSeq
	// Set1DesSeq Shift into codeset 1
	Set1DesSeq
	// Set2DesSeq Shift into codeset 2
	Set2DesSeq
	// Set3DesSeq Shift into codeset 3
	Set3DesSeq
	// SetLrMargin Sets both left and right margins
	SetLrMargin
	// SetTbMargin Sets both top and bottom margins
	SetTbMargin
	// BitImageRepeat Repeat bit-image cell #1 #2 times
	BitImageRepeat
	// BitImageNewline Move to next row of the bit image
	BitImageNewline
	// BitImageCarriageReturn Move to beginning of same row
	BitImageCarriageReturn
	// ColorNames Give name for colour #1
	ColorNames
	// DefineBitImageRegion Define rectangular bit-image region
	DefineBitImageRegion
	// EndBitImageRegion End a bit-image region
	EndBitImageRegion
	// SetColorBand Change to ribbon colour #1
	SetColorBand
	// SetPageLength Set page length to #1 lines
	SetPageLength
	// DisplayPcChar Display PC character
	DisplayPcChar
	// EnterPcCharsetMode Enter PC character display mode
	EnterPcCharsetMode
	// ExitPcCharsetMode Disable PC character display mode
	ExitPcCharsetMode
	// EnterScancodeMode Enter PC scancode mode
	EnterScancodeMode
	// ExitScancodeMode Disable PC scancode mode
	ExitScancodeMode
	// PcTermOptions PC terminal options
	PcTermOptions
	// ScancodeEscape Escape for scancode emulation
	ScancodeEscape
	// AltScancodeEsc Alternate escape for scancode emulation (default is for VT100)
	AltScancodeEsc
	// EnterHorizontalHlMode Turn on horizontal highlight mode
	EnterHorizontalHlMode
	// EnterLeftHlMode Turn on left highlight mode
	EnterLeftHlMode
	// EnterLowHlMode Turn on low highlight mode
	EnterLowHlMode
	// EnterRightHlMode Turn on right highlight mode
	EnterRightHlMode
	// EnterTopHlMode Turn on top highlight mode
	EnterTopHlMode
	// EnterVerticalHlMode Turn on vertical highlight mode
	EnterVerticalHlMode
	// SetAAttributes Define second set of video attributes #1-#6
	SetAAttributes
	// SetPageLenInch Set page length to #1 hundredth of an inch
	SetPageLenInch
)

// StringCount is the number of known string capabilities ordinals.
const StringCount = 394