package caps

// String returns the Go identifier name of the capability, e.g. 'BackTab'.
func (c StringCap) String() string {
	if int(c) < 0 || int(c) >= len(stringcapNames) {
		return "unknown"
	}
	return stringcapNames[c]
}

var stringcapNames = [...]string{
	"BackTab",
	"Bell",
	"CarriageReturn",
	"ChangeScrollRegion",
	"ClearAllTabs",
	"ClearScreen",
	"ClearEOL",
	"ClearEOS",
	"ColumnAddress",
	"CommandCharacter",
	"CursorAddress",
	"CursorDown",
	"CursorHome",
	"CursorInvisible",
	"CursorLeft",
	"CursorMemAddress",
	"CursorNormal",
	"CursorRight",
	"CursorToLastLine",
	"CursorUp",
	"CursorVisible",
	"DeleteCharacter",
	"DeleteLine",
	"DisStatusLine",
	"DownHalfLine",
	"EnterAltCharsetMode",
	"EnterBlinkMode",
	"EnterBoldMode",
	"EnterAlternativeMode",
	"EnterDeleteMode",
	"EnterDimMode",
	"EnterInsertMode",
	"EnterSecureMode",
	"EnterProtectedMode",
	"EnterReverseMode",
	"EnterStandoutMode",
	"EnterUnderlineMode",
	"EraseChars",
	"ExitAltCharsetMode",
	"ExitAttributeMode",
	"ExitAlternativeMode",
	"ExitDeleteMode",
	"ExitInsertMode",
	"ExitStandoutMode",
	"ExitUnderlineMode",
	"FlashScreen",
	"FormFeed",
	"FromStatusLine",
	"Init1String",
	"Init2String",
	"Init3String",
	"InitFile",
	"InsertCharacter",
	"InsertLine",
	"InsertPadding",
	"KeyBackspace",
	"KeyClearAllTabs",
	"KeyClear",
	"KeyClearTab",
	"KeyDeleteCharacter",
	"KeyDeleteLine",
	"KeyDown",
	"KeyEic",
	"KeyClearEOL",
	"KeyClearEOS",
	"KeyF0",
	"KeyF1",
	"KeyF10",
	"KeyF2",
	"KeyF3",
	"KeyF4",
	"KeyF5",
	"KeyF6",
	"KeyF7",
	"KeyF8",
	"KeyF9",
	"KeyHome",
	"KeyInsertCharacter",
	"KeyInsertLine",
	"KeyLeft",
	"KeyLastLine",
	"KeyNextPage",
	"KeyPreviousPage",
	"KeyRight",
	"KeyScrollForward",
	"KeyScrollBackward",
	"KeySetTab",
	"KeyUp",
	"KeypadLocal",
	"KeypadXmit",
	"LabF0",
	"LabF1",
	"LabF10",
	"LabF2",
	"LabF3",
	"LabF4",
	"LabF5",
	"LabF6",
	"LabF7",
	"LabF8",
	"LabF9",
	"MetaOff",
	"MetaOn",
	"Newline",
	"PadChar",
	"ParmDeleteCharacters",
	"ParmDeleteLine",
	"ParmDownCursor",
	"ParmInsertCharacters",
	"ParmIndex",
	"ParmInsertLine",
	"ParmLeftCursor",
	"ParmRightCursor",
	"ParmReverseIndex",
	"ParmUpCursor",
	"PKeyKey",
	"PKeyLocal",
	"PKeyXmit",
	"PrintScreen",
	"PrinterOff",
	"PrinterOn",
	"RepeatChar",
	"Reset1String",
	"Reset2String",
	"Reset3String",
	"ResetFile",
	"RestoreCursor",
	"RowAddress",
	"SaveCursor",
	"ScrollForward",
	"ScrollReverse",
	"SetAttributes",
	"SetTab",
	"SetWindow",
	"Tab",
	"ToStatusLine",
	"UnderlineChar",
	"UpHalfLine",
	"InitProg",
	"KeyA1",
	"KeyA3",
	"KeyB2",
	"KeyC1",
	"KeyC3",
	"PrinterOnForNBytes",
	"CharPadding",
	"AcsChars",
	"PlabNorm",
	"KeyBackTab",
	"EnterXonMode",
	"ExitXonMode",
	"EnterAutomaticMarginsMode",
	"ExitAutomaticMarginsMode",
	"XOnCharacter",
	"XOffCharacter",
	"EnableAlternateCharSet",
	"LabelOn",
	"LabelOff",
	"KeyBegin",
	"KeyCancel",
	"KeyClose",
	"KeyCommand",
	"KeyCopy",
	"KeyCreate",
	"KeyEnd",
	"KeyEnter",
	"KeyExit",
	"KeyFind",
	"KeyHelp",
	"KeyMark",
	"KeyMessage",
	"KeyMove",
	"KeyNext",
	"KeyOpen",
	"KeyOptions",
	"KeyPrevious",
	"KeyPrint",
	"KeyRedo",
	"KeyReference",
	"KeyRefresh",
	"KeyReplace",
	"KeyRestart",
	"KeyResume",
	"KeySave",
	"KeySuspend",
	"KeyUndo",
	"KeyShiftBegin",
	"KeyShiftCancel",
	"KeyShiftCommand",
	"KeyShiftCopy",
	"KeyShiftCreate",
	"KeyShiftDeleteChar",
	"KeyShiftDeleteLine",
	"KeySelect",
	"KeyShiftEnd",
	"KeyShiftEOL",
	"KeyShiftExit",
	"KeyShiftFind",
	"KeyShiftHelp",
	"KeyShiftHome",
	"KeyShiftInputKey",
	"KeyShiftLeft",
	"KeyShiftMessage",
	"KeyShiftMove",
	"KeyShiftNext",
	"KeyShiftOptions",
	"KeyShiftPrevious",
	"KeyShiftPrint",
	"KeyShiftRedo",
	"KeyShiftReplace",
	"KeyShiftRight",
	"KeyShiftResume",
	"KeyShiftSave",
	"KeyShiftSuspend",
	"KeyShiftUndo",
	"ReqForInput",
	"KeyF11",
	"KeyF12",
	"KeyF13",
	"KeyF14",
	"KeyF15",
	"KeyF16",
	"KeyF17",
	"KeyF18",
	"KeyF19",
	"KeyF20",
	"KeyF21",
	"KeyF22",
	"KeyF23",
	"KeyF24",
	"KeyF25",
	"KeyF26",
	"KeyF27",
	"KeyF28",
	"KeyF29",
	"KeyF30",
	"KeyF31",
	"KeyF32",
	"KeyF33",
	"KeyF34",
	"KeyF35",
	"KeyF36",
	"KeyF37",
	"KeyF38",
	"KeyF39",
	"KeyF40",
	"KeyF41",
	"KeyF42",
	"KeyF43",
	"KeyF44",
	"KeyF45",
	"KeyF46",
	"KeyF47",
	"KeyF48",
	"KeyF49",
	"KeyF50",
	"KeyF51",
	"KeyF52",
	"KeyF53",
	"KeyF54",
	"KeyF55",
	"KeyF56",
	"KeyF57",
	"KeyF58",
	"KeyF59",
	"KeyF60",
	"KeyF61",
	"KeyF62",
	"KeyF63",
	"ClearBOL",
	"ClearMargins",
	"SetLeftMargin",
	"SetRightMargin",
	"LabelFormat",
	"SetClock",
	"DisplayClock",
	"RemoveClock",
	"CreateWindow",
	"GotoWindow",
	"Hangup",
	"DialPhone",
	"QuickDial",
	"Tone",
	"Pulse",
	"FlashHook",
	"FixedPause",
	"WaitTone",
	"User0",
	"User1",
	"User2",
	"User3",
	"User4",
	"User5",
	"User6",
	"User7",
	"User8",
	"User9",
	"OrigColorPair",
	"OrigColors",
	"InitializeColor",
	"InitializePair",
	"SetColorPair",
	"SetForeground",
	"SetBackground",
	"ChangeCharPitch",
	"ChangeLinePitch",
	"ChangeResHorz",
	"ChangeResVert",
	"DefineChar",
	"EnterDoublewideMode",
	"EnterDraftQuality",
	"EnterItalicsMode",
	"EnterLeftwardMode",
	"EnterMicroMode",
	"EnterNearLetterQuality",
	"EnterNormalQuality",
	"EnterShadowMode",
	"EnterSubscriptMode",
	"EnterSuperscriptMode",
	"EnterUpwardMode",
	"ExitDoublewideMode",
	"ExitItalicsMode",
	"ExitLeftwardMode",
	"ExitMicroMode",
	"ExitShadowMode",
	"ExitSubscriptMode",
	"ExitSuperscriptMode",
	"ExitUpwardMode",
	"MicroColumnAddress",
	"MicroDown",
	"MicroLeft",
	"MicroRight",
	"MicroRowAddress",
	"MicroUp",
	"OrderOfPins",
	"ParmDownMicro",
	"ParmLeftMicro",
	"ParmRightMicro",
	"ParmUpMicro",
	"SelectCharSet",
	"SetBottomMargin",
	"SetBottomMarginParm",
	"SetLeftMarginParm",
	"SetRightMarginParm",
	"SetTopMargin",
	"SetTopMarginParm",
	"StartBitImage",
	"StartCharSetDef",
	"StopBitImage",
	"StopCharSetDef",
	"SubscriptCharacters",
	"SuperscriptCharacters",
	"TheseCauseCr",
	"ZeroMotion",
	"CharSetNames",
	"KeyMouse",
	"MouseInfo",
	"ReqMousePos",
	"GetMouse",
	"SetAnsiForeground",
	"SetAnsiBackground",
	"PKeyPlab",
	"DeviceType",
	"CodeSetInit",
	"Set0DesSeq",
	"Set1DesSeq",
	"Set2DesSeq",
	"Set3DesSeq",
	"SetLrMargin",
	"SetTbMargin",
	"BitImageRepeat",
	"BitImageNewline",
	"BitImageCarriageReturn",
	"ColorNames",
	"DefineBitImageRegion",
	"EndBitImageRegion",
	"SetColorBand",
	"SetPageLength",
	"DisplayPcChar",
	"EnterPcCharsetMode",
	"ExitPcCharsetMode",
	"EnterScancodeMode",
	"ExitScancodeMode",
	"PcTermOptions",
	"ScancodeEscape",
	"AltScancodeEsc",
	"EnterHorizontalHlMode",
	"EnterLeftHlMode",
	"EnterLowHlMode",
	"EnterRightHlMode",
	"EnterTopHlMode",
	"EnterVerticalHlMode",
	"SetAAttributes",
	"SetPageLenInch",
}
