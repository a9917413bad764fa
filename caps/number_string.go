package caps

// String returns the Go identifier name of the capability, e.g. 'Columns'.
func (c NumberCap) String() string {
	if int(c) < 0 || int(c) >= len(numbercapNames) {
		return "unknown"
	}
	return numbercapNames[c]
}

var numbercapNames = [...]string{
	"Columns",
	"InitTabs",
	"Lines",
	"LinesOfMemory",
	"MagicCookieGlitch",
	"PaddingBaudRate",
	"VirtualTerminal",
	"WidthStatusLine",
	"NumLabels",
	"LabelHeight",
	"LabelWidth",
	"MaxAttributes",
	"MaximumWindows",
	"MaxColors",
	"MaxPairs",
	"NoColorVideo",
	"BufferCapacity",
	"DotVertSpacing",
	"DotHorzSpacing",
	"MaxMicroAddress",
	"MaxMicroJump",
	"MicroColSize",
	"MicroLineSize",
	"NumberOfPins",
	"OutputResChar",
	"OutputResLine",
	"OutputResHorzInch",
	"OutputResVertInch",
	"PrintRate",
	"WideCharSize",
	"Buttons",
	"BitImageEntwining",
	"BitImageType",
}
