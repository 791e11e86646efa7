// Package schematic defines the line-segment model shared by the
// classification and tracing stages: semantic wire colors, structural line
// types, and the voltage classes inferred from conductor color.
package schematic

// WireColor is the semantic color bucket assigned to a stroke. It drives both
// visual grouping and voltage inference.
type WireColor int

const (
	ColorRed WireColor = iota
	ColorBlue
	ColorGreen
	ColorYellowGreen
	ColorBlack
	ColorBrown
	ColorWhite
	ColorOrange
	ColorGray
	ColorOther
)

func (c WireColor) String() string {
	switch c {
	case ColorRed:
		return "Red"
	case ColorBlue:
		return "Blue"
	case ColorGreen:
		return "Green"
	case ColorYellowGreen:
		return "YellowGreen"
	case ColorBlack:
		return "Black"
	case ColorBrown:
		return "Brown"
	case ColorWhite:
		return "White"
	case ColorOrange:
		return "Orange"
	case ColorGray:
		return "Gray"
	default:
		return "Other"
	}
}

// LineType is the structural role assigned to a segment on a page.
type LineType int

const (
	TypeUnknown LineType = iota
	TypeWire
	TypeBorder
	TypeTitleBlock
	TypeTableGrid
	TypeComponentOutline
)

func (t LineType) String() string {
	switch t {
	case TypeWire:
		return "Wire"
	case TypeBorder:
		return "Border"
	case TypeTitleBlock:
		return "TitleBlock"
	case TypeTableGrid:
		return "TableGrid"
	case TypeComponentOutline:
		return "ComponentOutline"
	default:
		return "Unknown"
	}
}

// VoltageType is the nominal voltage/signal class inferred from wire color,
// following the IEC 60204 conventions this drawing set uses.
type VoltageType int

const (
	VoltageUnknown VoltageType = iota
	Voltage24VDC
	Voltage0VDC
	Voltage230VAC
	VoltageNeutral
	VoltageEarth
	VoltageForeign
	VoltageSignal
)

func (v VoltageType) String() string {
	switch v {
	case Voltage24VDC:
		return "24VDC"
	case Voltage0VDC:
		return "0VDC"
	case Voltage230VAC:
		return "230VAC"
	case VoltageNeutral:
		return "Neutral"
	case VoltageEarth:
		return "PE"
	case VoltageForeign:
		return "Foreign"
	case VoltageSignal:
		return "Signal"
	default:
		return "Unknown"
	}
}

// colorVoltage maps conductor colors to voltage classes. Brown intentionally
// maps to 24VDC like red; downstream cross-referencing relies on that.
var colorVoltage = map[WireColor]VoltageType{
	ColorRed:         Voltage24VDC,
	ColorBrown:       Voltage24VDC,
	ColorBlue:        Voltage0VDC,
	ColorBlack:       Voltage230VAC,
	ColorWhite:       VoltageNeutral,
	ColorGreen:       VoltageEarth,
	ColorYellowGreen: VoltageEarth,
	ColorOrange:      VoltageForeign,
	ColorGray:        VoltageSignal,
}

// VoltageForColor returns the voltage class for a wire color.
func VoltageForColor(c WireColor) VoltageType {
	if v, ok := colorVoltage[c]; ok {
		return v
	}
	return VoltageUnknown
}
