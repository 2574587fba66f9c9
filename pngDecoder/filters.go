package pngDecoder

import (
	"fmt"

	"pnGo/oops"
)

type FilterType byte

const (
	FilterNone FilterType = iota
	FilterSub
	FilterUp
	FilterAverage
	FilterPaeth
)

func (f FilterType) String() string {
	switch f {
	case FilterNone:
		return "None"
	case FilterSub:
		return "Sub"
	case FilterUp:
		return "Up"
	case FilterAverage:
		return "Average"
	case FilterPaeth:
		return "Paeth"
	}
	return fmt.Sprintf("unknown(%d)", byte(f))
}

// Known reports whether f is one of the five filter types PNG defines.
func (f FilterType) Known() bool {
	return f <= FilterPaeth
}

// unfilter returns the raw bytes of a scanline, without its filter type
// byte. Only FilterNone is reconstructed; the other defined types are
// recognized and rejected by name.
func unfilter(row []byte, y int) ([]byte, error) {
	filter := FilterType(row[0])
	switch filter {
	case FilterNone:
		return row[1:], nil
	case FilterSub, FilterUp, FilterAverage, FilterPaeth:
		return nil, oops.New(ErrUnsupportedFilterType, "row %d uses filter type %d (%s), which is not implemented", y, byte(filter), filter)
	}
	return nil, oops.New(ErrUnsupportedFilterType, "row %d uses filter type %d, which is not defined", y, byte(filter))
}
