package domain

import "fmt"

// Field selects one categorical dimension of a ClickEvent.
type Field int

const (
	Continent Field = iota
	Country
	State
	City
	Device
	Browser
	OS
)

// Fields lists every categorical dimension in summary order.
var Fields = []Field{Continent, Country, State, City, Device, Browser, OS}

func (f Field) String() string {
	switch f {
	case Continent:
		return "continent"
	case Country:
		return "country"
	case State:
		return "state"
	case City:
		return "city"
	case Device:
		return "device"
	case Browser:
		return "browser"
	case OS:
		return "os"
	default:
		return fmt.Sprintf("field(%d)", int(f))
	}
}

// Value reads the dimension from e. Unknown selectors yield an invalid Attr.
func (f Field) Value(e ClickEvent) Attr {
	switch f {
	case Continent:
		return e.Continent
	case Country:
		return e.Country
	case State:
		return e.State
	case City:
		return e.City
	case Device:
		return e.Device
	case Browser:
		return e.Browser
	case OS:
		return e.OS
	default:
		return Attr{}
	}
}

// ParseField maps a dimension name ("country", "os", ...) to its Field.
func ParseField(name string) (Field, error) {
	for _, f := range Fields {
		if f.String() == name {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown field %q", name)
}
