package encode

import "fmt"

type (
	Field string

	UnknownMnemonicError struct {
		Field    Field
		Mnemonic string
	}

	AddressRangeError struct {
		Value uint64
	}
)

const (
	CompField Field = "comp"
	DestField Field = "dest"
	JumpField Field = "jump"
)

// Sentinel returns the placeholder written in place of an unknown field
// by the lenient encoder.
func (f Field) Sentinel() string {
	switch f {
	case CompField:
		return "CompERROR"
	case DestField:
		return "DesERROR"
	case JumpField:
		return "JMPERROR"
	default:
		return "ERROR"
	}
}

func (e *UnknownMnemonicError) Error() string {
	return fmt.Sprintf("unknown %v mnemonic: %q", e.Field, e.Mnemonic)
}

func (e *AddressRangeError) Error() string {
	return fmt.Sprintf("address out of range: %d > %d", e.Value, MaxAddress)
}
