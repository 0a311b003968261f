package antsy

var _ Enumerable = Development

// Enumerable is the interface implemented by types that can only be represented by enumerable, constant values.
//
// Fields of an Enumerable type are checked with the "enum" rule of package req.
type Enumerable interface {
	String() string
	Valid() error
}
