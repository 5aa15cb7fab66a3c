package detect

// Lookup is the platform registry capability. Implementations return the
// string value stored at keyPath/valueName, or an error when the key is
// absent or the platform has no registry. Errors are advisory: detection
// treats them as "not installed".
type Lookup interface {
	StringValue(keyPath, valueName string) (string, error)
}

// LookupFunc adapts a function to the Lookup interface.
type LookupFunc func(keyPath, valueName string) (string, error)

func (f LookupFunc) StringValue(keyPath, valueName string) (string, error) {
	return f(keyPath, valueName)
}
