package visitor

// Visitor produces the elements of a single container, in the container's
// own order. The yield callback is called once per element.
// If the callback returns (false, nil), the iteration stops early.
// If the callback returns an error, the iteration stops and returns that
// error unchanged.
type Visitor func(yield func(element any) (bool, error)) error
