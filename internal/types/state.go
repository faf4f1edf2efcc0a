package types

// ViewStatus is the render state of a chart view.
type ViewStatus string

const (
	ViewLoading ViewStatus = "LOADING"
	ViewData    ViewStatus = "DATA"
	ViewEmpty   ViewStatus = "EMPTY"
	ViewError   ViewStatus = "ERROR"
)

func (s ViewStatus) String() string {
	return string(s)
}

// ErrorKind separates remote failures from everything else in a view in ERROR state.
type ErrorKind string

const (
	ErrorKindRpc     ErrorKind = "rpc"
	ErrorKindGeneric ErrorKind = "generic"
)

// ErrorKindOf classifies err for rendering.
func ErrorKindOf(err error) ErrorKind {
	if IsRpcError(err) {
		return ErrorKindRpc
	}
	return ErrorKindGeneric
}
