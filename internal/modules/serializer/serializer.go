package serializer

import "fmt"

// Error is the body of every non-2xx response.
type Error struct {
	Detail string `json:"detail"`
}

func Detail(format string, args ...any) Error {
	return Error{Detail: fmt.Sprintf(format, args...)}
}

// ParamErr wraps a binding or parsing failure.
func ParamErr(msg string, err error) Error {
	if msg == "" && err != nil {
		msg = err.Error()
	}
	return Error{Detail: msg}
}
