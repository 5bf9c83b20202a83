package libfw

import "fmt"

type Err struct {
	Message string
}

func (e *Err) Error() string {
	return e.Message
}

func NewErr(format string, v ...interface{}) error {
	return &Err{
		Message: fmt.Sprintf(format, v...),
	}
}
