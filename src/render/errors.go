package render

import (
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/vulkan-go/vulkan"
)

type stackFrame struct {
	function string
	file     string
	line     int
}

func newStackFrame(pc uintptr) stackFrame {
	frame, _ := runtime.CallersFrames([]uintptr{pc}).Next()
	return stackFrame{function: frame.Function, file: frame.File, line: frame.Line}
}

func (f stackFrame) String() string {
	return fmt.Sprintf("%s (%s:%d)", f.function, filepath.Base(f.file), f.line)
}

// NewError converts a failed vulkan.Result into an error naming the caller.
// It returns nil for vulkan.Success.
func NewError(retVal vulkan.Result) error {
	if retVal != vulkan.Success {
		pc, _, _, ok := runtime.Caller(1)
		if !ok {
			return fmt.Errorf("vulkan error: %w (%d)", vulkan.Error(retVal), retVal)
		}
		frame := newStackFrame(pc)
		return fmt.Errorf("vulkan error: %w (%d) on %s",
			vulkan.Error(retVal), retVal, frame.String())
	}
	return nil
}

func IsError(retVal vulkan.Result) bool {
	return retVal != vulkan.Success
}

// CheckError turns a panic raised below it into *err. Use with defer.
func CheckError(err *error) {
	if v := recover(); v != nil {
		*err = fmt.Errorf("%+v", v)
	}
}
