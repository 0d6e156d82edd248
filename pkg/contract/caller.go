package contract

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
)

// packageDir is the directory holding this package's sources.
// Frames from non-test files in it are skipped when resolving the call site.
var packageDir = func() string {
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		return ""
	}
	return filepath.Dir(file)
}()

const maxCallerDepth = 16

// callSite returns file:line of the first frame outside this package.
func callSite() string {
	pcs := make([]uintptr, maxCallerDepth)
	n := runtime.Callers(2, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		if !internalFrame(frame.File) {
			return fmt.Sprintf("%s:%d", filepath.Base(frame.File), frame.Line)
		}
		if !more {
			return ""
		}
	}
}

func internalFrame(file string) bool {
	if packageDir == "" || file == "" {
		return false
	}
	return filepath.Dir(file) == packageDir && !strings.HasSuffix(file, "_test.go")
}
