package logger

import (
	"fmt"
	"sync"
)

var warned sync.Map

// WarnOnce logs a warning the first time a given message is seen in this process.
func WarnOnce(msg string, args ...any) {
	line := fmt.Sprintf(msg, args...)
	if _, loaded := warned.LoadOrStore(line, struct{}{}); loaded {
		return
	}
	std.Warn(line)
}
