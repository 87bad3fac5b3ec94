package logq

import (
	"bytes"
	"runtime"
	"strconv"
)

var goroutineSpace = []byte("goroutine ")

// goroutineID parses the current goroutine's id out of the runtime
// stack header ("goroutine 12 [running]:"). Only exception entries pay
// this cost.
func goroutineID() uint64 {
	var buf [64]byte
	b := buf[:runtime.Stack(buf[:], false)]
	b = bytes.TrimPrefix(b, goroutineSpace)
	i := bytes.IndexByte(b, ' ')
	if i < 0 {
		return 0
	}
	n, err := strconv.ParseUint(string(b[:i]), 10, 64)
	if err != nil {
		return 0
	}
	return n
}
