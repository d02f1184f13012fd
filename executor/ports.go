package executor

import (
	"fmt"
	"net"
	"sync"
)

// RangeAllocator is the default PortAllocator: a mutex-guarded scan over a
// fixed host port range, probing each candidate with a bind before handing it
// out. Two concurrently launching containers on the same host never receive
// the same port.
type RangeAllocator struct {
	mu    sync.Mutex
	start int
	end   int
	next  int
	inUse map[int]bool
}

func NewRangeAllocator(start, end int) *RangeAllocator {
	return &RangeAllocator{
		start: start,
		end:   end,
		next:  start,
		inUse: make(map[int]bool),
	}
}

func (a *RangeAllocator) Allocate() (int, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	size := a.end - a.start + 1
	for i := 0; i < size; i++ {
		port := a.next
		a.next++
		if a.next > a.end {
			a.next = a.start
		}
		if a.inUse[port] {
			continue
		}
		l, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
		if err != nil {
			continue
		}
		l.Close()
		a.inUse[port] = true
		return port, nil
	}
	return 0, fmt.Errorf("no free ports in range %d-%d", a.start, a.end)
}

func (a *RangeAllocator) Release(port int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.inUse, port)
}
