//go:build windows

package main

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

const (
	processQueryInformation = 0x0400
	processVMRead           = 0x0010
	stillActive             = 259
)

// readProcessMemory is bound by hand: x/sys/windows wraps OpenProcess,
// CloseHandle and GetExitCodeProcess directly, but not ReadProcessMemory.
var (
	kernel32              = windows.NewLazySystemDLL("kernel32.dll")
	procReadProcessMemory = kernel32.NewProc("ReadProcessMemory")
)

// winProcessHandle implements memory.ProcessHandle over a real Windows
// process, opened with just enough access to read its memory.
type winProcessHandle struct {
	pid    uint32
	handle windows.Handle
}

func openProcess(pid uint32) (*winProcessHandle, error) {
	h, err := windows.OpenProcess(processQueryInformation|processVMRead, false, pid)
	if err != nil {
		return nil, fmt.Errorf("thwatch: opening process %d: %w", pid, err)
	}
	return &winProcessHandle{pid: pid, handle: h}, nil
}

func (w *winProcessHandle) PID() uint32 { return w.pid }

func (w *winProcessHandle) IsRunning() bool {
	var code uint32
	if err := windows.GetExitCodeProcess(w.handle, &code); err != nil {
		return false
	}
	return code == stillActive
}

func (w *winProcessHandle) ReadAt(addr uintptr, buf []byte) error {
	if len(buf) == 0 {
		return nil
	}
	var read uintptr
	ret, _, err := procReadProcessMemory.Call(
		uintptr(w.handle),
		addr,
		uintptr(unsafe.Pointer(&buf[0])),
		uintptr(len(buf)),
		uintptr(unsafe.Pointer(&read)),
	)
	if ret == 0 {
		return fmt.Errorf("thwatch: ReadProcessMemory at %#x: %w", addr, err)
	}
	if read != uintptr(len(buf)) {
		return fmt.Errorf("thwatch: ReadProcessMemory at %#x: short read (%d of %d bytes)", addr, read, len(buf))
	}
	return nil
}

func (w *winProcessHandle) ReadPointer(addr uintptr) (uintptr, error) {
	var buf [4]byte
	if err := w.ReadAt(addr, buf[:]); err != nil {
		return 0, err
	}
	return uintptr(buf[0]) | uintptr(buf[1])<<8 | uintptr(buf[2])<<16 | uintptr(buf[3])<<24, nil
}

func (w *winProcessHandle) Close() error {
	return windows.CloseHandle(w.handle)
}
