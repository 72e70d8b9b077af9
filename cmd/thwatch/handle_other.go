//go:build !windows

package main

import "errors"

var errWindowsOnly = errors.New("thwatch: attaching to a live Touhou process requires windows (th07/th08/th10 are 32-bit Windows executables)")

// winProcessHandle is a stub on non-Windows hosts: the binary still
// builds everywhere, but attaching fails with a clear error instead of
// a missing symbol.
type winProcessHandle struct{}

func openProcess(pid uint32) (*winProcessHandle, error) {
	return nil, errWindowsOnly
}

func (w *winProcessHandle) PID() uint32                           { return 0 }
func (w *winProcessHandle) IsRunning() bool                       { return false }
func (w *winProcessHandle) ReadAt(addr uintptr, buf []byte) error { return errWindowsOnly }
func (w *winProcessHandle) ReadPointer(addr uintptr) (uintptr, error) {
	return 0, errWindowsOnly
}
func (w *winProcessHandle) Close() error { return nil }
