package repr

/*
#include <stdlib.h>
#include <string.h>
*/
import "C"
import (
	"unsafe"

	"go.uber.org/zap"
)

// logger receives optional diagnostics from the allocator shim. It is nil
// by default, so nothing pays for logging on the hot path unless a caller
// opts in through SetLogger.
var logger *zap.Logger

// SetLogger installs a logger for allocator diagnostics (allocation,
// reallocation, free, and allocation failure events). Passing nil
// disables logging.
func SetLogger(l *zap.Logger) { logger = l }

// callocAlloc requests n bytes from the C heap. It never returns a nil
// pointer paired with a nil error: on failure it returns a *ReserveError
// and a nil pointer, exactly mirroring malloc's own NULL-on-failure
// contract, just turned into a Go error so callers don't have to compare
// against a sentinel pointer value.
func callocAlloc(n uint64) (unsafe.Pointer, error) {
	if n == 0 {
		// malloc(0) is implementation-defined; give callers a
		// distinguishable non-null handle they can still free.
		n = 1
	}
	p := C.malloc(C.size_t(n))
	if p == nil {
		if logger != nil {
			logger.Warn("repr: allocation failed", zap.Uint64("requested", n))
		}
		return nil, &ReserveError{Requested: n, Reason: "malloc returned NULL"}
	}
	if logger != nil {
		logger.Debug("repr: allocated", zap.Uint64("size", n))
	}
	return p, nil
}

// callocRealloc resizes an existing C allocation. On failure the original
// allocation is left untouched (matching realloc's own contract), so the
// caller's Repr is still valid and its observable state is unchanged.
func callocRealloc(p unsafe.Pointer, n uint64) (unsafe.Pointer, error) {
	if n == 0 {
		n = 1
	}
	np := C.realloc(p, C.size_t(n))
	if np == nil {
		if logger != nil {
			logger.Warn("repr: reallocation failed", zap.Uint64("requested", n))
		}
		return nil, &ReserveError{Requested: n, Reason: "realloc returned NULL"}
	}
	if logger != nil {
		logger.Debug("repr: reallocated", zap.Uint64("size", n))
	}
	return np, nil
}

// callocFree releases a C allocation obtained from callocAlloc/callocRealloc.
func callocFree(p unsafe.Pointer) {
	if p == nil {
		return
	}
	C.free(p)
	if logger != nil {
		logger.Debug("repr: freed")
	}
}

// callocCopy copies n bytes from src into the C allocation at dst.
func callocCopy(dst, src unsafe.Pointer, n uint64) {
	if n == 0 {
		return
	}
	C.memmove(dst, src, C.size_t(n))
}
