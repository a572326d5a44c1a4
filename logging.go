package compactstr

import (
	"go.uber.org/zap"

	"github.com/foldwire/compactstr/internal/repr"
)

// SetLogger installs a logger that the allocator shim uses to report
// allocation, reallocation, free, and allocation-failure events. Passing nil (the
// default) disables logging entirely at no runtime cost.
func SetLogger(l *zap.Logger) { repr.SetLogger(l) }
