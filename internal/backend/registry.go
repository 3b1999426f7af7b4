// Package backend holds the process-wide selection of the active
// differentiation strategy and its parameters.
//
// The registry is deliberately small: two setters and one resolver. A
// sampler that must not observe later reconfiguration snapshots the
// selection with Resolve at its own construction time and binds it to a
// handle; everything else resolves per call.
package backend

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Kind identifies a differentiation strategy. The set is closed: the
// dispatcher switches over it exhaustively.
type Kind int

const (
	// ForwardMode computes the gradient with chunked directional-derivative
	// sweeps.
	ForwardMode Kind = iota
	// ReverseTracked traces one evaluation over tracked parameters and
	// reads per-leaf gradients from the tape.
	ReverseTracked
	// ReversePullback traces one evaluation and seeds the resulting
	// pullback with a unit cotangent.
	ReversePullback
)

// String returns the configuration name of the kind.
func (k Kind) String() string {
	switch k {
	case ForwardMode:
		return "forward"
	case ReverseTracked:
		return "tracked"
	case ReversePullback:
		return "pullback"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// DefaultChunkSize is the number of simultaneous directional derivatives
// per forward-mode sweep when none was ever configured.
const DefaultChunkSize = 40

// Selection is the active strategy with its bound parameters.
// ChunkSize is meaningful for ForwardMode only.
type Selection struct {
	Kind      Kind
	ChunkSize int
}

// ErrConfiguration is returned for an unknown backend name or a
// non-positive chunk size. The registry is left unchanged in either case.
var ErrConfiguration = errors.New("invalid backend configuration")

var registry = struct {
	mu       sync.Mutex
	kind     Kind
	chunk    int
	chunkSet bool // true once a size was explicitly configured
	logger   *zap.Logger
}{
	kind:   ForwardMode,
	chunk:  DefaultChunkSize,
	logger: zap.NewNop(),
}

// SetLogger installs a logger for configuration changes.
// The default is a nop logger.
func SetLogger(l *zap.Logger) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.logger = l
}

// SetBackend selects the active strategy by name: "forward", "tracked" or
// "pullback". Any other name fails with ErrConfiguration.
//
// Switching into forward mode initializes the chunk size to
// DefaultChunkSize if none was ever explicitly configured; an explicitly
// configured size is never reset.
func SetBackend(name string) error {
	registry.mu.Lock()
	defer registry.mu.Unlock()

	var kind Kind
	switch name {
	case "forward":
		kind = ForwardMode
		if !registry.chunkSet {
			registry.chunk = DefaultChunkSize
		}
	case "tracked":
		kind = ReverseTracked
	case "pullback":
		kind = ReversePullback
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrConfiguration, name)
	}

	registry.kind = kind
	registry.logger.Debug("backend selected",
		zap.String("backend", name),
		zap.Int("chunk_size", registry.chunk))
	return nil
}

// SetChunkSize configures the forward-mode sweep width. A non-positive n
// fails with ErrConfiguration. Setting the current value again is a
// silent no-op.
func SetChunkSize(n int) error {
	registry.mu.Lock()
	defer registry.mu.Unlock()

	if n <= 0 {
		return fmt.Errorf("%w: chunk size must be positive, got %d", ErrConfiguration, n)
	}
	if n == registry.chunk {
		return nil
	}

	registry.chunk = n
	registry.chunkSet = true
	registry.logger.Debug("chunk size configured", zap.Int("chunk_size", n))
	return nil
}

// Resolve returns a snapshot of the active selection. Callers that must
// stay isolated from later reconfiguration keep the snapshot; everyone
// else calls Resolve per computation.
func Resolve() Selection {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	return Selection{Kind: registry.kind, ChunkSize: registry.chunk}
}

// reset restores the registry defaults. Test hook.
func reset() {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.kind = ForwardMode
	registry.chunk = DefaultChunkSize
	registry.chunkSet = false
	registry.logger = zap.NewNop()
}
