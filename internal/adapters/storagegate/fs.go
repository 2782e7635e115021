package storagegate

import (
	"context"
	"os"
	"path/filepath"
)

// FSGate resolves the storage-permission decision by probing the target
// directory for write access. On desktop platforms this stands in for
// the mobile permission dialog: the outcome is granted or denied, with
// no retry loop.
type FSGate struct {
	dir string
}

// NewFSGate creates a gate for the given output directory.
func NewFSGate(dir string) *FSGate {
	return &FSGate{dir: dir}
}

// Request returns whether the report may be written to the directory.
func (g *FSGate) Request(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	if err := os.MkdirAll(g.dir, 0o755); err != nil {
		return false, nil
	}

	probe, err := os.CreateTemp(g.dir, ".monitormate-probe-*")
	if err != nil {
		return false, nil
	}
	name := probe.Name()
	probe.Close()
	os.Remove(filepath.Clean(name))
	return true, nil
}
