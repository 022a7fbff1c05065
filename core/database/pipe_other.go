//go:build !windows

package database

import (
	"context"
	"fmt"
	"net"
)

func dialPipe(_ context.Context, name string) (net.Conn, error) {
	return nil, fmt.Errorf("failed to dial pipe %q: named pipes are only supported on windows", name)
}
