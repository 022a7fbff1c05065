//go:build windows

package database

import (
	"context"
	"net"
	"strings"

	"github.com/Microsoft/go-winio"
)

func dialPipe(ctx context.Context, name string) (net.Conn, error) {
	if !strings.HasPrefix(name, `\\`) {
		name = `\\.\pipe\` + name
	}
	return winio.DialPipeContext(ctx, name)
}
