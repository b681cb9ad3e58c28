//go:build integration

package testutil

import (
	"context"
	"fmt"
	"time"

	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// RedisContainer — Redis для проверки кэша отчётов.
type RedisContainer struct {
	Container tc.Container
	Addr      string // host:port
}

// StartRedisTC — поднимает redis:7-alpine без пароля.
func StartRedisTC(ctx context.Context) (*RedisContainer, StopFunc, error) {
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:          "redis:7-alpine",
			ExposedPorts:   []string{"6379/tcp"},
			WaitingFor:     wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
			LifecycleHooks: []tc.ContainerLifecycleHooks{lifecycleLog(tcLogger)},
		},
		Started: true,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("run redis: %w", err)
	}

	addr, err := c.PortEndpoint(ctx, "6379/tcp", "")
	if err != nil {
		_ = tc.TerminateContainer(c)
		return nil, nil, fmt.Errorf("redis endpoint: %w", err)
	}

	stop := func(context.Context) error { return tc.TerminateContainer(c) }
	return &RedisContainer{Container: c, Addr: addr}, stop, nil
}
