package probe

import (
	"context"
	"fmt"
	"os"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/client"
)

const dockerSocket = "/var/run/docker.sock"

// ContainerStats counts the containers known to the local Docker daemon.
type ContainerStats struct {
	Running int
	Total   int
}

// DockerAvailable reports whether the local Docker daemon socket exists.
func DockerAvailable() bool {
	_, err := os.Stat(dockerSocket)
	return err == nil
}

// Containers asks the local Docker daemon for its container list and
// tallies running versus total.
func Containers() (ContainerStats, error) {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return ContainerStats{}, fmt.Errorf("docker client error: %w", err)
	}
	defer cli.Close()

	ctx := context.Background()
	containerList, err := cli.ContainerList(ctx, container.ListOptions{All: true})
	if err != nil {
		return ContainerStats{}, fmt.Errorf("docker list error: %w", err)
	}

	stats := ContainerStats{Total: len(containerList)}
	for _, c := range containerList {
		if c.State == "running" {
			stats.Running++
		}
	}
	return stats, nil
}
