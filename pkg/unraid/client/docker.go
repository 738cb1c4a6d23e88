package client

import (
	"context"

	"github.com/unraid-tools/unraid-cli/models"
)

const containersQuery = `query GetDockerContainers {
  docker {
    containers {
      id
      names
      image
      state
      status
      ports {
        ip
        privatePort
        publicPort
        type
      }
    }
  }
}`

const startMutation = `mutation StartContainer($id: PrefixedID!) {
  docker {
    start(id: $id) {
      id
      state
    }
  }
}`

const stopMutation = `mutation StopContainer($id: PrefixedID!) {
  docker {
    stop(id: $id) {
      id
      state
    }
  }
}`

const updateMutation = `mutation UpdateContainer($id: PrefixedID!) {
  docker {
    update(id: $id) {
      id
      state
    }
  }
}`

// Containers fetches the full container list.
func (c *Client) Containers(ctx context.Context) ([]models.Container, error) {
	var resp struct {
		Docker struct {
			Containers []models.Container `json:"containers"`
		} `json:"docker"`
	}
	if err := c.Execute(ctx, containersQuery, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Docker.Containers, nil
}

// StartContainer starts the container with the given id.
func (c *Client) StartContainer(ctx context.Context, id string) error {
	return c.Execute(ctx, startMutation, map[string]any{"id": id}, nil)
}

// StopContainer stops the container with the given id.
func (c *Client) StopContainer(ctx context.Context, id string) error {
	return c.Execute(ctx, stopMutation, map[string]any{"id": id}, nil)
}

// UpdateContainer pulls the latest image for the container and
// recreates it.
func (c *Client) UpdateContainer(ctx context.Context, id string) error {
	return c.Execute(ctx, updateMutation, map[string]any{"id": id}, nil)
}

// RestartContainer stops the container and starts it again with the
// same id. The two mutations are sequential and not atomic: when the
// stop succeeds but the start fails, the container is left stopped and
// the start error is returned as-is. No rollback, no retry.
func (c *Client) RestartContainer(ctx context.Context, id string) error {
	if err := c.StopContainer(ctx, id); err != nil {
		return err
	}
	return c.StartContainer(ctx, id)
}

// ResolveContainerID finds the container whose alias list matches a
// user-entered name and returns its id. Containers are scanned in the
// order the server returned them; the first match wins.
func ResolveContainerID(containers []models.Container, name string) (string, error) {
	for _, c := range containers {
		if c.HasName(name) {
			return c.ID, nil
		}
	}
	return "", &ContainerNotFoundError{Name: name}
}
