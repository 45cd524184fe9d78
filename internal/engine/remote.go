package engine

import (
	"context"
	"fmt"

	"github.com/morisolt/facetkit/internal"
	"github.com/morisolt/facetkit/internal/infra"
	"github.com/morisolt/facetkit/internal/searchparams"
)

// RemoteEngine forwards the parameter value to an external search service
// that speaks the same Results shape.
type RemoteEngine struct {
	config     *internal.Config
	httpClient *infra.HttpClient
}

// NewRemoteEngine creates a RemoteEngine with the given config and
// initializes the HTTP client.
func NewRemoteEngine(config *internal.Config) *RemoteEngine {
	return &RemoteEngine{
		config:     config,
		httpClient: infra.NewHttpClient(),
	}
}

// NewRemoteEngineWithClient creates a RemoteEngine with the given config
// and HTTP client.
func NewRemoteEngineWithClient(config *internal.Config, httpClient *infra.HttpClient) *RemoteEngine {
	return &RemoteEngine{
		config:     config,
		httpClient: httpClient,
	}
}

func (e *RemoteEngine) Search(ctx context.Context, params searchparams.Params) (*Results, error) {
	url := fmt.Sprintf("%s/search", e.config.EngineUrl)

	var results Results
	err := e.httpClient.Post(
		ctx,
		infra.PostRequest{
			Request: infra.Request{
				Url: url,
			},
			Entity: params,
		},
		&results,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query remote engine: %w", err)
	}
	return &results, nil
}
