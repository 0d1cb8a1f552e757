package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// ServerURL is the base URL of the notes server.
	ServerURL string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientWorkers holds the client background job settings.
type ClientWorkers struct {
	// NoteRefreshInterval is how often the note list is reloaded.
	NoteRefreshInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from the
// same sources as [StructuredConfig].
type ClientConfig struct {
	// Adapter contains the server URL and timeout.
	Adapter ClientAdapter

	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view.
//
// It merges the same env/flag/JSON sources as [GetStructuredConfig] but maps
// only the fields relevant to the client runtime, so no server secrets are
// required to start the client.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			ServerURL:      cfg.Adapter.ServerURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Workers: ClientWorkers{
			NoteRefreshInterval: cfg.Workers.NoteRefreshInterval,
		},
	}

	if clientCfg.Adapter.ServerURL == "" {
		clientCfg.Adapter.ServerURL = DefaultServerURL
	}
	if clientCfg.Adapter.RequestTimeout == 0 {
		clientCfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if clientCfg.Workers.NoteRefreshInterval == 0 {
		clientCfg.Workers.NoteRefreshInterval = DefaultNoteRefreshInterval
	}

	return clientCfg, clientCfg.validate()
}
