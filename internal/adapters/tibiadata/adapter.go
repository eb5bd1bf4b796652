package tibiadata

import (
	"net/http"
	"time"

	"guild-manager/internal/adapters/tibiadata/api"
	"guild-manager/internal/config"

	"github.com/patrickmn/go-cache"
)

const tibiaComBaseURL = "https://www.tibia.com"

type Adapter struct {
	client          *api.Client
	tibiaComClient  *http.Client
	tibiaComBaseURL string
	config          *config.Config
	detailCache     *cache.Cache
}

func NewAdapter(client *api.Client, cfg *config.Config) *Adapter {
	return &Adapter{
		client: client,
		config: cfg,
		tibiaComClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		tibiaComBaseURL: tibiaComBaseURL,
		detailCache:     cache.New(cfg.DetailCacheTTL, 2*cfg.DetailCacheTTL),
	}
}
