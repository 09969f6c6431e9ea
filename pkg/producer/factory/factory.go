package factory

import (
	"fmt"
	"time"

	"brandlaunch-be/internal/config"
	"brandlaunch-be/pkg/producer"
	"brandlaunch-be/pkg/producer/brandguide"
	"brandlaunch-be/pkg/producer/chatextract"
	"brandlaunch-be/pkg/producer/research"
	"brandlaunch-be/pkg/producer/webextract"
)

// Registry holds every configured producer keyed by name.
type Registry struct {
	producers map[string]producer.Producer
}

// NewRegistry wires the intelligence producers from config.
func NewRegistry(cfg config.ProducerConfig) *Registry {
	timeout := time.Duration(cfg.Timeout) * time.Second

	r := &Registry{producers: make(map[string]producer.Producer)}
	r.register(research.NewProvider(cfg.ResearchURL, cfg.ResearchKey, timeout))
	r.register(webextract.NewProvider(cfg.ExtractorURL, cfg.ExtractorKey, timeout))
	r.register(brandguide.NewProvider(cfg.BrandGuideURL, timeout))
	r.register(chatextract.NewProvider(cfg.ExtractorURL, cfg.ExtractorKey, timeout))
	return r
}

func (r *Registry) register(p producer.Producer) {
	r.producers[p.Name()] = p
}

func (r *Registry) Get(name string) (producer.Producer, error) {
	p, ok := r.producers[name]
	if !ok {
		return nil, fmt.Errorf("unknown producer: %s", name)
	}
	return p, nil
}
