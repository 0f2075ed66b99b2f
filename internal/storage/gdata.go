package storage

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const highScoreObject = "highscores"

// highScoreRecord is the YAML payload saved per key.
type highScoreRecord struct {
	Score     int       `yaml:"score"`
	UpdatedAt time.Time `yaml:"updated_at"`
}

// GDataStore keeps high scores in the per-user application data
// directory managed by gdata. It has no score history.
type GDataStore struct {
	manager *gdata.Manager
	log     *log.Logger
}

// OpenGData opens the gdata manager for appName.
func OpenGData(appName string, logger *log.Logger) (*GDataStore, error) {
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open gdata: %w", err)
	}
	return &GDataStore{manager: manager, log: logger}, nil
}

// Load returns the stored score for key. A missing key is not an error.
func (g *GDataStore) Load(key string) (int, error) {
	if !g.manager.ObjectPropExists(highScoreObject, key) {
		return 0, nil
	}
	data, err := g.manager.LoadObjectProp(highScoreObject, key)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot load %s: %w", key, err)
	}
	var rec highScoreRecord
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return 0, fmt.Errorf("storage: cannot decode %s: %w", key, err)
	}
	return rec.Score, nil
}

// Save writes score under key.
func (g *GDataStore) Save(key string, score int) error {
	data, err := yaml.Marshal(highScoreRecord{Score: score, UpdatedAt: time.Now().UTC()})
	if err != nil {
		return fmt.Errorf("storage: cannot encode %s: %w", key, err)
	}
	if err := g.manager.SaveObjectProp(highScoreObject, key, data); err != nil {
		return fmt.Errorf("storage: cannot save %s: %w", key, err)
	}
	return nil
}

// Get returns the stored score for key, or 0 on any failure.
func (g *GDataStore) Get(key string) int {
	v, err := g.Load(key)
	if err != nil {
		if g.log != nil {
			g.log.Warn("high score read failed", "key", key, "err", err)
		}
		return 0
	}
	return v
}

// Set stores score under key, logging failures.
func (g *GDataStore) Set(key string, score int) {
	if err := g.Save(key, score); err != nil && g.log != nil {
		g.log.Warn("high score write failed", "key", key, "err", err)
	}
}
