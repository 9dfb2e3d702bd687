package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/peterbourgon/diskv/v3"

	"github.com/luxtra-app/luxtra/pkg/subscription"
	"github.com/luxtra-app/luxtra/pkg/task"
)

// Scopes are the fixed top-level keyspaces inside the database directory.
const (
	ScopeSubscriptions = "subscriptions"
	ScopeTasks         = "tasks"
	ScopeSettings      = "settings"
)

// Settings is the persisted preferences document. Runtime-only state (insight
// cache, UI flags) is deliberately not part of it.
type Settings struct {
	User          string                `json:"user,omitempty"`
	Language      string                `json:"language,omitempty"`
	Currency      subscription.Currency `json:"currency,omitempty"`
	Theme         string                `json:"theme,omitempty"`
	MonthlyBudget float64               `json:"monthlyBudget,omitempty"`
}

// Persistence defines the persistence contract for tracked records.
type Persistence interface {
	Subscriptions(ctx context.Context) []*subscription.Subscription
	Tasks(ctx context.Context) []*task.Task
	StoreSubscription(s *subscription.Subscription) error
	DeleteSubscription(id string) error
	StoreTask(t *task.Task) error
	DeleteTask(id string) error
	Settings() (Settings, error)
	StoreSettings(Settings) error
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) Subscriptions(ctx context.Context) []*subscription.Subscription {
	all := make([]*subscription.Subscription, 0)
	for key := range p.d.Keys(ctx.Done()) {
		scope, id := splitKey(key)
		if scope != ScopeSubscriptions {
			continue
		}
		val, err := p.d.Read(key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		s := &subscription.Subscription{}
		if err := json.Unmarshal(val, s); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		s.ID = id
		all = append(all, s)
	}
	sort.SliceStable(all, func(i, j int) bool {
		li, ri := all[i], all[j]
		if li.NextBillingDate.Equal(ri.NextBillingDate.Time) {
			return li.ID < ri.ID
		}
		return li.NextBillingDate.Before(ri.NextBillingDate.Time)
	})
	return all
}

func (p *persistence) Tasks(ctx context.Context) []*task.Task {
	all := make([]*task.Task, 0)
	for key := range p.d.Keys(ctx.Done()) {
		scope, id := splitKey(key)
		if scope != ScopeTasks {
			continue
		}
		val, err := p.d.Read(key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		t := &task.Task{}
		if err := json.Unmarshal(val, t); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		t.ID = id
		all = append(all, t)
	}
	sort.SliceStable(all, func(i, j int) bool {
		li, ri := all[i], all[j]
		if li.DueDate.Equal(ri.DueDate.Time) {
			return li.ID < ri.ID
		}
		return li.DueDate.Before(ri.DueDate.Time)
	})
	return all
}

func (p *persistence) StoreSubscription(s *subscription.Subscription) error {
	if s.ID == "" {
		s.ID = NewID()
	}
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return p.d.Write(joinKey(ScopeSubscriptions, s.ID), data)
}

func (p *persistence) DeleteSubscription(id string) error {
	return p.erase(joinKey(ScopeSubscriptions, id))
}

func (p *persistence) StoreTask(t *task.Task) error {
	if t.ID == "" {
		t.ID = NewID()
	}
	data, err := json.Marshal(t)
	if err != nil {
		return err
	}
	return p.d.Write(joinKey(ScopeTasks, t.ID), data)
}

func (p *persistence) DeleteTask(id string) error {
	return p.erase(joinKey(ScopeTasks, id))
}

func (p *persistence) erase(key string) error {
	if err := p.d.Erase(key); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return nil
}

const settingsFile = "settings.json"

func (p *persistence) settingsPath() string {
	return filepath.Join(p.basePath, settingsFile)
}

func (p *persistence) Settings() (Settings, error) {
	if p.basePath == "" {
		return Settings{}, errors.New("store: base path unknown")
	}
	data, err := os.ReadFile(p.settingsPath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Settings{Currency: subscription.DefaultCurrency}, nil
		}
		return Settings{}, err
	}
	s := Settings{}
	if err := json.Unmarshal(data, &s); err != nil {
		return Settings{}, err
	}
	if s.Currency == "" {
		s.Currency = subscription.DefaultCurrency
	}
	return s, nil
}

func (p *persistence) StoreSettings(s Settings) error {
	if p.basePath == "" {
		return errors.New("store: base path unknown")
	}
	if err := os.MkdirAll(p.basePath, 0o755); err != nil {
		return fmt.Errorf("store: ensure base path: %w", err)
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	path := p.settingsPath()
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// NewID mints a random record identifier. Uniqueness is the caller's concern;
// the store never checks for duplicates.
func NewID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
}

func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.Split(s, "-")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return fmt.Sprintf("%s-%s", strings.Join(pathKey.Path, "-"), pathKey.FileName)
}

// joinKey makes `scope-id`.
func joinKey(scope, id string) string {
	return fmt.Sprintf("%s-%s", scope, id)
}

func splitKey(key string) (scope, id string) {
	pk := keyToPathTransform(key)
	if len(pk.Path) == 0 {
		return "", pk.FileName
	}
	return pk.Path[0], pk.FileName
}
