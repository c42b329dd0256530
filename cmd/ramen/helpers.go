// Shared helpers for ramen CLI commands.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/mesh-intelligence/ramenreality/internal/compass"
	"github.com/mesh-intelligence/ramenreality/internal/geocode"
	"github.com/mesh-intelligence/ramenreality/internal/geoloc"
	"github.com/mesh-intelligence/ramenreality/internal/search"
	"github.com/mesh-intelligence/ramenreality/internal/session"
	"github.com/mesh-intelligence/ramenreality/internal/store"
	"github.com/mesh-intelligence/ramenreality/pkg/types"
)

// attachStore resolves the data directory, creates a store, and attaches
// it, seeding demo data on first run. The caller must defer st.Detach().
func attachStore() (*store.Store, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	st := store.NewStore()
	if err := st.Attach(types.Config{
		DataDir:        dataDir,
		AcceptLanguage: cfg.AcceptLanguage,
	}); err != nil {
		return nil, fmt.Errorf("attach store: %w", err)
	}
	return st, nil
}

// newSession builds a session over an attached store with the configured
// collaborators.
func newSession(st *store.Store) *session.Session {
	geocodeOpts := []geocode.Option{
		geocode.WithAcceptLanguage(cfg.AcceptLanguage),
	}
	if cfg.SearchURL != "" {
		geocodeOpts = append(geocodeOpts, geocode.WithBaseURL(cfg.SearchURL))
	}
	client := geocode.NewClient(geocodeOpts...)

	resolver := search.NewResolver(client, logger)
	engine := compass.NewEngine()
	locator := geoloc.NewStaticSource(
		types.Location{Lat: cfg.HomeLat, Lng: cfg.HomeLng},
		cfg.HomeSet,
	)
	return session.New(st, resolver, engine, locator, logger)
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// ratingLabel renders a per-shop average rating, or "New" for an unrated
// shop.
func ratingLabel(avg *float64) string {
	if avg == nil {
		return "New"
	}
	return fmt.Sprintf("%.1f", *avg)
}
