package cmd

import (
	"context"
	"fmt"

	"github.com/som23ya/domestika-creative-assistant-launchpad/internal/app"
	"github.com/som23ya/domestika-creative-assistant-launchpad/internal/assist"
	"github.com/som23ya/domestika-creative-assistant-launchpad/internal/catalog"
	"github.com/som23ya/domestika-creative-assistant-launchpad/internal/config"
	"github.com/som23ya/domestika-creative-assistant-launchpad/internal/feedback"
	"github.com/som23ya/domestika-creative-assistant-launchpad/internal/identity"
	"github.com/som23ya/domestika-creative-assistant-launchpad/internal/ledger"
	"github.com/som23ya/domestika-creative-assistant-launchpad/internal/store"
	"github.com/som23ya/domestika-creative-assistant-launchpad/internal/suggest"
	"github.com/som23ya/domestika-creative-assistant-launchpad/internal/uploads"
	"github.com/spf13/cobra"
)

// services bundles everything a command needs to serve a request.
type services struct {
	cfg      *config.Config
	store    *store.Store
	assist   *assist.Service
	ranker   *suggest.Ranker
	ledger   *ledger.Ledger
	identity *identity.Manager
	uploads  *uploads.Store
}

func (s *services) Close() error {
	return s.store.Close()
}

// buildServices loads config, opens the store and wires the domain
// services used by both the TUI and the one-shot commands.
func buildServices(cmd *cobra.Command) (*services, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	dbPath, err := resolveDBPath(cmd, cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	cat := catalog.Default()
	if cfg.CatalogPath != "" {
		cat, err = catalog.Load(cfg.CatalogPath)
		if err != nil {
			st.Close()
			return nil, fmt.Errorf("load catalog: %w", err)
		}
	}

	uploadsDir := cfg.UploadsDir
	if uploadsDir == "" {
		uploadsDir, err = uploads.DefaultDir()
		if err != nil {
			st.Close()
			return nil, fmt.Errorf("resolve uploads dir: %w", err)
		}
	}

	ident := identity.NewManager(cmd.Context(), st.UserRepo())
	ldg := ledger.New(st.ActivityRepo(), ident)

	svc := assist.NewService(cat, catalog.DefaultCourseIndex(), feedback.NewClassifier(), cfg.AssistConfig())

	return &services{
		cfg:      cfg,
		store:    st,
		assist:   svc,
		ranker:   suggest.New(cat),
		ledger:   ldg,
		identity: ident,
		uploads:  uploads.NewStore(uploadsDir),
	}, nil
}

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	svcs, err := buildServices(cmd)
	if err != nil {
		return err
	}
	defer svcs.Close()

	return app.Run(app.Options{
		Assist:   svcs.assist,
		Ranker:   svcs.ranker,
		Ledger:   svcs.ledger,
		Identity: svcs.identity,
		Uploads:  svcs.uploads,
		Config:   svcs.cfg,
	})
}

// record writes an activity and prints the earned-points line.
func record(ctx context.Context, svcs *services, kind ledger.Kind, detail map[string]any) error {
	pts, err := svcs.ledger.Record(ctx, kind, detail)
	if err != nil {
		return fmt.Errorf("record activity: %w", err)
	}
	if pts > 0 {
		fmt.Printf("+%d pts · %s\n", pts, kind.EarnedMessage())
	}
	return nil
}
