package migration

import (
	"context"
	"fmt"
	"time"

	"dealflow-backend/internal/database"
	"dealflow-backend/internal/database/models"
	apperrors "dealflow-backend/internal/errors"
	"dealflow-backend/internal/logger"
	"dealflow-backend/internal/repository"

	"golang.org/x/sync/errgroup"
)

// DefaultProjectName names the project synthesized for a startup without projects
const DefaultProjectName = "Default Project"

const defaultProjectNote = "Auto-created by migration"

// Options control a migration run
type Options struct {
	// DryRun computes the report without writing anything
	DryRun bool
}

// Report summarizes a migration run
type Report struct {
	DryRun            bool     `json:"dry_run" yaml:"dry_run"`
	StartupsScanned   int      `json:"startups_scanned" yaml:"startups_scanned"`
	ProjectsCreated   int      `json:"projects_created" yaml:"projects_created"`
	LinksMigrated     int      `json:"links_migrated" yaml:"links_migrated"`
	SkippedDuplicates int      `json:"skipped_duplicates" yaml:"skipped_duplicates"`
	SkippedUnresolved int      `json:"skipped_unresolved" yaml:"skipped_unresolved"`
	Notes             []string `json:"notes" yaml:"notes"`
}

// Option configures a Migrator
type Option func(*Migrator)

// WithClock overrides the time source
func WithClock(now func() time.Time) Option {
	return func(m *Migrator) { m.now = now }
}

// WithIDGenerator overrides record id generation
func WithIDGenerator(gen repository.IDGenerator) Option {
	return func(m *Migrator) { m.newID = gen }
}

// Migrator moves the legacy startup-scoped pipeline onto projects. It talks
// to the store directly so every run sees the current spreadsheet contents.
type Migrator struct {
	store database.Store
	now   func() time.Time
	newID repository.IDGenerator
}

// New creates a migrator over store
func New(store database.Store, opts ...Option) *Migrator {
	m := &Migrator{
		store: store,
		now:   time.Now,
		newID: repository.GenerateID,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

type snapshot struct {
	startups []models.Startup
	projects []models.Project
	legacy   []models.StartupInvestor
	links    []models.ProjectInvestor
}

// Run performs the migration. Running it again against the same spreadsheet
// writes nothing: startups keep their first project and existing
// (project, investor) pairs are skipped.
func (m *Migrator) Run(ctx context.Context, opts Options) (*Report, error) {
	log := logger.WithContext(ctx).WithField("dry_run", opts.DryRun)

	snap, err := m.load(ctx)
	if err != nil {
		return nil, err
	}
	log.WithFields(map[string]interface{}{
		"startups":          len(snap.startups),
		"projects":          len(snap.projects),
		"startup_investors": len(snap.legacy),
		"project_investors": len(snap.links),
	}).Info("loaded spreadsheet")

	report := &Report{DryRun: opts.DryRun, StartupsScanned: len(snap.startups), Notes: []string{}}
	now := m.now()

	// Representative project per startup: the first listed one
	projectFor := make(map[string]string, len(snap.startups))
	for _, p := range snap.projects {
		if _, ok := projectFor[p.StartupID]; !ok {
			projectFor[p.StartupID] = p.ProjectID
		}
	}

	var newProjects [][]string
	for _, s := range snap.startups {
		if _, ok := projectFor[s.StartupID]; ok {
			continue
		}
		project := models.Project{
			ProjectID:   m.newID(repository.PrefixProject),
			StartupID:   s.StartupID,
			ProjectName: DefaultProjectName,
			Status:      s.Status,
			CreatedAt:   models.FormatTimestamp(now),
			Notes:       defaultProjectNote,
		}
		if project.Status == "" {
			project.Status = models.StatusActive
		}
		projectFor[s.StartupID] = project.ProjectID
		newProjects = append(newProjects, project.Row())
	}
	report.ProjectsCreated = len(newProjects)

	seen := make(map[string]struct{}, len(snap.links))
	for _, l := range snap.links {
		seen[l.PairKey()] = struct{}{}
	}

	var newLinks [][]string
	for _, si := range snap.legacy {
		projectID, ok := projectFor[si.StartupID]
		if !ok {
			report.SkippedUnresolved++
			report.Notes = append(report.Notes, fmt.Sprintf("Skipped: startup_id=%q has no project mapping", si.StartupID))
			continue
		}

		link := models.ProjectInvestor{ProjectID: projectID, InvestorID: si.InvestorID}
		if _, dup := seen[link.PairKey()]; dup {
			report.SkippedDuplicates++
			continue
		}
		seen[link.PairKey()] = struct{}{}

		mapping := MapStage(si.Stage)
		if !mapping.Mapped {
			report.Notes = append(report.Notes, mapping.Note)
		}

		link.LinkID = m.newID(repository.PrefixProjectInvestor)
		link.Stage = mapping.Stage
		link.LastUpdate = si.LastUpdate
		if link.LastUpdate == "" {
			link.LastUpdate = models.FormatDate(now)
		}
		link.NextAction = si.NextAction
		link.Notes = annotate(si.Notes, mapping.Note)
		newLinks = append(newLinks, link.Row())
	}
	report.LinksMigrated = len(newLinks)

	if opts.DryRun {
		log.Info("dry run, nothing written")
		return report, nil
	}

	if len(newProjects) > 0 {
		if err := m.store.Append(ctx, database.TabProjects.Name, database.TabProjects.AppendRange(), newProjects); err != nil {
			return report, fmt.Errorf("failed to create default projects: %w", err)
		}
		log.WithField("count", len(newProjects)).Info("created default projects")
	}
	if len(newLinks) > 0 {
		if err := m.store.Append(ctx, database.TabProjectInvestors.Name, database.TabProjectInvestors.AppendRange(), newLinks); err != nil {
			return report, fmt.Errorf("failed to migrate investor links: %w", err)
		}
		log.WithField("count", len(newLinks)).Info("migrated investor links")
	}
	return report, nil
}

// load reads the four tabs involved. A missing tab aborts the run.
func (m *Migrator) load(ctx context.Context) (*snapshot, error) {
	snap := &snapshot{}
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		snap.startups, err = readTab(ctx, m.store, database.TabStartups, models.StartupFromRow, func(s models.Startup) string { return s.StartupID })
		return err
	})
	g.Go(func() (err error) {
		snap.projects, err = readTab(ctx, m.store, database.TabProjects, models.ProjectFromRow, func(p models.Project) string { return p.ProjectID })
		return err
	})
	g.Go(func() (err error) {
		snap.legacy, err = readTab(ctx, m.store, database.TabStartupInvestors, models.StartupInvestorFromRow, func(l models.StartupInvestor) string { return l.LinkID })
		return err
	})
	g.Go(func() (err error) {
		snap.links, err = readTab(ctx, m.store, database.TabProjectInvestors, models.ProjectInvestorFromRow, func(l models.ProjectInvestor) string { return l.LinkID })
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return snap, nil
}

func readTab[T any](ctx context.Context, store database.Store, tab database.Tab, decode func([]string) T, key func(T) string) ([]T, error) {
	rows, err := store.Read(ctx, tab.Name, tab.DataRange())
	if err != nil {
		if apperrors.IsTabNotFound(err) {
			return nil, fmt.Errorf("create the %s tab with its header row before migrating: %w", tab.Name, err)
		}
		return nil, fmt.Errorf("failed to read %s: %w", tab.Name, err)
	}

	records := make([]T, 0, len(rows))
	for _, row := range rows {
		record := decode(row)
		if key(record) == "" {
			continue
		}
		records = append(records, record)
	}
	return records, nil
}
