package seed

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"dealflow-backend/internal/database/models"
	"dealflow-backend/internal/logger"
	"dealflow-backend/internal/repository"

	"gopkg.in/yaml.v3"
)

// File is the layout of one seed YAML file. A data directory may split the
// records over several files; they are merged in walk order.
type File struct {
	Team      []TeamMemberData `yaml:"team"`
	Startups  []StartupData    `yaml:"startups"`
	Investors []InvestorData   `yaml:"investors"`
}

type TeamMemberData struct {
	Name string `yaml:"name"`
}

type StartupData struct {
	Name              string        `yaml:"name"`
	Status            string        `yaml:"status"`
	PitchDeckURL      string        `yaml:"pitch_deck_url"`
	DataRoomURL       string        `yaml:"data_room_url"`
	PLURL             string        `yaml:"pl_url"`
	InvestmentMemoURL string        `yaml:"investment_memo_url"`
	Notes             string        `yaml:"notes"`
	Projects          []ProjectData `yaml:"projects"`
}

type ProjectData struct {
	Name   string `yaml:"name"`
	Status string `yaml:"status"`
	Notes  string `yaml:"notes"`
}

type InvestorData struct {
	Name     string   `yaml:"name"`
	Tags     []string `yaml:"tags"`
	Email    string   `yaml:"email"`
	LinkedIn string   `yaml:"linkedin"`
	Notes    string   `yaml:"notes"`
}

// Summary counts created and total records per collection
type Summary struct {
	Created map[string]int
	Total   map[string]int
}

func (s *Summary) add(collection string, created bool) {
	s.Total[collection]++
	if created {
		s.Created[collection]++
	}
}

// LoadDir reads every *.yaml file below dataDir
func LoadDir(dataDir string) (*File, error) {
	merged := &File{}
	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".yaml") {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		var file File
		if err := yaml.Unmarshal(data, &file); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		merged.Team = append(merged.Team, file.Team...)
		merged.Startups = append(merged.Startups, file.Startups...)
		merged.Investors = append(merged.Investors, file.Investors...)
		return nil
	})
	return merged, err
}

// Loader writes seed records through the repositories. Records are matched
// by name, case-insensitively, so loading the same data twice creates nothing.
type Loader struct {
	repos *repository.Repositories
}

// NewLoader creates a new seed loader
func NewLoader(repos *repository.Repositories) *Loader {
	return &Loader{repos: repos}
}

// Load creates the records of file that do not exist yet
func (l *Loader) Load(ctx context.Context, file *File) (*Summary, error) {
	summary := &Summary{Created: map[string]int{}, Total: map[string]int{}}

	members, err := l.repos.Team.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list team: %w", err)
	}
	for _, data := range file.Team {
		_, created, err := findOrCreate(ctx, &members, func(m models.TeamMember) string { return m.Name },
			&models.TeamMember{Name: data.Name}, l.repos.Team.Create)
		if err != nil {
			return nil, fmt.Errorf("failed to create team member %s: %w", data.Name, err)
		}
		summary.add("team", created)
	}

	startups, err := l.repos.Startups.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list startups: %w", err)
	}
	projects, err := l.repos.Projects.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	for _, data := range file.Startups {
		startup := &models.Startup{
			StartupName:       data.Name,
			Status:            models.Status(data.Status),
			PitchDeckURL:      data.PitchDeckURL,
			DataRoomURL:       data.DataRoomURL,
			PLURL:             data.PLURL,
			InvestmentMemoURL: data.InvestmentMemoURL,
			Notes:             data.Notes,
		}
		startup, created, err := findOrCreate(ctx, &startups, func(s models.Startup) string { return s.StartupName }, startup, l.repos.Startups.Create)
		if err != nil {
			return nil, fmt.Errorf("failed to create startup %s: %w", data.Name, err)
		}
		summary.add("startups", created)

		owned := make([]models.Project, 0, len(projects))
		for _, p := range projects {
			if p.StartupID == startup.StartupID {
				owned = append(owned, p)
			}
		}
		for _, pd := range data.Projects {
			project := &models.Project{
				StartupID:   startup.StartupID,
				ProjectName: pd.Name,
				Status:      models.Status(pd.Status),
				Notes:       pd.Notes,
			}
			_, created, err := findOrCreate(ctx, &owned, func(p models.Project) string { return p.ProjectName }, project, l.repos.Projects.Create)
			if err != nil {
				return nil, fmt.Errorf("failed to create project %s/%s: %w", data.Name, pd.Name, err)
			}
			summary.add("projects", created)
		}
	}

	investors, err := l.repos.Investors.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list investors: %w", err)
	}
	for _, data := range file.Investors {
		investor := &models.Investor{
			InvestorName: data.Name,
			Tags:         models.JoinTags(data.Tags),
			Email:        data.Email,
			LinkedIn:     data.LinkedIn,
			Notes:        data.Notes,
		}
		_, created, err := findOrCreate(ctx, &investors, func(i models.Investor) string { return i.InvestorName }, investor, l.repos.Investors.Create)
		if err != nil {
			return nil, fmt.Errorf("failed to create investor %s: %w", data.Name, err)
		}
		summary.add("investors", created)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"created": summary.Created,
		"total":   summary.Total,
	}).Info("seed data loaded")
	return summary, nil
}

// findOrCreate returns the record of existing whose name matches record's,
// creating and remembering record when there is none.
func findOrCreate[T any](ctx context.Context, existing *[]T, name func(T) string, record *T, create func(context.Context, *T) error) (*T, bool, error) {
	want := strings.TrimSpace(name(*record))
	for i := range *existing {
		if strings.EqualFold(strings.TrimSpace(name((*existing)[i])), want) {
			return &(*existing)[i], false, nil
		}
	}
	if err := create(ctx, record); err != nil {
		return nil, false, err
	}
	*existing = append(*existing, *record)
	return record, true, nil
}
