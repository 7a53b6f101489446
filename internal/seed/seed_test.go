package seed

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"dealflow-backend/internal/database"
	"dealflow-backend/internal/database/models"
	"dealflow-backend/internal/repository"
	"dealflow-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

const sampleYAML = `
team:
  - name: Ana
startups:
  - name: Acme
    status: paused
    projects:
      - name: Seed Round
      - name: Series A
investors:
  - name: North Fund
    tags: [seed, fintech]
    email: hi@north.example
`

// SeedTestSuite loads YAML seed data into the in-memory spreadsheet
type SeedTestSuite struct {
	testutils.StoreTestSuite
	loader *Loader
	ctx    context.Context
}

// SetupTest runs before each test
func (suite *SeedTestSuite) SetupTest() {
	suite.StoreTestSuite.SetupTest()
	suite.ctx = context.Background()
	repos := repository.New(suite.Store, suite.Cache, repository.WithClock(suite.Clock.Now), repository.WithIDGenerator(suite.NextID))
	suite.loader = NewLoader(repos)
}

func (suite *SeedTestSuite) writeData(files map[string]string) string {
	dir := suite.T().TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		suite.Require().NoError(os.MkdirAll(filepath.Dir(path), 0o755))
		suite.Require().NoError(os.WriteFile(path, []byte(content), 0o644))
	}
	return dir
}

// TestLoadDir tests merging of several files
func (suite *SeedTestSuite) TestLoadDir() {
	dir := suite.writeData(map[string]string{
		"crm.yaml":            sampleYAML,
		"more/investors.yaml": "investors:\n  - name: South Capital\n",
		"README.md":           "ignored",
	})

	file, err := LoadDir(dir)
	suite.Require().NoError(err)
	suite.Len(file.Team, 1)
	suite.Len(file.Startups, 1)
	suite.Len(file.Startups[0].Projects, 2)
	suite.Len(file.Investors, 2)
}

// TestLoadDir_Malformed tests that a broken file names its path
func (suite *SeedTestSuite) TestLoadDir_Malformed() {
	dir := suite.writeData(map[string]string{"bad.yaml": "team: [name: ["})

	_, err := LoadDir(dir)
	suite.Require().Error(err)
	suite.Contains(err.Error(), "bad.yaml")
}

// TestLoad tests creation and idempotence
func (suite *SeedTestSuite) TestLoad() {
	file, err := LoadDir(suite.writeData(map[string]string{"crm.yaml": sampleYAML}))
	suite.Require().NoError(err)

	summary, err := suite.loader.Load(suite.ctx, file)
	suite.Require().NoError(err)
	suite.Equal(map[string]int{"team": 1, "startups": 1, "projects": 2, "investors": 1}, summary.Created)

	startup := models.StartupFromRow(suite.Memory.Rows(database.TabStartups.Name)[1])
	suite.Equal("Acme", startup.StartupName)
	suite.Equal(models.StatusPaused, startup.Status)

	projects := suite.Memory.Rows(database.TabProjects.Name)
	suite.Require().Len(projects, 3)
	suite.Equal(startup.StartupID, models.ProjectFromRow(projects[1]).StartupID)
	suite.Equal(models.StatusActive, models.ProjectFromRow(projects[2]).Status)

	investor := models.InvestorFromRow(suite.Memory.Rows(database.TabInvestors.Name)[1])
	suite.Equal("seed;fintech", investor.Tags)

	suite.Store.Reset()
	summary, err = suite.loader.Load(suite.ctx, file)
	suite.Require().NoError(err)
	suite.Empty(summary.Created)
	suite.Equal(map[string]int{"team": 1, "startups": 1, "projects": 2, "investors": 1}, summary.Total)
	suite.Empty(suite.Store.Calls(testutils.OpAppend))
}

// TestLoad_DuplicateNames tests that a name repeated in the data is created once
func (suite *SeedTestSuite) TestLoad_DuplicateNames() {
	file := &File{Investors: []InvestorData{{Name: "North Fund"}, {Name: " north fund "}}}

	summary, err := suite.loader.Load(suite.ctx, file)
	suite.Require().NoError(err)
	suite.Equal(1, summary.Created["investors"])
	suite.Equal(2, summary.Total["investors"])
	suite.Len(suite.Memory.Rows(database.TabInvestors.Name), 2)
}

func TestSeedTestSuite(t *testing.T) {
	suite.Run(t, new(SeedTestSuite))
}
