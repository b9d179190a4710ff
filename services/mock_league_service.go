package services

import (
	"github.com/stretchr/testify/mock"
	"ycfl-league/models"
)

var (
	_ LeagueServiceInterface = (*LeagueStore)(nil)
	_ LeagueServiceInterface = (*MockLeagueService)(nil)
)

// MockLeagueService is a testify mock of LeagueServiceInterface for controller tests.
type MockLeagueService struct {
	mock.Mock
}

func (m *MockLeagueService) SubmitRegistration(reg models.Registration) (models.Player, error) {
	args := m.Called(reg)
	return args.Get(0).(models.Player), args.Error(1)
}

func (m *MockLeagueService) Approve(playerID string) error {
	return m.Called(playerID).Error(0)
}

func (m *MockLeagueService) Reject(playerID string) error {
	return m.Called(playerID).Error(0)
}

func (m *MockLeagueService) Delete(playerID string) error {
	return m.Called(playerID).Error(0)
}

func (m *MockLeagueService) AssignToTeam(playerID, teamID string) error {
	return m.Called(playerID, teamID).Error(0)
}

func (m *MockLeagueService) ToggleFeatured(playerID string) error {
	return m.Called(playerID).Error(0)
}

func (m *MockLeagueService) UpdateTeamField(teamID, field, value string) error {
	return m.Called(teamID, field, value).Error(0)
}

func (m *MockLeagueService) Player(playerID string) (models.Player, error) {
	args := m.Called(playerID)
	return args.Get(0).(models.Player), args.Error(1)
}

func (m *MockLeagueService) Players(filter PlayerFilter) []models.Player {
	return m.Called(filter).Get(0).([]models.Player)
}

func (m *MockLeagueService) Team(teamID string) (models.Team, error) {
	args := m.Called(teamID)
	return args.Get(0).(models.Team), args.Error(1)
}

func (m *MockLeagueService) Teams() []models.Team {
	return m.Called().Get(0).([]models.Team)
}

func (m *MockLeagueService) Standings() []models.Team {
	return m.Called().Get(0).([]models.Team)
}

func (m *MockLeagueService) Summary() models.LeagueSummary {
	return m.Called().Get(0).(models.LeagueSummary)
}

func (m *MockLeagueService) Gallery() []models.GalleryImage {
	return m.Called().Get(0).([]models.GalleryImage)
}

func (m *MockLeagueService) AddImage(url, caption string) models.GalleryImage {
	return m.Called(url, caption).Get(0).(models.GalleryImage)
}

func (m *MockLeagueService) DeleteImage(imageID string) error {
	return m.Called(imageID).Error(0)
}

func (m *MockLeagueService) Reset() {
	m.Called()
}
