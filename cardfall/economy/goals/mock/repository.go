package mock

import (
	context "context"
	reflect "reflect"

	models "github.com/sayuri-dev/cardfall/cardfall/database/models"
	gomock "go.uber.org/mock/gomock"
)

// MockRepository is a mock of Repository interface.
type MockRepository struct {
	ctrl     *gomock.Controller
	recorder *MockRepositoryMockRecorder
	isgomock struct{}
}

// MockRepositoryMockRecorder is the mock recorder for MockRepository.
type MockRepositoryMockRecorder struct {
	mock *MockRepository
}

// NewMockRepository creates a new mock instance.
func NewMockRepository(ctrl *gomock.Controller) *MockRepository {
	mock := &MockRepository{ctrl: ctrl}
	mock.recorder = &MockRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockRepository) EXPECT() *MockRepositoryMockRecorder {
	return m.recorder
}

// Achievements mocks base method.
func (m *MockRepository) Achievements(ctx context.Context) ([]*models.Achievement, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Achievements", ctx)
	ret0, _ := ret[0].([]*models.Achievement)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Achievements indicates an expected call of Achievements.
func (mr *MockRepositoryMockRecorder) Achievements(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Achievements", reflect.TypeOf((*MockRepository)(nil).Achievements), ctx)
}

// DistinctRarities mocks base method.
func (m *MockRepository) DistinctRarities(ctx context.Context, userID string) (int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DistinctRarities", ctx, userID)
	ret0, _ := ret[0].(int)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// DistinctRarities indicates an expected call of DistinctRarities.
func (mr *MockRepositoryMockRecorder) DistinctRarities(ctx, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DistinctRarities", reflect.TypeOf((*MockRepository)(nil).DistinctRarities), ctx, userID)
}

// EarnedAchievements mocks base method.
func (m *MockRepository) EarnedAchievements(ctx context.Context, userID string) (map[string]bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "EarnedAchievements", ctx, userID)
	ret0, _ := ret[0].(map[string]bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// EarnedAchievements indicates an expected call of EarnedAchievements.
func (mr *MockRepositoryMockRecorder) EarnedAchievements(ctx, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "EarnedAchievements", reflect.TypeOf((*MockRepository)(nil).EarnedAchievements), ctx, userID)
}

// EarnedTitles mocks base method.
func (m *MockRepository) EarnedTitles(ctx context.Context, userID string) (map[string]bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "EarnedTitles", ctx, userID)
	ret0, _ := ret[0].(map[string]bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// EarnedTitles indicates an expected call of EarnedTitles.
func (mr *MockRepositoryMockRecorder) EarnedTitles(ctx, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "EarnedTitles", reflect.TypeOf((*MockRepository)(nil).EarnedTitles), ctx, userID)
}

// FriendCount mocks base method.
func (m *MockRepository) FriendCount(ctx context.Context, userID string) (int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FriendCount", ctx, userID)
	ret0, _ := ret[0].(int)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// FriendCount indicates an expected call of FriendCount.
func (mr *MockRepositoryMockRecorder) FriendCount(ctx, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FriendCount", reflect.TypeOf((*MockRepository)(nil).FriendCount), ctx, userID)
}

// GrantAchievement mocks base method.
func (m *MockRepository) GrantAchievement(ctx context.Context, userID, achievementID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GrantAchievement", ctx, userID, achievementID)
	ret0, _ := ret[0].(error)
	return ret0
}

// GrantAchievement indicates an expected call of GrantAchievement.
func (mr *MockRepositoryMockRecorder) GrantAchievement(ctx, userID, achievementID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GrantAchievement", reflect.TypeOf((*MockRepository)(nil).GrantAchievement), ctx, userID, achievementID)
}

// GrantTitle mocks base method.
func (m *MockRepository) GrantTitle(ctx context.Context, userID, titleID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GrantTitle", ctx, userID, titleID)
	ret0, _ := ret[0].(error)
	return ret0
}

// GrantTitle indicates an expected call of GrantTitle.
func (mr *MockRepositoryMockRecorder) GrantTitle(ctx, userID, titleID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GrantTitle", reflect.TypeOf((*MockRepository)(nil).GrantTitle), ctx, userID, titleID)
}

// HasRarity mocks base method.
func (m *MockRepository) HasRarity(ctx context.Context, userID, rarity string) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "HasRarity", ctx, userID, rarity)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// HasRarity indicates an expected call of HasRarity.
func (mr *MockRepositoryMockRecorder) HasRarity(ctx, userID, rarity any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "HasRarity", reflect.TypeOf((*MockRepository)(nil).HasRarity), ctx, userID, rarity)
}

// Missions mocks base method.
func (m *MockRepository) Missions(ctx context.Context) ([]*models.Mission, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Missions", ctx)
	ret0, _ := ret[0].([]*models.Mission)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Missions indicates an expected call of Missions.
func (mr *MockRepositoryMockRecorder) Missions(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Missions", reflect.TypeOf((*MockRepository)(nil).Missions), ctx)
}

// MissionsByType mocks base method.
func (m *MockRepository) MissionsByType(ctx context.Context, missionType string) ([]*models.Mission, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "MissionsByType", ctx, missionType)
	ret0, _ := ret[0].([]*models.Mission)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// MissionsByType indicates an expected call of MissionsByType.
func (mr *MockRepositoryMockRecorder) MissionsByType(ctx, missionType any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "MissionsByType", reflect.TypeOf((*MockRepository)(nil).MissionsByType), ctx, missionType)
}

// SaveUserMission mocks base method.
func (m *MockRepository) SaveUserMission(ctx context.Context, um *models.UserMission) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SaveUserMission", ctx, um)
	ret0, _ := ret[0].(error)
	return ret0
}

// SaveUserMission indicates an expected call of SaveUserMission.
func (mr *MockRepositoryMockRecorder) SaveUserMission(ctx, um any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SaveUserMission", reflect.TypeOf((*MockRepository)(nil).SaveUserMission), ctx, um)
}

// SetActiveTitle mocks base method.
func (m *MockRepository) SetActiveTitle(ctx context.Context, userID, titleID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetActiveTitle", ctx, userID, titleID)
	ret0, _ := ret[0].(error)
	return ret0
}

// SetActiveTitle indicates an expected call of SetActiveTitle.
func (mr *MockRepositoryMockRecorder) SetActiveTitle(ctx, userID, titleID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetActiveTitle", reflect.TypeOf((*MockRepository)(nil).SetActiveTitle), ctx, userID, titleID)
}

// Titles mocks base method.
func (m *MockRepository) Titles(ctx context.Context) ([]*models.Title, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Titles", ctx)
	ret0, _ := ret[0].([]*models.Title)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Titles indicates an expected call of Titles.
func (mr *MockRepositoryMockRecorder) Titles(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Titles", reflect.TypeOf((*MockRepository)(nil).Titles), ctx)
}

// User mocks base method.
func (m *MockRepository) User(ctx context.Context, userID string) (*models.User, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "User", ctx, userID)
	ret0, _ := ret[0].(*models.User)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// User indicates an expected call of User.
func (mr *MockRepositoryMockRecorder) User(ctx, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "User", reflect.TypeOf((*MockRepository)(nil).User), ctx, userID)
}

// UserMission mocks base method.
func (m *MockRepository) UserMission(ctx context.Context, userID, missionID string) (*models.UserMission, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UserMission", ctx, userID, missionID)
	ret0, _ := ret[0].(*models.UserMission)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UserMission indicates an expected call of UserMission.
func (mr *MockRepositoryMockRecorder) UserMission(ctx, userID, missionID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UserMission", reflect.TypeOf((*MockRepository)(nil).UserMission), ctx, userID, missionID)
}

// UserMissions mocks base method.
func (m *MockRepository) UserMissions(ctx context.Context, userID string) (map[string]*models.UserMission, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UserMissions", ctx, userID)
	ret0, _ := ret[0].(map[string]*models.UserMission)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UserMissions indicates an expected call of UserMissions.
func (mr *MockRepositoryMockRecorder) UserMissions(ctx, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UserMissions", reflect.TypeOf((*MockRepository)(nil).UserMissions), ctx, userID)
}
