package taskservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/zearn/internal/domain"
	"github.com/GlebRadaev/zearn/internal/verify"
)

var fixedNow = time.Date(2024, 12, 9, 15, 30, 0, 0, time.UTC)

const (
	credTaskID    = "6f1a2c3e-0001-4a5b-9c1d-000000000001"
	specialTaskID = "6f1a2c3e-0003-4a5b-9c1d-000000000003"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockLedger, *MockGate) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	ledger := NewMockLedger(ctrl)
	gate := NewMockGate(ctrl)
	service := New(repo, ledger, gate)
	service.now = func() time.Time { return fixedNow }
	return service, repo, ledger, gate
}

func credTask() *domain.Task {
	return &domain.Task{ID: credTaskID, Title: "Install Cred App", Link: "https://cred.club", Reward: 150, DiamondReward: 5, Password: "cred"}
}

func TestVerify(t *testing.T) {
	service, repo, ledger, gate := NewMock(t)
	task := credTask()
	grant := domain.Grant{AccountID: "acc-1", TaskID: credTaskID, TaskTitle: "Install Cred App", Reward: 150, DiamondReward: 5}

	tests := []struct {
		name           string
		proof          string
		prepareMock    func()
		expectedResult domain.Result
		expectedError  error
	}{
		{
			name:  "Correct proof pays out",
			proof: "cred",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), credTaskID).Return(task, nil)
				gate.EXPECT().Decide(*task, "cred").Return(true)
				ledger.EXPECT().GrantReward(gomock.Any(), grant).Return(true, nil)
			},
			expectedResult: domain.Result{Success: true, Message: MsgTaskCompleted},
		},
		{
			name:  "Replay does not pay twice",
			proof: "cred",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), credTaskID).Return(task, nil)
				gate.EXPECT().Decide(*task, "cred").Return(true)
				ledger.EXPECT().GrantReward(gomock.Any(), grant).Return(false, nil)
			},
			expectedResult: domain.Result{Success: true, Message: MsgAlreadyCompleted},
		},
		{
			name:  "Wrong proof marks the attempt failed",
			proof: "nope",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), credTaskID).Return(task, nil)
				gate.EXPECT().Decide(*task, "nope").Return(false)
				ledger.EXPECT().MarkFailed(gomock.Any(), "acc-1", credTaskID, "Install Cred App").Return(nil)
			},
			expectedResult: domain.Result{Success: false, Message: MsgVerifyFailed},
		},
		{
			name:  "Unknown task",
			proof: "cred",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), credTaskID).Return(nil, nil)
			},
			expectedError: domain.ErrTaskNotFound,
		},
		{
			name:  "Store failure while loading task",
			proof: "cred",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), credTaskID).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
		{
			name:  "Ledger failure surfaces",
			proof: "cred",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), credTaskID).Return(task, nil)
				gate.EXPECT().Decide(*task, "cred").Return(true)
				ledger.EXPECT().GrantReward(gomock.Any(), grant).Return(false, domain.ErrAccountNotFound)
			},
			expectedError: domain.ErrAccountNotFound,
		},
		{
			name:  "Failure to record a failed attempt surfaces",
			proof: "nope",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), credTaskID).Return(task, nil)
				gate.EXPECT().Decide(*task, "nope").Return(false)
				ledger.EXPECT().MarkFailed(gomock.Any(), "acc-1", credTaskID, "Install Cred App").Return(domain.ErrAccountNotFound)
			},
			expectedError: domain.ErrAccountNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			result, err := service.Verify(context.Background(), "acc-1", credTaskID, tt.proof)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.EqualError(t, err, tt.expectedError.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedResult, result)
			}
		})
	}
}

func TestVerify_WithRealGate(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	ledger := NewMockLedger(ctrl)
	service := New(repo, ledger, verify.NewGate(true))

	special := &domain.Task{ID: specialTaskID, Title: "Dream11", Reward: 500, DiamondReward: 50, IsSpecial: true, PackageName: "com.dream11.fantasy.cricket"}

	tests := []struct {
		name        string
		task        *domain.Task
		proof       string
		prepareMock func(task *domain.Task)
		success     bool
	}{
		{
			name:  "Wrong-data sentinel fails even with bypass enabled",
			task:  credTask(),
			proof: verify.ProofWrongData,
			prepareMock: func(task *domain.Task) {
				ledger.EXPECT().MarkFailed(gomock.Any(), "acc-1", task.ID, task.Title).Return(nil)
			},
		},
		{
			name:  "Demo bypass pays out",
			task:  credTask(),
			proof: verify.ProofDemoBypass,
			prepareMock: func(task *domain.Task) {
				ledger.EXPECT().GrantReward(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			success: true,
		},
		{
			name:  "Special task matches on package name",
			task:  special,
			proof: "com.dream11.fantasy.cricket",
			prepareMock: func(task *domain.Task) {
				ledger.EXPECT().GrantReward(gomock.Any(), domain.Grant{
					AccountID: "acc-1", TaskID: specialTaskID, TaskTitle: "Dream11", Reward: 500, DiamondReward: 50, Special: true,
				}).Return(true, nil)
			},
			success: true,
		},
		{
			name:  "Special task ignores its password",
			task:  special,
			proof: "cred",
			prepareMock: func(task *domain.Task) {
				ledger.EXPECT().MarkFailed(gomock.Any(), "acc-1", task.ID, task.Title).Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo.EXPECT().FindByID(gomock.Any(), tt.task.ID).Return(tt.task, nil)
			tt.prepareMock(tt.task)

			result, err := service.Verify(context.Background(), "acc-1", tt.task.ID, tt.proof)
			assert.NoError(t, err)
			assert.Equal(t, tt.success, result.Success)
		})
	}
}

func TestStart(t *testing.T) {
	service, repo, _, _ := NewMock(t)
	task := credTask()

	tests := []struct {
		name          string
		prepareMock   func()
		expectedLink  string
		expectedError error
	}{
		{
			name: "Attempt is recorded",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), credTaskID).Return(task, nil)
				repo.EXPECT().Start(gomock.Any(), "acc-1", task, fixedNow).Return(nil)
			},
			expectedLink: "https://cred.club",
		},
		{
			name: "Unknown task",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), credTaskID).Return(nil, nil)
			},
			expectedError: domain.ErrTaskNotFound,
		},
		{
			name: "Store failure",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), credTaskID).Return(task, nil)
				repo.EXPECT().Start(gomock.Any(), "acc-1", task, fixedNow).Return(errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			link, err := service.Start(context.Background(), "acc-1", credTaskID)

			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedLink, link)
			}
		})
	}
}

func TestAvailable(t *testing.T) {
	service, repo, _, _ := NewMock(t)
	later := fixedNow.Add(time.Hour)
	earlier := fixedNow.Add(-time.Hour)
	tasks := []domain.Task{
		{ID: "t1", Title: "Cred"},
		{ID: "t2", Title: "Hidden", HideUntil: &later},
		{ID: "t3", Title: "Dream11", IsSpecial: true, HideUntil: &earlier},
	}
	yes, no := true, false

	tests := []struct {
		name     string
		special  *bool
		expected []string
	}{
		{name: "All visible tasks", special: nil, expected: []string{"t1", "t3"}},
		{name: "Special only", special: &yes, expected: []string{"t3"}},
		{name: "Standard only", special: &no, expected: []string{"t1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo.EXPECT().List(gomock.Any()).Return(tasks, nil)
			result, err := service.Available(context.Background(), tt.special)
			assert.NoError(t, err)

			ids := make([]string, 0, len(result))
			for _, task := range result {
				ids = append(ids, task.ID)
			}
			assert.Equal(t, tt.expected, ids)
		})
	}

	repo.EXPECT().List(gomock.Any()).Return(nil, errors.New("db error"))
	_, err := service.Available(context.Background(), nil)
	assert.Error(t, err)
}

func TestProgressAndAll(t *testing.T) {
	service, repo, _, _ := NewMock(t)

	completions := []domain.TaskCompletion{{AccountID: "acc-1", TaskID: credTaskID, Status: domain.CompletionCompleted}}
	repo.EXPECT().Completions(gomock.Any(), "acc-1").Return(completions, nil)
	progress, err := service.Progress(context.Background(), "acc-1")
	assert.NoError(t, err)
	assert.Equal(t, completions, progress)

	repo.EXPECT().Completions(gomock.Any(), "acc-1").Return(nil, errors.New("db error"))
	_, err = service.Progress(context.Background(), "acc-1")
	assert.Error(t, err)

	later := fixedNow.Add(time.Hour)
	tasks := []domain.Task{{ID: "t1"}, {ID: "t2", HideUntil: &later}}
	repo.EXPECT().List(gomock.Any()).Return(tasks, nil)
	all, err := service.All(context.Background())
	assert.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestCreate(t *testing.T) {
	service, repo, _, _ := NewMock(t)

	tests := []struct {
		name          string
		task          domain.Task
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Valid task",
			task: domain.Task{Title: "Install ludo", Link: "https://ludo.example", Reward: 50, Password: "ludo"},
			prepareMock: func() {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, task *domain.Task) error {
					assert.NotEmpty(t, task.ID)
					assert.Equal(t, fixedNow, task.CreatedAt)
					return nil
				})
			},
		},
		{
			name:          "Missing title",
			task:          domain.Task{Link: "https://ludo.example"},
			prepareMock:   func() {},
			expectedError: ErrInvalidTask,
		},
		{
			name:          "Missing link",
			task:          domain.Task{Title: "Install ludo"},
			prepareMock:   func() {},
			expectedError: ErrInvalidTask,
		},
		{
			name:          "Negative reward",
			task:          domain.Task{Title: "Install ludo", Link: "https://ludo.example", Reward: -5},
			prepareMock:   func() {},
			expectedError: domain.ErrInvalidAmount,
		},
		{
			name: "Store failure",
			task: domain.Task{Title: "Install ludo", Link: "https://ludo.example"},
			prepareMock: func() {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			created, err := service.Create(context.Background(), tt.task)

			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
				assert.Nil(t, created)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.task.Title, created.Title)
			}
		})
	}
}

func TestUpdateAndDelete(t *testing.T) {
	service, repo, _, _ := NewMock(t)
	task := domain.Task{ID: credTaskID, Title: "Install Cred App", Link: "https://cred.club", Reward: 200}

	repo.EXPECT().Update(gomock.Any(), &task).Return(nil)
	updated, err := service.Update(context.Background(), task)
	assert.NoError(t, err)
	assert.Equal(t, int64(200), updated.Reward)

	repo.EXPECT().Update(gomock.Any(), &task).Return(domain.ErrTaskNotFound)
	_, err = service.Update(context.Background(), task)
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)

	_, err = service.Update(context.Background(), domain.Task{ID: credTaskID})
	assert.ErrorIs(t, err, ErrInvalidTask)

	repo.EXPECT().Delete(gomock.Any(), credTaskID).Return(nil)
	assert.NoError(t, service.Delete(context.Background(), credTaskID))

	repo.EXPECT().Delete(gomock.Any(), credTaskID).Return(domain.ErrTaskNotFound)
	assert.ErrorIs(t, service.Delete(context.Background(), credTaskID), domain.ErrTaskNotFound)
}

func TestMalformedTaskID(t *testing.T) {
	service, _, _, _ := NewMock(t)
	ctx := context.Background()

	for _, id := range []string{"abc", "std_1", ""} {
		t.Run("id "+id, func(t *testing.T) {
			_, err := service.Verify(ctx, "acc-1", id, "cred")
			assert.ErrorIs(t, err, domain.ErrTaskNotFound)

			_, err = service.Start(ctx, "acc-1", id)
			assert.ErrorIs(t, err, domain.ErrTaskNotFound)

			_, err = service.Update(ctx, domain.Task{ID: id, Title: "Install Cred App", Link: "https://cred.club"})
			assert.ErrorIs(t, err, domain.ErrTaskNotFound)

			assert.ErrorIs(t, service.Delete(ctx, id), domain.ErrTaskNotFound)
		})
	}
}

func TestStats(t *testing.T) {
	service, repo, _, _ := NewMock(t)

	stats := []domain.TaskStats{{TaskID: credTaskID, Title: "Cred", Completed: 3, Failed: 1}}
	repo.EXPECT().Stats(gomock.Any()).Return(stats, nil)
	result, err := service.Stats(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, stats, result)

	repo.EXPECT().Stats(gomock.Any()).Return(nil, errors.New("db error"))
	_, err = service.Stats(context.Background())
	assert.Error(t, err)
}
