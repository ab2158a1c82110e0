package taskservice

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/zearn/internal/domain"
)

const (
	MsgTaskCompleted    = "Task Completed! Rewards Added."
	MsgAlreadyCompleted = "Task already completed."
	MsgVerifyFailed     = "Verification Failed. Try again."
)

var ErrInvalidTask = errors.New("task title and link are required")

type Repo interface {
	FindByID(ctx context.Context, id string) (*domain.Task, error)
	List(ctx context.Context) ([]domain.Task, error)
	Create(ctx context.Context, task *domain.Task) error
	Update(ctx context.Context, task *domain.Task) error
	Delete(ctx context.Context, id string) error
	Start(ctx context.Context, accountID string, task *domain.Task, now time.Time) error
	Completions(ctx context.Context, accountID string) ([]domain.TaskCompletion, error)
	Stats(ctx context.Context) ([]domain.TaskStats, error)
}

type Ledger interface {
	GrantReward(ctx context.Context, grant domain.Grant) (bool, error)
	MarkFailed(ctx context.Context, accountID, taskID, taskTitle string) error
}

type Gate interface {
	Decide(task domain.Task, proof string) bool
}

type Service struct {
	repo   Repo
	ledger Ledger
	gate   Gate
	now    func() time.Time
}

func New(repo Repo, ledger Ledger, gate Gate) *Service {
	return &Service{
		repo:   repo,
		ledger: ledger,
		gate:   gate,
		now:    time.Now,
	}
}

func (s *Service) find(ctx context.Context, taskID string) (*domain.Task, error) {
	if _, err := uuid.Parse(taskID); err != nil {
		return nil, domain.ErrTaskNotFound
	}
	task, err := s.repo.FindByID(ctx, taskID)
	if err != nil {
		zap.L().Error("failed to get task", zap.String("task_id", taskID), zap.Error(err))
		return nil, err
	}
	if task == nil {
		return nil, domain.ErrTaskNotFound
	}
	return task, nil
}

// Verify checks proof against the task and pays out through the ledger on
// success. A failed check is reported in the result, not as an error.
// Whether the task is special comes from the stored task; callers do not
// pass it.
func (s *Service) Verify(ctx context.Context, accountID, taskID, proof string) (domain.Result, error) {
	task, err := s.find(ctx, taskID)
	if err != nil {
		return domain.Result{}, err
	}

	if !s.gate.Decide(*task, proof) {
		if err := s.ledger.MarkFailed(ctx, accountID, task.ID, task.Title); err != nil {
			return domain.Result{}, err
		}
		zap.L().Info("task verification failed", zap.String("account_id", accountID), zap.String("task_id", taskID))
		return domain.Result{Success: false, Message: MsgVerifyFailed}, nil
	}

	granted, err := s.ledger.GrantReward(ctx, domain.Grant{
		AccountID:     accountID,
		TaskID:        task.ID,
		TaskTitle:     task.Title,
		Reward:        task.Reward,
		DiamondReward: task.DiamondReward,
		Special:       task.IsSpecial,
	})
	if err != nil {
		return domain.Result{}, err
	}
	if !granted {
		return domain.Result{Success: true, Message: MsgAlreadyCompleted}, nil
	}
	return domain.Result{Success: true, Message: MsgTaskCompleted}, nil
}

// Start records an attempt and returns the link the participant should open.
func (s *Service) Start(ctx context.Context, accountID, taskID string) (string, error) {
	task, err := s.find(ctx, taskID)
	if err != nil {
		return "", err
	}
	if err := s.repo.Start(ctx, accountID, task, s.now().UTC()); err != nil {
		zap.L().Error("failed to start task", zap.String("account_id", accountID), zap.String("task_id", taskID), zap.Error(err))
		return "", err
	}
	return task.Link, nil
}

// Available lists tasks visible to participants, optionally filtered by kind.
func (s *Service) Available(ctx context.Context, special *bool) ([]domain.Task, error) {
	tasks, err := s.repo.List(ctx)
	if err != nil {
		zap.L().Error("failed to list tasks", zap.Error(err))
		return nil, err
	}

	now := s.now()
	visible := make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if !t.Visible(now) {
			continue
		}
		if special != nil && t.IsSpecial != *special {
			continue
		}
		visible = append(visible, t)
	}
	return visible, nil
}

func (s *Service) Progress(ctx context.Context, accountID string) ([]domain.TaskCompletion, error) {
	completions, err := s.repo.Completions(ctx, accountID)
	if err != nil {
		zap.L().Error("failed to get task progress", zap.String("account_id", accountID), zap.Error(err))
		return nil, err
	}
	return completions, nil
}

func (s *Service) All(ctx context.Context) ([]domain.Task, error) {
	tasks, err := s.repo.List(ctx)
	if err != nil {
		zap.L().Error("failed to list tasks", zap.Error(err))
		return nil, err
	}
	return tasks, nil
}

func validateTask(task *domain.Task) error {
	if strings.TrimSpace(task.Title) == "" || strings.TrimSpace(task.Link) == "" {
		return ErrInvalidTask
	}
	if task.Reward < 0 || task.DiamondReward < 0 {
		return domain.ErrInvalidAmount
	}
	return nil
}

func (s *Service) Create(ctx context.Context, task domain.Task) (*domain.Task, error) {
	if err := validateTask(&task); err != nil {
		return nil, err
	}
	task.ID = uuid.NewString()
	task.CreatedAt = s.now().UTC()
	if err := s.repo.Create(ctx, &task); err != nil {
		zap.L().Error("failed to create task", zap.Error(err))
		return nil, err
	}
	zap.L().Info("task created", zap.String("task_id", task.ID), zap.String("title", task.Title))
	return &task, nil
}

func (s *Service) Update(ctx context.Context, task domain.Task) (*domain.Task, error) {
	if _, err := uuid.Parse(task.ID); err != nil {
		return nil, domain.ErrTaskNotFound
	}
	if err := validateTask(&task); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, &task); err != nil {
		if !errors.Is(err, domain.ErrTaskNotFound) {
			zap.L().Error("failed to update task", zap.Error(err))
		}
		return nil, err
	}
	return &task, nil
}

func (s *Service) Delete(ctx context.Context, taskID string) error {
	if _, err := uuid.Parse(taskID); err != nil {
		return domain.ErrTaskNotFound
	}
	if err := s.repo.Delete(ctx, taskID); err != nil {
		if !errors.Is(err, domain.ErrTaskNotFound) {
			zap.L().Error("failed to delete task", zap.Error(err))
		}
		return err
	}
	zap.L().Info("task deleted", zap.String("task_id", taskID))
	return nil
}

func (s *Service) Stats(ctx context.Context) ([]domain.TaskStats, error) {
	stats, err := s.repo.Stats(ctx)
	if err != nil {
		zap.L().Error("failed to get task stats", zap.Error(err))
		return nil, err
	}
	return stats, nil
}
