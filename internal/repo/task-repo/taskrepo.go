package taskrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/zearn/internal/domain"
	"github.com/GlebRadaev/zearn/internal/pg"
)

const taskColumns = `id, title, description, link, reward, diamond_reward, is_special, password, package_name, hide_until, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanTask(row pgx.Row) (*domain.Task, error) {
	var t domain.Task
	err := row.Scan(&t.ID, &t.Title, &t.Description, &t.Link, &t.Reward, &t.DiamondReward,
		&t.IsSpecial, &t.Password, &t.PackageName, &t.HideUntil, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1`
	task, err := scanTask(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find task", zap.Error(err))
		return nil, err
	}
	return task, nil
}

func (r *Repository) List(ctx context.Context) ([]domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks ORDER BY created_at, title`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list tasks", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var tasks []domain.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			zap.L().Error("can't scan task row", zap.Error(err))
			return nil, err
		}
		tasks = append(tasks, *task)
	}
	return tasks, rows.Err()
}

func (r *Repository) Create(ctx context.Context, task *domain.Task) error {
	query := `
		INSERT INTO tasks (id, title, description, link, reward, diamond_reward, is_special, password, package_name, hide_until, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := r.db.Exec(ctx, query, task.ID, task.Title, task.Description, task.Link, task.Reward,
		task.DiamondReward, task.IsSpecial, task.Password, task.PackageName, task.HideUntil, task.CreatedAt)
	if err != nil {
		zap.L().Error("can't create task", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Update(ctx context.Context, task *domain.Task) error {
	query := `
		UPDATE tasks
		SET title = $1, description = $2, link = $3, reward = $4, diamond_reward = $5,
			is_special = $6, password = $7, package_name = $8, hide_until = $9
		WHERE id = $10
	`
	tag, err := r.db.Exec(ctx, query, task.Title, task.Description, task.Link, task.Reward, task.DiamondReward,
		task.IsSpecial, task.Password, task.PackageName, task.HideUntil, task.ID)
	if err != nil {
		zap.L().Error("can't update task", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		zap.L().Error("can't delete task", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

// Start records an IN_PROCESS attempt unless the account already has a record for the task.
func (r *Repository) Start(ctx context.Context, accountID string, task *domain.Task, now time.Time) error {
	query := `
		INSERT INTO task_completions (account_id, task_id, task_title, status, started_at)
		VALUES ($1, $2, $3, 'IN_PROCESS', $4)
		ON CONFLICT (account_id, task_id) DO NOTHING
	`
	if _, err := r.db.Exec(ctx, query, accountID, task.ID, task.Title, now); err != nil {
		switch pg.ForeignKeyViolation(err) {
		case "":
		case pg.CompletionTaskFK:
			return domain.ErrTaskNotFound
		default:
			return domain.ErrAccountNotFound
		}
		zap.L().Error("can't start task", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Completions(ctx context.Context, accountID string) ([]domain.TaskCompletion, error) {
	query := `
		SELECT account_id, task_id, task_title, status, started_at, completed_at
		FROM task_completions
		WHERE account_id = $1
		ORDER BY started_at DESC
	`
	rows, err := r.db.Query(ctx, query, accountID)
	if err != nil {
		zap.L().Error("can't get task completions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var completions []domain.TaskCompletion
	for rows.Next() {
		var (
			c      domain.TaskCompletion
			status string
		)
		if err := rows.Scan(&c.AccountID, &c.TaskID, &c.TaskTitle, &status, &c.StartedAt, &c.CompletedAt); err != nil {
			zap.L().Error("can't scan task completion", zap.Error(err))
			return nil, err
		}
		c.Status = domain.CompletionStatus(status)
		completions = append(completions, c)
	}
	return completions, rows.Err()
}

func (r *Repository) Stats(ctx context.Context) ([]domain.TaskStats, error) {
	query := `
		SELECT t.id, t.title,
			COUNT(c.task_id) FILTER (WHERE c.status = 'COMPLETED'),
			COUNT(c.task_id) FILTER (WHERE c.status = 'FAILED')
		FROM tasks t
		LEFT JOIN task_completions c ON c.task_id = t.id
		GROUP BY t.id, t.title
		ORDER BY t.created_at, t.title
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get task stats", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var stats []domain.TaskStats
	for rows.Next() {
		var s domain.TaskStats
		if err := rows.Scan(&s.TaskID, &s.Title, &s.Completed, &s.Failed); err != nil {
			zap.L().Error("can't scan task stats", zap.Error(err))
			return nil, err
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}
