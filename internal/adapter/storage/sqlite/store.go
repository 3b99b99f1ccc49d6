package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/bnema/vidqa/internal/adapter/storage/sqlite/sqlitedb"
	"github.com/bnema/vidqa/internal/domain"
	"github.com/bnema/vidqa/internal/port"
	"github.com/pressly/goose/v3"
	"modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrations embed.FS

type Store struct {
	db      *sql.DB
	queries *sqlitedb.Queries
}

var hookOnce sync.Once

func registerHook() {
	hookOnce.Do(func() {
		sqlite.RegisterConnectionHook(func(conn sqlite.ExecQuerierContext, dsn string) error {
			pragmas := []string{
				"PRAGMA journal_mode = WAL",
				"PRAGMA busy_timeout = 5000",
				"PRAGMA synchronous = NORMAL",
				"PRAGMA cache_size = -8000", // 8MB
			}
			for _, p := range pragmas {
				if _, err := conn.ExecContext(context.Background(), p, nil); err != nil {
					return fmt.Errorf("execute %s: %w", p, err)
				}
			}
			return nil
		})
	})
}

func NewStore(dataDir string) (*Store, error) {
	registerHook()

	db, err := sql.Open("sqlite", filepath.Join(dataDir, "vidqa.db"))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Single connection for SQLite (WAL allows concurrent reads but only one writer)
	db.SetMaxOpenConns(1)

	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set goose dialect: %w", err)
	}
	if err := goose.Up(db, "migrations"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{
		db:      db,
		queries: sqlitedb.New(db),
	}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Save(job *domain.Job) error {
	ctx := context.Background()
	return s.queries.UpsertJob(ctx, sqlitedb.UpsertJobParams{
		ID:          job.ID,
		Source:      job.Source,
		Status:      string(job.Status),
		Progress:    job.Progress,
		CurrentUnit: int64(job.CurrentUnit),
		TotalUnits:  int64(job.TotalUnits),
		Message:     job.Message,
		Error:       job.Error,
		CreatedAt:   job.CreatedAt,
		UpdatedAt:   job.UpdatedAt,
	})
}

func (s *Store) Get(id string) (*domain.Job, error) {
	ctx := context.Background()
	row, err := s.queries.GetJob(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrJobNotFound
		}
		return nil, err
	}
	return jobFromRow(row), nil
}

func (s *Store) List() ([]*domain.Job, error) {
	ctx := context.Background()
	rows, err := s.queries.ListJobs(ctx)
	if err != nil {
		return nil, err
	}
	jobs := make([]*domain.Job, 0, len(rows))
	for _, row := range rows {
		jobs = append(jobs, jobFromRow(row))
	}
	return jobs, nil
}

func (s *Store) SaveResult(res *domain.AnalysisResult) error {
	payload, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	ctx := context.Background()
	return s.queries.UpsertResult(ctx, sqlitedb.UpsertResultParams{
		JobID:        res.JobID,
		OverallScore: res.OverallQualityScore,
		Payload:      string(payload),
		CreatedAt:    res.CreatedAt,
	})
}

func (s *Store) GetResult(jobID string) (*domain.AnalysisResult, error) {
	ctx := context.Background()
	row, err := s.queries.GetResult(ctx, jobID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	var res domain.AnalysisResult
	if err := json.Unmarshal([]byte(row.Payload), &res); err != nil {
		return nil, fmt.Errorf("decode result %s: %w", jobID, err)
	}
	return &res, nil
}

func jobFromRow(row sqlitedb.Job) *domain.Job {
	return &domain.Job{
		ID:          row.ID,
		Source:      row.Source,
		Status:      domain.JobStatus(row.Status),
		Progress:    row.Progress,
		CurrentUnit: int(row.CurrentUnit),
		TotalUnits:  int(row.TotalUnits),
		Message:     row.Message,
		Error:       row.Error,
		CreatedAt:   row.CreatedAt.UTC(),
		UpdatedAt:   row.UpdatedAt.UTC(),
	}
}

var (
	_ port.JobRepository = (*Store)(nil)
	_ port.ResultStore   = (*Store)(nil)
)
