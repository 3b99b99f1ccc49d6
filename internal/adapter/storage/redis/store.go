package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/vidqa/internal/domain"
	"github.com/bnema/vidqa/internal/port"
	goredis "github.com/redis/go-redis/v9"
)

// Store keeps jobs and results in Redis.
// Keys: vidqa:job:<id> => JSON(Job), vidqa:result:<id> => JSON(AnalysisResult).
// The sorted set vidqa:jobs indexes job ids by creation time.
type Store struct {
	client    *goredis.Client
	resultTTL time.Duration
}

const (
	jobsIndex = "vidqa:jobs"
	opTimeout = 2 * time.Second
)

// NewClient builds a client with the same timeouts the store assumes.
func NewClient(addr, password string, db int) *goredis.Client {
	return goredis.NewClient(&goredis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
}

// NewStore pings the server before returning. A zero resultTTL keeps results forever.
func NewStore(client *goredis.Client, resultTTL time.Duration) (*Store, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return &Store{client: client, resultTTL: resultTTL}, nil
}

func jobKey(id string) string    { return "vidqa:job:" + id }
func resultKey(id string) string { return "vidqa:result:" + id }

func (s *Store) Save(job *domain.Job) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	b, err := json.Marshal(job)
	if err != nil {
		return err
	}
	pipe := s.client.TxPipeline()
	pipe.Set(ctx, jobKey(job.ID), b, 0)
	pipe.ZAdd(ctx, jobsIndex, goredis.Z{Score: float64(job.CreatedAt.UnixNano()), Member: job.ID})
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Store) Get(id string) (*domain.Job, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	val, err := s.client.Get(ctx, jobKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, domain.ErrJobNotFound
		}
		return nil, err
	}
	var j domain.Job
	if err := json.Unmarshal(val, &j); err != nil {
		return nil, err
	}
	return &j, nil
}

// List returns jobs newest first. Index entries whose record has gone are skipped.
func (s *Store) List() ([]*domain.Job, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	ids, err := s.client.ZRevRange(ctx, jobsIndex, 0, -1).Result()
	if err != nil {
		return nil, err
	}
	jobs := make([]*domain.Job, 0, len(ids))
	for _, id := range ids {
		j, err := s.Get(id)
		if err == nil {
			jobs = append(jobs, j)
		}
	}
	return jobs, nil
}

func (s *Store) SaveResult(res *domain.AnalysisResult) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	b, err := json.Marshal(res)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, resultKey(res.JobID), b, s.resultTTL).Err()
}

func (s *Store) GetResult(jobID string) (*domain.AnalysisResult, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	val, err := s.client.Get(ctx, resultKey(jobID)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	var res domain.AnalysisResult
	if err := json.Unmarshal(val, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *Store) Close() error {
	return s.client.Close()
}

var (
	_ port.JobRepository = (*Store)(nil)
	_ port.ResultStore   = (*Store)(nil)
)
