package jsonfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/bnema/vidqa/internal/domain"
	"github.com/bnema/vidqa/internal/port"
)

// Store keeps jobs and results in memory. When created with a data
// directory it also snapshots them to disk so they survive restarts; with
// an empty directory it is purely in-memory.
type Store struct {
	mu      sync.RWMutex
	dir     string
	jobs    map[string]*domain.Job
	results map[string]*domain.AnalysisResult
}

func NewMemoryStore() *Store {
	return &Store{
		jobs:    make(map[string]*domain.Job),
		results: make(map[string]*domain.AnalysisResult),
	}
}

func NewStore(dataDir string) (*Store, error) {
	store := NewMemoryStore()
	store.dir = dataDir

	if err := os.MkdirAll(store.resultsDir(), 0o750); err != nil {
		return nil, fmt.Errorf("failed to create results directory: %w", err)
	}
	if err := store.load(); err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
	}

	return store, nil
}

func (s *Store) jobsPath() string   { return filepath.Join(s.dir, "jobs.json") }
func (s *Store) resultsDir() string { return filepath.Join(s.dir, "results") }

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.jobsPath())
	if err != nil {
		return err
	}

	if len(data) == 0 {
		return nil
	}

	var jobList []*domain.Job
	if err := json.Unmarshal(data, &jobList); err != nil {
		return err
	}

	for _, j := range jobList {
		s.jobs[j.ID] = j
	}

	return nil
}

func (s *Store) persistJobs() error {
	if s.dir == "" {
		return nil
	}

	jobList := make([]*domain.Job, 0, len(s.jobs))
	for _, j := range s.jobs {
		jobList = append(jobList, j)
	}

	data, err := json.MarshalIndent(jobList, "", "  ")
	if err != nil {
		return err
	}
	return writeAtomic(s.jobsPath(), data)
}

func writeAtomic(path string, data []byte) error {
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return err
	}
	return os.Rename(tmpPath, path)
}

func (s *Store) Save(job *domain.Job) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.jobs[job.ID] = job.Clone()
	return s.persistJobs()
}

func (s *Store) Get(id string) (*domain.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	j, ok := s.jobs[id]
	if !ok {
		return nil, domain.ErrJobNotFound
	}

	return j.Clone(), nil
}

// List returns jobs newest first.
func (s *Store) List() ([]*domain.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	jobs := make([]*domain.Job, 0, len(s.jobs))
	for _, j := range s.jobs {
		jobs = append(jobs, j.Clone())
	}
	sort.Slice(jobs, func(a, b int) bool {
		return jobs[a].CreatedAt.After(jobs[b].CreatedAt)
	})

	return jobs, nil
}

func (s *Store) SaveResult(res *domain.AnalysisResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.results[res.JobID] = res
	if s.dir == "" {
		return nil
	}

	data, err := json.Marshal(res)
	if err != nil {
		return err
	}
	return writeAtomic(filepath.Join(s.resultsDir(), res.JobID+".json"), data)
}

func (s *Store) GetResult(jobID string) (*domain.AnalysisResult, error) {
	s.mu.RLock()
	res, ok := s.results[jobID]
	s.mu.RUnlock()
	if ok {
		return res, nil
	}
	if s.dir == "" {
		return nil, domain.ErrNotFound
	}

	data, err := os.ReadFile(filepath.Join(s.resultsDir(), filepath.Base(jobID)+".json"))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	var loaded domain.AnalysisResult
	if err := json.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("corrupt result for %s: %w", jobID, err)
	}

	s.mu.Lock()
	s.results[jobID] = &loaded
	s.mu.Unlock()

	return &loaded, nil
}

var (
	_ port.JobRepository = (*Store)(nil)
	_ port.ResultStore   = (*Store)(nil)
)
