package inmemory

import (
	"context"
	"sync"
	"time"

	"taskDashboard/internal/logger"
	"taskDashboard/internal/models/task"
	repo "taskDashboard/internal/repository"
)

// TaskStorage хранит задачи в памяти, порядок вставки сохраняется в ids
type TaskStorage struct {
	storage map[string]*task.Task
	mtx     *sync.RWMutex
	ids     []string
}

func NewTaskStorage() *TaskStorage {
	return &TaskStorage{
		storage: make(map[string]*task.Task),
		mtx:     &sync.RWMutex{},
		ids:     []string{},
	}
}

func (s *TaskStorage) HealthCheck(ctx context.Context) error {
	logger.Info("Repository: Соединение стабильно")
	return nil
}

func (s *TaskStorage) Create(ctx context.Context, taskToCreate *task.Task) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if taskToCreate.CreatedAt.IsZero() {
		taskToCreate.CreatedAt = time.Now()
	}
	if taskToCreate.Version == 0 {
		taskToCreate.Version = 1
	}

	copied := *taskToCreate
	s.storage[copied.ID] = &copied
	s.ids = append(s.ids, copied.ID)
	return nil
}

func (s *TaskStorage) Update(ctx context.Context, taskToUpdate *task.Task) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	existing, ok := s.storage[taskToUpdate.ID]
	if !ok {
		return repo.ErrNotFound
	}
	if existing.Version != taskToUpdate.Version {
		return repo.ErrVersionConflict
	}

	now := time.Now()
	copied := *taskToUpdate
	copied.UpdatedAt = &now
	copied.Version++
	s.storage[copied.ID] = &copied

	taskToUpdate.UpdatedAt = &now
	taskToUpdate.Version = copied.Version
	return nil
}

func (s *TaskStorage) GetByID(ctx context.Context, id string) (*task.Task, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	taskToGet, ok := s.storage[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	copied := *taskToGet
	return &copied, nil
}

// полный упорядоченный снимок для производных представлений
func (s *TaskStorage) GetAll(ctx context.Context) ([]*task.Task, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	res := make([]*task.Task, 0, len(s.ids))
	for _, id := range s.ids {
		copied := *s.storage[id]
		res = append(res, &copied)
	}
	return res, nil
}

func (s *TaskStorage) GetWithLimit(ctx context.Context, page, limit int) ([]*task.Task, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	res := []*task.Task{}
	offset := (page - 1) * limit

	for i := offset; i < len(s.ids); i++ {
		if len(res) >= limit {
			break
		}
		copied := *s.storage[s.ids[i]]
		res = append(res, &copied)
	}

	return res, nil
}

func (s *TaskStorage) Delete(ctx context.Context, id string) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if _, ok := s.storage[id]; !ok {
		return repo.ErrNotFound
	}

	delete(s.storage, id)
	for ind, val := range s.ids {
		if val == id {
			s.ids = append(s.ids[:ind], s.ids[ind+1:]...)
			break
		}
	}
	return nil
}

func (s *TaskStorage) DeleteAll(ctx context.Context) (int, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	count := len(s.ids)
	s.storage = make(map[string]*task.Task)
	s.ids = []string{}
	return count, nil
}
