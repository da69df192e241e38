package evalsrvc

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

type InMemEvalRepo struct {
	lock  sync.Mutex
	evals map[uuid.UUID]Evaluation
}

func NewInMemEvalRepo() *InMemEvalRepo {
	return &InMemEvalRepo{
		evals: make(map[uuid.UUID]Evaluation),
	}
}

func (m *InMemEvalRepo) Save(_ context.Context, eval Evaluation) error {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.evals[eval.UUID] = eval
	return nil
}

func (m *InMemEvalRepo) Get(_ context.Context, id uuid.UUID) (Evaluation, error) {
	m.lock.Lock()
	defer m.lock.Unlock()
	eval, ok := m.evals[id]
	if !ok {
		return Evaluation{}, ErrEvalNotFound()
	}
	return eval, nil
}

func (m *InMemEvalRepo) Delete(_ context.Context, id uuid.UUID) error {
	m.lock.Lock()
	defer m.lock.Unlock()
	delete(m.evals, id)
	return nil
}

// InMemVerdictCache is the in-process content-addressed replay cache.
type InMemVerdictCache struct {
	lock  sync.Mutex
	byKey map[string]Evaluation
}

func NewInMemVerdictCache() *InMemVerdictCache {
	return &InMemVerdictCache{
		byKey: make(map[string]Evaluation),
	}
}

func (c *InMemVerdictCache) Lookup(key string) (Evaluation, bool) {
	c.lock.Lock()
	defer c.lock.Unlock()
	eval, ok := c.byKey[key]
	return eval, ok
}

func (c *InMemVerdictCache) Store(key string, eval Evaluation) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.byKey[key] = eval
}
