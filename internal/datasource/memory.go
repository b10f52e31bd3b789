package datasource

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/cpeele00/employee-benefits/internal/model"
)

// MemorySource keeps records in insertion order. Records created without an
// id get a random uuid.
type MemorySource struct {
	mu         sync.RWMutex
	employees  []model.Employee
	dependents []model.Dependent
}

func NewMemorySource(employees []model.Employee, dependents []model.Dependent) *MemorySource {
	return &MemorySource{
		employees:  slices.Clone(employees),
		dependents: slices.Clone(dependents),
	}
}

var _ Source = (*MemorySource)(nil)

func (m *MemorySource) ListEmployees(ctx context.Context) ([]model.Employee, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]model.Employee{}, m.employees...), nil
}

func (m *MemorySource) GetEmployee(ctx context.Context, id string) (model.Employee, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	i := slices.IndexFunc(m.employees, func(e model.Employee) bool { return e.ID == id })
	if i < 0 {
		return model.Employee{}, fmt.Errorf("employee %s: %w", id, ErrNotFound)
	}
	return m.employees[i], nil
}

func (m *MemorySource) CreateEmployee(ctx context.Context, e model.Employee) (model.Employee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	m.employees = append(m.employees, e)
	return e, nil
}

func (m *MemorySource) UpdateEmployee(ctx context.Context, e model.Employee) (model.Employee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := slices.IndexFunc(m.employees, func(x model.Employee) bool { return x.ID == e.ID })
	if e.ID == "" || i < 0 {
		return model.Employee{}, fmt.Errorf("employee %s: %w", e.ID, ErrNotFound)
	}
	m.employees[i] = e
	return e, nil
}

func (m *MemorySource) DeleteEmployee(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := slices.IndexFunc(m.employees, func(e model.Employee) bool { return e.ID == id })
	if i < 0 {
		return fmt.Errorf("employee %s: %w", id, ErrNotFound)
	}
	m.employees = slices.Delete(m.employees, i, i+1)
	return nil
}

func (m *MemorySource) ListDependents(ctx context.Context) ([]model.Dependent, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]model.Dependent{}, m.dependents...), nil
}

func (m *MemorySource) GetDependent(ctx context.Context, id string) (model.Dependent, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	i := slices.IndexFunc(m.dependents, func(d model.Dependent) bool { return d.ID == id })
	if i < 0 {
		return model.Dependent{}, fmt.Errorf("dependent %s: %w", id, ErrNotFound)
	}
	return m.dependents[i], nil
}

func (m *MemorySource) CreateDependent(ctx context.Context, d model.Dependent) (model.Dependent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	m.dependents = append(m.dependents, d)
	return d, nil
}

func (m *MemorySource) UpdateDependent(ctx context.Context, d model.Dependent) (model.Dependent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := slices.IndexFunc(m.dependents, func(x model.Dependent) bool { return x.ID == d.ID })
	if d.ID == "" || i < 0 {
		return model.Dependent{}, fmt.Errorf("dependent %s: %w", d.ID, ErrNotFound)
	}
	m.dependents[i] = d
	return d, nil
}

func (m *MemorySource) DeleteDependent(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := slices.IndexFunc(m.dependents, func(d model.Dependent) bool { return d.ID == id })
	if i < 0 {
		return fmt.Errorf("dependent %s: %w", id, ErrNotFound)
	}
	m.dependents = slices.Delete(m.dependents, i, i+1)
	return nil
}
