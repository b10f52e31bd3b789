// Package datasource talks to the service that owns employee and dependent
// records. The cost engine only reads from it; the HTTP service's record
// routes pass validated writes through to it.
package datasource

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/cpeele00/employee-benefits/internal/model"
)

var ErrNotFound = errors.New("record not found")

// StatusError is returned when the data source answers with an unexpected
// HTTP status.
type StatusError struct {
	Method string
	URL    string
	Status int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d", e.Method, e.URL, e.Status)
}

// Source is the list/get/create/update/delete surface of the data source.
type Source interface {
	ListEmployees(ctx context.Context) ([]model.Employee, error)
	GetEmployee(ctx context.Context, id string) (model.Employee, error)
	CreateEmployee(ctx context.Context, e model.Employee) (model.Employee, error)
	UpdateEmployee(ctx context.Context, e model.Employee) (model.Employee, error)
	DeleteEmployee(ctx context.Context, id string) error

	ListDependents(ctx context.Context) ([]model.Dependent, error)
	GetDependent(ctx context.Context, id string) (model.Dependent, error)
	CreateDependent(ctx context.Context, d model.Dependent) (model.Dependent, error)
	UpdateDependent(ctx context.Context, d model.Dependent) (model.Dependent, error)
	DeleteDependent(ctx context.Context, id string) error
}

// FetchRoster loads employees and dependents concurrently.
func FetchRoster(ctx context.Context, src Source) ([]model.Employee, []model.Dependent, error) {
	var (
		employees  []model.Employee
		dependents []model.Dependent
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		employees, err = src.ListEmployees(ctx)
		if err != nil {
			return fmt.Errorf("list employees: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		dependents, err = src.ListDependents(ctx)
		if err != nil {
			return fmt.Errorf("list dependents: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return employees, dependents, nil
}
