package datasource

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"

	"github.com/cpeele00/employee-benefits/internal/model"
)

const (
	employeesPath  = "/employees"
	dependentsPath = "/dependents"

	defaultTimeout = 2 * time.Second
)

// HTTPSource reads and writes records through a json-server style REST API:
// GET/POST on the collection, GET/PUT/DELETE on collection/{id}.
type HTTPSource struct {
	baseURL string
	timeout time.Duration
	client  *fasthttp.Client
}

type Option func(*HTTPSource)

// WithTimeout bounds each request when the context carries no deadline.
func WithTimeout(d time.Duration) Option {
	return func(s *HTTPSource) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// WithDial replaces the client's dialer. Tests use it with an in-memory
// listener.
func WithDial(dial fasthttp.DialFunc) Option {
	return func(s *HTTPSource) { s.client.Dial = dial }
}

func NewHTTPSource(baseURL string, opts ...Option) *HTTPSource {
	s := &HTTPSource{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: defaultTimeout,
		client: &fasthttp.Client{
			Name:                "employee-benefits",
			MaxConnsPerHost:     100,
			MaxIdleConnDuration: 90 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ Source = (*HTTPSource)(nil)

func (s *HTTPSource) ListEmployees(ctx context.Context) ([]model.Employee, error) {
	var out []model.Employee
	if err := s.do(ctx, fasthttp.MethodGet, employeesPath, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *HTTPSource) GetEmployee(ctx context.Context, id string) (model.Employee, error) {
	var out model.Employee
	err := s.do(ctx, fasthttp.MethodGet, itemPath(employeesPath, id), nil, &out)
	return out, err
}

func (s *HTTPSource) CreateEmployee(ctx context.Context, e model.Employee) (model.Employee, error) {
	var out model.Employee
	err := s.do(ctx, fasthttp.MethodPost, employeesPath, e, &out)
	return out, err
}

func (s *HTTPSource) UpdateEmployee(ctx context.Context, e model.Employee) (model.Employee, error) {
	if e.ID == "" {
		return model.Employee{}, errors.New("update employee: missing id")
	}
	var out model.Employee
	err := s.do(ctx, fasthttp.MethodPut, itemPath(employeesPath, e.ID), e, &out)
	return out, err
}

func (s *HTTPSource) DeleteEmployee(ctx context.Context, id string) error {
	return s.do(ctx, fasthttp.MethodDelete, itemPath(employeesPath, id), nil, nil)
}

func (s *HTTPSource) ListDependents(ctx context.Context) ([]model.Dependent, error) {
	var out []model.Dependent
	if err := s.do(ctx, fasthttp.MethodGet, dependentsPath, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *HTTPSource) GetDependent(ctx context.Context, id string) (model.Dependent, error) {
	var out model.Dependent
	err := s.do(ctx, fasthttp.MethodGet, itemPath(dependentsPath, id), nil, &out)
	return out, err
}

func (s *HTTPSource) CreateDependent(ctx context.Context, d model.Dependent) (model.Dependent, error) {
	var out model.Dependent
	err := s.do(ctx, fasthttp.MethodPost, dependentsPath, d, &out)
	return out, err
}

func (s *HTTPSource) UpdateDependent(ctx context.Context, d model.Dependent) (model.Dependent, error) {
	if d.ID == "" {
		return model.Dependent{}, errors.New("update dependent: missing id")
	}
	var out model.Dependent
	err := s.do(ctx, fasthttp.MethodPut, itemPath(dependentsPath, d.ID), d, &out)
	return out, err
}

func (s *HTTPSource) DeleteDependent(ctx context.Context, id string) error {
	return s.do(ctx, fasthttp.MethodDelete, itemPath(dependentsPath, id), nil, nil)
}

func (s *HTTPSource) do(ctx context.Context, method, path string, body, out any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	target := s.baseURL + path
	req.SetRequestURI(target)
	req.Header.SetMethod(method)
	req.Header.Set(fasthttp.HeaderAccept, "application/json")

	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s %s: encode body: %w", method, target, err)
		}
		req.Header.SetContentType("application/json")
		req.SetBodyRaw(b)
	}

	deadline := time.Now().Add(s.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}

	if err := s.client.DoDeadline(req, resp, deadline); err != nil {
		return fmt.Errorf("%s %s: %w", method, target, err)
	}

	switch status := resp.StatusCode(); {
	case status == fasthttp.StatusNotFound:
		return fmt.Errorf("%s %s: %w", method, target, ErrNotFound)
	case status < 200 || status > 299:
		return &StatusError{Method: method, URL: target, Status: status}
	}

	if out == nil || len(resp.Body()) == 0 {
		return nil
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("%s %s: decode response: %w", method, target, err)
	}
	return nil
}

func itemPath(collection, id string) string {
	return collection + "/" + url.PathEscape(id)
}
