package handler

import (
	"context"
	"errors"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/cpeele00/employee-benefits/internal/benefits"
	"github.com/cpeele00/employee-benefits/internal/datasource"
	"github.com/cpeele00/employee-benefits/internal/engine"
	"github.com/cpeele00/employee-benefits/internal/model"
	"github.com/cpeele00/employee-benefits/internal/roster"
)

// Handler serves the cost calculations over HTTP.
type Handler struct {
	source  datasource.Source
	logger  *zap.Logger
	timeout time.Duration
}

func New(source datasource.Source, logger *zap.Logger, timeout time.Duration) *Handler {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Handler{source: source, logger: logger, timeout: timeout}
}

// Handle is the fasthttp entry point.
func (h *Handler) Handle(ctx *fasthttp.RequestCtx) {
	start := time.Now()

	h.route(ctx)

	h.logger.Info("request",
		zap.ByteString("method", ctx.Method()),
		zap.ByteString("path", ctx.Path()),
		zap.Int("status", ctx.Response.StatusCode()),
		zap.Duration("duration", time.Since(start)),
	)
}

type routes map[string]fasthttp.RequestHandler

func (h *Handler) route(ctx *fasthttp.RequestCtx) {
	path := string(ctx.Path())

	r := h.match(path)
	if r == nil {
		writeError(ctx, fasthttp.StatusNotFound, "Not found: "+path)
		return
	}

	serve, ok := r[string(ctx.Method())]
	if !ok {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	serve(ctx)
}

// match returns the handlers registered for path, keyed by method, or nil
// when nothing serves it.
func (h *Handler) match(path string) routes {
	switch path {
	case "/calculations":
		return routes{fasthttp.MethodPost: h.handleCalculation}
	case "/calculations/employee":
		return routes{fasthttp.MethodPost: h.handleEmployeeCost}
	case "/calculations/preview":
		return routes{fasthttp.MethodPost: h.handlePreview}
	case "/summary":
		return routes{fasthttp.MethodGet: h.handleSummary}
	case "/healthz":
		return routes{fasthttp.MethodGet: h.handleHealth}
	}

	parts := strings.Split(strings.Trim(path, "/"), "/")
	switch {
	case len(parts) == 1 && parts[0] == "employees":
		return routes{
			fasthttp.MethodGet:  h.listEmployees,
			fasthttp.MethodPost: h.createEmployee,
		}
	case len(parts) == 2 && parts[0] == "employees":
		id := parts[1]
		return routes{
			fasthttp.MethodGet:    func(ctx *fasthttp.RequestCtx) { h.getEmployee(ctx, id) },
			fasthttp.MethodPut:    func(ctx *fasthttp.RequestCtx) { h.updateEmployee(ctx, id) },
			fasthttp.MethodDelete: func(ctx *fasthttp.RequestCtx) { h.deleteEmployee(ctx, id) },
		}
	case len(parts) == 3 && parts[0] == "employees" && parts[2] == "benefits":
		id := parts[1]
		return routes{
			fasthttp.MethodGet: func(ctx *fasthttp.RequestCtx) { h.handleEmployeeBenefits(ctx, id) },
		}
	case len(parts) == 1 && parts[0] == "dependents":
		return routes{
			fasthttp.MethodGet:  h.listDependents,
			fasthttp.MethodPost: h.createDependent,
		}
	case len(parts) == 2 && parts[0] == "dependents":
		id := parts[1]
		return routes{
			fasthttp.MethodGet:    func(ctx *fasthttp.RequestCtx) { h.getDependent(ctx, id) },
			fasthttp.MethodPut:    func(ctx *fasthttp.RequestCtx) { h.updateDependent(ctx, id) },
			fasthttp.MethodDelete: func(ctx *fasthttp.RequestCtx) { h.deleteDependent(ctx, id) },
		}
	}
	return nil
}

func (h *Handler) handleCalculation(ctx *fasthttp.RequestCtx) {
	var req model.CalculationRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	writeJSON(ctx, fasthttp.StatusOK, engine.Process(&req))
}

func (h *Handler) handleEmployeeCost(ctx *fasthttp.RequestCtx) {
	var req model.EmployeeCostRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	writeJSON(ctx, fasthttp.StatusOK, benefits.CalculateEmployeeBenefitsCost(req.Employee, req.Dependents))
}

func (h *Handler) handlePreview(ctx *fasthttp.RequestCtx) {
	var req model.PreviewRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	resp, err := engine.Preview(&req)
	if err != nil {
		h.logger.Error("preview failed", zap.Error(err))
		writeError(ctx, fasthttp.StatusInternalServerError, "Preview failed")
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, resp)
}

func (h *Handler) handleSummary(ctx *fasthttp.RequestCtx) {
	c, cancel := h.sourceContext()
	defer cancel()

	employees, dependents, err := datasource.FetchRoster(c, h.source)
	if err != nil {
		h.sourceError(ctx, err)
		return
	}

	writeJSON(ctx, fasthttp.StatusOK, engine.Process(&model.CalculationRequest{
		Employees:  employees,
		Dependents: dependents,
	}))
}

// handleEmployeeBenefits costs one stored employee together with the
// dependents that reference it.
func (h *Handler) handleEmployeeBenefits(ctx *fasthttp.RequestCtx, id string) {
	c, cancel := h.sourceContext()
	defer cancel()

	var (
		employee   model.Employee
		dependents []model.Dependent
	)
	g, gctx := errgroup.WithContext(c)
	g.Go(func() error {
		var err error
		employee, err = h.source.GetEmployee(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		dependents, err = h.source.ListDependents(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		h.sourceError(ctx, err)
		return
	}

	group := roster.Group([]model.Employee{employee}, dependents)[0]
	writeJSON(ctx, fasthttp.StatusOK, model.EmployeeCost{
		Employee:   group.Employee,
		Dependents: group.Dependents,
		Cost:       benefits.CalculateEmployeeBenefitsCost(&group.Employee, group.Dependents),
	})
}

func (h *Handler) handleHealth(ctx *fasthttp.RequestCtx) {
	writeJSON(ctx, fasthttp.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) sourceContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), h.timeout)
}

// sourceError maps a data source failure to 404 for missing records and 502
// for everything else.
func (h *Handler) sourceError(ctx *fasthttp.RequestCtx, err error) {
	if errors.Is(err, datasource.ErrNotFound) {
		writeError(ctx, fasthttp.StatusNotFound, "Record not found")
		return
	}
	h.logger.Warn("data source request failed", zap.Error(err))
	writeError(ctx, fasthttp.StatusBadGateway, "Data source unavailable")
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		writeError(ctx, fasthttp.StatusInternalServerError, "Encode response: "+err.Error())
		return
	}
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(b)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	b, _ := json.Marshal(model.ErrorResponse{
		Status:  status,
		Message: message,
	})
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(b)
}
