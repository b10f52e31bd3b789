package handler

import (
	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"

	"github.com/cpeele00/employee-benefits/internal/model"
	"github.com/cpeele00/employee-benefits/internal/validation"
)

// The record routes pass employee and dependent changes through to the data
// source. Writes are validated first so the data source never stores a
// record the calculators would reject.

func (h *Handler) listEmployees(ctx *fasthttp.RequestCtx) {
	c, cancel := h.sourceContext()
	defer cancel()

	employees, err := h.source.ListEmployees(c)
	if err != nil {
		h.sourceError(ctx, err)
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, employees)
}

func (h *Handler) getEmployee(ctx *fasthttp.RequestCtx, id string) {
	c, cancel := h.sourceContext()
	defer cancel()

	e, err := h.source.GetEmployee(c, id)
	if err != nil {
		h.sourceError(ctx, err)
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, e)
}

func (h *Handler) createEmployee(ctx *fasthttp.RequestCtx) {
	var e model.Employee
	if !decodeRecord(ctx, &e) || !valid(ctx, validation.Employee(e, "employee")) {
		return
	}

	c, cancel := h.sourceContext()
	defer cancel()

	created, err := h.source.CreateEmployee(c, e)
	if err != nil {
		h.sourceError(ctx, err)
		return
	}
	writeJSON(ctx, fasthttp.StatusCreated, created)
}

func (h *Handler) updateEmployee(ctx *fasthttp.RequestCtx, id string) {
	var e model.Employee
	if !decodeRecord(ctx, &e) {
		return
	}
	e.ID = id
	if !valid(ctx, validation.Employee(e, "employee")) {
		return
	}

	c, cancel := h.sourceContext()
	defer cancel()

	updated, err := h.source.UpdateEmployee(c, e)
	if err != nil {
		h.sourceError(ctx, err)
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, updated)
}

func (h *Handler) deleteEmployee(ctx *fasthttp.RequestCtx, id string) {
	c, cancel := h.sourceContext()
	defer cancel()

	if err := h.source.DeleteEmployee(c, id); err != nil {
		h.sourceError(ctx, err)
		return
	}
	ctx.SetStatusCode(fasthttp.StatusNoContent)
}

func (h *Handler) listDependents(ctx *fasthttp.RequestCtx) {
	c, cancel := h.sourceContext()
	defer cancel()

	dependents, err := h.source.ListDependents(c)
	if err != nil {
		h.sourceError(ctx, err)
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, dependents)
}

func (h *Handler) getDependent(ctx *fasthttp.RequestCtx, id string) {
	c, cancel := h.sourceContext()
	defer cancel()

	d, err := h.source.GetDependent(c, id)
	if err != nil {
		h.sourceError(ctx, err)
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, d)
}

func (h *Handler) createDependent(ctx *fasthttp.RequestCtx) {
	var d model.Dependent
	if !decodeRecord(ctx, &d) || !valid(ctx, validation.Dependent(d, "dependent")) {
		return
	}

	c, cancel := h.sourceContext()
	defer cancel()

	created, err := h.source.CreateDependent(c, d)
	if err != nil {
		h.sourceError(ctx, err)
		return
	}
	writeJSON(ctx, fasthttp.StatusCreated, created)
}

func (h *Handler) updateDependent(ctx *fasthttp.RequestCtx, id string) {
	var d model.Dependent
	if !decodeRecord(ctx, &d) {
		return
	}
	d.ID = id
	if !valid(ctx, validation.Dependent(d, "dependent")) {
		return
	}

	c, cancel := h.sourceContext()
	defer cancel()

	updated, err := h.source.UpdateDependent(c, d)
	if err != nil {
		h.sourceError(ctx, err)
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, updated)
}

func (h *Handler) deleteDependent(ctx *fasthttp.RequestCtx, id string) {
	c, cancel := h.sourceContext()
	defer cancel()

	if err := h.source.DeleteDependent(c, id); err != nil {
		h.sourceError(ctx, err)
		return
	}
	ctx.SetStatusCode(fasthttp.StatusNoContent)
}

func decodeRecord(ctx *fasthttp.RequestCtx, v any) bool {
	if err := json.Unmarshal(ctx.PostBody(), v); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return false
	}
	return true
}

// valid writes a 400 carrying every message when any of them is critical.
func valid(ctx *fasthttp.RequestCtx, msgs []model.CalculationMessage) bool {
	if !validation.HasCritical(msgs) {
		return true
	}
	b, _ := json.Marshal(model.ErrorResponse{
		Status:   fasthttp.StatusBadRequest,
		Message:  "Validation failed",
		Messages: validation.Number(msgs),
	})
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(fasthttp.StatusBadRequest)
	ctx.SetBody(b)
	return false
}
