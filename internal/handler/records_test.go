package handler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"

	"github.com/cpeele00/employee-benefits/internal/datasource"
	"github.com/cpeele00/employee-benefits/internal/model"
	"github.com/cpeele00/employee-benefits/internal/validation"
)

func TestEmployeeRecords(t *testing.T) {
	src := testSource()
	h := newHandler(src)

	ctx := do(t, h, fasthttp.MethodGet, "/employees", "")
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	assert.Len(t, decode[[]model.Employee](t, ctx), 2)

	ctx = do(t, h, fasthttp.MethodPost, "/employees",
		`{"firstName": "Mary", "lastName": "Jones", "benefits": ["life"]}`)
	require.Equal(t, fasthttp.StatusCreated, ctx.Response.StatusCode())
	created := decode[model.Employee](t, ctx)
	require.NotEmpty(t, created.ID)

	ctx = do(t, h, fasthttp.MethodPut, "/employees/"+created.ID,
		`{"firstName": "Mary", "lastName": "Brown", "benefits": ["life", "dental"]}`)
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	assert.Equal(t, created.ID, decode[model.Employee](t, ctx).ID)

	ctx = do(t, h, fasthttp.MethodGet, "/employees/"+created.ID, "")
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	assert.Equal(t, "Brown", decode[model.Employee](t, ctx).LastName)

	ctx = do(t, h, fasthttp.MethodDelete, "/employees/"+created.ID, "")
	assert.Equal(t, fasthttp.StatusNoContent, ctx.Response.StatusCode())

	_, err := src.GetEmployee(context.Background(), created.ID)
	assert.ErrorIs(t, err, datasource.ErrNotFound)

	ctx = do(t, h, fasthttp.MethodDelete, "/employees/"+created.ID, "")
	assert.Equal(t, fasthttp.StatusNotFound, ctx.Response.StatusCode())
}

func TestCreateEmployeeRejectsInvalidRecord(t *testing.T) {
	src := testSource()
	h := newHandler(src)

	ctx := do(t, h, fasthttp.MethodPost, "/employees",
		`{"firstName": " ", "lastName": "Jones", "benefits": ["medical", "Medical"]}`)
	require.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())

	resp := decode[model.ErrorResponse](t, ctx)
	assert.Equal(t, "Validation failed", resp.Message)
	require.Len(t, resp.Messages, 2)
	assert.Equal(t, validation.CodeInvalidFirstName, resp.Messages[0].Code)
	assert.Equal(t, "employee.firstName", resp.Messages[0].Path)
	assert.Equal(t, validation.CodeDuplicateBenefit, resp.Messages[1].Code)
	assert.Equal(t, 1, resp.Messages[1].ID)

	employees, err := src.ListEmployees(context.Background())
	require.NoError(t, err)
	assert.Len(t, employees, 2)
}

func TestUpdateEmployeeUnknownID(t *testing.T) {
	h := newHandler(testSource())

	ctx := do(t, h, fasthttp.MethodPut, "/employees/99",
		`{"firstName": "Mary", "lastName": "Jones", "benefits": ["life"]}`)
	assert.Equal(t, fasthttp.StatusNotFound, ctx.Response.StatusCode())
}

func TestDependentRecords(t *testing.T) {
	src := testSource()
	h := newHandler(src)

	ctx := do(t, h, fasthttp.MethodPost, "/dependents",
		`{"employeeId": "2", "firstName": "Tom", "lastName": "Smith", "relationship": "child", "benefits": ["dental"]}`)
	require.Equal(t, fasthttp.StatusCreated, ctx.Response.StatusCode())
	created := decode[model.Dependent](t, ctx)
	require.NotEmpty(t, created.ID)

	ctx = do(t, h, fasthttp.MethodGet, "/employees/2/benefits", "")
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	assert.Equal(t, 2000.0, decode[model.EmployeeCost](t, ctx).Cost.TotalAnnualCost)

	ctx = do(t, h, fasthttp.MethodPut, "/dependents/"+created.ID,
		`{"employeeId": "2", "firstName": "Tom", "lastName": "Smith", "relationship": "parent", "benefits": ["dental"]}`)
	require.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())
	resp := decode[model.ErrorResponse](t, ctx)
	require.Len(t, resp.Messages, 1)
	assert.Equal(t, validation.CodeInvalidRelationship, resp.Messages[0].Code)

	ctx = do(t, h, fasthttp.MethodGet, "/dependents/"+created.ID, "")
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	assert.Equal(t, model.RelationshipChild, decode[model.Dependent](t, ctx).Relationship)

	ctx = do(t, h, fasthttp.MethodDelete, "/dependents/"+created.ID, "")
	assert.Equal(t, fasthttp.StatusNoContent, ctx.Response.StatusCode())

	ctx = do(t, h, fasthttp.MethodGet, "/dependents", "")
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	assert.Len(t, decode[[]model.Dependent](t, ctx), 2)
}

func TestRecordsInvalidBody(t *testing.T) {
	h := newHandler(testSource())

	ctx := do(t, h, fasthttp.MethodPost, "/dependents", `{"firstName": `)
	assert.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())
	assert.Contains(t, decode[model.ErrorResponse](t, ctx).Message, "Invalid request body")
}

func TestRecordsDataSourceDown(t *testing.T) {
	h := newHandler(failingSource{})

	ctx := do(t, h, fasthttp.MethodGet, "/employees", "")
	assert.Equal(t, fasthttp.StatusBadGateway, ctx.Response.StatusCode())
}
