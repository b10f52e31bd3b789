// Package report renders calculation results for a terminal. Amounts are
// rounded to cents here only; the calculators never round.
package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"github.com/cpeele00/employee-benefits/internal/model"
)

// Money formats an amount as dollars rounded half away from zero to cents.
func Money(amount float64) string {
	return "$" + decimal.NewFromFloat(amount).StringFixed(2)
}

// Write prints one row per employee followed by the organization totals.
func Write(w io.Writer, resp *model.CalculationResponse) error {
	result := resp.CalculationResult

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, m := range result.Messages {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", m.Level, m.Code, m.Path, m.Message)
	}
	if len(result.Messages) > 0 {
		fmt.Fprintln(tw)
	}

	if result.Totals == nil {
		fmt.Fprintf(tw, "Calculation %s: %s\n", resp.CalculationMetadata.CalculationID, resp.CalculationMetadata.CalculationOutcome)
		return tw.Flush()
	}

	fmt.Fprintln(tw, "EMPLOYEE\tDEPENDENTS\tANNUAL COST\tDISCOUNT\tPER PAYCHECK\tNET PAY")
	for _, ec := range result.Employees {
		fmt.Fprintf(tw, "%s %s\t%d\t%s\t%s\t%s\t%s\n",
			ec.Employee.FirstName, ec.Employee.LastName,
			len(ec.Dependents),
			Money(ec.Cost.TotalAnnualCost),
			Money(ec.Cost.DiscountAmount),
			Money(ec.Cost.PerPaycheckAmount),
			Money(ec.Cost.NetPayPerPaycheck),
		)
	}

	t := result.Totals
	fmt.Fprintln(tw)
	fmt.Fprintf(tw, "Employees\t%d\n", t.TotalEmployees)
	fmt.Fprintf(tw, "Dependents\t%d\n", t.TotalDependents)
	fmt.Fprintf(tw, "Employee cost\t%s\n", Money(t.TotalEmployeeCost))
	fmt.Fprintf(tw, "Dependents cost\t%s\n", Money(t.TotalDependentsCost))
	fmt.Fprintf(tw, "Discounts\t%s\n", Money(t.TotalDiscountAmount))
	fmt.Fprintf(tw, "Total annual cost\t%s\n", Money(t.TotalAnnualCost))

	return tw.Flush()
}
