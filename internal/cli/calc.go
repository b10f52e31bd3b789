package cli

import (
	"fmt"
	"os"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cpeele00/employee-benefits/internal/datasource"
	"github.com/cpeele00/employee-benefits/internal/engine"
	"github.com/cpeele00/employee-benefits/internal/model"
	"github.com/cpeele00/employee-benefits/internal/report"
)

func newCalcCommand(opts *options) *cobra.Command {
	var (
		file   string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Calculate benefit costs for the whole roster",
		Long: `Calculate benefit costs for every employee and the organization totals.

The roster is read from --file (a JSON document with "employees" and
"dependents" arrays) or fetched from the data source.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := opts.source(file)
			if err != nil {
				return err
			}

			employees, dependents, err := datasource.FetchRoster(cmd.Context(), source)
			if err != nil {
				return err
			}
			opts.logger.Debug("roster loaded",
				zap.Int("employees", len(employees)),
				zap.Int("dependents", len(dependents)),
			)

			resp := engine.Process(&model.CalculationRequest{Employees: employees, Dependents: dependents})

			out := cmd.OutOrStdout()
			if asJSON {
				b, err := json.MarshalIndent(resp, "", "  ")
				if err != nil {
					return fmt.Errorf("encode result: %w", err)
				}
				if _, err := fmt.Fprintln(out, string(b)); err != nil {
					return err
				}
			} else if err := report.Write(out, resp); err != nil {
				return err
			}

			if meta := resp.CalculationMetadata; meta.CalculationOutcome == model.OutcomeFailure {
				return fmt.Errorf("calculation %s failed", meta.CalculationID)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "read the roster from a JSON file instead of the data source")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the full calculation response as JSON")
	return cmd
}

func (o *options) source(file string) (datasource.Source, error) {
	if file == "" {
		timeout, err := o.cfg.DataSourceTimeout()
		if err != nil {
			return nil, err
		}
		return datasource.NewHTTPSource(o.cfg.DataSource.URL, datasource.WithTimeout(timeout)), nil
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("read roster: %w", err)
	}
	var req model.CalculationRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("parse roster %s: %w", file, err)
	}
	return datasource.NewMemorySource(req.Employees, req.Dependents), nil
}
