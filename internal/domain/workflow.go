package domain

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"crosswire.dev/pkg/crosswire/internal/adapter"
	"crosswire.dev/pkg/crosswire/internal/controller"
	m "crosswire.dev/pkg/crosswire/internal/model"
)

// ReportVersion is written into every saved report.
const ReportVersion = 1

// InputArgs selects where the two wire lines come from. Literal wires win over Path.
type InputArgs struct {
	Path  m.Path
	Wires []string
}

// SolveArgs are the arguments of Workflow.Solve.
type SolveArgs struct {
	InputArgs
	Save    bool
	Reports m.Path
}

// ViewArgs are the arguments of Workflow.View.
type ViewArgs struct {
	Reports m.Path
}

// Workflow connects input, solver, report storage and display for each CLI command.
type Workflow interface {
	Solve(ctx context.Context, args SolveArgs) error
	Segments(ctx context.Context, args InputArgs) error
	Candidates(ctx context.Context, args InputArgs) error
	View(ctx context.Context, args ViewArgs) error
}

type workflow struct {
	input  adapter.InputAdapter
	store  adapter.ReportStore
	ui     controller.UI
	solver Solver
	now    func() time.Time
}

// NewWorkflow wires the workflow to its collaborators.
func NewWorkflow(
	input adapter.InputAdapter,
	store adapter.ReportStore,
	ui controller.UI,
	solver Solver,
) Workflow {
	return &workflow{
		input:  input,
		store:  store,
		ui:     ui,
		solver: solver,
		now:    time.Now,
	}
}

func (w *workflow) Solve(ctx context.Context, args SolveArgs) error {
	solution, err := w.solve(ctx, args.InputArgs)
	if err != nil {
		return err
	}

	if err := w.ui.DisplayResult(ctx, solution.Result); err != nil {
		return err
	}

	if args.Save {
		if err := w.store.SaveReport(ctx, args.Reports, w.report(solution)); err != nil {
			slog.Error("Failed to save report", "reports", args.Reports, "error", err)
			return fmt.Errorf("failed to save report: %w", err)
		}
	}

	return solution.Err()
}

func (w *workflow) Segments(ctx context.Context, args InputArgs) error {
	lines, err := w.wires(ctx, args)
	if err != nil {
		return err
	}

	wires := make([]m.Wire, 0, len(lines))

	for i, line := range lines {
		wire, err := w.solver.Wire(ctx, wireName(i), line)
		if err != nil {
			return err
		}

		wires = append(wires, wire)
	}

	return w.ui.DisplaySegments(ctx, wires)
}

func (w *workflow) Candidates(ctx context.Context, args InputArgs) error {
	solution, err := w.solve(ctx, args)
	if err != nil {
		return err
	}

	return w.ui.DisplayCandidates(ctx, solution.Candidates)
}

func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	report, err := w.store.LoadReport(ctx, args.Reports)
	if err != nil {
		return fmt.Errorf("failed to load report: %w", err)
	}

	return w.ui.DisplayReport(ctx, report)
}

func (w *workflow) solve(ctx context.Context, args InputArgs) (Solution, error) {
	lines, err := w.wires(ctx, args)
	if err != nil {
		return Solution{}, err
	}

	return w.solver.Solve(ctx, lines[0], lines[1])
}

func (w *workflow) wires(ctx context.Context, args InputArgs) ([]string, error) {
	if len(args.Wires) > 0 {
		if len(args.Wires) != 2 {
			return nil, fmt.Errorf("%w: got %d literal wires, want 2", adapter.ErrMissingWire, len(args.Wires))
		}

		return args.Wires, nil
	}

	lines, err := w.input.ReadWires(ctx, args.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read wires: %w", err)
	}

	return lines, nil
}

func (w *workflow) report(solution Solution) m.Report {
	report := m.Report{
		Version:    ReportVersion,
		Generated:  w.now().UTC(),
		Candidates: len(solution.Candidates),
		Result:     solution.Result,
	}

	for _, wire := range solution.Wires {
		report.Wires = append(report.Wires, wire.Raw)
		report.Segments = append(report.Segments, len(wire.Segments))
	}

	return report
}

func wireName(i int) string {
	if i == 0 {
		return "first"
	}

	return "second"
}
