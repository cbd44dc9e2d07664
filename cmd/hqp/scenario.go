package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/RaulMFalcon/HadamardQuasigroupProduct/chain"
	"github.com/RaulMFalcon/HadamardQuasigroupProduct/completion"
	"github.com/RaulMFalcon/HadamardQuasigroupProduct/hadamard"
	"github.com/RaulMFalcon/HadamardQuasigroupProduct/isomorphism"
	"github.com/RaulMFalcon/HadamardQuasigroupProduct/latin"
)

// scenario is a yaml batch of operations, each checked against optional
// expectations. Operand paths resolve relative to the scenario file.
type scenario struct {
	Steps []step `yaml:"steps"`
}

type step struct {
	Name        string  `yaml:"name"`
	Op          string  `yaml:"op"`
	Grid        string  `yaml:"grid"`
	Transversal string  `yaml:"transversal"`
	Left        string  `yaml:"left"`
	Right       string  `yaml:"right"`
	Table       string  `yaml:"table"`
	First       string  `yaml:"first"`
	Second      string  `yaml:"second"`
	Expect      *expect `yaml:"expect"`
}

// expect constrains a step's result number: the solution count for the
// search operations, the index for rho. Nil fields are not checked.
type expect struct {
	Count *int `yaml:"count"`
	Min   *int `yaml:"min"`
}

func newRunCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "run <scenario>",
		Short: "Execute a yaml scenario of operations with expectations",
		Long: `run reads a yaml file of the form

    steps:
      - name: all order-3 squares
        op: complete          # complete|fill|chain|product|rho|isom
        grid: empty3.txt
        expect: { count: 12 }
      - op: rho
        table: cyclic3.txt
        expect: { count: 3 }

and executes the steps in order, failing on the first error or missed
expectation. Operand keys per op: complete and chain take grid, fill
takes grid and transversal, product takes left, right and table, rho
takes table, isom takes first and second.`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScenario(args[0], opts)
		},
	}
}

func runScenario(path string, opts *globalOptions) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var sc scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if len(sc.Steps) == 0 {
		return fmt.Errorf("%s: no steps", path)
	}

	dir := filepath.Dir(path)
	for i, st := range sc.Steps {
		start := time.Now()
		got, err := st.run(dir, opts)
		if err != nil {
			return fmt.Errorf("step %d (%s): %w", i+1, st.label(), err)
		}
		if err := st.check(got); err != nil {
			return fmt.Errorf("step %d (%s): %w", i+1, st.label(), err)
		}
		slog.Info("step done",
			"step", st.label(),
			"op", st.Op,
			"result", got,
			"elapsed", time.Since(start))
	}

	return nil
}

func (s step) label() string {
	if s.Name != "" {
		return s.Name
	}

	return s.Op
}

// run executes one step and reports its result number.
func (s step) run(dir string, opts *globalOptions) (int, error) {
	searchOpts := completion.Options{MaxNodes: opts.maxNodes, Workers: opts.workers}

	switch s.Op {
	case "complete":
		g, err := s.grid(dir, s.Grid, "grid")
		if err != nil {
			return 0, err
		}
		squares, err := completion.Complete(g, searchOpts)

		return len(squares), err

	case "fill":
		g, err := s.grid(dir, s.Grid, "grid")
		if err != nil {
			return 0, err
		}
		t, err := s.transversal(dir)
		if err != nil {
			return 0, err
		}
		grids, err := completion.FillTransversal(g, t, searchOpts)

		return len(grids), err

	case "chain":
		g, err := s.grid(dir, s.Grid, "grid")
		if err != nil {
			return 0, err
		}
		squares, err := chain.Squares(g, chain.Options{MaxNodes: opts.maxNodes, Workers: opts.workers})

		return len(squares), err

	case "product":
		p, err := s.grid(dir, s.Left, "left")
		if err != nil {
			return 0, err
		}
		q, err := s.grid(dir, s.Right, "right")
		if err != nil {
			return 0, err
		}
		table, err := s.square(dir, s.Table, "table")
		if err != nil {
			return 0, err
		}
		if _, err = hadamard.Product(p, q, table); err != nil {
			return 0, err
		}

		return 1, nil

	case "rho":
		table, err := s.square(dir, s.Table, "table")
		if err != nil {
			return 0, err
		}

		return hadamard.Rho(table, hadamard.DefaultOptions())

	case "isom":
		l1, err := s.square(dir, s.First, "first")
		if err != nil {
			return 0, err
		}
		l2, err := s.square(dir, s.Second, "second")
		if err != nil {
			return 0, err
		}
		isos, err := isomorphism.All(l1, l2, isomorphism.Options{MaxNodes: opts.maxNodes, Workers: opts.workers})

		return len(isos), err

	default:
		return 0, fmt.Errorf("unknown op %q", s.Op)
	}
}

func (s step) check(got int) error {
	if s.Expect == nil {
		return nil
	}
	if s.Expect.Count != nil && got != *s.Expect.Count {
		return fmt.Errorf("got %d, want exactly %d", got, *s.Expect.Count)
	}
	if s.Expect.Min != nil && got < *s.Expect.Min {
		return fmt.Errorf("got %d, want at least %d", got, *s.Expect.Min)
	}

	return nil
}

func (s step) grid(dir, path, key string) (g latin.Grid, err error) {
	if path == "" {
		return g, fmt.Errorf("op %s needs %s", s.Op, key)
	}

	return readGrid(resolve(dir, path))
}

func (s step) square(dir, path, key string) (sq latin.Square, err error) {
	if path == "" {
		return sq, fmt.Errorf("op %s needs %s", s.Op, key)
	}

	return readSquare(resolve(dir, path))
}

func (s step) transversal(dir string) (tr latin.Transversal, err error) {
	if s.Transversal == "" {
		return tr, fmt.Errorf("op %s needs transversal", s.Op)
	}

	return readTransversal(resolve(dir, s.Transversal))
}

func resolve(dir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}

	return filepath.Join(dir, path)
}
