package main

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"safenum/internal/checked"
	"safenum/internal/observ"
)

var (
	selftestWorkers int
	selftestTimings bool
)

func init() {
	selftestCmd.Flags().IntVar(&selftestWorkers, "workers", runtime.NumCPU(), "number of parallel property sweeps")
	selftestCmd.Flags().BoolVar(&selftestTimings, "timings", false, "print per-sweep timings")
}

var selftestCmd = &cobra.Command{
	Use:   "selftest",
	Short: "Run the checked-arithmetic property sweeps",
	Long: `Selftest sweeps boundary values of every fixed-width type through the
checked operations and verifies the algebraic properties that hold when an
operation succeeds: casts round-trip, subtraction inverts addition, division
inverts multiplication, shifts respect the operand width.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		applyColorMode(cmd, "")
		quiet, _ := cmd.Flags().GetBool("quiet")
		out := cmd.OutOrStdout()

		sweeps := buildSweeps()
		timer := observ.NewTimer()
		var mu sync.Mutex

		g := new(errgroup.Group)
		if selftestWorkers > 0 {
			g.SetLimit(selftestWorkers)
		}
		for _, sw := range sweeps {
			sw := sw
			g.Go(func() error {
				mu.Lock()
				idx := timer.Begin(sw.name)
				mu.Unlock()
				err := sw.run()
				mu.Lock()
				timer.End(idx, "")
				mu.Unlock()
				if err != nil {
					return fmt.Errorf("%s: %w", sw.name, err)
				}
				if !quiet {
					mu.Lock()
					fmt.Fprintf(out, "%s %s\n", color.GreenString("ok"), sw.name)
					mu.Unlock()
				}
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}
		if selftestTimings {
			fmt.Fprint(out, timer.Summary())
		}
		if !quiet {
			fmt.Fprintf(out, "%d sweeps passed\n", len(sweeps))
		}
		return nil
	},
}

type sweep struct {
	name string
	run  func() error
}

func buildSweeps() []sweep {
	var sweeps []sweep
	sweeps = append(sweeps, sweepsFor[int8]("int8")...)
	sweeps = append(sweeps, sweepsFor[int16]("int16")...)
	sweeps = append(sweeps, sweepsFor[int32]("int32")...)
	sweeps = append(sweeps, sweepsFor[int64]("int64")...)
	sweeps = append(sweeps, sweepsFor[uint8]("uint8")...)
	sweeps = append(sweeps, sweepsFor[uint16]("uint16")...)
	sweeps = append(sweeps, sweepsFor[uint32]("uint32")...)
	sweeps = append(sweeps, sweepsFor[uint64]("uint64")...)
	return sweeps
}

// probeValues picks the boundary neighborhood of R plus a few small values.
func probeValues[R checked.Integer]() []R {
	max := checked.MaxOf[R]()
	min := checked.MinOf[R]()
	vals := []R{0, 1, 2, 3, max, max - 1, max - 2}
	if checked.Signed[R]() {
		vals = append(vals, min, min+1, min+2, min/2, max/2, R(0)-1, R(0)-2)
	}
	return vals
}

func sweepsFor[R checked.Integer](name string) []sweep {
	return []sweep{
		{name + "/cast-round-trip", func() error {
			for _, v := range probeValues[R]() {
				r := checked.Cast[R](v)
				if r.IsErr() {
					return fmt.Errorf("Cast(%v) failed: %v", v, r.Err())
				}
				if r.Value() != v {
					return fmt.Errorf("Cast(%v) = %v", v, r.Value())
				}
			}
			return nil
		}},
		{name + "/add-sub-inverse", func() error {
			vals := probeValues[R]()
			for _, a := range vals {
				for _, b := range vals {
					sum := checked.Add[R](a, b)
					if sum.IsErr() {
						continue
					}
					back := checked.Subtract[R](sum.Value(), b)
					if back.IsErr() || back.Value() != a {
						return fmt.Errorf("(%v + %v) - %v did not return %v", a, b, b, a)
					}
				}
			}
			return nil
		}},
		{name + "/mul-div-inverse", func() error {
			vals := probeValues[R]()
			for _, a := range vals {
				for _, b := range vals {
					if b == 0 {
						continue
					}
					prod := checked.Multiply[R](a, b)
					if prod.IsErr() {
						continue
					}
					back := checked.Divide[R](prod.Value(), b)
					if back.IsErr() || back.Value() != a {
						return fmt.Errorf("(%v * %v) / %v did not return %v", a, b, b, a)
					}
				}
			}
			return nil
		}},
		{name + "/divide-corners", func() error {
			if r := checked.Divide[R](R(1), R(0)); r.Kind() != checked.DomainError {
				return fmt.Errorf("1 / 0 classified as %v", r.Kind())
			}
			if r := checked.Modulus[R](R(1), R(0)); r.Kind() != checked.DomainError {
				return fmt.Errorf("1 %% 0 classified as %v", r.Kind())
			}
			if checked.Signed[R]() {
				min := checked.MinOf[R]()
				if r := checked.Divide[R](min, R(0)-1); r.Kind() != checked.DomainError {
					return fmt.Errorf("MIN / -1 classified as %v", r.Kind())
				}
			}
			return nil
		}},
		{name + "/shift-bounds", func() error {
			bits := checked.Bits[R]()
			if r := checked.LeftShift[R](R(1), bits); r.Kind() != checked.DomainError {
				return fmt.Errorf("1 << %d classified as %v", bits, r.Kind())
			}
			if r := checked.RightShift[R](R(1), -1); r.Kind() != checked.DomainError {
				return fmt.Errorf("1 >> -1 classified as %v", r.Kind())
			}
			for s := 0; s < bits-1; s++ {
				left := checked.LeftShift[R](R(1), s)
				if left.IsErr() {
					continue
				}
				back := checked.RightShift[R](left.Value(), s)
				if back.IsErr() || back.Value() != R(1) {
					return fmt.Errorf("(1 << %d) >> %d did not return 1", s, s)
				}
			}
			return nil
		}},
		{name + "/deterministic", func() error {
			vals := probeValues[R]()
			for _, a := range vals {
				for _, b := range vals {
					first := checked.Multiply[R](a, b)
					second := checked.Multiply[R](a, b)
					if first.IsErr() != second.IsErr() {
						return fmt.Errorf("%v * %v not deterministic", a, b)
					}
					if first.IsErr() {
						if first.Err().Error() != second.Err().Error() {
							return fmt.Errorf("%v * %v diagnostics differ", a, b)
						}
						continue
					}
					if first.Value() != second.Value() {
						return fmt.Errorf("%v * %v values differ", a, b)
					}
				}
			}
			return nil
		}},
	}
}
