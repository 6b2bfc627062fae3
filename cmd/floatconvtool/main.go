// Command floatconvtool is a small inspection and benchmarking companion
// for the floatconv library. It is ordinary application code built on top
// of the package; it carries no conversion logic of its own and is not
// part of the library's public contract.
package main

import (
	"fmt"
	"io"
	"math"
	"math/big"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/shiftbit/floatconv"
	"github.com/shiftbit/floatconv/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "floatconvtool",
		Short: "Inspect and benchmark floatconv's integer/float conversions",
	}
	root.AddCommand(newToFloatCmd(), newBenchCmd())
	return root
}

func newToFloatCmd() *cobra.Command {
	var from, to, round string
	cmd := &cobra.Command{
		Use:   "to-float <value>",
		Short: "Convert an integer literal to its binary32/binary64 bit pattern",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Load(); err != nil {
				return err
			}
			return runToFloat(cmd.OutOrStdout(), from, to, round, args[0])
		},
	}
	cmd.Flags().StringVar(&from, "from", "i64", "source integer type: u8|u16|u32|u64|u128|i8|i16|i32|i64|i128")
	cmd.Flags().StringVar(&to, "to", "f64", "target float format: f32|f64")
	cmd.Flags().StringVar(&round, "round", "nearest", "rounding mode: nearest|truncate")
	return cmd
}

func runToFloat(w io.Writer, from, to, round, literal string) error {
	n, ok := new(big.Int).SetString(literal, 0)
	if !ok {
		return fmt.Errorf("floatconvtool: %q is not a valid integer literal", literal)
	}

	nearest := round == "nearest"
	if !nearest && round != "truncate" {
		return fmt.Errorf("floatconvtool: unknown --round %q, want nearest or truncate", round)
	}

	switch to {
	case "f32":
		f, err := convertToF32(from, n, nearest)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "0x%08x  %v\n", math.Float32bits(f), f)
	case "f64":
		f, err := convertToF64(from, n, nearest)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "0x%016x  %v\n", math.Float64bits(f), f)
	default:
		return fmt.Errorf("floatconvtool: unknown --to %q, want f32 or f64", to)
	}
	return nil
}

func convertToF32(from string, n *big.Int, nearest bool) (float32, error) {
	switch from {
	case "u8":
		return floatconv.U8ToF32(uint8(n.Uint64())), nil
	case "u16":
		return floatconv.U16ToF32(uint16(n.Uint64())), nil
	case "u32":
		if nearest {
			return floatconv.U32ToF32Round(uint32(n.Uint64())), nil
		}
		return floatconv.U32ToF32Truncate(uint32(n.Uint64())), nil
	case "u64":
		if nearest {
			return floatconv.U64ToF32Round(n.Uint64()), nil
		}
		return floatconv.U64ToF32Truncate(n.Uint64()), nil
	case "u128":
		if nearest {
			return floatconv.U128ToF32Round(bigToU128(n)), nil
		}
		return floatconv.U128ToF32Truncate(bigToU128(n)), nil
	case "i8":
		return floatconv.I8ToF32(int8(n.Int64())), nil
	case "i16":
		return floatconv.I16ToF32(int16(n.Int64())), nil
	case "i32":
		if nearest {
			return floatconv.I32ToF32Round(int32(n.Int64())), nil
		}
		return floatconv.I32ToF32Truncate(int32(n.Int64())), nil
	case "i64":
		if nearest {
			return floatconv.I64ToF32Round(n.Int64()), nil
		}
		return floatconv.I64ToF32Truncate(n.Int64()), nil
	case "i128":
		if nearest {
			return floatconv.I128ToF32Round(bigToI128(n)), nil
		}
		return floatconv.I128ToF32Truncate(bigToI128(n)), nil
	default:
		return 0, fmt.Errorf("floatconvtool: unknown --from %q", from)
	}
}

func convertToF64(from string, n *big.Int, nearest bool) (float64, error) {
	switch from {
	case "u8":
		return floatconv.U8ToF64(uint8(n.Uint64())), nil
	case "u16":
		return floatconv.U16ToF64(uint16(n.Uint64())), nil
	case "u32":
		return floatconv.U32ToF64(uint32(n.Uint64())), nil
	case "u64":
		if nearest {
			return floatconv.U64ToF64Round(n.Uint64()), nil
		}
		return floatconv.U64ToF64Truncate(n.Uint64()), nil
	case "u128":
		if nearest {
			return floatconv.U128ToF64Round(bigToU128(n)), nil
		}
		return floatconv.U128ToF64Truncate(bigToU128(n)), nil
	case "i8":
		return floatconv.I8ToF64(int8(n.Int64())), nil
	case "i16":
		return floatconv.I16ToF64(int16(n.Int64())), nil
	case "i32":
		return floatconv.I32ToF64(int32(n.Int64())), nil
	case "i64":
		if nearest {
			return floatconv.I64ToF64Round(n.Int64()), nil
		}
		return floatconv.I64ToF64Truncate(n.Int64()), nil
	case "i128":
		if nearest {
			return floatconv.I128ToF64Round(bigToI128(n)), nil
		}
		return floatconv.I128ToF64Truncate(bigToI128(n)), nil
	default:
		return 0, fmt.Errorf("floatconvtool: unknown --from %q", from)
	}
}

// bigToU128 and bigToI128 split a math/big value into the two 64-bit words
// floatconv.U128/I128 use. The CLI is the only place in the repository
// that needs to interoperate with math/big: the library itself never
// allocates or imports it.
func bigToU128(n *big.Int) floatconv.U128 {
	mask64 := new(big.Int).SetUint64(math.MaxUint64)
	lo := new(big.Int).And(n, mask64).Uint64()
	hi := new(big.Int).Rsh(n, 64).Uint64()
	return floatconv.NewU128(hi, lo)
}

func bigToI128(n *big.Int) floatconv.I128 {
	u := new(big.Int).Set(n)
	if n.Sign() < 0 {
		mod := new(big.Int).Lsh(big.NewInt(1), 128)
		u.Add(n, mod)
	}
	v := bigToU128(u)
	return floatconv.I128{Hi: v.Hi, Lo: v.Lo}
}

func newBenchCmd() *cobra.Command {
	var cases int
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time the software, hybrid and native-cast backends against each other",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBench(cmd.OutOrStdout(), cases)
		},
	}
	cmd.Flags().IntVar(&cases, "cases", 100_000, "number of random inputs per backend")
	return cmd
}

func runBench(w io.Writer, cases int) error {
	if cases <= 0 {
		return fmt.Errorf("floatconvtool: --cases must be positive, got %d", cases)
	}

	r := rand.New(rand.NewSource(1))
	u64s := make([]uint64, cases)
	for i := range u64s {
		u64s[i] = r.Uint64()
	}

	fmt.Fprintf(w, "%-10s %-12s %s\n", "backend", "elapsed", "cases")
	for _, row := range []struct {
		name string
		run  func()
	}{
		{"native", func() {
			config.Configure(config.DefaultConfig())
			var sink float64
			for _, x := range u64s {
				sink = float64(x)
			}
			_ = sink
		}},
		{"hybrid", func() {
			config.Configure(&config.Config{ForceBackend: config.BackendHybrid})
			var sink float64
			for _, x := range u64s {
				sink = floatconv.U64ToF64Round(x)
			}
			_ = sink
		}},
		{"software", func() {
			config.Configure(&config.Config{ForceBackend: config.BackendSoftware})
			var sink float64
			for _, x := range u64s {
				sink = floatconv.U64ToF64Round(x)
			}
			_ = sink
		}},
	} {
		start := time.Now()
		row.run()
		fmt.Fprintf(w, "%-10s %-12s %d\n", row.name, time.Since(start), cases)
	}
	config.Configure(config.DefaultConfig())
	return nil
}
