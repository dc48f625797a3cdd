package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	zxtransformer "github.com/PolyhedraZK/zxtransformer"
	"github.com/PolyhedraZK/zxtransformer/circuit"
	"github.com/PolyhedraZK/zxtransformer/config"
	"github.com/PolyhedraZK/zxtransformer/segment"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	configPath string
	optimizer  string
	outPath    string
	printStats bool
)

var rootCmd = &cobra.Command{
	Use:           "zxopt",
	Short:         "Optimize OpenQASM circuits through the ZX intermediate representation",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var optimizeCmd = &cobra.Command{
	Use:   "optimize [file]",
	Short: "Optimize a circuit and write it back as OpenQASM",
	Long: `Reads an OpenQASM 2.0 circuit from the file, or stdin when no file is
given, optimizes every run of supported gates and writes the result.
Measurements, classically controlled gates and unknown gates are kept as is.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runOptimize,
}

var segmentsCmd = &cobra.Command{
	Use:   "segments [file]",
	Short: "Print how a circuit is split into translation units",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSegments,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML configuration file")
	optimizeCmd.Flags().StringVar(&optimizer, "optimizer", "", "optimizer to run, overrides the configuration")
	optimizeCmd.Flags().StringVarP(&outPath, "output", "o", "", "output file, stdout when empty")
	optimizeCmd.Flags().BoolVar(&printStats, "stats", false, "print gate counts to stderr")
	rootCmd.AddCommand(optimizeCmd)
	rootCmd.AddCommand(segmentsCmd)
}

func loadConfig() (*config.Config, error) {
	conf := config.Default()
	if configPath != "" {
		var err error
		if conf, err = config.Load(configPath); err != nil {
			return nil, err
		}
	}
	if optimizer != "" {
		conf.Optimizer = optimizer
	}
	return conf, conf.Validate()
}

func readCircuit(cmd *cobra.Command, args []string) (*circuit.Circuit, error) {
	var src []byte
	var err error
	if len(args) == 0 || args[0] == "-" {
		src, err = io.ReadAll(cmd.InOrStdin())
	} else {
		src, err = os.ReadFile(args[0])
	}
	if err != nil {
		return nil, errors.Wrap(err, "read circuit")
	}
	return circuit.ParseQASM(string(src))
}

func runOptimize(cmd *cobra.Command, args []string) error {
	conf, err := loadConfig()
	if err != nil {
		return err
	}
	c, err := readCircuit(cmd, args)
	if err != nil {
		return err
	}
	opts, err := conf.Options()
	if err != nil {
		return err
	}
	// stdout may carry the circuit, keep logs on stderr
	log := conf.Logger().Output(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), TimeFormat: "15:04:05"})
	tr, err := zxtransformer.New(append(opts, zxtransformer.WithLogger(log))...)
	if err != nil {
		return err
	}
	res, err := tr.Transform(c)
	if err != nil {
		return err
	}
	out, err := circuit.FormatQASM(res)
	if err != nil {
		return err
	}
	if printStats {
		fmt.Fprintf(cmd.ErrOrStderr(), "operations: %d -> %d\n", c.NumOperations(), res.NumOperations())
		fmt.Fprintf(cmd.ErrOrStderr(), "moments:    %d -> %d\n", len(c.Moments()), len(res.Moments()))
	}
	if outPath == "" {
		_, err = io.WriteString(cmd.OutOrStdout(), out)
		return err
	}
	return os.WriteFile(outPath, []byte(out), 0o644)
}

func runSegments(cmd *cobra.Command, args []string) error {
	conf, err := loadConfig()
	if err != nil {
		return err
	}
	c, err := readCircuit(cmd, args)
	if err != nil {
		return err
	}
	segs, idx, err := segment.New(segment.IgnoreTags(conf.IgnoreTags...)).Segment(c)
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%d qubits, %d segments, %d units\n", idx.Len(), len(segs), segs.NumUnits())
	for i, e := range segs {
		if !e.IsUnit() {
			fmt.Fprintf(w, "%d: verbatim %s\n", i, e.Op)
			continue
		}
		st := e.Unit.GetStats()
		names := make([]string, 0, len(st.NbByName))
		for n := range st.NbByName {
			names = append(names, n)
		}
		sort.Strings(names)
		fmt.Fprintf(w, "%d: unit, %d gates (%d multi-qubit, %d non-clifford)", i, st.NbGates, st.NbMultiQubit, st.NbNonClifford)
		for _, n := range names {
			fmt.Fprintf(w, " %s=%d", n, st.NbByName[n])
		}
		fmt.Fprintln(w)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
