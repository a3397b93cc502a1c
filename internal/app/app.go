// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"herd/internal/appcore"
	"herd/internal/cmdutil"
	"herd/internal/config"
	"herd/internal/version"
	"herd/internal/writers"
)

// session is the state of one invocation. Commands report failures that
// happen before any star is evolved as errors (exit code 2) and set code
// otherwise.
type session struct {
	v      *viper.Viper
	stdout io.Writer
	stderr io.Writer
	code   int
}

// load reads the layered configuration after binding the flags of cmd.
func (s *session) load(cmd *cobra.Command, bindings map[string]string) (config.Config, error) {
	if err := bindFlags(s.v, cmd.Flags(), bindings); err != nil {
		return config.Config{}, err
	}
	cfgFile, _ := cmd.Flags().GetString("config")
	if err := config.Init(s.v, cfgFile); err != nil {
		return config.Config{}, err
	}
	return config.Load(s.v)
}

// bindFlags binds viper keys to flags by name. Binding happens only for the
// command that runs, so commands sharing a key do not clobber each other.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet, bindings map[string]string) error {
	for key, name := range bindings {
		f := fs.Lookup(name)
		if f == nil {
			return fmt.Errorf("internal: no flag %q for key %q", name, key)
		}
		if err := v.BindPFlag(key, f); err != nil {
			return err
		}
	}
	return nil
}

// outputBindings are shared by every command that writes results.
var outputBindings = map[string]string{
	"output":  "output",
	"header":  "header",
	"quiet":   "quiet",
	"threads": "threads",
}

func merge(maps ...map[string]string) map[string]string {
	out := map[string]string{}
	for _, m := range maps {
		for k, v := range m {
			out[k] = v
		}
	}
	return out
}

func newRootCmd(s *session) *cobra.Command {
	root := &cobra.Command{
		Use:   "herd",
		Short: "Analytic single-star evolution",
		Long: `herd evolves isolated stars with the analytic fitting formulae of
Hurley, Pols & Tout (2000) and prints their trajectories.

Settings are layered: flags override HERD_* environment variables, which
override a .herd.toml or .herd.yaml file, which overrides built-in defaults.`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetVersionTemplate("herd version {{.Version}}\n")

	pf := root.PersistentFlags()
	pf.String("config", "", "config file (default .herd.toml or .herd.yaml)")
	pf.StringP("output", "o", "text", "output format: text|json|jsonl|pretty")
	pf.Bool("header", false, "print a header row (text output)")
	pf.BoolP("quiet", "q", false, "suppress warnings")
	pf.IntP("threads", "t", 0, "worker goroutines (0 = all CPUs)")

	root.AddCommand(newEvolveCmd(s), newPopulationCmd(s), newLandmarksCmd(s), newVersionCmd(s))
	return root
}

// RunContext runs herd with argv and returns the process exit code.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	s := &session{v: viper.New(), stdout: stdout, stderr: stderr}

	root := newRootCmd(s)
	root.SetArgs(argv)
	root.SetOut(outw)
	root.SetErr(stderr)

	err := root.ExecuteContext(parent)
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return appcore.ExitOK
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return appcore.ExitRuntime
	}

	if err != nil {
		cmdutil.Errorf(stderr, "%v", err)
		_, _ = fmt.Fprintln(stderr, "Run 'herd --help' for usage.")
		return appcore.ExitUsage
	}
	return s.code
}

// Run is RunContext without cancellation.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
