package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/macropower/listcomp/pkg/listcomp"
	"github.com/macropower/listcomp/pkg/listio"
	"github.com/macropower/listcomp/pkg/log"
)

const (
	evensExamples = `  # Prints 0, 2, 4, 6 and 8, one per line:
  listcomp evens 0 1 2 3 4 5 6 7 8 9

  # Read numbers from stdin, one per line:
  seq 0 9 | listcomp evens

  # Emit a JSON array:
  listcomp evens 1 3 5 -o json`

	exclaimExamples = `  # Prints "I like computers!" and "Live long and prosper!":
  listcomp exclaim "I like computers" "Live long and prosper"

  # Exclaim every line of a file:
  listcomp exclaim - < sentences.txt

  # YAML in, JSON out:
  listcomp exclaim -i yaml -o json < sentences.yaml`
)

// ErrNoInput is returned when no items are given and stdin is a terminal.
var ErrNoInput = errors.New("no items: pass them as arguments or pipe them to stdin")

// TransformArgs holds the flags shared by the list subcommands.
type TransformArgs struct {
	*RootArgs

	Input  string
	Output string
}

func NewTransformArgs(rootArgs *RootArgs) *TransformArgs {
	return &TransformArgs{
		RootArgs: rootArgs,
	}
}

func (ta *TransformArgs) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&ta.Input, "input", "i", string(listio.FormatText),
		fmt.Sprintf("Format of items read from stdin, one of: %s", listio.AllFormats))
	cmd.Flags().StringVarP(&ta.Output, "output", "o", string(listio.FormatText),
		fmt.Sprintf("Format of the result, one of: %s", listio.AllFormats))

	for _, name := range []string{"input", "output"} {
		err := cmd.RegisterFlagCompletionFunc(name,
			cobra.FixedCompletions(listio.AllFormats, cobra.ShellCompDirectiveNoFileComp),
		)
		if err != nil {
			panic(err)
		}
	}
}

func (ta *TransformArgs) formats() (listio.Format, listio.Format, error) {
	in, err := listio.GetFormat(ta.Input)
	if err != nil {
		return "", "", fmt.Errorf("--input: %w", err)
	}

	out, err := listio.GetFormat(ta.Output)
	if err != nil {
		return "", "", fmt.Errorf("--output: %w", err)
	}

	return in, out, nil
}

func NewEvensCmd(ra *RootArgs) *cobra.Command {
	ta := NewTransformArgs(ra)

	cmd := &cobra.Command{
		Use:     "evens [number...]",
		Aliases: []string{"even"},
		Short:   "Keep only the even integers, in their original order",
		Long: `Keep only the integers evenly divisible by 2, in their original order.

Numbers are taken from the arguments, or read from stdin when there are
none (or the only argument is "-").`,
		Example: evensExamples,
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEvens(cmd, ta, args)
		},
	}
	ta.AddFlags(cmd)

	bindEnvVars(cmd)

	return cmd
}

func NewExclaimCmd(ra *RootArgs) *cobra.Command {
	ta := NewTransformArgs(ra)

	cmd := &cobra.Command{
		Use:   "exclaim [sentence...]",
		Short: `Append "!" to every sentence`,
		Long: `Append "!" to every sentence, keeping their order and count.

Sentences are taken from the arguments, or read from stdin when there are
none (or the only argument is "-").

Text output is one sentence per line, so a sentence containing a line break
(possible with --input json or yaml) is rejected; use --output json or yaml.`,
		Example: exclaimExamples,
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExclaim(cmd, ta, args)
		},
	}
	ta.AddFlags(cmd)

	bindEnvVars(cmd)

	return cmd
}

func runEvens(cmd *cobra.Command, ta *TransformArgs, args []string) error {
	in, out, err := ta.formats()
	if err != nil {
		return err
	}

	err = checkInput(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	var nums []int
	if readsStdin(args) {
		nums, err = listio.ReadInts(cmd.InOrStdin(), in)
	} else {
		nums, err = listio.ParseInts(args)
	}
	if err != nil {
		return fmt.Errorf("read numbers: %w", err)
	}

	evens := listcomp.EvenFilter(nums)

	log.WithContext(cmd.Context()).Debug("filtered even numbers",
		slog.Int("in", len(nums)),
		slog.Int("out", len(evens)),
	)

	return listio.Write(cmd.OutOrStdout(), out, evens) //nolint:wrapcheck // Already wrapped.
}

func runExclaim(cmd *cobra.Command, ta *TransformArgs, args []string) error {
	in, out, err := ta.formats()
	if err != nil {
		return err
	}

	err = checkInput(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	sentences := args
	if readsStdin(args) {
		sentences, err = listio.ReadStrings(cmd.InOrStdin(), in)
		if err != nil {
			return fmt.Errorf("read sentences: %w", err)
		}
	}

	exclaimed := listcomp.ExclaimTransform(sentences)

	log.WithContext(cmd.Context()).Debug("exclaimed sentences",
		slog.Int("count", len(exclaimed)),
	)

	return listio.Write(cmd.OutOrStdout(), out, exclaimed) //nolint:wrapcheck // Already wrapped.
}

// readsStdin reports whether items should come from stdin rather than args.
func readsStdin(args []string) bool {
	return len(args) == 0 || (len(args) == 1 && args[0] == "-")
}

// checkInput refuses to wait on an interactive terminal when no arguments
// were given. An explicit "-" still reads from the terminal.
func checkInput(stdin io.Reader, args []string) error {
	if len(args) > 0 {
		return nil
	}

	f, ok := stdin.(*os.File)
	if ok && term.IsTerminal(int(f.Fd())) {
		return ErrNoInput
	}

	return nil
}
