package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"

	"github.com/macropower/listcomp/pkg/config"
	"github.com/macropower/listcomp/pkg/listio"
)

// ErrorHandler renders command errors for [fang.WithErrorHandler], followed
// by a hint when the kind of error has an obvious fix.
func ErrorHandler(w io.Writer, styles fang.Styles, err error) {
	mustN(fmt.Fprintln(w, styles.ErrorHeader.String()))
	mustN(fmt.Fprintln(w, lipgloss.NewStyle().MarginLeft(2).Render(err.Error())))
	mustN(fmt.Fprintln(w))

	hint, flag := errorHint(err)
	if hint == "" {
		return
	}

	parts := []string{styles.ErrorText.UnsetWidth().Render(hint)}
	if flag != "" {
		parts = append(parts,
			styles.Program.Flag.Render(flag),
			styles.ErrorText.UnsetWidth().UnsetMargins().UnsetTransform().PaddingLeft(1).Render("for usage."),
		)
	}

	mustN(fmt.Fprintln(w, lipgloss.JoinHorizontal(lipgloss.Left, parts...)))
	mustN(fmt.Fprintln(w))
}

// errorHint returns a short suggestion for err, and optionally a flag to
// highlight after it.
func errorHint(err error) (string, string) {
	switch {
	case isUsageError(err), errors.Is(err, ErrNoInput):
		return "Try", "--help"
	case errors.Is(err, config.ErrInvalidConfig):
		return "Fix the configuration file, or point --config at another one.", ""
	case errors.Is(err, listio.ErrMultiline):
		return "Items with line breaks need --output json or yaml.", ""
	case errors.Is(err, listio.ErrInvalidItem):
		return "Check that --input matches the data; negative numbers go after --.", ""
	}

	return "", ""
}

// XXX: this is a hack to detect usage errors.
// See: https://github.com/spf13/cobra/pull/2266
func isUsageError(err error) bool {
	s := err.Error()
	for _, prefix := range []string{
		"flag needs an argument:",
		"unknown flag:",
		"unknown shorthand flag:",
		"unknown command",
		"invalid argument",
		"accepts ",
	} {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}

	return false
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

func mustN(_ int, err error) {
	must(err)
}
