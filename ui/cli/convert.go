// Copyright (c) 2026 Digitcipher Team
// Digitcipher - six-digit code cipher
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/toeirei/digitcipher/internal/cipher"
	"github.com/toeirei/digitcipher/internal/core"
	"github.com/toeirei/digitcipher/internal/i18n"
)

// isTerminal is swapped out in tests.
var isTerminal = term.IsTerminal

// errInvalidInput is returned after every input was processed and at least
// one of them was rejected.
var errInvalidInput = errors.New("invalid input")

// readCodes returns args, or one code per non-blank line of stdin when no
// args are given and stdin is not a terminal.
func readCodes(cmd *cobra.Command, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && isTerminal(int(f.Fd())) {
		return nil, errors.New(i18n.T("cli.no_input"))
	}
	var codes []string
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			codes = append(codes, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	if len(codes) == 0 {
		return nil, errors.New(i18n.T("cli.no_input"))
	}
	return codes, nil
}

// reasonText is the localized message for a validation failure.
func reasonText(err error) string {
	var ve *cipher.ValidationError
	if errors.As(err, &ve) {
		return i18n.T(ve.Reason.MessageID())
	}
	return err.Error()
}

func (a *app) convertCmd(dir core.Direction) *cobra.Command {
	name := dir.String()
	return &cobra.Command{
		Use:   name + " [code...]",
		Short: fmt.Sprintf("%s six-digit codes", strings.ToUpper(name[:1])+name[1:]),
		Long: fmt.Sprintf(`Runs the %[1]s transform on every code given as an argument.
Without arguments, codes are read from stdin, one per line.

Each result is printed on its own line. Rejected codes are reported on
stderr and the command exits non-zero once all codes were processed.

Example:
  digitcipher %[1]s 123456 000000
  printf '123456\n999999\n' | digitcipher %[1]s`, name),
		RunE: func(cmd *cobra.Command, args []string) error {
			codes, err := readCodes(cmd, args)
			if err != nil {
				return err
			}
			results := a.converter().ConvertBatch(cmd.Context(), dir, codes)
			return printResults(cmd.OutOrStdout(), cmd.ErrOrStderr(), results)
		},
	}
}

func printResults(out, errOut io.Writer, results []core.BatchResult) error {
	failed := 0
	for _, r := range results {
		if r.Failed() {
			failed++
			fmt.Fprintln(errOut, i18n.T("cli.invalid", r.Raw, reasonText(r.Err)))
			continue
		}
		fmt.Fprintln(out, r.Conversion.Output)
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d codes rejected", errInvalidInput, failed, len(results))
	}
	return nil
}

func (a *app) validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <code>",
		Short: "Check whether a code is a valid six-digit number",
		Long: `Prints "valid" or the reason the code is rejected. The code is checked
exactly as given, without trimming.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res := cipher.Validate(args[0])
			if res.Valid() {
				fmt.Fprintln(cmd.OutOrStdout(), i18n.T("validation.valid"))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T(res.Reason().MessageID()))
			return fmt.Errorf("%w: %s", errInvalidInput, res.Reason())
		},
	}
}
