// Package cmd provides the command line interface for the
// https://godoc.org/github.com/bow/et/elapsed package.
package cmd

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/bow/et/elapsed"
)

const (
	name = "et"
	desc = "Measure the wall-clock execution time of a command"
)

var (
	// These are meant to be overidden at built time using ldflags -X.
	buildTime = "?"
	version   = "dev"
	gitCommit = "?"
)

// Execute peforms the actual CLI argument parsing and launches the measured command.
func Execute() error {
	var (
		isQuiet    bool
		fieldWidth int
		alignName  string

		ver = fmt.Sprintf("%s (build time: %s, commit: %s)", version, buildTime, gitCommit)
	)

	cmd := &cobra.Command{
		Use:                   name + " [FLAGS] -- COMMAND [ARG...]",
		Short:                 desc,
		Version:               ver,
		DisableFlagsInUseLine: true,
		SilenceErrors:         true,

		Args: func(cmd *cobra.Command, args []string) error {
			dashIdx := cmd.ArgsLenAtDash()
			if len(args) < 1 || dashIdx == len(args) {
				return fmt.Errorf("a command must be specified")
			}
			if dashIdx > 0 {
				return fmt.Errorf("unexpected arguments before \"--\": %q", args[:dashIdx])
			}
			return nil
		},

		Run: func(cmd *cobra.Command, args []string) {
			var cmdArgs []string
			if dashIdx := cmd.ArgsLenAtDash(); dashIdx == -1 {
				cmdArgs = args
			} else {
				cmdArgs = args[dashIdx:]
			}
			exitCode := run(cmdArgs, isQuiet, fieldWidth, alignName)
			if exitCode != 0 {
				os.Exit(exitCode) // nolint: revive
			}
		},
	}

	flagSet := cmd.Flags()
	flagSet.SortFlags = false
	flagSet.BoolVarP(&isQuiet, "quiet", "q", false, "print only the elapsed time")
	flagSet.IntVarP(&fieldWidth, "width", "w", 0, "set a minimum field width for the elapsed time")
	flagSet.StringVarP(&alignName, "align", "a", "left", "set field alignment (left|right|center)")

	return cmd.Execute()
}

// run calls the actual function for measuring.
func run(cmdArgs []string, isQuiet bool, fieldWidth int, alignName string) int {
	if len(cmdArgs) == 0 {
		fmt.Printf("%7s: a command must be specified\n", "ERROR")
		return 1
	}

	align, err := elapsed.ParseAlignment(alignName)
	if err != nil {
		fmt.Printf("%7s: %s\n", "ERROR", err)
		return 1
	}

	et, runErr := elapsed.Measure(func() error {
		child := exec.Command(cmdArgs[0], cmdArgs[1:]...)
		child.Stdin = os.Stdin
		child.Stdout = os.Stdout
		child.Stderr = os.Stderr

		return child.Run()
	})

	if runErr != nil {
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			// The command ran and failed; its time is still valid, and its exit code
			// propagates.
			show(et, cmdArgs[0], isQuiet, fieldWidth, align)
			return exitErr.ExitCode()
		}

		fmt.Printf("%7s: %s\n", "ERROR", errors.Wrapf(runErr, "running %q", cmdArgs[0]))
		return 1
	}

	show(et, cmdArgs[0], isQuiet, fieldWidth, align)

	return 0
}

// show prints a single elapsed-time report line.
func show(et elapsed.Elapsed, cmdName string, isQuiet bool, fieldWidth int, align elapsed.Alignment) {
	disp := et.String()
	if fieldWidth > 0 {
		disp = et.Pad(fieldWidth, align, ' ')
	}

	if isQuiet {
		fmt.Println(disp)
		return
	}

	fmt.Printf("%7s: %s in %s\n", "done", cmdName, disp)
}
