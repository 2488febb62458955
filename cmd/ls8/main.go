// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"fmt"
	"os"
	"runtime/debug"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Version is filled in by the linker, but *not* when installing via "go
// install".
var Version string

var rootCmd = &cobra.Command{
	Use:   "ls8 [flags] FILE",
	Short: "An emulator for the LS-8 8-bit CPU.",
	Long: `Load an LS-8 program and run it until it halts.

FILE may be an .ls8 binary listing, an .asm or .s assembly source,
or a raw memory image. Use '-' to read from standard input.`,
	Run: func(cmd *cobra.Command, args []string) {
		if getFlag(cmd, "version") {
			fmt.Print("ls8 ")
			if Version != "" {
				fmt.Printf("%s", Version)
			} else if info, ok := debug.ReadBuildInfo(); ok {
				fmt.Printf("%s", info.Main.Version)
			} else {
				fmt.Printf("(unknown version)")
			}
			fmt.Println()
			return
		}

		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(EXIT_USAGE)
		}

		opts := options{
			Format:      getString(cmd, "format"),
			Budget:      getInt(cmd, "budget"),
			Timeout:     getDuration(cmd, "timeout"),
			Trace:       getFlag(cmd, "trace"),
			Output:      getString(cmd, "output"),
			Disassemble: getFlag(cmd, "disassemble"),
			Defines:     getStringArray(cmd, "define"),
			Verbose:     getFlag(cmd, "verbose"),
			Color:       term.IsTerminal(int(os.Stderr.Fd())),
		}

		if opts.Verbose {
			log.SetLevel(log.DebugLevel)
		}

		os.Exit(execute(opts, args[0], os.Stdin, os.Stdout, os.Stderr))
	},
}

func init() {
	rootCmd.Flags().Bool("version", false, "Report version of this executable")
	rootCmd.Flags().StringP("format", "f", "", "Input format: ls8, asm, or raw (default: by extension)")
	rootCmd.Flags().IntP("budget", "b", 0, "Maximum instructions to execute (0 for no limit)")
	rootCmd.Flags().DurationP("timeout", "t", 0, "Maximum wall-clock run time (0 for no limit)")
	rootCmd.Flags().Bool("trace", false, "Print a TRACE line after each instruction")
	rootCmd.Flags().StringP("output", "o", "-", "PRN output file")
	rootCmd.Flags().BoolP("disassemble", "d", false, "Print the program disassembly, do not execute")
	rootCmd.Flags().StringArrayP("define", "D", nil, "Assembler predefine NAME=VALUE")
	rootCmd.Flags().BoolP("verbose", "v", false, "Increase logging verbosity")
}

func main() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(EXIT_USAGE)
	}
}
