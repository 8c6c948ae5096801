package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/Moonlight-Companies/gologger/coloransi"
	"github.com/Moonlight-Companies/gologger/logger"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"procwalk/process"
	"procwalk/process_find"
	"procwalk/process_iter"
)

var log = logger.NewLogger(coloransi.Color(coloransi.ColorPurple, coloransi.ColorOrange, "process-list"))

type options struct {
	root    string
	name    string
	pattern string
	exe     bool
	output  string
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:           "process_list",
		Short:         "List the processes visible to the caller",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := run(cmd.OutOrStdout(), opts); err != nil {
				log.Warn("process_list failed: ", err)
				fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.root, "root", process_iter.DefaultRoot, "Process-information root to scan (Unix only)")
	cmd.Flags().StringVarP(&opts.name, "name", "n", "", "Only list processes with this exact name")
	cmd.Flags().StringVarP(&opts.pattern, "pattern", "p", "", "Only list processes whose name matches this regular expression")
	cmd.Flags().BoolVarP(&opts.exe, "exe", "e", false, "Resolve and print the executable path")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "table", "Output format: table, json or yaml")
	cmd.MarkFlagsMutuallyExclusive("name", "pattern")

	return cmd
}

func run(w io.Writer, opts options) error {
	switch opts.output {
	case "table", "json", "yaml":
	default:
		return fmt.Errorf("unknown output format %q", opts.output)
	}

	finder := process_find.NewProcessFinder(process_iter.WithRoot(opts.root))

	var (
		procs []process.ProcessInfo
		err   error
	)
	switch {
	case opts.name != "":
		procs, err = finder.FindProcessByName(opts.name)
	case opts.pattern != "":
		procs, err = finder.FindProcessByNamePattern(opts.pattern)
	default:
		procs, err = finder.FindAllProcesses()
	}
	if err != nil {
		return err
	}

	if !opts.exe {
		for i := range procs {
			procs[i].Exe = ""
		}
	}

	log.Debugln("Listed", len(procs), "processes")

	return write(w, opts, procs)
}

func write(w io.Writer, opts options, procs []process.ProcessInfo) error {
	if procs == nil {
		procs = []process.ProcessInfo{}
	}

	switch opts.output {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(procs)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(procs); err != nil {
			return err
		}
		return enc.Close()
	}

	for _, p := range procs {
		if opts.exe {
			fmt.Fprintf(w, "%-8d %-20s %s\n", p.PID, p.Name, p.Exe)
		} else {
			fmt.Fprintf(w, "%-8d %s\n", p.PID, p.Name)
		}
	}
	return nil
}
