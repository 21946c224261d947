package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/peterbourgon/ff/v3"
	"github.com/peterbourgon/ff/v3/ffcli"

	"github.com/simonhull/ultrastar"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cmd := newCommand()
	if err := cmd.ParseAndRun(ctx, os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

func newCommand() *ffcli.Command {
	fs := flag.NewFlagSet("ultrastar", flag.ExitOnError)

	return &ffcli.Command{
		ShortUsage: "ultrastar [flags] <subcommand>",
		FlagSet:    fs,
		Exec: func(context.Context, []string) error {
			return flag.ErrHelp
		},
		Subcommands: []*ffcli.Command{
			newCheckCommand(),
			newInfoCommand(),
			newFmtCommand(),
		},
	}
}

func newCheckCommand() *ffcli.Command {
	fs := flag.NewFlagSet("check", flag.ExitOnError)

	return &ffcli.Command{
		Name:       "check",
		ShortUsage: "ultrastar check <file>...",
		ShortHelp:  "parse song files and report diagnostics",
		FlagSet:    fs,
		Options:    []ff.Option{ff.WithEnvVarPrefix("ULTRASTAR")},
		Exec: func(ctx context.Context, args []string) error {
			if len(args) == 0 {
				return flag.ErrHelp
			}
			failed := 0
			for _, path := range args {
				if err := ctx.Err(); err != nil {
					return err
				}
				if _, err := ultrastar.Open(path, ultrastar.WithKeepRelativePaths()); err != nil {
					failed++
					fmt.Printf("%s: %v\n", path, err)
					continue
				}
				fmt.Printf("%s: ok\n", path)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d files failed", failed, len(args))
			}
			return nil
		},
	}
}

func newInfoCommand() *ffcli.Command {
	fs := flag.NewFlagSet("info", flag.ExitOnError)

	return &ffcli.Command{
		Name:       "info",
		ShortUsage: "ultrastar info <file>",
		ShortHelp:  "print song metadata and note counts",
		FlagSet:    fs,
		Options:    []ff.Option{ff.WithEnvVarPrefix("ULTRASTAR")},
		Exec: func(ctx context.Context, args []string) error {
			if len(args) != 1 {
				return flag.ErrHelp
			}
			song, err := ultrastar.Open(args[0])
			if err != nil {
				return err
			}

			h := song.Header
			fmt.Printf("Title:    %s\n", h.Title)
			fmt.Printf("Artist:   %s\n", h.Artist)
			fmt.Printf("BPM:      %g\n", h.BPM)
			fmt.Printf("Audio:    %s\n", h.AudioPath)
			if h.VideoPath != "" {
				fmt.Printf("Video:    %s\n", h.VideoPath)
			}
			if h.Genre != "" {
				fmt.Printf("Genre:    %s\n", h.Genre)
			}
			if h.Language != "" {
				fmt.Printf("Language: %s\n", h.Language)
			}
			if h.Year != nil {
				fmt.Printf("Year:     %d\n", *h.Year)
			}

			notes := 0
			for _, line := range song.Lines {
				notes += len(line.Notes)
			}
			fmt.Printf("Lines:    %d\n", len(song.Lines))
			fmt.Printf("Notes:    %d\n", notes)
			return nil
		},
	}
}

func newFmtCommand() *ffcli.Command {
	fs := flag.NewFlagSet("fmt", flag.ExitOnError)
	write := fs.Bool("w", false, "write the canonical form back to the file instead of stdout")

	return &ffcli.Command{
		Name:       "fmt",
		ShortUsage: "ultrastar fmt [-w] <file>...",
		ShortHelp:  "reformat song files to canonical text",
		FlagSet:    fs,
		Options:    []ff.Option{ff.WithEnvVarPrefix("ULTRASTAR")},
		Exec: func(ctx context.Context, args []string) error {
			if len(args) == 0 {
				return flag.ErrHelp
			}
			for _, path := range args {
				if err := ctx.Err(); err != nil {
					return err
				}
				// Keep references as written so that reformatting does not
				// rewrite them to absolute paths.
				song, err := ultrastar.Open(path, ultrastar.WithKeepRelativePaths())
				if err != nil {
					return err
				}
				if *write {
					if err := song.Save(); err != nil {
						return err
					}
					continue
				}
				text, err := song.TXT()
				if err != nil {
					return err
				}
				fmt.Println(text)
			}
			return nil
		},
	}
}
