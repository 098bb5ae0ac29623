package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/starkiln/reaclib"
	"github.com/starkiln/reaclib/internal/convert"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "reaclib:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("reaclib", flag.ContinueOnError)
	var (
		format   = fs.String("format", "reaclib1", "input format: reaclib1 (r1) or reaclib2 (r2)")
		in       = fs.String("in", "-", "input path, - for stdin; .zst input is decompressed")
		out      = fs.String("out", "-", "output path, - for stdout")
		encoding = fs.String("encoding", "json", "output encoding: json, jsonl or yaml")
		group    = fs.Bool("group", false, "group rate sets by reaction")
		skipBad  = fs.Bool("skip-bad", false, "log malformed records and keep going")
		verbose  = fs.Bool("v", false, "verbose logging")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	f, err := reaclib.ParseFormat(*format)
	if err != nil {
		return err
	}
	src, err := convert.Open(*in)
	if err != nil {
		return err
	}
	defer src.Close()
	dst, err := convert.Create(*out)
	if err != nil {
		return err
	}

	if err := convert.Run(src, dst, convert.Options{
		Format:   f,
		Encoding: *encoding,
		Group:    *group,
		SkipBad:  *skipBad,
		Log:      log,
	}); err != nil {
		dst.Close()
		return err
	}
	return dst.Close()
}
