// Package convert drives the reaclib-to-structured-output pipeline behind
// the command-line tool: decode a table, optionally group it by reaction,
// and write JSON, JSON Lines or YAML.
package convert

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"gopkg.in/yaml.v3"

	"github.com/starkiln/reaclib"
)

var ErrUnknownEncoding = errors.New("unknown encoding")

type Options struct {
	Format   reaclib.Format
	Encoding string // json, jsonl or yaml
	Group    bool
	// SkipBad logs malformed records and keeps going instead of failing
	// on the first one. Reader failures still abort.
	SkipBad bool
	Log     *slog.Logger
}

type reactionGroup struct {
	reaclib.Reaction `yaml:",inline"`
	Sets             []reaclib.Set `json:"sets" yaml:"sets"`
}

// Run decodes everything from r and writes it to w per opts.
func Run(r io.Reader, w io.Writer, opts Options) error {
	log := opts.Log
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	sets, skipped, err := collect(r, opts, log)
	if err != nil {
		return err
	}
	log.Info("decoded input", "sets", len(sets), "skipped", skipped)

	items := make([]any, 0, len(sets))
	if opts.Group {
		m := reaclib.Group(sets)
		for _, reaction := range m.Reactions() {
			items = append(items, reactionGroup{Reaction: reaction, Sets: m.Sets(reaction)})
		}
	} else {
		for _, s := range sets {
			items = append(items, s)
		}
	}
	return encode(w, opts.Encoding, items)
}

func collect(r io.Reader, opts Options, log *slog.Logger) ([]reaclib.Set, int, error) {
	it := reaclib.NewIter(r, opts.Format)
	var sets []reaclib.Set
	skipped := 0
	for {
		s, err := it.Next()
		if errors.Is(err, io.EOF) {
			return sets, skipped, nil
		}
		if err != nil {
			if !opts.SkipBad || errors.Is(err, reaclib.ErrRead) {
				return nil, 0, err
			}
			var de *reaclib.DecodeError
			if errors.As(err, &de) {
				log.Warn("skipping malformed record", "line", de.Line, "err", de.Err)
			}
			skipped++
			continue
		}
		sets = append(sets, s)
	}
}

func encode(w io.Writer, encoding string, items []any) error {
	switch encoding {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(items)
	case "jsonl":
		enc := json.NewEncoder(w)
		for _, item := range items {
			if err := enc.Encode(item); err != nil {
				return err
			}
		}
		return nil
	case "yaml":
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(items); err != nil {
			enc.Close()
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("%w: %q", ErrUnknownEncoding, encoding)
}
