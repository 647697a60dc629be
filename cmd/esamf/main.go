// SPDX-License-Identifier: Apache-2.0
// Source: github.com/IlyaGrebnov/esa-matchfinder

// Command esamf runs the match finder over files and reports per-block match
// statistics: how many positions have a back-reference, the sum of each such
// position's longest match length, how many distance-optimal matches exist,
// and the longest match seen.
package main

import (
	"flag"
	"log"
	"os"
	"time"

	esamf "github.com/IlyaGrebnov/esa-matchfinder"
)

func main() {
	log.SetFlags(log.Lmicroseconds)

	var (
		configPath = flag.String("config", "", "TOML configuration file")
		minLen     = flag.Int("min", 0, "minimum match length (overrides config)")
		maxLen     = flag.Int("max", 0, "maximum match length (overrides config)")
		workers    = flag.Int("workers", 0, "parse workers (overrides config)")
		blockSize  = flag.Int("block", 0, "block size in bytes (overrides config)")
		bestOnly   = flag.Bool("best", false, "report only the best match per position")
		validate   = flag.Bool("validate", false, "check tree invariants after each parse")
	)
	flag.Parse()

	cfg := DefaultConfig()
	if *configPath != "" {
		loaded, err := LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("config: %v", err)
		}
		cfg = loaded
	}
	if *minLen > 0 {
		cfg.Match.MinLength = *minLen
	}
	if *maxLen > 0 {
		cfg.Match.MaxLength = *maxLen
	}
	if *workers > 0 {
		cfg.Engine.Workers = *workers
	}
	if *blockSize > 0 {
		cfg.Engine.BlockSize = *blockSize
	}
	if *bestOnly {
		cfg.Report.BestOnly = true
	}
	if *validate {
		cfg.Report.Validate = true
	}

	if flag.NArg() == 0 {
		log.Fatal("usage: esamf [flags] file...")
	}

	mf, err := esamf.New(cfg.Engine.BlockSize, &esamf.Options{
		MinMatchLength: cfg.Match.MinLength,
		MaxMatchLength: cfg.Match.MaxLength,
		Workers:        cfg.Engine.Workers,
	})
	if err != nil {
		log.Fatalf("session: %v", err)
	}

	for _, path := range flag.Args() {
		if err := runFile(mf, cfg, path); err != nil {
			log.Fatalf("%s: %v", path, err)
		}
	}
}

type blockStats struct {
	matches   int
	positions int
	covered   int
	longest   int32
}

func runFile(mf *esamf.MatchFinder, cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	if len(data) == 0 {
		log.Printf("%s: empty file", path)
		return nil
	}

	matches := make([]esamf.Match, esamf.MaxMatchLength)
	for off := 0; off < len(data); off += cfg.Engine.BlockSize {
		block := data[off:min(off+cfg.Engine.BlockSize, len(data))]
		ts := time.Now()
		if err := mf.Parse(block); err != nil {
			return err
		}
		parsed := time.Since(ts)
		if cfg.Report.Validate {
			if err := mf.Validate(); err != nil {
				return err
			}
		}

		ts = time.Now()
		var st blockStats
		for pos := 0; pos < len(block); pos++ {
			var best esamf.Match
			if cfg.Report.BestOnly {
				best = mf.FindBestMatch()
				if best.Length > 0 {
					st.matches++
				}
			} else {
				n := mf.FindAllMatches(matches)
				st.matches += n
				if n > 0 {
					best = matches[0]
				}
			}
			if best.Length > 0 {
				st.positions++
				st.covered += int(best.Length)
				st.longest = max(st.longest, best.Length)
			}
		}
		log.Printf("%s@%d: %d bytes, parse %v, scan %v: %d matches at %d positions, best cover %d, longest %d",
			path, off, len(block), parsed, time.Since(ts),
			st.matches, st.positions, st.covered, st.longest)
	}
	return nil
}
