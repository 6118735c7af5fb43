// Command assetcheck reports which legacy asset names have a converted file
// in a data directory, and suggests near misses for the ones that do not.
package main

import (
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/automoto/arena/assets"
	"github.com/automoto/arena/config"
	"github.com/gookit/color"
	"github.com/zyedidia/generic/mapset"
)

var (
	styleFound   = color.Style{color.FgGreen}
	styleMissing = color.Style{color.FgRed, color.OpBold}
	styleHint    = color.Style{color.FgGray}
	styleHeader  = color.Style{color.FgCyan, color.OpBold}
)

// maxSuggestDistance bounds how different a file name may be from a legacy
// stem and still be suggested.
const maxSuggestDistance = 3

type result struct {
	kind       string
	name       string
	legacy     string
	found      string
	suggestion string
}

func main() {
	dataPath := flag.String("data", "data", "data directory holding converted assets")
	strict := flag.Bool("strict", false, "exit with status 1 if any asset is missing")
	quiet := flag.Bool("quiet", false, "only list missing assets")
	flag.Parse()

	fsys := os.DirFS(*dataPath)
	results, err := check(fsys)
	if err != nil {
		fmt.Fprintf(os.Stderr, "assetcheck: %v\n", err)
		os.Exit(2)
	}

	missing := report(os.Stdout, results, *quiet)
	if *strict && missing > 0 {
		os.Exit(1)
	}
}

// check looks up every compiled-in asset name in fsys.
func check(fsys fs.FS) ([]result, error) {
	files := mapset.New[string]()
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			files.Put(p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list data directory: %w", err)
	}

	var results []result
	for _, n := range assets.TextureNames() {
		legacy := assets.MustTextureFile(n)
		results = append(results, lookup(&files, "texture", n.String(), legacy, config.Textures.ImageExtensions))
	}
	for _, n := range assets.SequenceNames() {
		legacy := assets.MustSequenceFile(n)
		results = append(results, lookup(&files, "sequence", n.String(), legacy, config.Textures.SequenceExtensions))
	}
	for _, n := range assets.MusicNames() {
		legacy, err := assets.MusicFile(n)
		if err != nil {
			return nil, err
		}
		r := result{kind: "music", name: n.String(), legacy: legacy}
		if p, err := assets.FindMusic(fsys, n); err == nil {
			r.found = p
		} else {
			r.suggestion = suggest(&files, legacy)
		}
		results = append(results, r)
	}
	return results, nil
}

func lookup(files *mapset.Set[string], kind, name, legacy string, exts []string) result {
	r := result{kind: kind, name: name, legacy: legacy}
	for _, c := range assets.ConvertedNames(legacy, exts) {
		if files.Has(c) {
			r.found = c
			return r
		}
	}
	r.suggestion = suggest(files, legacy)
	return r
}

// suggest returns the file whose stem is closest to legacy's stem, ignoring
// case, or "" if nothing is close enough.
func suggest(files *mapset.Set[string], legacy string) string {
	want := strings.ToLower(stem(legacy))
	best, bestDist := "", maxSuggestDistance+1
	var candidates []string
	files.Each(func(p string) {
		candidates = append(candidates, p)
	})
	slices.Sort(candidates)
	for _, p := range candidates {
		d := levenshtein.ComputeDistance(want, strings.ToLower(stem(path.Base(p))))
		if d < bestDist {
			best, bestDist = p, d
		}
	}
	return best
}

func stem(name string) string {
	return strings.TrimSuffix(name, path.Ext(name))
}

// report prints results grouped by kind and returns how many are missing.
func report(w io.Writer, results []result, quiet bool) int {
	missing := 0
	kind := ""
	for _, r := range results {
		if r.kind != kind {
			kind = r.kind
			fmt.Fprintln(w, styleHeader.Sprint("["+kind+"]"))
		}
		if r.found != "" {
			if !quiet {
				fmt.Fprintf(w, "  %s %-28s %s\n", styleFound.Sprint("ok     "), r.name, r.found)
			}
			continue
		}
		missing++
		line := fmt.Sprintf("  %s %-28s %s", styleMissing.Sprint("missing"), r.name, r.legacy)
		if r.suggestion != "" {
			line += styleHint.Sprintf(" (did you mean %s?)", r.suggestion)
		}
		fmt.Fprintln(w, line)
	}
	fmt.Fprintf(w, "%d of %d assets missing\n", missing, len(results))
	return missing
}
