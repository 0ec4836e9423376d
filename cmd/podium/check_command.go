package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/phanxgames/podium/manifest"
)

func newCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "check manifest.yaml...",
		Short:       "Validate deck manifests and the files they reference",
		Args:        cobra.MinimumNArgs(1),
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := make([][]string, 0, len(args))
			failed := 0
			for _, path := range args {
				id, slides, err := checkManifest(path)
				status := "ok"
				if err != nil {
					status = err.Error()
					failed++
				}
				rows = append(rows, []string{path, id, slides, status})
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(out, []string{"File", "ID", "Slides", "Status"}, rows, []columnAlignment{alignLeft, alignLeft, alignRight, alignLeft}))
			if failed > 0 {
				return fmt.Errorf("%d of %d manifests failed", failed, len(args))
			}
			return nil
		},
	}
}

// checkManifest parses path and makes sure every image and pdf it names
// exists next to it.
func checkManifest(path string) (id, slides string, err error) {
	m, err := manifest.LoadFile(path)
	if err != nil {
		return "", "", err
	}
	for i, s := range m.Slides {
		if s.Kind != manifest.KindImage && s.Kind != manifest.KindPDF {
			continue
		}
		asset := s.Path
		if !filepath.IsAbs(asset) {
			asset = filepath.Join(m.Dir, asset)
		}
		if _, err := os.Stat(asset); err != nil {
			return m.ID, strconv.Itoa(len(m.Slides)), fmt.Errorf("slide %d: %s: %w", i+1, s.Kind, err)
		}
	}
	return m.ID, strconv.Itoa(len(m.Slides)), nil
}
