// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cpmech/clusterdyn/engine"
	"github.com/cpmech/gosl/chk"
)

func Test_CSV_writes_header_and_rows(tst *testing.T) {
	chk.PrintTitle("CSV export writes one header row plus one row per snapshot")

	history := []engine.Snapshot{
		{Time: 0, Dpa: 0, Interstitials: []float64{0, 0}, Vacancies: []float64{0, 0}, DislocationDensity: 1e10},
		{Time: 1e6, Dpa: 1e-4, Interstitials: []float64{1.5, 0.2}, Vacancies: []float64{1.1, 0.1}, DislocationDensity: 1.2e10},
	}

	path := filepath.Join(tst.TempDir(), "history.csv")
	if err := CSV(path, history); err != nil {
		tst.Fatal(err)
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		tst.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(string(contents), "\n"), "\n")
	if len(lines) != 3 {
		tst.Fatalf("expected 1 header + 2 data lines, got %d: %v", len(lines), lines)
	}
	if !strings.HasPrefix(lines[0], "time_s,dpa,dislocation_density_cm2,Ci_1,Ci_2,Cv_1,Cv_2") {
		tst.Fatalf("unexpected header: %s", lines[0])
	}
}

func Test_CSV_rejects_empty_history(tst *testing.T) {
	chk.PrintTitle("CSV export rejects an empty snapshot history")
	path := filepath.Join(tst.TempDir(), "empty.csv")
	if err := CSV(path, nil); err == nil {
		tst.Fatal("expected an error for empty history, got nil")
	}
}
