// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package segment

import (
	"strings"
	"testing"

	"github.com/mesh-intelligence/regconv/pkg/types"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "folds CRLF line endings",
			in:   "Pasal 1\r\nIsi pasal.\r",
			want: "Pasal 1\nIsi pasal.\n",
		},
		{
			name: "drops page-number-only lines",
			in:   "akhir halaman.\n- 12 -\n12\nawal halaman berikutnya.",
			want: "akhir halaman.\n- 12 -\n\nawal halaman berikutnya.",
		},
		{
			name: "rejoins words hyphenated across line breaks",
			in:   "penyampaian infor-\nmasi kepada OJK",
			want: "penyampaian informasi kepada OJK",
		},
		{
			name: "collapses runs of blank lines",
			in:   "Pasal 1\n\n\n\n\nIsi pasal.",
			want: "Pasal 1\n\nIsi pasal.",
		},
		{
			name: "keeps ordinary hyphens",
			in:   "undang-undang yang berlaku",
			want: "undang-undang yang berlaku",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		opts     Options
		wantKeep []string
		wantDrop []string
	}{
		{
			name: "cuts at penjelasan heading",
			in: "Pasal 1\nKetentuan umum.\n\nPasal 2\nKewajiban bank.\n\n" +
				"PENJELASAN\nATAS PERATURAN\nPasal demi pasal.",
			opts:     DefaultOptions(),
			wantKeep: []string{"Ketentuan umum.", "Kewajiban bank."},
			wantDrop: []string{"Pasal demi pasal."},
		},
		{
			name: "cuts at second pasal 1",
			in: "Pasal 1\nKetentuan umum.\n\nPasal 2\nKewajiban bank.\n\n" +
				"Pasal 1\nCukup jelas.",
			opts:     DefaultOptions(),
			wantKeep: []string{"Ketentuan umum.", "Kewajiban bank."},
			wantDrop: []string{"Cukup jelas."},
		},
		{
			name: "penjelasan wins when it comes first",
			in: "Pasal 1\nKetentuan umum.\n\nPenjelasan\nUraian panjang.\n\n" +
				"Pasal 1\nCukup jelas.",
			opts:     DefaultOptions(),
			wantKeep: []string{"Ketentuan umum."},
			wantDrop: []string{"Uraian panjang.", "Cukup jelas."},
		},
		{
			name: "repeated pasal stopper can be disabled",
			in:   "Pasal 1\nKetentuan umum.\n\nPasal 1\nVersi kedua.",
			opts: Options{
				PenjelasanRe:        defaultPenjelasanRe,
				StopOnRepeatedPasal: false,
			},
			wantKeep: []string{"Ketentuan umum.", "Versi kedua."},
		},
		{
			name:     "penjelasan inside a sentence is kept",
			in:       "Pasal 1\nMemuat penjelasan singkat mengenai laporan.",
			opts:     DefaultOptions(),
			wantKeep: []string{"penjelasan singkat"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.in, tt.opts)
			for _, want := range tt.wantKeep {
				if !strings.Contains(got, want) {
					t.Errorf("Truncate dropped %q; got:\n%s", want, got)
				}
			}
			for _, drop := range tt.wantDrop {
				if strings.Contains(got, drop) {
					t.Errorf("Truncate kept %q; got:\n%s", drop, got)
				}
			}
		})
	}
}

func TestSplitPasal(t *testing.T) {
	tests := []struct {
		name        string
		in          string
		wantNumbers []int
	}{
		{
			name: "five sequential pasal",
			in: "Pasal 1\nSatu.\n\nPasal 2\nDua.\n\nPasal 3\nTiga.\n\n" +
				"Pasal 4\nEmpat.\n\nPasal 5\nLima.",
			wantNumbers: []int{1, 2, 3, 4, 5},
		},
		{
			name:        "no headings yields a single block",
			in:          "Surat edaran tanpa struktur pasal yang baku.",
			wantNumbers: []int{1},
		},
		{
			name:        "empty text yields nothing",
			in:          "   \n\n  ",
			wantNumbers: nil,
		},
		{
			name:        "heading with no body is skipped",
			in:          "Pasal 1\nIsi.\n\nPasal 2\n\nPasal 3\nTiga.",
			wantNumbers: []int{1, 3},
		},
		{
			name:        "pasal mentioned mid-sentence is not a heading",
			in:          "Pasal 1\nSebagaimana dimaksud dalam Pasal 2 huruf a.",
			wantNumbers: []int{1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blocks := SplitPasal(tt.in, DefaultOptions())
			var got []int
			for _, b := range blocks {
				got = append(got, b.Number)
			}
			if len(got) != len(tt.wantNumbers) {
				t.Fatalf("got %d blocks %v, want %v", len(got), got, tt.wantNumbers)
			}
			for i := range got {
				if got[i] != tt.wantNumbers[i] {
					t.Errorf("block %d: got pasal %d, want %d", i, got[i], tt.wantNumbers[i])
				}
			}
		})
	}
}

func TestSplitAyat(t *testing.T) {
	tests := []struct {
		name       string
		in         string
		wantLabels []string
	}{
		{
			name:       "numbered clauses",
			in:         "(1) Laporan disampaikan berkala.\n(2) Format mengikuti lampiran.",
			wantLabels: []string{"1", "2"},
		},
		{
			name:       "letter-suffixed clause",
			in:         "(1) Pertama.\n(2a) Sisipan.\n(3) Ketiga.",
			wantLabels: []string{"1", "2a", "3"},
		},
		{
			name:       "no markers yields one unlabeled clause",
			in:         "Bank wajib menerapkan manajemen risiko.",
			wantLabels: []string{""},
		},
		{
			name:       "ayat reference inside a clause is not a marker",
			in:         "(1) Laporan dimaksud pada ayat (1) disusun per format.",
			wantLabels: []string{"1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clauses := SplitAyat(tt.in)
			if len(clauses) != len(tt.wantLabels) {
				t.Fatalf("got %d clauses, want %d", len(clauses), len(tt.wantLabels))
			}
			for i, c := range clauses {
				if c.Label != tt.wantLabels[i] {
					t.Errorf("clause %d: got label %q, want %q", i, c.Label, tt.wantLabels[i])
				}
				if c.Text == "" {
					t.Errorf("clause %d: empty text", i)
				}
			}
		})
	}
}

func TestFromConfig(t *testing.T) {
	off := false

	t.Run("custom penjelasan pattern", func(t *testing.T) {
		opts, err := FromConfig(types.SegmentConfig{PenjelasanPattern: `^LAMPIRAN\b`})
		if err != nil {
			t.Fatal(err)
		}
		got := Truncate("Pasal 1\nIsi.\n\nLAMPIRAN\nTabel.", opts)
		if strings.Contains(got, "Tabel.") {
			t.Errorf("custom pattern not applied; got:\n%s", got)
		}
	})

	t.Run("stopper toggle", func(t *testing.T) {
		opts, err := FromConfig(types.SegmentConfig{StopOnRepeatedPasal: &off})
		if err != nil {
			t.Fatal(err)
		}
		if opts.StopOnRepeatedPasal {
			t.Error("StopOnRepeatedPasal not disabled")
		}
	})

	t.Run("invalid pattern", func(t *testing.T) {
		if _, err := FromConfig(types.SegmentConfig{PenjelasanPattern: `([`}); err == nil {
			t.Error("expected error for invalid pattern")
		}
	})
}
