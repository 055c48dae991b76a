// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package regdb

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/mesh-intelligence/regconv/pkg/types"
)

func sampleRegulation() types.Regulation {
	return types.Regulation{
		ID:            "pojk-12-pojk-03-2021",
		Type:          types.TypePOJK,
		Number:        "12/POJK.03/2021",
		Title:         "Peraturan OJK tentang Manajemen Risiko",
		Year:          2021,
		EffectiveDate: "2021-12-31",
		Status:        types.StatusActive,
		PDFPath:       "pojk_12_2021.pdf",
	}
}

func sampleArticles(regID string) []types.Article {
	return []types.Article{
		{ID: 1, RegulationID: regID, Pasal: 1, Ayat: "1", Text: "Bank adalah bank umum."},
		{ID: 2, RegulationID: regID, Pasal: 1, Ayat: "2", Text: "Direksi adalah organ perseroan."},
		{ID: 3, RegulationID: regID, Pasal: 2, Text: "Bank wajib menerapkan manajemen risiko."},
		{ID: 4, RegulationID: regID, Pasal: 3, Text: "Laporan disampaikan secara berkala kepada otoritas."},
	}
}

func buildTestDB(t *testing.T) (*Store, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), DatabaseFile)

	reg := sampleRegulation()
	store, err := Create(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	if err := store.Insert(context.Background(), reg, sampleArticles(reg.ID)); err != nil {
		t.Fatal(err)
	}
	if err := store.Close(); err != nil {
		t.Fatal(err)
	}

	ro, err := Open(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { ro.Close() })
	return ro, dbPath
}

func TestSearchFullText(t *testing.T) {
	store, _ := buildTestDB(t)

	results, err := store.Search(context.Background(), QueryOptions{Query: "risiko"})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	if results[0].Pasal != 2 {
		t.Errorf("pasal = %d, want 2", results[0].Pasal)
	}
	if results[0].RegulationNumber != "12/POJK.03/2021" {
		t.Errorf("regulation number = %q", results[0].RegulationNumber)
	}
}

func TestSearchByPasal(t *testing.T) {
	store, _ := buildTestDB(t)

	results, err := store.Search(context.Background(), QueryOptions{
		RegulationID: "pojk-12-pojk-03-2021",
		Pasal:        1,
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	// Citation order within the pasal.
	if results[0].Ayat != "1" || results[1].Ayat != "2" {
		t.Errorf("ayat order = %q, %q", results[0].Ayat, results[1].Ayat)
	}
}

func TestSearchCombined(t *testing.T) {
	store, _ := buildTestDB(t)

	results, err := store.Search(context.Background(), QueryOptions{
		Query: "bank",
		Pasal: 2,
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	if results[0].Pasal != 2 {
		t.Errorf("pasal = %d, want 2", results[0].Pasal)
	}
}

func TestSearchMaxResults(t *testing.T) {
	store, _ := buildTestDB(t)

	results, err := store.Search(context.Background(), QueryOptions{
		RegulationID: "pojk-12-pojk-03-2021",
		MaxResults:   2,
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
}

func TestSearchNoMatch(t *testing.T) {
	store, _ := buildTestDB(t)

	results, err := store.Search(context.Background(), QueryOptions{Query: "saham"})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 0 {
		t.Errorf("got %d results, want 0", len(results))
	}
}

func TestRegulations(t *testing.T) {
	store, _ := buildTestDB(t)

	regs, err := store.Regulations(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(regs) != 1 {
		t.Fatalf("got %d regulations, want 1", len(regs))
	}

	want := sampleRegulation()
	got := regs[0]
	if got.ID != want.ID || got.Type != want.Type || got.Number != want.Number ||
		got.Title != want.Title || got.Year != want.Year ||
		got.EffectiveDate != want.EffectiveDate || got.Status != want.Status ||
		got.PDFPath != want.PDFPath {
		t.Errorf("regulation = %+v, want %+v", got, want)
	}
}

func TestCreateOverwrites(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), DatabaseFile)
	ctx := context.Background()

	reg := sampleRegulation()
	for i := 0; i < 2; i++ {
		store, err := Create(dbPath)
		if err != nil {
			t.Fatalf("run %d: %v", i, err)
		}
		if err := store.Insert(ctx, reg, sampleArticles(reg.ID)); err != nil {
			t.Fatalf("run %d: %v", i, err)
		}
		store.Close()
	}

	// A rebuilt database holds exactly one dataset, not an accumulation.
	store, err := Open(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	results, err := store.Search(ctx, QueryOptions{RegulationID: reg.ID})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 4 {
		t.Errorf("got %d articles, want 4", len(results))
	}
}

func TestOpenMissing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "absent.db"))
	if err == nil {
		t.Fatal("expected error for missing database")
	}
}

func TestInsertLargeSet(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), DatabaseFile)
	ctx := context.Background()

	reg := sampleRegulation()
	var articles []types.Article
	for i := 1; i <= 200; i++ {
		articles = append(articles, types.Article{
			ID:           i,
			RegulationID: reg.ID,
			Pasal:        i,
			Text:         fmt.Sprintf("Ketentuan nomor %d mengenai pelaporan.", i),
		})
	}

	store, err := Create(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()
	if err := store.Insert(ctx, reg, articles); err != nil {
		t.Fatal(err)
	}

	results, err := store.Search(ctx, QueryOptions{RegulationID: reg.ID, MaxResults: 500})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 200 {
		t.Errorf("got %d articles, want 200", len(results))
	}
}
