package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadProducts(t *testing.T) {
	// Columns deliberately out of the struct order
	path := writeTemp(t, "products.csv", `name_en,code,name_kr,top_code,upper_code,manual_fixed
Shrimp,P01,새우,T01,U01,
Octopus,P02,문어,T01,U02,Y
,,,,,
`)

	rows, err := loadProducts(path)
	if err != nil {
		t.Fatalf("loadProducts: %v", err)
	}

	// Blank line is dropped
	if len(rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(rows))
	}
	if rows[0].Code != "P01" || rows[0].NameKR != "새우" || rows[0].TopCode != "T01" {
		t.Errorf("Header mapping failed: %+v", rows[0])
	}
	if rows[0].ManualFixed {
		t.Error("Empty manual_fixed should be false")
	}
	if !rows[1].ManualFixed {
		t.Error("Y should parse as true")
	}
}

func TestLoadHazards(t *testing.T) {
	path := writeTemp(t, "hazards.csv", `code,name_kr,name_en,abbrev,mid_code,top_code,analyzable,interest
H01,살모넬라,Salmonella,SAL,M01,TC1,Y,yes
H02,카드뮴,Cadmium,Cd,M02,TC2,N,
`)

	rows, err := loadHazards(path)
	if err != nil {
		t.Fatalf("loadHazards: %v", err)
	}

	if len(rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(rows))
	}
	if !rows[0].Analyzable || !rows[0].Interest {
		t.Errorf("Flags not parsed: %+v", rows[0])
	}
	if rows[1].Analyzable || rows[1].Interest {
		t.Errorf("N and empty should be false: %+v", rows[1])
	}
	// Columns the file omits stay empty
	if rows[0].Nickname != "" || rows[0].TestItem != "" {
		t.Errorf("Missing columns should be empty: %+v", rows[0])
	}
}

func TestLoadClasses(t *testing.T) {
	path := writeTemp(t, "classes.csv", `mid_code,mid_name,top_code,top_name
M01,미생물,TC1,미생물위해
M02,중금속,TC2,화학적위해
`)

	classes, err := loadClasses(path)
	if err != nil {
		t.Fatalf("loadClasses: %v", err)
	}

	if len(classes) != 2 {
		t.Fatalf("Expected 2 classes, got %d", len(classes))
	}
	if classes[0].MidName != "미생물" || classes[1].TopName != "화학적위해" {
		t.Errorf("Class mapping failed: %+v", classes)
	}
}

func TestLoadProductsShortRows(t *testing.T) {
	// Rows shorter than the header must not panic
	path := writeTemp(t, "products.csv", `code,name_kr,name_en,top_code
P01,새우
`)

	rows, err := loadProducts(path)
	if err != nil {
		t.Fatalf("loadProducts: %v", err)
	}
	if len(rows) != 1 || rows[0].NameEN != "" || rows[0].TopCode != "" {
		t.Errorf("Short row handling failed: %+v", rows)
	}
}

func TestReadCSVFileErrors(t *testing.T) {
	if _, err := readCSVFile(filepath.Join(t.TempDir(), "missing.csv")); err == nil {
		t.Error("Missing file should error")
	}

	path := writeTemp(t, "empty.csv", "")
	if _, err := readCSVFile(path); err == nil {
		t.Error("File without header should error")
	}
}

func TestParseBool(t *testing.T) {
	truthy := []string{"Y", "y", "yes", "YES", "true", "True", "1", " y "}
	for _, s := range truthy {
		if !parseBool(s) {
			t.Errorf("parseBool(%q) should be true", s)
		}
	}
	falsy := []string{"", "N", "no", "false", "0", "unknown"}
	for _, s := range falsy {
		if parseBool(s) {
			t.Errorf("parseBool(%q) should be false", s)
		}
	}
}
