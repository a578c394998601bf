package store

import (
	"testing"

	"github.com/safefeed/refmatch/pkg/refmatch/ref"
)

func TestMergeProducts(t *testing.T) {
	current := []ref.ProductRow{
		{Code: "P1", NameKR: "새우", UpperName: "갑각류(수정)", ManualFixed: true},
		{Code: "P2", NameKR: "문어", UpperName: "연체류"},
	}
	incoming := []ref.ProductRow{
		{Code: "P1", NameKR: "새우", UpperName: "갑각류(신규)"},
		{Code: "P3", NameKR: "고등어", UpperName: "어류"},
	}

	merged := MergeProducts(current, incoming)

	if len(merged) != 2 {
		t.Fatalf("got %d rows, want 2", len(merged))
	}
	// The manual fix leads and the incoming P1 is dropped.
	if merged[0].Code != "P1" || merged[0].UpperName != "갑각류(수정)" {
		t.Errorf("merged[0] = %+v, want the manual row", merged[0])
	}
	if merged[1].Code != "P3" {
		t.Errorf("merged[1] = %+v, want the new P3", merged[1])
	}
	// P2 was not manually fixed, so the refresh discards it.
	for _, r := range merged {
		if r.Code == "P2" {
			t.Error("unfixed current row should not survive a refresh")
		}
	}
}

func TestMergeProductsNoManualRows(t *testing.T) {
	current := []ref.ProductRow{{Code: "P1"}}
	incoming := []ref.ProductRow{{Code: "P2"}, {Code: "P3"}}

	merged := MergeProducts(current, incoming)
	if len(merged) != 2 || merged[0].Code != "P2" {
		t.Errorf("merged = %+v, want the incoming rows as-is", merged)
	}
}

func TestMergeProductsEmptyCode(t *testing.T) {
	current := []ref.ProductRow{{NameKR: "수기 항목", ManualFixed: true}}
	incoming := []ref.ProductRow{{NameKR: "신규 무코드"}}

	merged := MergeProducts(current, incoming)
	if len(merged) != 2 {
		t.Fatalf("got %d rows, want 2; a codeless manual row must not block incoming rows", len(merged))
	}
}

func TestMergeHazards(t *testing.T) {
	current := []ref.HazardRow{
		{Code: "H1", NameKR: "살모넬라", MidCategory: "미생물(수정)", ManualFixed: true},
	}
	incoming := []ref.HazardRow{
		{Code: "H1", NameKR: "살모넬라", MidCategory: "미생물"},
		{Code: "H2", NameKR: "카드뮴", MidCategory: "중금속"},
	}

	merged := MergeHazards(current, incoming)
	if len(merged) != 2 {
		t.Fatalf("got %d rows, want 2", len(merged))
	}
	if merged[0].MidCategory != "미생물(수정)" || !merged[0].ManualFixed {
		t.Errorf("merged[0] = %+v, want the manual row first", merged[0])
	}
	if merged[1].Code != "H2" {
		t.Errorf("merged[1] = %+v, want H2", merged[1])
	}
}
