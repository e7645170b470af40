package domain

import "testing"

func TestDuplicateName(t *testing.T) {
	existing := []VideoResult{
		{VideoName: "T1_C1_E1_AD1_HOOK1_ALINA"},
		{VideoName: "T1_C1_E1_AD1_HOOK1_ALINA_D1"},
		{VideoName: "T1_C1_E1_AD1_HOOK1_ALINA_D3"},
	}
	got := DuplicateName("T1_C1_E1_AD1_HOOK1_ALINA", existing)
	if got != "T1_C1_E1_AD1_HOOK1_ALINA_D4" {
		t.Fatalf("expected next unused ordinal D4, got %s", got)
	}

	got = DuplicateName("T1_C1_E1_AD1_MIRROR1_ALINA", existing)
	if got != "T1_C1_E1_AD1_MIRROR1_ALINA_D1" {
		t.Fatalf("expected first duplicate D1, got %s", got)
	}
}

func TestOriginalName(t *testing.T) {
	if got := OriginalName("T1_C1_E1_AD1_HOOK1_ALINA_D2"); got != "T1_C1_E1_AD1_HOOK1_ALINA" {
		t.Fatalf("got %s", got)
	}
	if got := OriginalName("T1_C1_E1_AD1_HOOK1_ALINA"); got != "T1_C1_E1_AD1_HOOK1_ALINA" {
		t.Fatalf("non-duplicate name must be unchanged, got %s", got)
	}
}

func TestDuplicateOrdinal(t *testing.T) {
	if !IsDuplicateName("X_D2") || IsDuplicateName("X_D") {
		t.Fatal("duplicate suffix detection wrong")
	}
	if got := DuplicateOrdinal("X_D7"); got != 7 {
		t.Fatalf("got %d", got)
	}
	if got := DuplicateOrdinal("X"); got != 0 {
		t.Fatalf("got %d", got)
	}
}

func TestContextAndCharacter(t *testing.T) {
	name := "T2_C1_E3_AD1_HOOK2B_ALINA"
	if got := ContextID(name); got != "T2_C1_E3_AD1" {
		t.Fatalf("context: got %s", got)
	}
	if got := CharacterID(name); got != "ALINA" {
		t.Fatalf("character: got %s", got)
	}
	if got := CharacterID("T2_C1_E3_AD1_HOOK2B_ALINA_D2"); got != "ALINA" {
		t.Fatalf("character must ignore duplicate suffix, got %s", got)
	}
	if got := ContextID("whatever"); got != "MERGED" {
		t.Fatalf("fallback context: got %s", got)
	}
}

func TestHookOrdinal(t *testing.T) {
	if got := HookOrdinal("T1_C1_E1_AD1_HOOK3B_ALINA"); got != "3" {
		t.Fatalf("got %s", got)
	}
	if got := HookOrdinal("T1_C1_E1_AD1_MIRROR1_ALINA"); got != "1" {
		t.Fatalf("default ordinal: got %s", got)
	}
	if !IsHookName("t1_hook1_x") || IsHookName("t1_mirror1_x") {
		t.Fatal("hook detection wrong")
	}
}

func TestImageName(t *testing.T) {
	ref := "https://cdn.example.com/uploads/Alina_1-1763565542441-8ex9ipx3ruv.png"
	if got := ImageName(ref); got != "Alina_1" {
		t.Fatalf("got %q", got)
	}
	if got := ImageName("https://cdn.example.com/noformat.png"); got != "" {
		t.Fatalf("expected empty for unparseable ref, got %q", got)
	}
}

func TestFinalVideoName(t *testing.T) {
	got := FinalVideoName("T1_C1_E1_AD1", "ALINA", "Alina_1", "2")
	if got != "T1_C1_E1_AD1_ALINA_Alina_1_HOOK2" {
		t.Fatalf("got %s", got)
	}
	got = FinalVideoName("T1_C1_E1_AD1", "ALINA", "", "2")
	if got != "T1_C1_E1_AD1_ALINA_HOOK2" {
		t.Fatalf("without image name: got %s", got)
	}
}

func TestHookGroupBaseName(t *testing.T) {
	if got := HookGroupBaseName("T1_C1_E1_AD1_HOOK2B_ALINA"); got != "T1_C1_E1_AD1_HOOK2_ALINA" {
		t.Fatalf("got %s", got)
	}
	if got := HookGroupBaseName("T1_C1_E1_AD1_HOOK2_ALINA"); got != "T1_C1_E1_AD1_HOOK2_ALINA" {
		t.Fatalf("name without variant letter must be unchanged, got %s", got)
	}
}

func TestMergedHookName(t *testing.T) {
	got := MergedHookName("T1_C1_E1_AD1_HOOK1_ALINA")
	if got != "T1_C1_E1_AD1_HOOK1M_ALINA" {
		t.Fatalf("got %s", got)
	}
}
