package domain

import (
	"sort"
	"strings"
)

var sectionOrder = map[Section]int{
	SectionHooks:          1,
	SectionMirror:         2,
	SectionDCS:            3,
	SectionTransition:     4,
	SectionNewCause:       5,
	SectionMechanism:      6,
	SectionEmotionalProof: 7,
	SectionTransformation: 8,
	SectionCTA:            9,
	SectionOther:          10,
}

// DetectSection infers the narrative section from a video name when the
// record does not carry one.
func DetectSection(videoName string) Section {
	upper := strings.ToUpper(videoName)
	switch {
	case strings.Contains(upper, "HOOK"):
		return SectionHooks
	case strings.Contains(upper, "MIRROR"):
		return SectionMirror
	case strings.Contains(upper, "DCS"):
		return SectionDCS
	case strings.Contains(upper, "TRANSITION"):
		return SectionTransition
	case strings.Contains(upper, "NEW_CAUSE"), strings.Contains(upper, "NEWCAUSE"):
		return SectionNewCause
	case strings.Contains(upper, "MECHANISM"):
		return SectionMechanism
	case strings.Contains(upper, "EMOTIONAL_PROOF"), strings.Contains(upper, "EMOTIONALPROOF"):
		return SectionEmotionalProof
	case strings.Contains(upper, "TRANSFORMATION"):
		return SectionTransformation
	case strings.Contains(upper, "CTA"):
		return SectionCTA
	}
	return SectionOther
}

// SortResultsBySection orders results by narrative section, then
// alphabetically by name within a section, so every stage lists videos in
// the same order (HOOK1, HOOK1B, HOOK2, MIRROR1, ...).
func SortResultsBySection(results []VideoResult) []VideoResult {
	sorted := make([]VideoResult, len(results))
	copy(sorted, results)
	sort.SliceStable(sorted, func(i, j int) bool {
		si, sj := sorted[i].Section, sorted[j].Section
		if si == "" {
			si = DetectSection(sorted[i].VideoName)
		}
		if sj == "" {
			sj = DetectSection(sorted[j].VideoName)
		}
		pi, ok := sectionOrder[si]
		if !ok {
			pi = 999
		}
		pj, ok := sectionOrder[sj]
		if !ok {
			pj = 999
		}
		if pi != pj {
			return pi < pj
		}
		return sorted[i].VideoName < sorted[j].VideoName
	})
	return sorted
}
