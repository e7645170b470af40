package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	duplicateSuffixRe = regexp.MustCompile(`_D(\d+)$`)
	contextRe         = regexp.MustCompile(`^(T\d+_C\d+_E\d+_AD\d+)`)
	characterRe       = regexp.MustCompile(`_([^_]+)$`)
	hookOrdinalRe     = regexp.MustCompile(`HOOK(\d+)[A-Z]?`)
	hookVariantRe     = regexp.MustCompile(`HOOK(\d+)[A-Z]`)
	imageNameRe       = regexp.MustCompile(`^(.+?)-\d+`)
)

// DuplicateName derives the name for a new duplicate of originalName: the
// original name plus the next unused _D<n> suffix across existing results.
func DuplicateName(originalName string, existing []VideoResult) string {
	next := 1
	prefix := originalName + "_D"
	for _, v := range existing {
		if !strings.HasPrefix(v.VideoName, prefix) {
			continue
		}
		m := duplicateSuffixRe.FindStringSubmatch(v.VideoName)
		if m == nil || strings.TrimSuffix(v.VideoName, "_D"+m[1]) != originalName {
			continue
		}
		if n, err := strconv.Atoi(m[1]); err == nil && n >= next {
			next = n + 1
		}
	}
	return fmt.Sprintf("%s_D%d", originalName, next)
}

// OriginalName strips a _D<n> duplicate suffix, if any.
func OriginalName(videoName string) string {
	return duplicateSuffixRe.ReplaceAllString(videoName, "")
}

// IsDuplicateName reports whether videoName carries a duplicate suffix.
func IsDuplicateName(videoName string) bool {
	return duplicateSuffixRe.MatchString(videoName)
}

// DuplicateOrdinal extracts n from a _D<n> suffix, or 0.
func DuplicateOrdinal(videoName string) int {
	m := duplicateSuffixRe.FindStringSubmatch(videoName)
	if m == nil {
		return 0
	}
	n, _ := strconv.Atoi(m[1])
	return n
}

// ContextID extracts the shared campaign-context prefix (T1_C1_E1_AD1) from
// a video name, or "MERGED" when the name does not carry one.
func ContextID(videoName string) string {
	if m := contextRe.FindStringSubmatch(videoName); m != nil {
		return m[1]
	}
	return "MERGED"
}

// CharacterID extracts the trailing character identifier from a video name.
func CharacterID(videoName string) string {
	if m := characterRe.FindStringSubmatch(duplicateSuffixRe.ReplaceAllString(videoName, "")); m != nil {
		return m[1]
	}
	return "UNKNOWN"
}

// HookOrdinal extracts the hook number from a video name, defaulting to 1.
func HookOrdinal(videoName string) string {
	if m := hookOrdinalRe.FindStringSubmatch(strings.ToUpper(videoName)); m != nil {
		return m[1]
	}
	return "1"
}

// IsHookName reports whether a video name belongs to the hook role.
func IsHookName(videoName string) bool {
	return strings.Contains(strings.ToLower(videoName), "hook")
}

// ImageName parses the source image identifier out of an image reference:
// the filename up to the upload-timestamp suffix, e.g.
// ".../Alina_1-1763565542441-8ex9ipx3ruv.png" yields "Alina_1".
func ImageName(imageRef string) string {
	parts := strings.Split(imageRef, "/")
	filename := parts[len(parts)-1]
	if m := imageNameRe.FindStringSubmatch(filename); m != nil {
		return m[1]
	}
	return ""
}

// FinalVideoName combines the campaign context, character, source image and
// hook ordinal into the deliverable name.
func FinalVideoName(contextID, characterID, imageName, hookOrdinal string) string {
	if imageName == "" {
		return fmt.Sprintf("%s_%s_HOOK%s", contextID, characterID, hookOrdinal)
	}
	return fmt.Sprintf("%s_%s_%s_HOOK%s", contextID, characterID, imageName, hookOrdinal)
}

// HookGroupBaseName strips the variant letter from the hook marker, so
// HOOK1A and HOOK1B both group under HOOK1.
func HookGroupBaseName(videoName string) string {
	return hookVariantRe.ReplaceAllString(videoName, "HOOK$1")
}

// MergedHookName rewrites a hook group base name so the merged variant is
// marked with an M before the character suffix:
// "T1_C1_E1_AD1_HOOK1_ALINA" becomes "T1_C1_E1_AD1_HOOK1M_ALINA".
func MergedHookName(baseName string) string {
	if m := characterRe.FindStringSubmatchIndex(baseName); m != nil {
		return baseName[:m[2]-1] + "M" + baseName[m[2]-1:]
	}
	return baseName + "M"
}
