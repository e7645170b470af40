package domain

import (
	"errors"
	"strings"
)

// CutMarginMs is the symmetric padding applied around the derived
// keep-window boundary.
const CutMarginMs = 50

// highlightEndSlack is how close (in runes) the highlight end must be to the
// text end for the highlight to count as sitting at the END of the line.
const highlightEndSlack = 10

const alignmentConfidence = 0.95

var (
	ErrKeyWordNotFound = errors.New("key word not found in transcript")
	ErrEmptyKeepWindow = errors.New("keep-window is empty")
)

var wordPunctuation = strings.NewReplacer(",", "", ".", "", ":", "", ";", "", "!", "", "?", "")

// NormalizeWord strips sentence punctuation and lowercases, so transcript
// words compare equal to script words regardless of how the transcriber
// punctuates.
func NormalizeWord(w string) string {
	return strings.TrimSpace(strings.ToLower(wordPunctuation.Replace(w)))
}

// HighlightAtEnd reports whether the highlighted span sits at the end of the
// line. The transcriber occasionally swallows a trailing word, so anything
// ending within the last few runes counts.
func HighlightAtEnd(text string, h HighlightRange) bool {
	return h.End >= len([]rune(text))-highlightEndSlack
}

// HighlightedText returns the emphasized substring of text, clamped to the
// rune bounds.
func HighlightedText(text string, h HighlightRange) string {
	runes := []rune(text)
	start, end := h.Start, h.End
	if start < 0 {
		start = 0
	}
	if end > len(runes) {
		end = len(runes)
	}
	if start >= end {
		return ""
	}
	return string(runes[start:end])
}

// DeriveCutPoints computes the keep-window for a clip: the span of the
// transcript NOT covered by the highlighted substring, bounded by a key word
// located via normalized comparison. A highlight at the start keeps
// everything after the last highlighted word's first occurrence; a highlight
// at the end keeps everything before the first highlighted word's last
// occurrence. Without a highlight the whole clip is kept.
func DeriveCutPoints(t *Transcript, text string, h *HighlightRange) (CutPoints, error) {
	if h == nil {
		return CutPoints{StartMs: 0, EndMs: t.DurationMs, Confidence: 1.0}, nil
	}

	highlighted := strings.Fields(HighlightedText(text, *h))
	if len(highlighted) == 0 || len(t.Words) == 0 {
		return CutPoints{StartMs: 0, EndMs: t.DurationMs, Confidence: 1.0}, nil
	}

	atEnd := HighlightAtEnd(text, *h)

	var keyWord string
	var idx int
	if atEnd {
		// Keep the head of the clip: find the first highlighted word,
		// last occurrence, and cut before it.
		keyWord = NormalizeWord(highlighted[0])
		idx = -1
		for i := len(t.Words) - 1; i >= 0; i-- {
			if NormalizeWord(t.Words[i].Text) == keyWord {
				idx = i
				break
			}
		}
	} else {
		// Keep the tail: find the last highlighted word, first
		// occurrence, and cut after it.
		keyWord = NormalizeWord(highlighted[len(highlighted)-1])
		idx = -1
		for i := range t.Words {
			if NormalizeWord(t.Words[i].Text) == keyWord {
				idx = i
				break
			}
		}
	}
	if idx == -1 {
		return CutPoints{}, ErrKeyWordNotFound
	}

	if atEnd {
		start := t.Words[0].StartMs + CutMarginMs
		if start < 0 {
			start = 0
		}
		end := t.Words[idx].StartMs - CutMarginMs
		if end <= start {
			return CutPoints{}, ErrEmptyKeepWindow
		}
		return CutPoints{StartMs: start, EndMs: end, Confidence: alignmentConfidence}, nil
	}

	start := t.Words[idx].EndMs + CutMarginMs
	end := t.Words[len(t.Words)-1].EndMs + CutMarginMs
	if end <= start {
		return CutPoints{}, ErrEmptyKeepWindow
	}
	return CutPoints{StartMs: start, EndMs: end, Confidence: alignmentConfidence}, nil
}
