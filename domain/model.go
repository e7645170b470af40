package domain

type PromptType string

const (
	PromptNeutral PromptType = "PROMPT_NEUTRAL"
	PromptSmiling PromptType = "PROMPT_SMILING"
	PromptCTA     PromptType = "PROMPT_CTA"
	PromptCustom  PromptType = "PROMPT_CUSTOM"
)

type Section string

const (
	SectionHooks          Section = "HOOKS"
	SectionMirror         Section = "MIRROR"
	SectionDCS            Section = "DCS"
	SectionTransition     Section = "TRANSITION"
	SectionNewCause       Section = "NEW_CAUSE"
	SectionMechanism      Section = "MECHANISM"
	SectionEmotionalProof Section = "EMOTIONAL_PROOF"
	SectionTransformation Section = "TRANSFORMATION"
	SectionCTA            Section = "CTA"
	SectionOther          Section = "OTHER"
)

type GenerationStatus string

const (
	// StatusNotSubmitted is the zero value: the item has never been sent
	// to the generation service (fresh duplicates stay here).
	StatusNotSubmitted GenerationStatus = ""
	StatusPending      GenerationStatus = "pending"
	StatusSuccess      GenerationStatus = "success"
	StatusFailed       GenerationStatus = "failed"
)

type ReviewStatus string

const (
	ReviewNone       ReviewStatus = ""
	ReviewAccepted   ReviewStatus = "accepted"
	ReviewRegenerate ReviewStatus = "regenerate"
)

type RecutStatus string

const (
	RecutNone     RecutStatus = ""
	RecutAccepted RecutStatus = "accepted"
	RecutMarked   RecutStatus = "recut"
)

// HighlightRange marks the emphasized substring of a dialogue text as a
// half-open [Start,End) rune-offset interval.
type HighlightRange struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Combination is one generation request: a dialogue line bound to an image
// and a prompt type. VideoName is the stable external identifier.
type Combination struct {
	ID             string          `json:"id"`
	Text           string          `json:"text"`
	ImageRef       string          `json:"imageRef"`
	PromptType     PromptType      `json:"promptType"`
	VideoName      string          `json:"videoName"`
	Section        Section         `json:"section"`
	CategoryNumber int             `json:"categoryNumber"`
	Highlight      *HighlightRange `json:"highlight,omitempty"`
}

// CutPoints is the keep-window derived from transcription alignment, in
// milliseconds, plus per-marker locks set by the reviewer.
type CutPoints struct {
	StartMs     int     `json:"startMs"`
	EndMs       int     `json:"endMs"`
	Confidence  float64 `json:"confidence"`
	StartLocked bool    `json:"startLocked"`
	EndLocked   bool    `json:"endLocked"`
}

// VideoResult tracks one Combination through generation, review and
// post-processing. It is created 1:1 with a Combination at submission time
// and mutated in place by the poller, the review machine and the cut/merge
// stages.
type VideoResult struct {
	TaskID           string           `json:"taskId,omitempty"`
	Text             string           `json:"text"`
	ImageRef         string           `json:"imageRef"`
	Status           GenerationStatus `json:"status"`
	MediaURL         string           `json:"mediaUrl,omitempty"`
	Error            string           `json:"error,omitempty"`
	VideoName        string           `json:"videoName"`
	Section          Section          `json:"section"`
	CategoryNumber   int              `json:"categoryNumber"`
	ReviewStatus     ReviewStatus     `json:"reviewStatus"`
	IsDuplicate      bool             `json:"isDuplicate,omitempty"`
	DuplicateOrdinal int              `json:"duplicateOrdinal,omitempty"`
	OriginalName     string           `json:"originalVideoName,omitempty"`
	Highlight        *HighlightRange  `json:"highlight,omitempty"`
	CutPoints        *CutPoints       `json:"cutPoints,omitempty"`
	RecutStatus      RecutStatus      `json:"recutStatus"`
	TrimmedMediaURL  string           `json:"trimmedMediaUrl,omitempty"`
}

// ReviewHistoryEntry records one accept/regenerate decision so the most
// recent one can be undone.
type ReviewHistoryEntry struct {
	VideoName      string       `json:"videoName"`
	PreviousStatus ReviewStatus `json:"previousStatus"`
	NewStatus      ReviewStatus `json:"newStatus"`
}

// DeletedItem is the single-slot undo buffer for deletions: the removed
// Combination+VideoResult pair and its original array position.
type DeletedItem struct {
	Combination Combination `json:"combination"`
	Result      VideoResult `json:"result"`
	Index       int         `json:"index"`
}

// Transcript is the word-level transcription of one clip.
type Transcript struct {
	Words      []TranscriptWord `json:"words"`
	DurationMs int              `json:"durationMs"`
}

type TranscriptWord struct {
	Text    string `json:"text"`
	StartMs int    `json:"startMs"`
	EndMs   int    `json:"endMs"`
}

// ClipWindow is one (clip, keep-window) tuple submitted to the cutting
// service.
type ClipWindow struct {
	VideoName string `json:"videoName"`
	MediaURL  string `json:"mediaUrl"`
	StartMs   int    `json:"startMs"`
	EndMs     int    `json:"endMs"`
}

// FinalVideo is one assembled deliverable: a hook clip concatenated with
// the body clip.
type FinalVideo struct {
	VideoName string `json:"videoName"`
	MediaURL  string `json:"mediaUrl"`
	HookName  string `json:"hookName"`
	BodyName  string `json:"bodyName"`
}

// WorkingSession is the aggregate root and the unit of persistence: the
// whole document is saved after every mutating operation, last write wins.
type WorkingSession struct {
	Key             string                `json:"key"`
	UserID          string                `json:"userId"`
	ContextID       string                `json:"contextId"`
	CharacterID     string                `json:"characterId"`
	CustomPrompts   map[PromptType]string `json:"customPrompts,omitempty"`
	Combinations    []Combination         `json:"combinations"`
	Results         []VideoResult         `json:"videoResults"`
	ReviewHistory   []ReviewHistoryEntry  `json:"reviewHistory"`
	LastDeleted     *DeletedItem          `json:"lastDeleted,omitempty"`
	MergedPairURL   string                `json:"mergedPairUrl,omitempty"`
	MergedPairKey   string                `json:"mergedPairKey,omitempty"`
	SampleMergedURL string                `json:"sampleMergedUrl,omitempty"`
	SampleMergedKey string                `json:"sampleMergedKey,omitempty"`
	BodyMergedURL   string                `json:"bodyMergedUrl,omitempty"`
	HookMergedURLs  map[string]string     `json:"hookMergedUrls,omitempty"`
	FinalVideos     []FinalVideo          `json:"finalVideos,omitempty"`
}

// FindResult returns the result with the given videoName, or nil.
func (s *WorkingSession) FindResult(videoName string) *VideoResult {
	for i := range s.Results {
		if s.Results[i].VideoName == videoName {
			return &s.Results[i]
		}
	}
	return nil
}

// ResultIndex returns the position of videoName in Results, or -1.
func (s *WorkingSession) ResultIndex(videoName string) int {
	for i := range s.Results {
		if s.Results[i].VideoName == videoName {
			return i
		}
	}
	return -1
}

// PendingResults selects the items the poller must still reconcile: pending
// with a task handle and no media URL yet. Items that already resolved never
// match, which is what makes a poll tick idempotent.
func (s *WorkingSession) PendingResults() []*VideoResult {
	var pending []*VideoResult
	for i := range s.Results {
		r := &s.Results[i]
		if r.Status == StatusPending && r.TaskID != "" && r.MediaURL == "" {
			pending = append(pending, r)
		}
	}
	return pending
}

// AcceptedResults returns every successfully generated, reviewer-accepted
// item, in display order.
func (s *WorkingSession) AcceptedResults() []*VideoResult {
	var accepted []*VideoResult
	for i := range s.Results {
		r := &s.Results[i]
		if r.ReviewStatus == ReviewAccepted && r.Status == StatusSuccess && r.MediaURL != "" {
			accepted = append(accepted, r)
		}
	}
	return accepted
}
