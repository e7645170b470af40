package domain

import "strings"

// TextPlaceholder is the slot in a prompt template that receives the
// dialogue line at submission time.
const TextPlaceholder = "[INSERT TEXT]"

// DefaultPromptTemplates are the built-in generation prompts used when the
// session carries no custom override for the type.
var DefaultPromptTemplates = map[PromptType]string{
	PromptNeutral: `SUBJECT — Minimal makeup, natural skin texture visible.

ACTION AND CAMERA MOTION — The woman blinks naturally, subtly moves her eyebrows, and her lips move perfectly syncing with the Romanian dialogue. Micro head nods and slight posture shifts.

AUDIO — Female voice in Romanian, warm tone, age 40s, slightly introspective, clear and natural speech with realistic pauses and mouth shape syncing. Dialogue: "[INSERT TEXT]"

STYLE — Smooth, precise lip-sync. No smiling, no dramatic gestures, just natural blinking, head nods, and small posture adjustments. Authentic iPhone-style realism, quiet introspective tone, natural tempo of real conversation. After finishing the dialogue she keeps looking at the camera for a few seconds, calm and still.

High quality, realistic rendering in 4K. No subtitles. No music. No smiling.`,
	PromptSmiling: `SUBJECT — Minimal makeup, natural skin texture visible.

ACTION AND CAMERA MOTION — The woman blinks naturally, subtly moves her eyebrows, and her lips move perfectly syncing with the Romanian dialogue. Micro head nods and slight posture shifts.

AUDIO — Female voice in Romanian, warm tone, age 40s, slightly introspective, clear and natural speech with realistic pauses and mouth shape syncing. Dialogue: "[INSERT TEXT]"

STYLE — Smooth, precise lip-sync. Smiling, no dramatic gestures, just natural blinking, head nods, and small posture adjustments. Authentic iPhone-style realism, quiet introspective tone, natural tempo of real conversation. After finishing the dialogue she keeps looking at the camera for a few seconds, calm and still.

High quality, realistic rendering in 4K. No subtitles. No music. Smiling.`,
	PromptCTA: `SUBJECT — Minimal makeup, natural skin texture visible.

ACTION AND CAMERA MOTION — The woman blinks naturally, subtly moves her eyebrows, and her lips move perfectly syncing with the Romanian dialogue. Micro head nods and slight posture shifts.

AUDIO — Female voice in Romanian, warm tone, age 40s, slightly introspective, clear and natural speech with realistic pauses and mouth shape syncing. Dialogue: "[INSERT TEXT]"

STYLE — Smooth, precise lip-sync. Smiling, no dramatic gestures, just natural blinking, head nods, and small posture adjustments. Authentic iPhone-style realism, quiet introspective tone, natural tempo of real conversation.

High quality, realistic rendering in 4K. No subtitles. No music. Smiling.

Make sure the book stays visible on screen throughout the entire video, clearly held in her hands the whole time.`,
}

// ResolvePromptTemplate returns the session's custom template for the type
// when one is set, the built-in default otherwise.
func ResolvePromptTemplate(custom map[PromptType]string, t PromptType) string {
	if tpl, ok := custom[t]; ok && tpl != "" {
		return tpl
	}
	return DefaultPromptTemplates[t]
}

// RenderPrompt substitutes the dialogue line into the template. A template
// without the placeholder gets the dialogue appended, never dropped.
func RenderPrompt(template, text string) string {
	if strings.Contains(template, TextPlaceholder) {
		return strings.ReplaceAll(template, TextPlaceholder, text)
	}
	return template + "\n\nDialogue: \"" + text + "\""
}
