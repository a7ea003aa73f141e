package models

import "fmt"

// Mood is the single mood tag of an entry.
type Mood string

const (
	MoodHappy   Mood = "happy"
	MoodExcited Mood = "excited"
	MoodNeutral Mood = "neutral"
	MoodSad     Mood = "sad"
	MoodAnxious Mood = "anxious"
	MoodAngry   Mood = "angry"

	DefaultMood = MoodNeutral
)

// Moods lists every mood in display order.
var Moods = []Mood{MoodHappy, MoodExcited, MoodNeutral, MoodSad, MoodAnxious, MoodAngry}

var moodEmoji = map[Mood]string{
	MoodHappy:   "😊",
	MoodExcited: "🤩",
	MoodNeutral: "😐",
	MoodSad:     "😢",
	MoodAnxious: "😟",
	MoodAngry:   "😠",
}

// Valid reports whether m is one of the known moods.
func (m Mood) Valid() bool {
	_, ok := moodEmoji[m]
	return ok
}

// Emoji returns the mood's display glyph.
func (m Mood) Emoji() string {
	if e, ok := moodEmoji[m]; ok {
		return e
	}
	return moodEmoji[DefaultMood]
}

// ParseMood converts user input into a Mood.
func ParseMood(s string) (Mood, error) {
	m := Mood(s)
	if !m.Valid() {
		return "", fmt.Errorf("invalid mood %q (expected one of happy, excited, neutral, sad, anxious, angry)", s)
	}
	return m, nil
}
