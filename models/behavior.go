package models

import "time"

type BehaviorKind string

const (
	BehaviorSuspicious BehaviorKind = "suspicious"
	BehaviorRecording  BehaviorKind = "recording"
)

// Default event descriptions used when the caller supplies none.
const (
	DefaultSuspiciousDescription = "Suspicious behavior detected"
	RecordingDescription         = "Video recording initiated"
)

// BehaviorEvent is immutable once appended to a subject's log.
type BehaviorEvent struct {
	ID          int64        `json:"id"`
	Kind        BehaviorKind `json:"type"`
	Timestamp   time.Time    `json:"timestamp"`
	Description string       `json:"description"`
}

// SubjectBehavior is the per-subject record: a running count of suspicious
// events plus the append-only event log. Recording events are logged but
// never counted.
type SubjectBehavior struct {
	Count  int             `json:"count"`
	Events []BehaviorEvent `json:"events"`
}

type AlertLevel string

const (
	AlertNone   AlertLevel = "none"
	AlertOrange AlertLevel = "orange"
	AlertRed    AlertLevel = "red"
)

// AlertLevelForCount derives the alert level from a suspicious-behavior
// count. The level is always recomputed from the count and never stored.
func AlertLevelForCount(count int) AlertLevel {
	if count == 0 {
		return AlertNone
	}
	if count < 5 {
		return AlertOrange
	}
	return AlertRed
}
