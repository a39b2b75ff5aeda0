package domain

import "time"

// SubmissionLog records when past contact-form sends succeeded, oldest first.
type SubmissionLog []time.Time

// Prune drops entries that have aged out of the sliding window relative to
// now. An entry survives while its age is strictly less than the window, so a
// slot frees up the instant its timestamp is a full window old.
func (l SubmissionLog) Prune(now time.Time, window time.Duration) SubmissionLog {
	if len(l) == 0 {
		return l
	}

	kept := make(SubmissionLog, 0, len(l))
	for _, stamp := range l {
		if now.Sub(stamp) < window {
			kept = append(kept, stamp)
		}
	}

	return kept
}

// Oldest returns the earliest entry, or the zero time when the log is empty.
func (l SubmissionLog) Oldest() time.Time {
	var oldest time.Time
	for _, stamp := range l {
		if oldest.IsZero() || stamp.Before(oldest) {
			oldest = stamp
		}
	}
	return oldest
}
