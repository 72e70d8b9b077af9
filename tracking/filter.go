package tracking

import "time"

// LocationResolveFilter is a minimum-dwell debouncer over a stream of
// resolved locations: it absorbs the transient mis-resolutions that
// happen while game memory is mid-update, only committing to a new
// location once it has held steady for at least min_time of play time.
type LocationResolveFilter[L comparable] struct {
	minTime time.Duration

	candidateSince EventTime
	candidate      L

	committedAt EventTime
	committed   L
	hasCommit   bool
}

// NewLocationResolveFilter starts a filter with no committed location
// yet; location carries the initial candidate.
func NewLocationResolveFilter[L comparable](minTime time.Duration, now EventTime, location L) *LocationResolveFilter[L] {
	return &LocationResolveFilter[L]{minTime: minTime, candidateSince: now, candidate: location}
}

// NewSeededLocationResolveFilter starts a filter already committed to
// location, for spell practice runs where the location is fixed by
// construction and never reconsidered.
func NewSeededLocationResolveFilter[L comparable](minTime time.Duration, now EventTime, location L) *LocationResolveFilter[L] {
	f := NewLocationResolveFilter(minTime, now, location)
	f.committedAt = now
	f.committed = location
	f.hasCommit = true
	return f
}

// Committed returns the filter's current committed location, if any.
func (f *LocationResolveFilter[L]) Committed() (L, bool) {
	return f.committed, f.hasCommit
}

// UpdateLocation feeds in a freshly resolved location, reporting whether
// this call caused a new commit. The committed EventTime this produces is
// stamped at the instant the dwell threshold was actually crossed --
// candidateSince plus minTime -- not at now, the instant a poll happened
// to notice it; with polls landing strictly after that instant (as in
// scenario E5, whose snapshots skip from 400ms to 1000ms), the committed
// timestamp still lands at the true 500ms-dwell boundary rather than at
// whichever later poll detected it.
func (f *LocationResolveFilter[L]) UpdateLocation(now EventTime, location L) bool {
	if f.candidate != location {
		f.candidate = location
		f.candidateSince = now
		return false
	}

	if f.hasCommit && f.committed == location {
		return false
	}

	if now.PlayTimeBetween(f.candidateSince) >= f.minTime {
		f.committedAt = f.candidateSince.advance(f.minTime)
		f.committed = location
		f.hasCommit = true
		return true
	}
	return false
}

// CommittedAt returns the EventTime of the filter's current commit.
func (f *LocationResolveFilter[L]) CommittedAt() EventTime {
	return f.committedAt
}
