package domain

// SearchPageState is what the search screen renders: the current query and
// everything fetched for it so far.
type SearchPageState struct {
	Query         string
	Results       []VideoSummary
	Loading       bool
	Error         string
	NextPageToken string
}

// HasMore reports whether another page can be requested.
func (s SearchPageState) HasMore() bool {
	return s.NextPageToken != ""
}

// Clone returns a copy that shares no slice memory with s.
func (s SearchPageState) Clone() SearchPageState {
	out := s
	out.Results = make([]VideoSummary, len(s.Results))
	copy(out.Results, s.Results)
	return out
}
