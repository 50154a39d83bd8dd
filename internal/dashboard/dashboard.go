package dashboard

import "context"

// Stats are four independent counts; they are not read in one snapshot.
type Stats struct {
	TotalCases      int64 `json:"total_cases"`
	OpenCases       int64 `json:"open_cases"`
	WantedCriminals int64 `json:"wanted_criminals"`
	ActiveStaff     int64 `json:"active_staff"`
}

type RepositoryAPI interface {
	Stats(ctx context.Context) (*Stats, error)
}
