package commits

import "strings"

const (
	minimumStatusTokenCountConstant = 2
	statusLineSeparatorConstant     = "\n"
)

// ChangeRecord is one parsed line of a porcelain status listing.
type ChangeRecord struct {
	StatusCode string
	Path       string
}

// ParseStatusListing converts `git status --porcelain` output into change records in listing order.
// Lines with fewer than two whitespace-separated tokens are dropped. The last token is the path,
// so rename entries ("R  old -> new") resolve to the new path.
func ParseStatusListing(listing string) []ChangeRecord {
	records := []ChangeRecord{}
	for _, line := range strings.Split(listing, statusLineSeparatorConstant) {
		tokens := strings.Fields(line)
		if len(tokens) < minimumStatusTokenCountConstant {
			continue
		}
		records = append(records, ChangeRecord{StatusCode: tokens[0], Path: tokens[len(tokens)-1]})
	}
	return records
}
