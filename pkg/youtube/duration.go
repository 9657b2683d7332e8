package youtube

import (
	"strings"

	"yt-warehouse/pkg/domain"
)

// FormatDuration rewrites an ISO-8601 duration token of the form
// PT#H#M#S by literal character substitution: strip the leading "PT",
// turn "H" and "M" into ":", drop the trailing "S".
//
//	PT1H2M10S -> 1:2:10
//	PT5M      -> 5:
//	PT45S     -> 45
func FormatDuration(iso string) string {
	if iso == "" {
		return domain.NA
	}
	s := strings.TrimPrefix(iso, "PT")
	s = strings.ReplaceAll(s, "H", ":")
	s = strings.ReplaceAll(s, "M", ":")
	return strings.ReplaceAll(s, "S", "")
}

// normalizeTimestamp turns an RFC3339 timestamp into the DATETIME-ready
// form "2006-01-02 15:04:05" by dropping the "Z" and "T" markers.
func normalizeTimestamp(published string) string {
	if published == "" {
		return domain.NA
	}
	s := strings.ReplaceAll(published, "Z", "")
	return strings.ReplaceAll(s, "T", " ")
}
