package idgen

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/veloralabs/agencydesk/internal/types"
)

// clientIDPattern is the full client identifier grammar: project code,
// platform code, the fixed separator digit 7, a two-digit sequence, a
// three-letter country code, a two-digit year and a hex-month character.
// The month class is [0-9A-C] as persisted historically; semantic range
// checks beyond the character class are deliberately not applied here.
var clientIDPattern = regexp.MustCompile(`^([ESMP])([AWBH])7([0-9]{2})-([A-Z]{3})-([0-9]{2})([0-9A-C])$`)

// ClientIDParts is the decomposition of a well-formed client identifier.
type ClientIDParts struct {
	ProjectCode    types.ProjectCode
	PlatformCode   types.PlatformCode
	SequenceNumber int
	CountryCode    string
	Year           int
	Month          time.Month
}

// ParseClientID decomposes a client identifier string. It is total:
// input that does not match the grammar yields nil, never an error,
// since parsing untrusted or legacy strings is an expected occurrence.
func ParseClientID(s string) *ClientIDParts {
	m := clientIDPattern.FindStringSubmatch(s)
	if m == nil {
		return nil
	}

	seq, _ := strconv.Atoi(m[3])
	year, _ := strconv.Atoi(m[5])
	month, _ := strconv.ParseInt(m[6], 16, 64)

	return &ClientIDParts{
		ProjectCode:    types.ProjectCode(m[1]),
		PlatformCode:   types.PlatformCode(m[2]),
		SequenceNumber: seq,
		CountryCode:    m[4],
		Year:           year,
		Month:          time.Month(month),
	}
}

// IsValidClientID reports whether s matches the client identifier grammar.
func IsValidClientID(s string) bool {
	return clientIDPattern.MatchString(s)
}

// BaseClientID returns the portion of a decorated client identifier before
// its first '-'. A string without a '-' is returned unchanged; dependent
// sequences treat it as already being a base id.
func BaseClientID(clientID string) string {
	if idx := strings.Index(clientID, "-"); idx >= 0 {
		return clientID[:idx]
	}
	return clientID
}
