package parsing

import (
	"regexp"
	"strings"
)

// Section labels one of the four job-description segments.
type Section string

// Section values, in scoring precedence order.
const (
	SectionRequirements     Section = "requirements"
	SectionResponsibilities Section = "responsibilities"
	SectionPreferred        Section = "preferred"
	SectionOther            Section = "other"
)

// JDSections holds the job-description text accumulated under each section
// heading. Text before the first recognized heading lands in Other.
type JDSections struct {
	Requirements     string
	Responsibilities string
	Preferred        string
	Other            string
}

// headingPatterns classifies whole lines as section headings. Each pattern is
// anchored so that only standalone heading lines (optionally decorated with
// markdown or a trailing colon) switch the section; a sentence that merely
// mentions "requirements" does not. Checked in order; the first match wins.
// Hand-tuned data; extend rather than restructure.
var headingPatterns = []struct {
	section Section
	re      *regexp.Regexp
}{
	{SectionRequirements, regexp.MustCompile(`(?i)^[\s#*•-]*(?:(?:key|minimum|basic|core)\s+)?(?:requirements?|qualifications?|must[-\s]haves?|what\s+(?:you(?:'|’)?ll|we)\s+(?:need|require)|who\s+you\s+are|what\s+we(?:'|’)?re\s+looking\s+for)\s*[:*]*\s*$`)},
	{SectionResponsibilities, regexp.MustCompile(`(?i)^[\s#*•-]*(?:(?:key|your|core)\s+)?(?:responsibilit(?:y|ies)|duties|what\s+you(?:'|’)?ll\s+(?:do|be\s+doing)|(?:about\s+)?the\s+role|your\s+(?:role|mission)|day[-\s]to[-\s]day|in\s+this\s+role)\s*[:*]*\s*$`)},
	{SectionPreferred, regexp.MustCompile(`(?i)^[\s#*•-]*(?:preferred(?:\s+(?:skills?|qualifications?|experience))?|nice[-\s]to[-\s]haves?|bonus(?:\s+(?:points?|skills?))?|(?:would\s+be\s+)?a\s+plus|good[-\s]to[-\s]haves?)\s*[:*]*\s*$`)},
}

// matchHeading returns the section a heading line introduces, or "" when the
// line is ordinary content.
func matchHeading(line string) Section {
	for _, hp := range headingPatterns {
		if hp.re.MatchString(line) {
			return hp.section
		}
	}
	return ""
}

// SegmentJobDescription splits job-description text into labeled sections.
// It walks the text line by line with a current-section cursor that starts at
// Other. A line matching a heading pattern switches the cursor and is
// consumed; every other non-blank line is appended to the current section.
// A JD without recognizable headings therefore ends up entirely in Other.
func SegmentJobDescription(text string) JDSections {
	acc := map[Section]*strings.Builder{
		SectionRequirements:     {},
		SectionResponsibilities: {},
		SectionPreferred:        {},
		SectionOther:            {},
	}

	current := SectionOther
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if sec := matchHeading(trimmed); sec != "" {
			current = sec
			continue
		}
		b := acc[current]
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(trimmed)
	}

	return JDSections{
		Requirements:     acc[SectionRequirements].String(),
		Responsibilities: acc[SectionResponsibilities].String(),
		Preferred:        acc[SectionPreferred].String(),
		Other:            acc[SectionOther].String(),
	}
}
