// Package extractor turns rendered page markup into cleaned prose lines.
//
// Extraction runs in two stages. First, non-prose DOM nodes are removed
// wholesale: scripts, styles, navigation chrome, and all tabular markup,
// plus containers whose class or id names a schedule, calendar, or booking
// widget. The target sites are full of course timetables that read as
// garbage once flattened to text, so tables are dropped entirely rather
// than linearized.
//
// Second, the remaining text is flattened to one line per text node and
// filtered line by line with fixed density heuristics (colon count, date
// pattern count, weekday token count). The thresholds were tuned against
// real pages and are deliberately not configurable; changing them changes
// the output of every existing run.
//
// Extraction never fails. Unparseable markup yields no lines, which the
// pipeline treats as an empty page.
package extractor
