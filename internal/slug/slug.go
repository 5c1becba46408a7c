// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug derives URL-friendly identifiers for tags. The rule is
// deliberately minimal: tags are user-visible strings that may contain
// punctuation ("C++", "Node.js"), so only case and whitespace are
// normalized. The slug of a tag must stay derivable from its name alone,
// since tags are never persisted as entities.
package slug

import (
	"regexp"
	"strings"
)

// whitespaceRun matches one or more consecutive whitespace characters.
var whitespaceRun = regexp.MustCompile(`\s+`)

// ForTag creates the index identifier for a tag name.
// Example: "Future  Tech" → "future-tech".
func ForTag(name string) string {
	return whitespaceRun.ReplaceAllString(strings.ToLower(name), "-")
}
