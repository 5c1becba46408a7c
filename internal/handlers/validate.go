// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Input limits. Generous for content, tight for names that end up in
// navigation and tag chips.
const (
	maxNameLen        = 120
	maxTitleLen       = 200
	maxDescriptionLen = 500
	maxExcerptLen     = 1000
	maxContentLen     = 200_000
	maxTagLen         = 60
	maxTagsPerArticle = 20
	maxURLLen         = 2000
)

func validateRequired(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s is required", field)
	}
	return nil
}

func validateLen(field, value string, max int) error {
	if utf8.RuneCountInString(value) > max {
		return fmt.Errorf("%s exceeds %d characters", field, max)
	}
	return nil
}

func validateTags(tags []string) error {
	if len(tags) > maxTagsPerArticle {
		return fmt.Errorf("too many tags (max %d)", maxTagsPerArticle)
	}
	for _, t := range tags {
		if strings.TrimSpace(t) == "" {
			return fmt.Errorf("empty tag")
		}
		if err := validateLen("tag", t, maxTagLen); err != nil {
			return err
		}
	}
	return nil
}
