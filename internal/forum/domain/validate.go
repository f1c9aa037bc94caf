package domain

import (
	"strings"
	"unicode/utf8"
)

const (
	MinUsernameLength   = 3
	MinPasswordLength   = 6
	MinTitleLength      = 5
	MinThreadBodyLength = 15
	MinPostBodyLength   = 3

	DefaultCategory = "General"

	summaryLimit  = 180
	summaryPrefix = 177
)

// NormalizeUsername is applied before every username comparison and write.
func NormalizeUsername(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// ValidateRegistration normalizes the username and checks both credentials.
func ValidateRegistration(username, password string) (string, error) {
	username = NormalizeUsername(username)
	if utf8.RuneCountInString(username) < MinUsernameLength {
		return "", ErrUsernameTooShort
	}
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return "", ErrPasswordTooShort
	}
	return username, nil
}

// ThreadInput is the caller-supplied part of a new thread.
type ThreadInput struct {
	Title    string
	Body     string
	Category string
	Tags     []string
}

// Normalize trims every field, applies the default category and checks
// the minimum lengths.
func (in ThreadInput) Normalize() (ThreadInput, error) {
	out := ThreadInput{
		Title:    strings.TrimSpace(in.Title),
		Body:     strings.TrimSpace(in.Body),
		Category: strings.TrimSpace(in.Category),
		Tags:     NormalizeTags(in.Tags),
	}
	if out.Category == "" {
		out.Category = DefaultCategory
	}
	if utf8.RuneCountInString(out.Title) < MinTitleLength {
		return ThreadInput{}, ErrTitleTooShort
	}
	if utf8.RuneCountInString(out.Body) < MinThreadBodyLength {
		return ThreadInput{}, ErrThreadBodyShort
	}
	return out, nil
}

// NormalizePostBody trims the body and checks its minimum length.
func NormalizePostBody(body string) (string, error) {
	body = strings.TrimSpace(body)
	if utf8.RuneCountInString(body) < MinPostBodyLength {
		return "", ErrPostBodyShort
	}
	return body, nil
}

// ParseTags splits comma separated tag text.
func ParseTags(raw string) []string {
	return NormalizeTags(strings.Split(raw, ","))
}

// NormalizeTags trims tags, drops empties and duplicates, and splits any
// entry containing a comma so tags always survive comma-joined storage.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		for part := range strings.SplitSeq(tag, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			if _, ok := seen[part]; ok {
				continue
			}
			seen[part] = struct{}{}
			out = append(out, part)
		}
	}
	return out
}

// Summarize truncates long bodies for listings.
func Summarize(body string) string {
	if utf8.RuneCountInString(body) <= summaryLimit {
		return body
	}
	runes := []rune(body)
	return string(runes[:summaryPrefix]) + "..."
}
