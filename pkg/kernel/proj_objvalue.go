package kernel

import "strings"

// Email is a recipient address for (simulated) alert delivery
type Email string

func (e Email) String() string { return string(e) }
func (e Email) IsEmpty() bool  { return strings.TrimSpace(string(e)) == "" }

// IsValid does a minimal shape check; alert delivery is simulated, so the
// address is never handed to a real mailer
func (e Email) IsValid() bool {
	s := string(e)
	at := strings.Index(s, "@")
	return at > 0 && at < len(s)-1
}

// JobDescription is the free-form job posting text candidates are scored against
type JobDescription string

func (j JobDescription) String() string { return string(j) }
func (j JobDescription) IsEmpty() bool  { return strings.TrimSpace(string(j)) == "" }

// ParseRecipients splits a comma-separated recipient list, dropping blanks
func ParseRecipients(raw string) []Email {
	parts := strings.Split(raw, ",")
	recipients := make([]Email, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			recipients = append(recipients, Email(p))
		}
	}
	return recipients
}
