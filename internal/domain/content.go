package domain

import (
	"fmt"
	"strings"
)

// Portfolio is everything the page renders, grouped by section.
type Portfolio struct {
	Profile   Profile
	Education []EducationEntry
	Skills    []SkillGroup
	Projects  []Project
	Gallery   []GalleryItem
	Contact   ContactInfo
}

type Profile struct {
	Name     string
	Headline string
	Location string
	// Bio is markdown; the page renderer typesets it.
	Bio   string
	Links []Link
}

// ContactInfo is the static half of the contact section, shown next to the
// form.
type ContactInfo struct {
	Email  string
	Blurb  string
	ToName string
}

type Link struct {
	Label string
	URL   string
}

type EducationEntry struct {
	Degree      string
	Institution string
	Start       string
	End         string
	Notes       []string
}

type SkillGroup struct {
	Name   string
	Skills []string
}

type Project struct {
	Name    string
	Summary string
	Tech    []string
	Repo    string
}

type GalleryItem struct {
	Caption string
	// Art is a preformatted block rendered verbatim inside the item's frame.
	Art string
}

// ContactMessage is one outbound message as entered in the contact form.
type ContactMessage struct {
	SenderName string
	ReplyTo    string
	Body       string
}

func (m ContactMessage) Validate() error {
	if strings.TrimSpace(m.SenderName) == "" {
		return fmt.Errorf("sender name is required")
	}
	if strings.TrimSpace(m.ReplyTo) == "" {
		return fmt.Errorf("reply-to address is required")
	}
	if !strings.Contains(m.ReplyTo, "@") {
		return fmt.Errorf("reply-to address %q is not an email address", m.ReplyTo)
	}
	if strings.TrimSpace(m.Body) == "" {
		return fmt.Errorf("message body is required")
	}

	return nil
}
