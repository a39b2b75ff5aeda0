package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoundsCrossesDetectionLine(t *testing.T) {
	b := Bounds{Top: -4, Bottom: 12}

	assert.True(t, b.Crosses(3))
	assert.True(t, b.Crosses(-4))
	assert.True(t, b.Crosses(12))
	assert.False(t, b.Crosses(13))
	assert.False(t, b.Crosses(-5))
}

func TestSubmissionLogPruneKeepsEntriesInsideWindow(t *testing.T) {
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	log := SubmissionLog{
		base,
		base.Add(100 * time.Millisecond),
		base.Add(200 * time.Millisecond),
	}

	pruned := log.Prune(base.Add(300*time.Millisecond), 10*time.Minute)
	assert.Len(t, pruned, 3)

	pruned = log.Prune(base.Add(10*time.Minute+time.Millisecond), 10*time.Minute)
	require.Len(t, pruned, 2)
	assert.Equal(t, base.Add(100*time.Millisecond), pruned.Oldest())
}

func TestSubmissionLogPruneDropsEntryExactlyOneWindowOld(t *testing.T) {
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	log := SubmissionLog{base}

	assert.Empty(t, log.Prune(base.Add(10*time.Minute), 10*time.Minute))
}

func TestSubmissionLogOldestOfEmptyLogIsZero(t *testing.T) {
	assert.True(t, SubmissionLog{}.Oldest().IsZero())
}

func TestThemeToggled(t *testing.T) {
	assert.Equal(t, ThemeLight, ThemeDark.Toggled())
	assert.Equal(t, ThemeDark, ThemeLight.Toggled())
}

func TestThemeValid(t *testing.T) {
	assert.True(t, ThemeDark.Valid())
	assert.True(t, ThemeLight.Valid())
	assert.False(t, Theme("").Valid())
	assert.False(t, Theme("solarized").Valid())
}

func TestContactMessageValidate(t *testing.T) {
	valid := ContactMessage{
		SenderName: "Ada",
		ReplyTo:    "ada@example.com",
		Body:       "Hello there.",
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name    string
		mutate  func(*ContactMessage)
		wantErr string
	}{
		{name: "missing sender", mutate: func(m *ContactMessage) { m.SenderName = "  " }, wantErr: "sender name is required"},
		{name: "missing reply-to", mutate: func(m *ContactMessage) { m.ReplyTo = "" }, wantErr: "reply-to address is required"},
		{name: "reply-to without at sign", mutate: func(m *ContactMessage) { m.ReplyTo = "ada.example.com" }, wantErr: "not an email address"},
		{name: "missing body", mutate: func(m *ContactMessage) { m.Body = "\n" }, wantErr: "message body is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := valid
			tt.mutate(&msg)
			err := msg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSectionIDsPreservesOrder(t *testing.T) {
	sections := []Section{
		{ID: "home", Title: "Home"},
		{ID: "about", Title: "About"},
		{ID: "contact", Title: "Contact"},
	}

	assert.Equal(t, []SectionID{"home", "about", "contact"}, SectionIDs(sections))
}
