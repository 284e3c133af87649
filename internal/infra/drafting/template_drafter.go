package drafting

import (
	"bytes"
	"context"
	"strings"
	"text/template"
	"unicode"

	"cafe/internal/domain/service"

	"github.com/pkg/errors"
)

var contentTemplate = template.Must(template.New("announcement").Parse(
	`Good news from the café! {{.Topic}} is here.

Drop by during break time and ask our volunteers about it. Pre-orders placed today are ready for pickup tomorrow.`))

// templateDrafter builds a deterministic announcement without any external call.
type templateDrafter struct{}

// NewTemplateDrafter creates the built-in drafter.
func NewTemplateDrafter() service.AnnouncementDrafter {
	return templateDrafter{}
}

func (templateDrafter) Draft(_ context.Context, topic string) (*service.AnnouncementDraft, error) {
	topic = strings.Join(strings.Fields(topic), " ")
	if topic == "" {
		return nil, errors.New("topic is empty")
	}

	var buf bytes.Buffer
	if err := contentTemplate.Execute(&buf, struct{ Topic string }{Topic: capitalize(topic)}); err != nil {
		return nil, errors.WithStack(err)
	}

	return &service.AnnouncementDraft{
		Title:   capitalize(topic),
		Content: buf.String(),
	}, nil
}

func capitalize(s string) string {
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])

	return string(r)
}
