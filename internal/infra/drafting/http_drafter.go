package drafting

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	domainerrors "cafe/internal/domain/errors"
	"cafe/internal/domain/service"

	"github.com/pkg/errors"
)

const promptTemplate = `You write short announcements for a school café website.
Write a friendly announcement about: %s
Put a short title on the first line, then one or two short paragraphs. Do not use markdown.`

type generateRequest struct {
	Prompt string `json:"prompt"`
}

type generateResponse struct {
	Text string `json:"text"`
}

// httpDrafter asks a text generation endpoint for the announcement.
type httpDrafter struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
}

// NewHTTPDrafter creates a drafter that POSTs {"prompt"} and reads {"text"}.
func NewHTTPDrafter(endpoint, apiKey string, client *http.Client) service.AnnouncementDrafter {
	return &httpDrafter{endpoint: endpoint, apiKey: apiKey, httpClient: client}
}

func (d *httpDrafter) Draft(ctx context.Context, topic string) (*service.AnnouncementDraft, error) {
	body, err := json.Marshal(generateRequest{Prompt: fmt.Sprintf(promptTemplate, topic)})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if d.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+d.apiKey)
	}

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrDraftFailed, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.Wrapf(domainerrors.ErrDraftFailed, "generator returned status %d", resp.StatusCode)
	}

	var out generateResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&out); err != nil {
		return nil, errors.Wrap(domainerrors.ErrDraftFailed, err.Error())
	}

	draft := splitDraft(out.Text)
	if draft.Content == "" {
		return nil, errors.Wrap(domainerrors.ErrDraftFailed, "generator returned no text")
	}

	return draft, nil
}

// splitDraft takes the first non-empty line as the title and the rest as content.
// A single line is used for both.
func splitDraft(text string) *service.AnnouncementDraft {
	text = strings.TrimSpace(text)
	if text == "" {
		return &service.AnnouncementDraft{}
	}

	title, rest, _ := strings.Cut(text, "\n")
	title = strings.Trim(strings.TrimSpace(title), "#*\" ")
	rest = strings.TrimSpace(rest)
	if rest == "" {
		rest = title
	}

	return &service.AnnouncementDraft{Title: title, Content: rest}
}
