package normalizer

import (
	"encoding/json"
	"fmt"

	"tweet-lab/domain"
	"tweet-lab/errors"
)

// Normalize decodes one stream frame and flattens it into a NormalizedRecord.
//
// A frame without the primary content field is not a content message:
// Normalize returns a nil record and a nil error, and the caller skips it.
// Only the content field is looked at before that decision, so the other keys
// of a non-content frame may hold anything. Once a frame is gated in, every
// required sub-field must be present, the first absent one is reported as a
// *errors.MissingFieldError. A frame that is not a JSON object is malformed.
func Normalize(frame []byte) (*domain.NormalizedRecord, error) {
	var gate contentGate
	if err := json.Unmarshal(frame, &gate); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrMalformedMessage, err)
	}
	if _, ok := gate.Text.Get(); !ok {
		return nil, nil
	}

	var msg domain.RawMessage
	if err := json.Unmarshal(frame, &msg); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrMalformedMessage, err)
	}
	return FromRaw(msg)
}

// contentGate keeps the content field undecoded, its type is checked with the rest of the message.
type contentGate struct {
	Text domain.Optional[json.RawMessage] `json:"text"`
}

// FromRaw flattens an already decoded message.
func FromRaw(msg domain.RawMessage) (*domain.NormalizedRecord, error) {
	text, ok := msg.Text.Get()
	if !ok {
		return nil, nil
	}

	hashtags, err := hashtagsOf(msg.Entities)
	if err != nil {
		return nil, err
	}

	created, ok := msg.CreatedAt.Get()
	if !ok {
		return nil, errors.MissingField("created_at")
	}

	user, ok := msg.User.Get()
	if !ok {
		return nil, errors.MissingField("user")
	}
	screenName, ok := user.ScreenName.Get()
	if !ok {
		return nil, errors.MissingField("user.screen_name")
	}

	retweeted, ok := msg.Retweeted.Get()
	if !ok {
		return nil, errors.MissingField("retweeted")
	}

	// time_zone and location are null for most accounts, only absence is a failure
	if !user.TimeZone.Present {
		return nil, errors.MissingField("user.time_zone")
	}
	if !user.Location.Present {
		return nil, errors.MissingField("user.location")
	}

	return &domain.NormalizedRecord{
		Date:      created,
		User:      screenName,
		Tweet:     text,
		Retweeted: retweeted,
		Hashtags:  hashtags,
		TimeZone:  user.TimeZone.Value,
		Location:  user.Location.Value,
	}, nil
}

func hashtagsOf(entities domain.Optional[domain.RawEntities]) ([]string, error) {
	e, ok := entities.Get()
	if !ok {
		return nil, errors.MissingField("entities")
	}
	raw, ok := e.Hashtags.Get()
	if !ok {
		return nil, errors.MissingField("entities.hashtags")
	}
	tags := make([]string, 0, len(raw))
	for i, h := range raw {
		tag, ok := h.Text.Get()
		if !ok {
			return nil, errors.MissingField(fmt.Sprintf("entities.hashtags[%d].text", i))
		}
		tags = append(tags, tag)
	}
	return tags, nil
}
