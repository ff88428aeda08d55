// Package domain contains core concepts of the ingestion pipeline.
// This file defines the partial schema decoded from one stream frame.
// Only the fields the pipeline stores are declared; everything else
// the platform sends is ignored by the decoder.
package domain

// RawMessage is one event payload received from the stream transport.
// Any field may be absent: presence is tracked by Optional.
type RawMessage struct {
	Text      Optional[string]      `json:"text"`
	Entities  Optional[RawEntities] `json:"entities"`
	CreatedAt Optional[string]      `json:"created_at"`
	User      Optional[RawUser]     `json:"user"`
	Retweeted Optional[bool]        `json:"retweeted"`
}

type RawEntities struct {
	Hashtags Optional[[]RawHashtag] `json:"hashtags"`
}

type RawHashtag struct {
	Text Optional[string] `json:"text"`
}

type RawUser struct {
	ScreenName Optional[string] `json:"screen_name"`
	TimeZone   Optional[string] `json:"time_zone"`
	Location   Optional[string] `json:"location"`
}
