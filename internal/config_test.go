package internal

import (
	"testing"
	"time"

	"tweet-lab/errors"

	"github.com/stretchr/testify/require"
)

func setCredentials(t *testing.T) {
	t.Setenv("TW_CONSUMER_KEY", "consumer-key")
	t.Setenv("TW_CONSUMER_SECRET", "consumer-secret")
	t.Setenv("TW_ACCESS_TOKEN", "access-token")
	t.Setenv("TW_ACCESS_TOKEN_SECRET", "access-token-secret")
}

func TestLoadConfig_Defaults(t *testing.T) {
	req := require.New(t)
	setCredentials(t)

	config, err := LoadConfig()
	req.NoError(err)
	req.Equal("consumer-key", config.ConsumerKey)
	req.Equal(TransportTwitter, config.Transport)
	req.Equal(BackendMongo, config.SinkBackend)
	req.Equal("Superbowl_2021", config.MongoDatabase)
	req.Equal("Superbowl_post_game_tweets", config.MongoCollection)
	req.Equal(5*time.Second, config.SinkTimeout)
	req.Equal(DefaultKeywords, config.Filter().Keywords)
	req.Equal([]string{"en"}, config.Filter().Languages)
}

func TestLoadConfig_MissingCredential(t *testing.T) {
	for _, name := range []string{"TW_CONSUMER_KEY", "TW_CONSUMER_SECRET", "TW_ACCESS_TOKEN", "TW_ACCESS_TOKEN_SECRET"} {
		t.Run(name, func(t *testing.T) {
			req := require.New(t)
			setCredentials(t)
			t.Setenv(name, "")

			_, err := LoadConfig()
			req.ErrorIs(err, errors.ErrConfig)
		})
	}
}

func TestLoadConfig_TrackLists(t *testing.T) {
	req := require.New(t)
	setCredentials(t)
	t.Setenv("TRACK_KEYWORDS", " Bucs , Chiefs,,Bucs ")
	t.Setenv("TRACK_LANGUAGES", "en,fr")

	config, err := LoadConfig()
	req.NoError(err)
	req.Equal([]string{"Bucs", "Chiefs"}, config.Filter().Keywords)
	req.Equal([]string{"en", "fr"}, config.Filter().Languages)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := map[string]map[string]string{
		"unknown transport":      {"TRANSPORT": "carrier-pigeon"},
		"websocket without url":  {"TRANSPORT": "websocket"},
		"unknown backend":        {"SINK_BACKEND": "postgres"},
		"badger without path":    {"SINK_BACKEND": "badger"},
		"invalid language":       {"TRACK_LANGUAGES": "en,not a language"},
		"keyword over 60 bytes":  {"TRACK_KEYWORDS": "this keyword is far too long to ever be accepted by the stream filter"},
		"invalid sink timeout":   {"SINK_TIMEOUT": "soon"},
		"metrics port too large": {"METRICS_PORT": "70000"},
	}
	for name, vars := range tests {
		t.Run(name, func(t *testing.T) {
			req := require.New(t)
			setCredentials(t)
			for k, v := range vars {
				t.Setenv(k, v)
			}
			_, err := LoadConfig()
			req.ErrorIs(err, errors.ErrConfig)
		})
	}
}
