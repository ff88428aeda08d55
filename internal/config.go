package internal

import (
	"fmt"
	"strings"
	"time"

	"tweet-lab/domain"
	"tweet-lab/errors"

	"github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/samber/lo"
)

const (
	TransportTwitter   = "twitter"
	TransportWebsocket = "websocket"
	BackendMongo       = "mongo"
	BackendBadger      = "badger"
)

// DefaultKeywords is the post-game track list: winner of game 1 and game 2.
var DefaultKeywords = []string{
	"Tom Brady", "Buccaneers", "Tampa Bay Buccaneers", "Superbowl",
	"Bucs", "SuperbowlLV", "Patrick Mahomes", "Kansas City Chiefs",
	"ChiefsKingdom", "BucsVsChiefs", "Chiefs",
}

var DefaultLanguages = []string{"en"}

type Config struct {
	ConsumerKey       string `env:"TW_CONSUMER_KEY,required=true" validate:"required"`
	ConsumerSecret    string `env:"TW_CONSUMER_SECRET,required=true" validate:"required"`
	AccessToken       string `env:"TW_ACCESS_TOKEN,required=true" validate:"required"`
	AccessTokenSecret string `env:"TW_ACCESS_TOKEN_SECRET,required=true" validate:"required"`

	TrackKeywords  string `env:"TRACK_KEYWORDS"`
	TrackLanguages string `env:"TRACK_LANGUAGES"`

	Transport string `env:"TRANSPORT,default=twitter" validate:"oneof=twitter websocket"`
	StreamURL string `env:"STREAM_URL" validate:"required_if=Transport websocket"`

	SinkBackend     string `env:"SINK_BACKEND,default=mongo" validate:"oneof=mongo badger"`
	MongoURI        string `env:"MONGO_URI,default=mongodb://localhost:27017" validate:"required_if=SinkBackend mongo"`
	MongoDatabase   string `env:"MONGO_DATABASE,default=Superbowl_2021" validate:"required"`
	MongoCollection string `env:"MONGO_COLLECTION,default=Superbowl_post_game_tweets" validate:"required"`
	BadgerFilepath  string `env:"BADGER_FILEPATH" validate:"required_if=SinkBackend badger"`

	SinkTimeout     time.Duration `env:"SINK_TIMEOUT,default=5s" validate:"gt=0"`
	RestartInterval time.Duration `env:"RESTART_INTERVAL,default=1s" validate:"gt=0"`
	MetricsPort     int           `env:"METRICS_PORT,default=0" validate:"gte=0,lte=65535"`
	LogLevel        string        `env:"LOG_LEVEL,default=INFO"`
}

var validate = validator.New()

// LoadConfig reads the environment, seeded from an optional .env file.
// Any missing credential or invalid value is reported as errors.ErrConfig.
func LoadConfig() (Config, error) {
	// A missing .env file is fine: the process environment is authoritative
	_ = godotenv.Load()

	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return Config{}, fmt.Errorf("%w: %w", errors.ErrConfig, err)
	}
	if err := validate.Struct(config); err != nil {
		return Config{}, fmt.Errorf("%w: %w", errors.ErrConfig, err)
	}
	if err := validate.Struct(config.Filter()); err != nil {
		return Config{}, fmt.Errorf("%w: %w", errors.ErrConfig, err)
	}
	return config, nil
}

// Filter returns the subscription built from the track settings, or the defaults.
func (c Config) Filter() domain.Filter {
	keywords := splitList(c.TrackKeywords)
	if len(keywords) == 0 {
		keywords = DefaultKeywords
	}
	languages := splitList(c.TrackLanguages)
	if len(languages) == 0 {
		languages = DefaultLanguages
	}
	return domain.Filter{Keywords: keywords, Languages: languages}
}

func splitList(value string) []string {
	parts := lo.Map(strings.Split(value, ","), func(s string, _ int) string {
		return strings.TrimSpace(s)
	})
	return lo.Uniq(lo.Compact(parts))
}
