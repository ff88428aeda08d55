package domain

// NormalizedRecord is the flattened, fixed-shape document stored per content message.
// TimeZone and Location are nullable on the platform side and stay nullable here.
type NormalizedRecord struct {
	Date      string   `bson:"Date" json:"Date"`
	User      string   `bson:"User" json:"User"`
	Tweet     string   `bson:"Tweet" json:"Tweet"`
	Retweeted bool     `bson:"Retweeted" json:"Retweeted"`
	Hashtags  []string `bson:"Hashtags" json:"Hashtags"`
	TimeZone  *string  `bson:"TimeZone" json:"TimeZone"`
	Location  *string  `bson:"Location" json:"Location"`
}
