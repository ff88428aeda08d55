package domain

// Filter is the subscription a session opens against the stream.
type Filter struct {
	Keywords  []string `validate:"min=1,max=400,dive,required,max=60"`
	Languages []string `validate:"dive,bcp47_language_tag"`
}
