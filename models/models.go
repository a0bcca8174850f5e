package models

import "time"

// SubscriptionRecord is one row from the Takeout subscriptions export.
// Records have no identity beyond their position in the source file.
type SubscriptionRecord struct {
	ChannelID  string `json:"channelId"`
	ChannelURL string `json:"channelUrl"`
	Title      string `json:"title"`
}

// FeedDescriptor is the feed-reader view of a subscription. FeedURL is a
// pure function of the channel id and serves as both the machine-readable
// and the human-facing link in the generated outline.
type FeedDescriptor struct {
	ID      string
	FeedURL string
	Title   string
}

// ArchivedSubscription is a SubscriptionRecord persisted to the archive
// database, tagged with the import batch it arrived in.
type ArchivedSubscription struct {
	Id         int64     `json:"id"`
	ChannelID  string    `json:"channelId"`
	ChannelURL string    `json:"channelUrl"`
	Title      string    `json:"title"`
	ImportedAt time.Time `json:"importedAt"`
}
