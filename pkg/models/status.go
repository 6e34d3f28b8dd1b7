package models

// TweetStatus represents the lifecycle state of a scheduled tweet.
type TweetStatus string

const (
	TweetDraft     TweetStatus = "draft"
	TweetApproved  TweetStatus = "approved"
	TweetScheduled TweetStatus = "scheduled"
	TweetPosted    TweetStatus = "posted"
)

// ValidTweetStatuses is the set of allowed TweetStatus values.
var ValidTweetStatuses = map[TweetStatus]bool{
	TweetDraft:     true,
	TweetApproved:  true,
	TweetScheduled: true,
	TweetPosted:    true,
}

// EngagementStatus represents the state of an engagement block.
type EngagementStatus string

const (
	EngagementPending EngagementStatus = "pending"
	EngagementDone    EngagementStatus = "done"
)

// ZoraStatus is one step of the Zora content production lifecycle.
// The steps are strictly ordered; default progression is forward-only
// as media and metadata are attached, though an explicit jump to any
// step is permitted.
type ZoraStatus string

const (
	ZoraPrompt   ZoraStatus = "prompt"
	ZoraReve     ZoraStatus = "reve"
	ZoraMedia    ZoraStatus = "media"
	ZoraMetadata ZoraStatus = "metadata"
	ZoraPosted   ZoraStatus = "posted"
)

// ZoraStatusSteps lists the production lifecycle steps in order.
var ZoraStatusSteps = []ZoraStatus{
	ZoraPrompt, ZoraReve, ZoraMedia, ZoraMetadata, ZoraPosted,
}

// ZoraStatusRank returns the zero-based position of s in the lifecycle,
// or -1 if s is not a recognized step.
func ZoraStatusRank(s ZoraStatus) int {
	for i, step := range ZoraStatusSteps {
		if step == s {
			return i
		}
	}
	return -1
}
