package core

// RosterChannel is the redis pubsub channel carrying roster change events
const RosterChannel = "roster"

const (
	EventActionCreate = "create"
	EventActionEdit   = "edit"
	EventActionDelete = "delete"
)

// closed vocabularies for the optional demographic tags
var (
	Genders      = []string{"female", "male", "nonbinary", "other"}
	Orientations = []string{"straight", "gay", "lesbian", "bisexual", "pansexual", "asexual", "other"}
	Programs     = []string{"arts", "business", "engineering", "law", "medicine", "science"}
	Years        = []string{"freshman", "sophomore", "junior", "senior", "graduate"}
)
