package model

type EventType string
type Side string

const (
	EventGoal         EventType = "goal"
	EventYellowCard   EventType = "yellow_card"
	EventRedCard      EventType = "red_card"
	EventSubstitution EventType = "substitution"
	EventPenalty      EventType = "penalty"
	EventOwnGoal      EventType = "own_goal"
	EventVAR          EventType = "var"

	SideHome Side = "home"
	SideAway Side = "away"

	MinEventMinute = 0
	MaxEventMinute = 120
)

func (t EventType) Valid() bool {
	switch t {
	case EventGoal, EventYellowCard, EventRedCard, EventSubstitution, EventPenalty, EventOwnGoal, EventVAR:
		return true
	}
	return false
}

func (s Side) Valid() bool {
	return s == SideHome || s == SideAway
}

type StatPair struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

type MatchStatistics struct {
	Possession    StatPair `json:"possession"`
	Shots         StatPair `json:"shots"`
	ShotsOnTarget StatPair `json:"shots_on_target"`
	Corners       StatPair `json:"corners"`
	Fouls         StatPair `json:"fouls"`
	YellowCards   StatPair `json:"yellow_cards"`
	RedCards      StatPair `json:"red_cards"`
	Offsides      StatPair `json:"offsides"`
}

// DefaultStatistics is an even match with nothing recorded yet.
func DefaultStatistics() MatchStatistics {
	return MatchStatistics{Possession: StatPair{Home: 50, Away: 50}}
}

type MatchEvent struct {
	ID          string    `json:"id"`
	Type        EventType `json:"type"`
	Minute      int       `json:"minute"`
	Team        Side      `json:"team"`
	Player      string    `json:"player"`
	Description string    `json:"description"`
}

type GalleryItem struct {
	ID       string `json:"id"`
	URI      string `json:"uri"`
	FileName string `json:"fileName"`
	MimeType string `json:"mimeType"`
	Uploaded bool   `json:"uploaded"`
}

type Variant struct {
	ID    string  `json:"id"`
	Size  string  `json:"size,omitempty"`
	Color string  `json:"color,omitempty"`
	Price float64 `json:"price"`
	Stock int     `json:"stock"`
	SKU   string  `json:"sku"`
}

// Key identifies the option combination a variant stands for.
func (v Variant) Key() string {
	return v.Size + "\x00" + v.Color
}

type VariantOptions struct {
	Size  []string `json:"size"`
	Color []string `json:"color"`
}
