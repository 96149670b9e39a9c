package models

// TallyEntry is one row of a closed poll's result: a seeded reaction, its
// adjusted vote count, and the users who voted with it. The bot's own seed
// reaction is never counted or listed.
type TallyEntry struct {
	Name   string   `json:"name"`
	Count  int      `json:"count"`
	Voters []string `json:"voters"`
}
