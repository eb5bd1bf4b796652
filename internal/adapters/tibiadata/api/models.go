package api

import "time"

type GuildResponse struct {
	Guild GuildInfo `json:"guild"`
}

type GuildInfo struct {
	Name             string        `json:"name"`
	World            string        `json:"world"`
	Members          []GuildMember `json:"members"`
	Invites          []GuildInvite `json:"invited"`
	OpenApplications bool          `json:"open_applications"`
}

type GuildMember struct {
	Name     string `json:"name"`
	Level    int    `json:"level"`
	Vocation string `json:"vocation"`
	Rank     string `json:"rank"`
	Status   string `json:"status"`
	Joined   string `json:"joined"`
}

type GuildInvite struct {
	Name      string `json:"name"`
	Date      string `json:"date"`
	InvitedBy string `json:"invited_by"`
}

type CharacterResponse struct {
	Character struct {
		Character CharacterInfo `json:"character"`
		Deaths    []Death       `json:"deaths"`
	} `json:"character"`
}

type CharacterInfo struct {
	Name     string `json:"name"`
	Level    int    `json:"level"`
	Vocation string `json:"vocation"`
	Sex      string `json:"sex"`
	World    string `json:"world"`
}

type Death struct {
	Time   time.Time `json:"time"`
	Level  int       `json:"level"`
	Reason string    `json:"reason"`
}
