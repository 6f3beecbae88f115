package model

import "github.com/riskibarqy/pwned-go/external/pwned/wire"

// Signup is a participant entry in a competition.
type Signup struct {
	ID            wire.Opt[int64]
	Name          wire.Opt[string]
	HasServer     wire.Opt[bool]
	IsAccepted    wire.Opt[bool]
	OnWaitingList wire.Opt[bool]
	Contact       wire.Opt[string]
	Seeding       wire.Opt[int]
	ClanID        wire.Opt[int64]
	RemoteID      wire.Opt[string]
}

func (s *Signup) Schema() wire.Schema {
	return wire.Schema{
		wire.Scalar("id", &s.ID),
		wire.Scalar("name", &s.Name),
		wire.Scalar("hasServer", &s.HasServer),
		wire.Scalar("isAccepted", &s.IsAccepted),
		wire.Scalar("onWaitingList", &s.OnWaitingList),
		wire.Scalar("contact", &s.Contact),
		wire.Scalar("seeding", &s.Seeding),
		wire.Scalar("clanId", &s.ClanID),
		wire.Scalar("remoteId", &s.RemoteID),
	}
}

func (s *Signup) MarshalJSON() ([]byte, error) { return wire.Marshal(s) }

func (s *Signup) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, s) }
