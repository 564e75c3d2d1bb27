package domain

import "encoding/json"

// FantasyPlayer is one roster entry. Search results differ per league, so
// only id/name/team are lifted out; every other field the client sent rides
// along in Extra and round-trips through JSON untouched.
type FantasyPlayer struct {
	ID    int
	Name  string
	Team  string
	Extra map[string]json.RawMessage
}

func (p *FantasyPlayer) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if v, ok := raw["id"]; ok {
		if err := json.Unmarshal(v, &p.ID); err != nil {
			return err
		}
		delete(raw, "id")
	}
	if v, ok := raw["name"]; ok {
		if err := json.Unmarshal(v, &p.Name); err != nil {
			return err
		}
		delete(raw, "name")
	}
	if v, ok := raw["team"]; ok {
		if err := json.Unmarshal(v, &p.Team); err != nil {
			return err
		}
		delete(raw, "team")
	}

	p.Extra = raw
	return nil
}

func (p FantasyPlayer) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(p.Extra)+3)
	for k, v := range p.Extra {
		out[k] = v
	}
	out["id"] = p.ID
	out["name"] = p.Name
	if p.Team != "" {
		out["team"] = p.Team
	}
	return json.Marshal(out)
}

// Clone copies the entry by value so roster state is independent of the
// search result it came from.
func (p FantasyPlayer) Clone() FantasyPlayer {
	c := p
	if p.Extra != nil {
		c.Extra = make(map[string]json.RawMessage, len(p.Extra))
		for k, v := range p.Extra {
			c.Extra[k] = append(json.RawMessage(nil), v...)
		}
	}
	return c
}
