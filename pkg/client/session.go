package client

import "encoding/json"

// SessionState persists the last query, last successful result and the
// compare list per league, keyed the way the views expect them.
type SessionState struct {
	store Storage
}

func NewSessionState(store Storage) *SessionState {
	return &SessionState{store: store}
}

func (s *SessionState) SaveLastQuery(league, query string) {
	s.store.Set(league+"_last_query", query)
}

func (s *SessionState) LastQuery(league string) (string, bool) {
	return s.store.Get(league + "_last_query")
}

// SaveLastResult stores the record JSON-serialized; the stored copy is
// independent of any later search for the same name.
func (s *SessionState) SaveLastResult(league string, result interface{}) error {
	data, err := json.Marshal(result)
	if err != nil {
		return err
	}
	s.store.Set(league+"_last_result", string(data))
	return nil
}

func (s *SessionState) LastResult(league string, out interface{}) (bool, error) {
	raw, ok := s.store.Get(league + "_last_result")
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return false, err
	}
	return true, nil
}

func (s *SessionState) SaveCompareList(league string, list interface{}) error {
	data, err := json.Marshal(list)
	if err != nil {
		return err
	}
	s.store.Set(league+"_compare_list", string(data))
	return nil
}

func (s *SessionState) CompareList(league string, out interface{}) (bool, error) {
	raw, ok := s.store.Get(league + "_compare_list")
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return false, err
	}
	return true, nil
}

func (s *SessionState) ClearLeague(league string) {
	s.store.Remove(league + "_last_query")
	s.store.Remove(league + "_last_result")
	s.store.Remove(league + "_compare_list")
}
