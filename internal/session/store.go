package session

import "time"

func (s *implStore) Get(chatID string) (State, bool) {
	return s.cache.Get(chatID)
}

func (s *implStore) Put(chatID string, state State) {
	state.UpdatedAt = time.Now()
	s.cache.Add(chatID, state)
}

// RememberLocation updates the last resolved location for a chat,
// creating the session if none exists yet.
func (s *implStore) RememberLocation(chatID, location string) {
	state, ok := s.cache.Get(chatID)
	if !ok {
		state = newState()
	}
	state.LastLocation = location
	s.Put(chatID, state)
}

// RememberToken updates the last discussed token for a chat, creating
// the session if none exists yet.
func (s *implStore) RememberToken(chatID, token string) {
	state, ok := s.cache.Get(chatID)
	if !ok {
		state = newState()
	}
	state.LastToken = token
	s.Put(chatID, state)
}

func (s *implStore) Len() int {
	return s.cache.Len()
}
