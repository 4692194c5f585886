package client

import "sync"

// Store is the client-side application state: denormalized lists plus the
// pagination counters driving the page controls. It replaces the web app's
// package-global atoms with an explicit container the caller owns and passes
// around; every mutation goes through a typed method. Callers apply
// mutations only after the corresponding API call succeeded — on error the
// store is left untouched, so there is nothing to roll back.
type Store struct {
	mu sync.RWMutex

	sessionValid bool
	currentPage  int
	pageLimit    int

	decks          []Deck
	totalDeckCount int
	totalDeckPages int

	cards          []Card
	totalCardCount int
	totalCardPages int

	forms          []Form
	totalFormCount int
	totalFormPages int

	fields          []Field
	totalFieldCount int
	totalFieldPages int
}

func NewStore() *Store {
	return &Store{currentPage: 1, pageLimit: 10}
}

func (s *Store) SessionValid() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessionValid
}

func (s *Store) SetSessionValid(valid bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessionValid = valid
}

func (s *Store) CurrentPage() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentPage
}

func (s *Store) SetPage(page int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentPage = page
}

func (s *Store) PageLimit() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pageLimit
}

func (s *Store) SetPageLimit(limit int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pageLimit = limit
}

// Decks

func (s *Store) Decks() []Deck {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Deck, len(s.decks))
	copy(out, s.decks)
	return out
}

// SetDecks replaces the deck list wholesale, as done after each page load.
func (s *Store) SetDecks(decks []Deck, meta Meta) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.decks = decks
	s.totalDeckCount = meta.TotalCount
	s.totalDeckPages = meta.TotalPages
	s.currentPage = meta.Page
	s.pageLimit = meta.Limit
}

// AddDeck prepends a newly created deck, matching the list's newest-first
// placement in the UI.
func (s *Store) AddDeck(deck Deck) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.decks = append([]Deck{deck}, s.decks...)
	s.totalDeckCount++
}

func (s *Store) RemoveDeck(id uint) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.decks[:0]
	for _, deck := range s.decks {
		if deck.ID != id {
			kept = append(kept, deck)
		}
	}
	if len(kept) < len(s.decks) {
		s.totalDeckCount--
	}
	s.decks = kept
}

func (s *Store) UpdateDeckTitle(id uint, title string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.decks {
		if s.decks[i].ID == id {
			s.decks[i].Title = title
			return
		}
	}
}

func (s *Store) TotalDeckCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.totalDeckCount
}

func (s *Store) TotalDeckPages() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.totalDeckPages
}

// Cards

func (s *Store) Cards() []Card {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Card, len(s.cards))
	copy(out, s.cards)
	return out
}

func (s *Store) SetCards(cards []Card, meta Meta) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cards = cards
	s.totalCardCount = meta.TotalCount
	s.totalCardPages = meta.TotalPages
	s.currentPage = meta.Page
	s.pageLimit = meta.Limit
}

func (s *Store) AddCard(card Card) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cards = append([]Card{card}, s.cards...)
	s.totalCardCount++
}

func (s *Store) RemoveCard(id uint) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.cards[:0]
	for _, card := range s.cards {
		if card.ID != id {
			kept = append(kept, card)
		}
	}
	if len(kept) < len(s.cards) {
		s.totalCardCount--
	}
	s.cards = kept
}

func (s *Store) UpdateCardContent(id uint, front, back string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cards {
		if s.cards[i].ID == id {
			s.cards[i].Front = front
			s.cards[i].Back = back
			return
		}
	}
}

func (s *Store) TotalCardCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.totalCardCount
}

func (s *Store) TotalCardPages() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.totalCardPages
}

// Forms

func (s *Store) Forms() []Form {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Form, len(s.forms))
	copy(out, s.forms)
	return out
}

func (s *Store) SetForms(forms []Form, meta Meta) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.forms = forms
	s.totalFormCount = meta.TotalCount
	s.totalFormPages = meta.TotalPages
	s.currentPage = meta.Page
	s.pageLimit = meta.Limit
}

func (s *Store) AddForm(form Form) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.forms = append([]Form{form}, s.forms...)
	s.totalFormCount++
}

func (s *Store) RemoveForm(id uint) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.forms[:0]
	for _, form := range s.forms {
		if form.ID != id {
			kept = append(kept, form)
		}
	}
	if len(kept) < len(s.forms) {
		s.totalFormCount--
	}
	s.forms = kept
}

func (s *Store) UpdateFormTitle(id uint, title string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.forms {
		if s.forms[i].ID == id {
			s.forms[i].Title = title
			return
		}
	}
}

func (s *Store) TotalFormCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.totalFormCount
}

func (s *Store) TotalFormPages() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.totalFormPages
}

// Fields

func (s *Store) Fields() []Field {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Field, len(s.fields))
	copy(out, s.fields)
	return out
}

func (s *Store) SetFields(fields []Field, meta Meta) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fields = fields
	s.totalFieldCount = meta.TotalCount
	s.totalFieldPages = meta.TotalPages
	s.currentPage = meta.Page
	s.pageLimit = meta.Limit
}

func (s *Store) AddField(field Field) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fields = append([]Field{field}, s.fields...)
	s.totalFieldCount++
}

func (s *Store) RemoveField(id uint) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.fields[:0]
	for _, field := range s.fields {
		if field.ID != id {
			kept = append(kept, field)
		}
	}
	if len(kept) < len(s.fields) {
		s.totalFieldCount--
	}
	s.fields = kept
}

func (s *Store) TotalFieldCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.totalFieldCount
}

func (s *Store) TotalFieldPages() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.totalFieldPages
}
