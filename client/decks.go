package client

import (
	"fmt"
	"net/http"
)

func (c *Client) ListDecks(opts ListOptions) ([]Deck, Meta, error) {
	env, err := c.do(http.MethodGet, "/decks", opts.values(), nil)

	if err != nil {
		return nil, Meta{}, err
	}

	decks, err := decodeData[[]Deck](env)

	if err != nil {
		return nil, Meta{}, err
	}

	meta, err := decodeMeta(env)

	return decks, meta, err
}

func (c *Client) GetDeck(id uint) (*Deck, error) {
	env, err := c.do(http.MethodGet, fmt.Sprintf("/decks/%d", id), nil, nil)

	if err != nil {
		return nil, err
	}

	deck, err := decodeData[Deck](env)

	if err != nil {
		return nil, err
	}

	return &deck, nil
}

func (c *Client) CreateDeck(title string) (*Deck, error) {
	env, err := c.do(http.MethodPost, "/decks", nil, map[string]string{"title": title})

	if err != nil {
		return nil, err
	}

	deck, err := decodeData[Deck](env)

	if err != nil {
		return nil, err
	}

	return &deck, nil
}

func (c *Client) UpdateDeck(id uint, title string) (*Deck, error) {
	env, err := c.do(http.MethodPatch, fmt.Sprintf("/decks/%d", id), nil, map[string]string{"title": title})

	if err != nil {
		return nil, err
	}

	deck, err := decodeData[Deck](env)

	if err != nil {
		return nil, err
	}

	return &deck, nil
}

func (c *Client) DeleteDeck(id uint) error {
	_, err := c.do(http.MethodDelete, fmt.Sprintf("/decks/%d", id), nil, nil)
	return err
}

func (c *Client) ListCards(deckID uint, opts ListOptions) ([]Card, Meta, error) {
	env, err := c.do(http.MethodGet, fmt.Sprintf("/decks/%d/cards", deckID), opts.values(), nil)

	if err != nil {
		return nil, Meta{}, err
	}

	cards, err := decodeData[[]Card](env)

	if err != nil {
		return nil, Meta{}, err
	}

	meta, err := decodeMeta(env)

	return cards, meta, err
}

func (c *Client) GetCard(deckID, cardID uint) (*Card, error) {
	env, err := c.do(http.MethodGet, fmt.Sprintf("/decks/%d/cards/%d", deckID, cardID), nil, nil)

	if err != nil {
		return nil, err
	}

	card, err := decodeData[Card](env)

	if err != nil {
		return nil, err
	}

	return &card, nil
}

func (c *Client) CreateCard(deckID uint, front, back string) (*Card, error) {
	env, err := c.do(http.MethodPost, fmt.Sprintf("/decks/%d/cards", deckID), nil,
		map[string]string{"front": front, "back": back})

	if err != nil {
		return nil, err
	}

	card, err := decodeData[Card](env)

	if err != nil {
		return nil, err
	}

	return &card, nil
}

func (c *Client) UpdateCard(deckID, cardID uint, front, back string) (*Card, error) {
	env, err := c.do(http.MethodPatch, fmt.Sprintf("/decks/%d/cards/%d", deckID, cardID), nil,
		map[string]string{"front": front, "back": back})

	if err != nil {
		return nil, err
	}

	card, err := decodeData[Card](env)

	if err != nil {
		return nil, err
	}

	return &card, nil
}

func (c *Client) DeleteCard(deckID, cardID uint) error {
	_, err := c.do(http.MethodDelete, fmt.Sprintf("/decks/%d/cards/%d", deckID, cardID), nil, nil)
	return err
}
