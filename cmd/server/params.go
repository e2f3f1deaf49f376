package main

import (
	"github.com/gorilla/schema"

	"github.com/vancomm/minesweeper-engine/internal/mines"
)

var decoder = func() *schema.Decoder {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	return dec
}()

type clickParams struct {
	X     int  `schema:"x,required"`
	Y     int  `schema:"y,required"`
	Right bool `schema:"right"`
}

func (p clickParams) Coordinates() mines.Coordinates {
	return mines.Coordinates{X: p.X, Y: p.Y}
}

func decodeClick(src map[string][]string) (clickParams, error) {
	var p clickParams
	err := decoder.Decode(&p, src)
	return p, err
}

// difficultyParams selects a difficulty by name. The field settings are only
// read for the custom difficulty and default to the player's last ones.
type difficultyParams struct {
	Name      string `schema:"name,required"`
	Width     *int   `schema:"width"`
	Height    *int   `schema:"height"`
	MineCount *int   `schema:"mine_count"`
}

func decodeDifficulty(src map[string][]string) (difficultyParams, error) {
	var p difficultyParams
	err := decoder.Decode(&p, src)
	return p, err
}
