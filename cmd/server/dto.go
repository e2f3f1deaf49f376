package main

import (
	"github.com/vancomm/minesweeper-engine/internal/game"
	"github.com/vancomm/minesweeper-engine/internal/mines"
)

type errorDTO struct {
	Error string `json:"error"`
}

type gameDTO struct {
	Status         game.Status     `json:"status"`
	Difficulty     game.Difficulty `json:"difficulty"`
	TotalMines     int             `json:"total_mines"`
	FlagCount      int             `json:"flag_count"`
	ElapsedSeconds int             `json:"elapsed_seconds"`
	Cells          mines.Grid      `json:"cells"`
}

func newGameDTO(g *game.Game) gameDTO {
	return gameDTO{
		Status:         g.Status(),
		Difficulty:     g.Difficulty(),
		TotalMines:     g.TotalMines(),
		FlagCount:      g.FlagCount(),
		ElapsedSeconds: g.ElapsedSeconds(),
		Cells:          g.View(),
	}
}

type difficultiesDTO struct {
	Selected     string            `json:"selected"`
	Difficulties []game.Difficulty `json:"difficulties"`
}
