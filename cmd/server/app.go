package main

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/vancomm/minesweeper-engine/internal/config"
	"github.com/vancomm/minesweeper-engine/internal/middleware"
)

type application struct {
	logger   *slog.Logger
	sessions *sessions
	cookies  *config.Cookies
	ws       *config.WebSocket
}

func (app *application) Router() *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/status", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(200)
		w.Write([]byte("OK"))
	})

	playerRouter := router.NewRoute().Subrouter()
	playerRouter.Use(mux.MiddlewareFunc(middleware.Player(app.logger, app.cookies)))
	playerRouter.Methods("GET").Path("/difficulties").HandlerFunc(app.handleDifficulties)

	playerRouter.Methods("GET").Path("/game").HandlerFunc(app.handleFetchGame)
	playerRouter.Methods("GET").Path("/game/connect").HandlerFunc(app.wsConnect)
	playerRouter.Methods("POST").Path("/game/click").HandlerFunc(app.handleClick)
	playerRouter.Methods("POST").Path("/game/restart").HandlerFunc(app.handleRestart)
	playerRouter.Methods("PUT").Path("/game/difficulty").HandlerFunc(app.handleSetDifficulty)

	return router
}

func (app *application) badRequest(w http.ResponseWriter, err error) {
	app.replyWithStatus(w, http.StatusBadRequest, errorDTO{Error: err.Error()})
}

func (app *application) conflict(w http.ResponseWriter, err error) {
	app.replyWithStatus(w, http.StatusConflict, errorDTO{Error: err.Error()})
}

func (app *application) internalError(w http.ResponseWriter, msg string, args ...any) {
	w.WriteHeader(http.StatusInternalServerError)
	w.Write([]byte("Internal error"))
	app.logger.Error(msg, args...)
}

func (app *application) replyWithJSON(w http.ResponseWriter, v any) {
	app.replyWithStatus(w, http.StatusOK, v)
}

func (app *application) replyWithStatus(w http.ResponseWriter, statusCode int, v any) {
	payload, err := json.Marshal(v)
	if err != nil {
		app.internalError(w, "failed to marshal json", slog.Any("error", err))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if _, err = w.Write(payload); err != nil {
		app.logger.Error(
			"failed to send data", slog.Any("data", v), slog.Any("error", err),
		)
	}
}
