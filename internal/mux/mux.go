package mux

import (
	"net/http"

	"bombpotpoker-server/pkg/room"
	gmux "github.com/gorilla/mux"
)

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version string
	dealer  *room.Dealer
}

// NewMux returns a new HTTP mux wired to the table's dealer
func NewMux(version string, dealer *room.Dealer) *Mux {
	this := &Mux{
		Router:  gmux.NewRouter(),
		version: version,
		dealer:  dealer,
	}

	this.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	this.Methods(http.MethodGet).Path("/ws").Handler(this.getWS())

	return this
}
